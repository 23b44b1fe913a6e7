package catalog

import (
	"github.com/sirupsen/logrus"

	"github.com/nadafaclean/store-service/pkg/kvstore"
)

const (
	keyProducts        = "products"
	keyCategories      = "categories"
	keySubcategories   = "subcategories"
	keySizes           = "sizes"
	keyColors          = "colors"
	keySmells          = "smells"
	keyDeliveryOptions = "deliveryOptions"
	keyDeliveryZones   = "deliveryZones"
)

// Storage mirrors each catalog collection to its own store key. Writes are
// fire and forget: in-memory state is already updated, a failed write only
// gets logged.
type Storage struct {
	store kvstore.Store
	log   *logrus.Entry
}

func NewStorage(store kvstore.Store, log *logrus.Entry) *Storage {
	return &Storage{store: store, log: log}
}

func (s *Storage) save(key string, v interface{}) {
	if err := kvstore.SetJSON(s.store, key, v); err != nil {
		s.log.Errorf("failed to persist %q: %v", key, err)
	}
}

func (s *Storage) LoadProducts() ([]Product, bool) {
	var v []Product
	ok := kvstore.Load(s.store, s.log, keyProducts, &v)
	return v, ok
}

func (s *Storage) SaveProducts(v []Product) { s.save(keyProducts, v) }

func (s *Storage) LoadCategories() ([]Category, bool) {
	var v []Category
	ok := kvstore.Load(s.store, s.log, keyCategories, &v)
	return v, ok
}

func (s *Storage) SaveCategories(v []Category) { s.save(keyCategories, v) }

func (s *Storage) LoadSubcategories() ([]Subcategory, bool) {
	var v []Subcategory
	ok := kvstore.Load(s.store, s.log, keySubcategories, &v)
	return v, ok
}

func (s *Storage) SaveSubcategories(v []Subcategory) { s.save(keySubcategories, v) }

func (s *Storage) LoadSizes() ([]Size, bool) {
	var v []Size
	ok := kvstore.Load(s.store, s.log, keySizes, &v)
	return v, ok
}

func (s *Storage) SaveSizes(v []Size) { s.save(keySizes, v) }

func (s *Storage) LoadColors() ([]Color, bool) {
	var v []Color
	ok := kvstore.Load(s.store, s.log, keyColors, &v)
	return v, ok
}

func (s *Storage) SaveColors(v []Color) { s.save(keyColors, v) }

func (s *Storage) LoadSmells() ([]Smell, bool) {
	var v []Smell
	ok := kvstore.Load(s.store, s.log, keySmells, &v)
	return v, ok
}

func (s *Storage) SaveSmells(v []Smell) { s.save(keySmells, v) }

func (s *Storage) LoadDeliveryOptions() ([]DeliveryOption, bool) {
	var v []DeliveryOption
	ok := kvstore.Load(s.store, s.log, keyDeliveryOptions, &v)
	return v, ok
}

func (s *Storage) SaveDeliveryOptions(v []DeliveryOption) { s.save(keyDeliveryOptions, v) }

func (s *Storage) LoadDeliveryZones() ([]DeliveryZone, bool) {
	var v []DeliveryZone
	ok := kvstore.Load(s.store, s.log, keyDeliveryZones, &v)
	return v, ok
}

func (s *Storage) SaveDeliveryZones(v []DeliveryZone) { s.save(keyDeliveryZones, v) }
