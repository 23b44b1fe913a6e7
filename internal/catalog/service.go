package catalog

import (
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/nadafaclean/store-service/pkg/notify"
)

type CatalogService interface {
	Products() []Product
	GetProductByID(id string) (*Product, error)
	SearchProducts(query string) []Product
	ProductsByCategory(categoryID string) []Product
	ProductsBySubcategory(subcategoryID string) []Product
	FeaturedProducts() []Product
	AddProduct(p Product) (*Product, error)
	UpdateProduct(id string, upd ProductUpdate) error
	DeleteProduct(id string) error

	Categories() []Category
	AddCategory(c Category) (*Category, error)
	UpdateCategory(id string, upd CategoryUpdate) error
	DeleteCategory(id string) error

	Subcategories() []Subcategory
	AddSubcategory(sc Subcategory) (*Subcategory, error)
	UpdateSubcategory(id string, upd SubcategoryUpdate) error
	DeleteSubcategory(id string) error

	Sizes() []Size
	AddSize(sz Size) (*Size, error)
	UpdateSize(id string, upd SizeUpdate) error
	DeleteSize(id string) error

	Colors() []Color
	AddColor(c Color) (*Color, error)
	UpdateColor(id string, upd ColorUpdate) error
	DeleteColor(id string) error

	Smells() []Smell
	AddSmell(sm Smell) (*Smell, error)
	UpdateSmell(id string, upd SmellUpdate) error
	DeleteSmell(id string) error

	DeliveryOptions() []DeliveryOption
	GetDeliveryOption(id string) (*DeliveryOption, error)
	AddDeliveryOption(o DeliveryOption) (*DeliveryOption, error)
	UpdateDeliveryOption(id string, upd DeliveryOptionUpdate) error
	DeleteDeliveryOption(id string) error

	DeliveryZones() []DeliveryZone
	GetDeliveryZone(id string) (*DeliveryZone, error)
	AddDeliveryZone(z DeliveryZone) (*DeliveryZone, error)
	UpdateDeliveryZone(id string, upd DeliveryZoneUpdate) error
	DeleteDeliveryZone(id string) error

	Export() Snapshot
	Import(s Snapshot) error
}

type ProductUpdate struct {
	Name          *string  `json:"name,omitempty"`
	NameEn        *string  `json:"nameEn,omitempty"`
	Description   *string  `json:"description,omitempty"`
	DescriptionEn *string  `json:"descriptionEn,omitempty"`
	Price         *float64 `json:"price,omitempty"`
	Image         *string  `json:"image,omitempty"`
	CategoryID    *string  `json:"categoryId,omitempty"`
	SubcategoryID *string  `json:"subcategoryId,omitempty"`
	SizeID        *string  `json:"sizeId,omitempty"`
	ColorID       *string  `json:"colorId,omitempty"`
	SmellID       *string  `json:"smellId,omitempty"`
	Stock         *int     `json:"stock,omitempty"`
	Featured      *bool    `json:"featured,omitempty"`
}

type CategoryUpdate struct {
	Name         *string `json:"name,omitempty"`
	NameEn       *string `json:"nameEn,omitempty"`
	Description  *string `json:"description,omitempty"`
	Image        *string `json:"image,omitempty"`
	DisplayOrder *int    `json:"displayOrder,omitempty"`
}

type SubcategoryUpdate struct {
	Name         *string `json:"name,omitempty"`
	NameEn       *string `json:"nameEn,omitempty"`
	CategoryID   *string `json:"categoryId,omitempty"`
	Description  *string `json:"description,omitempty"`
	Image        *string `json:"image,omitempty"`
	DisplayOrder *int    `json:"displayOrder,omitempty"`
}

type SizeUpdate struct {
	Name   *string `json:"name,omitempty"`
	NameEn *string `json:"nameEn,omitempty"`
	Value  *string `json:"value,omitempty"`
}

type ColorUpdate struct {
	Name   *string `json:"name,omitempty"`
	NameEn *string `json:"nameEn,omitempty"`
	Hex    *string `json:"hex,omitempty"`
}

type SmellUpdate struct {
	Name        *string `json:"name,omitempty"`
	NameEn      *string `json:"nameEn,omitempty"`
	Description *string `json:"description,omitempty"`
}

type DeliveryOptionUpdate struct {
	Name              *string  `json:"name,omitempty"`
	NameEn            *string  `json:"nameEn,omitempty"`
	Price             *float64 `json:"price,omitempty"`
	Description       *string  `json:"description,omitempty"`
	EstimatedDuration *string  `json:"estimatedDuration,omitempty"`
	Active            *bool    `json:"active,omitempty"`
	Icon              *string  `json:"icon,omitempty"`
}

type DeliveryZoneUpdate struct {
	Name          *string  `json:"name,omitempty"`
	NameEn        *string  `json:"nameEn,omitempty"`
	Cities        []string `json:"cities,omitempty"`
	AdditionalFee *float64 `json:"additionalFee,omitempty"`
	Active        *bool    `json:"active,omitempty"`
}

type catalogService struct {
	mu       sync.Mutex
	storage  *Storage
	log      *logrus.Entry
	notifier notify.Notifier

	products        []Product
	categories      []Category
	subcategories   []Subcategory
	sizes           []Size
	colors          []Color
	smells          []Smell
	deliveryOptions []DeliveryOption
	deliveryZones   []DeliveryZone
}

// NewService loads every collection from the store, seeding and persisting
// any collection that is absent so subsequent loads are stable.
func NewService(storage *Storage, log *logrus.Entry, notifier notify.Notifier) CatalogService {
	s := &catalogService{
		storage:  storage,
		log:      log,
		notifier: notifier,
	}

	var ok bool
	if s.products, ok = storage.LoadProducts(); !ok {
		s.products = seedProducts()
		storage.SaveProducts(s.products)
	}
	if s.categories, ok = storage.LoadCategories(); !ok {
		s.categories = seedCategories()
		storage.SaveCategories(s.categories)
	}
	if s.subcategories, ok = storage.LoadSubcategories(); !ok {
		s.subcategories = seedSubcategories()
		storage.SaveSubcategories(s.subcategories)
	}
	if s.sizes, ok = storage.LoadSizes(); !ok {
		s.sizes = seedSizes()
		storage.SaveSizes(s.sizes)
	}
	if s.colors, ok = storage.LoadColors(); !ok {
		s.colors = seedColors()
		storage.SaveColors(s.colors)
	}
	if s.smells, ok = storage.LoadSmells(); !ok {
		s.smells = seedSmells()
		storage.SaveSmells(s.smells)
	}
	if s.deliveryOptions, ok = storage.LoadDeliveryOptions(); !ok {
		s.deliveryOptions = seedDeliveryOptions()
		storage.SaveDeliveryOptions(s.deliveryOptions)
	}
	if s.deliveryZones, ok = storage.LoadDeliveryZones(); !ok {
		s.deliveryZones = seedDeliveryZones()
		storage.SaveDeliveryZones(s.deliveryZones)
	}

	return s
}

func (s *catalogService) Products() []Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Product(nil), s.products...)
}

func (s *catalogService) GetProductByID(id string) (*Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == id {
			p := s.products[i]
			return &p, nil
		}
	}
	return nil, ErrNotFound
}

func (s *catalogService) SearchProducts(query string) []Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return append([]Product(nil), s.products...)
	}

	var out []Product
	for _, p := range s.products {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.NameEn), q) ||
			strings.Contains(strings.ToLower(p.Description), q) ||
			strings.Contains(strings.ToLower(p.DescriptionEn), q) {
			out = append(out, p)
		}
	}
	return out
}

func (s *catalogService) ProductsByCategory(categoryID string) []Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []Product
	for _, p := range s.products {
		if p.CategoryID == categoryID {
			out = append(out, p)
		}
	}
	return out
}

func (s *catalogService) ProductsBySubcategory(subcategoryID string) []Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []Product
	for _, p := range s.products {
		if p.SubcategoryID == subcategoryID {
			out = append(out, p)
		}
	}
	return out
}

func (s *catalogService) FeaturedProducts() []Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []Product
	for _, p := range s.products {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out
}

func (s *catalogService) AddProduct(p Product) (*Product, error) {
	if strings.TrimSpace(p.Name) == "" {
		return nil, errNameRequired
	}
	if p.Price < 0 {
		return nil, errNegativePrice
	}
	if p.Stock < 0 {
		return nil, errNegativeStock
	}
	if strings.TrimSpace(p.CategoryID) == "" {
		return nil, errCategoryRequired
	}

	s.mu.Lock()
	p.ID = nextID()
	p.CreatedAt = time.Now()
	s.products = append(s.products, p)
	s.storage.SaveProducts(s.products)
	s.mu.Unlock()

	s.notifier.Notify("product.added", p)
	return &p, nil
}

func (s *catalogService) UpdateProduct(id string, upd ProductUpdate) error {
	if upd.Price != nil && *upd.Price < 0 {
		return errNegativePrice
	}
	if upd.Stock != nil && *upd.Stock < 0 {
		return errNegativeStock
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID != id {
			continue
		}
		p := &s.products[i]
		applyString(&p.Name, upd.Name)
		applyString(&p.NameEn, upd.NameEn)
		applyString(&p.Description, upd.Description)
		applyString(&p.DescriptionEn, upd.DescriptionEn)
		applyString(&p.Image, upd.Image)
		applyString(&p.CategoryID, upd.CategoryID)
		applyString(&p.SubcategoryID, upd.SubcategoryID)
		applyString(&p.SizeID, upd.SizeID)
		applyString(&p.ColorID, upd.ColorID)
		applyString(&p.SmellID, upd.SmellID)
		if upd.Price != nil {
			p.Price = *upd.Price
		}
		if upd.Stock != nil {
			p.Stock = *upd.Stock
		}
		if upd.Featured != nil {
			p.Featured = *upd.Featured
		}
		s.storage.SaveProducts(s.products)
		s.notifier.Notify("product.updated", p)
		return nil
	}

	// unknown id is a silent no-op
	return nil
}

func (s *catalogService) DeleteProduct(id string) error {
	s.mu.Lock()
	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			s.storage.SaveProducts(s.products)
			s.mu.Unlock()
			s.notifier.Notify("product.deleted", id)
			return nil
		}
	}
	s.mu.Unlock()
	return ErrNotFound
}

func (s *catalogService) Categories() []Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Category(nil), s.categories...)
}

func (s *catalogService) AddCategory(c Category) (*Category, error) {
	if strings.TrimSpace(c.Name) == "" {
		return nil, errNameRequired
	}

	s.mu.Lock()
	c.ID = nextID()
	s.categories = append(s.categories, c)
	s.storage.SaveCategories(s.categories)
	s.mu.Unlock()

	s.notifier.Notify("category.added", c)
	return &c, nil
}

func (s *catalogService) UpdateCategory(id string, upd CategoryUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.categories {
		if s.categories[i].ID != id {
			continue
		}
		c := &s.categories[i]
		applyString(&c.Name, upd.Name)
		applyString(&c.NameEn, upd.NameEn)
		applyString(&c.Description, upd.Description)
		applyString(&c.Image, upd.Image)
		if upd.DisplayOrder != nil {
			c.DisplayOrder = *upd.DisplayOrder
		}
		s.storage.SaveCategories(s.categories)
		s.notifier.Notify("category.updated", c)
		return nil
	}
	return nil
}

// DeleteCategory refuses while any product or subcategory still references
// the category.
func (s *catalogService) DeleteCategory(id string) error {
	s.mu.Lock()
	for _, p := range s.products {
		if p.CategoryID == id {
			s.mu.Unlock()
			return ErrCategoryInUse
		}
	}
	for _, sc := range s.subcategories {
		if sc.CategoryID == id {
			s.mu.Unlock()
			return ErrCategoryInUse
		}
	}

	for i := range s.categories {
		if s.categories[i].ID == id {
			s.categories = append(s.categories[:i], s.categories[i+1:]...)
			s.storage.SaveCategories(s.categories)
			s.mu.Unlock()
			s.notifier.Notify("category.deleted", id)
			return nil
		}
	}
	s.mu.Unlock()
	return ErrNotFound
}

func (s *catalogService) Subcategories() []Subcategory {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Subcategory(nil), s.subcategories...)
}

func (s *catalogService) AddSubcategory(sc Subcategory) (*Subcategory, error) {
	if strings.TrimSpace(sc.Name) == "" {
		return nil, errNameRequired
	}
	if strings.TrimSpace(sc.CategoryID) == "" {
		return nil, errCategoryRequired
	}

	s.mu.Lock()
	sc.ID = nextID()
	s.subcategories = append(s.subcategories, sc)
	s.storage.SaveSubcategories(s.subcategories)
	s.mu.Unlock()

	s.notifier.Notify("subcategory.added", sc)
	return &sc, nil
}

func (s *catalogService) UpdateSubcategory(id string, upd SubcategoryUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.subcategories {
		if s.subcategories[i].ID != id {
			continue
		}
		sc := &s.subcategories[i]
		applyString(&sc.Name, upd.Name)
		applyString(&sc.NameEn, upd.NameEn)
		applyString(&sc.CategoryID, upd.CategoryID)
		applyString(&sc.Description, upd.Description)
		applyString(&sc.Image, upd.Image)
		if upd.DisplayOrder != nil {
			sc.DisplayOrder = *upd.DisplayOrder
		}
		s.storage.SaveSubcategories(s.subcategories)
		s.notifier.Notify("subcategory.updated", sc)
		return nil
	}
	return nil
}

func (s *catalogService) DeleteSubcategory(id string) error {
	s.mu.Lock()
	for _, p := range s.products {
		if p.SubcategoryID == id {
			s.mu.Unlock()
			return ErrSubcategoryInUse
		}
	}

	for i := range s.subcategories {
		if s.subcategories[i].ID == id {
			s.subcategories = append(s.subcategories[:i], s.subcategories[i+1:]...)
			s.storage.SaveSubcategories(s.subcategories)
			s.mu.Unlock()
			s.notifier.Notify("subcategory.deleted", id)
			return nil
		}
	}
	s.mu.Unlock()
	return ErrNotFound
}

func (s *catalogService) Sizes() []Size {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Size(nil), s.sizes...)
}

func (s *catalogService) AddSize(sz Size) (*Size, error) {
	if strings.TrimSpace(sz.Name) == "" {
		return nil, errNameRequired
	}
	if strings.TrimSpace(sz.Value) == "" {
		return nil, errValueRequired
	}

	s.mu.Lock()
	sz.ID = nextID()
	s.sizes = append(s.sizes, sz)
	s.storage.SaveSizes(s.sizes)
	s.mu.Unlock()

	s.notifier.Notify("size.added", sz)
	return &sz, nil
}

func (s *catalogService) UpdateSize(id string, upd SizeUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.sizes {
		if s.sizes[i].ID != id {
			continue
		}
		sz := &s.sizes[i]
		applyString(&sz.Name, upd.Name)
		applyString(&sz.NameEn, upd.NameEn)
		applyString(&sz.Value, upd.Value)
		s.storage.SaveSizes(s.sizes)
		s.notifier.Notify("size.updated", sz)
		return nil
	}
	return nil
}

func (s *catalogService) DeleteSize(id string) error {
	s.mu.Lock()
	for _, p := range s.products {
		if p.SizeID == id {
			s.mu.Unlock()
			return ErrSizeInUse
		}
	}

	for i := range s.sizes {
		if s.sizes[i].ID == id {
			s.sizes = append(s.sizes[:i], s.sizes[i+1:]...)
			s.storage.SaveSizes(s.sizes)
			s.mu.Unlock()
			s.notifier.Notify("size.deleted", id)
			return nil
		}
	}
	s.mu.Unlock()
	return ErrNotFound
}

func (s *catalogService) Colors() []Color {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Color(nil), s.colors...)
}

func (s *catalogService) AddColor(c Color) (*Color, error) {
	if strings.TrimSpace(c.Name) == "" {
		return nil, errNameRequired
	}
	if strings.TrimSpace(c.Hex) == "" {
		return nil, errHexRequired
	}

	s.mu.Lock()
	c.ID = nextID()
	s.colors = append(s.colors, c)
	s.storage.SaveColors(s.colors)
	s.mu.Unlock()

	s.notifier.Notify("color.added", c)
	return &c, nil
}

func (s *catalogService) UpdateColor(id string, upd ColorUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.colors {
		if s.colors[i].ID != id {
			continue
		}
		c := &s.colors[i]
		applyString(&c.Name, upd.Name)
		applyString(&c.NameEn, upd.NameEn)
		applyString(&c.Hex, upd.Hex)
		s.storage.SaveColors(s.colors)
		s.notifier.Notify("color.updated", c)
		return nil
	}
	return nil
}

func (s *catalogService) DeleteColor(id string) error {
	s.mu.Lock()
	for _, p := range s.products {
		if p.ColorID == id {
			s.mu.Unlock()
			return ErrColorInUse
		}
	}

	for i := range s.colors {
		if s.colors[i].ID == id {
			s.colors = append(s.colors[:i], s.colors[i+1:]...)
			s.storage.SaveColors(s.colors)
			s.mu.Unlock()
			s.notifier.Notify("color.deleted", id)
			return nil
		}
	}
	s.mu.Unlock()
	return ErrNotFound
}

func (s *catalogService) Smells() []Smell {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Smell(nil), s.smells...)
}

func (s *catalogService) AddSmell(sm Smell) (*Smell, error) {
	if strings.TrimSpace(sm.Name) == "" {
		return nil, errNameRequired
	}

	s.mu.Lock()
	sm.ID = nextID()
	s.smells = append(s.smells, sm)
	s.storage.SaveSmells(s.smells)
	s.mu.Unlock()

	s.notifier.Notify("smell.added", sm)
	return &sm, nil
}

func (s *catalogService) UpdateSmell(id string, upd SmellUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.smells {
		if s.smells[i].ID != id {
			continue
		}
		sm := &s.smells[i]
		applyString(&sm.Name, upd.Name)
		applyString(&sm.NameEn, upd.NameEn)
		applyString(&sm.Description, upd.Description)
		s.storage.SaveSmells(s.smells)
		s.notifier.Notify("smell.updated", sm)
		return nil
	}
	return nil
}

func (s *catalogService) DeleteSmell(id string) error {
	s.mu.Lock()
	for _, p := range s.products {
		if p.SmellID == id {
			s.mu.Unlock()
			return ErrSmellInUse
		}
	}

	for i := range s.smells {
		if s.smells[i].ID == id {
			s.smells = append(s.smells[:i], s.smells[i+1:]...)
			s.storage.SaveSmells(s.smells)
			s.mu.Unlock()
			s.notifier.Notify("smell.deleted", id)
			return nil
		}
	}
	s.mu.Unlock()
	return ErrNotFound
}

func (s *catalogService) DeliveryOptions() []DeliveryOption {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]DeliveryOption(nil), s.deliveryOptions...)
}

func (s *catalogService) GetDeliveryOption(id string) (*DeliveryOption, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.deliveryOptions {
		if s.deliveryOptions[i].ID == id {
			o := s.deliveryOptions[i]
			return &o, nil
		}
	}
	return nil, ErrNotFound
}

func (s *catalogService) AddDeliveryOption(o DeliveryOption) (*DeliveryOption, error) {
	if strings.TrimSpace(o.Name) == "" {
		return nil, errNameRequired
	}
	if o.Price < 0 {
		return nil, errNegativePrice
	}

	s.mu.Lock()
	o.ID = nextID()
	s.deliveryOptions = append(s.deliveryOptions, o)
	s.storage.SaveDeliveryOptions(s.deliveryOptions)
	s.mu.Unlock()

	s.notifier.Notify("deliveryOption.added", o)
	return &o, nil
}

func (s *catalogService) UpdateDeliveryOption(id string, upd DeliveryOptionUpdate) error {
	if upd.Price != nil && *upd.Price < 0 {
		return errNegativePrice
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.deliveryOptions {
		if s.deliveryOptions[i].ID != id {
			continue
		}
		o := &s.deliveryOptions[i]
		applyString(&o.Name, upd.Name)
		applyString(&o.NameEn, upd.NameEn)
		applyString(&o.Description, upd.Description)
		applyString(&o.EstimatedDuration, upd.EstimatedDuration)
		applyString(&o.Icon, upd.Icon)
		if upd.Price != nil {
			o.Price = *upd.Price
		}
		if upd.Active != nil {
			o.Active = *upd.Active
		}
		s.storage.SaveDeliveryOptions(s.deliveryOptions)
		s.notifier.Notify("deliveryOption.updated", o)
		return nil
	}
	return nil
}

// Delivery options are deleted unconditionally: placed orders keep a
// denormalized copy of the option name and fee, so history stays intact.
func (s *catalogService) DeleteDeliveryOption(id string) error {
	s.mu.Lock()
	for i := range s.deliveryOptions {
		if s.deliveryOptions[i].ID == id {
			s.deliveryOptions = append(s.deliveryOptions[:i], s.deliveryOptions[i+1:]...)
			s.storage.SaveDeliveryOptions(s.deliveryOptions)
			s.mu.Unlock()
			s.notifier.Notify("deliveryOption.deleted", id)
			return nil
		}
	}
	s.mu.Unlock()
	return ErrNotFound
}

func (s *catalogService) DeliveryZones() []DeliveryZone {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]DeliveryZone(nil), s.deliveryZones...)
}

func (s *catalogService) GetDeliveryZone(id string) (*DeliveryZone, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.deliveryZones {
		if s.deliveryZones[i].ID == id {
			z := s.deliveryZones[i]
			return &z, nil
		}
	}
	return nil, ErrNotFound
}

func (s *catalogService) AddDeliveryZone(z DeliveryZone) (*DeliveryZone, error) {
	if strings.TrimSpace(z.Name) == "" {
		return nil, errNameRequired
	}
	if len(z.Cities) == 0 {
		return nil, errCitiesRequired
	}
	if z.AdditionalFee < 0 {
		return nil, errNegativeFee
	}

	s.mu.Lock()
	z.ID = nextID()
	s.deliveryZones = append(s.deliveryZones, z)
	s.storage.SaveDeliveryZones(s.deliveryZones)
	s.mu.Unlock()

	s.notifier.Notify("deliveryZone.added", z)
	return &z, nil
}

func (s *catalogService) UpdateDeliveryZone(id string, upd DeliveryZoneUpdate) error {
	if upd.AdditionalFee != nil && *upd.AdditionalFee < 0 {
		return errNegativeFee
	}
	if upd.Cities != nil && len(upd.Cities) == 0 {
		return errCitiesRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.deliveryZones {
		if s.deliveryZones[i].ID != id {
			continue
		}
		z := &s.deliveryZones[i]
		applyString(&z.Name, upd.Name)
		applyString(&z.NameEn, upd.NameEn)
		if upd.Cities != nil {
			z.Cities = upd.Cities
		}
		if upd.AdditionalFee != nil {
			z.AdditionalFee = *upd.AdditionalFee
		}
		if upd.Active != nil {
			z.Active = *upd.Active
		}
		s.storage.SaveDeliveryZones(s.deliveryZones)
		s.notifier.Notify("deliveryZone.updated", z)
		return nil
	}
	return nil
}

func (s *catalogService) DeleteDeliveryZone(id string) error {
	s.mu.Lock()
	for i := range s.deliveryZones {
		if s.deliveryZones[i].ID == id {
			s.deliveryZones = append(s.deliveryZones[:i], s.deliveryZones[i+1:]...)
			s.storage.SaveDeliveryZones(s.deliveryZones)
			s.mu.Unlock()
			s.notifier.Notify("deliveryZone.deleted", id)
			return nil
		}
	}
	s.mu.Unlock()
	return ErrNotFound
}

func (s *catalogService) Export() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Snapshot{
		Products:        append([]Product(nil), s.products...),
		Categories:      append([]Category(nil), s.categories...),
		Subcategories:   append([]Subcategory(nil), s.subcategories...),
		Sizes:           append([]Size(nil), s.sizes...),
		Colors:          append([]Color(nil), s.colors...),
		Smells:          append([]Smell(nil), s.smells...),
		DeliveryOptions: append([]DeliveryOption(nil), s.deliveryOptions...),
		DeliveryZones:   append([]DeliveryZone(nil), s.deliveryZones...),
	}
}

// Import replaces every collection wholesale from the snapshot.
func (s *catalogService) Import(snap Snapshot) error {
	s.mu.Lock()
	s.products = append([]Product(nil), snap.Products...)
	s.categories = append([]Category(nil), snap.Categories...)
	s.subcategories = append([]Subcategory(nil), snap.Subcategories...)
	s.sizes = append([]Size(nil), snap.Sizes...)
	s.colors = append([]Color(nil), snap.Colors...)
	s.smells = append([]Smell(nil), snap.Smells...)
	s.deliveryOptions = append([]DeliveryOption(nil), snap.DeliveryOptions...)
	s.deliveryZones = append([]DeliveryZone(nil), snap.DeliveryZones...)

	s.storage.SaveProducts(s.products)
	s.storage.SaveCategories(s.categories)
	s.storage.SaveSubcategories(s.subcategories)
	s.storage.SaveSizes(s.sizes)
	s.storage.SaveColors(s.colors)
	s.storage.SaveSmells(s.smells)
	s.storage.SaveDeliveryOptions(s.deliveryOptions)
	s.storage.SaveDeliveryZones(s.deliveryZones)
	s.mu.Unlock()

	s.notifier.Notify("catalog.imported", nil)
	return nil
}

func applyString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
