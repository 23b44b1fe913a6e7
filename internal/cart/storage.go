package cart

import (
	"github.com/sirupsen/logrus"

	"github.com/nadafaclean/store-service/pkg/kvstore"
)

const keyCart = "cart"

type Storage struct {
	store kvstore.Store
	log   *logrus.Entry
}

func NewStorage(store kvstore.Store, log *logrus.Entry) *Storage {
	return &Storage{store: store, log: log}
}

func (s *Storage) LoadItems() ([]Item, bool) {
	var v []Item
	ok := kvstore.Load(s.store, s.log, keyCart, &v)
	return v, ok
}

func (s *Storage) SaveItems(v []Item) {
	if err := kvstore.SetJSON(s.store, keyCart, v); err != nil {
		s.log.Errorf("failed to persist %q: %v", keyCart, err)
	}
}
