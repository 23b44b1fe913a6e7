package order

import (
	"github.com/sirupsen/logrus"

	"github.com/nadafaclean/store-service/pkg/kvstore"
)

const keyOrders = "orders"

type Storage struct {
	store kvstore.Store
	log   *logrus.Entry
}

func NewStorage(store kvstore.Store, log *logrus.Entry) *Storage {
	return &Storage{store: store, log: log}
}

func (s *Storage) LoadOrders() ([]Order, bool) {
	var v []Order
	ok := kvstore.Load(s.store, s.log, keyOrders, &v)
	return v, ok
}

func (s *Storage) SaveOrders(v []Order) {
	if err := kvstore.SetJSON(s.store, keyOrders, v); err != nil {
		s.log.Errorf("failed to persist %q: %v", keyOrders, err)
	}
}
