package messages

import (
	"github.com/sirupsen/logrus"

	"github.com/nadafaclean/store-service/pkg/kvstore"
)

const keyMessages = "contactMessages"

type Storage struct {
	store kvstore.Store
	log   *logrus.Entry
}

func NewStorage(store kvstore.Store, log *logrus.Entry) *Storage {
	return &Storage{store: store, log: log}
}

func (s *Storage) LoadMessages() ([]Message, bool) {
	var v []Message
	ok := kvstore.Load(s.store, s.log, keyMessages, &v)
	return v, ok
}

func (s *Storage) SaveMessages(v []Message) {
	if err := kvstore.SetJSON(s.store, keyMessages, v); err != nil {
		s.log.Errorf("failed to persist %q: %v", keyMessages, err)
	}
}
