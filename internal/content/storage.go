package content

import (
	"github.com/sirupsen/logrus"

	"github.com/nadafaclean/store-service/pkg/kvstore"
)

const (
	keyContent  = "siteContent"
	keySettings = "settings"
)

type Storage struct {
	store kvstore.Store
	log   *logrus.Entry
}

func NewStorage(store kvstore.Store, log *logrus.Entry) *Storage {
	return &Storage{store: store, log: log}
}

func (s *Storage) LoadBlocks() ([]Block, bool) {
	var v []Block
	ok := kvstore.Load(s.store, s.log, keyContent, &v)
	return v, ok
}

func (s *Storage) SaveBlocks(v []Block) {
	if err := kvstore.SetJSON(s.store, keyContent, v); err != nil {
		s.log.Errorf("failed to persist %q: %v", keyContent, err)
	}
}

func (s *Storage) LoadSettings() (Settings, bool) {
	var v Settings
	ok := kvstore.Load(s.store, s.log, keySettings, &v)
	return v, ok
}

func (s *Storage) SaveSettings(v Settings) {
	if err := kvstore.SetJSON(s.store, keySettings, v); err != nil {
		s.log.Errorf("failed to persist %q: %v", keySettings, err)
	}
}
