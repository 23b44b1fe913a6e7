package auth

import (
	"github.com/sirupsen/logrus"

	"github.com/nadafaclean/store-service/pkg/kvstore"
)

const (
	keyAdmins = "admins"
	keyUsers  = "users"
)

type Storage struct {
	store kvstore.Store
	log   *logrus.Entry
}

func NewStorage(store kvstore.Store, log *logrus.Entry) *Storage {
	return &Storage{store: store, log: log}
}

func (s *Storage) LoadAdmins() ([]Admin, bool) {
	var v []Admin
	ok := kvstore.Load(s.store, s.log, keyAdmins, &v)
	return v, ok
}

func (s *Storage) SaveAdmins(v []Admin) {
	if err := kvstore.SetJSON(s.store, keyAdmins, v); err != nil {
		s.log.Errorf("failed to persist %q: %v", keyAdmins, err)
	}
}

func (s *Storage) LoadUsers() ([]User, bool) {
	var v []User
	ok := kvstore.Load(s.store, s.log, keyUsers, &v)
	return v, ok
}

func (s *Storage) SaveUsers(v []User) {
	if err := kvstore.SetJSON(s.store, keyUsers, v); err != nil {
		s.log.Errorf("failed to persist %q: %v", keyUsers, err)
	}
}
