// Package kvstore is the persistence adapter for the storefront: a synchronous
// string-keyed store of JSON blobs. Every state manager owns a disjoint set of
// keys and is the sole writer of those keys.
package kvstore

import (
	"encoding/json"
	"errors"

	"github.com/sirupsen/logrus"
)

var ErrNotFound = errors.New("key not found")

type Store interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
}

// GetJSON unmarshals the value stored under key into out. Returns ErrNotFound
// when the key is absent.
func GetJSON(s Store, key string, out interface{}) error {
	data, err := s.Get(key)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}

func SetJSON(s Store, key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.Set(key, data)
}

// Load reads a collection key into out. A missing key reports false; a
// corrupted value is cleared so the next load starts clean, and reports false
// instead of failing the caller.
func Load(s Store, log *logrus.Entry, key string, out interface{}) bool {
	err := GetJSON(s, key, out)
	if err == nil {
		return true
	}
	if errors.Is(err, ErrNotFound) {
		return false
	}

	log.Warnf("resetting corrupted key %q: %v", key, err)
	if derr := s.Delete(key); derr != nil {
		log.Errorf("failed to clear corrupted key %q: %v", key, derr)
	}
	return false
}
