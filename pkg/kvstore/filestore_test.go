package kvstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sirupsen/logrus"
)

func testLog() *logrus.Entry {
	log := logrus.New()
	log.SetLevel(logrus.ErrorLevel)
	return logrus.NewEntry(log)
}

func TestFileStoreRoundTrip(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Get("products")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.Set("products", []byte(`[{"id":"1"}]`)))
	data, err := store.Get("products")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"1"}]`, string(data))

	require.NoError(t, store.Set("products", []byte(`[]`)))
	data, err = store.Get("products")
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(data))

	require.NoError(t, store.Delete("products"))
	_, err = store.Get("products")
	assert.ErrorIs(t, err, ErrNotFound)

	// deleting an absent key is not an error
	assert.NoError(t, store.Delete("products"))
}

func TestJSONHelpers(t *testing.T) {
	store := NewMemStore()

	type record struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}

	require.NoError(t, SetJSON(store, "records", []record{{ID: "1", Name: "a"}}))

	var out []record
	require.NoError(t, GetJSON(store, "records", &out))
	require.Len(t, out, 1)
	assert.Equal(t, "a", out[0].Name)

	var missing []record
	assert.ErrorIs(t, GetJSON(store, "nope", &missing), ErrNotFound)
}

func TestLoadResetsCorruptedKey(t *testing.T) {
	store := NewMemStore()
	require.NoError(t, store.Set("orders", []byte("{broken")))

	var out []string
	ok := Load(store, testLog(), "orders", &out)
	assert.False(t, ok)

	// the corrupted value was cleared
	_, err := store.Get("orders")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLoadMissingKey(t *testing.T) {
	store := NewMemStore()

	var out []string
	assert.False(t, Load(store, testLog(), "cart", &out))

	require.NoError(t, SetJSON(store, "cart", []string{"x"}))
	assert.True(t, Load(store, testLog(), "cart", &out))
	assert.Equal(t, []string{"x"}, out)
}
