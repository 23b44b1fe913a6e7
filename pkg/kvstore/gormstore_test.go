package kvstore

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupGorm(t *testing.T) (*GormStore, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	return NewGormStore(db), mock
}

func TestGormStoreGet(t *testing.T) {
	store, mock := setupGorm(t)

	rows := sqlmock.NewRows([]string{"key", "value"}).
		AddRow("products", []byte(`[]`))
	mock.ExpectQuery(`SELECT (.+) FROM "kv_entries"`).WillReturnRows(rows)

	value, err := store.Get("products")
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(value))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStoreGetMissing(t *testing.T) {
	store, mock := setupGorm(t)

	mock.ExpectQuery(`SELECT (.+) FROM "kv_entries"`).
		WillReturnRows(sqlmock.NewRows([]string{"key", "value"}))

	_, err := store.Get("products")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStoreSet(t *testing.T) {
	store, mock := setupGorm(t)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "kv_entries"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, store.Set("products", []byte(`[]`)))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStoreDelete(t *testing.T) {
	store, mock := setupGorm(t)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "kv_entries"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, store.Delete("products"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
