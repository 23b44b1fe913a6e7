package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nadafaclean/store-service/pkg/kvstore"
	"github.com/nadafaclean/store-service/pkg/logger"
)

func setup(t *testing.T) ContentService {
	t.Helper()
	log := logger.NewLogger("error", &ContentLogHook{})
	return NewService(NewStorage(kvstore.NewMemStore(), log), log)
}

func TestDefaultSettings(t *testing.T) {
	service := setup(t)

	settings := service.Settings()
	assert.Equal(t, "متجر نظافة", settings.StoreName)
	assert.Equal(t, "SAR", settings.Currency)
}

func TestUpdateSettings(t *testing.T) {
	service := setup(t)

	settings := service.Settings()
	settings.MaintenanceMode = true
	settings.StoreNameEn = "Nadafa Cleaning Store"
	require.NoError(t, service.UpdateSettings(settings))

	got := service.Settings()
	assert.True(t, got.MaintenanceMode)
	assert.Equal(t, "Nadafa Cleaning Store", got.StoreNameEn)
}

func TestBlockLifecycle(t *testing.T) {
	service := setup(t)

	created, err := service.AddBlock(Block{Page: "home", Section: "hero", Title: "عروض الأسبوع"})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	t.Run("filter by page", func(t *testing.T) {
		assert.Len(t, service.Blocks("home"), 1)
		assert.Empty(t, service.Blocks("about"))
	})

	t.Run("validation", func(t *testing.T) {
		_, err := service.AddBlock(Block{Section: "hero"})
		assert.Error(t, err)
		_, err = service.AddBlock(Block{Page: "home"})
		assert.Error(t, err)
	})

	t.Run("update keeps id", func(t *testing.T) {
		upd := *created
		upd.Title = "تخفيضات"
		require.NoError(t, service.UpdateBlock(created.ID, upd))

		blocks := service.Blocks("home")
		require.Len(t, blocks, 1)
		assert.Equal(t, created.ID, blocks[0].ID)
		assert.Equal(t, "تخفيضات", blocks[0].Title)
	})

	t.Run("unknown block", func(t *testing.T) {
		assert.ErrorIs(t, service.UpdateBlock("missing", Block{}), ErrBlockNotFound)
		assert.ErrorIs(t, service.DeleteBlock("missing"), ErrBlockNotFound)
	})

	require.NoError(t, service.DeleteBlock(created.ID))
	assert.Empty(t, service.Blocks(""))
}
