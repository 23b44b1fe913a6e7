package order

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nadafaclean/store-service/internal/auth"
	"github.com/nadafaclean/store-service/internal/cart"
	"github.com/nadafaclean/store-service/internal/catalog"
	"github.com/nadafaclean/store-service/pkg/kvstore"
	"github.com/nadafaclean/store-service/pkg/logger"
	"github.com/nadafaclean/store-service/pkg/notify"
)

func setupRouter(t *testing.T) (*gin.Engine, auth.AuthService) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	store := kvstore.NewMemStore()

	catalogLog := logger.NewLogger("error", &catalog.CatalogLogHook{})
	catalogService := catalog.NewService(catalog.NewStorage(store, catalogLog), catalogLog, notify.Nop{})

	cartLog := logger.NewLogger("error", &cart.CartLogHook{})
	cartService := cart.NewService(cart.NewStorage(store, cartLog), cartLog)

	authLog := logger.NewLogger("error", &auth.AuthLogHook{})
	authService, err := auth.NewService(auth.NewStorage(store, authLog), authLog, "test-secret", "admin", "s3cr3tpass")
	require.NoError(t, err)

	orderLog := logger.NewLogger("error", &OrderLogHook{})
	hub := notify.NewHub(orderLog)
	orderService := NewService(NewStorage(store, orderLog), cartService, catalogService, orderLog, hub)

	router := gin.New()
	NewHandler(orderService, authService, hub, orderLog).Register(router)
	return router, authService
}

func TestNotificationFeedRequiresAdmin(t *testing.T) {
	router, authService := setupRouter(t)

	t.Run("anonymous client rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ws/notifications", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("query token reaches the upgrader", func(t *testing.T) {
		token, _, err := authService.AdminLogin("admin", "s3cr3tpass")
		require.NoError(t, err)

		// without upgrade headers the handshake fails, proving the guard
		// passed the request through
		req := httptest.NewRequest(http.MethodGet, "/ws/notifications?token="+token, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
