package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nadafaclean/store-service/pkg/kvstore"
	"github.com/nadafaclean/store-service/pkg/logger"
)

func guardedRouter(t *testing.T) (*gin.Engine, AuthService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := kvstore.NewMemStore()
	log := logger.NewLogger("error", &AuthLogHook{})
	service, err := NewService(NewStorage(store, log), log, "test-secret", "admin", "s3cr3tpass")
	require.NoError(t, err)

	router := gin.New()
	router.GET("/admin-only", RequireAdmin(service), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"role": ClaimsFromContext(c).Role})
	})
	router.GET("/super-only", RequireSuperAdmin(service), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return router, service
}

func doRequest(router *gin.Engine, token string) func(path string) *httptest.ResponseRecorder {
	return func(path string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}
}

func TestGuardRejectsMissingToken(t *testing.T) {
	router, _ := guardedRouter(t)

	w := doRequest(router, "")("/admin-only")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGuardRejectsCustomerOnAdminRoutes(t *testing.T) {
	router, service := guardedRouter(t)

	token, _, err := service.Register(RegisterInput{Name: "سارة", Email: "sara@example.com", Password: "password1"})
	require.NoError(t, err)

	w := doRequest(router, token)("/admin-only")
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestGuardAcceptsQueryToken(t *testing.T) {
	router, service := guardedRouter(t)

	token, _, err := service.AdminLogin("admin", "s3cr3tpass")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/admin-only?token="+token, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/admin-only?token=garbage", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGuardAllowsAdmins(t *testing.T) {
	router, service := guardedRouter(t)

	superToken, _, err := service.AdminLogin("admin", "s3cr3tpass")
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, doRequest(router, superToken)("/admin-only").Code)
	assert.Equal(t, http.StatusOK, doRequest(router, superToken)("/super-only").Code)

	_, err = service.AddAdmin(AdminInput{Username: "operator", Password: "op-pass-1", Role: RoleAdmin})
	require.NoError(t, err)
	opToken, _, err := service.AdminLogin("operator", "op-pass-1")
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, doRequest(router, opToken)("/admin-only").Code)
	assert.Equal(t, http.StatusForbidden, doRequest(router, opToken)("/super-only").Code)
}
