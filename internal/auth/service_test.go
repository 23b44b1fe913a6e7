package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nadafaclean/store-service/pkg/kvstore"
	"github.com/nadafaclean/store-service/pkg/logger"
)

func setup(t *testing.T) AuthService {
	t.Helper()
	store := kvstore.NewMemStore()
	log := logger.NewLogger("error", &AuthLogHook{})
	service, err := NewService(NewStorage(store, log), log, "test-secret", "admin", "s3cr3tpass")
	require.NoError(t, err)
	return service
}

func TestSeededSuperAdmin(t *testing.T) {
	service := setup(t)

	admins := service.Admins()
	require.Len(t, admins, 1)
	assert.Equal(t, "admin", admins[0].Username)
	assert.Equal(t, RoleSuperAdmin, admins[0].Role)
	assert.NotEqual(t, "s3cr3tpass", admins[0].PasswordHash, "password must be stored hashed")

	token, admin, err := service.AdminLogin("admin", "s3cr3tpass")
	require.NoError(t, err)
	assert.True(t, admin.IsSuperAdmin())

	claims, err := service.ParseToken(token)
	require.NoError(t, err)
	assert.True(t, claims.IsAdmin())
	assert.True(t, claims.IsSuperAdmin())
}

func TestRegisterAndLogin(t *testing.T) {
	service := setup(t)

	_, user, err := service.Register(RegisterInput{
		Name:     "سارة",
		Email:    "Sara@Example.com",
		Password: "password1",
	})
	require.NoError(t, err)
	assert.Equal(t, "sara@example.com", user.Email)
	assert.Equal(t, RoleCustomer, user.Role)

	token, _, err := service.Login("sara@example.com", "password1")
	require.NoError(t, err)

	claims, err := service.ParseToken(token)
	require.NoError(t, err)
	assert.False(t, claims.IsAdmin())
	assert.Equal(t, user.ID, claims.Subject)

	t.Run("wrong password", func(t *testing.T) {
		_, _, err := service.Login("sara@example.com", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("duplicate email", func(t *testing.T) {
		_, _, err := service.Register(RegisterInput{Name: "x", Email: "sara@example.com", Password: "password2"})
		assert.ErrorIs(t, err, ErrEmailTaken)
	})

	t.Run("short password", func(t *testing.T) {
		_, _, err := service.Register(RegisterInput{Name: "x", Email: "y@example.com", Password: "123"})
		assert.ErrorIs(t, err, errPasswordTooShort)
	})
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	service := setup(t)

	_, err := service.ParseToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestAdminRoster(t *testing.T) {
	service := setup(t)

	added, err := service.AddAdmin(AdminInput{Username: "operator", Password: "op-pass-1", Role: RoleAdmin, Name: "مشغل"})
	require.NoError(t, err)
	assert.False(t, added.IsSuperAdmin())
	require.Len(t, service.Admins(), 2)

	t.Run("duplicate username", func(t *testing.T) {
		_, err := service.AddAdmin(AdminInput{Username: "operator", Password: "op-pass-2", Role: RoleAdmin})
		assert.ErrorIs(t, err, ErrUsernameTaken)
	})

	t.Run("invalid role", func(t *testing.T) {
		_, err := service.AddAdmin(AdminInput{Username: "z", Password: "zzzzzz", Role: "owner"})
		assert.ErrorIs(t, err, errInvalidRole)
	})

	t.Run("update rehashes password", func(t *testing.T) {
		pass := "new-op-pass"
		require.NoError(t, service.UpdateAdmin(added.ID, AdminUpdate{Password: &pass}))
		_, _, err := service.AdminLogin("operator", "new-op-pass")
		assert.NoError(t, err)
		_, _, err = service.AdminLogin("operator", "op-pass-1")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestRemoveAdminInvariants(t *testing.T) {
	service := setup(t)

	sole := service.Admins()[0]

	t.Run("roster must never reach zero", func(t *testing.T) {
		err := service.RemoveAdmin("someone-else", sole.ID)
		assert.ErrorIs(t, err, ErrLastAdmin)
		assert.Len(t, service.Admins(), 1)
	})

	t.Run("self delete refused", func(t *testing.T) {
		added, err := service.AddAdmin(AdminInput{Username: "operator", Password: "op-pass-1", Role: RoleAdmin})
		require.NoError(t, err)

		assert.ErrorIs(t, service.RemoveAdmin(added.ID, added.ID), ErrSelfDelete)
		assert.Len(t, service.Admins(), 2)

		require.NoError(t, service.RemoveAdmin(sole.ID, added.ID))
		assert.Len(t, service.Admins(), 1)
	})

	t.Run("unknown admin", func(t *testing.T) {
		_, err := service.AddAdmin(AdminInput{Username: "second", Password: "op-pass-2", Role: RoleAdmin})
		require.NoError(t, err)
		assert.ErrorIs(t, service.RemoveAdmin(sole.ID, "missing"), ErrAdminNotFound)
	})
}
