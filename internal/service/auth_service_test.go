package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/repairconnect/api/internal/config"
	"github.com/repairconnect/api/internal/domain"
	"github.com/repairconnect/api/internal/events"
	"github.com/repairconnect/api/internal/service"
	apperrors "github.com/repairconnect/api/pkg/util"
)

func newAuthService(repo *fakeUserRepo) *service.AuthService {
	cfg := config.Config{
		Auth: config.AuthConfig{
			JWTSecret:       "test-secret",
			TokenTTLMinutes: 120,
			BcryptCost:      bcrypt.MinCost,
		},
		Admin: config.AdminConfig{
			Email:    "admin@x.com",
			Password: "admin-pass",
		},
	}
	return service.NewAuthService(cfg, repo, events.NewInMemoryDispatcher())
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("stores a hash, never the plaintext", func(t *testing.T) {
		repo := newFakeUserRepo()
		svc := newAuthService(repo)

		user, err := svc.Register(ctx, "A", "a@x.com", "p", domain.RoleCustomer)
		require.NoError(t, err)
		assert.NotEqual(t, "p", user.PasswordHash)
		assert.Equal(t, domain.UserStatusActive, user.Status)

		_, _, err = svc.Login(ctx, "a@x.com", "p")
		assert.NoError(t, err)
	})

	t.Run("empty role defaults to customer", func(t *testing.T) {
		repo := newFakeUserRepo()
		svc := newAuthService(repo)

		user, err := svc.Register(ctx, "A", "a@x.com", "p", "")
		require.NoError(t, err)
		assert.Equal(t, domain.RoleCustomer, user.Role)
	})

	t.Run("admin role is rejected", func(t *testing.T) {
		repo := newFakeUserRepo()
		svc := newAuthService(repo)

		_, err := svc.Register(ctx, "A", "a@x.com", "p", domain.RoleAdmin)
		assert.True(t, apperrors.IsCode(err, "VALIDATION_FAILED"))
	})

	t.Run("missing fields are rejected", func(t *testing.T) {
		repo := newFakeUserRepo()
		svc := newAuthService(repo)

		_, err := svc.Register(ctx, "", "a@x.com", "p", domain.RoleCustomer)
		assert.True(t, apperrors.IsCode(err, "VALIDATION_FAILED"))

		_, err = svc.Register(ctx, "A", "a@x.com", "", domain.RoleCustomer)
		assert.True(t, apperrors.IsCode(err, "VALIDATION_FAILED"))
	})

	t.Run("duplicate email is a conflict", func(t *testing.T) {
		repo := newFakeUserRepo()
		svc := newAuthService(repo)

		_, err := svc.Register(ctx, "A", "a@x.com", "p", domain.RoleCustomer)
		require.NoError(t, err)

		_, err = svc.Register(ctx, "B", "a@x.com", "q", domain.RoleProvider)
		assert.True(t, apperrors.IsCode(err, "CONFLICT"))
	})
}

func TestLoginStatusGate(t *testing.T) {
	ctx := context.Background()

	register := func(t *testing.T, svc *service.AuthService) *domain.User {
		t.Helper()
		user, err := svc.Register(ctx, "A", "a@x.com", "p", domain.RoleCustomer)
		require.NoError(t, err)
		return user
	}

	t.Run("unknown user is unauthorized", func(t *testing.T) {
		svc := newAuthService(newFakeUserRepo())
		_, _, err := svc.Login(ctx, "nobody@x.com", "p")
		assert.True(t, apperrors.IsCode(err, "UNAUTHORIZED"))
	})

	t.Run("wrong password is unauthorized", func(t *testing.T) {
		repo := newFakeUserRepo()
		svc := newAuthService(repo)
		register(t, svc)

		_, _, err := svc.Login(ctx, "a@x.com", "wrong")
		assert.True(t, apperrors.IsCode(err, "UNAUTHORIZED"))
	})

	t.Run("banned fails even with correct password", func(t *testing.T) {
		repo := newFakeUserRepo()
		svc := newAuthService(repo)
		user := register(t, svc)

		_, err := repo.SetStatus(ctx, user.ID, domain.UserStatusBanned, nil)
		require.NoError(t, err)

		_, _, err = svc.Login(ctx, "a@x.com", "p")
		assert.True(t, apperrors.IsCode(err, "FORBIDDEN"))
		assert.Contains(t, err.Error(), "permanently banned")
	})

	t.Run("active suspension reports remaining whole hours", func(t *testing.T) {
		repo := newFakeUserRepo()
		svc := newAuthService(repo)
		user := register(t, svc)

		until := time.Now().Add(90 * time.Minute)
		_, err := repo.SetStatus(ctx, user.ID, domain.UserStatusSuspended, &until)
		require.NoError(t, err)

		_, _, err = svc.Login(ctx, "a@x.com", "p")
		assert.True(t, apperrors.IsCode(err, "FORBIDDEN"))
		assert.Contains(t, err.Error(), "2 hour(s)")
	})

	t.Run("expired suspension reactivates lazily", func(t *testing.T) {
		repo := newFakeUserRepo()
		svc := newAuthService(repo)
		user := register(t, svc)

		until := time.Now().Add(-time.Hour)
		_, err := repo.SetStatus(ctx, user.ID, domain.UserStatusSuspended, &until)
		require.NoError(t, err)

		token, _, err := svc.Login(ctx, "a@x.com", "p")
		require.NoError(t, err)

		stored, err := repo.GetByEmail(ctx, "a@x.com")
		require.NoError(t, err)
		assert.Equal(t, domain.UserStatusActive, stored.Status)
		assert.Nil(t, stored.SuspendedUntil)

		claims, err := svc.TokenManager().ParseToken(token)
		require.NoError(t, err)
		assert.Equal(t, domain.UserStatusActive, claims.Status)
	})

	t.Run("suspended with nil expiry reactivates lazily", func(t *testing.T) {
		repo := newFakeUserRepo()
		svc := newAuthService(repo)
		user := register(t, svc)

		_, err := repo.SetStatus(ctx, user.ID, domain.UserStatusSuspended, nil)
		require.NoError(t, err)

		_, _, err = svc.Login(ctx, "a@x.com", "p")
		require.NoError(t, err)

		stored, err := repo.GetByEmail(ctx, "a@x.com")
		require.NoError(t, err)
		assert.Equal(t, domain.UserStatusActive, stored.Status)
	})
}

func TestLoginTokenClaims(t *testing.T) {
	ctx := context.Background()
	repo := newFakeUserRepo()
	svc := newAuthService(repo)

	user, err := svc.Register(ctx, "A", "a@x.com", "p", domain.RoleCustomer)
	require.NoError(t, err)

	token, exp, err := svc.Login(ctx, "a@x.com", "p")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(2*time.Hour), exp, time.Minute)

	claims, err := svc.TokenManager().ParseToken(token)
	require.NoError(t, err)
	require.NotNil(t, claims.UserID)
	assert.Equal(t, user.ID, *claims.UserID)
	assert.Equal(t, "a@x.com", claims.Email)
	assert.Equal(t, domain.RoleCustomer, claims.Role)
	assert.Equal(t, domain.UserStatusActive, claims.Status)
}

func TestAdminLogin(t *testing.T) {
	svc := newAuthService(newFakeUserRepo())

	t.Run("issues an admin token for configured credentials", func(t *testing.T) {
		token, _, err := svc.AdminLogin("admin@x.com", "admin-pass")
		require.NoError(t, err)

		claims, err := svc.TokenManager().ParseToken(token)
		require.NoError(t, err)
		assert.Equal(t, domain.RoleAdmin, claims.Role)
		assert.Nil(t, claims.UserID)
	})

	t.Run("rejects wrong credentials", func(t *testing.T) {
		_, _, err := svc.AdminLogin("admin@x.com", "nope")
		assert.True(t, apperrors.IsCode(err, "UNAUTHORIZED"))

		_, _, err = svc.AdminLogin("other@x.com", "admin-pass")
		assert.True(t, apperrors.IsCode(err, "UNAUTHORIZED"))
	})
}
