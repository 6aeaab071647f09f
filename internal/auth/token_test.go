package auth_test

import (
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/repairconnect/api/internal/auth"
	"github.com/repairconnect/api/internal/domain"
)

func TestUserTokenRoundTrip(t *testing.T) {
	tm := auth.NewTokenManager("test-secret", 120)

	user := &domain.User{
		ID:     42,
		Email:  "a@x.com",
		Role:   domain.RoleCustomer,
		Status: domain.UserStatusActive,
	}

	token, exp, err := tm.GenerateUserToken(user)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(2*time.Hour), exp, time.Minute)

	claims, err := tm.ParseToken(token)
	require.NoError(t, err)
	require.NotNil(t, claims.UserID)
	assert.Equal(t, int64(42), *claims.UserID)
	assert.Equal(t, "a@x.com", claims.Email)
	assert.Equal(t, domain.RoleCustomer, claims.Role)
	assert.Equal(t, domain.UserStatusActive, claims.Status)
}

func TestAdminTokenHasNoUserID(t *testing.T) {
	tm := auth.NewTokenManager("test-secret", 120)

	token, _, err := tm.GenerateAdminToken("admin@x.com")
	require.NoError(t, err)

	claims, err := tm.ParseToken(token)
	require.NoError(t, err)
	assert.Nil(t, claims.UserID)
	assert.Equal(t, domain.RoleAdmin, claims.Role)
	assert.Empty(t, claims.Status)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	token, _, err := auth.NewTokenManager("secret-a", 120).GenerateAdminToken("admin@x.com")
	require.NoError(t, err)

	_, err = auth.NewTokenManager("secret-b", 120).ParseToken(token)
	assert.Error(t, err)
}

func TestParseTokenRejectsExpired(t *testing.T) {
	claims := &auth.Claims{
		Email: "a@x.com",
		Role:  domain.RoleCustomer,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-3 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = auth.NewTokenManager("test-secret", 120).ParseToken(signed)
	assert.Error(t, err)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	_, err := auth.NewTokenManager("test-secret", 120).ParseToken("not-a-token")
	assert.Error(t, err)
}
