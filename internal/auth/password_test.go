package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/repairconnect/api/internal/auth"
)

func TestHashPassword(t *testing.T) {
	hash, err := auth.HashPassword("s3cret", bcrypt.MinCost)
	require.NoError(t, err)

	assert.NotEqual(t, "s3cret", hash)
	assert.NoError(t, auth.ComparePassword(hash, "s3cret"))
}

func TestComparePasswordMismatch(t *testing.T) {
	hash, err := auth.HashPassword("s3cret", bcrypt.MinCost)
	require.NoError(t, err)

	assert.Error(t, auth.ComparePassword(hash, "wrong"))
}
