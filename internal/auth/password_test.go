package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret-sauce", bcrypt.MinCost)
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-sauce", hash)

	assert.NoError(t, ComparePassword(hash, "s3cret-sauce"))
	assert.ErrorIs(t, ComparePassword(hash, "wrong-sauce"), ErrInvalidCredentials)
}

func TestHashPasswordSaltsEveryCall(t *testing.T) {
	first, err := HashPassword("same-plaintext", bcrypt.MinCost)
	require.NoError(t, err)
	second, err := HashPassword("same-plaintext", bcrypt.MinCost)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.NoError(t, ComparePassword(first, "same-plaintext"))
	assert.NoError(t, ComparePassword(second, "same-plaintext"))
}

func TestHashPasswordClampsBadCost(t *testing.T) {
	hash, err := HashPassword("pw", 99)
	require.NoError(t, err)
	assert.NoError(t, ComparePassword(hash, "pw"))
}

func TestComparePasswordMalformedHash(t *testing.T) {
	err := ComparePassword("not-a-bcrypt-hash", "pw")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}
