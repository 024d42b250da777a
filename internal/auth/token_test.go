package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenManager(secret string) *TokenManager {
	return NewTokenManager(secret, "recipehub-test", "recipehub-test-clients", 30*time.Minute)
}

func TestGenerateAndParse(t *testing.T) {
	tm := newTestTokenManager("test-secret")

	token, expiresAt, err := tm.Generate(42, "alice")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(30*time.Minute), expiresAt, 2*time.Second)

	claims, err := tm.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "42", claims.Subject)
	assert.Equal(t, "recipehub-test", claims.Issuer)
}

func TestParseExpiredToken(t *testing.T) {
	tm := newTestTokenManager("test-secret")

	issuedAt := time.Now()
	tm.now = func() time.Time { return issuedAt }
	token, _, err := tm.Generate(7, "bob")
	require.NoError(t, err)

	// Still valid just inside the window.
	tm.now = func() time.Time { return issuedAt.Add(29 * time.Minute) }
	_, err = tm.Parse(token)
	assert.NoError(t, err)

	// Valid at the exact expiry instant, expired just past it.
	tm.now = func() time.Time { return issuedAt.Add(30 * time.Minute) }
	_, err = tm.Parse(token)
	assert.NoError(t, err)

	tm.now = func() time.Time { return issuedAt.Add(31 * time.Minute) }
	_, err = tm.Parse(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestParseWrongKey(t *testing.T) {
	issuing := newTestTokenManager("key-one")
	validating := newTestTokenManager("key-two")

	token, _, err := issuing.Generate(1, "alice")
	require.NoError(t, err)

	_, err = validating.Parse(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestParseIssuerAudienceMismatch(t *testing.T) {
	issuing := NewTokenManager("shared", "other-issuer", "recipehub-test-clients", time.Minute)
	_, err := newTestTokenManager("shared").Parse(mustGenerate(t, issuing))
	assert.ErrorIs(t, err, ErrTokenInvalid)

	issuing = NewTokenManager("shared", "recipehub-test", "other-audience", time.Minute)
	_, err = newTestTokenManager("shared").Parse(mustGenerate(t, issuing))
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestParseMalformedToken(t *testing.T) {
	tm := newTestTokenManager("test-secret")
	_, err := tm.Parse("not.a.token")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestBearerToken(t *testing.T) {
	token, err := BearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	// Scheme comparison is case insensitive.
	_, err = BearerToken("bearer abc")
	assert.NoError(t, err)

	for _, header := range []string{"", "Bearer", "Bearer ", "Basic abc", "abc.def.ghi"} {
		_, err := BearerToken(header)
		assert.ErrorIs(t, err, ErrNoCredential, "header %q", header)
	}
}

func mustGenerate(t *testing.T, tm *TokenManager) string {
	t.Helper()
	token, _, err := tm.Generate(1, "alice")
	require.NoError(t, err)
	return token
}
