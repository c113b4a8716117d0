package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecret = "test-secret"
	testWindow = 7 * 24 * time.Hour
)

var testIdentity = Identity{ID: 42, Email: "a@x.com", Role: "customer"}

func TestParseToken_RoundTrip(t *testing.T) {
	now := time.Now()

	token, err := GenerateToken(testSecret, testIdentity, testWindow, now)
	require.NoError(t, err)

	claims, err := ParseToken(testSecret, token, now)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "a@x.com", claims.Email)
	assert.Equal(t, "customer", claims.Role)
}

func TestParseToken_ValidInsideWindow(t *testing.T) {
	now := time.Now()

	token, err := GenerateToken(testSecret, testIdentity, testWindow, now)
	require.NoError(t, err)

	_, err = ParseToken(testSecret, token, now.Add(testWindow-time.Second))
	assert.NoError(t, err)
}

func TestParseToken_ExpiredAtWindowEnd(t *testing.T) {
	now := time.Now()

	token, err := GenerateToken(testSecret, testIdentity, testWindow, now)
	require.NoError(t, err)

	_, err = ParseToken(testSecret, token, now.Add(testWindow))
	assert.ErrorIs(t, err, ErrExpired)

	_, err = ParseToken(testSecret, token, now.Add(testWindow+time.Hour))
	assert.ErrorIs(t, err, ErrExpired)
}

func TestParseToken_WrongSecret(t *testing.T) {
	now := time.Now()

	token, err := GenerateToken(testSecret, testIdentity, testWindow, now)
	require.NoError(t, err)

	_, err = ParseToken("another-secret", token, now)
	assert.ErrorIs(t, err, ErrBadSignature)
}

func TestParseToken_Malformed(t *testing.T) {
	_, err := ParseToken(testSecret, "not-a-token", time.Now())
	assert.ErrorIs(t, err, ErrMalformed)

	_, err = ParseToken(testSecret, "a.b.c", time.Now())
	assert.ErrorIs(t, err, ErrMalformed)
}
