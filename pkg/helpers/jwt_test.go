package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionToken_GenerateAndParse(t *testing.T) {
	t.Parallel()

	m := NewTokenManager("super-secret")

	tok, exp, err := m.GenerateSessionToken("user-123", "sid-456", time.Hour)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	claims, err := m.ParseSessionToken(tok)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "sid-456", claims.SessionID)
}

func TestSessionToken_Expired(t *testing.T) {
	t.Parallel()

	m := NewTokenManager("secret")
	tok, _, err := m.GenerateSessionToken("u1", "s1", -time.Second)
	require.NoError(t, err)

	_, err = m.ParseSessionToken(tok)
	assert.Error(t, err)
}

func TestSessionToken_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, _, err := NewTokenManager("right-secret").GenerateSessionToken("u2", "s2", time.Hour)
	require.NoError(t, err)

	_, err = NewTokenManager("wrong-secret").ParseSessionToken(tok)
	assert.Error(t, err)
}

func TestSessionToken_Malformed(t *testing.T) {
	t.Parallel()

	_, err := NewTokenManager("k").ParseSessionToken("not.a.jwt")
	assert.Error(t, err)
}

func TestMaxAgeFrom(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, maxAgeFrom(time.Now().Add(-time.Minute)))
	got := maxAgeFrom(time.Now().Add(time.Hour))
	assert.InDelta(t, 3600, got, 5)
}
