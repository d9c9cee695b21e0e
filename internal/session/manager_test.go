package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/employee-directory/internal/domain/entity"
	"github.com/oksasatya/employee-directory/pkg/helpers"
)

const (
	testSessionTTL  = 24 * time.Hour
	testRememberTTL = 720 * time.Hour
)

func newTestManager(t *testing.T) (*Manager, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewManager(rdb, helpers.NewTokenManager("test-secret"), testSessionTTL, testRememberTTL), mr
}

func testUser() *entity.User {
	return &entity.User{ID: "user-1", Email: "alice@example.com"}
}

func TestLoginThenCurrent(t *testing.T) {
	m, _ := newTestManager(t)
	ctx := context.Background()

	token, exp, err := m.Login(ctx, testUser(), false)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(testSessionTTL), exp, time.Minute)

	id, err := m.Current(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", id.UserID)
	assert.Equal(t, "alice@example.com", id.Email)
}

func TestRememberSelectsLongTTL(t *testing.T) {
	m, mr := newTestManager(t)
	ctx := context.Background()

	short, shortExp, err := m.Login(ctx, testUser(), false)
	require.NoError(t, err)
	long, longExp, err := m.Login(ctx, testUser(), true)
	require.NoError(t, err)

	shortClaims, err := m.Tokens.ParseSessionToken(short)
	require.NoError(t, err)
	longClaims, err := m.Tokens.ParseSessionToken(long)
	require.NoError(t, err)

	assert.Equal(t, testSessionTTL, mr.TTL(sessionKey(shortClaims.SessionID)))
	assert.Equal(t, testRememberTTL, mr.TTL(sessionKey(longClaims.SessionID)))
	assert.WithinDuration(t, time.Now().Add(testSessionTTL), shortExp, time.Minute)
	assert.WithinDuration(t, time.Now().Add(testRememberTTL), longExp, time.Minute)
}

func TestCurrentRejectsBadTokens(t *testing.T) {
	m, _ := newTestManager(t)
	ctx := context.Background()

	_, err := m.Current(ctx, "")
	assert.ErrorIs(t, err, ErrNoSession)

	_, err = m.Current(ctx, "not.a.token")
	assert.ErrorIs(t, err, ErrNoSession)

	// a token signed with a different secret is a forgery
	other := helpers.NewTokenManager("other-secret")
	forged, _, err := other.GenerateSessionToken("user-1", "sid-1", time.Hour)
	require.NoError(t, err)
	_, err = m.Current(ctx, forged)
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestCurrentRejectsTamperedServerSession(t *testing.T) {
	m, mr := newTestManager(t)
	ctx := context.Background()

	token, _, err := m.Login(ctx, testUser(), false)
	require.NoError(t, err)
	claims, err := m.Tokens.ParseSessionToken(token)
	require.NoError(t, err)

	// server-side hash now belongs to a different user
	mr.HSet(sessionKey(claims.SessionID), "user_id", "someone-else")
	_, err = m.Current(ctx, token)
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestCurrentAfterServerSideExpiry(t *testing.T) {
	m, mr := newTestManager(t)
	ctx := context.Background()

	token, _, err := m.Login(ctx, testUser(), false)
	require.NoError(t, err)

	mr.FastForward(testSessionTTL + time.Minute)
	_, err = m.Current(ctx, token)
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestLogout(t *testing.T) {
	m, _ := newTestManager(t)
	ctx := context.Background()

	token, _, err := m.Login(ctx, testUser(), false)
	require.NoError(t, err)

	require.NoError(t, m.Logout(ctx, token))
	_, err = m.Current(ctx, token)
	assert.ErrorIs(t, err, ErrNoSession)

	// an unparsable token is a no-op, not an error
	assert.NoError(t, m.Logout(ctx, "garbage"))
}

func TestFlashQueueDrainsOnce(t *testing.T) {
	m, mr := newTestManager(t)
	ctx := context.Background()

	require.NoError(t, m.AddFlash(ctx, "fid-1", "success", "first"))
	require.NoError(t, m.AddFlash(ctx, "fid-1", "danger", "second"))

	got, err := m.PopFlashes(ctx, "fid-1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, Flash{Category: "success", Message: "first"}, got[0])
	assert.Equal(t, Flash{Category: "danger", Message: "second"}, got[1])
	assert.False(t, mr.Exists(flashKey("fid-1")))

	got, err = m.PopFlashes(ctx, "fid-1")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFlashesExpireUnread(t *testing.T) {
	m, mr := newTestManager(t)
	ctx := context.Background()

	require.NoError(t, m.AddFlash(ctx, "fid-1", "success", "stale"))
	mr.FastForward(31 * time.Minute)

	got, err := m.PopFlashes(ctx, "fid-1")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestPopFlashesWithoutScope(t *testing.T) {
	m, _ := newTestManager(t)

	got, err := m.PopFlashes(context.Background(), "")
	require.NoError(t, err)
	assert.Nil(t, got)
}
