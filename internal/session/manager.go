// Package session implements the auth gate: it issues signed session
// tokens backed by server-side state in Redis and resolves the current
// user for each request. It also holds the single-use flash messages
// shown after write operations.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/oksasatya/employee-directory/internal/domain/entity"
	"github.com/oksasatya/employee-directory/pkg/helpers"
)

// ErrNoSession is returned when a token is missing, invalid, or its
// server-side session has expired. Callers treat it as Anonymous.
var ErrNoSession = errors.New("no active session")

// Identity is the authenticated principal attached to a request.
type Identity struct {
	UserID string
	Email  string
}

// Flash is a transient status message shown once on the next rendered page.
type Flash struct {
	Category string `json:"category"`
	Message  string `json:"message"`
}

// Gate is implemented by Manager and by test fakes.
type Gate interface {
	Login(ctx context.Context, u *entity.User, remember bool) (token string, exp time.Time, err error)
	Current(ctx context.Context, token string) (*Identity, error)
	Logout(ctx context.Context, token string) error
	AddFlash(ctx context.Context, flashID, category, message string) error
	PopFlashes(ctx context.Context, flashID string) ([]Flash, error)
}

type Manager struct {
	RDB         *redis.Client
	Tokens      *helpers.TokenManager
	SessionTTL  time.Duration
	RememberTTL time.Duration
}

func NewManager(rdb *redis.Client, tokens *helpers.TokenManager, sessionTTL, rememberTTL time.Duration) *Manager {
	return &Manager{RDB: rdb, Tokens: tokens, SessionTTL: sessionTTL, RememberTTL: rememberTTL}
}

func sessionKey(sid string) string { return "session:" + sid }
func flashKey(fid string) string   { return "flash:" + fid }

// Login starts a new session for u and returns the signed cookie token.
// Remember-me sessions get the long TTL; others expire with SessionTTL.
func (m *Manager) Login(ctx context.Context, u *entity.User, remember bool) (string, time.Time, error) {
	sid := uuid.NewString()
	ttl := m.SessionTTL
	if remember {
		ttl = m.RememberTTL
	}

	key := sessionKey(sid)
	pipe := m.RDB.Pipeline()
	pipe.HSet(ctx, key, map[string]any{
		"user_id":    u.ID,
		"email":      u.Email,
		"remember":   remember,
		"created_at": time.Now().UTC().Format(time.RFC3339Nano),
	})
	pipe.Expire(ctx, key, ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return "", time.Time{}, err
	}

	return m.Tokens.GenerateSessionToken(u.ID, sid, ttl)
}

// Current resolves the identity behind a session token. Any failure,
// bad signature, expired token, or missing server-side session, yields
// ErrNoSession.
func (m *Manager) Current(ctx context.Context, token string) (*Identity, error) {
	if token == "" {
		return nil, ErrNoSession
	}
	claims, err := m.Tokens.ParseSessionToken(token)
	if err != nil {
		return nil, ErrNoSession
	}

	data, err := m.RDB.HGetAll(ctx, sessionKey(claims.SessionID)).Result()
	if err != nil || len(data) == 0 {
		return nil, ErrNoSession
	}
	if data["user_id"] != claims.UserID {
		return nil, ErrNoSession
	}

	return &Identity{UserID: data["user_id"], Email: data["email"]}, nil
}

// Logout invalidates the server-side session behind token. An already
// invalid token is not an error.
func (m *Manager) Logout(ctx context.Context, token string) error {
	claims, err := m.Tokens.ParseSessionToken(token)
	if err != nil {
		return nil
	}
	return m.RDB.Del(ctx, sessionKey(claims.SessionID)).Err()
}

// AddFlash queues a status message under the flash scope flashID. The
// scope is separate from the session so messages survive login/logout
// transitions (register success is shown on the login page).
func (m *Manager) AddFlash(ctx context.Context, flashID, category, message string) error {
	b, err := json.Marshal(Flash{Category: category, Message: message})
	if err != nil {
		return err
	}
	key := flashKey(flashID)
	pipe := m.RDB.Pipeline()
	pipe.RPush(ctx, key, b)
	pipe.Expire(ctx, key, 30*time.Minute)
	_, err = pipe.Exec(ctx)
	return err
}

// PopFlashes drains and returns all queued messages; they are shown once.
func (m *Manager) PopFlashes(ctx context.Context, flashID string) ([]Flash, error) {
	if flashID == "" {
		return nil, nil
	}
	key := flashKey(flashID)
	pipe := m.RDB.Pipeline()
	get := pipe.LRange(ctx, key, 0, -1)
	pipe.Del(ctx, key)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, err
	}

	raw, err := get.Result()
	if err != nil {
		return nil, err
	}
	out := make([]Flash, 0, len(raw))
	for _, r := range raw {
		var f Flash
		if err := json.Unmarshal([]byte(r), &f); err != nil {
			continue
		}
		out = append(out, f)
	}
	return out, nil
}

var _ Gate = (*Manager)(nil)
