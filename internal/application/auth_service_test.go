package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/employee-directory/internal/infrastructure/memory"
)

func newAuthService() *AuthService {
	return NewAuthService(memory.NewUserRepository(), nil)
}

func TestAuthService_RegisterThenAuthenticate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newAuthService()

	u, err := svc.Register(ctx, "alice@example.com", "pw123")
	require.NoError(t, err)
	require.NotEmpty(t, u.ID)
	assert.Equal(t, "alice@example.com", u.Email)
	assert.NotEqual(t, "pw123", u.PasswordHash, "plaintext must never be stored")

	got, err := svc.Authenticate(ctx, "alice@example.com", "pw123")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
}

func TestAuthService_DuplicateEmail(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newAuthService()

	_, err := svc.Register(ctx, "alice@example.com", "pw123")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "alice@example.com", "other")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestAuthService_AuthenticateFailuresAreGeneric(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newAuthService()

	_, err := svc.Register(ctx, "alice@example.com", "pw123")
	require.NoError(t, err)

	// wrong password and unknown email yield the same error
	_, err = svc.Authenticate(ctx, "alice@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Authenticate(ctx, "nobody@example.com", "pw123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
