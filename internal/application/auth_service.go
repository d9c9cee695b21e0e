package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/employee-directory/internal/domain/entity"
	"github.com/oksasatya/employee-directory/internal/domain/repository"
	"github.com/oksasatya/employee-directory/pkg/helpers"
)

var (
	// ErrInvalidCredentials covers both unknown email and wrong password;
	// callers must not reveal which factor failed.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already taken")
)

// AuthService is the credential store: it owns password hashing and is
// the only component that sees plaintext passwords.
type AuthService struct {
	Users  repository.UserRepository
	Logger *logrus.Logger
}

func NewAuthService(users repository.UserRepository, logger *logrus.Logger) *AuthService {
	return &AuthService{Users: users, Logger: logger}
}

// Register hashes the password and persists a new user. The unique index
// on users.email backs the form-level uniqueness check at commit time.
func (s *AuthService) Register(ctx context.Context, email, password string) (*entity.User, error) {
	hash, err := helpers.HashPassword(password)
	if err != nil {
		return nil, err
	}

	u := &entity.User{Email: email, PasswordHash: hash}
	if err := s.Users.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	if s.Logger != nil {
		s.Logger.WithField("user_id", u.ID).Info("user registered")
	}
	return u, nil
}

// Authenticate returns the user only when the stored hash verifies
// against the supplied password. bcrypt compares in constant time.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*entity.User, error) {
	u, err := s.Users.GetByEmail(ctx, email)
	if err != nil || u == nil {
		return nil, ErrInvalidCredentials
	}
	if !helpers.CompareHashAndPassword(u.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}
