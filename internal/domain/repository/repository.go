package repository

import (
	"context"
	"errors"

	"github.com/oksasatya/employee-directory/internal/domain/entity"
)

var (
	// ErrNotFound is returned when a record does not exist. Handlers treat
	// it as a terminal 404.
	ErrNotFound = errors.New("not found")
	// ErrEmailTaken is returned when a user insert violates the unique
	// constraint on users.email.
	ErrEmailTaken = errors.New("email already taken")
)

// UserRepository persists user credentials. No other component touches
// password hashes directly.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}

// EmployeeRepository persists employee records.
type EmployeeRepository interface {
	Create(ctx context.Context, e *entity.Employee) error
	GetByID(ctx context.Context, id int64) (*entity.Employee, error)
	GetByName(ctx context.Context, name string) (*entity.Employee, error)
	GetByEmail(ctx context.Context, email string) (*entity.Employee, error)
	// List returns one page ordered by date_posted descending, plus the
	// total record count. An out-of-range page yields an empty slice.
	List(ctx context.Context, page, perPage int) ([]*entity.Employee, int, error)
	Update(ctx context.Context, e *entity.Employee) error
	Delete(ctx context.Context, id int64) error
}
