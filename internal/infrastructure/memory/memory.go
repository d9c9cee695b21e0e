// Package memory holds in-memory repository implementations with the
// same semantics as the postgres ones. They back isolated test
// instances; nothing in the server wiring depends on them.
package memory

import (
	"context"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/oksasatya/employee-directory/internal/domain/entity"
	"github.com/oksasatya/employee-directory/internal/domain/repository"
)

type UserRepository struct {
	mu     sync.Mutex
	nextID int64
	users  map[string]*entity.User // keyed by id
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: map[string]*entity.User{}}
}

func (r *UserRepository) Create(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return repository.ErrEmailTaken
		}
	}
	r.nextID++
	u.ID = strconv.FormatInt(r.nextID, 10)
	u.CreatedAt = time.Now()
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *UserRepository) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *UserRepository) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

type EmployeeRepository struct {
	mu        sync.Mutex
	nextID    int64
	employees map[int64]*entity.Employee
}

func NewEmployeeRepository() *EmployeeRepository {
	return &EmployeeRepository{employees: map[int64]*entity.Employee{}}
}

func (r *EmployeeRepository) Create(_ context.Context, e *entity.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	e.ID = r.nextID
	e.DatePosted = time.Now()
	cp := *e
	r.employees[e.ID] = &cp
	return nil
}

func (r *EmployeeRepository) GetByID(_ context.Context, id int64) (*entity.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.employees[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *e
	return &cp, nil
}

func (r *EmployeeRepository) GetByName(_ context.Context, name string) (*entity.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.employees {
		if e.Name == name {
			cp := *e
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *EmployeeRepository) GetByEmail(_ context.Context, email string) (*entity.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.employees {
		if e.Email == email {
			cp := *e
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *EmployeeRepository) List(_ context.Context, page, perPage int) ([]*entity.Employee, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if page < 1 {
		page = 1
	}

	all := make([]*entity.Employee, 0, len(r.employees))
	for _, e := range r.employees {
		cp := *e
		all = append(all, &cp)
	}
	sort.Slice(all, func(i, j int) bool {
		if !all[i].DatePosted.Equal(all[j].DatePosted) {
			return all[i].DatePosted.After(all[j].DatePosted)
		}
		return all[i].ID > all[j].ID
	})

	total := len(all)
	start := (page - 1) * perPage
	if start >= total {
		return []*entity.Employee{}, total, nil
	}
	end := start + perPage
	if end > total {
		end = total
	}
	return all[start:end], total, nil
}

func (r *EmployeeRepository) Update(_ context.Context, e *entity.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.employees[e.ID]
	if !ok {
		return repository.ErrNotFound
	}
	cp := *e
	cp.DatePosted = stored.DatePosted
	r.employees[e.ID] = &cp
	return nil
}

func (r *EmployeeRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.employees[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.employees, id)
	return nil
}

var (
	_ repository.UserRepository     = (*UserRepository)(nil)
	_ repository.EmployeeRepository = (*EmployeeRepository)(nil)
)
