package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/employee-directory/internal/domain/entity"
	"github.com/oksasatya/employee-directory/internal/domain/repository"
)

// DefaultPageSize is the listing page size.
const DefaultPageSize = 5

// EmployeeInput carries every mutable employee field. The id and
// date_posted are never accepted from input.
type EmployeeInput struct {
	Email   string
	Name    string
	Address string
	City    string
	State   string
	Zip     string
	Phone   string
}

// Page is the listing envelope handed to the template.
type Page struct {
	Items      []*entity.Employee
	Number     int
	PerPage    int
	Total      int
	TotalPages int
}

func (p *Page) HasPrev() bool { return p.Number > 1 }
func (p *Page) HasNext() bool { return p.Number < p.TotalPages }
func (p *Page) PrevPage() int { return p.Number - 1 }
func (p *Page) NextPage() int { return p.Number + 1 }

type EmployeeService struct {
	Employees repository.EmployeeRepository
	Logger    *logrus.Logger
}

func NewEmployeeService(employees repository.EmployeeRepository, logger *logrus.Logger) *EmployeeService {
	return &EmployeeService{Employees: employees, Logger: logger}
}

func (s *EmployeeService) Create(ctx context.Context, in EmployeeInput) (*entity.Employee, error) {
	e := &entity.Employee{}
	applyInput(e, in)
	if err := s.Employees.Create(ctx, e); err != nil {
		return nil, err
	}
	if s.Logger != nil {
		s.Logger.WithField("employee_id", e.ID).Info("employee created")
	}
	return e, nil
}

func (s *EmployeeService) Get(ctx context.Context, id int64) (*entity.Employee, error) {
	return s.Employees.GetByID(ctx, id)
}

// ListPage returns page number `page` (1-based) ordered newest-first.
// Out-of-range pages come back empty, not as an error.
func (s *EmployeeService) ListPage(ctx context.Context, page int) (*Page, error) {
	if page < 1 {
		page = 1
	}
	items, total, err := s.Employees.List(ctx, page, DefaultPageSize)
	if err != nil {
		return nil, err
	}
	totalPages := (total + DefaultPageSize - 1) / DefaultPageSize
	return &Page{
		Items:      items,
		Number:     page,
		PerPage:    DefaultPageSize,
		Total:      total,
		TotalPages: totalPages,
	}, nil
}

// Update replaces every mutable field atomically, keeping id and
// date_posted from the stored record.
func (s *EmployeeService) Update(ctx context.Context, id int64, in EmployeeInput) (*entity.Employee, error) {
	e, err := s.Employees.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	applyInput(e, in)
	if err := s.Employees.Update(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *EmployeeService) Delete(ctx context.Context, id int64) error {
	if err := s.Employees.Delete(ctx, id); err != nil {
		return err
	}
	if s.Logger != nil {
		s.Logger.WithField("employee_id", id).Info("employee deleted")
	}
	return nil
}

func applyInput(e *entity.Employee, in EmployeeInput) {
	e.Email = in.Email
	e.Name = in.Name
	e.Address = in.Address
	e.City = in.City
	e.State = in.State
	e.Zip = in.Zip
	e.Phone = in.Phone
}
