package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/employee-directory/internal/domain/entity"
	"github.com/oksasatya/employee-directory/internal/domain/repository"
)

type EmployeeRepository struct {
	pool *pgxpool.Pool
}

func NewEmployeeRepository(pool *pgxpool.Pool) *EmployeeRepository {
	return &EmployeeRepository{pool: pool}
}

const employeeColumns = `id, email, name, address, city, state, zip, phone, date_posted`

func scanEmployee(row pgx.Row) (*entity.Employee, error) {
	e := &entity.Employee{}
	err := row.Scan(&e.ID, &e.Email, &e.Name, &e.Address, &e.City,
		&e.State, &e.Zip, &e.Phone, &e.DatePosted)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *EmployeeRepository) Create(ctx context.Context, e *entity.Employee) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO employees (email, name, address, city, state, zip, phone)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, date_posted
	`, e.Email, e.Name, e.Address, e.City, e.State, e.Zip, e.Phone)

	return row.Scan(&e.ID, &e.DatePosted)
}

func (r *EmployeeRepository) GetByID(ctx context.Context, id int64) (*entity.Employee, error) {
	return scanEmployee(r.pool.QueryRow(ctx, `
		SELECT `+employeeColumns+`
		FROM employees
		WHERE id = $1
	`, id))
}

func (r *EmployeeRepository) GetByName(ctx context.Context, name string) (*entity.Employee, error) {
	return scanEmployee(r.pool.QueryRow(ctx, `
		SELECT `+employeeColumns+`
		FROM employees
		WHERE name = $1
	`, name))
}

func (r *EmployeeRepository) GetByEmail(ctx context.Context, email string) (*entity.Employee, error) {
	return scanEmployee(r.pool.QueryRow(ctx, `
		SELECT `+employeeColumns+`
		FROM employees
		WHERE email = $1
	`, email))
}

func (r *EmployeeRepository) List(ctx context.Context, page, perPage int) ([]*entity.Employee, int, error) {
	if page < 1 {
		page = 1
	}

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM employees`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.pool.Query(ctx, `
		SELECT `+employeeColumns+`
		FROM employees
		ORDER BY date_posted DESC, id DESC
		LIMIT $1 OFFSET $2
	`, perPage, (page-1)*perPage)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	items := make([]*entity.Employee, 0, perPage)
	for rows.Next() {
		e := &entity.Employee{}
		if err := rows.Scan(&e.ID, &e.Email, &e.Name, &e.Address, &e.City,
			&e.State, &e.Zip, &e.Phone, &e.DatePosted); err != nil {
			return nil, 0, err
		}
		items = append(items, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

func (r *EmployeeRepository) Update(ctx context.Context, e *entity.Employee) error {
	// id and date_posted are immutable; every other field is replaced.
	res, err := r.pool.Exec(ctx, `
		UPDATE employees
		SET email = $1, name = $2, address = $3, city = $4, state = $5, zip = $6, phone = $7
		WHERE id = $8
	`, e.Email, e.Name, e.Address, e.City, e.State, e.Zip, e.Phone, e.ID)
	if err != nil {
		return err
	}

	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}

	return nil
}

func (r *EmployeeRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}

	return nil
}

var _ repository.EmployeeRepository = (*EmployeeRepository)(nil)
