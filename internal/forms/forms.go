// Package forms declares the typed form schemas submitted by the web UI
// and runs their constraint checks. Validation always runs to completion
// and accumulates every violation so the re-rendered page can show all
// field errors at once. Store-backed uniqueness checks merge their taken
// messages into the same error map; a failing store lookup is returned
// as an error instead.
package forms

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/oksasatya/employee-directory/internal/domain/entity"
	"github.com/oksasatya/employee-directory/internal/domain/repository"
	"github.com/oksasatya/employee-directory/pkg/validation"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validation.New()
	// state abbreviations are a fixed enumeration, not a length check
	_ = v.RegisterValidation("usstate", func(fl validator.FieldLevel) bool {
		return entity.IsUSState(fl.Field().String())
	})
	return v
}

func structErrors(form any) validation.FieldErrors {
	return validation.Collect(validate.Struct(form))
}

// RegistrationForm signs a new user up with email and password.
type RegistrationForm struct {
	Email           string `form:"email" validate:"required,email"`
	Password        string `form:"password" validate:"required"`
	ConfirmPassword string `form:"confirm_password" validate:"required,eqfield=Password"`
}

// Validate runs field constraints plus the uniqueness check against the
// user store. A store failure is returned as an error, distinct from
// constraint violations, so the caller can surface it as a server error.
// The storage-level unique index re-checks at commit time.
func (f *RegistrationForm) Validate(ctx context.Context, users repository.UserRepository) (validation.FieldErrors, error) {
	errs := structErrors(f)
	if f.Email != "" {
		if _, err := users.GetByEmail(ctx, f.Email); err == nil {
			errs.Add("email", "That email is taken. Please choose a different one.")
		} else if !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
	}
	return errs, nil
}

// LoginForm authenticates an existing user.
type LoginForm struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required"`
	Remember bool   `form:"remember"`
}

func (f *LoginForm) Validate() validation.FieldErrors {
	return structErrors(f)
}

// EmployeeForm carries every mutable employee field for both the add and
// edit flows.
type EmployeeForm struct {
	Email   string `form:"email" validate:"required,email"`
	Name    string `form:"name" validate:"required,min=2,max=35"`
	Address string `form:"address" validate:"required,min=10,max=50"`
	City    string `form:"city" validate:"required,min=5,max=50"`
	State   string `form:"state" validate:"required,usstate"`
	// number, not numeric: signs and decimal points are not digits
	Zip     string `form:"zip" validate:"required,number,min=5,max=9"`
	Phone   string `form:"phone" validate:"required,number,min=10,max=12"`
}

// Validate runs the shape constraints shared by the add and edit flows.
func (f *EmployeeForm) Validate() validation.FieldErrors {
	return structErrors(f)
}

// ValidateNew additionally checks name and email against existing records.
// Only the add flow runs this; edits skip uniqueness. A store failure is
// returned as an error, not folded into the field map.
func (f *EmployeeForm) ValidateNew(ctx context.Context, employees repository.EmployeeRepository) (validation.FieldErrors, error) {
	errs := structErrors(f)
	if f.Name != "" {
		if _, err := employees.GetByName(ctx, f.Name); err == nil {
			errs.Add("name", "This Employee already Exist")
		} else if !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
	}
	if f.Email != "" {
		if _, err := employees.GetByEmail(ctx, f.Email); err == nil {
			errs.Add("email", "That Employee email is taken. Please choose a different one.")
		} else if !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
	}
	return errs, nil
}

// Fill pre-populates the form from an existing record for the edit page.
func (f *EmployeeForm) Fill(e *entity.Employee) {
	f.Email = e.Email
	f.Name = e.Name
	f.Address = e.Address
	f.City = e.City
	f.State = e.State
	f.Zip = e.Zip
	f.Phone = e.Phone
}
