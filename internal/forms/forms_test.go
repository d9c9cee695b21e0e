package forms

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/employee-directory/internal/domain/entity"
	"github.com/oksasatya/employee-directory/internal/infrastructure/memory"
)

func validEmployeeForm() EmployeeForm {
	return EmployeeForm{
		Email:   "jane.doe@example.com",
		Name:    "Jane Doe",
		Address: "100 Market Street",
		City:    "Sacramento",
		State:   "CA",
		Zip:     "94203",
		Phone:   "9165550142",
	}
}

func TestRegistrationForm_Valid(t *testing.T) {
	t.Parallel()

	f := RegistrationForm{Email: "alice@example.com", Password: "pw123", ConfirmPassword: "pw123"}
	errs, err := f.Validate(context.Background(), memory.NewUserRepository())
	require.NoError(t, err)
	assert.True(t, errs.Empty(), "got errors: %v", errs)
}

func TestRegistrationForm_CollectsEveryViolation(t *testing.T) {
	t.Parallel()

	f := RegistrationForm{Email: "not-an-email", Password: "pw123", ConfirmPassword: "different"}
	errs, err := f.Validate(context.Background(), memory.NewUserRepository())
	require.NoError(t, err)

	assert.Contains(t, errs, "email")
	assert.Contains(t, errs, "confirm_password")
}

func TestRegistrationForm_EmailTaken(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	users := memory.NewUserRepository()
	require.NoError(t, users.Create(ctx, &entity.User{Email: "alice@example.com", PasswordHash: "x"}))

	f := RegistrationForm{Email: "alice@example.com", Password: "pw123", ConfirmPassword: "pw123"}
	errs, err := f.Validate(ctx, users)
	require.NoError(t, err)
	require.Contains(t, errs, "email")
	assert.Equal(t, "That email is taken. Please choose a different one.", errs["email"][0])
}

func TestLoginForm_RequiredFields(t *testing.T) {
	t.Parallel()

	f := LoginForm{}
	errs := f.Validate()
	assert.Contains(t, errs, "email")
	assert.Contains(t, errs, "password")
}

func TestEmployeeForm_Valid(t *testing.T) {
	t.Parallel()

	f := validEmployeeForm()
	assert.True(t, f.Validate().Empty())
}

func TestEmployeeForm_NameTooShort(t *testing.T) {
	t.Parallel()

	f := validEmployeeForm()
	f.Name = "J"
	errs := f.Validate()
	assert.Contains(t, errs, "name")
}

func TestEmployeeForm_LengthBounds(t *testing.T) {
	t.Parallel()

	f := validEmployeeForm()
	f.Address = "too short"     // 9 < 10
	f.City = "Oslo"             // 4 < 5
	f.Zip = "123"               // 3 < 5
	f.Phone = "123456789012345" // 15 > 12
	errs := f.Validate()

	assert.Contains(t, errs, "address")
	assert.Contains(t, errs, "city")
	assert.Contains(t, errs, "zip")
	assert.Contains(t, errs, "phone")
}

func TestEmployeeForm_StateMustBeKnownAbbreviation(t *testing.T) {
	t.Parallel()

	f := validEmployeeForm()
	f.State = "XX"
	errs := f.Validate()
	assert.Contains(t, errs, "state")

	f.State = "WY"
	assert.True(t, f.Validate().Empty())
}

func TestEmployeeForm_NumericOnlyZipAndPhone(t *testing.T) {
	t.Parallel()

	f := validEmployeeForm()
	f.Zip = "9420a"
	f.Phone = "916-555-0142"
	errs := f.Validate()
	assert.Contains(t, errs, "zip")
	assert.Contains(t, errs, "phone")
}

func TestEmployeeForm_DigitsOnlyRejectsSignsAndDecimals(t *testing.T) {
	t.Parallel()

	for _, zip := range []string{"+9420", "-9420", "94.03"} {
		f := validEmployeeForm()
		f.Zip = zip
		errs := f.Validate()
		require.Contains(t, errs, "zip", "zip %q accepted", zip)
		assert.Equal(t, "Must contain digits only.", errs["zip"][0])
	}
}

func TestEmployeeForm_ValidateNew_Uniqueness(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	employees := memory.NewEmployeeRepository()
	existing := &entity.Employee{
		Email: "jane.doe@example.com", Name: "Jane Doe",
		Address: "100 Market Street", City: "Sacramento",
		State: "CA", Zip: "94203", Phone: "9165550142",
	}
	require.NoError(t, employees.Create(ctx, existing))

	f := validEmployeeForm()
	errs, err := f.ValidateNew(ctx, employees)
	require.NoError(t, err)
	require.Contains(t, errs, "name")
	require.Contains(t, errs, "email")
	assert.Equal(t, "This Employee already Exist", errs["name"][0])
	assert.Equal(t, "That Employee email is taken. Please choose a different one.", errs["email"][0])

	// plain Validate skips uniqueness, as the edit flow does
	assert.True(t, f.Validate().Empty())
}

// brokenUsers and brokenEmployees fail every lookup, standing in for a
// store that is down.
var errStoreDown = errors.New("store down")

type brokenUsers struct{}

func (brokenUsers) Create(context.Context, *entity.User) error { return errStoreDown }
func (brokenUsers) GetByID(context.Context, string) (*entity.User, error) {
	return nil, errStoreDown
}
func (brokenUsers) GetByEmail(context.Context, string) (*entity.User, error) {
	return nil, errStoreDown
}

type brokenEmployees struct{}

func (brokenEmployees) Create(context.Context, *entity.Employee) error { return errStoreDown }
func (brokenEmployees) GetByID(context.Context, int64) (*entity.Employee, error) {
	return nil, errStoreDown
}
func (brokenEmployees) GetByName(context.Context, string) (*entity.Employee, error) {
	return nil, errStoreDown
}
func (brokenEmployees) GetByEmail(context.Context, string) (*entity.Employee, error) {
	return nil, errStoreDown
}
func (brokenEmployees) List(context.Context, int, int) ([]*entity.Employee, int, error) {
	return nil, 0, errStoreDown
}
func (brokenEmployees) Update(context.Context, *entity.Employee) error { return errStoreDown }
func (brokenEmployees) Delete(context.Context, int64) error            { return errStoreDown }

func TestRegistrationForm_StoreFailureIsAnError(t *testing.T) {
	t.Parallel()

	f := RegistrationForm{Email: "alice@example.com", Password: "pw123", ConfirmPassword: "pw123"}
	_, err := f.Validate(context.Background(), brokenUsers{})
	assert.ErrorIs(t, err, errStoreDown, "store failure must not pass as a field error")
}

func TestEmployeeForm_ValidateNew_StoreFailureIsAnError(t *testing.T) {
	t.Parallel()

	f := validEmployeeForm()
	_, err := f.ValidateNew(context.Background(), brokenEmployees{})
	assert.ErrorIs(t, err, errStoreDown, "store failure must not pass as a field error")
}

func TestEmployeeForm_FillFromRecord(t *testing.T) {
	t.Parallel()

	e := &entity.Employee{
		ID: 7, Email: "jane.doe@example.com", Name: "Jane Doe",
		Address: "100 Market Street", City: "Sacramento",
		State: "CA", Zip: "94203", Phone: "9165550142",
	}
	var f EmployeeForm
	f.Fill(e)

	assert.Equal(t, e.Email, f.Email)
	assert.Equal(t, e.Name, f.Name)
	assert.Equal(t, e.Address, f.Address)
	assert.Equal(t, e.City, f.City)
	assert.Equal(t, e.State, f.State)
	assert.Equal(t, e.Zip, f.Zip)
	assert.Equal(t, e.Phone, f.Phone)
}
