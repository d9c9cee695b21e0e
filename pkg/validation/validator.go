package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldErrors accumulates every violated constraint per form field so a
// re-rendered page can display all of them at once.
type FieldErrors map[string][]string

func (fe FieldErrors) Add(field, msg string) {
	fe[field] = append(fe[field], msg)
}

func (fe FieldErrors) Empty() bool { return len(fe) == 0 }

// New builds the validator used by the form layer. Field names in error
// messages come from the form tag so they match submitted input names.
func New() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Collect converts validator.v10 errors into FieldErrors. Validation runs
// to completion, so every failing constraint is reported.
func Collect(err error) FieldErrors {
	out := FieldErrors{}
	if err == nil {
		return out
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, f := range verrs {
			out.Add(f.Field(), messageFor(f))
		}
		return out
	}

	out.Add("form", "invalid input")
	return out
}

func messageFor(fe validator.FieldError) string {
	tag := fe.Tag()
	param := fe.Param()

	switch tag {
	case "required":
		return "This field is required."
	case "email":
		return "Invalid email address."
	case "eqfield":
		return "Field must be equal to " + strings.ToLower(param) + "."
	case "min":
		if isNumberKind(fe.Kind()) {
			return "Must be at least " + param + "."
		}
		return "Must be at least " + param + " characters long."
	case "max":
		if isNumberKind(fe.Kind()) {
			return "Must be at most " + param + "."
		}
		return "Must be at most " + param + " characters long."
	case "oneof":
		return "Not a valid choice."
	case "number", "numeric":
		return "Must contain digits only."
	default:
		if param != "" {
			return fmt.Sprintf("validation failed for '%s' with parameter '%s'", tag, param)
		}
		return fmt.Sprintf("validation failed for '%s'", tag)
	}
}

func isNumberKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}
