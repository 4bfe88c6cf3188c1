// Package validation checks the screen records for required input and
// reports failures per field.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/ytget/navdemo/internal/model"
)

// FieldError describes one failed rule on one field
type FieldError struct {
	Field string // json name of the field, e.g. "email"
	Tag   string // rule that failed, e.g. "required"
}

// Error is returned when one or more fields fail validation.
// Fields keep the declaration order of the validated struct.
type Error struct {
	Fields []FieldError
}

func (e *Error) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = fmt.Sprintf("%s failed %s", f.Field, f.Tag)
	}
	return "validation: " + strings.Join(parts, ", ")
}

// Has reports whether field failed any rule
func (e *Error) Has(field string) bool {
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}

// FieldNames returns the failed fields in order, without duplicates
func (e *Error) FieldNames() []string {
	names := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		if len(names) > 0 && names[len(names)-1] == f.Field {
			continue
		}
		names = append(names, f.Field)
	}
	return names
}

// AsError extracts a validation error from err
func AsError(err error) (*Error, bool) {
	var verr *Error
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}

// IsValidationError checks if err is a validation failure
func IsValidationError(err error) bool {
	_, ok := AsError(err)
	return ok
}

// Validator wraps the go-playground validator with the app's custom rules
type Validator struct {
	validate *validator.Validate
}

// New creates a Validator. Field names in errors come from json tags.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// Registration only fails for an empty tag or nil func.
	_ = v.RegisterValidation("country", func(fl validator.FieldLevel) bool {
		return model.Country(fl.Field().String()).IsValid()
	})
	return &Validator{validate: v}
}

// Struct validates s and returns *Error when any rule fails
func (v *Validator) Struct(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validation: %w", err)
	}

	out := &Error{Fields: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, FieldError{Field: fe.Field(), Tag: fe.Tag()})
	}
	return out
}
