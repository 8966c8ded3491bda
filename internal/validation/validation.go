// Package validation checks decoded request bodies against their
// `validate` struct tags and reports every failing field.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

type (
	// Error is returned when a request is malformed, it carries one entry
	// per offending field.
	Error struct {
		Fields []FieldError
	}

	FieldError struct {
		Field   string `json:"field"`
		Rule    string `json:"rule"`
		Param   string `json:"param,omitempty"`
		Message string `json:"message"`
	}
)

var (
	validate = newValidator()
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

func (e Error) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Message)
	}
	return fmt.Sprintf("validation failed: %v", strings.Join(parts, "; "))
}

// Field builds an Error for a single value that is not part of a struct,
// like path and query parameters.
func Field(name, rule, param, message string) Error {
	return Error{Fields: []FieldError{{Field: name, Rule: rule, Param: param, Message: message}}}
}

// Struct validates v and converts validator errors into Error.
func Struct(v interface{}) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := Error{Fields: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, FieldError{
			Field:   fe.Field(),
			Rule:    fe.Tag(),
			Param:   fe.Param(),
			Message: message(fe),
		})
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%v is required", fe.Field())
	case "min":
		return fmt.Sprintf("%v must have at least %v characters", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%v must have at most %v characters", fe.Field(), fe.Param())
	case "gt":
		return fmt.Sprintf("%v must be greater than %v", fe.Field(), fe.Param())
	case "lt":
		return fmt.Sprintf("%v must be less than %v", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%v failed on %v", fe.Field(), fe.Tag())
	}
}
