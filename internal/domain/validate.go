package domain

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report fields by their json names so validation errors match the wire
	// shape instead of Go struct fields.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks an input struct against its schema constraints. It runs
// before any persistence attempt.
func Validate(v interface{}) error {
	return validate.Struct(v)
}

// ValidationDetail renders a validation failure as a single field-level
// message suitable for the response detail.
func ValidationDetail(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err.Error()
	}
	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("field '%s' is required", fe.Field())
	case "email":
		return fmt.Sprintf("field '%s' must be a valid email address", fe.Field())
	case "url":
		return fmt.Sprintf("field '%s' must be a valid URL", fe.Field())
	case "gte":
		return fmt.Sprintf("field '%s' must be >= %s", fe.Field(), fe.Param())
	case "lte":
		return fmt.Sprintf("field '%s' must be <= %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("field '%s' is invalid", fe.Field())
	}
}
