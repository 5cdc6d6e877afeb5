package api

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// newValidator builds the request validator shared by all handlers.
// Field names in error messages come from the json tag so validation
// failures name the field the client actually sent.
func newValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// firstValidationMessage renders the first failing field of a validation
// error as a human-readable message. Validation is fail-fast from the
// client's point of view: only the first failure is reported.
func firstValidationMessage(err error) string {
	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrs) == 0 {
		return "Invalid request payload"
	}

	fieldErr := validationErrs[0]
	field := fieldErr.Field()

	switch fieldErr.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s length must be at least %s characters long", field, fieldErr.Param())
	case "max":
		return fmt.Sprintf("%s length must be at most %s characters long", field, fieldErr.Param())
	case "email":
		return fmt.Sprintf("%s must be a valid email", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
