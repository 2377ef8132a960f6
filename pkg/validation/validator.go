// Package validation checks configuration values, either through struct
// tags or with a fluent validator that collects every failure.
package validation

import (
	"errors"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/jameshskoh/girvan-newman/pkg/logging"
)

var (
	// validate is a singleton validator instance
	validate     *validator.Validate
	validateOnce sync.Once
)

func instance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		_ = validate.RegisterValidation("loglevel", func(fl validator.FieldLevel) bool {
			return logging.ValidLevel(fl.Field().String())
		})
	})
	return validate
}

// Struct validates v using its `validate` struct tags and reports the
// first failure in a readable form.
func Struct(v any) error {
	if v == nil {
		return errors.New("value cannot be nil")
	}
	if err := instance().Struct(v); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// formatValidationError converts validator errors to a more user-friendly format
func formatValidationError(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	// Return the first validation error in a user-friendly format
	for _, e := range validationErrs {
		field := e.Namespace()
		param := e.Param()

		switch e.Tag() {
		case "required":
			return fmt.Errorf("%s: field is required", field)
		case "min", "gte":
			return fmt.Errorf("%s: must be at least %s", field, param)
		case "max", "lte":
			return fmt.Errorf("%s: must not exceed %s", field, param)
		case "lt":
			return fmt.Errorf("%s: must be below %s", field, param)
		case "oneof":
			return fmt.Errorf("%s: %v must be one of [%s]", field, e.Value(), param)
		case "loglevel":
			return fmt.Errorf("%s: unknown log level %q", field, e.Value())
		default:
			return fmt.Errorf("%s: validation failed (%s)", field, e.Tag())
		}
	}

	return err
}
