package validation

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ConfigValidator runs the checks that struct tags cannot express. Every
// failure is kept; Validate reports them together.
type ConfigValidator struct {
	name   string
	errors []error
}

// NewConfigValidator creates a validator whose messages are prefixed with name.
func NewConfigValidator(name string) *ConfigValidator {
	return &ConfigValidator{name: name}
}

func (cv *ConfigValidator) fail(field, format string, args ...any) {
	cv.errors = append(cv.errors, fmt.Errorf("%s.%s: %s", cv.name, field, fmt.Sprintf(format, args...)))
}

// RangeFloat requires lo <= value <= hi. NaN is never in range.
func (cv *ConfigValidator) RangeFloat(field string, value, lo, hi float64) *ConfigValidator {
	if !(value >= lo && value <= hi) {
		cv.fail(field, "%v is outside [%v, %v]", value, lo, hi)
	}
	return cv
}

// OneOf requires value to be one of allowed.
func (cv *ConfigValidator) OneOf(field, value string, allowed ...string) *ConfigValidator {
	if !slices.Contains(allowed, value) {
		cv.fail(field, "%q is not one of %s", value, strings.Join(allowed, ", "))
	}
	return cv
}

// Custom records the error returned by fn, if any.
func (cv *ConfigValidator) Custom(field string, fn func() error) *ConfigValidator {
	if err := fn(); err != nil {
		cv.errors = append(cv.errors, fmt.Errorf("%s.%s: %w", cv.name, field, err))
	}
	return cv
}

// When runs checks only if condition holds.
func (cv *ConfigValidator) When(condition bool, checks func(*ConfigValidator)) *ConfigValidator {
	if condition {
		checks(cv)
	}
	return cv
}

// Validate returns nil, the single failure, or every failure joined.
func (cv *ConfigValidator) Validate() error {
	switch len(cv.errors) {
	case 0:
		return nil
	case 1:
		return cv.errors[0]
	}
	return fmt.Errorf("%s has %d invalid fields: %w", cv.name, len(cv.errors), errors.Join(cv.errors...))
}

// DefaultOr returns value unless it is the zero value of T.
func DefaultOr[T comparable](value, fallback T) T {
	var zero T
	if value == zero {
		return fallback
	}
	return value
}
