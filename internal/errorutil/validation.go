package errorutil

import (
	"fmt"
	"strings"
)

// ValidationError represents a collection of validation failures
type ValidationError struct {
	Context string
	Errors  []FieldError
}

// FieldError represents a single field validation failure
type FieldError struct {
	Field   string
	Value   any
	Message string
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return fmt.Sprintf("%s validation failed", e.Context)
	}

	messages := make([]string, 0, len(e.Errors))
	for _, fieldErr := range e.Errors {
		messages = append(messages, fmt.Sprintf("%s: %s", fieldErr.Field, fieldErr.Message))
	}

	return fmt.Sprintf("%s validation failed: %s", e.Context, strings.Join(messages, "; "))
}

// ValidationBuilder accumulates field errors so a whole configuration can be
// reported at once instead of failing on the first bad value.
type ValidationBuilder struct {
	context string
	errors  []FieldError
}

// NewValidationBuilder creates a new validation builder with context
func NewValidationBuilder(context string) *ValidationBuilder {
	return &ValidationBuilder{
		context: context,
		errors:  make([]FieldError, 0),
	}
}

// RequiredString validates that a string field is not empty
func (vb *ValidationBuilder) RequiredString(field, value string) *ValidationBuilder {
	if isEmptyString(value) {
		vb.add(field, value, "is required")
	}
	return vb
}

// IntRange validates that value lies within [min, max]
func (vb *ValidationBuilder) IntRange(field string, value, min, max int) *ValidationBuilder {
	if value < min || value > max {
		vb.add(field, value, fmt.Sprintf("must be between %d and %d", min, max))
	}
	return vb
}

// OneOf validates that value is one of the allowed options (case-insensitive)
func (vb *ValidationBuilder) OneOf(field, value string, options []string) *ValidationBuilder {
	if value == "" {
		return vb
	}

	for _, option := range options {
		if strings.EqualFold(value, option) {
			return vb
		}
	}

	vb.add(field, value, fmt.Sprintf("must be one of: %s", strings.Join(options, ", ")))
	return vb
}

// Check records message against field when err is non-nil. It lets callers
// reuse an existing parser as the validation predicate.
func (vb *ValidationBuilder) Check(field string, value any, err error) *ValidationBuilder {
	if err != nil {
		vb.add(field, value, err.Error())
	}
	return vb
}

func (vb *ValidationBuilder) add(field string, value any, message string) {
	vb.errors = append(vb.errors, FieldError{
		Field:   field,
		Value:   value,
		Message: message,
	})
}

// Build returns the validation error if any errors were collected, nil otherwise
func (vb *ValidationBuilder) Build() error {
	if len(vb.errors) == 0 {
		return nil
	}

	return &ValidationError{
		Context: vb.context,
		Errors:  vb.errors,
	}
}

func isEmptyString(s string) bool {
	return strings.TrimSpace(s) == ""
}

// ValidateConfig runs validations against a builder labelled "<name> configuration"
func ValidateConfig(configName string, validations func(*ValidationBuilder) *ValidationBuilder) error {
	vb := NewValidationBuilder(configName + " configuration")
	vb = validations(vb)
	return vb.Build()
}
