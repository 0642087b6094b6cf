package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrConflict      = errors.New("conflict")

	// ErrClassificationAmbiguity signals that the results site changed its
	// event naming in a way the filter cannot resolve.
	ErrClassificationAmbiguity = errors.New("classification ambiguity")
	ErrInvalidCombination      = errors.New("invalid division/gender combination")
	ErrInvalidFormat           = errors.New("invalid format")

	ErrTransientSource = errors.New("transient source error")
	ErrPermanentSource = errors.New("permanent source error")
	ErrPersistence     = errors.New("persistence error")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// AmbiguityError reports a division group with several labels but not
// exactly one "Overall" label among them.
type AmbiguityError struct {
	Division DivisionName
	Labels   []string
	Overall  int
}

func (e *AmbiguityError) Error() string {
	return fmt.Sprintf("division %s: expected exactly one Overall event, found %d among [%s]",
		e.Division, e.Overall, strings.Join(e.Labels, ", "))
}

func (e *AmbiguityError) Unwrap() error { return ErrClassificationAmbiguity }
