package core

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound reports a referenced record that does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrCategoryNotFound reports an income referencing a missing category.
	// It is distinct from ErrNotFound because it originates from caller input.
	ErrCategoryNotFound = errors.New("category not found")

	ErrInvalidAmount = errors.New("invalid amount")
	ErrInvalidDate   = errors.New("invalid date")
	ErrInvalidText   = errors.New("invalid text")
)

// ValidationError attributes a business-rule violation to a single field.
type ValidationError struct {
	Field  string
	Reason string
	Err    error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func invalidAmount(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason, Err: ErrInvalidAmount}
}

func invalidDate(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason, Err: ErrInvalidDate}
}

func invalidText(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason, Err: ErrInvalidText}
}

// AsValidation unwraps err into a *ValidationError if it is one.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
