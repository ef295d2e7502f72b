package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Not found errors
	ErrNotFound        = errors.New("resource not found")
	ErrDatasetNotFound = fmt.Errorf("%w: dataset", ErrNotFound)
	ErrRecipeNotFound  = fmt.Errorf("%w: recipe", ErrNotFound)

	// Validation errors
	ErrEmptyFind       = errors.New("find text cannot be empty")
	ErrUnknownStrategy = errors.New("unknown fill strategy")
	ErrUnknownTarget   = errors.New("unknown type conversion target")
	ErrUnknownDatePart = errors.New("unknown date part")
	ErrEmptyColumn     = errors.New("target column cannot be empty")

	// Queue errors
	ErrBadReorder = errors.New("reorder must contain every queued action exactly once")
)

// NewNotFoundError builds a not-found error with resource context
func NewNotFoundError(resource string, id string) error {
	return fmt.Errorf("%w: %s with id %s", ErrNotFound, resource, id)
}

// NewValidationError builds a validation error with field context
func NewValidationError(field string, reason string) error {
	return fmt.Errorf("validation failed for %s: %s", field, reason)
}

// IsNotFoundError reports whether err is a not-found error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidationError reports whether err is one of the action validation errors
func IsValidationError(err error) bool {
	return errors.Is(err, ErrEmptyFind) ||
		errors.Is(err, ErrUnknownStrategy) ||
		errors.Is(err, ErrUnknownTarget) ||
		errors.Is(err, ErrUnknownDatePart) ||
		errors.Is(err, ErrEmptyColumn)
}
