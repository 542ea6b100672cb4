package models

import (
	"errors"
	"fmt"
)

// Domain errors shared by the store and the service layer
var (
	// ErrTaskNotFound indicates that no task exists with the requested ID
	ErrTaskNotFound = errors.New("task not found")

	// ErrValidation is matched by every ValidationError
	ErrValidation = errors.New("validation failed")
)

// ValidationError describes a field that failed validation. The write that
// produced it is aborted and the stored record is left unchanged.
type ValidationError struct {
	Field   string
	Value   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Message)
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// Is makes errors.Is(err, ErrValidation) true for any ValidationError
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
