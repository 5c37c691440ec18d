package application

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrVarsMismatch = errors.New("variable counts differ")
	ErrUnsupported  = errors.New("unsupported diagram")
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// DiagramError ties a failure to the definition it came from
type DiagramError struct {
	Name string
	Err  error
}

func (e *DiagramError) Error() string {
	return fmt.Sprintf("%s: %v", e.Name, e.Err)
}

func (e *DiagramError) Unwrap() error {
	return e.Err
}
