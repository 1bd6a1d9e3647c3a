package errors

import (
	"fmt"
)

// ValidationError captures a construction-time failure in the script filter
// output model or in command options.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ExecutionError represents a failed filesystem or subprocess operation.
type ExecutionError struct {
	Op  string
	Err error
}

// NewExecutionError constructs an ExecutionError for the named operation.
func NewExecutionError(op string, err error) error {
	return &ExecutionError{Op: op, Err: err}
}

func (e *ExecutionError) Error() string {
	if e == nil {
		return ""
	}
	if e.Op != "" {
		return fmt.Sprintf("execution error in %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("execution error: %v", e.Err)
}

// Unwrap exposes the root error.
func (e *ExecutionError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// NotFoundError reports a missing precondition resource, such as the Alfred
// preferences file, the workflows directory or a project root.
type NotFoundError struct {
	Resource string
	Path     string
}

// NewNotFoundError constructs a NotFoundError.
func NewNotFoundError(resource, path string) error {
	return &NotFoundError{Resource: resource, Path: path}
}

func (e *NotFoundError) Error() string {
	if e == nil {
		return ""
	}
	if e.Path != "" {
		return fmt.Sprintf("%s not found at %s", e.Resource, e.Path)
	}
	return fmt.Sprintf("%s not found", e.Resource)
}
