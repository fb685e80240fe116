package serverutils

import "fmt"

// ValidationError signals a missing or malformed required input. Mapped to 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string) error {
	return &ValidationError{Message: message}
}

// NotFoundError signals a referenced record that does not exist. Mapped to 404.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Resource)
}

func NewNotFoundError(resource string) error {
	return &NotFoundError{Resource: resource}
}

// PersistenceError wraps a store failure. Mapped to 500.
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string {
	return e.Err.Error()
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

func NewPersistenceError(err error) error {
	return &PersistenceError{Err: err}
}
