package core

import "errors"

var (
	// ErrKeyNotFound is returned by a Store when a key has never been set.
	ErrKeyNotFound = errors.New("key not found")

	// ErrPermissionDenied is returned when the acting identity's role does
	// not allow an operation.
	ErrPermissionDenied = errors.New("permission denied")
)

// FieldError is used to indicate an error with a specific input field.
type FieldError struct {
	Field string
	Error string
}

type ValidationError struct {
	Err    error
	Fields []FieldError
}

func NewValidationError(err error, flds ...FieldError) error {
	return &ValidationError{err, flds}
}

func (err ValidationError) Error() string {
	if err.Err == nil {
		return ""
	}
	return err.Err.Error()
}
