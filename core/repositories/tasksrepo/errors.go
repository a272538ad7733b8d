package tasksrepo

import (
	"errors"

	"github.com/jrazmi/taskboard/core/repositories"
	"github.com/jrazmi/taskboard/sdk/validation"
)

var (
	ErrNotFound      = repositories.ErrNotFound
	ErrValidation    = errors.New("validation failed")
	ErrInvalidStatus = errors.New("invalid status")
)

// ValidationError lists the fields that made an input unacceptable.
// It matches ErrValidation with errors.Is.
type ValidationError struct {
	Fields validation.FieldErrors
}

func (e *ValidationError) Error() string {
	return "validation failed: " + e.Fields.Error()
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
