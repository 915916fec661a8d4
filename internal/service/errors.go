package service

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation marks missing or malformed input.
	ErrValidation = errors.New("validation failed")
	// ErrNotFound marks a referenced question, answer or user that does not exist.
	ErrNotFound = errors.New("not found")
)

// Error pairs a category sentinel with the underlying cause. Its message is
// the cause alone, so it can be returned to clients as is.
type Error struct {
	Kind error
	Err  error
}

func (e *Error) Error() string {
	return e.Err.Error()
}

func (e *Error) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

func invalid(err error) error {
	return &Error{Kind: ErrValidation, Err: err}
}

func notFound(format string, args ...any) error {
	return &Error{Kind: ErrNotFound, Err: fmt.Errorf(format, args...)}
}
