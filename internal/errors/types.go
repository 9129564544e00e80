package errors

import (
	"fmt"
)

// InputError indicates that a caller supplied an invalid argument. Transport
// layers translate it into a user-facing validation error (e.g. HTTP 400).
type InputError struct {
	message string
}

func (e InputError) Error() string {
	return e.message
}

func NewInputError(format string, args ...any) error {
	return WithStack(InputError{message: fmt.Sprintf(format, args...)})
}

func AsInputError(err error) (InputError, bool) {
	var inputErr InputError
	ok := As(err, &inputErr)
	return inputErr, ok
}

// InternalError indicates a fault that is not attributable to caller input.
// Transport layers surface it as a generic server error without exposing the
// underlying message.
type InternalError struct {
	message string
}

func (e InternalError) Error() string {
	return e.message
}

func NewInternalError(format string, args ...any) error {
	return WithStack(InternalError{message: fmt.Sprintf(format, args...)})
}
