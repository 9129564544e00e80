// Package errors is a thin layer over github.com/pkg/errors. It exists so
// that the rest of the codebase has a single import for error construction,
// wrapping, and matching.
package errors

import (
	"github.com/pkg/errors"
)

func New(message string) error {
	return errors.New(message)
}

func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

func Wrapf(err error, format string, args ...any) error {
	return errors.Wrapf(err, format, args...)
}

func WithStack(err error) error {
	return errors.WithStack(err)
}

func Is(err, target error) bool {
	return errors.Is(err, target)
}

func As(err error, target any) bool {
	return errors.As(err, target)
}
