package errors

import (
	"github.com/gostdlib/base/errors"
)

// The functions below forward to the base errors package so callers of
// variant only need this one import for sentinels, wrapping and matching.

// New returns an error with the message text.
func New(text string) error {
	return errors.New(text)
}

// Unwrap returns the error wrapped by err, or nil.
func Unwrap(err error) error {
	return errors.Unwrap(err)
}

// Is reports whether err or anything it wraps matches target. Use it to test
// an *AccessError or *VisitError against sentinels such as ErrEmptyAccess.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain assignable to target and sets target to it.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Join wraps errs into a single error, dropping nils. It returns nil if all errs are nil.
func Join(errs ...error) error {
	return errors.Join(errs...)
}
