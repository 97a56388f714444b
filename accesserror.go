package variant

import (
	"fmt"
	"reflect"

	"github.com/bearlytools/variant/errors"
)

// AccessError is returned when a Union cannot be read, written or visited the way the
// caller asked. Err is one of the sentinels in the errors package.
type AccessError struct {
	// Op is the operation that failed, such as "Get" or "Visit".
	Op string
	// Want is the type the caller asked for. It is nil for operations without one.
	Want reflect.Type
	// Held is the type the Union held at the time, nil if it was empty.
	Held reflect.Type
	// Err is the underlying sentinel error.
	Err error
}

func (e *AccessError) Error() string {
	held := "empty"
	if e.Held != nil {
		held = e.Held.String()
	}
	if e.Want == nil {
		return fmt.Sprintf("variant.%s: %s (union holds %s)", e.Op, e.Err, held)
	}
	return fmt.Sprintf("variant.%s[%s]: %s (union holds %s)", e.Op, e.Want, e.Err, held)
}

// Unwrap returns the sentinel error.
func (e *AccessError) Unwrap() error {
	return e.Err
}

// Type returns the errors.Type of the failure, such as errors.TypeEmptyAccess.
func (e *AccessError) Type() errors.Type {
	return errors.TypeOf(e.Err)
}

func (u *Union) accessErr(op string, want reflect.Type, err error) error {
	return &AccessError{Op: op, Want: want, Held: u.Type(), Err: err}
}

// The sentinel errors of the errors package, for code that only imports variant.
var (
	ErrEmptyAccess      = errors.ErrEmptyAccess
	ErrWrongAlternative = errors.ErrWrongAlternative
	ErrNotAlternative   = errors.ErrNotAlternative
	ErrNoCommonType     = errors.ErrNoCommonType
	ErrNotExhaustive    = errors.ErrNotExhaustive
)
