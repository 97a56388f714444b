package variant

import (
	"reflect"

	"github.com/bearlytools/variant/errors"
)

// Is reports whether u holds a value of type T.
func Is[T any](u *Union) bool {
	return u.Is(reflect.TypeFor[T]())
}

// Ptr returns a pointer to the held T, which can be used to change the value in place. The
// pointer is valid until the Union stops holding this value.
func Ptr[T any](u *Union) (*T, error) {
	return ptr[T](u, "Ptr")
}

// Get returns a copy of the held T.
func Get[T any](u *Union) (T, error) {
	p, err := ptr[T](u, "Get")
	if err != nil {
		var zero T
		return zero, err
	}
	return *p, nil
}

// Take moves the held T out of the Union, leaving it empty. No Destroyer is called, the
// caller owns the returned value.
func Take[T any](u *Union) (T, error) {
	p, err := ptr[T](u, "Take")
	if err != nil {
		var zero T
		return zero, err
	}
	v := *p
	u.st.reset()
	u.observe(EvMove, reflect.TypeFor[T]())
	return v, nil
}

// Assign stores v in u. If u already holds a T it is overwritten in place, otherwise the
// held value is destroyed first.
func Assign[T any](u *Union, v T) error {
	b, t, err := lookupType[T](u.set)
	if err != nil {
		return u.accessErr("Assign", t, err)
	}
	b.assign(u, v)
	return nil
}

func ptr[T any](u *Union, op string) (*T, error) {
	b, t, err := lookupType[T](u.set)
	switch {
	case err != nil:
		return nil, u.accessErr(op, t, err)
	case u.Empty():
		return nil, u.accessErr(op, t, errors.ErrEmptyAccess)
	case u.st.discriminator() != b.discriminator():
		return nil, u.accessErr(op, t, errors.ErrWrongAlternative)
	}
	return interpretAs[T](&u.st), nil
}
