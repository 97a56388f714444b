package variant

import (
	"fmt"
	"reflect"

	"github.com/bearlytools/variant/errors"
)

// Union holds at most one value of one of the alternatives of its Set. Create one with
// New, NewEmpty or From; the zero value is an empty Union with no alternatives.
type Union struct {
	set *Set
	st  storage
	obs Observer
}

// Option is an optional argument to the Union constructors.
type Option func(u *Union)

// WithObserver has the Union report lifecycle events for its held values to o.
func WithObserver(o Observer) Option {
	return func(u *Union) {
		u.obs = o
	}
}

// New returns a Union over set holding the zero value of the set's first alternative.
func New(set *Set, options ...Option) *Union {
	u := NewEmpty(set, options...)
	u.set.bindings[0].constructZero(u)
	return u
}

// NewEmpty returns a Union over set that holds no value.
func NewEmpty(set *Set, options ...Option) *Union {
	if set == nil {
		panic("variant: Union requires a non-nil Set")
	}
	u := &Union{set: set}
	for _, o := range options {
		o(u)
	}
	return u
}

// From returns a Union over set holding v. It returns an error wrapping
// errors.ErrNotAlternative if T is not in set.
func From[T any](set *Set, v T, options ...Option) (*Union, error) {
	u := NewEmpty(set, options...)
	if err := Assign(u, v); err != nil {
		return nil, err
	}
	return u, nil
}

// Convert returns a new Union over set holding a copy of the value held by src. src may
// use a different Set, but the type it holds must be an alternative of set. If src is
// empty, the result is empty.
func Convert(src *Union, set *Set, options ...Option) (*Union, error) {
	u := NewEmpty(set, options...)
	if err := u.CopyFrom(src); err != nil {
		return nil, err
	}
	return u, nil
}

// Set returns the Set the Union was created with.
func (u *Union) Set() *Set {
	return u.set
}

// Empty reports whether the Union holds no value.
func (u *Union) Empty() bool {
	return u.st.discriminator() == NoAlternative
}

// Discriminator returns the tag of the held alternative, NoAlternative if empty.
func (u *Union) Discriminator() Discriminator {
	return u.st.discriminator()
}

// Type returns the type of the held value, nil if empty.
func (u *Union) Type() reflect.Type {
	return u.set.TypeAt(u.st.discriminator())
}

// Is reports whether the Union holds a value of type t.
func (u *Union) Is(t reflect.Type) bool {
	d, ok := u.set.IndexOf(t)
	return ok && u.st.discriminator() == d
}

// Value returns a copy of the held value as an interface.
func (u *Union) Value() (any, error) {
	if u.Empty() {
		return nil, u.accessErr("Value", nil, errors.ErrEmptyAccess)
	}
	return reflect.ValueOf(u.st.slot).Elem().Interface(), nil
}

// AssignAny stores v, which must have the exact dynamic type of one of the alternatives.
// Interface typed alternatives cannot be assigned this way, since v's dynamic type is
// never an interface; use Assign for those.
func (u *Union) AssignAny(v any) error {
	if v == nil {
		return u.accessErr("AssignAny", nil, errors.ErrNotAlternative)
	}
	t := reflect.TypeOf(v)
	alt, ok := u.set.lookup(t)
	if !ok {
		return u.accessErr("AssignAny", t, errors.ErrNotAlternative)
	}
	alt.assignAny(u, v)
	return nil
}

// Clone returns a new Union over the same Set and with the same Observer, holding a copy
// of the held value. Cloning an empty Union gives an empty Union.
func (u *Union) Clone() *Union {
	n := &Union{set: u.set, obs: u.obs}
	if !u.Empty() {
		alt := u.set.bindings[u.st.discriminator()-1]
		alt.assignAny(n, alt.cloneAny(u))
	}
	return n
}

// CopyFrom replaces the held value with a copy of the value held by src. If src is empty,
// the held value is destroyed and u becomes empty. src may use a different Set, in which case
// the type src holds must be an alternative of u's Set.
func (u *Union) CopyFrom(src *Union) error {
	if src == u {
		return nil
	}
	if src.Empty() {
		u.Destroy()
		return nil
	}
	srcAlt := src.set.bindings[src.st.discriminator()-1]
	alt, ok := u.set.lookup(srcAlt.Type())
	if !ok {
		return u.accessErr("CopyFrom", srcAlt.Type(), errors.ErrNotAlternative)
	}
	alt.assignAny(u, srcAlt.cloneAny(src))
	return nil
}

// MoveFrom transfers the value held by src to u, leaving src empty. The value is not
// copied and no Destroyer is called on it. If src is empty, u becomes empty. src may use a
// different Set, in which case the type src holds must be an alternative of u's Set; on
// that error neither Union is changed.
func (u *Union) MoveFrom(src *Union) error {
	if src == u {
		return nil
	}
	if src.Empty() {
		u.Destroy()
		return nil
	}
	t := src.Type()
	alt, ok := u.set.lookup(t)
	if !ok {
		return u.accessErr("MoveFrom", t, errors.ErrNotAlternative)
	}
	u.destroyAll()
	u.st.slot = src.st.slot
	u.st.setDiscriminator(alt.discriminator())
	src.st.reset()
	u.observe(EvMove, t)
	return nil
}

// Destroy ends the life of the held value, if any, leaving the Union empty. The Union can
// be assigned to again afterwards.
func (u *Union) Destroy() {
	u.destroyAll()
}

// destroyAll calls destroy on every binding and returns how many of them destroyed
// something, which is always 0 or 1.
func (u *Union) destroyAll() int {
	n := 0
	if u.set != nil {
		for _, alt := range u.set.bindings {
			if alt.destroy(u) {
				n++
			}
		}
	}
	u.st.reset()
	return n
}

func (u *Union) observe(ev Event, t reflect.Type) {
	if u.obs != nil {
		u.obs.Observe(ev, t)
	}
}

// String implements fmt.Stringer.
func (u *Union) String() string {
	if u.Empty() {
		return fmt.Sprintf("variant.Union%s(empty)", u.set.Types())
	}
	v, _ := u.Value()
	return fmt.Sprintf("variant.Union%s(%s=%v)", u.set.Types(), u.Type(), v)
}
