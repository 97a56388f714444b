package variant

import (
	"fmt"
	"reflect"

	"github.com/bearlytools/variant/errors"
	"github.com/bearlytools/variant/typelist"
)

// Set is the fixed, ordered list of alternative types a Union may hold. A Set is
// immutable and safe to share between goroutines and Unions.
type Set struct {
	types    typelist.List
	bindings []Alternative
	layout   Layout
}

// NewSet creates a Set from alts, in order. There must be at least one and at most
// MaxAlternatives alternatives. The same type may be listed more than once, but lookups by
// type always resolve to its first position.
func NewSet(alts ...Alternative) (*Set, error) {
	if len(alts) == 0 {
		return nil, fmt.Errorf("variant.NewSet: a Set needs at least one alternative")
	}
	if len(alts) > MaxAlternatives {
		return nil, fmt.Errorf("variant.NewSet: %d alternatives given, at most %d are supported", len(alts), MaxAlternatives)
	}

	types := make([]reflect.Type, 0, len(alts))
	for i, alt := range alts {
		if alt == nil {
			return nil, fmt.Errorf("variant.NewSet: alternative %d is nil", i)
		}
		types = append(types, alt.Type())
	}

	s := &Set{types: typelist.Of(types...)}
	s.bindings = make([]Alternative, 0, len(alts))
	for _, alt := range alts {
		d, _ := indexOf(s.types, alt.Type())
		s.bindings = append(s.bindings, alt.bind(d))
	}
	s.layout = layoutOf(s.types)
	return s, nil
}

// MustSet is like NewSet but panics on error. It is intended for package level variables.
func MustSet(alts ...Alternative) *Set {
	s, err := NewSet(alts...)
	if err != nil {
		panic(err)
	}
	return s
}

// Len returns the number of alternatives.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return s.types.Len()
}

// Types returns the alternative types in order.
func (s *Set) Types() typelist.List {
	if s == nil {
		return typelist.List{}
	}
	return s.types
}

// Layout returns the size and alignment a raw buffer for this Set would need.
func (s *Set) Layout() Layout {
	if s == nil {
		return Layout{}
	}
	return s.layout
}

// IndexOf returns the Discriminator for t.
func (s *Set) IndexOf(t reflect.Type) (Discriminator, bool) {
	if s == nil {
		return NoAlternative, false
	}
	return indexOf(s.types, t)
}

// TypeAt returns the type for Discriminator d, or nil for NoAlternative or an out of
// range value.
func (s *Set) TypeAt(d Discriminator) reflect.Type {
	if d == NoAlternative || int(d) > s.Len() {
		return nil
	}
	return s.types.At(int(d) - 1)
}

// Compatible reports whether o has the same alternatives as s in the same order.
func (s *Set) Compatible(o *Set) bool {
	if s == o {
		return true
	}
	return s.Types().Equal(o.Types())
}

// String implements fmt.Stringer.
func (s *Set) String() string {
	return "variant.Set" + s.Types().String()
}

// lookup returns the binding used for type t.
func (s *Set) lookup(t reflect.Type) (Alternative, bool) {
	d, ok := s.IndexOf(t)
	if !ok {
		return nil, false
	}
	return s.bindings[d-1], true
}

// lookupType is lookup for the static type T.
func lookupType[T any](s *Set) (*binding[T], reflect.Type, error) {
	t := reflect.TypeFor[T]()
	alt, ok := s.lookup(t)
	if !ok {
		return nil, t, errors.ErrNotAlternative
	}
	return alt.(*binding[T]), t, nil
}
