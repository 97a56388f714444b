package variant

import (
	"reflect"
	"unsafe"

	"github.com/bearlytools/variant/typelist"
)

// storage holds the live value of a Union and the tag saying what it is. It never
// constructs or destroys anything itself, the bindings do that.
//
// slot is always either nil or a *T, where T is the alternative selected by disc.
// Keeping a pointer rather than raw bytes lets the garbage collector see any
// pointers inside T.
type storage struct {
	slot any
	disc Discriminator
}

// rawPointer returns the address of the live value or nil if there is none.
func (s *storage) rawPointer() unsafe.Pointer {
	if s.slot == nil {
		return nil
	}
	return reflect.ValueOf(s.slot).UnsafePointer()
}

func (s *storage) discriminator() Discriminator {
	return s.disc
}

func (s *storage) setDiscriminator(d Discriminator) {
	s.disc = d
}

// reset forgets the slot and the tag. It does not run destroy hooks.
func (s *storage) reset() {
	s.slot = nil
	s.disc = NoAlternative
}

// interpretAs returns the slot as a *T. The caller must have checked that a T is live.
func interpretAs[T any](s *storage) *T {
	return s.slot.(*T)
}

// Layout describes the memory a fixed-size buffer for a Set would need: large enough
// for the largest alternative and aligned for every alternative.
type Layout struct {
	// Size is the largest size of any alternative.
	Size uintptr
	// Align is the least common multiple of every alternative's alignment.
	Align uintptr
}

func layoutOf(l typelist.List) Layout {
	aligns := typelist.Accumulate(l, func(acc typelist.Values[uintptr], t reflect.Type) typelist.Values[uintptr] {
		return acc.PushBack(uintptr(t.Align()))
	}, typelist.Values[uintptr]{})

	return Layout{
		Size:  typelist.Largest(l).Size(),
		Align: typelist.AccumulateValues(aligns, lcm, 1),
	}
}

func gcd(a, b uintptr) uintptr {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func lcm(a, b uintptr) uintptr {
	if a == 0 || b == 0 {
		return a + b
	}
	return a / gcd(a, b) * b
}
