// Package typelist provides a fixed, ordered sequence of Go types and the usual list
// algorithms over it (front/back, push/pop, search, fold, sort). Lists are immutable:
// every operation that changes the list returns a new List and leaves the receiver alone.
//
// A List is the Go counterpart of a compile-time type sequence. It is built once, usually
// at package init or when a variant.Set is created, and only read after that.
package typelist

import (
	"reflect"
	"strconv"
	"strings"
)

// List is an ordered sequence of types. The zero value is an empty list.
type List struct {
	types []reflect.Type
}

// TypeOf returns the reflect.Type for T. Unlike reflect.TypeOf(v), this works for
// interface types.
func TypeOf[T any]() reflect.Type {
	return reflect.TypeFor[T]()
}

// Of returns a List holding types in the order given. Nil types are not allowed.
func Of(types ...reflect.Type) List {
	for i, t := range types {
		if t == nil {
			panic("typelist.Of: nil type at position " + strconv.Itoa(i))
		}
	}
	return List{types: clone(types)}
}

// Len returns the number of types in the list.
func (l List) Len() int {
	return len(l.types)
}

// IsEmpty returns true if the list holds no types.
func (l List) IsEmpty() bool {
	return len(l.types) == 0
}

// Front returns the first type. Panics on an empty list.
func (l List) Front() reflect.Type {
	if l.IsEmpty() {
		panic("typelist: Front() on empty list")
	}
	return l.types[0]
}

// Back returns the last type. Panics on an empty list.
func (l List) Back() reflect.Type {
	if l.IsEmpty() {
		panic("typelist: Back() on empty list")
	}
	return l.types[len(l.types)-1]
}

// At returns the nth type (0-based).
func (l List) At(n int) reflect.Type {
	if n < 0 || n >= len(l.types) {
		panic("typelist: At(" + strconv.Itoa(n) + ") out of range")
	}
	return l.types[n]
}

// PushFront returns a new list with types inserted before the current front. The
// inserted types keep their relative order.
func (l List) PushFront(types ...reflect.Type) List {
	n := make([]reflect.Type, 0, len(types)+len(l.types))
	n = append(n, types...)
	n = append(n, l.types...)
	return Of(n...)
}

// PushBack returns a new list with types appended after the current back.
func (l List) PushBack(types ...reflect.Type) List {
	n := make([]reflect.Type, 0, len(types)+len(l.types))
	n = append(n, l.types...)
	n = append(n, types...)
	return Of(n...)
}

// PopFront returns a new list without the front type. Panics on an empty list.
func (l List) PopFront() List {
	if l.IsEmpty() {
		panic("typelist: PopFront() on empty list")
	}
	return List{types: clone(l.types[1:])}
}

// PopBack returns a new list without the back type. Panics on an empty list.
func (l List) PopBack() List {
	if l.IsEmpty() {
		panic("typelist: PopBack() on empty list")
	}
	return List{types: clone(l.types[:len(l.types)-1])}
}

// IndexOf returns the 0-based position of the first occurrence of t.
// If t is not in the list, ok is false.
func (l List) IndexOf(t reflect.Type) (pos int, ok bool) {
	for i, lt := range l.types {
		if lt == t {
			return i, true
		}
	}
	return -1, false
}

// Contains reports whether t is in the list.
func (l List) Contains(t reflect.Type) bool {
	_, ok := l.IndexOf(t)
	return ok
}

// Reverse returns the list in reverse order.
func (l List) Reverse() List {
	n := make([]reflect.Type, len(l.types))
	for i, t := range l.types {
		n[len(l.types)-1-i] = t
	}
	return List{types: n}
}

// Transform returns a list where every type has been replaced by fn(type).
func (l List) Transform(fn func(reflect.Type) reflect.Type) List {
	n := make([]reflect.Type, len(l.types))
	for i, t := range l.types {
		n[i] = fn(t)
	}
	return Of(n...)
}

// Types returns a copy of the types in the list.
func (l List) Types() []reflect.Type {
	return clone(l.types)
}

// Equal reports whether l and o hold the same types in the same order.
func (l List) Equal(o List) bool {
	if len(l.types) != len(o.types) {
		return false
	}
	for i := range l.types {
		if l.types[i] != o.types[i] {
			return false
		}
	}
	return true
}

// String implements fmt.Stringer. Output looks like "[int, float64, string]".
func (l List) String() string {
	sb := strings.Builder{}
	sb.WriteString("[")
	for i, t := range l.types {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(t.String())
	}
	sb.WriteString("]")
	return sb.String()
}

func clone(types []reflect.Type) []reflect.Type {
	if len(types) == 0 {
		return nil
	}
	n := make([]reflect.Type, len(types))
	copy(n, types)
	return n
}
