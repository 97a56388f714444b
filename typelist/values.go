package typelist

import (
	"golang.org/x/exp/constraints"
)

// Values is the value counterpart of List: an immutable, ordered sequence of values of
// one ordered type. The zero value is an empty list.
type Values[N constraints.Ordered] struct {
	vals []N
}

// ValuesOf returns a Values holding vals in order.
func ValuesOf[N constraints.Ordered](vals ...N) Values[N] {
	if len(vals) == 0 {
		return Values[N]{}
	}
	n := make([]N, len(vals))
	copy(n, vals)
	return Values[N]{vals: n}
}

// Len returns the number of values.
func (v Values[N]) Len() int {
	return len(v.vals)
}

// IsEmpty returns true if there are no values.
func (v Values[N]) IsEmpty() bool {
	return len(v.vals) == 0
}

// Front returns the first value. Panics on an empty list.
func (v Values[N]) Front() N {
	if v.IsEmpty() {
		panic("typelist: Values.Front() on empty list")
	}
	return v.vals[0]
}

// PopFront returns the list without its first value. Panics on an empty list.
func (v Values[N]) PopFront() Values[N] {
	if v.IsEmpty() {
		panic("typelist: Values.PopFront() on empty list")
	}
	return ValuesOf(v.vals[1:]...)
}

// PushFront returns a list with vals placed before the current front.
func (v Values[N]) PushFront(vals ...N) Values[N] {
	n := make([]N, 0, len(vals)+len(v.vals))
	n = append(n, vals...)
	n = append(n, v.vals...)
	return Values[N]{vals: n}
}

// PushBack returns a list with vals placed after the current back.
func (v Values[N]) PushBack(vals ...N) Values[N] {
	n := make([]N, 0, len(vals)+len(v.vals))
	n = append(n, v.vals...)
	n = append(n, vals...)
	return Values[N]{vals: n}
}

// Slice returns a copy of the values as a slice. Returns nil if empty.
func (v Values[N]) Slice() []N {
	if v.IsEmpty() {
		return nil
	}
	n := make([]N, len(v.vals))
	copy(n, v.vals)
	return n
}

// AccumulateValues folds fn over the values from front to back, starting with init.
func AccumulateValues[N constraints.Ordered, A any](v Values[N], fn func(acc A, val N) A, init A) A {
	acc := init
	for _, val := range v.vals {
		acc = fn(acc, val)
	}
	return acc
}

// SortValues returns the values stably sorted by less using insertion sort.
func SortValues[N constraints.Ordered](v Values[N], less func(a, b N) bool) Values[N] {
	n := v.Slice()
	for i := 1; i < len(n); i++ {
		for j := i; j > 0 && less(n[j], n[j-1]); j-- {
			n[j], n[j-1] = n[j-1], n[j]
		}
	}
	return Values[N]{vals: n}
}

// Greater is a less function for SortValues that orders from largest to smallest.
func Greater[N constraints.Ordered](a, b N) bool {
	return a > b
}
