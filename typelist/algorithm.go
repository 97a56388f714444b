package typelist

import (
	"reflect"
)

// Accumulate folds fn over the list from front to back, starting with init.
// For a list [T1, T2, T3] this returns fn(fn(fn(init, T1), T2), T3).
func Accumulate[A any](l List, fn func(acc A, t reflect.Type) A, init A) A {
	acc := init
	for _, t := range l.types {
		acc = fn(acc, t)
	}
	return acc
}

// InsertionSort returns the list sorted by less. The sort is stable: types that
// compare equal keep their relative order.
func InsertionSort(l List, less func(a, b reflect.Type) bool) List {
	sorted := List{}
	for _, t := range l.types {
		sorted = insertSorted(sorted, t, less)
	}
	return sorted
}

// insertSorted puts t into the already sorted list, after every element that is not
// greater than t.
func insertSorted(sorted List, t reflect.Type, less func(a, b reflect.Type) bool) List {
	if sorted.IsEmpty() || less(t, sorted.Front()) {
		return sorted.PushFront(t)
	}
	return insertSorted(sorted.PopFront(), t, less).PushFront(sorted.Front())
}

// Largest returns the type with the largest size in the list. When several types
// share the largest size, the first of them wins. Panics on an empty list.
func Largest(l List) reflect.Type {
	first := l.Front()
	return Accumulate(l.PopFront(), func(acc reflect.Type, t reflect.Type) reflect.Type {
		if t.Size() > acc.Size() {
			return t
		}
		return acc
	}, first)
}

// BySize is a less function for InsertionSort that orders types from largest to
// smallest size.
func BySize(a, b reflect.Type) bool {
	return a.Size() > b.Size()
}
