package variant

import (
	"github.com/bearlytools/variant/errors"
)

// Of2, Of3 and Of4 are Unions whose alternatives are fixed by type parameters, so that
// every accessor is checked by the compiler. Each wraps a *Union, which Union() returns.
// Like a Union they must not be copied by value after first use; use Clone().
//
// If two type parameters are the same type, the accessors of the second one act on the
// first one's position.

// Of2 is a Union of A or B.
type Of2[A, B any] struct {
	u *Union
}

// NewOf2 returns an Of2 holding the zero value of A.
func NewOf2[A, B any](options ...Option) Of2[A, B] {
	return Of2[A, B]{u: New(MustSet(Alt[A](), Alt[B]()), options...)}
}

// Union returns the underlying Union.
func (o Of2[A, B]) Union() *Union { return o.u }

// Which returns 1 if A is held, 2 if B is held, 0 if empty.
func (o Of2[A, B]) Which() int { return int(o.u.Discriminator()) }

// Empty reports whether nothing is held.
func (o Of2[A, B]) Empty() bool { return o.u.Empty() }

// Clone returns a copy.
func (o Of2[A, B]) Clone() Of2[A, B] { return Of2[A, B]{u: o.u.Clone()} }

// Destroy ends the life of the held value.
func (o Of2[A, B]) Destroy() { o.u.Destroy() }

func (o Of2[A, B]) IsA() bool { return Is[A](o.u) }
func (o Of2[A, B]) IsB() bool { return Is[B](o.u) }
func (o Of2[A, B]) A() (A, error) { return Get[A](o.u) }
func (o Of2[A, B]) B() (B, error) { return Get[B](o.u) }
func (o Of2[A, B]) SetA(v A) Of2[A, B] { mustAssign(o.u, v); return o }
func (o Of2[A, B]) SetB(v B) Of2[A, B] { mustAssign(o.u, v); return o }

// Match2 calls the function matching the held alternative and returns its result.
func Match2[A, B, R any](o Of2[A, B], fa func(A) R, fb func(B) R) (R, error) {
	var zero R
	switch {
	case o.u.Empty():
		return zero, o.u.accessErr("Match2", nil, errors.ErrEmptyAccess)
	case Is[A](o.u):
		return fa(*interpretAs[A](&o.u.st)), nil
	}
	return fb(*interpretAs[B](&o.u.st)), nil
}

// Of3 is a Union of A, B or C.
type Of3[A, B, C any] struct {
	u *Union
}

// NewOf3 returns an Of3 holding the zero value of A.
func NewOf3[A, B, C any](options ...Option) Of3[A, B, C] {
	return Of3[A, B, C]{u: New(MustSet(Alt[A](), Alt[B](), Alt[C]()), options...)}
}

// Union returns the underlying Union.
func (o Of3[A, B, C]) Union() *Union { return o.u }

// Which returns the 1-based position of the held alternative, 0 if empty.
func (o Of3[A, B, C]) Which() int { return int(o.u.Discriminator()) }

// Empty reports whether nothing is held.
func (o Of3[A, B, C]) Empty() bool { return o.u.Empty() }

// Clone returns a copy.
func (o Of3[A, B, C]) Clone() Of3[A, B, C] { return Of3[A, B, C]{u: o.u.Clone()} }

// Destroy ends the life of the held value.
func (o Of3[A, B, C]) Destroy() { o.u.Destroy() }

func (o Of3[A, B, C]) IsA() bool { return Is[A](o.u) }
func (o Of3[A, B, C]) IsB() bool { return Is[B](o.u) }
func (o Of3[A, B, C]) IsC() bool { return Is[C](o.u) }
func (o Of3[A, B, C]) A() (A, error) { return Get[A](o.u) }
func (o Of3[A, B, C]) B() (B, error) { return Get[B](o.u) }
func (o Of3[A, B, C]) C() (C, error) { return Get[C](o.u) }
func (o Of3[A, B, C]) SetA(v A) Of3[A, B, C] { mustAssign(o.u, v); return o }
func (o Of3[A, B, C]) SetB(v B) Of3[A, B, C] { mustAssign(o.u, v); return o }
func (o Of3[A, B, C]) SetC(v C) Of3[A, B, C] { mustAssign(o.u, v); return o }

// Match3 calls the function matching the held alternative and returns its result.
func Match3[A, B, C, R any](o Of3[A, B, C], fa func(A) R, fb func(B) R, fc func(C) R) (R, error) {
	var zero R
	switch {
	case o.u.Empty():
		return zero, o.u.accessErr("Match3", nil, errors.ErrEmptyAccess)
	case Is[A](o.u):
		return fa(*interpretAs[A](&o.u.st)), nil
	case Is[B](o.u):
		return fb(*interpretAs[B](&o.u.st)), nil
	}
	return fc(*interpretAs[C](&o.u.st)), nil
}

// Of4 is a Union of A, B, C or D.
type Of4[A, B, C, D any] struct {
	u *Union
}

// NewOf4 returns an Of4 holding the zero value of A.
func NewOf4[A, B, C, D any](options ...Option) Of4[A, B, C, D] {
	return Of4[A, B, C, D]{u: New(MustSet(Alt[A](), Alt[B](), Alt[C](), Alt[D]()), options...)}
}

// Union returns the underlying Union.
func (o Of4[A, B, C, D]) Union() *Union { return o.u }

// Which returns the 1-based position of the held alternative, 0 if empty.
func (o Of4[A, B, C, D]) Which() int { return int(o.u.Discriminator()) }

// Empty reports whether nothing is held.
func (o Of4[A, B, C, D]) Empty() bool { return o.u.Empty() }

// Clone returns a copy.
func (o Of4[A, B, C, D]) Clone() Of4[A, B, C, D] { return Of4[A, B, C, D]{u: o.u.Clone()} }

// Destroy ends the life of the held value.
func (o Of4[A, B, C, D]) Destroy() { o.u.Destroy() }

func (o Of4[A, B, C, D]) IsA() bool { return Is[A](o.u) }
func (o Of4[A, B, C, D]) IsB() bool { return Is[B](o.u) }
func (o Of4[A, B, C, D]) IsC() bool { return Is[C](o.u) }
func (o Of4[A, B, C, D]) IsD() bool { return Is[D](o.u) }
func (o Of4[A, B, C, D]) A() (A, error) { return Get[A](o.u) }
func (o Of4[A, B, C, D]) B() (B, error) { return Get[B](o.u) }
func (o Of4[A, B, C, D]) C() (C, error) { return Get[C](o.u) }
func (o Of4[A, B, C, D]) D() (D, error) { return Get[D](o.u) }
func (o Of4[A, B, C, D]) SetA(v A) Of4[A, B, C, D] { mustAssign(o.u, v); return o }
func (o Of4[A, B, C, D]) SetB(v B) Of4[A, B, C, D] { mustAssign(o.u, v); return o }
func (o Of4[A, B, C, D]) SetC(v C) Of4[A, B, C, D] { mustAssign(o.u, v); return o }
func (o Of4[A, B, C, D]) SetD(v D) Of4[A, B, C, D] { mustAssign(o.u, v); return o }

// Match4 calls the function matching the held alternative and returns its result.
func Match4[A, B, C, D, R any](o Of4[A, B, C, D], fa func(A) R, fb func(B) R, fc func(C) R, fd func(D) R) (R, error) {
	var zero R
	switch {
	case o.u.Empty():
		return zero, o.u.accessErr("Match4", nil, errors.ErrEmptyAccess)
	case Is[A](o.u):
		return fa(*interpretAs[A](&o.u.st)), nil
	case Is[B](o.u):
		return fb(*interpretAs[B](&o.u.st)), nil
	case Is[C](o.u):
		return fc(*interpretAs[C](&o.u.st)), nil
	}
	return fd(*interpretAs[D](&o.u.st)), nil
}

// mustAssign is only used where the type parameters guarantee T is in the Set.
func mustAssign[T any](u *Union, v T) {
	if err := Assign(u, v); err != nil {
		panic(err)
	}
}
