package variant

import (
	"reflect"
)

// Destroyer is implemented by alternatives that need to release something when a Union
// stops holding them. Destroy is called at most once per held value.
type Destroyer interface {
	Destroy()
}

// Cloner is implemented by alternatives that need more than Go assignment to be copied,
// for example types holding slices or maps that must not be shared between copies.
type Cloner[T any] interface {
	Clone() T
}

// Alternative is one member of a Set. Create it with Alt.
type Alternative interface {
	// Type returns the Go type of the alternative.
	Type() reflect.Type

	bind(d Discriminator) Alternative
	discriminator() Discriminator
	constructZero(u *Union)
	destroy(u *Union) bool
	assignAny(u *Union, v any)
	cloneAny(u *Union) any
}

// Alt returns the Alternative for type T.
func Alt[T any]() Alternative {
	return &binding[T]{t: reflect.TypeFor[T]()}
}

// binding implements the construct/destroy/assign protocol for one alternative type.
// A binding only acts when the Union's discriminator matches its own, which is what
// lets a Union call destroy() on every binding and have at most one of them do anything.
type binding[T any] struct {
	t    reflect.Type
	disc Discriminator
}

func (b *binding[T]) Type() reflect.Type {
	return b.t
}

func (b *binding[T]) bind(d Discriminator) Alternative {
	return &binding[T]{t: b.t, disc: d}
}

func (b *binding[T]) discriminator() Discriminator {
	return b.disc
}

// construct places v in the Union's storage. The storage must be empty.
func (b *binding[T]) construct(u *Union, v T) {
	p := new(T)
	*p = v
	u.st.slot = p
	u.st.setDiscriminator(b.disc)
	u.observe(EvConstruct, b.t)
}

func (b *binding[T]) constructZero(u *Union) {
	var zero T
	b.construct(u, zero)
}

// destroy ends the life of the held T if this binding's alternative is live. It returns
// true only if it did so.
func (b *binding[T]) destroy(u *Union) bool {
	if u.st.discriminator() != b.disc {
		return false
	}
	p := interpretAs[T](&u.st)
	u.st.reset()
	runDestroy(p)
	u.observe(EvDestroy, b.t)
	return true
}

// assign stores v. If this alternative is already live the held value is overwritten in
// place, otherwise whatever is live is destroyed first.
func (b *binding[T]) assign(u *Union, v T) {
	if u.st.discriminator() == b.disc {
		*interpretAs[T](&u.st) = v
		u.observe(EvAssign, b.t)
		return
	}
	u.destroyAll()
	b.construct(u, v)
}

func (b *binding[T]) assignAny(u *Union, v any) {
	b.assign(u, v.(T))
}

// clone returns a copy of the live T.
func (b *binding[T]) clone(u *Union) T {
	p := interpretAs[T](&u.st)
	if c, ok := any(*p).(Cloner[T]); ok {
		return c.Clone()
	}
	if c, ok := any(p).(Cloner[T]); ok {
		return c.Clone()
	}
	return *p
}

func (b *binding[T]) cloneAny(u *Union) any {
	return b.clone(u)
}

// runDestroy calls Destroy() on the value at p if T or *T is a Destroyer.
func runDestroy[T any](p *T) {
	if d, ok := any(p).(Destroyer); ok {
		d.Destroy()
		return
	}
	if d, ok := any(*p).(Destroyer); ok {
		if v := reflect.ValueOf(d); v.Kind() == reflect.Pointer && v.IsNil() {
			return
		}
		d.Destroy()
	}
}
