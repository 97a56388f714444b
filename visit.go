package variant

import (
	"fmt"
	"reflect"

	"github.com/bearlytools/variant/errors"
)

// VisitError is returned when a Visitor cannot be built.
type VisitError struct {
	// Alternative is the alternative the problem was found for, if any.
	Alternative reflect.Type
	// Reason describes the problem.
	Reason string
	// Err is errors.ErrNotExhaustive, errors.ErrNoCommonType or errors.ErrNotAlternative.
	Err error
}

func (e *VisitError) Error() string {
	if e.Alternative == nil {
		return fmt.Sprintf("variant.NewVisitor: %s: %s", e.Reason, e.Err)
	}
	return fmt.Sprintf("variant.NewVisitor: alternative %s: %s: %s", e.Alternative, e.Reason, e.Err)
}

// Unwrap returns the sentinel error.
func (e *VisitError) Unwrap() error {
	return e.Err
}

// Type returns the errors.Type of the failure.
func (e *VisitError) Type() errors.Type {
	return errors.TypeOf(e.Err)
}

// visitCase is the handler chosen for one alternative.
type visitCase struct {
	fn    reflect.Value
	byPtr bool
	out   reflect.Type
}

// Visitor dispatches a Union's held value to a handler for its alternative and converts
// the handler's result to the common result type of all handlers. A Visitor is immutable
// and may be shared.
type Visitor struct {
	set    *Set
	cases  []visitCase
	result reflect.Type
}

// NewVisitor builds a Visitor for Unions over set. Each handler is a function with one
// argument and zero or one results. For every alternative T a handler is chosen from:
//
//   - the first handler taking T or *T; a *T handler gets a pointer to the held value and
//     may change it
//   - otherwise the first handler taking an interface that T implements
//
// Every alternative must have a handler. The Visitor's result type is the CommonTypeOf the
// chosen handlers' result types, in alternative order. Handlers that return nothing must all
// return nothing.
func NewVisitor(set *Set, handlers ...any) (*Visitor, error) {
	if set == nil {
		return nil, &VisitError{Reason: "nil Set", Err: errors.ErrNotAlternative}
	}

	fns := make([]reflect.Value, 0, len(handlers))
	for i, h := range handlers {
		fn := reflect.ValueOf(h)
		if !fn.IsValid() || fn.Kind() != reflect.Func || fn.IsNil() {
			return nil, &VisitError{Reason: fmt.Sprintf("handler %d is %T, not a function", i, h), Err: errors.ErrNotExhaustive}
		}
		ft := fn.Type()
		if ft.NumIn() != 1 || ft.IsVariadic() || ft.NumOut() > 1 {
			return nil, &VisitError{Reason: fmt.Sprintf("handler %d (%s) must take one argument and return at most one result", i, ft), Err: errors.ErrNotExhaustive}
		}
		fns = append(fns, fn)
	}

	v := &Visitor{set: set, cases: make([]visitCase, 0, set.Len())}
	outs := make([]reflect.Type, 0, set.Len())
	for _, t := range set.Types().Types() {
		c, ok := chooseHandler(t, fns)
		if !ok {
			return nil, &VisitError{Alternative: t, Reason: "no handler", Err: errors.ErrNotExhaustive}
		}
		v.cases = append(v.cases, c)
		outs = append(outs, c.out)
	}

	result, err := CommonTypeOf(outs...)
	if err != nil {
		return nil, &VisitError{Reason: err.Error(), Err: errors.ErrNoCommonType}
	}
	v.result = result
	return v, nil
}

// MustVisitor is like NewVisitor but panics on error.
func MustVisitor(set *Set, handlers ...any) *Visitor {
	v, err := NewVisitor(set, handlers...)
	if err != nil {
		panic(err)
	}
	return v
}

func chooseHandler(t reflect.Type, fns []reflect.Value) (visitCase, bool) {
	pt := reflect.PointerTo(t)
	for _, fn := range fns {
		in := fn.Type().In(0)
		switch in {
		case t:
			return newCase(fn, false), true
		case pt:
			return newCase(fn, true), true
		}
	}
	for _, fn := range fns {
		in := fn.Type().In(0)
		if in.Kind() == reflect.Interface && t.Implements(in) {
			return newCase(fn, false), true
		}
	}
	return visitCase{}, false
}

func newCase(fn reflect.Value, byPtr bool) visitCase {
	c := visitCase{fn: fn, byPtr: byPtr}
	if fn.Type().NumOut() == 1 {
		c.out = fn.Type().Out(0)
	}
	return c
}

// Result returns the common result type, nil if the handlers return nothing.
func (v *Visitor) Result() reflect.Type {
	return v.result
}

// Visit calls the handler for the alternative u holds and returns its result converted to
// Result(). If the handlers return nothing, the result is nil. Visiting an empty Union
// returns an error wrapping errors.ErrEmptyAccess.
func (v *Visitor) Visit(u *Union) (any, error) {
	out, err := v.dispatch(u, "Visit")
	if err != nil {
		return nil, err
	}
	if v.result == nil {
		return nil, nil
	}
	return out.Convert(v.result).Interface(), nil
}

// VisitAs is like v.Visit(u), but converts the handler's result to R instead of the common
// result type. The result must be assignable to R, or both must be numeric. Other Go
// conversions, such as int to string, give an error wrapping errors.ErrNoCommonType.
func VisitAs[R any](v *Visitor, u *Union) (R, error) {
	var r R
	rt := reflect.TypeFor[R]()

	out, err := v.dispatch(u, "VisitAs")
	if err != nil {
		return r, err
	}
	if !out.IsValid() || !resultConverts(out.Type(), rt) {
		return r, u.accessErr("VisitAs", rt, errors.ErrNoCommonType)
	}
	reflect.ValueOf(&r).Elem().Set(out.Convert(rt))
	return r, nil
}

// resultConverts reports if a handler result of type from may be handed back as to.
func resultConverts(from, to reflect.Type) bool {
	if from.AssignableTo(to) {
		return true
	}
	return numericKind(from.Kind()) && numericKind(to.Kind()) && from.ConvertibleTo(to)
}

// dispatch walks the alternatives in order and calls the handler of the first one u
// holds. The returned Value is invalid for handlers without a result.
func (v *Visitor) dispatch(u *Union, op string) (reflect.Value, error) {
	if !v.set.Compatible(u.set) {
		return reflect.Value{}, u.accessErr(op, nil, errors.ErrNotAlternative)
	}

	for i, alt := range u.set.bindings {
		if u.st.discriminator() != alt.discriminator() {
			continue
		}
		c := v.cases[i]
		arg := reflect.ValueOf(u.st.slot)
		if !c.byPtr {
			arg = arg.Elem()
		}
		outs := c.fn.Call([]reflect.Value{arg})
		if len(outs) == 0 {
			return reflect.Value{}, nil
		}
		return outs[0], nil
	}
	return reflect.Value{}, u.accessErr(op, nil, errors.ErrEmptyAccess)
}

// Visit calls fn with a copy of the value u holds and returns the result.
func Visit[R any](u *Union, fn func(v any) R) (R, error) {
	val, err := u.Value()
	if err != nil {
		var zero R
		return zero, u.accessErr("Visit", nil, errors.ErrEmptyAccess)
	}
	return fn(val), nil
}

// VisitPtr calls fn with a pointer (a *T, as an any) to the value u holds, so fn may
// change it in place.
func VisitPtr[R any](u *Union, fn func(p any) R) (R, error) {
	if u.Empty() {
		var zero R
		return zero, u.accessErr("VisitPtr", nil, errors.ErrEmptyAccess)
	}
	return fn(u.st.slot), nil
}
