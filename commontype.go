package variant

import (
	"fmt"
	"reflect"

	"github.com/bearlytools/variant/errors"
	"github.com/bearlytools/variant/typelist"
)

// CommonType returns the type both a and b convert to, choosing it the way a conditional
// expression would:
//
//   - identical types give that type
//   - two predeclared numeric types give the wider one: complex beats float, float beats
//     integer; between integers the wider wins, and on equal width unsigned wins
//   - if one type is assignable to the other (for example a concrete type and an interface
//     it implements), the assignable-to type wins
//
// A nil type stands for "no result". Two nils give nil; a nil and a non-nil type have no
// common type. ok is false when there is no common type.
func CommonType(a, b reflect.Type) (t reflect.Type, ok bool) {
	switch {
	case a == nil && b == nil:
		return nil, true
	case a == nil || b == nil:
		return nil, false
	case a == b:
		return a, true
	}

	if isNumeric(a) && isNumeric(b) {
		return promote(a, b), true
	}

	switch {
	case a.AssignableTo(b):
		return b, true
	case b.AssignableTo(a):
		return a, true
	}
	return nil, false
}

// CommonTypeOf folds CommonType over types from left to right, starting with the first.
func CommonTypeOf(types ...reflect.Type) (reflect.Type, error) {
	if len(types) == 0 {
		return nil, fmt.Errorf("variant.CommonTypeOf: no types given: %w", errors.ErrNoCommonType)
	}

	voids := 0
	for _, t := range types {
		if t == nil {
			voids++
		}
	}
	switch voids {
	case len(types):
		return nil, nil
	case 0:
	default:
		return nil, fmt.Errorf("variant.CommonTypeOf: %d of %d types have no result: %w", voids, len(types), errors.ErrNoCommonType)
	}

	l := typelist.Of(types...)
	var failed reflect.Type
	common := typelist.Accumulate(l.PopFront(), func(acc reflect.Type, t reflect.Type) reflect.Type {
		if acc == nil {
			return nil
		}
		c, ok := CommonType(acc, t)
		if !ok {
			failed = t
			return nil
		}
		return c
	}, l.Front())

	if common == nil {
		return nil, fmt.Errorf("variant.CommonTypeOf%s: type %s does not unify: %w", l, failed, errors.ErrNoCommonType)
	}
	return common, nil
}

type numClass uint8

const (
	numInt numClass = iota
	numUint
	numFloat
	numComplex
)

// isNumeric is true for the predeclared integer, float and complex types. Named types
// such as time.Duration are excluded, as a conversion to them changes meaning.
func isNumeric(t reflect.Type) bool {
	if t.PkgPath() != "" || t.Name() == "" {
		return false
	}
	return numericKind(t.Kind())
}

func numericKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return true
	}
	return false
}

func classOf(t reflect.Type) numClass {
	switch t.Kind() {
	case reflect.Float32, reflect.Float64:
		return numFloat
	case reflect.Complex64, reflect.Complex128:
		return numComplex
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return numUint
	}
	return numInt
}

// promote picks between two different numeric types.
func promote(a, b reflect.Type) reflect.Type {
	ca, cb := classOf(a), classOf(b)

	switch {
	case ca == numComplex || cb == numComplex:
		if floatBits(a) == 64 || floatBits(b) == 64 {
			return reflect.TypeFor[complex128]()
		}
		return reflect.TypeFor[complex64]()
	case ca == numFloat || cb == numFloat:
		if floatBits(a) == 64 || floatBits(b) == 64 {
			return reflect.TypeFor[float64]()
		}
		return reflect.TypeFor[float32]()
	}

	// Both are integers.
	switch {
	case a.Size() > b.Size():
		return a
	case b.Size() > a.Size():
		return b
	case cb == numUint && ca == numInt:
		return b
	}
	return a
}

// floatBits is the precision class of a float or complex type, 0 for integers.
func floatBits(t reflect.Type) int {
	switch t.Kind() {
	case reflect.Float32, reflect.Complex64:
		return 32
	case reflect.Float64, reflect.Complex128:
		return 64
	}
	return 0
}
