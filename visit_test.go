package variant

import (
	"fmt"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/kylelemons/godebug/pretty"

	"github.com/bearlytools/variant/errors"
)

func TestVisitorCommonResult(t *testing.T) {
	set := MustSet(Alt[int](), Alt[float64]())
	v, err := NewVisitor(
		set,
		func(i int) int { return i * 2 },
		func(f float64) float64 { return f / 2 },
	)
	if err != nil {
		t.Fatalf("TestVisitorCommonResult: NewVisitor() error: %s", err)
	}
	if v.Result() != reflect.TypeFor[float64]() {
		t.Fatalf("TestVisitorCommonResult: Result() = %v, want float64", v.Result())
	}

	tests := []struct {
		name string
		u    *Union
		want any
	}{
		{name: "int", u: mustFrom(t, set, 21), want: float64(42)},
		{name: "float64", u: mustFrom(t, set, 3.0), want: 1.5},
	}

	for _, test := range tests {
		got, err := v.Visit(test.u)
		if err != nil {
			t.Errorf("TestVisitorCommonResult(%s): Visit() error: %s", test.name, err)
			continue
		}
		if diff := pretty.Compare(test.want, got); diff != "" {
			t.Errorf("TestVisitorCommonResult(%s): -want +got:\n%s", test.name, diff)
		}
		if reflect.TypeOf(got) != v.Result() {
			t.Errorf("TestVisitorCommonResult(%s): result is %T, want %v", test.name, got, v.Result())
		}
	}
}

func TestNewVisitorErrors(t *testing.T) {
	tests := []struct {
		name     string
		handlers []any
		wantErr  error
		wantAlt  reflect.Type
	}{
		{
			name:     "missing alternative",
			handlers: []any{func(int) int { return 0 }, func(float64) int { return 0 }},
			wantErr:  errors.ErrNotExhaustive,
			wantAlt:  reflect.TypeFor[string](),
		},
		{
			name:     "results do not unify",
			handlers: []any{func(int) int { return 0 }, func(float64) int { return 0 }, func(string) string { return "" }},
			wantErr:  errors.ErrNoCommonType,
		},
		{
			name:     "some handlers return nothing",
			handlers: []any{func(int) {}, func(float64) int { return 0 }, func(string) int { return 0 }},
			wantErr:  errors.ErrNoCommonType,
		},
		{
			name:     "not a function",
			handlers: []any{42},
			wantErr:  errors.ErrNotExhaustive,
		},
		{
			name:     "nil handler",
			handlers: []any{nil},
			wantErr:  errors.ErrNotExhaustive,
		},
		{
			name:     "two arguments",
			handlers: []any{func(int, int) int { return 0 }},
			wantErr:  errors.ErrNotExhaustive,
		},
		{
			name:     "two results",
			handlers: []any{func(int) (int, error) { return 0, nil }},
			wantErr:  errors.ErrNotExhaustive,
		},
	}

	for _, test := range tests {
		_, err := NewVisitor(intFloatString, test.handlers...)
		if !errors.Is(err, test.wantErr) {
			t.Errorf("TestNewVisitorErrors(%s): got err %v, want %v", test.name, err, test.wantErr)
			continue
		}
		var ve *VisitError
		if !errors.As(err, &ve) {
			t.Errorf("TestNewVisitorErrors(%s): error is %T, want *VisitError", test.name, err)
			continue
		}
		if ve.Type() != errors.TypeVisitor {
			t.Errorf("TestNewVisitorErrors(%s): Type() = %s, want %s", test.name, ve.Type(), errors.TypeVisitor)
		}
		if ve.Alternative != test.wantAlt {
			t.Errorf("TestNewVisitorErrors(%s): Alternative = %v, want %v", test.name, ve.Alternative, test.wantAlt)
		}
	}

	if _, err := NewVisitor(nil, func(int) {}); err == nil {
		t.Errorf("TestNewVisitorErrors(nil set): got err == nil, want err != nil")
	}
}

func TestVisitorVoid(t *testing.T) {
	var seen []string
	v := MustVisitor(
		intFloatString,
		func(i int) { seen = append(seen, fmt.Sprint("int ", i)) },
		func(f float64) { seen = append(seen, fmt.Sprint("float64 ", f)) },
		func(s string) { seen = append(seen, "string "+s) },
	)
	if v.Result() != nil {
		t.Fatalf("TestVisitorVoid: Result() = %v, want nil", v.Result())
	}

	for _, u := range []*Union{mustFrom(t, intFloatString, 1), mustFrom(t, intFloatString, 2.5), mustFrom(t, intFloatString, "s")} {
		got, err := v.Visit(u)
		if err != nil {
			t.Fatalf("TestVisitorVoid: Visit() error: %s", err)
		}
		if got != nil {
			t.Errorf("TestVisitorVoid: Visit() = %v, want nil", got)
		}
	}

	want := []string{"int 1", "float64 2.5", "string s"}
	if diff := pretty.Compare(want, seen); diff != "" {
		t.Errorf("TestVisitorVoid: -want +got:\n%s", diff)
	}
}

func TestVisitorPointerHandler(t *testing.T) {
	v := MustVisitor(
		intFloatString,
		func(p *int) { *p++ },
		func(p *float64) { *p *= 10 },
		func(p *string) { *p = strings.ToUpper(*p) },
	)

	u := mustFrom(t, intFloatString, "abc")
	if _, err := v.Visit(u); err != nil {
		t.Fatal(err)
	}
	if got, _ := Get[string](u); got != "ABC" {
		t.Errorf("TestVisitorPointerHandler: got %q, want \"ABC\"", got)
	}

	Assign(u, 41)
	v.Visit(u)
	if got, _ := Get[int](u); got != 42 {
		t.Errorf("TestVisitorPointerHandler: got %d, want 42", got)
	}
}

func TestVisitorInterfaceHandler(t *testing.T) {
	set := MustSet(Alt[time.Duration](), Alt[Discriminator](), Alt[int]())
	v := MustVisitor(
		set,
		func(s fmt.Stringer) string { return "stringer " + s.String() },
		func(i int) string { return "int" },
		// Exact match beats the interface even though it comes later.
		func(d time.Duration) string { return "duration" },
	)

	tests := []struct {
		name string
		u    *Union
		want string
	}{
		{name: "exact beats interface", u: mustFrom(t, set, time.Second), want: "duration"},
		{name: "interface", u: mustFrom(t, set, Discriminator(2)), want: "stringer Alternative(2)"},
		{name: "exact", u: mustFrom(t, set, 3), want: "int"},
	}

	for _, test := range tests {
		got, err := VisitAs[string](v, test.u)
		if err != nil {
			t.Errorf("TestVisitorInterfaceHandler(%s): error: %s", test.name, err)
			continue
		}
		if got != test.want {
			t.Errorf("TestVisitorInterfaceHandler(%s): got %q, want %q", test.name, got, test.want)
		}
	}
}

func TestVisitErrors(t *testing.T) {
	v := MustVisitor(
		intFloatString,
		func(int) int { return 1 },
		func(float64) int { return 2 },
		func(string) int { return 3 },
	)

	if _, err := v.Visit(NewEmpty(intFloatString)); !errors.Is(err, errors.ErrEmptyAccess) {
		t.Errorf("TestVisitErrors(empty): err = %v, want ErrEmptyAccess", err)
	}
	if _, err := v.Visit(New(intString)); !errors.Is(err, errors.ErrNotAlternative) {
		t.Errorf("TestVisitErrors(other set): err = %v, want ErrNotAlternative", err)
	}
	if _, err := VisitAs[[]byte](v, New(intFloatString)); !errors.Is(err, errors.ErrNoCommonType) {
		t.Errorf("TestVisitErrors(VisitAs[[]byte]): err = %v, want ErrNoCommonType", err)
	}

	if got, err := VisitAs[string](v, mustFrom(t, intFloatString, 65)); !errors.Is(err, errors.ErrNoCommonType) {
		t.Errorf("TestVisitErrors(VisitAs[string] of int): got %q, %v, want ErrNoCommonType", got, err)
	}
	if got, err := VisitAs[float32](v, mustFrom(t, intFloatString, 1.5)); err != nil || got != 2 {
		t.Errorf("TestVisitErrors(VisitAs[float32]): got %v, %v, want 2, nil", got, err)
	}

	// A Set with the same alternatives is fine.
	got, err := VisitAs[int64](v, mustFrom(t, MustSet(Alt[int](), Alt[float64](), Alt[string]()), "x"))
	if err != nil || got != 3 {
		t.Errorf("TestVisitErrors(equal set): got %d, %v, want 3, nil", got, err)
	}
}

func TestVisitFunc(t *testing.T) {
	u := New(intFloatString)
	Assign(u, "hi")

	n, err := Visit(u, func(v any) int { return len(fmt.Sprint(v)) })
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Errorf("TestVisitFunc: got %d, want 2", n)
	}

	ok, err := VisitPtr(u, func(p any) bool {
		s, ok := p.(*string)
		if ok {
			*s += "!"
		}
		return ok
	})
	if err != nil || !ok {
		t.Fatalf("TestVisitFunc: VisitPtr() = %v, %v", ok, err)
	}
	if s, _ := Get[string](u); s != "hi!" {
		t.Errorf("TestVisitFunc: VisitPtr() did not change value, got %q", s)
	}

	u.Destroy()
	if _, err := Visit(u, func(v any) int { return 0 }); !errors.Is(err, errors.ErrEmptyAccess) {
		t.Errorf("TestVisitFunc(empty): err = %v, want ErrEmptyAccess", err)
	}
	if _, err := VisitPtr(u, func(p any) int { return 0 }); !errors.Is(err, errors.ErrEmptyAccess) {
		t.Errorf("TestVisitFunc(VisitPtr empty): err = %v, want ErrEmptyAccess", err)
	}
}

func mustFrom[T any](t *testing.T, set *Set, v T) *Union {
	t.Helper()
	u, err := From(set, v)
	if err != nil {
		t.Fatalf("From(%v) error: %s", v, err)
	}
	return u
}
