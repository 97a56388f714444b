/*
Package variant provides a type-safe discriminated union: a value that holds exactly one
of a fixed, ordered set of alternative types at a time, or nothing at all.

The set of alternatives is described once with a Set:

	var shapes = variant.MustSet(
		variant.Alt[Circle](),
		variant.Alt[Square](),
		variant.Alt[string](),
	)

A Union over that Set is then constructed, assigned, read and visited:

	u := variant.New(shapes) // holds Circle{}, the first alternative's zero value

	if err := variant.Assign(u, Square{Side: 2}); err != nil {
		// Square is not an alternative of shapes.
	}

	if variant.Is[Square](u) {
		sq, _ := variant.Get[Square](u)
		fmt.Println(sq.Side)
	}

Reading a Union that holds nothing returns an error wrapping errors.ErrEmptyAccess. Reading
it as a different alternative than the one it holds returns errors.ErrWrongAlternative.
Naming a type that is not in the Set returns errors.ErrNotAlternative.

# Discriminator

Each alternative is identified by its Discriminator, its 1-based position in the Set. 0 is
reserved for the empty state. When the same type is listed twice, lookups by type resolve
to the first occurrence.

# Lifetime

A Union owns its value. Replacing the value with one of a different alternative, calling
Destroy() or moving the value out with MoveFrom/Take ends the life of the held value. If the
alternative (or a pointer to it) implements Destroyer, Destroy() is called on it exactly once
when the Union stops holding it, except when the value is moved to a new owner.

Copies are made with Clone(), CopyFrom() or Convert(). If the alternative implements
Cloner, its Clone() method makes the copy, otherwise Go assignment does.

A Union must not be copied by value after first use; use Clone().

# Visitation

A Visitor dispatches to a per-alternative handler and unifies the handlers' result types
with CommonType, the same way a conditional expression picks its type:

	area, _ := variant.NewVisitor(
		shapes,
		func(c Circle) float64 { return math.Pi * c.R * c.R },
		func(s Square) int { return s.Side * s.Side },
		func(s string) int { return 0 },
	)
	v, err := area.Visit(u) // v is a float64

For a fixed number of alternatives, Of2, Of3 and Of4 provide compile time checked
accessors, and Match2, Match3 and Match4 let the Go compiler infer the common result type.
The unionc tool generates the same kind of typed wrapper for any number of alternatives.

# Concurrency

A Union is not safe for concurrent use. A Set and a Visitor are immutable after creation and
may be shared.
*/
package variant
