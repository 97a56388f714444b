// Package errors provides an errors package for this module. It includes all of the stdlib's
// functions and types, the sentinel errors returned by the variant engine and the
// categorization used when the unionc tool reports a failure.
package errors

import (
	"github.com/gostdlib/base/context"
	"github.com/gostdlib/base/errors"
)

//go:generate stringer -type=Category -linecomment

// Category represents the category of the error.
type Category uint32

func (c Category) Category() string {
	return c.String()
}

const (
	// CatUnknown represents an unknown category. This should not be used.
	CatUnknown Category = Category(0) // Unknown
	// CatUser represents an error that is caused by bad user input.
	CatUser Category = Category(1) // User
	// CatInternal represents an internal error.
	CatInternal Category = Category(2) // Internal
)

//go:generate stringer -type=Type -linecomment

// Type represents the type of the error.
type Type uint16

func (t Type) Type() string {
	return t.String()
}

const (
	// TypeUnknown represents an unknown type.
	TypeUnknown Type = Type(0) // Unknown
	// TypeParameter represents a command line flag or argument that didn't pass validation.
	TypeParameter Type = Type(2) // Parameter
	// TypeFS represents an error with the file system.
	TypeFS Type = Type(5) // FS

	// TypeEmptyAccess represents reading a value out of a union that holds nothing.
	TypeEmptyAccess Type = Type(100) // EmptyAccess
	// TypeWrongAlternative represents reading a union as a type it does not currently hold.
	TypeWrongAlternative Type = Type(101) // WrongAlternative
	// TypeNotAlternative represents using a type that is not one of the union's alternatives.
	TypeNotAlternative Type = Type(102) // NotAlternative
	// TypeVisitor represents a visitor that cannot be built for a set of alternatives.
	TypeVisitor Type = Type(103) // Visitor

	// TypeParse represents an error parsing a .union declaration file.
	TypeParse Type = Type(200) // Parse
	// TypeRender represents an error rendering Go source from a declaration.
	TypeRender Type = Type(201) // Render
	// TypeConfig represents an error reading the unionc configuration.
	TypeConfig Type = Type(202) // Config
)

// Sentinel errors for the variant engine. Errors returned by the engine wrap one of
// these, so test with Is().
var (
	// ErrEmptyAccess is returned when a value is read from, or a visitor is applied to,
	// a union that holds no value.
	ErrEmptyAccess = New("access to empty union")
	// ErrWrongAlternative is returned when a union is read as an alternative type other
	// than the one it currently holds.
	ErrWrongAlternative = New("union does not hold the requested alternative")
	// ErrNotAlternative is returned when a type is not a member of the union's alternative set.
	ErrNotAlternative = New("type is not an alternative of the union")
	// ErrNoCommonType is returned when visitor results share no common type.
	ErrNoCommonType = New("visitor results have no common type")
	// ErrNotExhaustive is returned when a visitor has no handler for some alternative.
	ErrNotExhaustive = New("visitor does not handle every alternative")
)

// TypeOf returns the Type for the sentinel that err wraps, TypeUnknown if it wraps none.
func TypeOf(err error) Type {
	switch {
	case err == nil:
		return TypeUnknown
	case Is(err, ErrEmptyAccess):
		return TypeEmptyAccess
	case Is(err, ErrWrongAlternative):
		return TypeWrongAlternative
	case Is(err, ErrNotAlternative):
		return TypeNotAlternative
	case Is(err, ErrNoCommonType), Is(err, ErrNotExhaustive):
		return TypeVisitor
	}
	return TypeUnknown
}

// LogAttrer is an interface that can be implemented by an error to return a list of attributes
// used in logging.
type LogAttrer = errors.LogAttrer

// Error is the error type for this module. Error implements github.com/gostdlib/base/errors.E .
type Error = errors.Error

// EOption is an optional argument for E().
type EOption = errors.EOption

// WithCallNum is used if you need to set the runtime.CallNum() in order to get the correct filename and line.
// This can happen if you create a call wrapper around E(), because you would then need to look up one more stack frame
// for every wrapper. This defaults to 1 which sets to the frame of the caller of E().
func WithCallNum(i int) EOption {
	return errors.WithCallNum(i)
}

// WithStackTrace will add a stack trace to the error. This is not recommended for general
// use as it can cause performance issues when errors are created frequently.
func WithStackTrace() EOption {
	return errors.WithStackTrace()
}

// E creates a new Error with the given parameters.
func E(ctx context.Context, c errors.Category, t errors.Type, msg error, options ...errors.EOption) Error {
	// We are a wrapper, so move the call number up one frame. If the caller set the
	// call number, this will not override it.
	opts := make([]errors.EOption, 0, len(options)+1)
	opts = append(opts, WithCallNum(2))
	opts = append(opts, options...)

	return errors.E(ctx, c, t, msg, opts...)
}
