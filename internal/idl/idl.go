// Package idl parses .union files, which declare typed unions that unionc turns into Go code.
package idl

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	pathpkg "path"
	"strconv"
	"strings"
	"unicode"

	"github.com/gostdlib/base/context"
	"github.com/johnsiilver/halfpike"

	"github.com/bearlytools/variant/internal/conversions"
)

/*
package {{package name}}

import "{{path}}"
import {{alias}} "{{path}}"

union {{Name}} {
	{{Go type}}
	{{Name}} = {{Go type}}
}
*/

// File is a parsed .union file.
type File struct {
	// Package is the Go package the generated code belongs to.
	Package string
	// Imports are the packages the alternatives' types come from.
	Imports []Import
	// Unions are the declared unions, in file order.
	Unions []*Union

	names map[string]bool
}

// Import is an import line.
type Import struct {
	// Name is the alias, empty if the package name is used.
	Name string
	// Path is the import path.
	Path string
}

// Union is one union declaration.
type Union struct {
	// Name is the name of the generated type.
	Name string
	// Alternatives are the member types, in declaration order.
	Alternatives []Alternative
	// Line is where the declaration starts.
	Line int
}

// Alternative is one member of a Union.
type Alternative struct {
	// Name is used to build method names, such as IsName() and SetName().
	Name string
	// Type is the Go type expression.
	Type string
	// Line is where the alternative was declared.
	Line int
}

// Position returns the 1-based position of the alternative in its union.
func (u *Union) Position(name string) int {
	for i, a := range u.Alternatives {
		if a.Name == name {
			return i + 1
		}
	}
	return 0
}

// New creates an empty File for use with halfpike.Parse().
func New() *File {
	return &File{names: map[string]bool{}}
}

// Parse parses the content of a .union file.
func Parse(ctx context.Context, content []byte) (*File, error) {
	f := New()
	if err := halfpike.Parse(ctx, conversions.ByteSlice2String(content), f); err != nil {
		return nil, err
	}
	return f, nil
}

// Validate implements halfpike.Validator.
func (f *File) Validate() error {
	if f.Package == "" {
		return fmt.Errorf("missing 'package' line")
	}
	if len(f.Unions) == 0 {
		return fmt.Errorf("file declares no unions")
	}
	return nil
}

// Start is the start point for reading the IDL.
func (f *File) Start(ctx context.Context, p *halfpike.Parser) halfpike.ParseFn {
	return f.ParsePackage
}

func (f *File) skipLinesWithComments(p *halfpike.Parser) {
	l := p.Next()

	if len(l.Items) > 0 && isComment(l.Items[0]) {
		if p.EOF(l) {
			return
		}
		f.skipLinesWithComments(p)
	} else {
		p.Backup()
	}
}

// ParsePackage reads the package line, which must be the first line that is not a comment.
func (f *File) ParsePackage(ctx context.Context, p *halfpike.Parser) halfpike.ParseFn {
	f.skipLinesWithComments(p)

	line := p.Next()
	if p.EOF(line) {
		return p.Errorf("error: reached end of file before finding 'package {{package name}}'")
	}

	if len(line.Items) < 3 {
		return p.Errorf("[Line %d] error: got %q, want: 'package {{package name}}'", line.LineNum, line.Raw)
	}

	if err := caseSensitiveCheck("package", line.Items[0].Val); err != nil {
		return p.Errorf("[Line %d] error: %s", line.LineNum, err)
	}

	if err := validPackage(line.Items[1].Val); err != nil {
		return p.Errorf("[Line %d] error: %s", line.LineNum, err)
	}
	f.Package = line.Items[1].Val

	if err := commentOrEOL(line, 2); err != nil {
		return p.Errorf("[Line %d] %s", line.LineNum, err)
	}

	return f.FindNext
}

// FindNext scans for the next import or union.
func (f *File) FindNext(ctx context.Context, p *halfpike.Parser) halfpike.ParseFn {
	f.skipLinesWithComments(p)

	line := p.Next()
	if p.EOF(line) {
		return nil
	}

	switch line.Items[0].Val {
	case "import":
		if len(f.Unions) != 0 {
			return p.Errorf("[Line %d] error: 'import' must come before any union", line.LineNum)
		}
		p.Backup()
		return f.ParseImport
	case "union":
		p.Backup()
		return f.ParseUnion
	case "package":
		return p.Errorf("[Line %d] error: duplicate 'package' line found", line.LineNum)
	}
	if strings.EqualFold(line.Items[0].Val, "union") || strings.EqualFold(line.Items[0].Val, "import") {
		return p.Errorf("[Line %d] error: %s", line.LineNum, caseSensitiveCheck(strings.ToLower(line.Items[0].Val), line.Items[0].Val))
	}
	return p.Errorf("[Line %d] error: do not understand this line: %q", line.LineNum, line.Raw)
}

// ParseImport reads an import line.
func (f *File) ParseImport(ctx context.Context, p *halfpike.Parser) halfpike.ParseFn {
	line := p.Next()

	imp := Import{}
	pathAt := 1
	switch {
	case len(line.Items) >= 4 && !isComment(line.Items[2]) && line.Items[2].Val != "":
		if !token.IsIdentifier(line.Items[1].Val) && line.Items[1].Val != "_" && line.Items[1].Val != "." {
			return p.Errorf("[Line %d] error: import alias %q is not a valid identifier", line.LineNum, line.Items[1].Val)
		}
		imp.Name = line.Items[1].Val
		pathAt = 2
	case len(line.Items) < 3:
		return p.Errorf("[Line %d] error: got %q, want: 'import \"{{path}}\"'", line.LineNum, line.Raw)
	}

	path, err := strconv.Unquote(line.Items[pathAt].Val)
	if err != nil || path == "" {
		return p.Errorf("[Line %d] error: import path %s must be a quoted, non-empty string", line.LineNum, line.Items[pathAt].Val)
	}
	imp.Path = path

	for _, other := range f.Imports {
		if other.Path == imp.Path {
			return p.Errorf("[Line %d] error: %q is imported twice", line.LineNum, imp.Path)
		}
	}
	if want, ok := GeneratedImports[imp.BoundName()]; ok && want != imp.Path {
		return p.Errorf("[Line %d] error: import %q would hide package %q, which generated code uses as %s", line.LineNum, imp.Path, want, imp.BoundName())
	}

	if err := commentOrEOL(line, pathAt+1); err != nil {
		return p.Errorf("[Line %d] %s", line.LineNum, err)
	}
	f.Imports = append(f.Imports, imp)
	return f.FindNext
}

// GeneratedImports are the packages every generated file imports, keyed by the name
// generated code uses for them.
var GeneratedImports = map[string]string{
	"fmt":     "fmt",
	"variant": "github.com/bearlytools/variant",
}

// BoundName is the name the import is referred to by in the generated file.
func (i Import) BoundName() string {
	if i.Name != "" {
		return i.Name
	}
	return pathpkg.Base(i.Path)
}

// ParseUnion reads a union declaration through its closing brace.
func (f *File) ParseUnion(ctx context.Context, p *halfpike.Parser) halfpike.ParseFn {
	u, err := parseUnion(p)
	if err != nil {
		return p.Errorf("%s", err)
	}
	if f.names[u.Name] {
		return p.Errorf("[Line %d] error: found two unions named %q", u.Line, u.Name)
	}
	f.names[u.Name] = true
	f.Unions = append(f.Unions, u)
	return f.FindNext
}

// reserved are names that would collide with generated methods or types.
var reserved = map[string]bool{
	"Union":   true,
	"Which":   true,
	"Empty":   true,
	"Clear":   true,
	"Clone":   true,
	"Kind":    true,
	"Visitor": true,
}

func parseUnion(p *halfpike.Parser) (*Union, error) {
	l := p.Next()
	if len(l.Items) < 4 {
		return nil, fmt.Errorf("[Line %d] error: got %q, want: 'union {{Name}} {'", l.LineNum, l.Raw)
	}
	if err := validateIdent(l.Items[1].Val); err != nil {
		return nil, fmt.Errorf("[Line %d] error: union name: %w", l.LineNum, err)
	}
	if l.Items[2].Val != "{" {
		return nil, fmt.Errorf("[Line %d] error: expected '{' after the union name, got %q", l.LineNum, l.Items[2].Val)
	}
	if err := commentOrEOL(l, 3); err != nil {
		return nil, fmt.Errorf("[Line %d] error: %w", l.LineNum, err)
	}

	u := &Union{Name: l.Items[1].Val, Line: l.LineNum}
	nameLines := map[string]int{}
	typeLines := map[string]int{}

	for {
		l = p.Next()
		if p.EOF(l) {
			return nil, fmt.Errorf("[Line %d] error: union %q: reached end of file before closing '}'", u.Line, u.Name)
		}
		if len(l.Items) == 0 || isComment(l.Items[0]) {
			continue
		}
		if l.Items[0].Val == "}" {
			if err := commentOrEOL(l, 1); err != nil {
				return nil, fmt.Errorf("[Line %d] error: %w", l.LineNum, err)
			}
			break
		}

		alt, err := parseAlternative(l)
		if err != nil {
			return nil, fmt.Errorf("[Line %d] error: union %q: %w", l.LineNum, u.Name, err)
		}
		if reserved[alt.Name] {
			return nil, fmt.Errorf("[Line %d] error: union %q: %s is used by generated code, name the alternative with '{{Name}} = %s'", l.LineNum, u.Name, alt.Name, alt.Type)
		}
		if prev, ok := typeLines[alt.Type]; ok {
			return nil, fmt.Errorf("[Line %d] error: union %q: type %s is already an alternative on line %d", l.LineNum, u.Name, alt.Type, prev)
		}
		if prev, ok := nameLines[alt.Name]; ok {
			return nil, fmt.Errorf("[Line %d] error: union %q: name %s is already used on line %d, name one of them with '{{Name}} = {{Type}}'", l.LineNum, u.Name, alt.Name, prev)
		}
		typeLines[alt.Type] = l.LineNum
		nameLines[alt.Name] = l.LineNum
		u.Alternatives = append(u.Alternatives, alt)
	}

	if len(u.Alternatives) == 0 {
		return nil, fmt.Errorf("[Line %d] error: union %q has no alternatives, which is not valid", u.Line, u.Name)
	}
	if len(u.Alternatives) > 255 {
		return nil, fmt.Errorf("[Line %d] error: union %q has %d alternatives, at most 255 are supported", u.Line, u.Name, len(u.Alternatives))
	}
	return u, nil
}

// parseAlternative reads "{{Go type}}" or "{{Name}} = {{Go type}}" from a line.
func parseAlternative(l halfpike.Line) (Alternative, error) {
	raw := l.Raw
	if i := strings.Index(raw, "//"); i >= 0 {
		raw = raw[:i]
	}
	raw = strings.TrimSpace(raw)

	name := ""
	if before, after, ok := strings.Cut(raw, "="); ok {
		name = strings.TrimSpace(before)
		raw = strings.TrimSpace(after)
		if err := validateIdent(name); err != nil {
			return Alternative{}, fmt.Errorf("alternative name: %w", err)
		}
	}

	expr, err := parser.ParseExpr(raw)
	if err != nil {
		return Alternative{}, fmt.Errorf("%q is not a Go type: %w", raw, err)
	}
	if err := checkType(expr); err != nil {
		return Alternative{}, fmt.Errorf("%q: %w", raw, err)
	}

	if name == "" {
		name, err = nameOf(expr)
		if err != nil {
			return Alternative{}, fmt.Errorf("%q: %w, use '{{Name}} = %s'", raw, err, raw)
		}
	}
	return Alternative{Name: name, Type: types.ExprString(expr), Line: l.LineNum}, nil
}

// checkType rejects expressions that can't be types.
func checkType(expr ast.Expr) error {
	switch e := expr.(type) {
	case *ast.Ident, *ast.SelectorExpr, *ast.FuncType, *ast.InterfaceType, *ast.StructType, *ast.ChanType:
		return nil
	case *ast.StarExpr:
		return checkType(e.X)
	case *ast.ArrayType:
		return checkType(e.Elt)
	case *ast.MapType:
		if err := checkType(e.Key); err != nil {
			return err
		}
		return checkType(e.Value)
	case *ast.IndexExpr:
		if err := checkType(e.X); err != nil {
			return err
		}
		return checkType(e.Index)
	case *ast.IndexListExpr:
		if err := checkType(e.X); err != nil {
			return err
		}
		for _, i := range e.Indices {
			if err := checkType(i); err != nil {
				return err
			}
		}
		return nil
	case *ast.ParenExpr:
		return checkType(e.X)
	}
	return fmt.Errorf("expression of kind %T is not a type", expr)
}

// nameOf derives a method name from a type: "int" is Int, "time.Duration" is Duration,
// "*Circle" is PtrCircle, "[]byte" is ByteSlice and "map[string]int" is StringIntMap.
func nameOf(expr ast.Expr) (string, error) {
	switch e := expr.(type) {
	case *ast.Ident:
		return exported(e.Name), nil
	case *ast.SelectorExpr:
		return exported(e.Sel.Name), nil
	case *ast.StarExpr:
		n, err := nameOf(e.X)
		return "Ptr" + n, err
	case *ast.ArrayType:
		n, err := nameOf(e.Elt)
		if e.Len == nil {
			return n + "Slice", err
		}
		return n + "Array", err
	case *ast.MapType:
		k, err := nameOf(e.Key)
		if err != nil {
			return "", err
		}
		v, err := nameOf(e.Value)
		return k + v + "Map", err
	case *ast.IndexExpr:
		return nameOf(e.X)
	case *ast.IndexListExpr:
		return nameOf(e.X)
	case *ast.ParenExpr:
		return nameOf(e.X)
	}
	return "", fmt.Errorf("cannot derive a name from this type")
}

func exported(s string) string {
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

func caseSensitiveCheck(want string, item string) error {
	if item != want {
		if strings.EqualFold(item, want) {
			return fmt.Errorf("%q keyword found, but it is required to be %q", item, want)
		}
		return fmt.Errorf("got: %q, want: %q", item, want)
	}
	return nil
}

func isComment(item halfpike.Item) bool {
	return strings.HasPrefix(item.Val, "//")
}

func commentOrEOL(line halfpike.Line, from int) error {
	if from >= len(line.Items) {
		return nil
	}

	if isComment(line.Items[from]) {
		return nil
	}

	if len(line.Items[from:]) > 1 {
		return fmt.Errorf("got item %q after %q, which was unexpected", halfpike.ItemJoin(line, from, len(line.Items)), halfpike.ItemJoin(line, 0, from))
	}

	return nil
}

var underscore = '_'

func validPackage(pkgName string) error {
	runes := []rune(pkgName)
	if unicode.IsUpper(runes[0]) {
		return fmt.Errorf("package name cannot start with an uppercase letter")
	}
	if !unicode.IsLetter(runes[0]) {
		return fmt.Errorf("package name must start with a letter")
	}
	for _, r := range runes[1:] {
		if unicode.IsLetter(r) {
			continue
		}
		if unicode.IsNumber(r) {
			continue
		}
		if r == underscore {
			continue
		}
		return fmt.Errorf("package name contains character %q which is invalid for a package name", r)
	}
	return nil
}

func validateIdent(ident string) error {
	runes := []rune(ident)
	if len(runes) == 0 {
		return fmt.Errorf("identifier is empty")
	}
	if unicode.IsLower(runes[0]) {
		return fmt.Errorf("identifier cannot start with an lowercase letter")
	}

	if !unicode.IsLetter(runes[0]) {
		return fmt.Errorf("identifier must start with a letter")
	}

	for _, r := range runes[1:] {
		if unicode.IsLetter(r) {
			continue
		}
		if unicode.IsNumber(r) {
			continue
		}
		return fmt.Errorf("identifier contains character %q which is invalid for an identifer", r)
	}
	return nil
}
