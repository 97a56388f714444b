// Package render turns a parsed .union file into Go source.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"go/format"
	"strconv"
	"strings"
	"text/template"
	"unicode"

	"github.com/gostdlib/base/concurrency/sync"
	"github.com/gostdlib/base/context"

	"github.com/bearlytools/variant/internal/config"
	"github.com/bearlytools/variant/internal/idl"
)

//go:embed templates/*
var f embed.FS
var templates *template.Template

var funcs = template.FuncMap{
	"inc": func(i int) int { return i + 1 },
	"typeList": func(alts []idl.Alternative) string {
		l := make([]string, 0, len(alts))
		for _, a := range alts {
			l = append(l, a.Type)
		}
		return strings.Join(l, ", ")
	},
}

func init() {
	t, err := template.New("").Funcs(funcs).ParseFS(f, "templates/*.tmpl")
	if err != nil {
		panic(err)
	}
	templates = t
}

var buffers = sync.NewPool[*bytes.Buffer](
	context.Background(),
	"renderBuffers",
	func() *bytes.Buffer {
		return &bytes.Buffer{}
	},
	sync.WithBuffer(10),
)

type templateData struct {
	Source  string
	Header  []string
	Package string
	Imports []idl.Import
	Unions  []unionData
}

type unionData struct {
	*idl.Union
	// Set is the name of the package variable holding the variant.Set.
	Set      string
	Visitors bool
}

// Render renders the Go source for file. source is the name of the .union file, which is
// noted in the generated file's header.
func Render(ctx context.Context, file *idl.File, source string, c *config.Config) ([]byte, error) {
	if c == nil {
		c = config.Default()
	}

	data := templateData{
		Source:  source,
		Header:  c.HeaderLines(),
		Package: file.Package,
		Imports: userImports(file.Imports),
		Unions:  make([]unionData, 0, len(file.Unions)),
	}
	for _, u := range file.Unions {
		data.Unions = append(data.Unions, unionData{Union: u, Set: setName(u.Name), Visitors: c.GenerateVisitors()})
	}

	buff := buffers.Get(ctx)
	defer func() {
		buff.Reset()
		buffers.Put(ctx, buff)
	}()

	if err := templates.ExecuteTemplate(buff, "union.tmpl", data); err != nil {
		return nil, fmt.Errorf("error rendering union.tmpl: %w", err)
	}

	out, err := format.Source(buff.Bytes())
	if err != nil {
		return nil, fmt.Errorf("generated code for %s does not format, this is a bug or a bad type in the file: %w\n%s", source, err, numbered(buff.String()))
	}
	return out, nil
}

// userImports returns imps without those the template always writes.
func userImports(imps []idl.Import) []idl.Import {
	out := make([]idl.Import, 0, len(imps))
	for _, imp := range imps {
		if idl.GeneratedImports[imp.BoundName()] == imp.Path {
			continue
		}
		out = append(out, imp)
	}
	return out
}

// setName is the unexported package variable name for union name.
func setName(name string) string {
	r := []rune(name)
	r[0] = unicode.ToLower(r[0])
	return string(r) + "Set"
}

// numbered prefixes each line of s with its line number, for error messages.
func numbered(s string) string {
	lines := strings.Split(s, "\n")
	b := strings.Builder{}
	for i, l := range lines {
		b.WriteString(strconv.Itoa(i + 1))
		b.WriteString(": ")
		b.WriteString(l)
		b.WriteString("\n")
	}
	return b.String()
}
