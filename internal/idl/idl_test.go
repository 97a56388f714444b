package idl

import (
	"strings"
	"testing"

	"github.com/gostdlib/base/context"
	"github.com/kylelemons/godebug/pretty"
)

func TestParse(t *testing.T) {
	content := `
// A comment
// About something
package shapes // Comments are fine here

import "time"
import t "text/template" // And here

// Shape is something we can draw.
union Shape {
	Circle
	*Square // Pointer
	time.Duration
	Tmpl = *t.Template
}

union Value {
	int
	float64
	string
	[]byte
	map[string]int
}
`

	got, err := Parse(context.Background(), []byte(content))
	if err != nil {
		t.Fatalf("TestParse: got err == %s, want err == nil", err)
	}

	want := &File{
		Package: "shapes",
		Imports: []Import{
			{Path: "time"},
			{Name: "t", Path: "text/template"},
		},
		Unions: []*Union{
			{
				Name: "Shape",
				Alternatives: []Alternative{
					{Name: "Circle", Type: "Circle"},
					{Name: "PtrSquare", Type: "*Square"},
					{Name: "Duration", Type: "time.Duration"},
					{Name: "Tmpl", Type: "*t.Template"},
				},
			},
			{
				Name: "Value",
				Alternatives: []Alternative{
					{Name: "Int", Type: "int"},
					{Name: "Float64", Type: "float64"},
					{Name: "String", Type: "string"},
					{Name: "ByteSlice", Type: "[]byte"},
					{Name: "StringIntMap", Type: "map[string]int"},
				},
			},
		},
	}

	// Line numbers are checked by TestLineNumbers.
	for _, u := range got.Unions {
		u.Line = 0
		for i := range u.Alternatives {
			u.Alternatives[i].Line = 0
		}
	}

	config := pretty.Config{Diffable: true}
	if diff := config.Compare(want, got); diff != "" {
		t.Errorf("TestParse: -want +got:\n%s", diff)
	}

	if pos := got.Unions[0].Position("Duration"); pos != 3 {
		t.Errorf("TestParse: Position(Duration) = %d, want 3", pos)
	}
	if pos := got.Unions[0].Position("Nope"); pos != 0 {
		t.Errorf("TestParse: Position(Nope) = %d, want 0", pos)
	}
}

func TestLineNumbers(t *testing.T) {
	content := "package a\nunion A {\n\tint\n\tstring\n}\n"

	got, err := Parse(context.Background(), []byte(content))
	if err != nil {
		t.Fatalf("TestLineNumbers: got err == %s, want err == nil", err)
	}
	u := got.Unions[0]
	if u.Line >= u.Alternatives[0].Line || u.Alternatives[0].Line >= u.Alternatives[1].Line {
		t.Errorf("TestLineNumbers: lines not increasing: union %d, alternatives %d, %d", u.Line, u.Alternatives[0].Line, u.Alternatives[1].Line)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		wantErr     bool
		errContains string
	}{
		{
			name: "Success: minimal",
			content: `
package a
union A {
	int
}
`,
		},
		{
			name:        "Error: empty file",
			content:     "// nothing here\n",
			wantErr:     true,
			errContains: "package",
		},
		{
			name: "Error: uppercase package keyword",
			content: `
Package a
union A {
	int
}
`,
			wantErr:     true,
			errContains: "required to be",
		},
		{
			name: "Error: package name starts uppercase",
			content: `
package Alpha
union A {
	int
}
`,
			wantErr: true,
		},
		{
			name: "Error: no unions",
			content: `
package a
import "time"
`,
			wantErr:     true,
			errContains: "no unions",
		},
		{
			name: "Error: import after union",
			content: `
package a
union A {
	int
}
import "time"
`,
			wantErr:     true,
			errContains: "before any union",
		},
		{
			name: "Error: unquoted import",
			content: `
package a
import time
union A {
	int
}
`,
			wantErr: true,
		},
		{
			name: "Error: duplicate import",
			content: `
package a
import "time"
import "time"
union A {
	time.Duration
}
`,
			wantErr:     true,
			errContains: "imported twice",
		},
		{
			name: "Success: import of a package generated code uses",
			content: `
package a
import "fmt"
import "github.com/bearlytools/variant"
union A {
	fmt.Stringer
	variant.Discriminator
}
`,
		},
		{
			name: "Error: import hides fmt",
			content: `
package a
import fmt "example.com/pretty/fmt"
union A {
	fmt.Printer
}
`,
			wantErr:     true,
			errContains: "would hide",
		},
		{
			name: "Error: import hides variant",
			content: `
package a
import "example.com/other/variant"
union A {
	variant.Value
}
`,
			wantErr:     true,
			errContains: "would hide",
		},
		{
			name: "Error: lowercase union name",
			content: `
package a
union shape {
	int
}
`,
			wantErr: true,
		},
		{
			name: "Error: missing brace",
			content: `
package a
union A
	int
}
`,
			wantErr: true,
		},
		{
			name: "Error: no alternatives",
			content: `
package a
union A {
}
`,
			wantErr:     true,
			errContains: "no alternatives",
		},
		{
			name: "Error: unclosed union",
			content: `
package a
union A {
	int
`,
			wantErr:     true,
			errContains: "closing",
		},
		{
			name: "Error: duplicate alternative",
			content: `
package a
union A {
	int
	string
	int
}
`,
			wantErr:     true,
			errContains: "already an alternative",
		},
		{
			name: "Error: derived names collide",
			content: `
package a
import "time"
union A {
	Duration
	time.Duration
}
`,
			wantErr:     true,
			errContains: "already used",
		},
		{
			name: "Success: rename fixes collision",
			content: `
package a
import "time"
union A {
	Duration
	Std = time.Duration
}
`,
		},
		{
			name: "Error: reserved name",
			content: `
package a
union A {
	Clone
}
`,
			wantErr:     true,
			errContains: "used by generated code",
		},
		{
			name: "Error: duplicate union",
			content: `
package a
union A {
	int
}
union A {
	string
}
`,
			wantErr:     true,
			errContains: "two unions",
		},
		{
			name: "Error: not a type",
			content: `
package a
union A {
	1 + 2
}
`,
			wantErr:     true,
			errContains: "not a type",
		},
		{
			name: "Error: unnamed func type",
			content: `
package a
union A {
	func(int) string
}
`,
			wantErr:     true,
			errContains: "cannot derive a name",
		},
		{
			name: "Success: named func type",
			content: `
package a
union A {
	Callback = func(int) string
}
`,
		},
		{
			name: "Error: unknown line",
			content: `
package a
struct A {
	int
}
`,
			wantErr:     true,
			errContains: "do not understand",
		},
	}

	for _, test := range tests {
		_, err := Parse(context.Background(), []byte(test.content))
		switch {
		case err == nil && test.wantErr:
			t.Errorf("TestParseErrors(%s): got err == nil, want err != nil", test.name)
			continue
		case err != nil && !test.wantErr:
			t.Errorf("TestParseErrors(%s): got err == %s, want err == nil", test.name, err)
			continue
		case err != nil:
			if test.errContains != "" && !strings.Contains(err.Error(), test.errContains) {
				t.Errorf("TestParseErrors(%s): got err == %s, want it to contain %q", test.name, err, test.errContains)
			}
		}
	}
}
