package catalog

import (
	"errors"
	"strings"
	"testing"
)

func TestLoadYAML_Entries(t *testing.T) {
	src := `entries:
  - title: Enums
    body: A fixed set of named constants.
    lang: java
    code: |
      enum Status { RUNNING, FAILED }
  - title: Annotations
    body: |
      Supplemental information for the compiler.
`
	cat, err := LoadYAML([]byte(src))
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.Join(cat.Titles(), ","); got != "Enums,Annotations" {
		t.Fatalf("titles = %q", got)
	}
	e := cat.At(0)
	code, ok := e.Code()
	if !ok || code != "enum Status { RUNNING, FAILED }" {
		t.Fatalf("code = %q", code)
	}
	if e.Lang() != "java" || e.Line() != 2 {
		t.Fatalf("lang = %q line = %d", e.Lang(), e.Line())
	}
	if cat.At(1).Body() != "Supplemental information for the compiler." {
		t.Fatalf("body = %q", cat.At(1).Body())
	}
	if cat.At(1).Line() != 7 {
		t.Fatalf("line = %d, want 7", cat.At(1).Line())
	}
}

func TestLoadYAML_Empty(t *testing.T) {
	cat, err := LoadYAML([]byte("  \n"))
	if err != nil {
		t.Fatal(err)
	}
	if cat.Len() != 0 {
		t.Fatalf("len = %d", cat.Len())
	}
}

func TestLoadYAML_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		msg  string
	}{
		{"malformed", "entries: [\n", "yaml"},
		{"missing title", "entries:\n  - body: x\n", "'title' is required"},
		{"duplicate", "entries:\n  - title: A\n  - title: A\n", "duplicate title"},
		{"wrong shape", "entries: 3\n", "cannot unmarshal"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadYAML([]byte(tt.src))
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("expected ParseError, got %v", err)
			}
			if !strings.Contains(pe.Error(), tt.msg) {
				t.Fatalf("error %q does not mention %q", pe.Error(), tt.msg)
			}
		})
	}
}
