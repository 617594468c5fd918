package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sample = `# Data Types
Primitive and reference types.

# Threads
Independent flows of execution.
` + "```java" + `
new Thread(task).start();
` + "```" + `

# Maps
Keys to values.
`

func mustLoad(t *testing.T, src string) *Catalog {
	t.Helper()
	cat, err := Load([]byte(src))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return cat
}

func TestLoad_PreservesAuthoredOrder(t *testing.T) {
	cat := mustLoad(t, sample)
	got := strings.Join(cat.Titles(), ",")
	if got != "Data Types,Threads,Maps" {
		t.Fatalf("titles = %q", got)
	}
}

func TestLoad_EmptySource(t *testing.T) {
	for _, src := range []string{"", "\n\n", "   \n", "%% only a comment\n"} {
		cat, err := Load([]byte(src))
		if err != nil {
			t.Fatalf("Load(%q) error: %v", src, err)
		}
		if cat.Len() != 0 {
			t.Fatalf("Load(%q) len = %d, want 0", src, cat.Len())
		}
	}
}

func TestLoad_BodyAndCode(t *testing.T) {
	cat := mustLoad(t, sample)
	e, err := cat.Get("Threads")
	if err != nil {
		t.Fatal(err)
	}
	if e.Body() != "Independent flows of execution." {
		t.Fatalf("body = %q", e.Body())
	}
	code, ok := e.Code()
	if !ok || code != "new Thread(task).start();" {
		t.Fatalf("code = %q, %v", code, ok)
	}
	if e.Lang() != "java" {
		t.Fatalf("lang = %q", e.Lang())
	}
	if e.Line() != 4 {
		t.Fatalf("line = %d, want 4", e.Line())
	}
}

func TestLoad_NoCodeSample(t *testing.T) {
	cat := mustLoad(t, sample)
	e, _ := cat.Get("Maps")
	if _, ok := e.Code(); ok {
		t.Fatal("Maps should have no code sample")
	}
}

func TestLoad_HeadingInsideFenceIsCode(t *testing.T) {
	src := "# Preprocessor\n```c\n#include <stdio.h>\n```\n"
	cat := mustLoad(t, src)
	if cat.Len() != 1 {
		t.Fatalf("len = %d, want 1", cat.Len())
	}
	code, _ := cat.At(0).Code()
	if code != "#include <stdio.h>" {
		t.Fatalf("code = %q", code)
	}
}

func TestLoad_EmptyFenceIsNotASample(t *testing.T) {
	cat := mustLoad(t, "# A\n```go\n```\n")
	e := cat.At(0)
	if code, ok := e.Code(); ok || code != "" {
		t.Fatalf("code = %q, %v; want no sample", code, ok)
	}
	if e.Lang() != "" {
		t.Fatalf("lang = %q, want empty", e.Lang())
	}
}

func TestLoad_EmptyFenceThenSample(t *testing.T) {
	cat := mustLoad(t, "# A\n```\n```\ntext\n```java\nx\n```\n")
	e := cat.At(0)
	code, ok := e.Code()
	if !ok || code != "x" {
		t.Fatalf("code = %q, %v", code, ok)
	}
	if e.Lang() != "java" {
		t.Fatalf("lang = %q, want java", e.Lang())
	}
	if e.Body() != "text" {
		t.Fatalf("body = %q", e.Body())
	}
}

func TestLoad_CRLF(t *testing.T) {
	cat := mustLoad(t, "# A\r\nbody\r\n")
	if cat.At(0).Body() != "body" {
		t.Fatalf("body = %q", cat.At(0).Body())
	}
}

func TestLoad_ParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		line int
		msg  string
	}{
		{"text before heading", "stray\n# A\n", 1, "before the first heading"},
		{"empty title", "# A\n#\n", 2, "empty title"},
		{"duplicate title", "# A\nx\n# A\n", 3, "duplicate title"},
		{"two samples", "# A\n```\nx\n```\n```\ny\n```\n", 5, "more than one code sample"},
		{"unclosed fence", "# A\n\n```go\nfunc main() {}\n", 3, "unclosed code block"},
		{"fence before heading", "```\nx\n```\n", 1, "before the first heading"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load([]byte(tt.src))
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("expected ParseError, got %v", err)
			}
			if pe.Line != tt.line {
				t.Errorf("line = %d, want %d", pe.Line, tt.line)
			}
			if !strings.Contains(pe.Msg, tt.msg) {
				t.Errorf("msg = %q, want it to contain %q", pe.Msg, tt.msg)
			}
		})
	}
}

func TestGet_Found(t *testing.T) {
	cat := mustLoad(t, sample)
	for _, title := range cat.Titles() {
		e, err := cat.Get(title)
		if err != nil {
			t.Fatalf("Get(%q) error: %v", title, err)
		}
		if e.Title() != title {
			t.Fatalf("Get(%q) returned %q", title, e.Title())
		}
	}
}

func TestGet_NotFound(t *testing.T) {
	cat := mustLoad(t, sample)
	for _, title := range []string{"threads", "Thread", "", "Nope"} {
		_, err := cat.Get(title)
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("Get(%q) err = %v, want ErrNotFound", title, err)
		}
	}
}

func TestFind_CaseInsensitiveAndSlug(t *testing.T) {
	cat := mustLoad(t, sample)
	for _, sel := range []string{"Data Types", "data types", "data-types", "DATA_TYPES"} {
		e, err := cat.Find(sel)
		if err != nil {
			t.Fatalf("Find(%q) error: %v", sel, err)
		}
		if e.Title() != "Data Types" {
			t.Fatalf("Find(%q) = %q", sel, e.Title())
		}
	}
	if _, err := cat.Find("streams"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Find(streams) err = %v", err)
	}
}

func TestAll_ReturnsCopy(t *testing.T) {
	cat := mustLoad(t, sample)
	all := cat.All()
	all[0] = NewEntry("Changed", "", "", "")
	if cat.At(0).Title() != "Data Types" {
		t.Fatal("mutating All() result changed the catalog")
	}
}

func TestNew_RejectsDuplicates(t *testing.T) {
	_, err := New(NewEntry("A", "", "", ""), NewEntry("A", "", "", ""))
	if err == nil || !strings.Contains(err.Error(), "duplicate") {
		t.Fatalf("got %v", err)
	}
	if _, err := New(NewEntry(" ", "", "", "")); err == nil {
		t.Fatal("expected error for empty title")
	}
}

func TestChecksum_StableAndSensitive(t *testing.T) {
	a := mustLoad(t, sample).Checksum()
	b := mustLoad(t, sample).Checksum()
	if a != b {
		t.Fatalf("checksum not stable: %s vs %s", a, b)
	}
	if len(a) != 16 {
		t.Fatalf("checksum %q should be 16 hex digits", a)
	}
	c := mustLoad(t, strings.Replace(sample, "Keys to values.", "Keys to values!", 1)).Checksum()
	if a == c {
		t.Fatal("checksum did not change with content")
	}
}

func TestEntry_IDAndSlug(t *testing.T) {
	e := NewEntry("Comparator and Comparable", "", "", "")
	if e.ID() != NewEntry("Comparator and Comparable", "other body", "", "").ID() {
		t.Fatal("ID should depend only on the title")
	}
	if e.ID() == NewEntry("Streams", "", "", "").ID() {
		t.Fatal("different titles should have different IDs")
	}
	if e.Slug() != "comparator-and-comparable" {
		t.Fatalf("slug = %q", e.Slug())
	}
	if got := Slugify("  Finally and Try-With Resources! "); got != "finally-and-try-with-resources" {
		t.Fatalf("Slugify = %q", got)
	}
}

func TestEntry_Summary(t *testing.T) {
	e := NewEntry("A", "\n  first line\nsecond", "", "")
	if e.Summary() != "first line" {
		t.Fatalf("summary = %q", e.Summary())
	}
}

func TestLoadFile_DispatchesByExtension(t *testing.T) {
	dir := t.TempDir()
	md := filepath.Join(dir, "notes.md")
	os.WriteFile(md, []byte(sample), 0644)
	yml := filepath.Join(dir, "notes.yaml")
	os.WriteFile(yml, []byte("entries:\n  - title: Threads\n    body: flows\n"), 0644)

	cat, err := LoadFile(md)
	if err != nil {
		t.Fatal(err)
	}
	if cat.Len() != 3 {
		t.Fatalf("md len = %d", cat.Len())
	}
	cat, err = LoadFile(yml)
	if err != nil {
		t.Fatal(err)
	}
	if cat.Len() != 1 || cat.At(0).Title() != "Threads" {
		t.Fatalf("yaml titles = %v", cat.Titles())
	}
}

func TestLoadFile_ErrorNamesPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.md")
	os.WriteFile(path, []byte("oops\n"), 0644)
	_, err := LoadFile(path)
	if err == nil || !strings.Contains(err.Error(), path) {
		t.Fatalf("got %v", err)
	}
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected wrapped ParseError, got %T", err)
	}
}

func TestDefault_Parses(t *testing.T) {
	cat, err := Default()
	if err != nil {
		t.Fatalf("Default() error: %v", err)
	}
	if cat.Len() < 20 {
		t.Fatalf("Default() has %d entries", cat.Len())
	}
	if cat.At(0).Title() != "Data Types" {
		t.Errorf("first topic = %q", cat.At(0).Title())
	}
	if _, err := cat.Get("Threads"); err != nil {
		t.Errorf("Threads missing: %v", err)
	}
	for _, e := range cat.All() {
		if e.Body() == "" {
			t.Errorf("topic %q has empty body", e.Title())
		}
	}
}
