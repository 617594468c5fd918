// Package render formats catalog entries for display. Every renderer is a
// pure function of its input.
package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jorge-barreto/notes/internal/catalog"
)

// Renderer formats a single entry.
type Renderer interface {
	Render(e catalog.Entry) string
}

// Options controls renderer output.
type Options struct {
	Color bool // ANSI colour, text format only
}

// Format names accepted by ForFormat.
const (
	FormatText     = "text"
	FormatMarkdown = "markdown"
	FormatHTML     = "html"
	FormatJSON     = "json"
)

var formats = map[string]func(Options) Renderer{
	FormatText:     func(o Options) Renderer { return Text{Color: o.Color} },
	FormatMarkdown: func(Options) Renderer { return Markdown{} },
	FormatHTML:     func(Options) Renderer { return HTML{} },
	FormatJSON:     func(Options) Renderer { return JSON{} },
}

// Formats returns the supported format names, sorted.
func Formats() []string {
	names := make([]string, 0, len(formats))
	for name := range formats {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ForFormat returns the renderer for a format name.
func ForFormat(name string, opts Options) (Renderer, error) {
	f, ok := formats[name]
	if !ok {
		return nil, fmt.Errorf("unknown format %q (must be one of %s)", name, strings.Join(Formats(), ", "))
	}
	return f(opts), nil
}

// Catalog renders every entry with r, in catalog order. JSON output is a
// single array; HTML output is a standalone page.
func Catalog(r Renderer, cat *catalog.Catalog) string {
	switch r.(type) {
	case JSON:
		return jsonArray(cat)
	case HTML:
		return Page(cat)
	}
	parts := make([]string, 0, cat.Len())
	for _, e := range cat.All() {
		parts = append(parts, r.Render(e))
	}
	return strings.Join(parts, "\n")
}

// Entries renders a sequence of entries separated like Catalog does.
func Entries(r Renderer, entries []catalog.Entry) string {
	if _, ok := r.(JSON); ok {
		return jsonList(entries)
	}
	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		parts = append(parts, r.Render(e))
	}
	return strings.Join(parts, "\n")
}
