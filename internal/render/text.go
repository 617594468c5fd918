package render

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/jorge-barreto/notes/internal/catalog"
	"github.com/jorge-barreto/notes/internal/ux"
)

// Text renders an entry for the console.
type Text struct {
	Color bool
}

func (t Text) Render(e catalog.Entry) string {
	var buf strings.Builder
	title := e.Title()
	underline := strings.Repeat("=", utf8.RuneCountInString(title))
	if t.Color {
		fmt.Fprintf(&buf, "%s%s%s\n%s%s%s\n", ux.Bold, title, ux.Reset, ux.Cyan, underline, ux.Reset)
	} else {
		fmt.Fprintf(&buf, "%s\n%s\n", title, underline)
	}
	if body := e.Body(); body != "" {
		buf.WriteString("\n")
		buf.WriteString(body)
		buf.WriteString("\n")
	}
	if code, ok := e.Code(); ok {
		buf.WriteString("\n")
		for _, line := range strings.Split(code, "\n") {
			if line == "" {
				buf.WriteString("\n")
				continue
			}
			if t.Color {
				fmt.Fprintf(&buf, "    %s%s%s\n", ux.Green, line, ux.Reset)
			} else {
				fmt.Fprintf(&buf, "    %s\n", line)
			}
		}
	}
	return buf.String()
}

// Listing renders the topic index: one title and summary per line, followed
// by the catalog checksum.
func Listing(cat *catalog.Catalog, color bool) string {
	var buf strings.Builder
	width := 0
	for _, title := range cat.Titles() {
		if n := utf8.RuneCountInString(title); n > width {
			width = n
		}
	}

	buf.WriteString("\nAvailable topics:\n\n")
	if cat.Len() == 0 {
		buf.WriteString("  (none)\n")
	}
	for _, e := range cat.All() {
		pad := strings.Repeat(" ", width-utf8.RuneCountInString(e.Title()))
		if color {
			fmt.Fprintf(&buf, "  %s%s%s%s  %s%s%s\n", ux.Bold, e.Title(), ux.Reset, pad, ux.Dim, e.Summary(), ux.Reset)
		} else {
			fmt.Fprintf(&buf, "  %s%s  %s\n", e.Title(), pad, e.Summary())
		}
	}
	fmt.Fprintf(&buf, "\n%d topics, checksum %s\n", cat.Len(), cat.Checksum())
	buf.WriteString("Run 'notes <topic>' to read a topic.\n")
	return buf.String()
}
