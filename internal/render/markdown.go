package render

import (
	"strings"

	"github.com/jorge-barreto/notes/internal/catalog"
)

// Markdown renders an entry as a level-two section with a fenced sample.
type Markdown struct{}

func (Markdown) Render(e catalog.Entry) string {
	var buf strings.Builder
	buf.WriteString("## ")
	buf.WriteString(e.Title())
	buf.WriteString("\n")
	if body := e.Body(); body != "" {
		buf.WriteString("\n")
		buf.WriteString(body)
		buf.WriteString("\n")
	}
	if code, ok := e.Code(); ok {
		fence := "```"
		// Lengthen the fence if the sample itself contains one.
		for strings.Contains(code, fence) {
			fence += "`"
		}
		buf.WriteString("\n")
		buf.WriteString(fence)
		buf.WriteString(e.Lang())
		buf.WriteString("\n")
		buf.WriteString(code)
		buf.WriteString("\n")
		buf.WriteString(fence)
		buf.WriteString("\n")
	}
	return buf.String()
}
