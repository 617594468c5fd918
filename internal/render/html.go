package render

import (
	"html/template"
	"strings"

	"github.com/jorge-barreto/notes/internal/catalog"
)

// HTML renders an entry as an escaped <article> fragment.
type HTML struct{}

type htmlEntry struct {
	ID    string
	Slug  string
	Title string
	Body  []string
	Code  string
	Lang  string
}

type htmlPage struct {
	Checksum string
	Entries  []htmlEntry
}

const articleTmpl = `{{define "article"}}<article id="{{.Slug}}" data-id="{{.ID}}">
<h2><a href="#{{.Slug}}">{{.Title}}</a></h2>
{{range .Body}}<p>{{.}}</p>
{{end}}{{if .Code}}<pre><code{{if .Lang}} class="language-{{.Lang}}"{{end}}>{{.Code}}</code></pre>
{{end}}</article>
{{end}}`

const pageTmpl = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="notes-checksum" content="{{.Checksum}}">
<title>Notes</title>
<style>
body { font-family: sans-serif; max-width: 48rem; margin: 2rem auto; padding: 0 1rem; }
pre { background: #f4f4f4; padding: 0.75rem; overflow-x: auto; }
nav li { margin: 0.15rem 0; }
</style>
</head>
<body>
<h1>Notes</h1>
<nav><ol>
{{range .Entries}}<li><a href="#{{.Slug}}">{{.Title}}</a></li>
{{end}}</ol></nav>
{{range .Entries}}{{template "article" .}}{{end}}</body>
</html>
`

var (
	articleT = template.Must(template.New("entry").Parse(articleTmpl))
	pageT    = template.Must(template.Must(template.New("page").Parse(articleTmpl)).Parse(pageTmpl))
)

func (HTML) Render(e catalog.Entry) string {
	var buf strings.Builder
	execute(articleT, &buf, "article", toHTMLEntry(e))
	return buf.String()
}

// Page renders the whole catalog as a standalone HTML document with a table
// of contents.
func Page(cat *catalog.Catalog) string {
	page := htmlPage{Checksum: cat.Checksum()}
	for _, e := range cat.All() {
		page.Entries = append(page.Entries, toHTMLEntry(e))
	}
	var buf strings.Builder
	execute(pageT, &buf, "page", page)
	return buf.String()
}

func toHTMLEntry(e catalog.Entry) htmlEntry {
	code, _ := e.Code()
	return htmlEntry{
		ID:    e.ID().String(),
		Slug:  e.Slug(),
		Title: e.Title(),
		Body:  paragraphs(e.Body()),
		Code:  code,
		Lang:  e.Lang(),
	}
}

// paragraphs splits text on blank lines.
func paragraphs(text string) []string {
	var out []string
	for _, p := range strings.Split(text, "\n\n") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// execute runs a parsed template into a strings.Builder. The templates are
// fixed and the data is plain strings, so a failure is a programming error.
func execute(t *template.Template, buf *strings.Builder, name string, data any) {
	if err := t.ExecuteTemplate(buf, name, data); err != nil {
		panic("render: " + err.Error())
	}
}
