package catalog

import (
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

type yamlEntry struct {
	Title string `yaml:"title"`
	Body  string `yaml:"body"`
	Code  string `yaml:"code"`
	Lang  string `yaml:"lang"`
}

type yamlSource struct {
	Entries []yamlEntry `yaml:"entries"`
}

// LoadYAML parses a YAML notes source of the form
//
//	entries:
//	  - title: Threads
//	    body: A thread is an independent flow of execution.
//	    code: new Thread(task).start();
//	    lang: java
func LoadYAML(src []byte) (*Catalog, error) {
	if len(bytes.TrimSpace(src)) == 0 {
		return newCatalog(nil), nil
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(src, &doc); err != nil {
		return nil, &ParseError{Msg: err.Error()}
	}
	var ys yamlSource
	if err := doc.Decode(&ys); err != nil {
		return nil, &ParseError{Msg: err.Error()}
	}

	lines := entryLines(&doc)
	entries := make([]Entry, 0, len(ys.Entries))
	seen := make(map[string]bool, len(ys.Entries))
	for i, ye := range ys.Entries {
		line := 0
		if i < len(lines) {
			line = lines[i]
		}
		title := strings.TrimSpace(ye.Title)
		if title == "" {
			return nil, &ParseError{Line: line, Msg: fmt.Sprintf("entry %d: 'title' is required", i+1)}
		}
		if seen[title] {
			return nil, &ParseError{Line: line, Msg: fmt.Sprintf("duplicate title %q", title)}
		}
		seen[title] = true
		entries = append(entries, Entry{
			title: title,
			body:  strings.TrimSpace(ye.Body),
			code:  strings.TrimRight(ye.Code, "\n"),
			lang:  ye.Lang,
			line:  line,
		})
	}
	return newCatalog(entries), nil
}

// entryLines returns the source line of each item under the top-level
// "entries" key.
func entryLines(doc *yaml.Node) []int {
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(root.Content); i += 2 {
		if root.Content[i].Value != "entries" {
			continue
		}
		seq := root.Content[i+1]
		lines := make([]int, len(seq.Content))
		for j, item := range seq.Content {
			lines[j] = item.Line
		}
		return lines
	}
	return nil
}
