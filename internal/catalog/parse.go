package catalog

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	headingRe   = regexp.MustCompile(`^#(?:[ \t]+(.*))?$`)
	fenceOpenRe = regexp.MustCompile("^```([\\w+#.-]*)\\s*$")
)

const commentPrefix = "%%"

// Load parses notes source text into a catalog. Each entry starts with a
// "# Title" line; the lines up to the next heading are its body, and at most
// one fenced block per entry becomes its code sample:
//
//	# Threads
//	A thread is an independent flow of execution.
//	```java
//	new Thread(task).start();
//	```
//
// Lines starting with %% are comments outside of fences. Empty source yields
// an empty catalog.
func Load(src []byte) (*Catalog, error) {
	p := &parser{seen: make(map[string]bool)}
	lines := strings.Split(strings.ReplaceAll(string(src), "\r\n", "\n"), "\n")
	for i, line := range lines {
		if err := p.line(i+1, line); err != nil {
			return nil, err
		}
	}
	if err := p.finish(); err != nil {
		return nil, err
	}
	return newCatalog(p.entries), nil
}

type parser struct {
	entries []Entry
	seen    map[string]bool

	current   *Entry
	body      []string
	inFence   bool
	fenceLine int
	hasCode   bool
	code      []string
}

func (p *parser) line(n int, line string) error {
	if p.inFence {
		// Inside a fence; look for the closing one.
		if strings.TrimSpace(line) == "```" {
			p.current.code = strings.Join(p.code, "\n")
			if strings.TrimSpace(p.current.code) == "" {
				// An empty fence is not a sample; a later one may follow.
				p.current.code = ""
				p.current.lang = ""
				p.hasCode = false
			}
			p.inFence = false
			p.code = nil
			return nil
		}
		p.code = append(p.code, line)
		return nil
	}

	if strings.HasPrefix(line, commentPrefix) {
		return nil
	}

	if m := headingRe.FindStringSubmatch(line); m != nil {
		return p.heading(n, strings.TrimSpace(m[1]))
	}

	if m := fenceOpenRe.FindStringSubmatch(strings.TrimSpace(line)); m != nil {
		if p.current == nil {
			return &ParseError{Line: n, Msg: "code block before the first heading"}
		}
		if p.hasCode {
			return &ParseError{Line: n, Msg: fmt.Sprintf("entry %q has more than one code sample", p.current.title)}
		}
		p.inFence = true
		p.fenceLine = n
		p.hasCode = true
		p.current.lang = m[1]
		return nil
	}

	if p.current == nil {
		if strings.TrimSpace(line) != "" {
			return &ParseError{Line: n, Msg: "text before the first heading"}
		}
		return nil
	}
	p.body = append(p.body, line)
	return nil
}

func (p *parser) heading(n int, title string) error {
	if title == "" {
		return &ParseError{Line: n, Msg: "heading has an empty title"}
	}
	if p.seen[title] {
		return &ParseError{Line: n, Msg: fmt.Sprintf("duplicate title %q", title)}
	}
	p.seen[title] = true
	p.flush()
	p.current = &Entry{title: title, line: n}
	return nil
}

func (p *parser) flush() {
	if p.current == nil {
		return
	}
	p.current.body = trimBlankLines(p.body)
	p.entries = append(p.entries, *p.current)
	p.current = nil
	p.body = nil
	p.hasCode = false
}

func (p *parser) finish() error {
	if p.inFence {
		return &ParseError{Line: p.fenceLine, Msg: "unclosed code block"}
	}
	p.flush()
	return nil
}

// trimBlankLines joins lines after dropping leading and trailing blank ones.
// Trailing whitespace on each line is removed.
func trimBlankLines(lines []string) string {
	start, end := 0, len(lines)
	for start < end && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	for end > start && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	out := make([]string, 0, end-start)
	for _, l := range lines[start:end] {
		out = append(out, strings.TrimRight(l, " \t"))
	}
	return strings.Join(out, "\n")
}
