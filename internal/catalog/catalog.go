package catalog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// ErrNotFound is returned when a requested title is not in the catalog.
var ErrNotFound = errors.New("not found")

// ParseError reports malformed notes source.
type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
	}
	return e.Msg
}

// Catalog is the ordered collection of entries, in authored order.
type Catalog struct {
	entries []Entry
	byTitle map[string]int
}

func newCatalog(entries []Entry) *Catalog {
	c := &Catalog{entries: entries, byTitle: make(map[string]int, len(entries))}
	for i, e := range entries {
		c.byTitle[e.title] = i
	}
	return c
}

// New builds a catalog from already constructed entries. Titles must be
// non-empty and unique.
func New(entries ...Entry) (*Catalog, error) {
	seen := make(map[string]bool, len(entries))
	for i, e := range entries {
		if strings.TrimSpace(e.title) == "" {
			return nil, &ParseError{Msg: fmt.Sprintf("entry %d: empty title", i+1)}
		}
		if seen[e.title] {
			return nil, &ParseError{Msg: fmt.Sprintf("duplicate title %q", e.title)}
		}
		seen[e.title] = true
	}
	return newCatalog(append([]Entry(nil), entries...)), nil
}

// LoadFile reads a notes source from disk. Files ending in .yaml or .yml
// are decoded as YAML; everything else uses the notes text format.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cat *Catalog
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		cat, err = LoadYAML(data)
	default:
		cat, err = Load(data)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cat, nil
}

// All returns every entry in authored order.
func (c *Catalog) All() []Entry {
	return append([]Entry(nil), c.entries...)
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// At returns the entry at position i in authored order.
func (c *Catalog) At(i int) Entry {
	return c.entries[i]
}

// Titles returns the entry titles in authored order.
func (c *Catalog) Titles() []string {
	titles := make([]string, len(c.entries))
	for i, e := range c.entries {
		titles[i] = e.title
	}
	return titles
}

// Get looks up an entry by exact title.
func (c *Catalog) Get(title string) (Entry, error) {
	if i, ok := c.byTitle[title]; ok {
		return c.entries[i], nil
	}
	return Entry{}, fmt.Errorf("topic %q %w; run 'notes list' to see available topics", title, ErrNotFound)
}

// Find resolves a user-supplied selector: an exact title, then a
// case-insensitive title, then a slug.
func (c *Catalog) Find(selector string) (Entry, error) {
	if e, err := c.Get(selector); err == nil {
		return e, nil
	}
	for _, e := range c.entries {
		if strings.EqualFold(e.title, selector) {
			return e, nil
		}
	}
	slug := Slugify(selector)
	if slug != "" {
		for _, e := range c.entries {
			if e.Slug() == slug {
				return e, nil
			}
		}
	}
	return c.Get(selector)
}

// Checksum returns a hex xxhash64 over the catalog contents in order.
func (c *Catalog) Checksum() string {
	d := xxhash.New()
	for _, e := range c.entries {
		for _, s := range []string{e.title, e.body, e.code, e.lang} {
			d.WriteString(s)
			d.Write([]byte{0})
		}
	}
	return fmt.Sprintf("%016x", d.Sum64())
}
