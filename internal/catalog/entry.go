package catalog

import (
	"strings"
	"unicode"

	"github.com/google/uuid"
)

// entryNamespace scopes entry IDs so the same title always yields the same ID.
var entryNamespace = uuid.MustParse("6f1c3a52-8d0e-4b7a-9e35-2c4d7f9a1b60")

// Entry is a single documented topic. Entries are immutable; the catalog
// hands out copies.
type Entry struct {
	title string
	body  string
	code  string
	lang  string
	line  int
}

// NewEntry builds an entry. An empty code string means the entry has no sample.
func NewEntry(title, body, code, lang string) Entry {
	return Entry{title: title, body: body, code: code, lang: lang}
}

func (e Entry) Title() string { return e.title }
func (e Entry) Body() string  { return e.body }

// Code returns the code sample and whether the entry has one.
func (e Entry) Code() (string, bool) { return e.code, e.code != "" }

// Lang is the fence language tag of the code sample, if any.
func (e Entry) Lang() string { return e.lang }

// Line is the 1-based source line of the entry heading, or 0 if unknown.
func (e Entry) Line() int { return e.line }

// ID returns a name-based UUID derived from the title.
func (e Entry) ID() uuid.UUID {
	return uuid.NewSHA1(entryNamespace, []byte(e.title))
}

// Slug returns the title lower-cased with runs of non-alphanumerics collapsed
// to a single hyphen.
func (e Entry) Slug() string {
	return Slugify(e.title)
}

// Summary returns the first non-blank line of the body.
func (e Entry) Summary() string {
	for _, line := range strings.Split(e.body, "\n") {
		if s := strings.TrimSpace(line); s != "" {
			return s
		}
	}
	return ""
}

// Slugify converts a title into its slug form.
func Slugify(title string) string {
	var b strings.Builder
	pendingDash := false
	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingDash && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingDash = false
			b.WriteRune(r)
			continue
		}
		pendingDash = true
	}
	return b.String()
}
