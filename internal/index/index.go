// Package index provides keyword search over a catalog.
package index

import (
	"iter"
	"strings"
	"unicode"

	"github.com/bits-and-blooms/bloom/v3"

	"github.com/jorge-barreto/notes/internal/catalog"
)

// falsePositiveRate bounds how often the filter sends a miss to the postings map.
const falsePositiveRate = 0.01

// Index maps search terms to catalog entries. Every prefix of every token in
// an entry's title, body and code sample is a term, so "thread" finds an
// entry titled "Threads".
type Index struct {
	cat      *catalog.Catalog
	postings map[string][]int // term -> ascending entry positions
	filter   *bloom.BloomFilter
}

// New builds an index over cat. The catalog must not change afterwards.
func New(cat *catalog.Catalog) *Index {
	idx := &Index{cat: cat, postings: make(map[string][]int)}
	for i := 0; i < cat.Len(); i++ {
		e := cat.At(i)
		code, _ := e.Code()
		for _, tok := range Tokenize(e.Title() + " " + e.Body() + " " + code) {
			idx.addPrefixes(tok, i)
		}
	}

	n := uint(len(idx.postings))
	if n == 0 {
		n = 1
	}
	idx.filter = bloom.NewWithEstimates(n, falsePositiveRate)
	for term := range idx.postings {
		idx.filter.AddString(term)
	}
	return idx
}

func (idx *Index) addPrefixes(tok string, pos int) {
	runes := []rune(tok)
	for n := 1; n <= len(runes); n++ {
		term := string(runes[:n])
		list := idx.postings[term]
		// Positions arrive in ascending order, so a duplicate can only be last.
		if len(list) > 0 && list[len(list)-1] == pos {
			continue
		}
		idx.postings[term] = append(list, pos)
	}
}

// Terms returns the number of distinct indexed terms.
func (idx *Index) Terms() int {
	return len(idx.postings)
}

// Search returns the entries matching every word of keyword, in catalog
// order. The sequence is lazy and may be iterated any number of times. A
// keyword with no words matches nothing.
func (idx *Index) Search(keyword string) iter.Seq[catalog.Entry] {
	words := Tokenize(keyword)
	return func(yield func(catalog.Entry) bool) {
		if len(words) == 0 {
			return
		}
		lists := make([][]int, 0, len(words))
		for _, w := range words {
			if !idx.filter.TestString(w) {
				return
			}
			list, ok := idx.postings[w]
			if !ok {
				return
			}
			lists = append(lists, list)
		}
		for _, pos := range intersect(lists) {
			if !yield(idx.cat.At(pos)) {
				return
			}
		}
	}
}

// Count returns the number of entries matching keyword.
func (idx *Index) Count(keyword string) int {
	n := 0
	for range idx.Search(keyword) {
		n++
	}
	return n
}

// Tokenize splits text into lower-cased runs of letters and digits.
func Tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// intersect merges ascending position lists, keeping positions present in all.
func intersect(lists [][]int) []int {
	if len(lists) == 0 {
		return nil
	}
	out := lists[0]
	for _, list := range lists[1:] {
		var merged []int
		i, j := 0, 0
		for i < len(out) && j < len(list) {
			switch {
			case out[i] == list[j]:
				merged = append(merged, out[i])
				i++
				j++
			case out[i] < list[j]:
				i++
			default:
				j++
			}
		}
		out = merged
	}
	return out
}
