package scales

import (
	"errors"
	"fmt"
	"sort"

	"github.com/akasprzok/ragbadge/internal/palette"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var ErrDuplicateKey = errors.New("key defined in more than one bucket")

// CategoryBucket is a set of alias keys sharing one canonical color.
type CategoryBucket struct {
	Color palette.Color
	Keys  []string
}

// Entry is one flattened key of a Table.
type Entry struct {
	Key   string
	Color palette.Color
}

// Table is the flattened, read-only key to color mapping built from buckets.
type Table struct {
	colors   map[string]palette.Color
	keyCount int
}

// normalize applies full Unicode upper-casing, so "paß" becomes "PASS".
// A Caser is stateful, so each call gets its own.
func normalize(key string) string {
	return cases.Upper(language.Und).String(key)
}

// NewTable flattens buckets into a single mapping. Keys are upper-cased and must
// be unique across all buckets.
func NewTable(buckets ...CategoryBucket) (*Table, error) {
	t := &Table{colors: make(map[string]palette.Color)}
	for i, b := range buckets {
		for _, k := range b.Keys {
			key := normalize(k)
			if prev, ok := t.colors[key]; ok {
				return nil, fmt.Errorf("bucket %d (%s): %w: %q already maps to %s", i, b.Color, ErrDuplicateKey, key, prev)
			}
			t.colors[key] = b.Color
			t.keyCount++
		}
	}
	return t, nil
}

// Lookup upper-cases key and returns its canonical color.
func (t *Table) Lookup(key string) (palette.Color, bool) {
	c, ok := t.colors[normalize(key)]
	return c, ok
}

// Len is the number of distinct keys.
func (t *Table) Len() int {
	return len(t.colors)
}

// KeyCount is the number of keys across all source buckets.
func (t *Table) KeyCount() int {
	return t.keyCount
}

// Entries returns every key sorted alphabetically.
func (t *Table) Entries() []Entry {
	out := make([]Entry, 0, len(t.colors))
	for k, c := range t.colors {
		out = append(out, Entry{Key: k, Color: c})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}
