// Package scales maps categorical codes (statuses, ratings, lifecycle phases) to
// display colors. Everything here is built once and read-only afterwards, so a
// Resolver, Table or Scales value may be shared between goroutines freely.
package scales

import (
	"sync"

	"github.com/akasprzok/ragbadge/internal/palette"
)

// Source records which path produced a resolved color.
type Source int

const (
	SourceCanonical Source = iota
	SourceFallback
)

func (s Source) String() string {
	switch s {
	case SourceCanonical:
		return "canonical"
	case SourceFallback:
		return "fallback"
	default:
		return "unknown"
	}
}

// Resolution is the outcome of resolving one input.
type Resolution struct {
	Input  string
	Color  palette.Color
	Source Source
}

// Resolver maps arbitrary strings to colors. It never fails.
type Resolver struct {
	table    *Table
	fallback Fallback
}

// NewResolver resolves through table first and fallback for everything else.
// A nil table sends every input to the fallback.
func NewResolver(table *Table, fallback Fallback) *Resolver {
	return &Resolver{table: table, fallback: fallback}
}

var defaultResolver = sync.OnceValue(func() *Resolver {
	t, err := NewTable(DefaultBuckets()...)
	if err != nil {
		panic(err)
	}
	return NewResolver(t, NewFallback(nil))
})

// DefaultResolver returns the resolver over the built-in buckets.
func DefaultResolver() *Resolver {
	return defaultResolver()
}

// Resolve upper-cases input for the canonical lookup using full Unicode case
// mapping ("paß" matches PASS). Misses go to the fallback scale with the
// original casing, so "foo" and "FOO" may get different colors.
func (r *Resolver) Resolve(input string) palette.Color {
	return r.Explain(input).Color
}

// Explain is Resolve that also reports which path produced the color.
func (r *Resolver) Explain(input string) Resolution {
	if r.table != nil {
		if c, ok := r.table.Lookup(input); ok {
			return Resolution{Input: input, Color: c, Source: SourceCanonical}
		}
	}
	return Resolution{Input: input, Color: r.fallback.Color(input), Source: SourceFallback}
}

// Table exposes the canonical table for legends and export.
func (r *Resolver) Table() *Table {
	return r.table
}
