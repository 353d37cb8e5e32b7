package scales

import (
	"errors"
	"fmt"

	"github.com/akasprzok/ragbadge/internal/palette"
)

var (
	ErrDomainRangeMismatch = errors.New("domain and range lengths differ")
	ErrDuplicateCode       = errors.New("duplicate code in scale domain")
)

// NamedScale maps the exact codes of one semantic axis to colors by position.
type NamedScale struct {
	name  string
	codes []string
	index map[string]palette.Color
}

// NewNamedScale pairs domain[i] with rng[i]. Lengths must match and codes must be unique.
func NewNamedScale(name string, domain []string, rng []palette.Color) (*NamedScale, error) {
	if len(domain) != len(rng) {
		return nil, fmt.Errorf("scale %s: %w (%d codes, %d colors)", name, ErrDomainRangeMismatch, len(domain), len(rng))
	}
	index := make(map[string]palette.Color, len(domain))
	for i, code := range domain {
		if _, ok := index[code]; ok {
			return nil, fmt.Errorf("scale %s: %w: %q", name, ErrDuplicateCode, code)
		}
		index[code] = rng[i]
	}
	return &NamedScale{
		name:  name,
		codes: append([]string(nil), domain...),
		index: index,
	}, nil
}

func mustNamedScale(name string, domain []string, rng ...palette.Color) *NamedScale {
	s, err := NewNamedScale(name, domain, rng)
	if err != nil {
		panic(err)
	}
	return s
}

// Name is the name the scale was built with.
func (s *NamedScale) Name() string {
	return s.name
}

// Lookup matches code exactly. ok is false for codes outside the domain.
func (s *NamedScale) Lookup(code string) (c palette.Color, ok bool) {
	c, ok = s.index[code]
	return c, ok
}

// At is Lookup with palette.Unknown standing in for codes outside the domain.
func (s *NamedScale) At(code string) palette.Color {
	if c, ok := s.Lookup(code); ok {
		return c
	}
	return palette.Unknown
}

// Domain returns the codes in declaration order.
func (s *NamedScale) Domain() []string {
	return append([]string(nil), s.codes...)
}

// Func returns the scale as a plain lookup function.
func (s *NamedScale) Func() func(code string) palette.Color {
	return s.At
}
