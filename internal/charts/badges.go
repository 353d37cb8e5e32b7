package charts

import (
	"fmt"
	"strings"

	"github.com/akasprzok/ragbadge/internal/palette"
	"github.com/akasprzok/ragbadge/internal/scales"
)

// Badge renders text on a background of c with contrasting text.
func Badge(text string, c palette.Color) string {
	return c.Badge().Render(text)
}

// BadgeLine renders a resolved input as "<badge> #hex source".
func BadgeLine(res scales.Resolution) string {
	text := res.Input
	if text == "" {
		text = `""`
	}
	return fmt.Sprintf("%s %s %s", Badge(text, res.Color), res.Color.Hex(), res.Source)
}

// BadgeRow renders every code of a named scale side by side.
func BadgeRow(s *scales.NamedScale) string {
	domain := s.Domain()
	parts := make([]string, 0, len(domain))
	for _, code := range domain {
		parts = append(parts, Badge(code, s.At(code)))
	}
	return strings.Join(parts, " ")
}
