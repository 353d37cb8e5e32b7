package scales

import (
	"hash/fnv"

	"github.com/akasprzok/ragbadge/internal/palette"
)

// Fallback assigns a palette color to any string by FNV-1a hash, so the same
// input always gets the same color regardless of call order.
type Fallback struct {
	colors []palette.Color
}

// NewFallback uses colors as the palette, or palette.Category20 when empty.
func NewFallback(colors []palette.Color) Fallback {
	if len(colors) == 0 {
		colors = palette.Category20
	}
	return Fallback{colors: append([]palette.Color(nil), colors...)}
}

// Color hashes key as given. No case folding is applied.
func (f Fallback) Color(key string) palette.Color {
	colors := f.colors
	if len(colors) == 0 {
		colors = palette.Category20
	}
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return colors[h.Sum32()%uint32(len(colors))]
}
