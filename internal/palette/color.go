package palette

import (
	"fmt"
	"math"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// darkenFactor is the per-step channel multiplier used by Darker and Brighter.
const darkenFactor = 0.7

// Color is an opaque RGB display color.
type Color struct {
	R, G, B uint8
}

// ParseHex parses "#rgb" or "#rrggbb".
func ParseHex(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("parsing color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return Color{R: r, G: g, B: b}, nil
}

// MustHex is ParseHex for static tables. It panics on malformed input.
func MustHex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Darker scales every channel by 0.7^k, truncating toward zero and clamping to
// [0, 255]. A negative k brightens. NaN leaves c unchanged.
func (c Color) Darker(k float64) Color {
	if math.IsNaN(k) {
		return c
	}
	f := math.Pow(darkenFactor, k)
	return Color{
		R: channel(f * float64(c.R)),
		G: channel(f * float64(c.G)),
		B: channel(f * float64(c.B)),
	}
}

// Brighter is the inverse of Darker. Channels below 30 are lifted to 30 first so
// that black can brighten; results clamp at 255.
func (c Color) Brighter(k float64) Color {
	const floor = 30
	if math.IsNaN(k) {
		return c
	}
	f := math.Pow(darkenFactor, k)
	if c.R == 0 && c.G == 0 && c.B == 0 {
		return Color{R: floor, G: floor, B: floor}
	}
	lift := func(v uint8) uint8 {
		if v != 0 && v < floor {
			v = floor
		}
		return channel(float64(v) / f)
	}
	return Color{R: lift(c.R), G: lift(c.G), B: lift(c.B)}
}

// channel truncates v into a color channel. Out of range values saturate.
func channel(v float64) uint8 {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}

// Hex returns the lower-case "#rrggbb" form.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (c Color) String() string {
	return c.Hex()
}

// Colorful converts to a go-colorful value for color math.
func (c Color) Colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

// Lipgloss converts to a terminal color.
func (c Color) Lipgloss() lipgloss.Color {
	return lipgloss.Color(c.Hex())
}

// Luminance is the WCAG relative luminance in [0, 1].
func (c Color) Luminance() float64 {
	r, g, b := c.Colorful().LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// Contrast returns black or white, whichever reads better on top of c.
func (c Color) Contrast() Color {
	if c.Luminance() > 0.179 {
		return Black
	}
	return White
}

// Foreground is a lipgloss style that renders text in c.
func (c Color) Foreground() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(c.Lipgloss())
}

// Badge is a lipgloss style with c as the background and contrasting text.
func (c Color) Badge() lipgloss.Style {
	return lipgloss.NewStyle().
		Background(c.Lipgloss()).
		Foreground(c.Contrast().Lipgloss()).
		Padding(0, 1)
}
