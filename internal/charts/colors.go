package charts

import (
	"github.com/akasprzok/ragbadge/internal/palette"
	"github.com/akasprzok/ragbadge/internal/scales"
	"github.com/charmbracelet/lipgloss"
)

// AxisColor is the color used for chart axes.
var AxisColor = palette.Amber.Lipgloss()

// LabelColor is the color used for chart labels.
var LabelColor = palette.Grey.Lipgloss()

// CodeStyle returns a lipgloss style with the resolved color of code as foreground.
func CodeStyle(r *scales.Resolver, code string) lipgloss.Style {
	return r.Resolve(code).Foreground()
}
