package charts

import (
	"testing"

	"github.com/akasprzok/ragbadge/internal/palette"
	"github.com/akasprzok/ragbadge/internal/scales"
)

func TestCodeStyleUsesResolvedColor(t *testing.T) {
	r := scales.DefaultResolver()
	style := CodeStyle(r, "red")
	if style.GetForeground() != palette.Red.Lipgloss() {
		t.Errorf("CodeStyle(red) foreground = %v, want %v", style.GetForeground(), palette.Red.Lipgloss())
	}
}

func TestAxisAndLabelColorsAreDefined(t *testing.T) {
	if AxisColor == "" {
		t.Error("AxisColor should be defined")
	}
	if LabelColor == "" {
		t.Error("LabelColor should be defined")
	}
}
