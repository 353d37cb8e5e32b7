package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/akasprzok/ragbadge/internal/palette"
	"github.com/akasprzok/ragbadge/internal/scales"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"
	v1 "github.com/prometheus/client_golang/api/prometheus/v1"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

// Shared styles used across command models.
var (
	SpinnerStyle = lipgloss.NewStyle().Foreground(palette.Blue.Lipgloss())
	ErrorStyle   = lipgloss.NewStyle().Foreground(palette.Red.Lipgloss()).Bold(true)
	WarningStyle = lipgloss.NewStyle().Foreground(palette.Amber.Lipgloss())
)

// NewLoadingSpinner creates a spinner with consistent styling for loading states.
func NewLoadingSpinner() spinner.Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = SpinnerStyle
	return s
}

// colorRecord is the structured form of one resolved code.
type colorRecord struct {
	Code   string `json:"code" yaml:"code"`
	Color  string `json:"color" yaml:"color"`
	Source string `json:"source,omitempty" yaml:"source,omitempty"`
}

func recordOf(res scales.Resolution) colorRecord {
	return colorRecord{Code: res.Input, Color: res.Color.Hex(), Source: res.Source.String()}
}

// writeStructured marshals v as JSON or YAML.
func writeStructured(w io.Writer, format string, v any) error {
	switch format {
	case outputJSON:
		b, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("marshalling to JSON: %w", err)
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	case outputYAML:
		b, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("marshalling to YAML: %w", err)
		}
		_, err = w.Write(b)
		return err
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}

// logResolution records fallback hits so unmapped codes can be found later.
func logResolution(log *logrus.Logger, res scales.Resolution) {
	if res.Source != scales.SourceFallback {
		return
	}
	log.WithFields(logrus.Fields{
		"code":  res.Input,
		"color": res.Color.Hex(),
	}).Debug("no canonical color, using fallback")
}

func logWarnings(log *logrus.Logger, warnings v1.Warnings) {
	for _, w := range warnings {
		log.Warn(w)
	}
}
