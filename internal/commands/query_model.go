package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/akasprzok/ragbadge/internal/charts"
	"github.com/akasprzok/ragbadge/internal/prometheus"
	"github.com/akasprzok/ragbadge/internal/scales"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	v1 "github.com/prometheus/client_golang/api/prometheus/v1"
)

type queryState int

const (
	stateLoading queryState = iota
	stateSuccess
	stateError
)

type queryResultMsg struct {
	warnings v1.Warnings
	samples  []prometheus.Sample
	err      error
	duration time.Duration
}

// QueryModel runs one instant query behind a spinner and quits once the
// colored bar chart is rendered.
type QueryModel struct {
	promClient   prometheus.Client
	resolver     *scales.Resolver
	query        string
	label        string
	timeout      time.Duration
	state        queryState
	spinner      spinner.Model
	warnings     v1.Warnings
	samples      []prometheus.Sample
	err          error
	duration     time.Duration
	width        int
	chartContent string
}

func NewQueryModel(client prometheus.Client, resolver *scales.Resolver, query, label string, timeout time.Duration, width int) QueryModel {
	return QueryModel{
		promClient: client,
		resolver:   resolver,
		query:      query,
		label:      label,
		timeout:    timeout,
		state:      stateLoading,
		spinner:    NewLoadingSpinner(),
		width:      width,
	}
}

func (m QueryModel) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.executeQuery(),
	)
}

func (m QueryModel) executeQuery() tea.Cmd {
	return func() tea.Msg {
		start := time.Now()
		samples, warnings, err := m.promClient.QueryCodes(m.query, m.label, m.timeout)
		return queryResultMsg{
			warnings: warnings,
			samples:  samples,
			err:      err,
			duration: time.Since(start),
		}
	}
}

func (m QueryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "q" || msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		return m, nil
	case queryResultMsg:
		return m.handleQueryResult(msg)
	case spinner.TickMsg:
		if m.state != stateLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m QueryModel) handleQueryResult(msg queryResultMsg) (tea.Model, tea.Cmd) {
	m.warnings = msg.warnings
	m.samples = msg.samples
	m.err = msg.err
	m.duration = msg.duration

	if m.err != nil {
		m.state = stateError
		return m, tea.Quit
	}

	width := m.width
	if width <= 0 {
		width = charts.DefaultTerminalWidth
	}
	m.chartContent = charts.Barchart(charts.SampleBars(m.samples), m.resolver, width)
	m.state = stateSuccess
	return m, tea.Quit
}

func (m QueryModel) View() string {
	var s strings.Builder

	switch m.state {
	case stateLoading:
		s.WriteString(fmt.Sprintf("\n%s Executing query: %s\n\n", m.spinner.View(), m.query))

	case stateError:
		s.WriteString("\n")
		s.WriteString(ErrorStyle.Render("Error: ") + m.err.Error() + "\n")

	case stateSuccess:
		if len(m.warnings) > 0 {
			s.WriteString("\n")
			s.WriteString(WarningStyle.Render("Warnings:\n"))
			for _, w := range m.warnings {
				s.WriteString(WarningStyle.Render(fmt.Sprintf("  • %s\n", w)))
			}
			s.WriteString("\n")
		}
		if len(m.samples) == 0 {
			s.WriteString("No Data\n")
		} else {
			s.WriteString(m.chartContent)
			s.WriteString("\n")
		}
		s.WriteString(fmt.Sprintf("%d series in %s\n", len(m.samples), formatDuration(m.duration)))
	}

	return s.String()
}

// Err returns the query error, if any.
func (m QueryModel) Err() error {
	return m.err
}

func formatDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	}
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return fmt.Sprintf("%.1fs", d.Seconds())
}
