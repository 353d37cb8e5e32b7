package tables

import (
	"strings"

	"github.com/akasprzok/ragbadge/internal/palette"
	"github.com/akasprzok/ragbadge/internal/scales"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	teatable "github.com/evertras/bubble-table/table"
)

const (
	columnKey    = "key"
	columnSwatch = "swatch"
	columnHex    = "hex"
	columnScale  = "scale"

	// canonicalScale labels rows from the flattened status table.
	canonicalScale = "status"

	pageSize = 15
)

// LegendRow is one code and the color it renders in.
type LegendRow struct {
	Key   string
	Color palette.Color
	Scale string
}

type Model struct {
	table           teatable.Model
	filterTextInput textinput.Model
	rows            int
}

// LegendRows lists every canonical key followed by every named scale code.
func LegendRows(r *scales.Resolver, s *scales.Scales) []LegendRow {
	var rows []LegendRow
	if t := r.Table(); t != nil {
		for _, e := range t.Entries() {
			rows = append(rows, LegendRow{Key: e.Key, Color: e.Color, Scale: canonicalScale})
		}
	}
	for _, d := range s.Domains() {
		ns, _ := s.Scale(d)
		for _, code := range ns.Domain() {
			rows = append(rows, LegendRow{Key: code, Color: ns.At(code), Scale: string(d)})
		}
	}
	return rows
}

func NewLegend(legend []LegendRow) Model {
	longestKey := len(columnKey)
	longestScale := len(columnScale)
	rows := make([]teatable.Row, 0, len(legend))
	for _, l := range legend {
		longestKey = max(longestKey, len(l.Key))
		longestScale = max(longestScale, len(l.Scale))
		rows = append(rows, teatable.NewRow(teatable.RowData{
			columnKey:    l.Key,
			columnSwatch: teatable.NewStyledCell("    ", l.Color.Badge()),
			columnHex:    l.Color.Hex(),
			columnScale:  l.Scale,
		}))
	}

	columns := []teatable.Column{
		teatable.NewColumn(columnKey, "Code", longestKey+1).WithFiltered(true),
		teatable.NewColumn(columnSwatch, "Color", 8),
		teatable.NewColumn(columnHex, "Hex", 9).WithFiltered(true),
		teatable.NewColumn(columnScale, "Scale", longestScale+1).WithFiltered(true),
	}

	return Model{
		table: teatable.
			New(columns).
			Filtered(true).
			Focused(true).
			WithFooterVisibility(true).
			WithPageSize(pageSize).
			WithRows(rows),
		filterTextInput: textinput.New(),
		rows:            len(rows),
	}
}

// Len is the number of rows before filtering.
func (m Model) Len() int {
	return m.rows
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		cmd  tea.Cmd
		cmds []tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		// global
		if msg.String() == "ctrl+c" {
			cmds = append(cmds, tea.Quit)

			return m, tea.Batch(cmds...)
		}
		// event to filter
		if m.filterTextInput.Focused() {
			if msg.String() == "enter" || msg.String() == "esc" {
				m.filterTextInput.Blur()
			} else {
				m.filterTextInput, _ = m.filterTextInput.Update(msg)
			}
			m.table = m.table.WithFilterInput(m.filterTextInput)

			return m, tea.Batch(cmds...)
		}

		// others component
		switch msg.String() {
		case "/":
			m.filterTextInput.Focus()
		case "q":
			cmds = append(cmds, tea.Quit)
			return m, tea.Batch(cmds...)
		default:
			m.table, cmd = m.table.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	body := strings.Builder{}

	body.WriteString(m.table.View())
	body.WriteString("\nPress / + letters to filter codes, and q or ctrl+c to quit")

	return body.String()
}
