package tables

import (
	"strings"
	"testing"

	"github.com/akasprzok/ragbadge/internal/palette"
	"github.com/akasprzok/ragbadge/internal/scales"
	tea "github.com/charmbracelet/bubbletea"
)

func TestLegendRows(t *testing.T) {
	r := scales.DefaultResolver()
	s := scales.DefaultScales()
	rows := LegendRows(r, s)

	want := r.Table().Len()
	for _, d := range s.Domains() {
		ns, _ := s.Scale(d)
		want += len(ns.Domain())
	}
	if len(rows) != want {
		t.Fatalf("LegendRows() returned %d rows, want %d", len(rows), want)
	}

	found := false
	for _, row := range rows {
		if row.Scale == string(scales.DomainLifecyclePhase) && row.Key == "RETIRED" {
			found = true
			if row.Color != palette.Grey {
				t.Errorf("RETIRED row color = %s, want grey", row.Color)
			}
		}
	}
	if !found {
		t.Error("lifecycle-phase RETIRED row missing")
	}
}

func TestNewLegend(t *testing.T) {
	t.Run("empty legend", func(t *testing.T) {
		m := NewLegend(nil)
		if m.Len() != 0 {
			t.Errorf("Len() = %d, want 0", m.Len())
		}
		if len(m.View()) == 0 {
			t.Error("View() returned empty string")
		}
	})

	t.Run("rows are shown", func(t *testing.T) {
		m := NewLegend([]LegendRow{
			{Key: "YES", Color: palette.Green, Scale: "status"},
			{Key: "NO", Color: palette.Red, Scale: "status"},
		})
		if m.Len() != 2 {
			t.Errorf("Len() = %d, want 2", m.Len())
		}
		view := m.View()
		for _, want := range []string{"YES", "NO", palette.Green.Hex()} {
			if !strings.Contains(view, want) {
				t.Errorf("View() missing %q", want)
			}
		}
	})
}

func TestModelInit(t *testing.T) {
	m := NewLegend(nil)
	if cmd := m.Init(); cmd != nil {
		t.Error("Init() should return nil")
	}
}

func TestQuitKeys(t *testing.T) {
	m := NewLegend([]LegendRow{{Key: "YES", Color: palette.Green, Scale: "status"}})

	for _, key := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune{'q'}},
		{Type: tea.KeyCtrlC},
	} {
		_, cmd := m.Update(key)
		if cmd == nil {
			t.Fatalf("Update(%s) returned nil cmd", key)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("Update(%s) did not quit", key)
		}
	}
}

func TestFilterFocus(t *testing.T) {
	m := NewLegend([]LegendRow{{Key: "YES", Color: palette.Green, Scale: "status"}})
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}})
	lm := updated.(Model)
	if !lm.filterTextInput.Focused() {
		t.Error("'/' should focus the filter input")
	}

	// q while filtering is text, not quit
	updated, _ = lm.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	lm = updated.(Model)
	if lm.filterTextInput.Value() != "q" {
		t.Errorf("filter value = %q, want q", lm.filterTextInput.Value())
	}
}
