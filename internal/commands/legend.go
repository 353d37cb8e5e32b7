package commands

import (
	"github.com/akasprzok/ragbadge/internal/tables"
	tea "github.com/charmbracelet/bubbletea"
)

type LegendCmd struct{}

func (l *LegendCmd) Run(ctx *Context) error {
	legend := tables.NewLegend(tables.LegendRows(ctx.Resolver, ctx.Scales))
	ctx.Log.WithField("rows", legend.Len()).Debug("starting legend")

	p := tea.NewProgram(legend, tea.WithInput(ctx.In), tea.WithOutput(ctx.Out))
	_, err := p.Run()
	return err
}
