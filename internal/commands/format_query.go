package commands

import (
	"fmt"

	"github.com/akasprzok/ragbadge/internal/prometheus"
)

type FormatQueryCmd struct {
	Query string `arg:"" name:"query" help:"Query to format." required:"true"`
}

func (f *FormatQueryCmd) Run(ctx *Context) error {
	fmt.Fprintln(ctx.Out, prometheus.FormatQuery(f.Query))
	return nil
}
