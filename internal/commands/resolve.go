package commands

import (
	"fmt"

	"github.com/akasprzok/ragbadge/internal/charts"
	"github.com/akasprzok/ragbadge/internal/scales"
)

type ResolveCmd struct {
	Codes  []string `arg:"" name:"code" help:"Codes to resolve."`
	Output string   `name:"output" short:"o" help:"Output format." default:"text" enum:"text,json,yaml"`
}

func (r *ResolveCmd) Run(ctx *Context) error {
	results := make([]scales.Resolution, 0, len(r.Codes))
	for _, code := range r.Codes {
		res := ctx.Resolver.Explain(code)
		logResolution(ctx.Log, res)
		results = append(results, res)
	}

	if r.Output == outputText {
		for _, res := range results {
			fmt.Fprintln(ctx.Out, charts.BadgeLine(res))
		}
		return nil
	}

	records := make([]colorRecord, 0, len(results))
	for _, res := range results {
		records = append(records, recordOf(res))
	}
	return writeStructured(ctx.Out, r.Output, records)
}
