package commands

import (
	"fmt"
	"time"

	"github.com/akasprzok/ragbadge/internal/charts"
)

type ValuesCmd struct {
	PrometheusURL string        `help:"URL of the Prometheus endpoint." env:"RAGBADGE_PROMETHEUS_URL" name:"prometheus-url"`
	Label         string        `arg:"" name:"label" help:"Label name." required:"true"`
	Range         time.Duration `name:"range" short:"r" help:"Range to look back." default:"1h"`
	Output        string        `name:"output" short:"o" help:"Output format." default:"text" enum:"text,json,yaml"`
}

func (v *ValuesCmd) Run(ctx *Context) error {
	client, err := ctx.NewClient(v.PrometheusURL)
	if err != nil {
		return err
	}
	end := time.Now()
	values, warnings, err := client.Codes(v.Label, end.Add(-v.Range), end, ctx.Timeout)
	logWarnings(ctx.Log, warnings)
	if err != nil {
		return fmt.Errorf("fetching values of %s: %w", v.Label, err)
	}

	records := make([]colorRecord, 0, len(values))
	for _, value := range values {
		res := ctx.Resolver.Explain(value)
		logResolution(ctx.Log, res)
		if v.Output == outputText {
			fmt.Fprintln(ctx.Out, charts.BadgeLine(res))
			continue
		}
		records = append(records, recordOf(res))
	}
	if v.Output == outputText {
		if len(values) == 0 {
			fmt.Fprintln(ctx.Out, "No Data")
		}
		return nil
	}
	return writeStructured(ctx.Out, v.Output, records)
}
