package commands

import (
	"fmt"

	"github.com/akasprzok/ragbadge/internal/charts"
	"github.com/akasprzok/ragbadge/internal/prometheus"
	"github.com/akasprzok/ragbadge/internal/scales"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/prometheus/common/model"
)

type QueryCmd struct {
	PrometheusURL string `help:"URL of the Prometheus endpoint." env:"RAGBADGE_PROMETHEUS_URL" name:"prometheus-url"`
	Query         string `arg:"" name:"query" help:"Query to run." required:"true"`
	Label         string `name:"label" short:"l" help:"Label whose value is the code to color by."`
	Output        string `name:"output" short:"o" help:"Output format." default:"graph" enum:"graph,json,yaml"`
}

func (q *QueryCmd) Run(ctx *Context) error {
	if err := prometheus.ValidateQuery(q.Query); err != nil {
		return err
	}
	client, err := ctx.NewClient(q.PrometheusURL)
	if err != nil {
		return err
	}

	if q.Output == outputGraph {
		m := NewQueryModel(client, ctx.Resolver, q.Query, q.Label, ctx.Timeout, charts.TerminalWidth())
		p := tea.NewProgram(m, tea.WithInput(ctx.In), tea.WithOutput(ctx.Out))
		finalModel, err := p.Run()
		if err != nil {
			return err
		}
		if qm, ok := finalModel.(QueryModel); ok {
			logWarnings(ctx.Log, qm.warnings)
			return qm.Err()
		}
		return nil
	}

	samples, warnings, err := client.QueryCodes(q.Query, q.Label, ctx.Timeout)
	logWarnings(ctx.Log, warnings)
	if err != nil {
		return fmt.Errorf("querying prometheus: %w", err)
	}
	return writeStructured(ctx.Out, q.Output, formatSamples(samples, ctx.Resolver))
}

type sampleRecord struct {
	Metric    model.Metric `json:"metric" yaml:"metric"`
	Value     float64      `json:"value" yaml:"value"`
	Timestamp int64        `json:"timestamp" yaml:"timestamp"`
	Code      string       `json:"code" yaml:"code"`
	Color     string       `json:"color" yaml:"color"`
}

func formatSamples(samples []prometheus.Sample, r *scales.Resolver) []sampleRecord {
	data := make([]sampleRecord, 0, len(samples))
	for _, s := range samples {
		data = append(data, sampleRecord{
			Metric:    s.Metric,
			Value:     s.Value,
			Timestamp: s.Timestamp.Unix(),
			Code:      s.Code,
			Color:     r.Resolve(s.Code).Hex(),
		})
	}
	return data
}
