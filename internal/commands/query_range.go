package commands

import (
	"fmt"
	"time"

	"github.com/akasprzok/ragbadge/internal/charts"
	"github.com/akasprzok/ragbadge/internal/prometheus"
	"github.com/akasprzok/ragbadge/internal/scales"
	v1 "github.com/prometheus/client_golang/api/prometheus/v1"
	"github.com/prometheus/common/model"
)

type QueryRangeCmd struct {
	PrometheusURL string        `help:"URL of the Prometheus endpoint." env:"RAGBADGE_PROMETHEUS_URL" name:"prometheus-url"`
	Query         string        `arg:"" name:"query" help:"Query to run." required:"true"`
	Label         string        `name:"label" short:"l" help:"Label whose value is the code to color by."`
	Range         time.Duration `name:"range" short:"r" help:"Range to query." default:"1h"`
	Step          time.Duration `name:"step" short:"s" help:"Step interval." default:"1m"`
	Width         int           `name:"width" short:"w" help:"Chart width; 0 uses the terminal width." default:"0"`
	Output        string        `name:"output" short:"o" help:"Output format." default:"graph" enum:"graph,json,yaml"`
}

func (q *QueryRangeCmd) Run(ctx *Context) error {
	client, err := ctx.NewClient(q.PrometheusURL)
	if err != nil {
		return err
	}
	end := time.Now()
	window := v1.Range{Start: end.Add(-q.Range), End: end, Step: q.Step}
	streams, warnings, err := client.QueryRangeCodes(q.Query, q.Label, window, ctx.Timeout)
	logWarnings(ctx.Log, warnings)
	if err != nil {
		return fmt.Errorf("querying prometheus: %w", err)
	}

	if q.Output != outputGraph {
		return writeStructured(ctx.Out, q.Output, formatStreams(streams, ctx.Resolver))
	}
	if len(streams) == 0 {
		fmt.Fprintln(ctx.Out, "No Data")
		return nil
	}
	charts.NewNtCharts(ctx.Resolver, q.Width).PrintTimeseries(ctx.Out, streams)
	return nil
}

type pointRecord struct {
	Timestamp int64   `json:"timestamp" yaml:"timestamp"`
	Value     float64 `json:"value" yaml:"value"`
}

type streamRecord struct {
	Metric model.Metric  `json:"metric" yaml:"metric"`
	Code   string        `json:"code" yaml:"code"`
	Color  string        `json:"color" yaml:"color"`
	Values []pointRecord `json:"values" yaml:"values"`
}

func formatStreams(streams []prometheus.Stream, r *scales.Resolver) []streamRecord {
	data := make([]streamRecord, 0, len(streams))
	for _, stream := range streams {
		values := make([]pointRecord, 0, len(stream.Points))
		for _, p := range stream.Points {
			values = append(values, pointRecord{Timestamp: p.Timestamp.Unix(), Value: p.Value})
		}
		data = append(data, streamRecord{
			Metric: stream.Metric,
			Code:   stream.Code,
			Color:  r.Resolve(stream.Code).Hex(),
			Values: values,
		})
	}
	return data
}
