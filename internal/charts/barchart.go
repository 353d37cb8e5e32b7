package charts

import (
	"fmt"
	"sort"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/akasprzok/ragbadge/internal/prometheus"
	"github.com/akasprzok/ragbadge/internal/scales"
)

// Bar is one bar of a categorical bar chart. Code picks its color.
type Bar struct {
	Label string
	Code  string
	Value float64
}

// CountBars tallies codes into one bar per distinct code, largest first.
func CountBars(codes []string) []Bar {
	counts := make(map[string]int)
	for _, c := range codes {
		counts[c]++
	}
	bars := make([]Bar, 0, len(counts))
	for code, n := range counts {
		bars = append(bars, Bar{Label: code, Code: code, Value: float64(n)})
	}
	sort.Slice(bars, func(i, j int) bool {
		if bars[i].Value != bars[j].Value {
			return bars[i].Value > bars[j].Value
		}
		return bars[i].Code < bars[j].Code
	})
	return bars
}

// SampleBars draws one bar per sample, labelled by series.
func SampleBars(samples []prometheus.Sample) []Bar {
	bars := make([]Bar, 0, len(samples))
	for _, s := range samples {
		bars = append(bars, Bar{Label: s.Metric.String(), Code: s.Code, Value: s.Value})
	}
	return bars
}

// Barchart draws horizontal bars, each in the resolved color of its code.
func Barchart(bars []Bar, r *scales.Resolver, width int) string {
	barData := make([]barchart.BarData, 0, len(bars))
	for _, b := range bars {
		barData = append(barData, barchart.BarData{
			Label: fmt.Sprintf("%s (%s)", b.Label, formatValue(b.Value)),
			Values: []barchart.BarValue{
				{Name: b.Code, Value: b.Value, Style: CodeStyle(r, b.Code)},
			},
		})
	}

	bc := barchart.New(width, len(barData)*BarRows, barchart.WithDataSet(barData), barchart.WithHorizontalBars())
	bc.Draw()

	return bc.View()
}

func formatValue(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.3g", v)
}
