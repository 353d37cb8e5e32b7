package charts

import (
	"fmt"
	"math"
	"strings"

	"github.com/NimbleMarkets/ntcharts/canvas/runes"
	"github.com/NimbleMarkets/ntcharts/linechart/timeserieslinechart"
	"github.com/akasprzok/ragbadge/internal/palette"
	"github.com/akasprzok/ragbadge/internal/prometheus"
	"github.com/akasprzok/ragbadge/internal/scales"
	"github.com/charmbracelet/lipgloss"
)

var axisStyle = lipgloss.NewStyle().Foreground(AxisColor)

var labelStyle = lipgloss.NewStyle().Foreground(LabelColor)

// LegendEntry describes one plotted stream.
type LegendEntry struct {
	Metric string
	Code   string
	Color  palette.Color
}

// TimeseriesSplit returns the chart and legend separately. Each stream is drawn
// in the resolved color of its code.
func TimeseriesSplit(streams []prometheus.Stream, r *scales.Resolver, width int) (chart string, legend []LegendEntry) {
	minYValue := math.MaxFloat64
	maxYValue := -math.MaxFloat64
	for _, stream := range streams {
		for _, p := range stream.Points {
			minYValue = math.Min(minYValue, p.Value)
			maxYValue = math.Max(maxYValue, p.Value)
		}
	}
	if minYValue > maxYValue {
		minYValue, maxYValue = 0, 1
	}
	if minYValue == maxYValue {
		maxYValue = minYValue + 1
	}

	height := max(width/ChartHeightRatio, MinChartHeight)

	lc := timeserieslinechart.New(width, height)
	lc.AxisStyle = axisStyle
	lc.LabelStyle = labelStyle
	lc.XLabelFormatter = timeserieslinechart.HourTimeLabelFormatter()
	lc.SetYRange(minYValue, maxYValue)     // set expected Y values (values can be less or greater than what is displayed)
	lc.SetViewYRange(minYValue, maxYValue) // setting display Y values will fail unless set expected Y values first
	lc.SetLineStyle(runes.ThinLineStyle)

	legend = make([]LegendEntry, 0, len(streams))
	for _, stream := range streams {
		name := stream.Metric.String()
		res := r.Resolve(stream.Code)
		legend = append(legend, LegendEntry{Metric: name, Code: stream.Code, Color: res})

		lc.SetDataSetStyle(name, res.Foreground())
		for _, p := range stream.Points {
			lc.PushDataSet(name, timeserieslinechart.TimePoint{Time: p.Timestamp, Value: p.Value})
		}
	}

	lc.DrawBrailleAll()

	return lc.View(), legend
}

// RenderLegend prints one colored line per entry.
func RenderLegend(legend []LegendEntry) string {
	var b strings.Builder
	for i, e := range legend {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(e.Color.Foreground().Render(fmt.Sprintf("%c %s", runes.FullBlock, e.Metric)))
		if e.Code != e.Metric {
			b.WriteString(" " + e.Color.Badge().Render(e.Code))
		}
	}
	return b.String()
}
