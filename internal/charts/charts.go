package charts

import (
	"fmt"
	"io"
	"os"

	"github.com/akasprzok/ragbadge/internal/prometheus"
	"github.com/akasprzok/ragbadge/internal/scales"
	"golang.org/x/term"
)

type Charter interface {
	PrintBars(w io.Writer, bars []Bar)
	PrintTimeseries(w io.Writer, streams []prometheus.Stream)
}

type ntCharts struct {
	resolver *scales.Resolver
	width    int
}

// NewNtCharts draws with r. A width of zero means the terminal width.
func NewNtCharts(r *scales.Resolver, width int) Charter {
	if width <= 0 {
		width = TerminalWidth()
	}
	return &ntCharts{resolver: r, width: width}
}

func (c *ntCharts) PrintBars(w io.Writer, bars []Bar) {
	fmt.Fprintln(w, Barchart(bars, c.resolver, c.width))
}

func (c *ntCharts) PrintTimeseries(w io.Writer, streams []prometheus.Stream) {
	chart, legend := TimeseriesSplit(streams, c.resolver, c.width)
	fmt.Fprintln(w, chart)
	fmt.Fprintln(w, RenderLegend(legend))
}

// TerminalWidth returns the width of stdout, or DefaultTerminalWidth.
func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return DefaultTerminalWidth
	}
	return width
}
