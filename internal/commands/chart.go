package commands

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/akasprzok/ragbadge/internal/charts"
)

type ChartCmd struct {
	Width int `name:"width" short:"w" help:"Chart width; 0 uses the terminal width." default:"0"`
}

func (c *ChartCmd) Run(ctx *Context) error {
	var codes []string
	scanner := bufio.NewScanner(ctx.In)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		codes = append(codes, line)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading codes: %w", err)
	}
	if len(codes) == 0 {
		fmt.Fprintln(ctx.Out, "No Data")
		return nil
	}

	bars := charts.CountBars(codes)
	for _, b := range bars {
		logResolution(ctx.Log, ctx.Resolver.Explain(b.Code))
	}
	charts.NewNtCharts(ctx.Resolver, c.Width).PrintBars(ctx.Out, bars)
	return nil
}
