package commands

import (
	"fmt"

	"github.com/akasprzok/ragbadge/internal/charts"
	"github.com/akasprzok/ragbadge/internal/palette"
)

type ScaleCmd struct {
	Domain string   `arg:"" name:"scale" help:"Named scale, e.g. lifecycle-phase."`
	Codes  []string `arg:"" name:"code" help:"Codes to look up (exact match)."`
	Output string   `name:"output" short:"o" help:"Output format." default:"text" enum:"text,json,yaml"`
}

func (s *ScaleCmd) Run(ctx *Context) error {
	domain, err := ctx.Scales.ParseDomain(s.Domain)
	if err != nil {
		return err
	}
	ns, _ := ctx.Scales.Scale(domain)

	records := make([]colorRecord, 0, len(s.Codes))
	for _, code := range s.Codes {
		c, ok := ns.Lookup(code)
		source := string(domain)
		if !ok {
			c = palette.Unknown
			source = "unknown"
			ctx.Log.WithField("scale", domain).Warnf("%q is not in the scale domain", code)
		}
		if s.Output == outputText {
			fmt.Fprintf(ctx.Out, "%s %s %s\n", charts.Badge(code, c), c.Hex(), source)
			continue
		}
		records = append(records, colorRecord{Code: code, Color: c.Hex(), Source: source})
	}

	if s.Output == outputText {
		return nil
	}
	return writeStructured(ctx.Out, s.Output, records)
}

type ScalesCmd struct{}

func (s *ScalesCmd) Run(ctx *Context) error {
	for _, d := range ctx.Scales.Domains() {
		ns, _ := ctx.Scales.Scale(d)
		fmt.Fprintf(ctx.Out, "%-32s %s\n", d, charts.BadgeRow(ns))
	}
	return nil
}
