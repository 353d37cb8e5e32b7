package commands

import (
	"github.com/akasprzok/ragbadge/internal/palette"
	"github.com/akasprzok/ragbadge/internal/scales"
)

type ExportCmd struct {
	Output string `name:"output" short:"o" help:"Output format." default:"yaml" enum:"json,yaml"`
}

type exportDoc struct {
	Status  []colorRecord            `json:"status" yaml:"status"`
	Scales  map[string][]colorRecord `json:"scales" yaml:"scales"`
	Unknown string                   `json:"unknown" yaml:"unknown"`
}

func buildExport(r *scales.Resolver, s *scales.Scales) exportDoc {
	doc := exportDoc{
		Scales:  make(map[string][]colorRecord),
		Unknown: palette.Unknown.Hex(),
	}
	if t := r.Table(); t != nil {
		for _, e := range t.Entries() {
			doc.Status = append(doc.Status, colorRecord{Code: e.Key, Color: e.Color.Hex()})
		}
	}
	for _, d := range s.Domains() {
		ns, _ := s.Scale(d)
		for _, code := range ns.Domain() {
			doc.Scales[string(d)] = append(doc.Scales[string(d)], colorRecord{Code: code, Color: ns.At(code).Hex()})
		}
	}
	return doc
}

func (e *ExportCmd) Run(ctx *Context) error {
	return writeStructured(ctx.Out, e.Output, buildExport(ctx.Resolver, ctx.Scales))
}
