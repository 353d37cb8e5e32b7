package commands

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/akasprzok/ragbadge/internal/palette"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

func TestScaleCmd(t *testing.T) {
	env := newTestEnv(t, nil)
	cmd := ScaleCmd{Domain: "lifecycle-phase", Codes: []string{"RETIRED", "NOT_A_PHASE"}, Output: outputJSON}
	if err := cmd.Run(env.ctx); err != nil {
		t.Fatalf("Run() returned error: %v", err)
	}

	var records []colorRecord
	if err := json.Unmarshal(env.out.Bytes(), &records); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[0].Color != palette.Grey.Hex() || records[0].Source != "lifecycle-phase" {
		t.Errorf("RETIRED = %+v, want grey from lifecycle-phase", records[0])
	}
	if records[1].Color != palette.Unknown.Hex() || records[1].Source != "unknown" {
		t.Errorf("NOT_A_PHASE = %+v, want unknown sentinel", records[1])
	}

	warned := false
	for _, e := range env.hook.AllEntries() {
		if e.Level == logrus.WarnLevel {
			warned = true
		}
	}
	if !warned {
		t.Error("out-of-domain code should log a warning")
	}
}

func TestScaleCmdText(t *testing.T) {
	env := newTestEnv(t, nil)
	cmd := ScaleCmd{Domain: "CRITICALITY", Codes: []string{"VERY_HIGH"}, Output: outputText}
	if err := cmd.Run(env.ctx); err != nil {
		t.Fatalf("Run() returned error: %v", err)
	}
	if !strings.Contains(env.out.String(), "#983934") {
		t.Errorf("output %q missing darker red", env.out.String())
	}
}

func TestScaleCmdUnknownScale(t *testing.T) {
	env := newTestEnv(t, nil)
	cmd := ScaleCmd{Domain: "colour", Codes: []string{"X"}, Output: outputText}
	if err := cmd.Run(env.ctx); err == nil {
		t.Error("Run() should fail for an unknown scale")
	}
}

func TestScalesCmd(t *testing.T) {
	env := newTestEnv(t, nil)
	if err := (&ScalesCmd{}).Run(env.ctx); err != nil {
		t.Fatalf("Run() returned error: %v", err)
	}
	for _, d := range env.ctx.Scales.Domains() {
		if !strings.Contains(env.out.String(), string(d)) {
			t.Errorf("output missing scale %s", d)
		}
	}
}

func TestExportCmd(t *testing.T) {
	env := newTestEnv(t, nil)
	if err := (&ExportCmd{Output: outputYAML}).Run(env.ctx); err != nil {
		t.Fatalf("Run() returned error: %v", err)
	}

	var doc exportDoc
	if err := yaml.Unmarshal(env.out.Bytes(), &doc); err != nil {
		t.Fatalf("output is not YAML: %v", err)
	}
	if len(doc.Status) != env.ctx.Resolver.Table().Len() {
		t.Errorf("exported %d status keys, want %d", len(doc.Status), env.ctx.Resolver.Table().Len())
	}
	if len(doc.Scales) != len(env.ctx.Scales.Domains()) {
		t.Errorf("exported %d scales, want %d", len(doc.Scales), len(env.ctx.Scales.Domains()))
	}
	if doc.Unknown != palette.Unknown.Hex() {
		t.Errorf("unknown = %s, want %s", doc.Unknown, palette.Unknown.Hex())
	}
	rag := doc.Scales["rag"]
	if len(rag) != 4 || rag[0].Code != "R" || rag[0].Color != palette.Red.Hex() {
		t.Errorf("rag scale = %+v", rag)
	}
}
