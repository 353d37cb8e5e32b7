package scales

import (
	"strings"
	"sync"
	"testing"

	"github.com/akasprzok/ragbadge/internal/palette"
)

func TestResolveScenarios(t *testing.T) {
	r := DefaultResolver()
	tests := []struct {
		input string
		want  palette.Color
	}{
		{"YES", palette.Green},
		{"no", palette.Red},
		{"DISINVEST", palette.Red},
		{"PLANNED", palette.Blue},
		{"hold", palette.Amber},
		{"Retired", palette.Grey},
		{"prd/dr", palette.Amber},
		{"n/a", palette.Grey},
		{"paß", palette.Green},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := r.Resolve(tt.input); got != tt.want {
				t.Errorf("Resolve(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestResolveFoldsUnicodeCase(t *testing.T) {
	r := DefaultResolver()
	tests := []struct {
		input  string
		source Source
	}{
		{"paß", SourceCanonical},
		{"PAß", SourceCanonical},
		// full-width letters upper-case to full-width, not ASCII
		{"ｐａｓｓ", SourceFallback},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			res := r.Explain(tt.input)
			if res.Source != tt.source {
				t.Fatalf("Explain(%q).Source = %s, want %s", tt.input, res.Source, tt.source)
			}
			if tt.source == SourceCanonical && res.Color != palette.Green {
				t.Errorf("Explain(%q) = %s, want %s", tt.input, res.Color, palette.Green)
			}
		})
	}
}

func TestResolveIsCaseInsensitiveForCanonicalKeys(t *testing.T) {
	r := DefaultResolver()
	for _, e := range r.Table().Entries() {
		upper := r.Resolve(strings.ToUpper(e.Key))
		lower := r.Resolve(strings.ToLower(e.Key))
		if r.Resolve(e.Key) != upper || upper != lower {
			t.Errorf("key %q resolves inconsistently: %s / %s / %s", e.Key, r.Resolve(e.Key), upper, lower)
		}
		if upper != e.Color {
			t.Errorf("key %q resolves to %s, table says %s", e.Key, upper, e.Color)
		}
	}
}

func TestResolveFallbackIsDeterministic(t *testing.T) {
	r := DefaultResolver()
	inputs := []string{"totally-unknown-xyz", "", "something else", "日本語"}
	for _, in := range inputs {
		first := r.Resolve(in)
		for i := 0; i < 5; i++ {
			if got := r.Resolve(in); got != first {
				t.Errorf("Resolve(%q) changed between calls: %s then %s", in, first, got)
			}
		}
		if !inPalette(first, palette.Category20) {
			t.Errorf("Resolve(%q) = %s, not from the fallback palette", in, first)
		}
	}
}

func TestResolveFallbackUsesOriginalCasing(t *testing.T) {
	r := DefaultResolver()
	fb := NewFallback(nil)
	for _, in := range []string{"foo", "FOO", "Foo"} {
		res := r.Explain(in)
		if res.Source != SourceFallback {
			t.Fatalf("Explain(%q).Source = %s, want fallback", in, res.Source)
		}
		if res.Color != fb.Color(in) {
			t.Errorf("Explain(%q) = %s, want fallback color of the original input %s", in, res.Color, fb.Color(in))
		}
	}
}

func TestExplainReportsSource(t *testing.T) {
	r := DefaultResolver()
	if got := r.Explain("yes"); got.Source != SourceCanonical || got.Input != "yes" {
		t.Errorf("Explain(yes) = %+v, want canonical with original input", got)
	}
	if got := r.Explain("zzz"); got.Source != SourceFallback {
		t.Errorf("Explain(zzz).Source = %s, want fallback", got.Source)
	}
}

func TestResolverWithoutTable(t *testing.T) {
	r := NewResolver(nil, NewFallback(nil))
	if got := r.Resolve("YES"); !inPalette(got, palette.Category20) {
		t.Errorf("Resolve without table = %s, want a fallback color", got)
	}
}

func TestResolveConcurrentReads(t *testing.T) {
	r := DefaultResolver()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if r.Resolve("yes") != palette.Green {
					t.Error("concurrent Resolve(yes) returned wrong color")
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestDefaultResolverIsSingleton(t *testing.T) {
	if DefaultResolver() != DefaultResolver() {
		t.Error("DefaultResolver should return the same instance")
	}
}

func TestFallbackCustomPalette(t *testing.T) {
	only := []palette.Color{palette.Actor}
	fb := NewFallback(only)
	if got := fb.Color("anything"); got != palette.Actor {
		t.Errorf("single-color fallback = %s, want %s", got, palette.Actor)
	}
	only[0] = palette.Red
	if got := fb.Color("anything"); got != palette.Actor {
		t.Error("fallback palette should be copied, not aliased")
	}

	var zero Fallback
	if !inPalette(zero.Color("x"), palette.Category20) {
		t.Error("zero Fallback should use Category20")
	}
}

func TestSourceString(t *testing.T) {
	if SourceCanonical.String() != "canonical" || SourceFallback.String() != "fallback" {
		t.Error("unexpected Source names")
	}
	if Source(42).String() != "unknown" {
		t.Error("out of range Source should be unknown")
	}
}

func inPalette(c palette.Color, colors []palette.Color) bool {
	for _, p := range colors {
		if p == c {
			return true
		}
	}
	return false
}
