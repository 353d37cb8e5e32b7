package scales

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/akasprzok/ragbadge/internal/palette"
)

// EnumDomain names one of the pre-built named scales.
type EnumDomain string

const (
	DomainRAG                           EnumDomain = "rag"
	DomainCapability                    EnumDomain = "capability"
	DomainInvestmentRating              EnumDomain = "investment-rating"
	DomainMaturity                      EnumDomain = "maturity"
	DomainAuthoritativeSource           EnumDomain = "authoritative-source"
	DomainAuthoritativeRating           EnumDomain = "authoritative-rating"
	DomainAuthoritativeRatingBackground EnumDomain = "authoritative-rating-background"
	DomainEnvironment                   EnumDomain = "environment"
	DomainOperatingSystem               EnumDomain = "operating-system"
	DomainLifecyclePhase                EnumDomain = "lifecycle-phase"
	DomainCriticality                   EnumDomain = "criticality"
	DomainFlowDirection                 EnumDomain = "flow-direction"
)

// Scales is an immutable registry of named scales.
type Scales struct {
	byDomain map[EnumDomain]*NamedScale
}

func buildScales() *Scales {
	rag := mustNamedScale(string(DomainRAG),
		[]string{"R", "A", "G", "Z"},
		palette.Red, palette.Amber, palette.Green, palette.Grey)

	ratings := []string{"DISCOURAGED", "SECONDARY", "PRIMARY", "NO_OPINION"}

	all := []*NamedScale{
		rag,
		mustNamedScale(string(DomainMaturity),
			[]string{"PLANNED", "INVEST", "HOLD", "DISINVEST", "UNSUPPORTED", "RESTRICTED"},
			palette.Blue, palette.Green, palette.Amber, palette.Red, palette.Red, palette.Red),
		mustNamedScale(string(DomainAuthoritativeSource),
			[]string{"NON_STRATEGIC", "SECONDARY", "PRIMARY", "NOT_APPLICABLE"},
			palette.Red, palette.Amber, palette.Green, palette.Grey),
		mustNamedScale(string(DomainAuthoritativeRating), ratings,
			palette.Red, palette.Amber, palette.Green, palette.Grey.Darker(1)),
		mustNamedScale(string(DomainAuthoritativeRatingBackground), ratings,
			palette.RedBg, palette.AmberBg, palette.GreenBg, palette.GreyBg),
		mustNamedScale(string(DomainEnvironment),
			[]string{"DEV", "PREPROD", "PROD", "PRD", "QA", "UAT"},
			palette.Green, palette.Amber, palette.Blue, palette.Blue, palette.Grey, palette.Red),
		mustNamedScale(string(DomainOperatingSystem),
			[]string{"Windows", "Linux", "AS/400", "OS/390", "AIX", "Solaris"},
			palette.Blue, palette.Green, palette.MustHex("#777"), palette.MustHex("#555"), palette.MustHex("#473"), palette.Amber),
		mustNamedScale(string(DomainLifecyclePhase),
			[]string{"PRODUCTION", "CONCEPTUAL", "DEVELOPMENT", "RETIRED"},
			palette.Blue, palette.Amber, palette.Green, palette.Grey),
		mustNamedScale(string(DomainCriticality),
			[]string{"LOW", "MEDIUM", "HIGH", "VERY_HIGH", "NONE", "UNKNOWN"},
			palette.Green, palette.Amber, palette.Red, palette.Red.Darker(1), palette.Grey, palette.Grey.Darker(1)),
		mustNamedScale(string(DomainFlowDirection),
			[]string{"Inbound", "Outbound", "Intra", "UNKNOWN"},
			palette.Green, palette.Amber, palette.Blue, palette.Grey),
	}

	s := &Scales{byDomain: make(map[EnumDomain]*NamedScale, len(all)+2)}
	for _, ns := range all {
		s.byDomain[EnumDomain(ns.Name())] = ns
	}
	// capability and investment ratings share the RAG table
	s.byDomain[DomainCapability] = rag
	s.byDomain[DomainInvestmentRating] = rag
	return s
}

var defaultScales = sync.OnceValue(buildScales)

// DefaultScales returns the process-wide registry, built on first use.
func DefaultScales() *Scales {
	return defaultScales()
}

// Scale returns the named scale registered for d.
func (s *Scales) Scale(d EnumDomain) (*NamedScale, bool) {
	ns, ok := s.byDomain[d]
	return ns, ok
}

// Domains lists every registered domain in sorted order.
func (s *Scales) Domains() []EnumDomain {
	out := make([]EnumDomain, 0, len(s.byDomain))
	for d := range s.byDomain {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// ParseDomain accepts a domain name case-insensitively, with '_' or '-' separators.
func (s *Scales) ParseDomain(name string) (EnumDomain, error) {
	d := EnumDomain(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-"))
	if _, ok := s.byDomain[d]; !ok {
		return "", fmt.Errorf("unknown scale %q", name)
	}
	return d, nil
}
