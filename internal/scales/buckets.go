package scales

import "github.com/akasprzok/ragbadge/internal/palette"

// DefaultBuckets returns the built-in status code buckets.
func DefaultBuckets() []CategoryBucket {
	return []CategoryBucket{
		{
			Color: palette.Red,
			Keys: []string{
				"NO",
				"FAIL",
				"DISINVEST",
				"UNSUPPORTED",
				"RESTRICTED",
				"DISCOURAGED",
				"NON_STRATEGIC",
				"NON_COMPLIANT",
				"R",
				"RED",
				"OVERDUE",
				"LATE",
				"BAD",
				"END_OF_LIFE",
				"QA",
				"UAT",
			},
		},
		{
			Color: palette.Green,
			Keys: []string{
				"YES",
				"PASS",
				"COMPLETED",
				"SUCCESS",
				"INVEST",
				"SUPPORTED",
				"PRIMARY",
				"COMPLIANT",
				"ENCOURAGED",
				"STRATEGIC",
				"G",
				"GREEN",
				"GOOD",
				"NOT_END_OF_LIFE",
			},
		},
		{
			Color: palette.Amber,
			Keys: []string{
				"MAYBE",
				"PARTIAL",
				"HOLD",
				"IN_PROGRESS",
				"SECONDARY",
				"STRATEGIC_WITH_ISSUES",
				"PART_COMPLIANT",
				"PARTIALLY_COMPLIANT",
				"A",
				"AMBER",
				"YELLOW",
				"DR",
				"PRD/DR",
				"PROD/DR",
				"DR/PRD",
				"DR/PROD",
				"OKAY",
			},
		},
		{
			Color: palette.Blue,
			Keys: []string{
				"PROD",
				"PRD",
				"PLANNED",
				"CONCEPTUAL",
				"B",
				"NOT_STARTED",
				"BLUE",
			},
		},
		{
			Color: palette.Grey,
			Keys: []string{
				"OTHER",
				"UNKNOWN",
				"EXEMPT",
				"RETIRED",
				"GREY",
				"GRAY",
				"POSTPONED",
				"N/A",
				"NA",
				"NOT_APPLICABLE",
				"MEH",
			},
		},
	}
}
