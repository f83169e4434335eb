package checker

import (
	"fmt"
	"sort"

	"github.com/guidelint/guidelint/internal/pattern"
	"github.com/guidelint/guidelint/internal/report"
)

// checkNumbering verifies that pattern numbers within each prefix are
// contiguous starting at 1. Each missing number is one warning, attached
// to the first pattern after the gap.
func checkNumbering(table *pattern.Frozen) []report.Violation {
	groups := table.ByPrefix()

	prefixes := make([]string, 0, len(groups))
	for prefix := range groups {
		prefixes = append(prefixes, prefix)
	}
	sort.Strings(prefixes)

	var violations []report.Violation
	for _, prefix := range prefixes {
		expected := 1
		for _, p := range groups[prefix] {
			for n := expected; n < p.ID.Number; n++ {
				violations = append(violations, report.New(
					report.KindNumberingGap, p.File, p.Line, p.RawID,
					fmt.Sprintf("prefix %s is missing number %d", prefix, n),
				))
			}
			expected = p.ID.Number + 1
		}
	}

	return violations
}
