// Package resolve checks see-also references against the frozen pattern
// table. It runs strictly after extraction has finished for every file,
// because references routinely point across files.
package resolve

import (
	"fmt"

	"github.com/guidelint/guidelint/internal/pattern"
	"github.com/guidelint/guidelint/internal/report"
)

// Resolve checks every pattern's raw see-also references against the
// table. References to missing patterns are dangling (error); a pattern
// referencing itself is flagged as a warning. Duplicate references
// within one pattern are reported once.
func Resolve(table *pattern.Frozen) []report.Violation {
	var violations []report.Violation

	for _, p := range table.Patterns() {
		seen := make(map[pattern.ID]struct{}, len(p.SeeAlso))

		for _, ref := range p.SeeAlso {
			id, ok := pattern.ParseID(ref.Text)
			if !ok {
				// Malformed tokens were already flagged by the extractor
				continue
			}

			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}

			if id == p.ID {
				violations = append(violations, report.New(
					report.KindSelfReference, p.File, ref.Line, p.RawID,
					fmt.Sprintf("pattern %s references itself", p.RawID),
				))
				continue
			}

			if _, found := table.Lookup(id); !found {
				violations = append(violations, report.New(
					report.KindDanglingReference, p.File, ref.Line, p.RawID,
					fmt.Sprintf("see-also reference %s does not match any pattern", ref.Text),
				))
			}
		}
	}

	return violations
}
