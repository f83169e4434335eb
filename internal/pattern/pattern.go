// Package pattern defines the pattern catalog model: pattern identities,
// strength levels, and the table built up during extraction.
package pattern

import (
	"fmt"
	"regexp"
	"strconv"
)

// Strength is the prescriptiveness level of a pattern
type Strength string

const (
	StrengthMust     Strength = "MUST"
	StrengthShould   Strength = "SHOULD"
	StrengthConsider Strength = "CONSIDER"
	StrengthAvoid    Strength = "AVOID"
)

// DefaultStrengths returns the standard strength vocabulary
func DefaultStrengths() []Strength {
	return []Strength{StrengthMust, StrengthShould, StrengthConsider, StrengthAvoid}
}

// StrengthSet is the set of strength literals a corpus accepts
type StrengthSet map[Strength]struct{}

// NewStrengthSet builds a set from a list of literals
func NewStrengthSet(levels []Strength) StrengthSet {
	set := make(StrengthSet, len(levels))
	for _, l := range levels {
		set[l] = struct{}{}
	}
	return set
}

// Contains reports whether the literal is an accepted strength.
// Matching is case-sensitive.
func (s StrengthSet) Contains(level string) bool {
	_, ok := s[Strength(level)]
	return ok
}

// ID identifies a pattern by prefix and sequential number
type ID struct {
	Prefix string `json:"prefix"`
	Number int    `json:"number"`
}

// String returns the canonical ID form, e.g. "CLI-5" or "CG-P-12"
func (id ID) String() string {
	return fmt.Sprintf("%s-%d", id.Prefix, id.Number)
}

// idPattern matches a complete, well-formed pattern ID token
var idPattern = regexp.MustCompile(`^([A-Z]+(?:-[A-Z]+)*)-(\d+)$`)

// ParseID parses a token like "CLI-05" or "CG-P-01" into an ID.
// The second return value is false if the token is not a well-formed ID.
func ParseID(token string) (ID, bool) {
	m := idPattern.FindStringSubmatch(token)
	if m == nil {
		return ID{}, false
	}
	n, err := strconv.Atoi(m[2])
	if err != nil {
		return ID{}, false
	}
	return ID{Prefix: m[1], Number: n}, true
}

// RawRef is a see-also reference token as written in the source,
// before resolution against the table
type RawRef struct {
	Text string
	Line int
}

// Pattern is one documented best-practice entry extracted from the corpus
type Pattern struct {
	ID       ID       `json:"id"`
	RawID    string   `json:"raw_id"`
	Title    string   `json:"title"`
	Strength Strength `json:"strength"`
	File     string   `json:"file"`
	Line     int      `json:"line"`
	Summary  string   `json:"summary,omitempty"`
	SeeAlso  []RawRef `json:"-"`
}
