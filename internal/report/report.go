// Package report defines the violation model produced by a check run.
// A Report is built once by the checker and is read-only afterwards.
package report

import (
	"fmt"
)

// Severity represents the severity level of a violation
type Severity int

const (
	Warning Severity = iota
	Error
)

// String returns the string representation of the severity
func (s Severity) String() string {
	switch s {
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// MarshalJSON implements json.Marshaler for Severity
func (s Severity) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler for Severity
func (s *Severity) UnmarshalJSON(data []byte) error {
	str := string(data)
	if len(str) >= 2 && str[0] == '"' && str[len(str)-1] == '"' {
		str = str[1 : len(str)-1]
	}

	switch str {
	case "warning":
		*s = Warning
	default:
		*s = Error
	}
	return nil
}

// Kind identifies the class of violation
type Kind string

const (
	KindReadError          Kind = "read-error"
	KindMissingStrength    Kind = "missing-strength"
	KindDuplicateID        Kind = "duplicate-id"
	KindDanglingReference  Kind = "dangling-reference"
	KindMalformedReference Kind = "malformed-reference"
	KindNumberingGap       Kind = "numbering-gap"
	KindSelfReference      Kind = "self-reference"
)

// SeverityFor returns the default severity of a violation kind.
// Numbering gaps and self-references are advisory; everything else
// should fail a CI run.
func SeverityFor(kind Kind) Severity {
	switch kind {
	case KindNumberingGap, KindSelfReference:
		return Warning
	default:
		return Error
	}
}

// Violation represents one finding against the corpus
type Violation struct {
	Kind      Kind     `json:"kind"`
	Severity  Severity `json:"severity"`
	File      string   `json:"file"`
	Line      int      `json:"line"`
	PatternID string   `json:"pattern_id,omitempty"`
	Message   string   `json:"message"`
}

// New creates a violation with the default severity for its kind
func New(kind Kind, file string, line int, patternID, message string) Violation {
	return Violation{
		Kind:      kind,
		Severity:  SeverityFor(kind),
		File:      file,
		Line:      line,
		PatternID: patternID,
		Message:   message,
	}
}

// String renders the violation in the one-line diagnostic form
func (v Violation) String() string {
	return fmt.Sprintf("%s: %s:%d: %s: %s", v.Severity, v.File, v.Line, v.Kind, v.Message)
}

// IsError returns true if the violation is at Error severity
func (v Violation) IsError() bool {
	return v.Severity == Error
}

// IsWarning returns true if the violation is at Warning severity
func (v Violation) IsWarning() bool {
	return v.Severity == Warning
}

// Report is the ordered collection of violations from one run
type Report struct {
	Root       string      `json:"root"`
	FilesSeen  int         `json:"files_scanned"`
	Patterns   int         `json:"patterns"`
	Violations []Violation `json:"violations"`
}

// Add appends violations to the report
func (r *Report) Add(violations ...Violation) {
	r.Violations = append(r.Violations, violations...)
}

// ErrorCount returns the number of Error-severity violations
func (r *Report) ErrorCount() int {
	n := 0
	for _, v := range r.Violations {
		if v.IsError() {
			n++
		}
	}
	return n
}

// WarningCount returns the number of Warning-severity violations
func (r *Report) WarningCount() int {
	n := 0
	for _, v := range r.Violations {
		if v.IsWarning() {
			n++
		}
	}
	return n
}

// Failed reports whether the run should exit nonzero. With strict set,
// warnings count against the exit code as well.
func (r *Report) Failed(strict bool) bool {
	if r.ErrorCount() > 0 {
		return true
	}
	return strict && r.WarningCount() > 0
}
