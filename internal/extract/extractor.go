// Package extract scans one document at a time for pattern entries.
//
// The scanner is an explicit finite-state machine over lines:
//
//	scanning -> (header) -> awaitingStrength -> (strength) -> awaitingSummary -> scanning
//
// Fenced code blocks are tracked as an orthogonal flag layered on top of
// these states: inside a fence no header, strength, or reference matching
// happens, so example text shaped like a pattern header is never extracted.
package extract

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/guidelint/guidelint/internal/corpus"
	"github.com/guidelint/guidelint/internal/pattern"
	"github.com/guidelint/guidelint/internal/report"
)

type state int

const (
	stateScanning state = iota
	stateAwaitingStrength
	stateAwaitingSummary
)

// summaryWindow is how many lines after the strength line may carry
// the **Summary** line
const summaryWindow = 3

var (
	headerLine   = regexp.MustCompile(`^## ([A-Z]+(?:-[A-Z]+)*)-(\d+): (.+)$`)
	strengthLine = regexp.MustCompile(`^\*\*Strength\*\*:\s*(.+?)\s*$`)
	summaryLine  = regexp.MustCompile(`^\*\*Summary\*\*:\s*(.+?)\s*$`)

	seeAlsoInline = regexp.MustCompile(`^\*\*See also\*\*:\s*(.*)$`)
	seeAlsoHeader = regexp.MustCompile(`^##+ See also\s*$`)
	anyHeader     = regexp.MustCompile(`^#`)

	refToken = regexp.MustCompile(`\b[A-Z]+(?:-[A-Z]+)*-\d+\b`)

	// malformedToken catches near-miss reference tokens in a see-also
	// context: a trailing dash with no number, or a number followed by
	// junk ("CLI-", "CLI-05a"). Ordinary hyphenated words don't match.
	malformedToken = regexp.MustCompile(`^[A-Z]+(?:-[A-Z]+)*-(?:\d+\S+)?$`)
)

// Result holds everything extracted from one document
type Result struct {
	Patterns   []*pattern.Pattern
	Violations []report.Violation
}

// Extractor scans documents for pattern entries
type Extractor struct {
	strengths pattern.StrengthSet
}

// New creates an extractor accepting the given strength vocabulary
func New(strengths pattern.StrengthSet) *Extractor {
	return &Extractor{strengths: strengths}
}

// scanner carries the per-file machine state
type scanner struct {
	ext *Extractor
	doc *corpus.Document

	state   state
	inFence bool

	current        *pattern.Pattern // pattern opened by the last header
	summaryLeft    int              // lines left to find the summary
	inSeeAlso      bool             // inside a "## See also" section
	strengthHeader int              // header line of the candidate awaiting strength

	result Result
}

// Extract scans a single document and returns its patterns and any
// violations found while scanning
func (e *Extractor) Extract(doc *corpus.Document) Result {
	s := &scanner{ext: e, doc: doc, state: stateScanning}

	lines := strings.Split(doc.Content, "\n")
	for i, line := range lines {
		s.scanLine(i+1, strings.TrimRight(line, "\r"))
	}

	// End of file while still expecting a strength line
	if s.state == stateAwaitingStrength {
		s.missingStrength()
	}

	return s.result
}

func (s *scanner) scanLine(lineNo int, line string) {
	// Fence state toggles before anything else; the fence line itself
	// is never matched
	if strings.HasPrefix(strings.TrimSpace(line), "```") {
		s.inFence = !s.inFence
		return
	}
	if s.inFence {
		return
	}

	// A pattern header always opens a new candidate, whatever state
	// the machine is in
	if m := headerLine.FindStringSubmatch(line); m != nil {
		s.openPattern(lineNo, m)
		return
	}

	switch s.state {
	case stateAwaitingStrength:
		if strings.TrimSpace(line) == "" {
			return
		}
		if m := strengthLine.FindStringSubmatch(line); m != nil {
			s.setStrength(lineNo, m[1])
			return
		}
		// The first non-blank line was not a strength line; the line
		// still gets normal scanning below
		s.missingStrength()

	case stateAwaitingSummary:
		s.summaryLeft--
		if m := summaryLine.FindStringSubmatch(line); m != nil {
			s.current.Summary = m[1]
			s.state = stateScanning
			return
		}
		if s.summaryLeft <= 0 {
			s.state = stateScanning
		}
	}

	s.scanSeeAlso(lineNo, line)
}

// openPattern starts a new candidate from a matched header line
func (s *scanner) openPattern(lineNo int, m []string) {
	if s.state == stateAwaitingStrength {
		s.missingStrength()
	}

	id, ok := pattern.ParseID(m[1] + "-" + m[2])
	if !ok {
		// The header regex guarantees a parseable ID
		return
	}

	s.current = &pattern.Pattern{
		ID:    id,
		RawID: m[1] + "-" + m[2],
		Title: strings.TrimSpace(m[3]),
		File:  s.doc.Path,
		Line:  lineNo,
	}
	s.result.Patterns = append(s.result.Patterns, s.current)
	s.state = stateAwaitingStrength
	s.strengthHeader = lineNo
	s.inSeeAlso = false
}

// setStrength records the strength literal, flagging unknown literals
func (s *scanner) setStrength(lineNo int, literal string) {
	if s.ext.strengths.Contains(literal) {
		s.current.Strength = pattern.Strength(literal)
	} else {
		s.result.Violations = append(s.result.Violations, report.New(
			report.KindMissingStrength, s.doc.Path, lineNo, s.current.RawID,
			fmt.Sprintf("pattern %s has invalid strength %q", s.current.RawID, literal),
		))
	}
	s.state = stateAwaitingSummary
	s.summaryLeft = summaryWindow
}

// missingStrength flags the current candidate and returns to scanning.
// The candidate stays in the result so its references still resolve.
func (s *scanner) missingStrength() {
	s.result.Violations = append(s.result.Violations, report.New(
		report.KindMissingStrength, s.doc.Path, s.strengthHeader, s.current.RawID,
		fmt.Sprintf("pattern %s has no **Strength** line", s.current.RawID),
	))
	s.state = stateScanning
}

// scanSeeAlso handles reference collection: an inline "**See also**:"
// line, or every line of a "## See also" section until the next header
func (s *scanner) scanSeeAlso(lineNo int, line string) {
	if m := seeAlsoInline.FindStringSubmatch(line); m != nil {
		s.collectRefs(lineNo, m[1])
		return
	}

	if seeAlsoHeader.MatchString(line) {
		s.inSeeAlso = true
		return
	}

	if s.inSeeAlso {
		if anyHeader.MatchString(line) {
			s.inSeeAlso = false
			return
		}
		s.collectRefs(lineNo, line)
	}
}

// collectRefs records reference tokens from a see-also payload and
// flags near-miss tokens as malformed
func (s *scanner) collectRefs(lineNo int, text string) {
	if s.current == nil {
		return
	}

	for _, tok := range refToken.FindAllString(text, -1) {
		s.current.SeeAlso = append(s.current.SeeAlso, pattern.RawRef{Text: tok, Line: lineNo})
	}

	for _, word := range splitWords(text) {
		if _, ok := pattern.ParseID(word); ok {
			continue
		}
		if malformedToken.MatchString(word) {
			s.result.Violations = append(s.result.Violations, report.New(
				report.KindMalformedReference, s.doc.Path, lineNo, s.current.RawID,
				fmt.Sprintf("see-also token %q is not a valid pattern reference", word),
			))
		}
	}
}

// splitWords splits a see-also payload into candidate tokens, trimming
// surrounding punctuation so "CLI-09," resolves cleanly
func splitWords(text string) []string {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == ' ' || r == '\t' || r == ','
	})
	words := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.Trim(f, ".;:()[]")
		if f != "" {
			words = append(words, f)
		}
	}
	return words
}
