package report

import (
	"encoding/json"

	"github.com/google/uuid"
)

// JSONOutput represents the JSON structure for report output
type JSONOutput struct {
	RunID      string      `json:"run_id"`
	Root       string      `json:"root"`
	Status     string      `json:"status"`
	Violations []Violation `json:"violations"`
	Errors     []Violation `json:"errors"`
	Warnings   []Violation `json:"warnings"`
	Summary    Summary     `json:"summary"`
}

// Summary contains violation counts for the run
type Summary struct {
	FilesScanned int `json:"files_scanned"`
	Patterns     int `json:"patterns"`
	ErrorCount   int `json:"error_count"`
	WarningCount int `json:"warning_count"`
	TotalCount   int `json:"total_count"`
}

// buildJSONOutput splits violations by severity and derives the status
func buildJSONOutput(r *Report) JSONOutput {
	errorList := make([]Violation, 0)
	warningList := make([]Violation, 0)

	for _, v := range r.Violations {
		if v.IsError() {
			errorList = append(errorList, v)
		} else {
			warningList = append(warningList, v)
		}
	}

	status := "success"
	if len(errorList) > 0 {
		status = "error"
	} else if len(warningList) > 0 {
		status = "warning"
	}

	violations := r.Violations
	if violations == nil {
		violations = []Violation{}
	}

	return JSONOutput{
		RunID:      uuid.NewString(),
		Root:       r.Root,
		Status:     status,
		Violations: violations,
		Errors:     errorList,
		Warnings:   warningList,
		Summary: Summary{
			FilesScanned: r.FilesSeen,
			Patterns:     r.Patterns,
			ErrorCount:   len(errorList),
			WarningCount: len(warningList),
			TotalCount:   len(r.Violations),
		},
	}
}

// FormatAsJSON formats the report as indented JSON
func FormatAsJSON(r *Report) (string, error) {
	data, err := json.MarshalIndent(buildJSONOutput(r), "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// FormatAsJSONCompact formats the report as compact JSON (no indentation)
func FormatAsJSONCompact(r *Report) (string, error) {
	data, err := json.Marshal(buildJSONOutput(r))
	if err != nil {
		return "", err
	}
	return string(data), nil
}
