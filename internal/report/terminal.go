package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// TerminalOptions configures terminal report rendering
type TerminalOptions struct {
	NoColor bool
}

// WriteTerminal renders the report for terminal output, one line per
// violation followed by a summary line.
func WriteTerminal(w io.Writer, r *Report, opts TerminalOptions) {
	errorColor := color.New(color.FgRed, color.Bold)
	warningColor := color.New(color.FgYellow, color.Bold)
	locationColor := color.New(color.FgCyan)
	successColor := color.New(color.FgGreen, color.Bold)

	if opts.NoColor {
		errorColor.DisableColor()
		warningColor.DisableColor()
		locationColor.DisableColor()
		successColor.DisableColor()
	}

	for _, v := range r.Violations {
		severityColor := errorColor
		if v.IsWarning() {
			severityColor = warningColor
		}
		severityColor.Fprintf(w, "%s: ", v.Severity)
		locationColor.Fprintf(w, "%s:%d: ", v.File, v.Line)
		fmt.Fprintf(w, "%s: %s\n", v.Kind, v.Message)
	}

	if len(r.Violations) > 0 {
		fmt.Fprintln(w)
	}

	errs := r.ErrorCount()
	warns := r.WarningCount()

	switch {
	case errs > 0:
		errorColor.Fprintf(w, "✗ %d error(s), %d warning(s)", errs, warns)
	case warns > 0:
		warningColor.Fprintf(w, "⚠ %d warning(s)", warns)
	default:
		successColor.Fprint(w, "✓ no violations")
	}
	fmt.Fprintf(w, " (%d file(s), %d pattern(s))\n", r.FilesSeen, r.Patterns)
}
