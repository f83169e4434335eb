package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/guidelint/guidelint/internal/checker"
	"github.com/guidelint/guidelint/internal/cli/config"
	"github.com/guidelint/guidelint/internal/pattern"
	"github.com/guidelint/guidelint/internal/report"
)

var (
	checkFormat  string
	checkStrict  bool
	checkVerbose bool
	checkNoColor bool
	checkInclude []string
	checkExclude []string
)

// NewCheckCommand creates the check command
func NewCheckCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <root-dir>",
		Short: "Validate a pattern catalog",
		Long: `Run a full validation of all Markdown files under the given root.

The check:
  1. Loads every matching file in deterministic order
  2. Extracts pattern entries, skipping fenced code blocks
  3. Resolves see-also references across the whole corpus
  4. Applies the catalog invariants (unique IDs, contiguous numbering)

The exit code is 0 when no error-severity violations were found and 1
otherwise. With --strict, warnings fail the run too.`,
		Example: `  # Check the guides under docs/
  guidelint check docs

  # Machine-readable output for CI
  guidelint check docs --format json

  # Treat numbering gaps and self-references as failures
  guidelint check docs --strict`,
		Args: cobra.ExactArgs(1),
		RunE: runCheck,
	}

	cmd.Flags().StringVar(&checkFormat, "format", "", "Report format: text or json")
	cmd.Flags().BoolVar(&checkStrict, "strict", false, "Escalate warnings to errors for the exit code")
	cmd.Flags().BoolVarP(&checkVerbose, "verbose", "v", false, "Show detailed progress")
	cmd.Flags().BoolVar(&checkNoColor, "no-color", false, "Disable colored output")
	cmd.Flags().StringSliceVar(&checkInclude, "include", nil, "Glob(s) selecting corpus files (default **/*.md)")
	cmd.Flags().StringSliceVar(&checkExclude, "exclude", nil, "Glob(s) excluding corpus files")

	return cmd
}

func runCheck(cmd *cobra.Command, args []string) error {
	root := args[0]

	cfg, err := config.Load(root)
	if err != nil {
		return err
	}

	format := cfg.Format
	if cmd.Flags().Changed("format") {
		format = checkFormat
	}
	if format != "text" && format != "json" {
		return fmt.Errorf("format must be 'text' or 'json', got: %s", format)
	}

	strict := cfg.Strict || checkStrict

	include := cfg.Include
	if cmd.Flags().Changed("include") {
		include = checkInclude
	}
	exclude := cfg.Exclude
	if cmd.Flags().Changed("exclude") {
		exclude = checkExclude
	}

	logger, err := newLogger(checkVerbose)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	chk := checker.New(checker.Options{
		Include:   include,
		Exclude:   exclude,
		Strengths: strengthsFromConfig(cfg),
	}, logger)

	result, err := chk.Check(root)
	if err != nil {
		return err
	}

	if err := renderReport(result.Report, format); err != nil {
		return err
	}

	if result.Report.Failed(strict) {
		return fmt.Errorf("validation failed: %d error(s), %d warning(s)",
			result.Report.ErrorCount(), result.Report.WarningCount())
	}

	return nil
}

func renderReport(rep *report.Report, format string) error {
	if format == "json" {
		out, err := report.FormatAsJSON(rep)
		if err != nil {
			return fmt.Errorf("failed to render report: %w", err)
		}
		fmt.Println(out)
		return nil
	}

	report.WriteTerminal(os.Stdout, rep, report.TerminalOptions{NoColor: checkNoColor})
	return nil
}

// strengthsFromConfig maps the configured strength literals, falling
// back to the standard vocabulary when none are configured
func strengthsFromConfig(cfg *config.Config) []pattern.Strength {
	if len(cfg.Strengths) == 0 {
		return nil
	}
	levels := make([]pattern.Strength, 0, len(cfg.Strengths))
	for _, s := range cfg.Strengths {
		levels = append(levels, pattern.Strength(s))
	}
	return levels
}

// newLogger builds the command logger: development output under
// --verbose, silent otherwise
func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewNop(), nil
}
