package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/guidelint/guidelint/internal/checker"
	"github.com/guidelint/guidelint/internal/cli/config"
	"github.com/guidelint/guidelint/internal/cli/ui"
	"github.com/guidelint/guidelint/internal/pattern"
)

var (
	listPrefix  string
	listJSON    bool
	listNoColor bool
)

// NewListCommand creates the list command
func NewListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list <root-dir>",
		Short: "List all patterns in a catalog",
		Long: `Extract and display every pattern defined under the given root,
sorted by prefix and number. Violations are not reported; use check
for validation.`,
		Example: `  # All patterns
  guidelint list docs

  # Only the CLI prefix
  guidelint list docs --prefix CLI

  # Machine-readable inventory
  guidelint list docs --json`,
		Args: cobra.ExactArgs(1),
		RunE: runList,
	}

	cmd.Flags().StringVar(&listPrefix, "prefix", "", "Only show patterns with this prefix")
	cmd.Flags().BoolVar(&listJSON, "json", false, "Output the inventory as JSON")
	cmd.Flags().BoolVar(&listNoColor, "no-color", false, "Disable colored output")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	root := args[0]

	cfg, err := config.Load(root)
	if err != nil {
		return err
	}

	chk := checker.New(checker.Options{
		Include:   cfg.Include,
		Exclude:   cfg.Exclude,
		Strengths: strengthsFromConfig(cfg),
	}, nil)

	result, err := chk.Check(root)
	if err != nil {
		return err
	}

	patterns := sortedPatterns(result.Table, listPrefix)

	if listJSON {
		return renderListJSON(result, patterns)
	}

	if len(patterns) == 0 {
		fmt.Println("No patterns found.")
		return nil
	}

	table := ui.NewPatternTable(os.Stdout, listNoColor)
	for _, p := range patterns {
		table.AddPattern(p.RawID, string(p.Strength), p.Title,
			fmt.Sprintf("%s:%d", p.File, p.Line))
	}
	table.Render()

	return nil
}

// sortedPatterns orders the inventory by prefix, then number
func sortedPatterns(table *pattern.Frozen, prefix string) []*pattern.Pattern {
	patterns := make([]*pattern.Pattern, 0, table.Len())
	for _, p := range table.Patterns() {
		if prefix != "" && p.ID.Prefix != prefix {
			continue
		}
		patterns = append(patterns, p)
	}

	sort.Slice(patterns, func(i, j int) bool {
		if patterns[i].ID.Prefix != patterns[j].ID.Prefix {
			return patterns[i].ID.Prefix < patterns[j].ID.Prefix
		}
		return patterns[i].ID.Number < patterns[j].ID.Number
	})

	return patterns
}

// guideEntry describes one corpus file in the JSON inventory
type guideEntry struct {
	Path  string `json:"path"`
	Title string `json:"title,omitempty"`
}

func renderListJSON(result *checker.Result, patterns []*pattern.Pattern) error {
	guides := make([]guideEntry, 0, len(result.Docs))
	for _, doc := range result.Docs {
		guides = append(guides, guideEntry{Path: doc.Path, Title: doc.Title})
	}

	out := struct {
		Patterns []*pattern.Pattern `json:"patterns"`
		Guides   []guideEntry       `json:"guides"`
	}{Patterns: patterns, Guides: guides}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}
