package commands

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/guidelint/guidelint/internal/cache"
	"github.com/guidelint/guidelint/internal/checker"
	"github.com/guidelint/guidelint/internal/cli/config"
	"github.com/guidelint/guidelint/internal/report"
	"github.com/guidelint/guidelint/internal/watch"
)

var (
	watchVerbose bool
	watchNoColor bool
	watchStrict  bool
)

// NewWatchCommand creates the watch command
func NewWatchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch <root-dir>",
		Short: "Re-check the catalog on every change",
		Long: `Watch the corpus for changes and re-run validation automatically.

Changed files are re-extracted; unchanged files come from a content-hash
cache, so re-checks stay fast on large corpora. Press Ctrl+C to stop.`,
		Args: cobra.ExactArgs(1),
		RunE: runWatch,
	}

	cmd.Flags().BoolVarP(&watchVerbose, "verbose", "v", false, "Show detailed progress")
	cmd.Flags().BoolVar(&watchNoColor, "no-color", false, "Disable colored output")
	cmd.Flags().BoolVar(&watchStrict, "strict", false, "Escalate warnings to errors in the summary")

	return cmd
}

func runWatch(cmd *cobra.Command, args []string) error {
	root := args[0]

	cfg, err := config.Load(root)
	if err != nil {
		return err
	}

	logger, err := newLogger(watchVerbose)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	ec := cache.New()
	chk := checker.New(checker.Options{
		Include:   cfg.Include,
		Exclude:   cfg.Exclude,
		Strengths: strengthsFromConfig(cfg),
	}, logger).WithCache(ec)

	runOnce := func() error {
		result, err := chk.Check(root)
		if err != nil {
			return err
		}
		report.WriteTerminal(os.Stdout, result.Report, report.TerminalOptions{NoColor: watchNoColor})
		return nil
	}

	// Initial check before entering the watch loop
	if err := runOnce(); err != nil {
		return err
	}

	watcher, err := watch.NewCorpusWatcher(root, ec, logger, func(files []string) error {
		fmt.Println()
		color.New(color.FgCyan).Printf("↻ %d file(s) changed, re-checking...\n\n", len(files))
		return runOnce()
	})
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}

	if err := watcher.Start(); err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	fmt.Println()
	color.New(color.FgYellow).Println("Watching for changes. Press Ctrl+C to stop.")

	<-sigChan

	fmt.Println("\nShutting down...")
	if err := watcher.Stop(); err != nil {
		return fmt.Errorf("error stopping watcher: %w", err)
	}

	return nil
}
