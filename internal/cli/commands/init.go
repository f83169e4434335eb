package commands

import (
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	initForce       bool
	initInteractive bool
	initFormat      string
	initStrict      bool
)

const configFileName = "guidelint.yml"

// initConfig is the shape written to guidelint.yml
type initConfig struct {
	Include []string `yaml:"include"`
	Exclude []string `yaml:"exclude"`
	Strict  bool     `yaml:"strict"`
	Format  string   `yaml:"format"`
}

// NewInitCommand creates the init command
func NewInitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a guidelint.yml in the current directory",
		Long: `Write a starter guidelint.yml configuration file.

With --interactive, prompts for each setting; otherwise the flags and
their defaults are used.`,
		Example: `  guidelint init
  guidelint init --interactive
  guidelint init --format json --strict`,
		RunE: runInit,
	}

	cmd.Flags().BoolVarP(&initInteractive, "interactive", "i", false, "Prompt for each setting")
	cmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing config file")
	cmd.Flags().StringVar(&initFormat, "format", "text", "Default report format (text or json)")
	cmd.Flags().BoolVar(&initStrict, "strict", false, "Escalate warnings to errors by default")

	return cmd
}

func runInit(cmd *cobra.Command, args []string) error {
	successColor := color.New(color.FgGreen, color.Bold)

	if _, err := os.Stat(configFileName); err == nil && !initForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", configFileName)
	}

	cfg := initConfig{
		Include: []string{"**/*.md"},
		Exclude: []string{},
		Strict:  initStrict,
		Format:  initFormat,
	}

	if initInteractive {
		if err := promptConfig(&cfg); err != nil {
			return err
		}
	}

	if cfg.Format != "text" && cfg.Format != "json" {
		return fmt.Errorf("format must be 'text' or 'json', got: %s", cfg.Format)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configFileName, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", configFileName, err)
	}

	successColor.Printf("✓ Created %s\n", configFileName)
	return nil
}

// promptConfig fills the config interactively
func promptConfig(cfg *initConfig) error {
	formatPrompt := &survey.Select{
		Message: "Default report format:",
		Options: []string{"text", "json"},
		Default: cfg.Format,
	}
	if err := survey.AskOne(formatPrompt, &cfg.Format); err != nil {
		return err
	}

	strictPrompt := &survey.Confirm{
		Message: "Treat warnings as errors (strict mode)?",
		Default: cfg.Strict,
	}
	if err := survey.AskOne(strictPrompt, &cfg.Strict); err != nil {
		return err
	}

	var include string
	includePrompt := &survey.Input{
		Message: "Include glob:",
		Default: "**/*.md",
	}
	if err := survey.AskOne(includePrompt, &include, survey.WithValidator(survey.Required)); err != nil {
		return err
	}
	cfg.Include = []string{include}

	var exclude string
	excludePrompt := &survey.Input{
		Message: "Exclude glob (empty for none):",
	}
	if err := survey.AskOne(excludePrompt, &exclude); err != nil {
		return err
	}
	if exclude != "" {
		cfg.Exclude = []string{exclude}
	}

	return nil
}
