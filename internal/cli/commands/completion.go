package commands

import (
	"os"

	"github.com/spf13/cobra"
)

// NewCompletionCommand creates the completion command for shell completions
func NewCompletionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion script",
		Long: `Generate shell completion script for guidelint.

To load completions:

Bash:

  $ source <(guidelint completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ guidelint completion bash > /etc/bash_completion.d/guidelint
  # macOS:
  $ guidelint completion bash > $(brew --prefix)/etc/bash_completion.d/guidelint

Zsh:

  $ guidelint completion zsh > "${fpath[1]}/_guidelint"

Fish:

  $ guidelint completion fish | source

PowerShell:

  PS> guidelint completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			shell := args[0]
			root := cmd.Root()

			switch shell {
			case "bash":
				return root.GenBashCompletion(os.Stdout)
			case "zsh":
				return root.GenZshCompletion(os.Stdout)
			case "fish":
				return root.GenFishCompletion(os.Stdout, true)
			case "powershell":
				return root.GenPowerShellCompletionWithDesc(os.Stdout)
			}
			return nil
		},
	}

	return cmd
}
