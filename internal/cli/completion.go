package cli

import (
	"os"

	"github.com/spf13/cobra"
)

// completionCommand emits shell completion scripts for the adproof binary.
func (c *CLI) completionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "completion <bash|zsh|fish|powershell>",
		Short: "Generate a shell completion script",
		Long: `Generate a completion script for your shell.

The script is written to stdout; install it wherever your shell loads
completions from. Examples:

  # bash, current session only
  source <(adproof completion bash)

  # bash, persistent (Linux)
  adproof completion bash > /etc/bash_completion.d/adproof

  # zsh
  adproof completion zsh > "${fpath[1]}/_adproof"

  # fish
  adproof completion fish > ~/.config/fish/completions/adproof.fish

  # powershell
  adproof completion powershell | Out-String | Invoke-Expression`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := cmd.Root()
			switch args[0] {
			case "bash":
				return root.GenBashCompletion(os.Stdout)
			case "zsh":
				return root.GenZshCompletion(os.Stdout)
			case "fish":
				return root.GenFishCompletion(os.Stdout, true)
			default:
				return root.GenPowerShellCompletionWithDesc(os.Stdout)
			}
		},
	}
}
