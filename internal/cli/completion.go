package cli

import (
	"github.com/spf13/cobra"
)

// completionCommand creates the completion command. Scripts are written
// to the CLI output so they can be redirected or sourced.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for noticegen.

To load completions:

Bash:
  $ source <(noticegen completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ noticegen completion bash > /etc/bash_completion.d/noticegen
  # macOS:
  $ noticegen completion bash > $(brew --prefix)/etc/bash_completion.d/noticegen

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ noticegen completion zsh > "${fpath[1]}/_noticegen"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ noticegen completion fish | source

  # To load completions for each session, execute once:
  $ noticegen completion fish > ~/.config/fish/completions/noticegen.fish

PowerShell:
  PS> noticegen completion powershell | Out-String | Invoke-Expression

  # To load completions for every new session, run:
  PS> noticegen completion powershell > noticegen.ps1
  # and source this file from your PowerShell profile.
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(c.Out)
			case "zsh":
				return cmd.Root().GenZshCompletion(c.Out)
			case "fish":
				return cmd.Root().GenFishCompletion(c.Out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(c.Out)
			}
			return nil
		},
	}

	return cmd
}
