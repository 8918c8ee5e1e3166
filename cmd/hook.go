package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/autovenv/autovenv/internal/shell"
)

var hookFlagShell string

var hookCmd = &cobra.Command{
	Use:   "hook",
	Short: "Print the shell integration snippet",
	Long: `Print the snippet that hooks directory changes and keeps the active
environment in sync. Add it to your shell's rc file:

  # ~/.zshrc
  eval "$(autovenv hook --shell zsh)"

  # ~/.bashrc
  eval "$(autovenv hook --shell bash)"

  # ~/.config/fish/config.fish
  autovenv hook --shell fish | source`,
	RunE: runHook,
}

func init() {
	rootCmd.AddCommand(hookCmd)
	hookCmd.Flags().StringVarP(&hookFlagShell, "shell", "s", "", "Shell dialect to emit (bash, zsh, fish)")
}

func runHook(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}

	sh, err := pickShell(hookFlagShell, st)
	if err != nil {
		return err
	}

	fmt.Print(shell.HookSnippet(sh))
	return nil
}
