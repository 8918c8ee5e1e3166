package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "autovenv",
	Short: "Automatic Python virtualenv activation for your shell",
	Long: `autovenv keeps a mapping from project directories to named Python
virtual environments and activates the right one as you cd around.

Install the shell hook once:
  eval "$(autovenv hook --shell zsh)"   # in ~/.zshrc

Then create an environment bound to a project:
  cd ~/code/myproj
  autovenv create myproj`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}
