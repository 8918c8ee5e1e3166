package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/autovenv/autovenv/internal/config"
	"github.com/autovenv/autovenv/internal/reconcile"
	"github.com/autovenv/autovenv/internal/shell"
	"github.com/autovenv/autovenv/internal/venv"
)

var activateFlagShell string

var activateCmd = &cobra.Command{
	Use:   "activate",
	Short: "Print the (de)activation command for the current directory",
	Long: `Evaluate the bindings against the current directory and print the
shell command that reconciles the active environment, if any change is
needed. Meant to be eval'd by the shell hook, not run directly:

  eval "$(autovenv activate --shell zsh)"`,
	RunE: runActivate,
}

func init() {
	rootCmd.AddCommand(activateCmd)
	activateCmd.Flags().StringVarP(&activateFlagShell, "shell", "s", "", "Shell dialect to emit (bash, zsh, fish)")
}

func runActivate(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}

	sh, err := pickShell(activateFlagShell, st)
	if err != nil {
		return err
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	bindings, err := config.LoadBindings(st.BindingsPath)
	if err != nil {
		// Corruption goes to stderr; the hook discards it, so the shell
		// stays usable while the user notices on direct invocation.
		return fmt.Errorf("failed to load bindings: %w", err)
	}

	r := &reconcile.Reconciler{EnvsDir: st.EnvsDir}
	action := r.Evaluate(cwd, activeEnvDir(), bindings)

	switch action.Kind {
	case reconcile.KindActivate:
		fmt.Print(shell.Activate(venv.ActivationScript(action.Target), sh))
	case reconcile.KindDeactivate:
		fmt.Print(shell.Deactivate(sh))
	}
	return nil
}

// pickShell resolves the shell dialect from the flag or settings
func pickShell(flagValue string, st *store) (shell.Type, error) {
	name := flagValue
	if name == "" {
		name = st.Settings.Shell
	}
	return shell.ParseType(name)
}
