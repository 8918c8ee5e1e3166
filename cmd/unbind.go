package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/autovenv/autovenv/internal/config"
	"github.com/autovenv/autovenv/internal/ui"
	"github.com/autovenv/autovenv/internal/venv"
)

var unbindFlagYes bool

var unbindCmd = &cobra.Command{
	Use:     "unbind <name-or-path>",
	Aliases: []string{"rm", "remove"},
	Short:   "Remove a binding, or an environment and all its bindings",
	Long: `Remove bindings by directory or by environment name.

Given a bound directory, only that binding is removed; the environment and
any other directories bound to it stay.

Given an environment name, every directory bound to it is unbound and the
environment directory itself is deleted (after confirmation).

Examples:
  autovenv unbind ~/code/myproj   # Unbind one directory
  autovenv unbind myproj          # Delete env + all its bindings`,
	Args: cobra.ExactArgs(1),
	RunE: runUnbind,
}

func init() {
	rootCmd.AddCommand(unbindCmd)
	unbindCmd.Flags().BoolVarP(&unbindFlagYes, "yes", "y", false, "Skip confirmation prompt")
}

func runUnbind(cmd *cobra.Command, args []string) error {
	target := args[0]

	st, err := openStore()
	if err != nil {
		return err
	}

	bindings, err := config.LoadBindings(st.BindingsPath)
	if err != nil {
		return fmt.Errorf("failed to load bindings: %w", err)
	}

	// A bound location takes priority over an environment that happens to
	// share its name.
	if location, err := config.NormalizeLocation(target); err == nil {
		if name, ok := bindings.EnvFor(location); ok {
			return unbindLocation(st, bindings, location, name)
		}
	}

	envDir := filepath.Join(st.EnvsDir, target)
	if len(bindings.LocationsFor(target)) > 0 || venv.Exists(envDir) {
		return unbindEnv(st, bindings, target, envDir)
	}

	return fmt.Errorf("'%s' is neither a bound directory nor an environment name\nSee: autovenv bindings", target)
}

func unbindLocation(st *store, bindings config.Bindings, location, name string) error {
	bindings.RemoveLocation(location)
	if err := config.SaveBindings(st.BindingsPath, bindings); err != nil {
		return fmt.Errorf("failed to save bindings: %w", err)
	}

	ui.Success(fmt.Sprintf("Unbound %s (was '%s')", location, name))
	if remaining := bindings.LocationsFor(name); len(remaining) > 0 {
		ui.Info(fmt.Sprintf("Environment '%s' is still bound to %d other directories.", name, len(remaining)))
	} else {
		ui.Info(fmt.Sprintf("Environment '%s' has no bindings left. Delete it with: autovenv unbind %s", name, name))
	}
	return nil
}

func unbindEnv(st *store, bindings config.Bindings, name, envDir string) error {
	locations := bindings.LocationsFor(name)

	if !unbindFlagYes {
		confirmed, err := ui.PromptConfirmation(
			fmt.Sprintf("Delete environment '%s' and its %d binding(s)?", name, len(locations)))
		if err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("Cancelled")
			return nil
		}
	}

	if removed := bindings.RemoveEnv(name); removed > 0 {
		if err := config.SaveBindings(st.BindingsPath, bindings); err != nil {
			return fmt.Errorf("failed to save bindings: %w", err)
		}
		for _, location := range locations {
			ui.Success(fmt.Sprintf("Unbound %s", location))
		}
	}

	if venv.Exists(envDir) {
		if err := venv.Remove(envDir); err != nil {
			return err
		}
		ui.Success(fmt.Sprintf("Deleted environment directory %s", envDir))
	}

	ui.Success(fmt.Sprintf("Environment '%s' removed", name))
	return nil
}
