package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/autovenv/autovenv/internal/config"
	"github.com/autovenv/autovenv/internal/ui"
	"github.com/autovenv/autovenv/internal/venv"
)

var bindFlagPath string

var bindCmd = &cobra.Command{
	Use:     "bind <name>",
	Aliases: []string{"b", "add"},
	Short:   "Bind an existing environment to a directory",
	Long: `Bind an existing environment to a project directory. One environment
can back any number of directories.

Examples:
  autovenv bind myproj                   # Bind to current directory
  autovenv bind myproj --path ~/code/x   # Bind to specific directory`,
	Args: cobra.ExactArgs(1),
	RunE: runBind,
}

func init() {
	rootCmd.AddCommand(bindCmd)
	bindCmd.Flags().StringVarP(&bindFlagPath, "path", "p", "", "Directory to bind (default: current directory)")
}

func runBind(cmd *cobra.Command, args []string) error {
	name := args[0]

	st, err := openStore()
	if err != nil {
		return err
	}

	envDir := filepath.Join(st.EnvsDir, name)
	if !venv.Exists(envDir) {
		ui.Warning(fmt.Sprintf("Environment '%s' does not exist under %s", name, st.EnvsDir))
		fmt.Printf("\nCreate it with: autovenv create %s\n", name)
		return nil
	}

	location, err := resolveLocation(bindFlagPath)
	if err != nil {
		return err
	}

	bindings, err := config.LoadBindings(st.BindingsPath)
	if err != nil {
		return fmt.Errorf("failed to load bindings: %w", err)
	}

	if previous, ok := bindings.EnvFor(location); ok {
		if previous == name {
			ui.Info(fmt.Sprintf("Directory already bound to '%s'. No changes needed.", name))
			return nil
		}
		ui.Warning(fmt.Sprintf("Rebinding from '%s' to '%s'", previous, name))
	}

	bindings.Set(location, name)
	if err := config.SaveBindings(st.BindingsPath, bindings); err != nil {
		return fmt.Errorf("failed to save bindings: %w", err)
	}

	ui.Success(fmt.Sprintf("Bound directory to '%s'", name))
	fmt.Printf("  Path: %s\n", location)
	fmt.Printf("  Env:  %s\n", envDir)

	return nil
}
