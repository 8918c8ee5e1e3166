package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/autovenv/autovenv/internal/config"
	"github.com/autovenv/autovenv/internal/reconcile"
	"github.com/autovenv/autovenv/internal/ui"
	"github.com/autovenv/autovenv/internal/venv"
)

var statusCmd = &cobra.Command{
	Use:     "status",
	Aliases: []string{"st"},
	Short:   "Show the environment status for the current directory",
	Long: `Display the current auto-activation status:
- The environment currently active in this shell (if any)
- The binding that matches the current directory
- Whether the two are in sync

This helps you understand what the shell hook will do on the next
directory change.`,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}

	bindings, err := config.LoadBindings(st.BindingsPath)
	if err != nil {
		return fmt.Errorf("failed to load bindings: %w", err)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	active := activeEnvDir()

	fmt.Println()
	fmt.Println("Current Location")
	fmt.Println("────────────────")
	fmt.Printf("  Path: %s\n", cwd)

	fmt.Println()
	fmt.Println("Active Environment")
	fmt.Println("──────────────────")
	if active == "" {
		fmt.Println("  None")
	} else {
		fmt.Printf("  %s (%s)\n", filepath.Base(filepath.Clean(active)), active)
	}

	r := &reconcile.Reconciler{EnvsDir: st.EnvsDir}
	action := r.Evaluate(cwd, active, bindings)

	fmt.Println()
	fmt.Println("Reconciliation")
	fmt.Println("──────────────")

	switch action.Kind {
	case reconcile.KindNoOp:
		fmt.Println("  In sync. Nothing to do.")
	case reconcile.KindActivate:
		fmt.Printf("  Would activate: %s\n", action.EnvName)
		fmt.Printf("  Target: %s\n", action.Target)
		if !venv.Exists(action.Target) {
			ui.Warning(fmt.Sprintf("Environment directory is missing: %s", action.Target))
			fmt.Printf("  Recreate it with: autovenv create %s\n", action.EnvName)
		}
		ui.Info("The shell hook applies this on the next directory change.")
	case reconcile.KindDeactivate:
		fmt.Println("  Would deactivate: no binding matches this directory.")
		ui.Info("The shell hook applies this on the next directory change.")
	}

	fmt.Println()
	return nil
}
