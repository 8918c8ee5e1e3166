package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/autovenv/autovenv/internal/config"
	"github.com/autovenv/autovenv/internal/ui"
	"github.com/autovenv/autovenv/internal/venv"
)

var doctorFix bool

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose configuration issues",
	Long: `Check autovenv configuration health and diagnose common issues.

Runs checks on:
- Bindings file validity
- Settings file validity
- Environment directories referenced by bindings
- Bound directories still existing on disk
- Python interpreter availability

Examples:
  autovenv doctor          # Run diagnostics
  autovenv doctor --fix    # Remove bindings whose directory is gone`,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
	doctorCmd.Flags().BoolVarP(&doctorFix, "fix", "f", false, "Remove bindings for directories that no longer exist")
}

type checkResult struct {
	passed  bool
	message string
	fix     string // Suggested fix command
}

func runDoctor(cmd *cobra.Command, args []string) error {
	fmt.Println()
	fmt.Println("Checking autovenv configuration...")
	fmt.Println()

	errors := 0
	warnings := 0

	st, err := openStore()
	if err != nil {
		ui.Error(fmt.Sprintf("Cannot continue: %v", err))
		return nil
	}

	fmt.Println("Config")
	fmt.Println("──────")

	bindings, loadErr := config.LoadBindings(st.BindingsPath)
	printCheckResult(checkResult{
		passed:  loadErr == nil,
		message: fmt.Sprintf("Bindings file parses (%s)", st.BindingsPath),
		fix:     "",
	})
	if loadErr != nil {
		errors++
		fmt.Println()
		ui.Error(fmt.Sprintf("Cannot continue: %v", loadErr))
		return nil
	}

	fmt.Println()
	fmt.Println("Interpreter")
	fmt.Println("───────────")

	pyResult := checkResult{
		passed:  venv.PythonAvailable(st.Settings.Python),
		message: fmt.Sprintf("Interpreter '%s' is available", st.Settings.Python),
		fix:     "Set 'python' in settings.toml or install it",
	}
	printCheckResult(pyResult)
	if !pyResult.passed {
		warnings++
	}

	fmt.Println()
	fmt.Println("Environments")
	fmt.Println("────────────")

	for _, name := range bindings.EnvNames() {
		envDir := filepath.Join(st.EnvsDir, name)
		r := checkResult{
			passed:  venv.Exists(envDir),
			message: fmt.Sprintf("Environment '%s' exists", name),
			fix:     fmt.Sprintf("autovenv create %s", name),
		}
		printCheckResult(r)
		if !r.passed {
			warnings++
		}
	}
	if len(bindings) == 0 {
		fmt.Println("  No bindings to check.")
	}

	fmt.Println()
	fmt.Println("Bound Directories")
	fmt.Println("─────────────────")

	stale := 0
	for _, location := range bindings.Locations() {
		_, statErr := os.Stat(location)
		r := checkResult{
			passed:  statErr == nil,
			message: fmt.Sprintf("%s exists", location),
			fix:     fmt.Sprintf("autovenv unbind %s", location),
		}
		printCheckResult(r)
		if !r.passed {
			warnings++
			stale++
			if doctorFix {
				bindings.RemoveLocation(location)
			}
		}
	}
	if len(bindings) == 0 && stale == 0 {
		fmt.Println("  No bindings to check.")
	}

	if doctorFix && stale > 0 {
		if err := config.SaveBindings(st.BindingsPath, bindings); err != nil {
			return fmt.Errorf("failed to save bindings: %w", err)
		}
		fmt.Println()
		ui.Success(fmt.Sprintf("Removed %d stale binding(s)", stale))
	}

	fmt.Println()
	if errors == 0 && warnings == 0 {
		ui.Success("Everything looks good!")
	} else {
		fmt.Printf("%d error(s), %d warning(s)\n", errors, warnings)
	}
	fmt.Println()

	return nil
}

func printCheckResult(r checkResult) {
	if r.passed {
		fmt.Printf("  ✓ %s\n", r.message)
		return
	}
	fmt.Printf("  ✗ %s\n", r.message)
	if r.fix != "" {
		fmt.Printf("    Fix: %s\n", r.fix)
	}
}
