package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/autovenv/autovenv/internal/config"
	"github.com/autovenv/autovenv/internal/ui"
	"github.com/autovenv/autovenv/internal/venv"
)

var (
	createFlagPython string
	createFlagPath   string
)

var createCmd = &cobra.Command{
	Use:     "create [name]",
	Aliases: []string{"c", "new"},
	Short:   "Create a new environment and bind it to a directory",
	Long: `Create a new virtual environment under the autovenv root and bind it
to a project directory. Entering the directory then activates the
environment automatically (once the shell hook is installed).`,
	Args: cobra.MaximumNArgs(1),
	Example: `  # Interactive mode: prompts for the name, binds the current directory
  autovenv create

  # Name and defaults: python interpreter from settings, current directory
  autovenv create myproj

  # Explicit interpreter and project path
  autovenv create myproj --python python3.12 --path ~/code/myproj`,
	RunE: runCreate,
}

func init() {
	rootCmd.AddCommand(createCmd)

	createCmd.Flags().StringVar(&createFlagPython, "python", "", "Python interpreter to build the environment with")
	createCmd.Flags().StringVarP(&createFlagPath, "path", "p", "", "Directory to bind (default: current directory)")
}

func runCreate(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}

	var name string
	if len(args) == 1 {
		name = args[0]
	} else {
		name, err = ui.PromptEnvName()
		if err != nil {
			return fmt.Errorf("failed to get environment name: %w", err)
		}
	}

	if !ui.IsValidEnvName(name) {
		return fmt.Errorf("invalid environment name '%s': only letters, digits, '.', '_' and '-' are allowed", name)
	}

	envDir := filepath.Join(st.EnvsDir, name)
	if venv.Exists(envDir) {
		return fmt.Errorf("environment '%s' already exists\nBind it instead: autovenv bind %s", name, name)
	}

	python := createFlagPython
	if python == "" {
		python = st.Settings.Python
	}
	if !venv.PythonAvailable(python) {
		return fmt.Errorf("interpreter '%s' not found. Use --python to pick another", python)
	}

	location, err := resolveLocation(createFlagPath)
	if err != nil {
		return err
	}

	bindings, err := config.LoadBindings(st.BindingsPath)
	if err != nil {
		return fmt.Errorf("failed to load bindings: %w", err)
	}

	fmt.Printf("Creating environment '%s' with %s...\n", name, python)
	if err := venv.Create(python, envDir); err != nil {
		return err
	}

	bindings.Set(location, name)
	// A save failure here leaves the freshly built environment unbound on
	// disk; it can be bound later with 'autovenv bind'.
	if err := config.SaveBindings(st.BindingsPath, bindings); err != nil {
		return fmt.Errorf("environment created but binding not saved: %w", err)
	}

	ui.Success(fmt.Sprintf("Environment '%s' created", name))
	fmt.Printf("  Env:  %s\n", envDir)
	fmt.Printf("  Path: %s\n", location)
	fmt.Println("\ncd into the directory to activate it.")

	return nil
}
