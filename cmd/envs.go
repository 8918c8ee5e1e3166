package cmd

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/autovenv/autovenv/internal/config"
	"github.com/autovenv/autovenv/internal/ui"
	"github.com/autovenv/autovenv/internal/venv"
)

var envsCmd = &cobra.Command{
	Use:     "envs",
	Aliases: []string{"le", "list-envs"},
	Short:   "List environment names",
	Long:    `Display all known environment names and highlight the active one.`,
	RunE:    runEnvs,
}

func init() {
	rootCmd.AddCommand(envsCmd)
}

func runEnvs(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}

	onDisk, err := venv.List(st.EnvsDir)
	if err != nil {
		return err
	}

	bindings, err := config.LoadBindings(st.BindingsPath)
	if err != nil {
		return fmt.Errorf("failed to load bindings: %w", err)
	}

	// Union of environment directories and bound names, so a binding whose
	// environment was deleted out-of-band still shows up.
	seen := make(map[string]bool)
	var names []string
	for _, name := range append(onDisk, bindings.EnvNames()...) {
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	sort.Strings(names)

	active := ""
	if dir := activeEnvDir(); dir != "" && filepath.Dir(filepath.Clean(dir)) == st.EnvsDir {
		active = filepath.Base(filepath.Clean(dir))
	}

	ui.PrintEnvsList(names, active)
	return nil
}
