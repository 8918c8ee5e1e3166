package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/autovenv/autovenv/internal/config"
	"github.com/autovenv/autovenv/internal/ui"
)

var bindingsCmd = &cobra.Command{
	Use:     "bindings",
	Aliases: []string{"lb", "list-bindings"},
	Short:   "List directory bindings",
	Long:    `Display the directory → environment table with a marker for directories that no longer exist.`,
	RunE:    runBindings,
}

func init() {
	rootCmd.AddCommand(bindingsCmd)
}

func runBindings(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}

	bindings, err := config.LoadBindings(st.BindingsPath)
	if err != nil {
		return fmt.Errorf("failed to load bindings: %w", err)
	}

	rows := make([]ui.BindingRow, 0, len(bindings))
	for _, location := range bindings.Locations() {
		name, _ := bindings.EnvFor(location)
		_, statErr := os.Stat(location)
		rows = append(rows, ui.BindingRow{
			Location: location,
			EnvName:  name,
			Exists:   statErr == nil,
		})
	}

	ui.PrintBindingsList(rows)
	return nil
}
