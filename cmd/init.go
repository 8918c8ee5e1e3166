package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/autovenv/autovenv/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize autovenv configuration",
	Long:  `Initialize autovenv by creating the configuration directory. This is optional - autovenv will auto-initialize on first use.`,
	RunE:  runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	exists, err := config.Initialized()
	if err != nil {
		return fmt.Errorf("failed to check config: %w", err)
	}

	configDir, err := config.GetConfigDir()
	if err != nil {
		return err
	}

	if exists {
		fmt.Printf("autovenv is already initialized at: %s\n", configDir)
		return nil
	}

	if err := config.EnsureInitialized(configDir); err != nil {
		return err
	}

	fmt.Printf("✓ autovenv initialized at: %s\n", configDir)
	fmt.Println("\nNext: autovenv create <name>")
	fmt.Println("And install the shell hook: eval \"$(autovenv hook --shell zsh)\"")

	return nil
}
