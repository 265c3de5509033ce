package cmd

import (
	"github.com/spf13/cobra"
)

// NewConfigCmd creates the config command group.
func NewConfigCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "config",
		Short: "Manage project configuration",
		Long: `Commands for creating and validating the project's .filament-page.yaml.

Configuration values are resolved with precedence:
  environment (FILAMENT_PAGE_*) > project .env > config file > defaults`,
	}

	c.AddCommand(NewConfigInitCmd())
	c.AddCommand(NewConfigVetCmd())

	return c
}
