// Package cli provides the command-line interface for the combo builder.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/merchkit/combobuilder/internal/config"
)

// NewRootCmd creates the root command.
func NewRootCmd(version, commit, buildDate string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "combobuilder",
		Short: "Combo builder widget administration",
		Long:  `Configure the combo builder storefront widget, preview it per device, manage saved templates and discount codes.`,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if err := config.Init(); err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("combobuilder %s\n", version)
			fmt.Printf("commit: %s\n", commit)
			fmt.Printf("built: %s\n", buildDate)
		},
	}

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(NewServeCmd())
	rootCmd.AddCommand(NewConfigCmd())
	rootCmd.AddCommand(NewTemplatesCmd())
	rootCmd.AddCommand(NewDiscountsCmd())

	return rootCmd
}
