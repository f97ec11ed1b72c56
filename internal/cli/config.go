package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/merchkit/combobuilder/internal/config"
)

// NewConfigCmd creates the config command group.
func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the application configuration",
	}

	pathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print the configuration file and directory locations",
		RunE: func(_ *cobra.Command, _ []string) error {
			configFile, err := config.GetConfigFile()
			if err != nil {
				return err
			}
			xdgDirs, err := config.GetXDGDirs()
			if err != nil {
				return err
			}

			fmt.Println("Config file:", configFile)
			fmt.Println("Config dir: ", xdgDirs.ConfigHome)
			fmt.Println("Data dir:   ", xdgDirs.DataHome)
			fmt.Println("State dir:  ", xdgDirs.StateHome)
			return nil
		},
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as JSON",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg := config.Get()
			// Never print the admin token.
			redacted := *cfg
			if redacted.Shopify.AccessToken != "" {
				redacted.Shopify.AccessToken = "<redacted>"
			}

			data, err := json.MarshalIndent(&redacted, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(data))
			return nil
		},
	}

	cmd.AddCommand(pathCmd)
	cmd.AddCommand(showCmd)
	return cmd
}
