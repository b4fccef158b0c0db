// Package cli provides the command-line interface for mosaic.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/mosaic/internal/config"
)

// NewRootCmd creates the root command for mosaic.
func NewRootCmd(version, commit, buildDate string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "mosaic",
		Short: "A tiling split-pane layout engine",
		Long: `An interactive demo of a persistent binary split layout tree:
split, close, move, resize, expand and balance panes from the keyboard.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runDemo()
		},
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("mosaic %s\n", version)
			fmt.Printf("commit: %s\n", commit)
			fmt.Printf("built: %s\n", buildDate)
		},
	}

	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the interactive layout demo",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runDemo()
		},
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and manage configuration",
	}

	configPathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print the configuration file in use",
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := config.Init(); err != nil {
				return fmt.Errorf("failed to initialize config: %w", err)
			}
			file, err := config.GetConfigFile()
			if err != nil {
				return err
			}
			fmt.Println(file)
			return nil
		},
	}

	configSchemaCmd := &cobra.Command{
		Use:   "schema",
		Short: "Generate the JSON schema for the configuration file",
		RunE: func(_ *cobra.Command, _ []string) error {
			file, err := config.WriteSchemaFile()
			if err != nil {
				return fmt.Errorf("failed to write schema: %w", err)
			}
			fmt.Printf("schema written to %s\n", file)
			return nil
		},
	}

	configCmd.AddCommand(configPathCmd, configSchemaCmd)
	rootCmd.AddCommand(versionCmd, demoCmd, configCmd)

	return rootCmd
}
