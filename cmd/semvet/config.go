package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"semvet/pkg/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage semvet configuration",
	Long:  `Manage the semvet.toml configuration file controlling bump policy and output.`,
}

var configInitCmd = &cobra.Command{
	Use:   "init [file]",
	Short: "Generate a default configuration file",
	Long: `Generate a semvet.toml with the default settings. If no file is
specified, creates semvet.toml in the current directory.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfigInit,
}

var configShowCmd = &cobra.Command{
	Use:   "show [file]",
	Short: "Display the effective configuration",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runConfigShow,
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	rootCmd.AddCommand(configCmd)
}

const defaultConfigContent = `# semvet configuration

# Treat the minor component of 0.x versions as the breaking slot.
zerover = true

# Output coloring: auto, always or never.
color = "auto"

# Default output format: text or json.
format = "text"
`

func runConfigInit(cmd *cobra.Command, args []string) error {
	outputFile := config.DefaultFileName
	if len(args) > 0 {
		outputFile = args[0]
	}

	if _, err := os.Stat(outputFile); err == nil {
		return fmt.Errorf("configuration file %s already exists", outputFile)
	}

	if err := os.WriteFile(outputFile, []byte(defaultConfigContent), 0644); err != nil {
		return fmt.Errorf("writing configuration file: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created configuration file: %s\n", outputFile)
	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	path := ""
	if len(args) > 0 {
		path = args[0]
	}

	cfg, err := config.LoadOrDefault(path)
	if err != nil {
		return err
	}

	return toml.NewEncoder(cmd.OutOrStdout()).Encode(cfg)
}
