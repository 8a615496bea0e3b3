package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"semvet/pkg/api"
)

var parseCmd = &cobra.Command{
	Use:   "parse <snapshot>",
	Short: "Validate an API snapshot and display its normalized form",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		snap, err := api.ParseFile(args[0])
		if err != nil {
			return err
		}

		output, err := json.MarshalIndent(snap, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling output: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), string(output))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
}
