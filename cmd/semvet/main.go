package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "semvet",
	Short: "Semantic-version vetting for library APIs",
	Long: `Semvet compares two versions of a library's public API surface,
classifies every change as breaking or non-breaking, and reports the
minimal version bump the changes require.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
