package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"semvet/pkg/api"
	"semvet/pkg/config"
	"semvet/pkg/renderer"
	"semvet/pkg/report"
)

var compareCmd = &cobra.Command{
	Use:   "compare --old <old-snapshot> --new <new-snapshot>",
	Short: "Compare two API snapshots and report the required version bump",
	Long: `Performs a semantic comparison between two extracted API snapshots.
Every changed declaration is classified as breaking or non-breaking and the
minimal semver bump is derived from the old snapshot's declared version.

The command fails when breaking changes are found and the new snapshot's
declared version does not cover the required bump.`,
	RunE: runCompare,
}

var (
	compareOldFile    string
	compareNewFile    string
	compareFormat     string
	compareConfigFile string
)

func init() {
	compareCmd.Flags().StringVar(&compareOldFile, "old", "", "Path to the old API snapshot")
	compareCmd.Flags().StringVar(&compareNewFile, "new", "", "Path to the new API snapshot")
	compareCmd.Flags().StringVar(&compareFormat, "format", "", "Output format: text, json (default from config)")
	compareCmd.Flags().StringVar(&compareConfigFile, "config", "", "Path to semvet.toml (default: ./semvet.toml if present)")

	compareCmd.MarkFlagRequired("old")
	compareCmd.MarkFlagRequired("new")

	rootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadOrDefault(compareConfigFile)
	if err != nil {
		return err
	}

	format := cfg.Format
	if compareFormat != "" {
		format = compareFormat
	}

	oldSnap, err := api.ParseFile(compareOldFile)
	if err != nil {
		return err
	}

	newSnap, err := api.ParseFile(compareNewFile)
	if err != nil {
		return err
	}

	rpt, err := report.Build(oldSnap, newSnap, report.Policy{ZeroVer: cfg.ZeroVer})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	switch format {
	case "json":
		if err := renderer.RenderJSON(out, rpt); err != nil {
			return err
		}
	case "text":
		r := renderer.New(out, useColor(cfg.Color))
		if err := r.Render(rpt); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported format: %s (supported: text, json)", format)
	}

	// The new snapshot's declared version decides the exit status: a
	// breaking diff is fine as long as the bump covers it.
	if newSnap.Version == "" {
		return nil
	}

	ok, err := rpt.Satisfies(newSnap.Version)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("declared version %s does not satisfy the required bump to %s",
			newSnap.Version, rpt.Recommended)
	}

	return nil
}

func useColor(mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		// color.NoColor already folds in TTY detection and NO_COLOR.
		return !color.NoColor
	}
}
