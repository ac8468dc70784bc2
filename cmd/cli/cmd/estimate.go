// Package cmd - estimate command
package cmd

import (
	"github.com/spf13/cobra"

	"voice-cost/core/output"
	"voice-cost/core/ui"
	"voice-cost/internal/config"
)

var (
	estimateFlags quoteFlags
	outputFormat  string
)

// estimateCmd represents the estimate command
var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Calculate the cost of a technology selection",
	Long: `Calculate base cost per minute, cost per minute with margin and total cost.

Values come from the config file, then the scenario file, then flags.

Examples:
  voice-cost estimate --tech vapi,twilio
  voice-cost estimate -t calcom --minutes 500 --margin 0
  voice-cost estimate --scenario quote.hcl --format json`,
	Args: cobra.NoArgs,
	RunE: runEstimate,
}

func init() {
	estimateFlags.register(estimateCmd)
	estimateCmd.Flags().StringVarP(&outputFormat, "format", "f", "", "output format (cli, text, json, markdown)")
}

func runEstimate(cmd *cobra.Command, args []string) error {
	s, err := estimateFlags.buildSession(notices)
	if err != nil {
		return err
	}

	if _, err := s.Calculate(); err != nil {
		return err
	}

	format := outputFormat
	if format == "" {
		format = config.Get().Output.DefaultFormat
	}

	if format == "cli" {
		w := newWriter(cmd)
		ui.ShowTechnologies(w, s.Selection().Technologies())
		b, err := s.Breakdown()
		if err != nil {
			return err
		}
		ui.ShowBreakdown(w, b, false)
		return nil
	}

	// Document formats go through the session so the export
	// notification is raised as in interactive mode.
	return s.Export(output.Format(format), cmd.OutOrStdout())
}
