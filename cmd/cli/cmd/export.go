// Package cmd - export command
package cmd

import (
	"bytes"
	"os"

	"github.com/spf13/cobra"

	"voice-cost/core/output"
	"voice-cost/internal/errors"
)

var (
	exportFlags quoteFlags
	exportOut   string
)

var exportCmd = &cobra.Command{
	Use:   "export <format>",
	Short: "Calculate and export a quote document",
	Long: `Calculate a quote and write it as a document.

Formats: text, json, markdown, pdf. PDF generation is not available yet.

Examples:
  voice-cost export markdown -t vapi,twilio --out quote.md
  voice-cost export json --scenario quote.hcl`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"text", "json", "markdown", "pdf"},
	RunE:      runExport,
}

func init() {
	exportFlags.register(exportCmd)
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file (default stdout)")
}

func runExport(cmd *cobra.Command, args []string) error {
	s, err := exportFlags.buildSession(notices)
	if err != nil {
		return err
	}
	if _, err := s.Calculate(); err != nil {
		return err
	}

	if exportOut == "" {
		return s.Export(output.Format(args[0]), cmd.OutOrStdout())
	}

	// Render first so a failed export leaves no file behind.
	var buf bytes.Buffer
	if err := s.Export(output.Format(args[0]), &buf); err != nil {
		return err
	}
	if err := os.WriteFile(exportOut, buf.Bytes(), 0644); err != nil {
		return errors.Export("write "+exportOut, err)
	}
	return nil
}
