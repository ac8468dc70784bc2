// Package cmd - catalog command
package cmd

import (
	"github.com/spf13/cobra"

	"voice-cost/core/catalog"
	"voice-cost/core/ui"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the technologies that can be priced",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ui.ShowTechnologies(newWriter(cmd), catalog.Default().Technologies())
	},
}
