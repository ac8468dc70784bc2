// Package cmd - interactive command
package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"voice-cost/core/catalog"
	"voice-cost/core/session"
	"voice-cost/core/types"
	"voice-cost/core/ui"
	"voice-cost/internal/config"
)

var interactiveCmd = &cobra.Command{
	Use:     "interactive",
	Aliases: []string{"form", "i"},
	Short:   "Edit inputs and calculate step by step",
	Long: `Start an interactive session reading commands from stdin.

Toggle technologies, change duration, minutes and margin, calculate and
export, one command per line. Type 'help' inside the session for the list.`,
	Args: cobra.NoArgs,
	RunE: runInteractive,
}

func runInteractive(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg := config.Get()
	r := ui.NewRunner(newWriter(cmd), catalog.Default(), session.WithVersion(Version))
	if err := r.Session().SetParams(cfg.Params()); err != nil {
		return err
	}

	ids := make([]types.TechnologyID, len(cfg.Defaults.Technologies))
	for i, t := range cfg.Defaults.Technologies {
		ids[i] = types.TechnologyID(t)
	}
	if err := r.Session().Select(ids...); err != nil {
		return err
	}

	if err := r.Run(ctx, cmd.InOrStdin()); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}
