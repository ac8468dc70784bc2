// Package cmd provides the CLI commands for voice-cost.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"voice-cost/core/notify"
	"voice-cost/core/ui"
	"voice-cost/internal/config"
	"voice-cost/internal/errors"
	"voice-cost/internal/logging"
)

// Version is the tool version
const Version = "0.1.0"

var (
	cfgFile string
	verbose bool
	noColor bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "voice-cost",
	Short: "Estimate the cost of a voice automation stack",
	Long: `voice-cost prices a voice/automation stack per minute and in total.

Pick technologies, the number of minutes to price and a margin; voice-cost
sums the per-minute costs, multiplies by the minutes and applies the margin.

Examples:
  voice-cost estimate --tech vapi --tech twilio --minutes 1000 --margin 20
  voice-cost estimate --scenario quote.hcl --format markdown
  voice-cost interactive`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// notices renders session notifications on stderr and remembers whether
// an error was already shown to the user.
var notices = &cliNotifier{}

type cliNotifier struct {
	notify.Recorder
	errorShown bool
}

func (n *cliNotifier) Notify(note notify.Notification) {
	n.Recorder.Notify(note)
	if note.Kind == notify.KindError {
		n.errorShown = true
	}
	ui.NewWriter(os.Stderr, noColor || config.Get().Output.NoColor).Notify(note)
}

// Execute runs the CLI
func Execute() error {
	err := rootCmd.Execute()
	if err != nil && !notices.errorShown {
		fmt.Fprintf(os.Stderr, "Error: %s\n", errors.MessageOf(err))
	}
	logging.Sync()
	return err
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.voice-cost.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(estimateCmd)
	rootCmd.AddCommand(interactiveCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	path := cfgFile
	if path == "" {
		path = config.DefaultPath()
	}

	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}
	config.Set(cfg)

	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "voice-cost version %s\n", Version)
	},
}

func newWriter(cmd *cobra.Command) *ui.Writer {
	w := ui.NewWriter(cmd.OutOrStdout(), noColor || config.Get().Output.NoColor)
	if verbose {
		w.SetVerbosity(2)
	}
	return w
}
