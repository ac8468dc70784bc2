package cmd

import (
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"voice-cost/core/catalog"
	"voice-cost/core/notify"
	"voice-cost/core/scenario"
	"voice-cost/core/session"
	"voice-cost/core/types"
	"voice-cost/internal/config"
	"voice-cost/internal/errors"
	"voice-cost/internal/logging"
)

// quoteFlags are the form inputs shared by estimate and export
type quoteFlags struct {
	technologies []string
	callDuration string
	totalMinutes string
	margin       string
	scenarioFile string
}

func (f *quoteFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringSliceVarP(&f.technologies, "tech", "t", nil, "technology id to include (repeatable, comma separated)")
	cmd.Flags().StringVar(&f.callDuration, "duration", "", "average call duration in minutes (informational)")
	cmd.Flags().StringVarP(&f.totalMinutes, "minutes", "m", "", "total minutes to price")
	cmd.Flags().StringVar(&f.margin, "margin", "", "margin percentage, 0-100")
	cmd.Flags().StringVarP(&f.scenarioFile, "scenario", "s", "", "HCL scenario file")
}

// buildSession layers config defaults, the scenario file and flags, in
// that order, onto a new session.
func (f *quoteFlags) buildSession(n notify.Notifier) (*session.Session, error) {
	cfg := config.Get()
	cat := catalog.Default()

	params := cfg.Params()
	techs := cfg.Defaults.Technologies

	if f.scenarioFile != "" {
		sc, err := scenario.LoadFile(f.scenarioFile)
		if err != nil {
			return nil, err
		}
		params = sc.Params(params)
		if len(sc.Technologies) > 0 {
			techs = sc.Technologies
		}
		logging.Debug("scenario loaded", zap.String("path", f.scenarioFile))
	}

	var err error
	if params.CallDuration, err = overrideDecimal(params.CallDuration, f.callDuration, "duration"); err != nil {
		return nil, err
	}
	if params.TotalMinutes, err = overrideDecimal(params.TotalMinutes, f.totalMinutes, "minutes"); err != nil {
		return nil, err
	}
	if params.Margin, err = overrideDecimal(params.Margin, f.margin, "margin"); err != nil {
		return nil, err
	}
	if len(f.technologies) > 0 {
		techs = f.technologies
	}

	s := session.New(cat,
		session.WithNotifier(n),
		session.WithVersion(Version),
	)
	if err := s.SetParams(params); err != nil {
		return nil, err
	}

	ids := make([]types.TechnologyID, len(techs))
	for i, t := range techs {
		ids[i] = types.TechnologyID(t)
	}
	if err := s.Select(ids...); err != nil {
		return nil, err
	}
	return s, nil
}

func overrideDecimal(current decimal.Decimal, raw, flag string) (decimal.Decimal, error) {
	if raw == "" {
		return current, nil
	}
	v, err := decimal.NewFromString(raw)
	if err != nil {
		return current, errors.Wrapf(errors.TypeInput, err, "--%s: %q is not a number", flag, raw)
	}
	return v, nil
}
