// Package session holds the state of one interactive cost form: the
// technology selection, the numeric inputs and the last result.
//
// A Session is owned by a single user and is not safe for concurrent use.
package session

import (
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"voice-cost/core/catalog"
	"voice-cost/core/cost"
	"voice-cost/core/notify"
	"voice-cost/core/output"
	"voice-cost/core/presentation"
	"voice-cost/core/selection"
	"voice-cost/core/types"
	"voice-cost/internal/errors"
	"voice-cost/internal/logging"
)

// Session is the form state
type Session struct {
	catalog   *catalog.Catalog
	selection selection.Selection
	params    types.Params
	result    *types.Result

	// taken at the last successful calculation, for Stale
	resultSelection selection.Selection

	notifier notify.Notifier
	formats  *output.Registry
	version  string
	now      func() time.Time
	newQuote func() string
	log      *zap.Logger
}

// Option configures a Session
type Option func(*Session)

// WithNotifier sets where notifications go
func WithNotifier(n notify.Notifier) Option {
	return func(s *Session) { s.notifier = n }
}

// WithParams sets the starting parameters
func WithParams(p types.Params) Option {
	return func(s *Session) { s.params = p }
}

// WithFormats sets the export formatter registry
func WithFormats(r *output.Registry) Option {
	return func(s *Session) { s.formats = r }
}

// WithVersion sets the version stamped on exported documents
func WithVersion(v string) Option {
	return func(s *Session) { s.version = v }
}

// WithClock replaces time.Now
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// WithQuoteIDs replaces the quote ID generator
func WithQuoteIDs(gen func() string) Option {
	return func(s *Session) { s.newQuote = gen }
}

// New creates a session over c with default parameters and nothing selected
func New(c *catalog.Catalog, opts ...Option) *Session {
	s := &Session{
		catalog:   c,
		selection: selection.New(c),
		params:    types.DefaultParams(),
		notifier:  notify.Discard,
		formats:   output.DefaultRegistry(),
		now:       time.Now,
		newQuote:  func() string { return uuid.NewString() },
		log:       logging.Named("session"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Catalog returns the catalog the session was built on
func (s *Session) Catalog() *catalog.Catalog {
	return s.catalog
}

// Selection returns the current selection
func (s *Session) Selection() selection.Selection {
	return s.selection
}

// Params returns the current parameters
func (s *Session) Params() types.Params {
	return s.params
}

// Result returns a copy of the last successful result, or nil
func (s *Session) Result() *types.Result {
	return s.result.Clone()
}

// Toggle flips the selection of id. Unknown ids are ignored.
func (s *Session) Toggle(id types.TechnologyID) {
	if !s.catalog.Has(id) {
		s.log.Debug("toggle ignored, unknown technology", zap.String("id", string(id)))
	}
	s.selection = s.selection.Toggle(id)
}

// Select marks ids as selected. Unknown ids are a not-found error and
// leave the selection unchanged.
func (s *Session) Select(ids ...types.TechnologyID) error {
	for _, id := range ids {
		if !s.catalog.Has(id) {
			return errors.NotFound("technology", string(id))
		}
	}
	s.selection = s.selection.Select(ids...)
	return nil
}

// ClearSelection deselects everything
func (s *Session) ClearSelection() {
	s.selection = s.selection.Clear()
}

// SetParams validates and applies all parameters at once
func (s *Session) SetParams(p types.Params) error {
	if err := ValidateParams(p); err != nil {
		return s.reject(err)
	}
	s.params = p
	return nil
}

// SetCallDuration sets the average call duration in minutes
func (s *Session) SetCallDuration(v decimal.Decimal) error {
	if err := validateCallDuration(v); err != nil {
		return s.reject(err)
	}
	s.params.CallDuration = v
	return nil
}

// SetTotalMinutes sets the volume to price
func (s *Session) SetTotalMinutes(v decimal.Decimal) error {
	if err := validateTotalMinutes(v); err != nil {
		return s.reject(err)
	}
	s.params.TotalMinutes = v
	return nil
}

// SetMargin sets the markup percentage
func (s *Session) SetMargin(v decimal.Decimal) error {
	if err := validateMargin(v); err != nil {
		return s.reject(err)
	}
	s.params.Margin = v
	return nil
}

func (s *Session) reject(err error) error {
	s.log.Warn("input rejected", zap.Error(err))
	s.notifier.Notify(notify.Error(errors.MessageOf(err)))
	return err
}

// Calculate prices the current selection and parameters. On success the
// result replaces the stored one. When nothing is selected an error
// notification is raised and the previous result is kept.
func (s *Session) Calculate() (*types.Result, error) {
	r, err := cost.Calculate(s.selection.Technologies(), s.params.TotalMinutes, s.params.Margin)
	if err != nil {
		if errors.IsType(err, errors.TypeNoSelection) {
			s.log.Debug("calculation aborted, nothing selected")
			s.notifier.Notify(notify.Error(notify.MessageNoSelection))
		}
		return nil, err
	}

	r.QuoteID = s.newQuote()
	r.CalculatedAt = s.now()
	r.CallDuration = s.params.CallDuration

	s.result = r
	s.resultSelection = s.selection

	s.log.Info("cost calculated",
		zap.String("quote_id", r.QuoteID),
		zap.Strings("technologies", idStrings(s.selection.SelectedIDs())),
		zap.Stringer("total_cost", r.TotalCost),
	)
	return r.Clone(), nil
}

// Breakdown derives the display values from the stored result
func (s *Session) Breakdown() (*presentation.Breakdown, error) {
	return presentation.Derive(s.result)
}

// Stale reports whether inputs changed since the stored result was taken.
// It is false when there is no result.
func (s *Session) Stale() bool {
	if s.result == nil {
		return false
	}
	return !s.result.Params().Equal(s.params) || !s.resultSelection.Equal(s.selection)
}

// Document builds the export document for the stored result
func (s *Session) Document() (*output.Document, error) {
	return output.NewDocument(s.result, s.version, s.now())
}

// Export renders the stored result in format to w. It requires a prior
// successful calculation and raises an info notification when it starts.
func (s *Session) Export(format output.Format, w io.Writer) error {
	if s.result == nil {
		return s.reject(errors.Input("nothing to export: calculate a cost first"))
	}

	f, err := s.formats.Lookup(format)
	if err != nil {
		return err
	}

	doc, err := s.Document()
	if err != nil {
		return err
	}

	s.notifier.Notify(notify.ExportStarted(f.Label()))

	if err := f.Render(w, doc); err != nil {
		s.log.Warn("export failed", zap.String("format", string(format)), zap.Error(err))
		if errors.IsType(err, errors.TypeNotSupported) {
			return err
		}
		return errors.Export("render "+string(format)+" document", err)
	}
	return nil
}

func idStrings(ids []types.TechnologyID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = string(id)
	}
	return out
}
