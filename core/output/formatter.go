// Package output provides document formatters for calculation results.
// This package produces human and machine-readable quote documents.
package output

import (
	"io"
	"time"

	"voice-cost/core/cost"
	"voice-cost/core/presentation"
	"voice-cost/core/types"
	"voice-cost/internal/errors"
)

// Format represents output format type
type Format string

const (
	// FormatText is a plain-text quote
	FormatText Format = "text"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"

	// FormatMarkdown is a markdown quote
	FormatMarkdown Format = "markdown"

	// FormatPDF is a PDF quote. Generation is not implemented.
	FormatPDF Format = "pdf"
)

// Formatter produces a document in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Label is the human name used in notifications, e.g. "PDF"
	Label() string

	// Render writes the document
	Render(w io.Writer, doc *Document) error
}

// Document is everything a quote document shows
type Document struct {
	// Result is the calculation snapshot
	Result *types.Result `json:"result"`

	// Breakdown holds the derived per-minute values
	Breakdown *presentation.Breakdown `json:"breakdown"`

	// Lines is the per-technology split of the total
	Lines []cost.Line `json:"lines"`

	// Metadata contains generation context
	Metadata DocumentMetadata `json:"metadata"`
}

// DocumentMetadata contains generation context
type DocumentMetadata struct {
	// GeneratedAt is when the document was produced
	GeneratedAt time.Time `json:"generated_at"`

	// Version is the tool version
	Version string `json:"version"`

	// Notes are free-form remarks printed at the end of the document
	Notes []string `json:"notes,omitempty"`
}

// CallDurationNote explains why the call duration does not change the price
const CallDurationNote = "Average call duration is informational and does not affect the per-minute price."

// NewDocument assembles a document for a stored result
func NewDocument(r *types.Result, version string, now time.Time) (*Document, error) {
	if r == nil {
		return nil, errors.Input("nothing to export: calculate a cost first")
	}

	breakdown, err := presentation.Derive(r)
	if err != nil {
		return nil, err
	}

	return &Document{
		Result:    r.Clone(),
		Breakdown: breakdown,
		Lines:     cost.Lines(r),
		Metadata: DocumentMetadata{
			GeneratedAt: now,
			Version:     version,
			Notes:       []string{CallDurationNote},
		},
	}, nil
}
