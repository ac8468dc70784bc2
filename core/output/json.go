package output

import (
	"encoding/json"
	"io"
	"time"

	"voice-cost/core/presentation"
)

// JSONFormatter renders a quote as JSON
type JSONFormatter struct {
	Indent string
}

// NewJSONFormatter creates a JSON formatter with two-space indentation
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{Indent: "  "}
}

func (f *JSONFormatter) Format() Format { return FormatJSON }
func (f *JSONFormatter) Label() string  { return "JSON" }

type jsonQuote struct {
	QuoteID      string                 `json:"quote_id"`
	CalculatedAt string                 `json:"calculated_at"`
	GeneratedAt  string                 `json:"generated_at"`
	Version      string                 `json:"version,omitempty"`
	Currency     string                 `json:"currency"`
	Parameters   jsonParameters         `json:"parameters"`
	Technologies []jsonTechnology       `json:"technologies"`
	Breakdown    presentation.Formatted `json:"breakdown"`
	Notes        []string               `json:"notes,omitempty"`
}

type jsonParameters struct {
	CallDuration string `json:"call_duration"`
	TotalMinutes string `json:"total_minutes"`
	Margin       string `json:"margin"`
}

type jsonTechnology struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	CostPerMinute string `json:"cost_per_minute"`
	BaseAmount    string `json:"base_amount"`
	Amount        string `json:"amount"`
}

// Render writes the document as a single JSON object
func (f *JSONFormatter) Render(w io.Writer, doc *Document) error {
	r := doc.Result

	q := jsonQuote{
		QuoteID:      r.QuoteID,
		CalculatedAt: r.CalculatedAt.UTC().Format(time.RFC3339),
		GeneratedAt:  doc.Metadata.GeneratedAt.UTC().Format(time.RFC3339),
		Version:      doc.Metadata.Version,
		Currency:     r.Currency.String(),
		Parameters: jsonParameters{
			CallDuration: r.CallDuration.String(),
			TotalMinutes: r.TotalMinutes.String(),
			Margin:       r.Margin.String(),
		},
		Technologies: make([]jsonTechnology, 0, len(doc.Lines)),
		Breakdown:    doc.Breakdown.Format(),
		Notes:        doc.Metadata.Notes,
	}

	for _, l := range doc.Lines {
		q.Technologies = append(q.Technologies, jsonTechnology{
			ID:            l.Technology.ID.String(),
			Name:          l.Technology.Name,
			CostPerMinute: l.Technology.CostPerMinute.String(),
			BaseAmount:    l.BaseAmount.StringFixed(presentation.TotalPlaces),
			Amount:        l.Amount.StringFixed(presentation.TotalPlaces),
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", f.Indent)
	return enc.Encode(q)
}
