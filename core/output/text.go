package output

import (
	"fmt"
	"io"
	"strings"
)

// TextFormatter renders the result block as plain text, without colors
type TextFormatter struct{}

// NewTextFormatter creates a plain-text formatter
func NewTextFormatter() *TextFormatter {
	return &TextFormatter{}
}

func (f *TextFormatter) Format() Format { return FormatText }
func (f *TextFormatter) Label() string  { return "text" }

// Render writes the three result lines, preceded by the selected technologies
func (f *TextFormatter) Render(w io.Writer, doc *Document) error {
	r := doc.Result
	sym := r.Currency.Symbol()
	fb := doc.Breakdown.Format()

	names := make([]string, len(r.Technologies))
	for i, t := range r.Technologies {
		names[i] = t.Name
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Technologies: %s\n", strings.Join(names, ", "))
	fmt.Fprintf(&b, "Total minutes: %s, margin: %s%%\n", r.TotalMinutes, r.Margin)
	fmt.Fprintf(&b, "Base cost per minute: %s%s\n", sym, fb.BaseCostPerMinute)
	fmt.Fprintf(&b, "Cost per minute with margin: %s%s\n", sym, fb.MarginalCostPerMinute)
	fmt.Fprintf(&b, "Total Cost: %s%s\n", sym, fb.TotalCost)

	_, err := io.WriteString(w, b.String())
	return err
}
