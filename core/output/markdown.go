package output

import (
	"fmt"
	"io"
	"strings"
	"time"

	"voice-cost/core/presentation"
)

// MarkdownFormatter renders a quote as a markdown document
type MarkdownFormatter struct{}

// NewMarkdownFormatter creates a markdown formatter
func NewMarkdownFormatter() *MarkdownFormatter {
	return &MarkdownFormatter{}
}

func (f *MarkdownFormatter) Format() Format { return FormatMarkdown }
func (f *MarkdownFormatter) Label() string  { return "Markdown" }

// Render writes the document
func (f *MarkdownFormatter) Render(w io.Writer, doc *Document) error {
	r := doc.Result
	cur := r.Currency
	fb := doc.Breakdown.Format()

	var b strings.Builder
	b.WriteString("# Voice Stack Cost Quote\n\n")
	if r.QuoteID != "" {
		fmt.Fprintf(&b, "- Quote: `%s`\n", r.QuoteID)
	}
	fmt.Fprintf(&b, "- Calculated: %s\n", r.CalculatedAt.UTC().Format(time.RFC3339))
	fmt.Fprintf(&b, "- Average call duration: %s min\n", r.CallDuration)
	fmt.Fprintf(&b, "- Total minutes: %s\n", r.TotalMinutes)
	fmt.Fprintf(&b, "- Margin: %s%%\n\n", r.Margin)

	b.WriteString("| Technology | Cost/min | Base | With margin |\n")
	b.WriteString("|---|---:|---:|---:|\n")
	for _, l := range doc.Lines {
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n",
			l.Technology.Name,
			presentation.Money(cur, l.Technology.CostPerMinute, presentation.PerMinutePlaces),
			presentation.Money(cur, l.BaseAmount, presentation.TotalPlaces),
			presentation.Money(cur, l.Amount, presentation.TotalPlaces),
		)
	}
	b.WriteString("\n## Results\n\n")
	fmt.Fprintf(&b, "- Base cost per minute: %s%s\n", cur.Symbol(), fb.BaseCostPerMinute)
	fmt.Fprintf(&b, "- Cost per minute with margin: %s%s\n", cur.Symbol(), fb.MarginalCostPerMinute)
	fmt.Fprintf(&b, "- **Total Cost: %s%s**\n", cur.Symbol(), fb.TotalCost)

	if len(doc.Metadata.Notes) > 0 {
		b.WriteString("\n")
		for _, n := range doc.Metadata.Notes {
			fmt.Fprintf(&b, "> %s\n", n)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}
