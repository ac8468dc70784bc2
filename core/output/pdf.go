package output

import (
	"io"

	"voice-cost/internal/errors"
)

// PDFFormatter is the registered slot for PDF quotes. No PDF layout is
// defined yet, so Render always fails with TypeNotSupported.
type PDFFormatter struct{}

// NewPDFFormatter creates the PDF formatter
func NewPDFFormatter() *PDFFormatter {
	return &PDFFormatter{}
}

func (f *PDFFormatter) Format() Format { return FormatPDF }
func (f *PDFFormatter) Label() string  { return "PDF" }

// Render writes nothing and reports that PDF generation is unavailable
func (f *PDFFormatter) Render(w io.Writer, doc *Document) error {
	return errors.NotSupported("pdf document generation").
		WithContext("quote_id", doc.Result.QuoteID)
}
