package output

import (
	"sort"

	"voice-cost/internal/errors"
)

// Registry manages formatter registration
type Registry struct {
	formatters map[Format]Formatter
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{formatters: make(map[Format]Formatter)}
}

// DefaultRegistry returns a registry with every built-in formatter
func DefaultRegistry() *Registry {
	r := NewRegistry()
	for _, f := range []Formatter{
		NewTextFormatter(),
		NewJSONFormatter(),
		NewMarkdownFormatter(),
		NewPDFFormatter(),
	} {
		_ = r.Register(f)
	}
	return r
}

// Register adds a formatter to the registry
func (r *Registry) Register(f Formatter) error {
	if _, exists := r.formatters[f.Format()]; exists {
		return errors.Newf(errors.TypeInternal, "formatter already registered: %s", f.Format())
	}
	r.formatters[f.Format()] = f
	return nil
}

// Get returns a formatter for a format type
func (r *Registry) Get(format Format) (Formatter, bool) {
	f, ok := r.formatters[format]
	return f, ok
}

// Lookup is Get with a not-found error
func (r *Registry) Lookup(format Format) (Formatter, error) {
	f, ok := r.Get(format)
	if !ok {
		return nil, errors.NotFound("output format", string(format))
	}
	return f, nil
}

// Formats returns the registered formats, sorted
func (r *Registry) Formats() []Format {
	formats := make([]Format, 0, len(r.formatters))
	for f := range r.formatters {
		formats = append(formats, f)
	}
	sort.Slice(formats, func(i, j int) bool { return formats[i] < formats[j] })
	return formats
}
