package scenario

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"

	"voice-cost/core/catalog"
	"voice-cost/core/types"
	"voice-cost/internal/errors"
)

func TestParseFullScenario(t *testing.T) {
	src := []byte(`
call_duration = 3
total_minutes = 1000
margin        = 20
technologies  = ["vapi", "twilio"]
`)

	s, err := Parse(src, "quote.hcl")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	p := s.Params(types.DefaultParams())
	if !p.CallDuration.Equal(decimal.NewFromInt(3)) {
		t.Errorf("expected call duration 3, got %s", p.CallDuration)
	}
	if !p.TotalMinutes.Equal(decimal.NewFromInt(1000)) || !p.Margin.Equal(decimal.NewFromInt(20)) {
		t.Errorf("unexpected params %+v", p)
	}

	ids, err := s.TechnologyIDs(catalog.Default())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ids) != 2 || ids[0] != catalog.Vapi || ids[1] != catalog.Twilio {
		t.Errorf("unexpected ids %v", ids)
	}
}

func TestParsePartialScenarioKeepsDefaults(t *testing.T) {
	s, err := Parse([]byte(`margin = 12.5`), "partial.hcl")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	p := s.Params(types.DefaultParams())
	if !p.Margin.Equal(decimal.RequireFromString("12.5")) {
		t.Errorf("expected margin 12.5, got %s", p.Margin)
	}
	if !p.TotalMinutes.Equal(decimal.NewFromInt(1000)) || !p.CallDuration.Equal(decimal.NewFromInt(5)) {
		t.Errorf("unset attributes must keep defaults, got %+v", p)
	}
	if len(s.Technologies) != 0 {
		t.Errorf("expected no technologies, got %v", s.Technologies)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"syntax error", `margin = `},
		{"unknown attribute", `discount = 5`},
		{"wrong type", `total_minutes = "many"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.src), "bad.hcl")
			if !errors.IsType(err, errors.TypeParsing) {
				t.Errorf("expected parsing error, got %v", err)
			}
		})
	}
}

func TestUnknownTechnology(t *testing.T) {
	s, err := Parse([]byte(`technologies = ["vapi", "skype"]`), "quote.hcl")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := s.TechnologyIDs(catalog.Default()); !errors.IsType(err, errors.TypeNotFound) {
		t.Errorf("expected not found error, got %v", err)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quote.hcl")
	if err := os.WriteFile(path, []byte(`technologies = ["calcom"]`), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := LoadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s.Technologies) != 1 || s.Technologies[0] != "calcom" {
		t.Errorf("unexpected technologies %v", s.Technologies)
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.hcl")); !errors.IsType(err, errors.TypeInput) {
		t.Errorf("expected input error for a missing file, got %v", err)
	}
}

func TestParseKeepsDecimalPrecision(t *testing.T) {
	src := []byte(`
total_minutes = 12345678901234567.123
margin        = 0.1
call_duration = "2.5"
`)

	s, err := Parse(src, "precise.hcl")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	p := s.Params(types.DefaultParams())
	if got := p.TotalMinutes.String(); got != "12345678901234567.123" {
		t.Errorf("expected total minutes 12345678901234567.123, got %s", got)
	}
	if got := p.Margin.String(); got != "0.1" {
		t.Errorf("expected margin 0.1, got %s", got)
	}
	if !p.CallDuration.Equal(decimal.RequireFromString("2.5")) {
		t.Errorf("numeric strings convert like HCL numbers, got %s", p.CallDuration)
	}
}

func TestParseNullKeepsDefault(t *testing.T) {
	s, err := Parse([]byte(`margin = null`), "null.hcl")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Margin != nil {
		t.Errorf("null must leave the margin unset, got %s", s.Margin)
	}
}
