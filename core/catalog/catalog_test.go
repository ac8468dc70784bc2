package catalog

import (
	"testing"

	"github.com/shopspring/decimal"

	"voice-cost/core/types"
)

func TestDefaultCatalog(t *testing.T) {
	c := Default()

	want := []struct {
		id   types.TechnologyID
		name string
		cost string
	}{
		{Vapi, "Vapi", "0.05"},
		{Synthflow, "Synthflow", "0.03"},
		{Twilio, "Twilio", "0.02"},
		{CalCom, "Cal.com", "0.01"},
		{MakeCom, "Make.com", "0.02"},
	}

	techs := c.Technologies()
	if len(techs) != len(want) {
		t.Fatalf("expected %d technologies, got %d", len(want), len(techs))
	}

	for i, w := range want {
		got := techs[i]
		if got.ID != w.id || got.Name != w.name {
			t.Errorf("entry %d: expected %s/%s, got %s/%s", i, w.id, w.name, got.ID, got.Name)
		}
		if !got.CostPerMinute.Equal(decimal.RequireFromString(w.cost)) {
			t.Errorf("%s: expected cost %s, got %s", w.id, w.cost, got.CostPerMinute)
		}
		if got.Selected {
			t.Errorf("%s: must start unselected", w.id)
		}
	}

	if errs := c.Validate(DefaultValidationRules()); len(errs) != 0 {
		t.Errorf("default catalog must validate, got %v", errs)
	}
}

func TestTechnologiesReturnsCopy(t *testing.T) {
	c := Default()

	techs := c.Technologies()
	techs[0].Selected = true
	techs[0].Name = "changed"

	again := c.Technologies()
	if again[0].Selected || again[0].Name != "Vapi" {
		t.Error("mutating the returned slice must not affect the catalog")
	}
}

func TestGet(t *testing.T) {
	c := Default()

	tech, ok := c.Get(Twilio)
	if !ok {
		t.Fatal("expected twilio to be found")
	}
	if tech.Name != "Twilio" {
		t.Errorf("expected Twilio, got %s", tech.Name)
	}

	if _, ok := c.Get("skype"); ok {
		t.Error("unknown id must not be found")
	}
	if c.Has("skype") {
		t.Error("Has must be false for unknown id")
	}
}

func TestValidateReportsBrokenEntries(t *testing.T) {
	c := New([]types.Technology{
		{ID: "a", Name: "A", CostPerMinute: decimal.RequireFromString("0.01")},
		{ID: "a", Name: "A again", CostPerMinute: decimal.RequireFromString("0.01")},
		{ID: "neg", Name: "Negative", CostPerMinute: decimal.RequireFromString("-0.01")},
		{ID: "", Name: "Nameless id", CostPerMinute: decimal.Zero},
		{ID: "noname", Name: " ", CostPerMinute: decimal.Zero},
	})

	errs := c.Validate(DefaultValidationRules())
	if len(errs) != 4 {
		t.Fatalf("expected 4 validation errors, got %d: %v", len(errs), errs)
	}
}

func TestMustValidatePanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic for invalid catalog")
		}
	}()

	New([]types.Technology{
		{ID: "neg", Name: "Negative", CostPerMinute: decimal.NewFromInt(-1)},
	}).MustValidate()
}
