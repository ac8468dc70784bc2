package selection

import (
	"testing"

	"voice-cost/core/catalog"
	"voice-cost/core/types"
)

func TestToggleFlipsOnlyTarget(t *testing.T) {
	s := New(catalog.Default())

	next := s.Toggle(catalog.Twilio)

	if !next.IsSelected(catalog.Twilio) {
		t.Error("expected twilio to be selected")
	}
	if next.Count() != 1 {
		t.Errorf("expected exactly one selected entry, got %d", next.Count())
	}
	if s.IsSelected(catalog.Twilio) {
		t.Error("toggle must not mutate the receiver")
	}
}

func TestDoubleToggleRestoresSelection(t *testing.T) {
	for _, id := range catalog.Default().IDs() {
		t.Run(string(id), func(t *testing.T) {
			start := New(catalog.Default()).Toggle(catalog.Vapi)

			back := start.Toggle(id).Toggle(id)
			if !back.Equal(start) {
				t.Errorf("double toggle of %s changed the selection: %v -> %v",
					id, start.SelectedIDs(), back.SelectedIDs())
			}
		})
	}
}

func TestToggleUnknownIsNoop(t *testing.T) {
	s := New(catalog.Default()).Select(catalog.Vapi, catalog.CalCom)

	next := s.Toggle("skype")
	if !next.Equal(s) {
		t.Errorf("unknown id changed the selection: %v", next.SelectedIDs())
	}
}

func TestTechnologiesIsACopy(t *testing.T) {
	s := New(catalog.Default())
	techs := s.Technologies()
	techs[0].Selected = true

	if !s.Empty() {
		t.Error("mutating Technologies() output must not affect the selection")
	}
}

func TestSelectAndClear(t *testing.T) {
	s := New(catalog.Default()).Select(catalog.MakeCom, catalog.Vapi, "nope")

	got := s.SelectedIDs()
	want := []types.TechnologyID{catalog.Vapi, catalog.MakeCom}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: expected %s, got %s", i, want[i], got[i])
		}
	}

	if again := s.Select(catalog.Vapi); !again.Equal(s) {
		t.Error("selecting an already selected id must be idempotent")
	}

	if !s.Clear().Empty() {
		t.Error("Clear must deselect everything")
	}
}
