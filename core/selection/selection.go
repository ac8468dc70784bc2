// Package selection tracks which catalog technologies are chosen.
// A Selection is an immutable value: every change returns a new one.
package selection

import (
	"voice-cost/core/catalog"
	"voice-cost/core/types"
)

// Selection is a snapshot of the catalog with per-technology selection flags
type Selection struct {
	techs []types.Technology
}

// New returns a selection over the catalog entries, keeping their flags
func New(c *catalog.Catalog) Selection {
	return Selection{techs: c.Technologies()}
}

// Toggle flips the flag of the technology with id and returns the new
// selection. An unknown id returns an equal copy.
func (s Selection) Toggle(id types.TechnologyID) Selection {
	next := types.CloneTechnologies(s.techs)
	for i := range next {
		if next[i].ID == id {
			next[i].Selected = !next[i].Selected
		}
	}
	return Selection{techs: next}
}

// Select marks every id as selected. Already selected and unknown ids are left as they are.
func (s Selection) Select(ids ...types.TechnologyID) Selection {
	want := make(map[types.TechnologyID]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}

	next := types.CloneTechnologies(s.techs)
	for i := range next {
		if want[next[i].ID] {
			next[i].Selected = true
		}
	}
	return Selection{techs: next}
}

// Clear returns a selection with nothing selected
func (s Selection) Clear() Selection {
	next := types.CloneTechnologies(s.techs)
	for i := range next {
		next[i].Selected = false
	}
	return Selection{techs: next}
}

// Technologies returns a copy of all entries with their flags
func (s Selection) Technologies() []types.Technology {
	return types.CloneTechnologies(s.techs)
}

// Selected returns the selected entries in catalog order
func (s Selection) Selected() []types.Technology {
	var out []types.Technology
	for _, t := range s.techs {
		if t.Selected {
			out = append(out, t)
		}
	}
	return out
}

// IsSelected reports whether id is selected
func (s Selection) IsSelected(id types.TechnologyID) bool {
	for _, t := range s.techs {
		if t.ID == id {
			return t.Selected
		}
	}
	return false
}

// Count returns the number of selected entries
func (s Selection) Count() int {
	n := 0
	for _, t := range s.techs {
		if t.Selected {
			n++
		}
	}
	return n
}

// Empty reports whether nothing is selected
func (s Selection) Empty() bool {
	return s.Count() == 0
}

// Equal reports whether both selections hold the same entries and flags
func (s Selection) Equal(other Selection) bool {
	if len(s.techs) != len(other.techs) {
		return false
	}
	for i := range s.techs {
		a, b := s.techs[i], other.techs[i]
		if a.ID != b.ID || a.Selected != b.Selected || !a.CostPerMinute.Equal(b.CostPerMinute) {
			return false
		}
	}
	return true
}

// SelectedIDs returns the IDs of selected entries in catalog order
func (s Selection) SelectedIDs() []types.TechnologyID {
	var ids []types.TechnologyID
	for _, t := range s.techs {
		if t.Selected {
			ids = append(ids, t.ID)
		}
	}
	return ids
}
