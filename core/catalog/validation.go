// Package catalog - Catalog validation
// Ensures catalog integrity and enforces invariants.
package catalog

import (
	"fmt"
	"strings"

	"voice-cost/core/types"
)

// ValidationRule is a per-entry validation rule
type ValidationRule func(types.Technology) error

// DefaultValidationRules returns the standard validation rules
func DefaultValidationRules() []ValidationRule {
	return []ValidationRule{
		validateID,
		validateName,
		validateCost,
	}
}

// Validate checks the catalog against rules. Duplicate IDs are always
// reported, regardless of the rules passed.
func (c *Catalog) Validate(rules []ValidationRule) []error {
	var errors []error

	seen := make(map[types.TechnologyID]bool, len(c.entries))
	for _, entry := range c.entries {
		if seen[entry.ID] {
			errors = append(errors, fmt.Errorf("%s: duplicate technology id", entry.ID))
		}
		seen[entry.ID] = true

		for _, rule := range rules {
			if err := rule(entry); err != nil {
				errors = append(errors, fmt.Errorf("%s: %w", entry.ID, err))
			}
		}
	}

	return errors
}

func validateID(t types.Technology) error {
	if strings.TrimSpace(string(t.ID)) == "" {
		return fmt.Errorf("id must not be empty")
	}
	if strings.ContainsAny(string(t.ID), " \t") {
		return fmt.Errorf("id must not contain whitespace")
	}
	return nil
}

func validateName(t types.Technology) error {
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("name must not be empty")
	}
	return nil
}

func validateCost(t types.Technology) error {
	if t.CostPerMinute.IsNegative() {
		return fmt.Errorf("cost per minute must be >= 0, got %s", t.CostPerMinute)
	}
	return nil
}

// MustValidate panics if validation fails
func (c *Catalog) MustValidate() {
	errors := c.Validate(DefaultValidationRules())
	if len(errors) > 0 {
		msgs := make([]string, len(errors))
		for i, err := range errors {
			msgs[i] = err.Error()
		}
		panic(fmt.Sprintf("catalog has %d validation errors: %s", len(errors), strings.Join(msgs, "; ")))
	}
}
