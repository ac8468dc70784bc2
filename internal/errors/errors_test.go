package errors

import (
	"fmt"
	"testing"
)

func TestErrorMessage(t *testing.T) {
	err := New(TypeInput, "margin out of range")
	if got, want := err.Error(), "[INPUT_ERROR] margin out of range"; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}

	wrapped := Wrap(TypeParsing, "bad scenario", fmt.Errorf("line 3"))
	if got, want := wrapped.Error(), "[PARSING_ERROR] bad scenario: line 3"; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestIsTypeFollowsWrapping(t *testing.T) {
	base := NoSelection()
	wrapped := fmt.Errorf("calculate: %w", base)

	if !IsType(wrapped, TypeNoSelection) {
		t.Fatal("expected wrapped error to be classified as TypeNoSelection")
	}
	if IsType(wrapped, TypeInput) {
		t.Error("wrapped error must not match an unrelated type")
	}
	if IsType(fmt.Errorf("plain"), TypeInput) {
		t.Error("plain errors have no type")
	}
}

func TestWithContext(t *testing.T) {
	err := NotFound("technology", "skype").WithContext("field", "technologies")
	if err.Context["field"] != "technologies" {
		t.Errorf("expected context to be recorded, got %v", err.Context)
	}
	if err.Type != TypeNotFound {
		t.Errorf("expected TypeNotFound, got %s", err.Type)
	}
}

func TestIsTypeMatchesOutermostError(t *testing.T) {
	inner := NotSupported("pdf document generation")
	outer := Export("render pdf document", inner)
	wrapped := fmt.Errorf("export: %w", outer)

	if !IsType(wrapped, TypeExport) {
		t.Error("expected the outer export type to match")
	}
	if IsType(wrapped, TypeNotSupported) {
		t.Error("an inner typed error must be hidden by the outer one")
	}
	if !IsType(outer.Unwrap(), TypeNotSupported) {
		t.Error("expected the unwrapped cause to keep its own type")
	}
}
