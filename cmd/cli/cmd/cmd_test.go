package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"voice-cost/core/notify"
	"voice-cost/internal/errors"
)

// run executes the root command with args, isolated from the user's
// home directory and from flag values left by earlier runs.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	estimateFlags = quoteFlags{}
	exportFlags = quoteFlags{}
	outputFormat = ""
	exportOut = ""
	cfgFile = ""
	verbose = false
	noColor = true
	notices.errorShown = false
	notices.Reset()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(append(args, "--no-color"))

	err := rootCmd.Execute()
	return out.String(), err
}

func TestEstimateCLI(t *testing.T) {
	out, err := run(t, "", "estimate", "--tech", "vapi,twilio", "--minutes", "1000", "--margin", "20")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"[x] │ vapi", "$0.0700", "$0.0840", "$84.00"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestEstimateJSON(t *testing.T) {
	out, err := run(t, "", "estimate", "-t", "calcom", "-m", "500", "--margin", "0", "--format", "json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var doc struct {
		Breakdown struct {
			TotalCost string `json:"total_cost"`
		} `json:"breakdown"`
	}
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, out)
	}
	if doc.Breakdown.TotalCost != "5.00" {
		t.Errorf("expected 5.00, got %s", doc.Breakdown.TotalCost)
	}
}

func TestEstimateWithoutSelection(t *testing.T) {
	_, err := run(t, "", "estimate")
	if !errors.IsType(err, errors.TypeNoSelection) {
		t.Fatalf("expected no selection error, got %v", err)
	}
	if !notices.errorShown {
		t.Error("the error notification must have been shown")
	}
}

func TestEstimateRejectsBadFlags(t *testing.T) {
	if _, err := run(t, "", "estimate", "-t", "vapi", "--margin", "120"); !errors.IsType(err, errors.TypeInput) {
		t.Errorf("margin 120: expected input error, got %v", err)
	}
	if _, err := run(t, "", "estimate", "-t", "vapi", "--minutes", "lots"); !errors.IsType(err, errors.TypeInput) {
		t.Errorf("minutes lots: expected input error, got %v", err)
	}
	if _, err := run(t, "", "estimate", "-t", "skype"); !errors.IsType(err, errors.TypeNotFound) {
		t.Errorf("unknown tech: expected not found error, got %v", err)
	}
}

func TestEstimateScenarioWithFlagOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quote.hcl")
	src := "total_minutes = 1000\nmargin = 50\ntechnologies = [\"vapi\", \"twilio\"]\n"
	if err := os.WriteFile(path, []byte(src), 0644); err != nil {
		t.Fatal(err)
	}

	out, err := run(t, "", "estimate", "--scenario", path, "--margin", "20", "--format", "text")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "Total Cost: $84.00") {
		t.Errorf("flag margin must override the scenario:\n%s", out)
	}
}

func TestExportMarkdownToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quote.md")

	if _, err := run(t, "", "export", "markdown", "-t", "vapi,twilio", "--out", path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	if !strings.Contains(string(data), "**Total Cost: $84.00**") {
		t.Errorf("unexpected document:\n%s", data)
	}
}

func TestExportPDFNotSupported(t *testing.T) {
	_, err := run(t, "", "export", "pdf", "-t", "vapi")
	if !errors.IsType(err, errors.TypeNotSupported) {
		t.Errorf("expected not supported error, got %v", err)
	}
}

func TestEstimatePDFAnnouncesExport(t *testing.T) {
	_, err := run(t, "", "estimate", "-t", "vapi", "--format", "pdf")
	if !errors.IsType(err, errors.TypeNotSupported) {
		t.Fatalf("expected not supported error, got %v", err)
	}

	last, ok := notices.Last()
	if !ok || last != notify.ExportStarted("PDF") {
		t.Errorf("expected the PDF export notification, got %+v", notices.Events())
	}
	if last.Message != "Your PDF is being generated..." {
		t.Errorf("unexpected message %q", last.Message)
	}
}

func TestExportFailureLeavesNoFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quote.pdf")

	_, err := run(t, "", "export", "pdf", "-t", "vapi", "--out", path)
	if !errors.IsType(err, errors.TypeNotSupported) {
		t.Fatalf("expected not supported error, got %v", err)
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Errorf("expected no file at %s, stat returned %v", path, statErr)
	}
}

func TestInteractiveCLI(t *testing.T) {
	out, err := run(t, "toggle calcom\nset margin 0\nset minutes 500\ncalculate\nquit\n", "interactive")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "$5.00") {
		t.Errorf("expected total $5.00:\n%s", out)
	}
}

func TestVersion(t *testing.T) {
	out, err := run(t, "", "version")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, Version) {
		t.Errorf("expected version in output, got %q", out)
	}
}
