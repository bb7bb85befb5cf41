package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/unbound-force/mulcheck/internal/suite"
)

// ---------------------------------------------------------------------------
// runCheck tests
// ---------------------------------------------------------------------------

func TestRunCheck_InvalidFormat(t *testing.T) {
	err := runCheck(checkParams{
		format: "xml",
		stdout: &bytes.Buffer{},
		stderr: &bytes.Buffer{},
	})
	if err == nil {
		t.Fatal("expected error for invalid format")
	}
	if !strings.Contains(err.Error(), `invalid format "xml"`) {
		t.Errorf("unexpected error message: %s", err)
	}
}

func TestRunCheck_BuiltinSuitePasses(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := runCheck(checkParams{
		format: "text",
		stdout: &stdout,
		stderr: &stderr,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := stdout.String()
	for _, name := range []string{
		"positive-operands", "zero-operand", "negative-operand", "both-negative",
	} {
		if !strings.Contains(out, name) {
			t.Errorf("expected output to contain case %q, got:\n%s", name, out)
		}
	}

	if !strings.Contains(stderr.String(), "checks: 4/4 passed (PASS)") {
		t.Errorf("expected stderr summary line, got:\n%s", stderr.String())
	}
}

func TestRunCheck_JSONFormat(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := runCheck(checkParams{
		format: "json",
		stdout: &stdout,
		stderr: &stderr,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Verify output is valid JSON with the expected envelope.
	var parsed map[string]interface{}
	if err := json.Unmarshal(stdout.Bytes(), &parsed); err != nil {
		t.Fatalf("output is not valid JSON: %v\noutput:\n%s", err, stdout.String())
	}
	for _, key := range []string{"version", "results", "summary"} {
		if _, ok := parsed[key]; !ok {
			t.Errorf("JSON output missing %q key", key)
		}
	}
}

func TestRunCheck_ExtraCases(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := runCheck(checkParams{
		casesFile: "testdata/extra.yaml",
		format:    "text",
		stdout:    &stdout,
		stderr:    &stderr,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(stdout.String(), "six-times-seven") {
		t.Errorf("expected extra case in output, got:\n%s", stdout.String())
	}
	if !strings.Contains(stderr.String(), "checks: 5/5 passed (PASS)") {
		t.Errorf("expected 5-case summary, got:\n%s", stderr.String())
	}
}

func TestRunCheck_FailingCase(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := runCheck(checkParams{
		casesFile: "testdata/failing.yaml",
		format:    "text",
		stdout:    &stdout,
		stderr:    &stderr,
	})
	if err == nil {
		t.Fatal("expected error for failing check")
	}
	if !strings.Contains(err.Error(), "1 of 6 checks failed") {
		t.Errorf("unexpected error message: %s", err)
	}

	// Mismatch diagnostics report want vs. got.
	if !strings.Contains(stdout.String(), "multiply(2, 3) = 6, want 7") {
		t.Errorf("expected mismatch diagnostic, got:\n%s", stdout.String())
	}
	if !strings.Contains(stderr.String(), "(FAIL)") {
		t.Errorf("expected FAIL summary line, got:\n%s", stderr.String())
	}
}

func TestRunCheck_FailFast(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := runCheck(checkParams{
		casesFile: "testdata/failing.yaml",
		format:    "text",
		failFast:  true,
		stdout:    &stdout,
		stderr:    &stderr,
	})
	if err == nil {
		t.Fatal("expected error for failing check")
	}
	// The failing extra case is fifth of six; the last case never runs.
	if !strings.Contains(err.Error(), "1 check(s) failed, 1 skipped") {
		t.Errorf("unexpected error message: %s", err)
	}
	if strings.Contains(stdout.String(), "still-fine") {
		t.Errorf("case after failure must not run, got:\n%s", stdout.String())
	}
}

func TestRunCheck_MissingCasesFile(t *testing.T) {
	err := runCheck(checkParams{
		casesFile: "testdata/does-not-exist.yaml",
		format:    "text",
		stdout:    &bytes.Buffer{},
		stderr:    &bytes.Buffer{},
	})
	if err == nil {
		t.Fatal("expected error for missing cases file")
	}
	if !strings.Contains(err.Error(), "opening suite file") {
		t.Errorf("unexpected error message: %s", err)
	}
}

// ---------------------------------------------------------------------------
// checkOutcome tests
// ---------------------------------------------------------------------------

func TestCheckOutcome_Pass(t *testing.T) {
	rpt := suite.Run(suite.Builtin(), suite.Options{})
	if err := checkOutcome(rpt); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestCheckOutcome_Fail(t *testing.T) {
	rpt := suite.Run([]suite.Case{
		{Name: "bad", A: 1, B: 1, Want: 2},
	}, suite.Options{})

	err := checkOutcome(rpt)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "1 of 1 checks failed") {
		t.Errorf("unexpected error message: %s", err)
	}
}

// ---------------------------------------------------------------------------
// printRunSummary tests
// ---------------------------------------------------------------------------

func TestPrintRunSummary_Pass(t *testing.T) {
	var buf bytes.Buffer
	rpt := suite.Run(suite.Builtin(), suite.Options{})
	printRunSummary(&buf, rpt)

	if got := buf.String(); got != "checks: 4/4 passed (PASS)\n" {
		t.Errorf("unexpected summary line: %q", got)
	}
}

func TestPrintRunSummary_Fail(t *testing.T) {
	var buf bytes.Buffer
	rpt := suite.Run([]suite.Case{
		{Name: "bad", A: 1, B: 1, Want: 2},
	}, suite.Options{})
	printRunSummary(&buf, rpt)

	if got := buf.String(); got != "checks: 0/1 passed (FAIL)\n" {
		t.Errorf("unexpected summary line: %q", got)
	}
}
