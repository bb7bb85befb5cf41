// Package suite defines the mulcheck smoke suite: example-based checks
// against the multiply primitive, a runner that executes them in order,
// and a report of the outcomes.
//
// The builtin suite reproduces the canonical fixed cases; additional
// cases can be loaded from a YAML suite file (see Load).
package suite

import (
	"github.com/unbound-force/mulcheck/internal/arith"
)

// Case is a single example-based check: multiply the two operands and
// compare against the expected product.
type Case struct {
	// Name identifies the case in reports. Unique within a suite.
	Name string `json:"name" yaml:"name"`

	// A is the first operand.
	A int `json:"a" yaml:"a"`

	// B is the second operand.
	B int `json:"b" yaml:"b"`

	// Want is the expected product.
	Want int `json:"want" yaml:"want"`
}

// Result is the outcome of running one Case.
type Result struct {
	Case Case `json:"case"`

	// Got is the computed product.
	Got int `json:"got"`

	// Pass is true when Got equals the expected product.
	Pass bool `json:"pass"`
}

// Summary holds aggregate counts for a suite run.
type Summary struct {
	// Total is the number of cases in the suite, including any
	// skipped after a fail-fast stop.
	Total int `json:"total"`

	// Passed and Failed count executed cases only.
	Passed int `json:"passed"`
	Failed int `json:"failed"`
}

// Report is the complete outcome of a suite run.
type Report struct {
	Results []Result `json:"results"`
	Summary Summary  `json:"summary"`
}

// Ok reports whether the run passed: every case executed and none failed.
func (r *Report) Ok() bool {
	return r.Summary.Failed == 0 && len(r.Results) == r.Summary.Total
}

// Options configures a suite run.
type Options struct {
	// FailFast stops the run at the first mismatch. Cases after the
	// failure are not executed and produce no Result.
	FailFast bool
}

// Builtin returns the fixed smoke suite, in canonical order.
func Builtin() []Case {
	return []Case{
		{Name: "positive-operands", A: 2, B: 3, Want: 6},
		{Name: "zero-operand", A: 5, B: 0, Want: 0},
		{Name: "negative-operand", A: -1, B: 4, Want: -4},
		{Name: "both-negative", A: -2, B: -3, Want: 6},
	}
}

// Run executes the cases in order and returns the report.
func Run(cases []Case, opts Options) *Report {
	report := &Report{
		Results: make([]Result, 0, len(cases)),
		Summary: Summary{Total: len(cases)},
	}

	for _, c := range cases {
		got := arith.Multiply(c.A, c.B)
		res := Result{
			Case: c,
			Got:  got,
			Pass: got == c.Want,
		}
		report.Results = append(report.Results, res)

		if res.Pass {
			report.Summary.Passed++
			continue
		}
		report.Summary.Failed++
		if opts.FailFast {
			break
		}
	}

	return report
}
