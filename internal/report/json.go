// Package report provides output formatters for mulcheck suite results
// in JSON and human-readable text formats.
package report

import (
	"encoding/json"
	"io"

	"github.com/unbound-force/mulcheck/internal/suite"
)

// JSONReport is the top-level JSON output structure.
type JSONReport struct {
	Version string         `json:"version"`
	Results []suite.Result `json:"results"`
	Summary suite.Summary  `json:"summary"`
}

// WriteJSON writes a suite report as formatted JSON to the writer.
func WriteJSON(w io.Writer, report *suite.Report, version string) error {
	results := report.Results
	if results == nil {
		results = []suite.Result{}
	}
	out := JSONReport{
		Version: version,
		Results: results,
		Summary: report.Summary,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
