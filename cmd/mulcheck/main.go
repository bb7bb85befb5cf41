package main

import (
	"fmt"
	"io"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/unbound-force/mulcheck/internal/report"
	"github.com/unbound-force/mulcheck/internal/suite"
)

// logger is the application-wide structured logger (writes to stderr).
var logger = charmlog.NewWithOptions(os.Stderr, charmlog.Options{
	ReportTimestamp: false,
})

// Set by build flags.
var version = "dev"

// reportVersion is the schema version of the JSON report envelope.
const reportVersion = "0.1.0"

func main() {
	root := &cobra.Command{
		Use:   "mulcheck",
		Short: "Mulcheck — smoke checks for the integer multiply primitive",
		Long: `Mulcheck runs a fixed suite of example-based checks against the
integer multiply primitive and reports every mismatch with its
expected and actual product. The process exits 0 only when every
check passes.`,
		Version: version,
	}

	root.AddCommand(newCheckCmd())
	root.AddCommand(newSchemaCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// checkParams holds the parsed flags for the check command.
type checkParams struct {
	casesFile   string
	format      string
	failFast    bool
	interactive bool
	stdout      io.Writer
	stderr      io.Writer
}

// runCheck is the extracted, testable body of the check command.
func runCheck(p checkParams) error {
	if p.format != "text" && p.format != "json" {
		return fmt.Errorf("invalid format %q: must be 'text' or 'json'", p.format)
	}

	cases := suite.Builtin()
	if p.casesFile != "" {
		extra, err := suite.LoadFile(p.casesFile)
		if err != nil {
			return err
		}
		logger.Info("loaded extra cases", "file", p.casesFile, "cases", len(extra))
		cases = append(cases, extra...)
	}

	logger.Info("running checks", "cases", len(cases))
	rpt := suite.Run(cases, suite.Options{FailFast: p.failFast})
	logger.Info("run complete",
		"passed", rpt.Summary.Passed, "failed", rpt.Summary.Failed)

	if p.interactive {
		if err := runInteractiveCheck(rpt); err != nil {
			return err
		}
		return checkOutcome(rpt)
	}

	switch p.format {
	case "json":
		if err := report.WriteJSON(p.stdout, rpt, reportVersion); err != nil {
			return err
		}
	default:
		if err := report.WriteText(p.stdout, rpt); err != nil {
			return err
		}
	}

	printRunSummary(p.stderr, rpt)

	return checkOutcome(rpt)
}

// printRunSummary prints a one-line machine-greppable summary to stderr.
func printRunSummary(w io.Writer, rpt *suite.Report) {
	status := "PASS"
	if !rpt.Ok() {
		status = "FAIL"
	}
	fmt.Fprintf(w, "checks: %d/%d passed (%s)\n",
		rpt.Summary.Passed, rpt.Summary.Total, status)
}

// checkOutcome maps a finished run to the process exit status: any
// failed or skipped check yields a non-zero exit.
func checkOutcome(rpt *suite.Report) error {
	if rpt.Ok() {
		return nil
	}
	if skipped := rpt.Summary.Total - len(rpt.Results); skipped > 0 {
		return fmt.Errorf("%d check(s) failed, %d skipped",
			rpt.Summary.Failed, skipped)
	}
	return fmt.Errorf("%d of %d checks failed",
		rpt.Summary.Failed, rpt.Summary.Total)
}

func newCheckCmd() *cobra.Command {
	var (
		casesFile   string
		format      string
		failFast    bool
		interactive bool
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Run the multiply smoke suite",
		Long: `Run the builtin multiply smoke suite (plus any extra cases from
--cases) and report each outcome. Exits 0 when every check passes,
1 when any check fails.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(checkParams{
				casesFile:   casesFile,
				format:      format,
				failFast:    failFast,
				interactive: interactive,
				stdout:      os.Stdout,
				stderr:      os.Stderr,
			})
		},
	}

	cmd.Flags().StringVar(&casesFile, "cases", "",
		"YAML file with extra cases to run after the builtin suite")
	cmd.Flags().StringVar(&format, "format", "text",
		"output format: text or json")
	cmd.Flags().BoolVar(&failFast, "fail-fast", false,
		"stop at the first failing check")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false,
		"launch interactive TUI for browsing results")

	return cmd
}

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema for mulcheck report output",
		Long: `Print the JSON Schema (Draft 2020-12) that documents the
structure of mulcheck check --format=json output. Useful for
validating output or generating client types.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), report.Schema)
			return err
		},
	}
}
