package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/surveytools/srpt/internal/render"
	"github.com/surveytools/srpt/internal/report"
	"github.com/surveytools/srpt/internal/survey"
)

// reportCmd is the parent command for all report subcommands
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate survey HTML reports",
	Long: `Generate linearized HTML reports from a decoded survey document.

Report Types:
  results     Per-question descriptions with tabulated results
  appendices  Verbatim text responses and coded comments, lettered A, B, ...
  logic       Display and skip logic summary
  all         All three, written as files into a directory

Each report walks the survey's blocks in flow order (declaration order when
no flow is present). Skipped questions are suppressed everywhere; descriptive
boxes are suppressed from the results report.

Examples:
  srpt report results --survey survey.json            # HTML to stdout
  srpt report results --survey survey.json -o out.html
  srpt report appendices --survey survey.json --threshold 20
  srpt report logic --survey survey.json
  srpt report all --survey survey.json --dir reports/`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// Report flags
var (
	reportSurvey       string // --survey input path
	reportOutput       string // -o/--output file path
	reportDir          string // --dir for `report all`
	reportBlockHeaders bool   // --block-headers override
	reportThreshold    int    // --threshold override
)

// reportResultsCmd generates the results-table report
var reportResultsCmd = &cobra.Command{
	Use:   "results",
	Short: "Generate the results-table report",
	Long: `Generate the results-table report.

For each question (in flow order), emits a description table with the export
tag, cleaned question text, operator notes, logic referral, and availability
message, followed by the pre-tabulated results table when one is attached.

Examples:
  srpt report results --survey survey.json
  srpt report results --survey survey.json -o results.html
  srpt report results --survey survey.json --block-headers=false`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReport(cmd, report.ReportTypeResults)
	},
}

// reportAppendicesCmd generates the text-appendix report
var reportAppendicesCmd = &cobra.Command{
	Use:   "appendices",
	Short: "Generate the text-response appendix report",
	Long: `Generate the text-response appendix report.

Emits one lettered appendix per verbatim unit: a coded-comment breakdown
(when its categorized count exceeds the threshold), a text entry response
table, a per-component response table, or a no-respondents placeholder.
Single-answer questions with multiple text entry components produce a
not-automatable notice instead of tables.

Examples:
  srpt report appendices --survey survey.json
  srpt report appendices --survey survey.json --threshold 20 -o appendices.html`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReport(cmd, report.ReportTypeAppendices)
	},
}

// reportLogicCmd generates the survey logic report
var reportLogicCmd = &cobra.Command{
	Use:   "logic",
	Short: "Generate the survey logic report",
	Long: `Generate the survey logic report.

Emits one row per question that carries display logic (on the question or
any of its choices or answers) or skip logic. Questions without logic
produce no output.

Examples:
  srpt report logic --survey survey.json
  srpt report logic --survey survey.json -o logic.html`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReport(cmd, report.ReportTypeLogic)
	},
}

// reportAllCmd generates all three reports into a directory
var reportAllCmd = &cobra.Command{
	Use:   "all",
	Short: "Generate all three reports into a directory",
	Long: `Generate the results, appendix, and logic reports in one pass.

Writes results.html, appendices.html, and logic.html into the directory
given by --dir (created if missing).

Examples:
  srpt report all --survey survey.json
  srpt report all --survey survey.json --dir reports/`,
	RunE: runReportAll,
}

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.AddCommand(reportResultsCmd)
	reportCmd.AddCommand(reportAppendicesCmd)
	reportCmd.AddCommand(reportLogicCmd)
	reportCmd.AddCommand(reportAllCmd)

	// Report-level flags (inherited by subcommands)
	reportCmd.PersistentFlags().StringVarP(&reportSurvey, "survey", "s", "", "Decoded survey JSON file (required)")
	reportCmd.PersistentFlags().StringVarP(&reportOutput, "output", "o", "", "Output file path (default: stdout)")
	reportCmd.PersistentFlags().BoolVar(&reportBlockHeaders, "block-headers", true, "Include block headers in the results report")
	reportCmd.PersistentFlags().IntVar(&reportThreshold, "threshold", 0, "Coded-comment count threshold (default: from config)")
	reportCmd.MarkPersistentFlagRequired("survey")

	// all-specific flags
	reportAllCmd.Flags().StringVar(&reportDir, "dir", ".", "Directory to write the reports into")
}

// reportOptions resolves assembly options from config and flag overrides.
func reportOptions(cmd *cobra.Command) (report.Options, error) {
	cfg, err := loadConfig()
	if err != nil {
		return report.Options{}, fmt.Errorf("load config: %w", err)
	}
	opts := cfg.ReportOptions()
	if cmd.Flags().Changed("block-headers") {
		opts.IncludeBlockHeaders = reportBlockHeaders
	}
	if cmd.Flags().Changed("threshold") {
		opts.NThreshold = reportThreshold
	}
	return opts, nil
}

// loadSurvey loads the --survey document, warning on unresolvable flow
// entries.
func loadSurvey() (*survey.Survey, error) {
	s, err := survey.Load(reportSurvey)
	if err != nil {
		return nil, err
	}
	if _, unmatched := s.ResolveOrder(); unmatched > 0 && verbose {
		fmt.Fprintf(os.Stderr, "warning: %d flow entries match no unique block and were skipped\n", unmatched)
	}
	return s, nil
}

// runReport generates a single report and writes it to -o or stdout.
func runReport(cmd *cobra.Command, rt report.ReportType) error {
	opts, err := reportOptions(cmd)
	if err != nil {
		return err
	}

	s, err := loadSurvey()
	if err != nil {
		return fmt.Errorf("load survey: %w", err)
	}

	gen := report.NewGenerator(render.NewHTML(), opts)
	out, err := gen.Generate(s, rt)
	if err != nil {
		return fmt.Errorf("generate %s report: %w", rt, err)
	}

	return writeReport(out, reportOutput)
}

// runReportAll generates all three reports into --dir.
func runReportAll(cmd *cobra.Command, args []string) error {
	opts, err := reportOptions(cmd)
	if err != nil {
		return err
	}

	s, err := loadSurvey()
	if err != nil {
		return fmt.Errorf("load survey: %w", err)
	}

	if err := os.MkdirAll(reportDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	gen := report.NewGenerator(render.NewHTML(), opts)
	files := map[report.ReportType]string{
		report.ReportTypeResults:    "results.html",
		report.ReportTypeAppendices: "appendices.html",
		report.ReportTypeLogic:      "logic.html",
	}
	for _, rt := range []report.ReportType{report.ReportTypeResults, report.ReportTypeAppendices, report.ReportTypeLogic} {
		out, err := gen.Generate(s, rt)
		if err != nil {
			return fmt.Errorf("generate %s report: %w", rt, err)
		}
		path := filepath.Join(reportDir, files[rt])
		if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		fmt.Printf("wrote %s\n", path)
	}
	return nil
}

// writeReport writes a report to a file, or stdout when path is empty.
func writeReport(content, path string) error {
	if path == "" {
		fmt.Println(content)
		return nil
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "wrote %s\n", path)
	}
	return nil
}
