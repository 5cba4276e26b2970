package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/surveytools/srpt/internal/output"
	"github.com/surveytools/srpt/internal/report"
	"github.com/surveytools/srpt/internal/survey"
)

// Check flags
var (
	checkSurvey string // --survey input path
	checkFormat string // --format text|yaml|json
)

// checkCmd lists questions that could not be automatically processed
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "List questions that could not be automatically processed",
	Long: `List the questions lacking an automatically produced results table.

A question counts as unprocessable when it has no attached results table and
is neither a text entry question, a descriptive box, nor a text-selector
question. The text format prints a one-line summary; yaml and json emit the
structured breakdown.

Examples:
  srpt check --survey survey.json
  srpt check --survey survey.json --format yaml
  srpt check --survey survey.json --format json`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVarP(&checkSurvey, "survey", "s", "", "Decoded survey JSON file (required)")
	checkCmd.Flags().StringVar(&checkFormat, "format", "", "Output format: text|yaml|json (default: from config)")
	checkCmd.MarkFlagRequired("survey")
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	name := checkFormat
	if name == "" {
		name = cfg.Output.DefaultFormat
	}
	format, err := output.ParseFormat(name)
	if err != nil {
		return err
	}
	formatter, err := output.NewFormatter(format)
	if err != nil {
		return err
	}

	s, err := survey.Load(checkSurvey)
	if err != nil {
		return fmt.Errorf("load survey: %w", err)
	}

	data := report.Check(s)
	return formatter.FormatToWriter(os.Stdout, data)
}
