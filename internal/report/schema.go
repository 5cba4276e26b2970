// Package report assembles linearized HTML reports from a decoded survey.
//
// Three independent assemblers walk the survey in display order: the
// results report (per-question descriptions plus tabulated results), the
// text appendices (verbatim free-text responses and coded comments), and
// the survey logic report (display and skip logic). All three are pure
// transformations: identical inputs produce byte-identical output.
package report

import (
	"fmt"
	"strings"
)

// ReportType names one of the generated reports.
type ReportType string

const (
	// ReportTypeResults is the per-question results-table report.
	ReportTypeResults ReportType = "results"

	// ReportTypeAppendices is the verbatim text-response appendix report.
	ReportTypeAppendices ReportType = "appendices"

	// ReportTypeLogic is the display/skip logic summary report.
	ReportTypeLogic ReportType = "logic"
)

// String returns the string representation of the report type.
func (rt ReportType) String() string {
	return string(rt)
}

// ParseReportType parses a string into a ReportType.
// Returns an error for invalid report type values.
func ParseReportType(s string) (ReportType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "results":
		return ReportTypeResults, nil
	case "appendices":
		return ReportTypeAppendices, nil
	case "logic":
		return ReportTypeLogic, nil
	default:
		return "", fmt.Errorf("invalid report type: %q (expected results, appendices, or logic)", s)
	}
}

// Options control report assembly.
type Options struct {
	// IncludeBlockHeaders emits <h5> block headers in the results report.
	// The appendix report always emits them.
	IncludeBlockHeaders bool

	// NThreshold is the minimum categorized-response count (exclusive)
	// for a coded-comment table to be appendicized.
	NThreshold int

	// Base is the appendix label alphabet size.
	Base int
}

// DefaultOptions returns the standard assembly options.
func DefaultOptions() Options {
	return Options{
		IncludeBlockHeaders: true,
		NThreshold:          15,
		Base:                26,
	}
}
