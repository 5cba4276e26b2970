package report

import (
	"strings"
	"testing"

	"github.com/surveytools/srpt/internal/survey"
)

func TestGenerateDispatch(t *testing.T) {
	s := oneBlock(textEntryElement("Q1", "Comments?", [][]string{{"fine"}}))
	g := newTestGenerator(DefaultOptions())

	for _, rt := range []ReportType{ReportTypeResults, ReportTypeAppendices, ReportTypeLogic} {
		if _, err := g.Generate(s, rt); err != nil {
			t.Errorf("Generate(%s) error = %v", rt, err)
		}
	}

	if _, err := g.Generate(s, ReportType("bogus")); err == nil {
		t.Error("Generate(bogus) error = nil, want error")
	}
}

func TestParseReportType(t *testing.T) {
	tests := []struct {
		in      string
		want    ReportType
		wantErr bool
	}{
		{"results", ReportTypeResults, false},
		{"Appendices", ReportTypeAppendices, false},
		{" logic ", ReportTypeLogic, false},
		{"summary", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := ParseReportType(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseReportType(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseReportType(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	s := oneBlock(
		textEntryElement("Q1", "First?", [][]string{{"a"}}),
		survey.BlockElement{
			Payload: &survey.Payload{QuestionType: "MC", DataExportTag: "Q2", QuestionTextClean: "Role?"},
			Table:   &survey.Table{Header: []string{"Answer", "N"}, Rows: [][]string{{"Engineer", "10"}}},
		},
	)
	g := newTestGenerator(DefaultOptions())

	for _, rt := range []ReportType{ReportTypeResults, ReportTypeAppendices, ReportTypeLogic} {
		a, _ := g.Generate(s, rt)
		b, _ := g.Generate(s, rt)
		if a != b {
			t.Errorf("Generate(%s) differs between identical runs", rt)
		}
		if rt != ReportTypeLogic && !strings.Contains(a, "<table") {
			t.Errorf("Generate(%s) produced no tables:\n%s", rt, a)
		}
	}
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	if !opts.IncludeBlockHeaders {
		t.Error("IncludeBlockHeaders = false, want true")
	}
	if opts.NThreshold != 15 {
		t.Errorf("NThreshold = %d, want 15", opts.NThreshold)
	}
	if opts.Base != 26 {
		t.Errorf("Base = %d, want 26", opts.Base)
	}
}
