package report

import (
	"strings"
	"testing"

	"github.com/surveytools/srpt/internal/render"
	"github.com/surveytools/srpt/internal/survey"
)

func newTestGenerator(opts Options) *Generator {
	return NewGenerator(render.NewHTML(), opts)
}

func TestResultsSkipsExcludedElements(t *testing.T) {
	s := &survey.Survey{Blocks: []survey.Block{
		{ID: "b1", Description: "Block One", Elements: []survey.BlockElement{
			{Payload: &survey.Payload{QuestionType: "MC", DataExportTag: "Q1", QuestionTextClean: "Role?"},
				Table: &survey.Table{Rows: [][]string{{"Engineer", "10"}}}},
			{Skip: true,
				Payload: &survey.Payload{QuestionType: "MC", DataExportTag: "QSKIP", QuestionTextClean: "Hidden?"}},
			{Payload: &survey.Payload{QuestionType: survey.TypeDescriptive, DataExportTag: "QDB", QuestionTextClean: "Welcome text."}},
			{}, // no payload
		}},
	}}

	got := newTestGenerator(DefaultOptions()).Results(s)

	if !strings.Contains(got, "Export Tag: Q1") {
		t.Errorf("Results() missing Q1 description in:\n%s", got)
	}
	for _, absent := range []string{"QSKIP", "QDB", "Welcome text."} {
		if strings.Contains(got, absent) {
			t.Errorf("Results() contains excluded %q in:\n%s", absent, got)
		}
	}
}

func TestResultsBlockHeaders(t *testing.T) {
	s := &survey.Survey{Blocks: []survey.Block{
		{ID: "b1", Description: "Demographics", Elements: []survey.BlockElement{
			{Payload: &survey.Payload{QuestionType: "MC", DataExportTag: "Q1", QuestionTextClean: "Role?"},
				Table: &survey.Table{}},
		}},
		{ID: "empty", Description: "Empty Block"},
	}}

	got := newTestGenerator(DefaultOptions()).Results(s)
	if !strings.Contains(got, "<h5>Demographics</h5>") {
		t.Errorf("Results() missing block header in:\n%s", got)
	}
	if strings.Contains(got, "Empty Block") {
		t.Errorf("Results() emits header for empty block in:\n%s", got)
	}

	opts := DefaultOptions()
	opts.IncludeBlockHeaders = false
	got = newTestGenerator(opts).Results(s)
	if strings.Contains(got, "<h5>") {
		t.Errorf("Results() with headers disabled contains <h5> in:\n%s", got)
	}
}

func TestResultsStartsWithSpacer(t *testing.T) {
	got := newTestGenerator(DefaultOptions()).Results(&survey.Survey{})
	if got != "<br>" {
		t.Errorf("Results() on empty survey = %q, want %q", got, "<br>")
	}
}

func TestResultsFollowsFlowOrder(t *testing.T) {
	s := &survey.Survey{
		Blocks: []survey.Block{
			{ID: "b1", Description: "First Declared", Elements: []survey.BlockElement{
				{Payload: &survey.Payload{QuestionType: "MC", DataExportTag: "Q1", QuestionTextClean: "A?"}, Table: &survey.Table{}},
			}},
			{ID: "b2", Description: "Second Declared", Elements: []survey.BlockElement{
				{Payload: &survey.Payload{QuestionType: "MC", DataExportTag: "Q2", QuestionTextClean: "B?"}, Table: &survey.Table{}},
			}},
		},
		Flow: []string{"b2", "b1"},
	}

	got := newTestGenerator(DefaultOptions()).Results(s)
	if strings.Index(got, "Export Tag: Q2") > strings.Index(got, "Export Tag: Q1") {
		t.Errorf("Results() does not follow flow order:\n%s", got)
	}
}
