package report

import (
	"fmt"

	"github.com/surveytools/srpt/internal/render"
	"github.com/surveytools/srpt/internal/survey"
)

// Fixed description lines. These are contract strings: downstream documents
// reference them verbatim.
const (
	displayLogicReferral = "This question contains display logic. See the Survey Logic report."

	oneTextComponent   = "This question has a text entry component. See Appendix."
	manyTextComponents = "This question has multiple text entry components. See Appendices."
)

// descriptionLines builds the ordered description lines for a question:
// export tag, cleaned text, operator notes, display-logic referral,
// results-availability message, and text-component referral.
func descriptionLines(e *survey.BlockElement) []string {
	p := e.Payload
	lines := []string{
		"Export Tag: " + p.DataExportTag,
		p.QuestionTextClean,
	}
	if e.Notes != "" {
		lines = append(lines, e.Notes)
	}
	if survey.DisplayLogicPresent(p) {
		lines = append(lines, displayLogicReferral)
	}
	if line := availabilityLine(e); line != "" {
		lines = append(lines, line)
	}
	if line := textComponentLine(e); line != "" {
		lines = append(lines, line)
	}
	return lines
}

// availabilityLine explains a missing results table. Text entry questions
// refer the reader to the appendices; anything else without a table (and
// not purely text-columned) could not be processed. Questions with a table
// need no message.
func availabilityLine(e *survey.BlockElement) string {
	if e.Table != nil {
		return ""
	}
	tag := e.Payload.DataExportTag
	if survey.Classify(e) == survey.KindTextEntry {
		return fmt.Sprintf("Question %s is a text entry question. See Appendix.", tag)
	}
	if e.Responses != nil && e.Responses.AllColumnsText() {
		return ""
	}
	return fmt.Sprintf("The results table for Question %s could not be automatically processed.", tag)
}

func textComponentLine(e *survey.BlockElement) string {
	if survey.Classify(e) == survey.KindTextEntry || e.Responses == nil {
		return ""
	}
	switch n := len(e.Responses.TextColumnIndexes()); {
	case n == 1:
		return oneTextComponent
	case n > 1:
		return manyTextComponents
	}
	return ""
}

// describe renders a question's description table followed by its results
// table when one is present.
func describe(r render.TableRenderer, e *survey.BlockElement) string {
	out := r.Column(render.DescriptionClass, descriptionLines(e))
	if e.Table != nil {
		out += "\n" + r.Table(render.ResultsClass, e.Table.Header, e.Table.Rows)
	}
	return out
}
