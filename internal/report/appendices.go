package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/surveytools/srpt/internal/render"
	"github.com/surveytools/srpt/internal/survey"
)

// Fixed appendix strings.
const (
	noRespondents      = "No respondents answered this question."
	verbatimDisclaimer = "Responses are reproduced verbatim as entered by respondents."
	codedCommentsTag   = "Coded Comments"
	skipLogicMarker    = "Skip Logic:"
)

// Appendices assembles the text-appendix report: coded-comment breakdowns
// and verbatim free-text responses, in display order.
//
// One appendix number is consumed per emitted unit: a coded-comment table,
// a text-entry table, a per-column table, or a no-respondents placeholder.
// The not-automatable notice is informational and consumes none. The
// counter lives in the run, so concurrent runs never share state.
func (g *Generator) Appendices(s *survey.Survey) string {
	run := &appendixRun{g: g, next: 1}

	for _, block := range s.OrderedBlocks() {
		if len(block.Elements) == 0 {
			continue
		}
		run.fragments = append(run.fragments, g.renderer.Heading(block.Description))
		for i := range block.Elements {
			e := &block.Elements[i]
			if survey.Classify(e) == survey.KindSkip || e.Payload == nil {
				continue
			}
			run.codedComments(e)
			run.verbatim(e)
		}
	}

	return strings.Join(run.fragments, "\n")
}

// appendixRun threads the appendix counter and collected fragments through
// one traversal.
type appendixRun struct {
	g         *Generator
	next      int
	fragments []string
}

func (r *appendixRun) label() string {
	return Label(r.next, r.g.opts.Base)
}

// emit appends one appendix fragment followed by a spacer and consumes the
// current appendix number.
func (r *appendixRun) emit(fragment string) {
	r.fragments = append(r.fragments, fragment, r.g.renderer.Spacer())
	r.next++
}

// note appends an informational fragment without consuming a number.
func (r *appendixRun) note(fragment string) {
	r.fragments = append(r.fragments, fragment, r.g.renderer.Spacer())
}

// codedComments emits one appendix per coded-comment component whose final
// categorized count strictly exceeds the threshold.
func (r *appendixRun) codedComments(e *survey.BlockElement) {
	for _, cc := range e.CodedComments {
		count, ok := categorizedCount(cc.Table)
		if !ok || count <= float64(r.g.opts.NThreshold) {
			continue
		}
		rows := [][]string{
			{"Appendix " + r.label(), ""},
			{questionText(e, cc.Column), ""},
			{codedCommentsTag, ""},
			{"", ""},
			{"Responses", "N"},
		}
		rows = append(rows, cc.Table.Rows...)
		r.emit(r.g.renderer.Table(render.AppendixClass, nil, rows))
	}
}

// categorizedCount reads the total categorized-response count from the last
// row's second column of a coded-comment frequency table.
func categorizedCount(t survey.Table) (float64, bool) {
	if len(t.Rows) == 0 {
		return 0, false
	}
	last := t.Rows[len(t.Rows)-1]
	if len(last) < 2 {
		return 0, false
	}
	n, err := strconv.ParseFloat(strings.TrimSpace(last[1]), 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// verbatim emits the verbatim-response appendices for one question, gated
// by the verbatim-skip flag and the presence of response columns.
func (r *appendixRun) verbatim(e *survey.BlockElement) {
	if e.VerbatimSkip || e.Responses == nil || len(e.Responses.Columns) == 0 {
		return
	}
	switch survey.Classify(e) {
	case survey.KindTextEntry:
		r.textEntry(e)
	case survey.KindTextColumns:
		r.textColumns(e)
	}
}

// textEntry emits one appendix spanning all text-entry columns jointly.
// Rows in which every cell is a non-response are dropped; if nothing
// remains the placeholder is emitted instead. Either way one appendix
// number is consumed.
func (r *appendixRun) textEntry(e *survey.BlockElement) {
	cols := e.Responses.TextColumnIndexes()
	rows := e.Responses.RespondedRows(cols...)
	if len(rows) == 0 {
		r.placeholder(e, "")
		return
	}

	if len(cols) == 0 {
		cols = make([]int, len(e.Responses.Columns))
		for i := range cols {
			cols[i] = i
		}
	}

	countLine := fmt.Sprintf("Responses: (%d)", len(rows))
	header := make([][]string, 5)
	for li, line := range []string{"Appendix " + r.label(), "", verbatimDisclaimer, "", countLine} {
		header[li] = make([]string, len(cols))
		for ci := range cols {
			header[li][ci] = line
		}
	}
	for ci, col := range cols {
		header[1][ci] = questionText(e, e.Responses.Columns[col])
	}

	r.emit(r.g.renderer.Table(render.AppendixClass, nil, append(header, rows...)))
}

// textColumns emits one appendix per text-marked column of a non-TE
// question. Columns with no responses produce the placeholder. A
// single-answer question with multiple text-entry choices cannot be split
// per component: it produces one not-automatable notice and no further
// column output.
func (r *appendixRun) textColumns(e *survey.BlockElement) {
	for _, col := range e.Responses.TextColumnIndexes() {
		name := e.Responses.Columns[col]
		values := e.Responses.ColumnResponses(col)
		if len(values) == 0 {
			r.placeholder(e, name)
			continue
		}
		if survey.MultiTextSingleAnswer(e.Payload) {
			r.note(r.g.renderer.Column(render.AppendixClass, []string{notAutomatable(e.Payload.DataExportTag)}))
			return
		}
		lines := []string{
			"Appendix " + r.label(),
			questionText(e, name),
			verbatimDisclaimer,
			"",
			fmt.Sprintf("Responses: (%d)", len(values)),
		}
		r.emit(r.g.renderer.Column(render.AppendixClass, append(lines, values...)))
	}
}

// placeholder emits the fixed no-respondents appendix, consuming one
// appendix number.
func (r *appendixRun) placeholder(e *survey.BlockElement, column string) {
	lines := []string{
		"Appendix " + r.label(),
		questionText(e, column),
		"",
		noRespondents,
	}
	r.emit(r.g.renderer.Column(render.AppendixClass, lines))
}

// questionText returns the question text, suffixed with the choice text the
// given response column corresponds to, when one matches.
func questionText(e *survey.BlockElement, column string) string {
	text := e.Payload.QuestionTextClean
	if column == "" {
		return text
	}
	if c := e.Payload.ChoiceForColumn(column); c != nil {
		return text + " (" + c.Text + ")"
	}
	return text
}

func notAutomatable(tag string) string {
	return fmt.Sprintf("The text responses to Question %s could not be automatically processed because it is a single answer question with multiple text entry components.", tag)
}
