// Package survey defines the decoded survey data model consumed by report
// generation.
//
// A Survey is a collection of Blocks, each holding an ordered sequence of
// BlockElements (questions). Elements are read-only inputs assembled by an
// upstream decoder; this package only inspects and projects them. The
// optional Flow expresses display order when it differs from declaration
// order.
package survey

import "strings"

// Sentinel is the reserved response value meaning "no response".
const Sentinel = "-99"

// TextColumnMarker identifies response columns that carry free-text input.
// A column is a text column when its identifier contains this marker.
const TextColumnMarker = "TEXT"

// Question type codes recognized by the classifier. Any other value is
// treated as a standard question.
const (
	// TypeTextEntry marks free-text questions ("TE").
	TypeTextEntry = "TE"

	// TypeDescriptive marks descriptive-box elements ("DB") that carry
	// no respondent data and are excluded from results output.
	TypeDescriptive = "DB"
)

// singleAnswerSelectors are the multiple-choice selectors that permit exactly
// one answer. A single-answer question with more than one text-entry choice
// cannot be split per-component from the response export.
var singleAnswerSelectors = map[string]bool{
	"SAVR": true, // single answer vertical
	"SAHR": true, // single answer horizontal
	"DL":   true, // dropdown list
	"SB":   true, // select box
}

// Survey is a decoded survey: its blocks in declaration order and an
// optional flow of block identifiers in display order.
type Survey struct {
	Name   string   `json:"name,omitempty"`
	Blocks []Block  `json:"blocks"`
	Flow   []string `json:"flow,omitempty"`
}

// Block groups questions under an identifier and a human-readable
// description. A block with no elements is inert and produces no output.
type Block struct {
	ID          string         `json:"id"`
	Description string         `json:"description"`
	Elements    []BlockElement `json:"elements,omitempty"`
}

// BlockElement is one entry of a block: question metadata plus any
// pre-tabulated data attached by upstream processing.
type BlockElement struct {
	// Payload carries the question metadata. An element without a payload
	// is not processable and contributes nothing to the results report.
	Payload *Payload `json:"payload,omitempty"`

	// Responses is the raw respondent answer table, when exported.
	Responses *ResponseTable `json:"responses,omitempty"`

	// Table is the pre-computed results tabulation. Its presence signals
	// that results are available for this question.
	Table *Table `json:"table,omitempty"`

	// CodedComments lists manually categorized open-ended components,
	// one (response column, frequency table) pair per component.
	CodedComments []CodedComment `json:"coded_comments,omitempty"`

	// Skip suppresses the element from all reports.
	Skip bool `json:"qt_skip,omitempty"`

	// VerbatimSkip suppresses the element from text appendices only.
	VerbatimSkip bool `json:"verbatim_skip,omitempty"`

	// Notes holds operator-authored notes shown in the description.
	Notes string `json:"qt_notes,omitempty"`
}

// Payload is a question's metadata bundle.
type Payload struct {
	QuestionType      string   `json:"question_type"`
	Selector          string   `json:"selector,omitempty"`
	DataExportTag     string   `json:"data_export_tag"`
	QuestionTextClean string   `json:"question_text_clean"`
	Choices           []Choice `json:"choices,omitempty"`
	Answers           []Choice `json:"answers,omitempty"`
	DisplayLogic      *Logic   `json:"display_logic,omitempty"`
	SkipLogic         []Logic  `json:"skip_logic,omitempty"`
}

// Choice is one selectable option of a question. Matrix questions carry
// their column options as Answers with the same shape.
type Choice struct {
	ID           string `json:"id"`
	Text         string `json:"text"`
	TextEntry    bool   `json:"text_entry,omitempty"`
	DisplayLogic *Logic `json:"display_logic,omitempty"`
}

// Logic is a display- or skip-logic branch reduced to its human-readable
// description by the upstream decoder.
type Logic struct {
	Description string `json:"description"`
}

// Table is a generic pre-rendered tabulation: an optional header row and
// data rows.
type Table struct {
	Header []string   `json:"header,omitempty"`
	Rows   [][]string `json:"rows"`
}

// CodedComment pairs a response column identifier with the frequency
// breakdown of its manually coded categories. The last row of the table
// holds the total categorized-response count in its second column.
type CodedComment struct {
	Column string `json:"column"`
	Table  Table  `json:"table"`
}

// ResponseTable holds raw respondent answers, columns named by
// response-field identifiers.
type ResponseTable struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// IsTextColumn reports whether a response column identifier names a
// free-text component.
func IsTextColumn(name string) bool {
	return strings.Contains(name, TextColumnMarker)
}

// IsNonResponse reports whether a cell value means "no response".
func IsNonResponse(v string) bool {
	return v == "" || v == Sentinel
}

// TextColumnIndexes returns the indexes of text columns in declaration
// order.
func (t *ResponseTable) TextColumnIndexes() []int {
	var idx []int
	for i, c := range t.Columns {
		if IsTextColumn(c) {
			idx = append(idx, i)
		}
	}
	return idx
}

// ColumnIndex returns the index of the named column, or -1.
func (t *ResponseTable) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// ColumnResponses returns the real responses in one column, dropping
// sentinel and empty cells. Only the requested column is materialized.
func (t *ResponseTable) ColumnResponses(col int) []string {
	if col < 0 || col >= len(t.Columns) {
		return nil
	}
	var out []string
	for _, row := range t.Rows {
		if col >= len(row) {
			continue
		}
		if !IsNonResponse(row[col]) {
			out = append(out, row[col])
		}
	}
	return out
}

// RespondedRows returns the rows in which at least one cell is a real
// response, projected onto the given columns. Passing no columns projects
// onto all columns.
func (t *ResponseTable) RespondedRows(cols ...int) [][]string {
	if len(cols) == 0 {
		cols = make([]int, len(t.Columns))
		for i := range cols {
			cols[i] = i
		}
	}
	var out [][]string
	for _, row := range t.Rows {
		answered := false
		for _, cell := range row {
			if !IsNonResponse(cell) {
				answered = true
				break
			}
		}
		if !answered {
			continue
		}
		projected := make([]string, len(cols))
		for i, c := range cols {
			if c >= 0 && c < len(row) {
				projected[i] = row[c]
			}
		}
		out = append(out, projected)
	}
	return out
}

// AllColumnsText reports whether every response column is a text column.
// A table with no columns reports false.
func (t *ResponseTable) AllColumnsText() bool {
	if t == nil || len(t.Columns) == 0 {
		return false
	}
	for _, c := range t.Columns {
		if !IsTextColumn(c) {
			return false
		}
	}
	return true
}

// ChoiceForColumn resolves the choice a text column belongs to. Columns are
// attributed by the identifier segment preceding the text marker, e.g.
// "Q5_3_TEXT" belongs to choice "3". Returns nil when no choice matches.
func (p *Payload) ChoiceForColumn(column string) *Choice {
	trimmed := strings.TrimSuffix(column, "_"+TextColumnMarker)
	if trimmed == column {
		return nil
	}
	parts := strings.Split(trimmed, "_")
	id := parts[len(parts)-1]
	for i := range p.Choices {
		if p.Choices[i].ID == id {
			return &p.Choices[i]
		}
	}
	return nil
}

// ExportTag returns the question's data export tag, or an empty string for
// payload-less elements.
func (e *BlockElement) ExportTag() string {
	if e.Payload == nil {
		return ""
	}
	return e.Payload.DataExportTag
}
