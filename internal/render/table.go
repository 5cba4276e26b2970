// Package render provides the HTML table renderer shared by all report
// assemblers.
package render

import (
	"fmt"
	"html"
	"strings"
)

// CSS classes carried on emitted tables. Reports are styled by their host
// page; these classes are the only styling hooks the generator emits.
const (
	// DescriptionClass marks per-question description tables.
	DescriptionClass = "question_description data table table-bordered table-condensed"

	// ResultsClass marks tabulated-results tables.
	ResultsClass = "data table table-bordered table-condensed"

	// AppendixClass marks verbatim-response appendix tables.
	AppendixClass = "text_appendices data table table-bordered table-condensed"

	// LogicClass marks display/skip logic tables.
	LogicClass = "survey_logic data table table-bordered table-condensed"
)

// TableRenderer produces report markup from cell matrices. All four report
// builders consume the same capability, so output format is swappable in
// one place.
type TableRenderer interface {
	// Table renders a bordered table with the given class. The header row
	// is omitted when nil. Cells are escaped; values are otherwise
	// reproduced verbatim.
	Table(class string, header []string, rows [][]string) string

	// Column renders a bordered single-column table from a list of lines.
	Column(class string, lines []string) string

	// Heading renders a block header.
	Heading(text string) string

	// Spacer renders the separator placed between report fragments.
	Spacer() string
}

// HTML renders tables as HTML markup with escaped cell content.
type HTML struct{}

// NewHTML creates the HTML table renderer.
func NewHTML() *HTML {
	return &HTML{}
}

// Table renders a bordered HTML table.
func (h *HTML) Table(class string, header []string, rows [][]string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<table border=1 class=\"%s\">\n", class)
	if header != nil {
		b.WriteString("<thead>\n<tr>")
		for _, cell := range header {
			fmt.Fprintf(&b, "<th>%s</th>", esc(cell))
		}
		b.WriteString("</tr>\n</thead>\n")
	}
	b.WriteString("<tbody>\n")
	for _, row := range rows {
		b.WriteString("<tr>")
		for _, cell := range row {
			fmt.Fprintf(&b, "<td>%s</td>", esc(cell))
		}
		b.WriteString("</tr>\n")
	}
	b.WriteString("</tbody>\n</table>")
	return b.String()
}

// Column renders each line as one single-cell row.
func (h *HTML) Column(class string, lines []string) string {
	rows := make([][]string, len(lines))
	for i, line := range lines {
		rows[i] = []string{line}
	}
	return h.Table(class, nil, rows)
}

// Heading renders an <h5> block header.
func (h *HTML) Heading(text string) string {
	return fmt.Sprintf("<h5>%s</h5>", esc(text))
}

// Spacer renders a <br> separator.
func (h *HTML) Spacer() string {
	return "<br>"
}

func esc(s string) string {
	return html.EscapeString(s)
}
