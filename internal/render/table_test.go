package render

import (
	"strings"
	"testing"
)

func TestTableStructure(t *testing.T) {
	r := NewHTML()
	got := r.Table(ResultsClass, []string{"Answer", "N"}, [][]string{
		{"Yes", "10"},
		{"No", "5"},
	})

	for _, want := range []string{
		`<table border=1 class="data table table-bordered table-condensed">`,
		"<thead>",
		"<th>Answer</th><th>N</th>",
		"<td>Yes</td><td>10</td>",
		"<td>No</td><td>5</td>",
		"</tbody>",
		"</table>",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Table() missing %q in:\n%s", want, got)
		}
	}
}

func TestTableNoHeader(t *testing.T) {
	r := NewHTML()
	got := r.Table(LogicClass, nil, [][]string{{"Q1", "text"}})

	if strings.Contains(got, "<thead>") {
		t.Errorf("Table() with nil header contains <thead>:\n%s", got)
	}
	if !strings.Contains(got, "<td>Q1</td><td>text</td>") {
		t.Errorf("Table() missing row in:\n%s", got)
	}
}

func TestTableEscapesCells(t *testing.T) {
	r := NewHTML()
	got := r.Table(AppendixClass, []string{"<script>"}, [][]string{
		{`respondent said "5 < 6 & 7 > 3"`},
	})

	if strings.Contains(got, "<script>") {
		t.Errorf("Table() did not escape header:\n%s", got)
	}
	for _, want := range []string{"&lt;script&gt;", "&#34;5 &lt; 6 &amp; 7 &gt; 3&#34;"} {
		if !strings.Contains(got, want) {
			t.Errorf("Table() missing escaped %q in:\n%s", want, got)
		}
	}
}

func TestColumn(t *testing.T) {
	r := NewHTML()
	got := r.Column(DescriptionClass, []string{"Export Tag: Q1", "How do you feel?"})

	if !strings.Contains(got, `class="question_description data table table-bordered table-condensed"`) {
		t.Errorf("Column() missing class in:\n%s", got)
	}
	if !strings.Contains(got, "<tr><td>Export Tag: Q1</td></tr>") {
		t.Errorf("Column() missing first line row in:\n%s", got)
	}
	if !strings.Contains(got, "<tr><td>How do you feel?</td></tr>") {
		t.Errorf("Column() missing second line row in:\n%s", got)
	}
}

func TestHeadingAndSpacer(t *testing.T) {
	r := NewHTML()

	if got, want := r.Heading("Block 1 <Demographics>"), "<h5>Block 1 &lt;Demographics&gt;</h5>"; got != want {
		t.Errorf("Heading() = %q, want %q", got, want)
	}
	if got, want := r.Spacer(), "<br>"; got != want {
		t.Errorf("Spacer() = %q, want %q", got, want)
	}
}
