package mcp

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/surveytools/srpt/internal/report"
)

func TestNewRegistersAllToolsByDefault(t *testing.T) {
	s, err := New(Config{Options: report.DefaultOptions()})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	registered := s.ListTools()
	sort.Strings(registered)

	expected := make([]string, len(AllTools))
	copy(expected, AllTools)
	sort.Strings(expected)

	if len(registered) != len(expected) {
		t.Fatalf("ListTools() has %d tools, want %d", len(registered), len(expected))
	}
	for i, name := range expected {
		if registered[i] != name {
			t.Errorf("mismatch at index %d: got %s, want %s", i, registered[i], name)
		}
	}
}

func TestNewRegistersSubset(t *testing.T) {
	s, err := New(Config{
		Tools:   []string{"srpt_check"},
		Options: report.DefaultOptions(),
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	registered := s.ListTools()
	if len(registered) != 1 || registered[0] != "srpt_check" {
		t.Errorf("ListTools() = %v, want [srpt_check]", registered)
	}
}

func TestNewRejectsUnknownTool(t *testing.T) {
	_, err := New(Config{Tools: []string{"srpt_bogus"}})
	if err == nil {
		t.Fatal("New() error = nil, want unknown tool error")
	}
	if !strings.Contains(err.Error(), "srpt_bogus") {
		t.Errorf("New() error = %v, want naming srpt_bogus", err)
	}
}

func writeTestSurvey(t *testing.T) string {
	t.Helper()
	content := `{
  "blocks": [
    {
      "id": "b1",
      "description": "Block One",
      "elements": [
        {
          "payload": {
            "question_type": "TE",
            "data_export_tag": "Q1",
            "question_text_clean": "How do you feel?"
          },
          "responses": {
            "columns": ["Q1_TEXT"],
            "rows": [["good"], ["-99"]]
          }
        }
      ]
    }
  ]
}`
	path := filepath.Join(t.TempDir(), "survey.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func callRequest(name string, args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	if len(result.Content) == 0 {
		t.Fatal("result has no content")
	}
	tc, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("content is %T, want TextContent", result.Content[0])
	}
	return tc.Text
}

func TestHandleReport(t *testing.T) {
	s, err := New(Config{Options: report.DefaultOptions()})
	if err != nil {
		t.Fatal(err)
	}
	path := writeTestSurvey(t)

	req := callRequest("srpt_appendices", map[string]any{"survey": path})
	result, err := s.handleReport(req, report.ReportTypeAppendices)
	if err != nil {
		t.Fatalf("handleReport() error = %v", err)
	}
	if result.IsError {
		t.Fatalf("handleReport() returned error result: %s", resultText(t, result))
	}

	text := resultText(t, result)
	for _, want := range []string{"Appendix A", "good", "Responses: (1)"} {
		if !strings.Contains(text, want) {
			t.Errorf("handleReport() missing %q in:\n%s", want, text)
		}
	}
}

func TestHandleReportMissingSurvey(t *testing.T) {
	s, err := New(Config{Options: report.DefaultOptions()})
	if err != nil {
		t.Fatal(err)
	}

	result, err := s.handleReport(callRequest("srpt_results", nil), report.ReportTypeResults)
	if err != nil {
		t.Fatalf("handleReport() error = %v", err)
	}
	if !result.IsError {
		t.Error("handleReport() without survey did not return error result")
	}
}

func TestHandleReportOptionOverrides(t *testing.T) {
	s, err := New(Config{Options: report.DefaultOptions()})
	if err != nil {
		t.Fatal(err)
	}
	path := writeTestSurvey(t)

	req := callRequest("srpt_results", map[string]any{
		"survey":        path,
		"block_headers": false,
	})
	result, err := s.handleReport(req, report.ReportTypeResults)
	if err != nil {
		t.Fatalf("handleReport() error = %v", err)
	}
	if text := resultText(t, result); strings.Contains(text, "<h5>") {
		t.Errorf("handleReport() with block_headers=false emitted headers:\n%s", text)
	}
}

func TestHandleCheck(t *testing.T) {
	s, err := New(Config{Options: report.DefaultOptions()})
	if err != nil {
		t.Fatal(err)
	}
	path := writeTestSurvey(t)

	req := callRequest("srpt_check", map[string]any{"survey": path, "format": "json"})
	result, err := s.handleCheck(t.Context(), req)
	if err != nil {
		t.Fatalf("handleCheck() error = %v", err)
	}
	if result.IsError {
		t.Fatalf("handleCheck() returned error result: %s", resultText(t, result))
	}
	if text := resultText(t, result); !strings.Contains(text, `"total_questions": 1`) {
		t.Errorf("handleCheck() missing count in:\n%s", text)
	}
}

func TestHandleCheckInvalidFormat(t *testing.T) {
	s, err := New(Config{Options: report.DefaultOptions()})
	if err != nil {
		t.Fatal(err)
	}

	req := callRequest("srpt_check", map[string]any{"survey": writeTestSurvey(t), "format": "xml"})
	result, err := s.handleCheck(t.Context(), req)
	if err != nil {
		t.Fatalf("handleCheck() error = %v", err)
	}
	if !result.IsError {
		t.Error("handleCheck() with invalid format did not return error result")
	}
}
