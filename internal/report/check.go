package report

import (
	"strings"

	"github.com/surveytools/srpt/internal/survey"
)

// CheckData summarizes which questions could not be automatically
// processed: questions lacking a results table that are neither text entry,
// descriptive, nor text-selector questions.
type CheckData struct {
	// TotalQuestions counts every element carrying a payload.
	TotalQuestions int `yaml:"total_questions" json:"total_questions"`

	// Unprocessed lists the export tags of unprocessable questions, in
	// display order.
	Unprocessed []string `yaml:"unprocessed,omitempty" json:"unprocessed,omitempty"`
}

// Check inspects the survey's flat question set and reports which
// questions lack an automatically produced results table.
func Check(s *survey.Survey) CheckData {
	data := CheckData{}
	for _, e := range s.Questions() {
		p := e.Payload
		if p == nil {
			continue
		}
		data.TotalQuestions++
		if e.Table != nil {
			continue
		}
		if p.QuestionType == survey.TypeTextEntry || p.QuestionType == survey.TypeDescriptive {
			continue
		}
		if p.Selector == survey.TypeTextEntry {
			continue
		}
		data.Unprocessed = append(data.Unprocessed, p.DataExportTag)
	}
	return data
}

// String renders the informational summary sentence.
func (d CheckData) String() string {
	if len(d.Unprocessed) == 0 {
		return "All questions were successfully processed."
	}
	return "The following questions could not be automatically processed: " +
		strings.Join(d.Unprocessed, ", ")
}
