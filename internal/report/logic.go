package report

import (
	"strings"

	"github.com/surveytools/srpt/internal/render"
	"github.com/surveytools/srpt/internal/survey"
)

// Logic assembles the survey logic report: one row per question carrying
// display logic (on the question or any of its choices or answers) or skip
// logic. Questions with no logic produce no output, and no block headers
// are emitted.
func (g *Generator) Logic(s *survey.Survey) string {
	var fragments []string

	for _, block := range s.OrderedBlocks() {
		for i := range block.Elements {
			p := block.Elements[i].Payload
			if p == nil {
				continue
			}
			lines := logicLines(p)
			if len(lines) == 0 {
				continue
			}
			row := append([]string{p.DataExportTag, p.QuestionTextClean}, lines...)
			fragments = append(fragments,
				g.renderer.Table(render.LogicClass, nil, [][]string{row}),
				g.renderer.Spacer())
		}
	}

	return strings.Join(fragments, "\n")
}

// logicLines gathers a question's logic descriptions: display logic from
// the question itself and its choices and answers, then skip logic entries,
// each preceded by the fixed marker line.
func logicLines(p *survey.Payload) []string {
	var lines []string
	if p.DisplayLogic != nil && p.DisplayLogic.Description != "" {
		lines = append(lines, p.DisplayLogic.Description)
	}
	for i := range p.Choices {
		if dl := p.Choices[i].DisplayLogic; dl != nil && dl.Description != "" {
			lines = append(lines, dl.Description)
		}
	}
	for i := range p.Answers {
		if dl := p.Answers[i].DisplayLogic; dl != nil && dl.Description != "" {
			lines = append(lines, dl.Description)
		}
	}
	for _, sl := range p.SkipLogic {
		lines = append(lines, skipLogicMarker, sl.Description)
	}
	return lines
}
