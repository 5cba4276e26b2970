package report

import (
	"strings"

	"github.com/surveytools/srpt/internal/survey"
)

// Results assembles the results-table report: per-question descriptions and
// tabulated results, in display order.
//
// Skipped and descriptive elements contribute nothing, as do elements
// without a payload (they carry no question to describe). Block headers are
// emitted for non-empty blocks when Options.IncludeBlockHeaders is set.
func (g *Generator) Results(s *survey.Survey) string {
	fragments := []string{g.renderer.Spacer()}

	for _, block := range s.OrderedBlocks() {
		if len(block.Elements) == 0 {
			continue
		}
		if g.opts.IncludeBlockHeaders {
			fragments = append(fragments, g.renderer.Heading(block.Description))
		}
		for i := range block.Elements {
			e := &block.Elements[i]
			switch survey.Classify(e) {
			case survey.KindSkip, survey.KindDescriptive:
				continue
			}
			if e.Payload == nil || e.Payload.QuestionType == "" {
				continue
			}
			fragments = append(fragments, describe(g.renderer, e))
		}
	}

	return strings.Join(fragments, "\n")
}
