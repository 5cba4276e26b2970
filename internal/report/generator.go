package report

import (
	"fmt"

	"github.com/surveytools/srpt/internal/render"
	"github.com/surveytools/srpt/internal/survey"
)

// Generator assembles reports from a decoded survey. It holds no state
// across runs; per-run state (the appendix counter) lives in the run.
type Generator struct {
	renderer render.TableRenderer
	opts     Options
}

// NewGenerator creates a Generator rendering through the given renderer.
func NewGenerator(r render.TableRenderer, opts Options) *Generator {
	return &Generator{renderer: r, opts: opts}
}

// Generate assembles the named report.
func (g *Generator) Generate(s *survey.Survey, rt ReportType) (string, error) {
	switch rt {
	case ReportTypeResults:
		return g.Results(s), nil
	case ReportTypeAppendices:
		return g.Appendices(s), nil
	case ReportTypeLogic:
		return g.Logic(s), nil
	default:
		return "", fmt.Errorf("unknown report type: %q", rt)
	}
}
