package survey

import "fmt"

// Kind is the closed classification of a block element. Every element
// resolves to exactly one Kind; assemblers dispatch on it rather than
// probing attributes.
type Kind int

const (
	// KindStandard is a processable question with no special handling.
	KindStandard Kind = iota

	// KindSkip suppresses the element from all reports.
	KindSkip

	// KindDescriptive is a descriptive box ("DB"): shown to respondents
	// but carrying no data, so excluded from results output.
	KindDescriptive

	// KindTextEntry is a free-text question ("TE").
	KindTextEntry

	// KindTextColumns is a non-TE question with at least one text-marked
	// response column (a text entry component on a choice).
	KindTextColumns
)

// String returns the classification name.
func (k Kind) String() string {
	switch k {
	case KindStandard:
		return "standard"
	case KindSkip:
		return "skip"
	case KindDescriptive:
		return "descriptive"
	case KindTextEntry:
		return "text_entry"
	case KindTextColumns:
		return "text_columns"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Classify resolves a block element to its Kind. Precedence: the skip flag
// wins over everything, then the question type, then response column shape.
func Classify(e *BlockElement) Kind {
	if e.Skip {
		return KindSkip
	}
	if e.Payload != nil {
		switch e.Payload.QuestionType {
		case TypeDescriptive:
			return KindDescriptive
		case TypeTextEntry:
			return KindTextEntry
		}
	}
	if e.Responses != nil && len(e.Responses.TextColumnIndexes()) > 0 {
		return KindTextColumns
	}
	return KindStandard
}

// DisplayLogicPresent reports whether the question, or any of its choices
// or answers, carries a display-logic branch.
func DisplayLogicPresent(p *Payload) bool {
	if p == nil {
		return false
	}
	if p.DisplayLogic != nil {
		return true
	}
	for i := range p.Choices {
		if p.Choices[i].DisplayLogic != nil {
			return true
		}
	}
	for i := range p.Answers {
		if p.Answers[i].DisplayLogic != nil {
			return true
		}
	}
	return false
}

// MultiTextSingleAnswer reports whether the question is a single-answer
// multiple-choice question with more than one text-entry-enabled choice.
// Such questions cannot be reliably split per-component from the response
// export and are flagged as not automatable instead of tabled.
func MultiTextSingleAnswer(p *Payload) bool {
	if p == nil || !singleAnswerSelectors[p.Selector] {
		return false
	}
	textEntry := 0
	for i := range p.Choices {
		if p.Choices[i].TextEntry {
			textEntry++
		}
	}
	return textEntry > 1
}
