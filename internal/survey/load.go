package survey

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Load reads a decoded survey document from a JSON file.
func Load(path string) (*Survey, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening survey file: %w", err)
	}
	defer f.Close()

	s, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return s, nil
}

// Decode parses a decoded survey document from a reader and validates it.
func Decode(r io.Reader) (*Survey, error) {
	dec := json.NewDecoder(r)
	s := &Survey{}
	if err := dec.Decode(s); err != nil {
		return nil, fmt.Errorf("parsing survey JSON: %w", err)
	}
	if err := Validate(s); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks the structural contract of a decoded survey. Optional
// fields may be absent, but an element that carries a payload must name a
// question type, and response rows must not be wider than their column set.
// Violations are contract errors reported to the caller, never silently
// rendered as blank output.
func Validate(s *Survey) error {
	seen := make(map[string]bool, len(s.Blocks))
	for bi := range s.Blocks {
		b := &s.Blocks[bi]
		if b.ID == "" {
			return fmt.Errorf("block %d: missing identifier", bi)
		}
		if seen[b.ID] {
			// Duplicate identifiers are legal but make those blocks
			// unaddressable from the flow; resolution drops them.
			continue
		}
		seen[b.ID] = true

		for ei := range b.Elements {
			if err := validateElement(&b.Elements[ei]); err != nil {
				return fmt.Errorf("block %s element %d: %w", b.ID, ei, err)
			}
		}
	}
	return nil
}

func validateElement(e *BlockElement) error {
	if e.Payload != nil {
		if e.Payload.QuestionType == "" {
			return fmt.Errorf("payload missing question type")
		}
		if e.Payload.DataExportTag == "" {
			return fmt.Errorf("payload missing data export tag")
		}
	}
	if e.Responses != nil {
		width := len(e.Responses.Columns)
		for ri, row := range e.Responses.Rows {
			if len(row) > width {
				return fmt.Errorf("response row %d has %d cells for %d columns", ri, len(row), width)
			}
		}
	}
	for _, cc := range e.CodedComments {
		if cc.Column == "" {
			return fmt.Errorf("coded comment missing column identifier")
		}
	}
	return nil
}
