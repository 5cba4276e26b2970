package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Formatter is the interface for formatting command output values.
type Formatter interface {
	// Format formats a value as a string.
	Format(v interface{}) (string, error)

	// FormatToWriter writes formatted output directly to a writer.
	FormatToWriter(w io.Writer, v interface{}) error
}

// NewFormatter returns the formatter for a format.
func NewFormatter(f Format) (Formatter, error) {
	switch f {
	case FormatText:
		return &TextFormatter{}, nil
	case FormatYAML:
		return &YAMLFormatter{}, nil
	case FormatJSON:
		return &JSONFormatter{}, nil
	default:
		return nil, fmt.Errorf("no formatter for format %q", f)
	}
}

// YAMLFormatter formats values as YAML output.
type YAMLFormatter struct{}

// Format formats a value as YAML.
func (f *YAMLFormatter) Format(v interface{}) (string, error) {
	var buf bytes.Buffer
	if err := f.FormatToWriter(&buf, v); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// FormatToWriter writes YAML output to a writer.
func (f *YAMLFormatter) FormatToWriter(w io.Writer, v interface{}) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	defer encoder.Close()

	return encoder.Encode(v)
}

// JSONFormatter formats values as JSON output.
type JSONFormatter struct{}

// Format formats a value as JSON.
func (f *JSONFormatter) Format(v interface{}) (string, error) {
	var buf bytes.Buffer
	if err := f.FormatToWriter(&buf, v); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// FormatToWriter writes JSON output to a writer.
func (f *JSONFormatter) FormatToWriter(w io.Writer, v interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	return encoder.Encode(v)
}

// TextFormatter renders values through their String method when they have
// one, falling back to fmt's default formatting.
type TextFormatter struct{}

// Format formats a value as plain text.
func (f *TextFormatter) Format(v interface{}) (string, error) {
	if s, ok := v.(fmt.Stringer); ok {
		return s.String() + "\n", nil
	}
	return fmt.Sprintf("%v\n", v), nil
}

// FormatToWriter writes plain text output to a writer.
func (f *TextFormatter) FormatToWriter(w io.Writer, v interface{}) error {
	s, err := f.Format(v)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, s)
	return err
}
