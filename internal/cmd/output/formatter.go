// Package output provides formatters for command output.
package output

import (
	"encoding/json"
	"io"

	"github.com/goccy/go-yaml"

	"github.com/strmsync/strmsync/pkg/errors"
)

// Format types for output.
type Format string

const (
	// FormatJSON represents JSON output format.
	FormatJSON Format = "json"
	// FormatYAML represents YAML output format.
	FormatYAML Format = "yaml"
	// FormatNone suppresses report output (logs only).
	FormatNone Format = "none"
)

// Formatter interface for all output types.
type Formatter interface {
	Format(w io.Writer, data any) error
}

// NewFormatter creates the appropriate formatter based on format.
func NewFormatter(format Format) (Formatter, error) {
	switch format {
	case FormatJSON, "":
		return &JSONFormatter{Indent: "  "}, nil
	case FormatYAML:
		return &YAMLFormatter{}, nil
	case FormatNone:
		return &noneFormatter{}, nil
	default:
		return nil, &errors.ValidationError{
			Field:   "format",
			Value:   string(format),
			Message: "must be one of json, yaml, none",
		}
	}
}

// JSONFormatter outputs JSON format.
type JSONFormatter struct {
	Indent string
}

// Format implements the Formatter interface for JSON output.
func (f *JSONFormatter) Format(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	if f.Indent != "" {
		encoder.SetIndent("", f.Indent)
	}
	return encoder.Encode(data)
}

// YAMLFormatter outputs YAML format.
type YAMLFormatter struct{}

// Format implements the Formatter interface for YAML output.
func (f *YAMLFormatter) Format(w io.Writer, data any) error {
	encoded, err := yaml.Marshal(data)
	if err != nil {
		return errors.WrapParse("yaml", "report", err)
	}
	_, err = w.Write(encoded)
	return err
}

type noneFormatter struct{}

func (f *noneFormatter) Format(_ io.Writer, _ any) error {
	return nil
}
