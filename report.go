package fpidioms

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"sigs.k8s.io/yaml"
)

// Format selects how a Report is encoded.
type Format string

// Supported formats.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ErrUnknownFormat is returned for a format other than text, json or yaml.
var ErrUnknownFormat = errors.New("unknown output format")

// ParseFormat validates s and returns the matching Format.
// Matching is case-insensitive; an empty string means text.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatText, nil
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Line is one rendered demonstration.
type Line struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Report is the rendered output of a run.
type Report struct {
	Lines []Line `json:"lines"`
}

// Encode writes the report to w in the requested format.
// The text format is byte-identical to Runner.Run.
func (r Report) Encode(w io.Writer, format Format) error {
	var (
		data []byte
		err  error
	)

	switch format {
	case FormatText:
		data = []byte(Fold(r.Lines, "", func(acc string, l Line) string {
			return acc + l.Label + ": " + l.Value + "\n"
		}))
	case FormatJSON:
		data, err = json.MarshalIndent(r, "", "  ")
	case FormatYAML:
		data, err = yaml.Marshal(r)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, string(format))
	}
	if err != nil {
		return fmt.Errorf("encode %s report: %w", format, err)
	}
	if format == FormatJSON {
		data = append(data, '\n')
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write %s report: %w", format, err)
	}
	return nil
}
