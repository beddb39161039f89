// Package report renders calculation outcomes for the command line.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"gopkg.in/yaml.v3"

	"wallarea/internal/area"
)

// Format selects an output encoding.
type Format string

const (
	FormatText     Format = "text"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatMarkdown Format = "markdown"
)

// Formats lists every supported format.
var Formats = []Format{FormatText, FormatJSON, FormatYAML, FormatMarkdown}

// ParseFormat parses a --output value.
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats {
		if string(f) == strings.ToLower(s) {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown output format %q (valid: %v)", s, Formats)
}

// Options control number formatting.
type Options struct {
	Unit      string
	Precision int
	// WordWrap is the markdown wrap width; 0 means 80.
	WordWrap int
	// Style is the glamour style for markdown; empty means "notty".
	Style string
}

// FieldError is the serialized form of an area.ValidationError.
type FieldError struct {
	Field   string `json:"field" yaml:"field"`
	Kind    string `json:"kind" yaml:"kind"`
	Message string `json:"message" yaml:"message"`
}

// Report is the outcome of one calculation, ready to encode.
type Report struct {
	OK     bool                    `json:"ok" yaml:"ok"`
	Unit   string                  `json:"unit" yaml:"unit"`
	Result *area.CalculationResult `json:"result,omitempty" yaml:"result,omitempty"`
	Errors []FieldError            `json:"errors,omitempty" yaml:"errors,omitempty"`
}

// New builds a Report from the return values of area.Calculate. Errors that are not
// validation errors are reported under the field "form".
func New(result area.CalculationResult, err error, unit string) Report {
	if err == nil {
		return Report{OK: true, Unit: unit, Result: &result}
	}

	r := Report{Unit: unit}
	var verrs area.ValidationErrors
	if !errors.As(err, &verrs) {
		r.Errors = []FieldError{{Field: "form", Kind: "internal", Message: err.Error()}}
		return r
	}
	for _, e := range verrs {
		r.Errors = append(r.Errors, FieldError{
			Field:   e.Path.String(),
			Kind:    string(e.Kind),
			Message: e.Message,
		})
	}
	return r
}

// AreaUnit returns the spelled-out square unit for a length unit, e.g. "square meters".
func AreaUnit(unit string) string {
	switch strings.ToLower(unit) {
	case "m", "meter", "meters", "metre", "metres":
		return "square meters"
	case "cm":
		return "square centimeters"
	case "mm":
		return "square millimeters"
	case "ft", "foot", "feet":
		return "square feet"
	case "in", "inch", "inches":
		return "square inches"
	case "yd", "yard", "yards":
		return "square yards"
	}
	return "square " + unit
}

// FormatArea formats an area value with its unit, e.g. "11.50 square meters".
func FormatArea(v float64, precision int, unit string) string {
	return fmt.Sprintf("%.*f %s", precision, v, AreaUnit(unit))
}

// Render writes r to w in the given format.
func Render(w io.Writer, f Format, r Report, opts Options) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	case FormatMarkdown:
		return renderMarkdown(w, r, opts)
	case FormatText, "":
		_, err := io.WriteString(w, Text(r, opts))
		return err
	}
	return fmt.Errorf("unknown output format %q", f)
}

// Text renders the plain-text form used by the default output.
func Text(r Report, opts Options) string {
	var sb strings.Builder
	if r.OK {
		sb.WriteString("Total Wall Area (excluding doors and windows):\n")
		sb.WriteString(FormatArea(r.Result.NetArea, opts.Precision, opts.Unit))
		sb.WriteString("\n")
		return sb.String()
	}
	for _, e := range r.Errors {
		fmt.Fprintf(&sb, "%s: %s\n", e.Field, e.Message)
	}
	return sb.String()
}

// Markdown returns the markdown source rendered by the markdown format.
func Markdown(r Report, opts Options) string {
	var sb strings.Builder
	sb.WriteString("# Wall Area\n\n")
	if !r.OK {
		sb.WriteString("Input is invalid:\n\n")
		for _, e := range r.Errors {
			fmt.Fprintf(&sb, "- `%s`: %s\n", e.Field, e.Message)
		}
		return sb.String()
	}

	res := r.Result
	sq := AreaUnit(opts.Unit)
	sb.WriteString("| Figure | Value |\n|---|---:|\n")
	fmt.Fprintf(&sb, "| Total wall length | %.*f %s |\n", opts.Precision, res.TotalLength, opts.Unit)
	fmt.Fprintf(&sb, "| Gross area | %.*f %s |\n", opts.Precision, res.GrossArea, sq)
	fmt.Fprintf(&sb, "| Doors and windows | %.*f %s |\n", opts.Precision, res.OpeningArea, sq)
	fmt.Fprintf(&sb, "| **Net area** | **%.*f %s** |\n", opts.Precision, res.NetArea, sq)
	if res.NetArea < 0 {
		sb.WriteString("\n> Openings exceed the wall area.\n")
	}
	return sb.String()
}

func renderMarkdown(w io.Writer, r Report, opts Options) error {
	wrap := opts.WordWrap
	if wrap <= 0 {
		wrap = 80
	}
	style := opts.Style
	if style == "" {
		style = "notty"
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		return fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	out, err := renderer.Render(Markdown(r, opts))
	if err != nil {
		return fmt.Errorf("failed to render markdown: %w", err)
	}
	_, err = io.WriteString(w, out)
	return err
}
