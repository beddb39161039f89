package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"wallarea/internal/area"
)

var opts = Options{Unit: "m", Precision: 2}

func calculate(t *testing.T, height string, segments []string, openings ...[2]string) Report {
	t.Helper()
	f := area.Form{Height: height}
	for _, s := range segments {
		f.AddSegment(s)
	}
	for _, o := range openings {
		f.AddOpening(o[0], o[1])
	}
	result, err := area.Calculate(f)
	return New(result, err, "m")
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("JSON")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)

	_, err = ParseFormat("xml")
	assert.Error(t, err)
}

func TestFormatArea(t *testing.T) {
	assert.Equal(t, "11.50 square meters", FormatArea(11.5, 2, "m"))
	assert.Equal(t, "18 square feet", FormatArea(18, 0, "ft"))
	assert.Equal(t, "1.000 square rods", FormatArea(1, 3, "rods"))
}

func TestText(t *testing.T) {
	r := calculate(t, "2.7", []string{"5"}, [2]string{"1", "2"})
	require.True(t, r.OK)

	assert.Equal(t, "Total Wall Area (excluding doors and windows):\n11.50 square meters\n", Text(r, opts))
}

func TestText_Errors(t *testing.T) {
	r := calculate(t, "2", []string{"x"}, [2]string{"1", "3"})
	require.False(t, r.OK)

	assert.Equal(t,
		"segments.0.length: Must be a valid number.\n"+
			"openings.0.height: Opening height cannot be greater than height of the wall.\n",
		Text(r, opts))
}

func TestRender_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, FormatJSON, calculate(t, "3", []string{"4", "2"}), opts))

	var decoded struct {
		OK     bool `json:"ok"`
		Result struct {
			NetArea float64 `json:"net_area"`
		} `json:"result"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.True(t, decoded.OK)
	assert.InDelta(t, 18, decoded.Result.NetArea, 1e-9)
	assert.NotContains(t, buf.String(), "errors")
}

func TestRender_YAMLErrors(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, FormatYAML, calculate(t, "2.7", nil), opts))

	var decoded Report
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.False(t, decoded.OK)
	require.Len(t, decoded.Errors, 1)
	assert.Equal(t, FieldError{Field: "segments", Kind: "structural", Message: area.MsgNoSegments}, decoded.Errors[0])
}

func TestRender_Markdown(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, FormatMarkdown, calculate(t, "3", []string{"4", "2"}, [2]string{"1", "2"}), opts))

	out := buf.String()
	assert.Contains(t, out, "Gross area")
	assert.Contains(t, out, "18.00 square meters")
	assert.Contains(t, Markdown(calculate(t, "3", []string{"4", "2"}, [2]string{"1", "2"}), opts), "| **Net area** | **16.00 square meters** |")
}

func TestMarkdown_NegativeArea(t *testing.T) {
	r := calculate(t, "2", []string{"1"}, [2]string{"3", "2"})
	require.True(t, r.OK)
	assert.Contains(t, Markdown(r, opts), "Openings exceed the wall area.")
}

func TestNew_NonValidationError(t *testing.T) {
	r := New(area.CalculationResult{}, errors.New("boom"), "m")
	assert.False(t, r.OK)
	require.Len(t, r.Errors, 1)
	assert.Equal(t, "form", r.Errors[0].Field)
}

func TestRender_UnknownFormat(t *testing.T) {
	assert.Error(t, Render(&bytes.Buffer{}, Format("xml"), Report{}, opts))
}
