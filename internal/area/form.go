package area

import (
	"slices"

	"github.com/google/uuid"
)

// DefaultWallHeight is the wall height text of an untouched form.
const DefaultWallHeight = "2.7"

// SegmentRow is one wall-segment input row.
type SegmentRow struct {
	ID     string `json:"id" yaml:"id"`
	Length string `json:"length" yaml:"length"`
}

// OpeningRow is one door/window input row.
type OpeningRow struct {
	ID     string `json:"id" yaml:"id"`
	Width  string `json:"width" yaml:"width"`
	Height string `json:"height" yaml:"height"`
}

// Form is the raw, unvalidated state of the calculator form. Row IDs identify rows
// independently of their position so that removing a row never relabels the others.
type Form struct {
	Height   string       `json:"height" yaml:"height"`
	Segments []SegmentRow `json:"segments" yaml:"segments"`
	Openings []OpeningRow `json:"openings" yaml:"openings"`
}

// DefaultState returns the canonical untouched form: the default wall height, one
// blank segment row and one blank opening row.
func DefaultState() Form {
	return Form{
		Height:   DefaultWallHeight,
		Segments: []SegmentRow{NewSegmentRow("")},
		Openings: []OpeningRow{NewOpeningRow("", "")},
	}
}

// IsDirty reports whether current differs from baseline in any field value, segment
// count or opening count. Row IDs are not compared.
func IsDirty(current, baseline Form) bool {
	if current.Height != baseline.Height {
		return true
	}
	if len(current.Segments) != len(baseline.Segments) || len(current.Openings) != len(baseline.Openings) {
		return true
	}
	for i := range current.Segments {
		if current.Segments[i].Length != baseline.Segments[i].Length {
			return true
		}
	}
	for i := range current.Openings {
		c, b := current.Openings[i], baseline.Openings[i]
		if c.Width != b.Width || c.Height != b.Height {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the form.
func (f Form) Clone() Form {
	return Form{
		Height:   f.Height,
		Segments: slices.Clone(f.Segments),
		Openings: slices.Clone(f.Openings),
	}
}

// AddSegment appends a segment row and returns its ID.
func (f *Form) AddSegment(length string) string {
	row := NewSegmentRow(length)
	f.Segments = append(f.Segments, row)
	return row.ID
}

// AddOpening appends an opening row and returns its ID.
func (f *Form) AddOpening(width, height string) string {
	row := NewOpeningRow(width, height)
	f.Openings = append(f.Openings, row)
	return row.ID
}

// RemoveSegment deletes the segment row with the given ID. It reports whether a row
// was removed.
func (f *Form) RemoveSegment(id string) bool {
	i := slices.IndexFunc(f.Segments, func(r SegmentRow) bool { return r.ID == id })
	if i < 0 {
		return false
	}
	f.Segments = slices.Delete(f.Segments, i, i+1)
	return true
}

// RemoveOpening deletes the opening row with the given ID. It reports whether a row
// was removed.
func (f *Form) RemoveOpening(id string) bool {
	i := slices.IndexFunc(f.Openings, func(r OpeningRow) bool { return r.ID == id })
	if i < 0 {
		return false
	}
	f.Openings = slices.Delete(f.Openings, i, i+1)
	return true
}

// NewSegmentRow returns a segment row with a fresh ID.
func NewSegmentRow(length string) SegmentRow {
	return SegmentRow{ID: uuid.NewString(), Length: length}
}

// NewOpeningRow returns an opening row with a fresh ID.
func NewOpeningRow(width, height string) OpeningRow {
	return OpeningRow{ID: uuid.NewString(), Width: width, Height: height}
}
