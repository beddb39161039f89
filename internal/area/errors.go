package area

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidInput matches any ValidationErrors value via errors.Is.
var ErrInvalidInput = errors.New("invalid input")

// Messages reported to the user.
const (
	MsgInvalidNumber   = "Must be a valid number."
	MsgNoSegments      = "Must contain at least one wall segment."
	MsgOpeningTooTall  = "Opening height cannot be greater than height of the wall."
	MsgOpeningsTooWide = "Total width of openings cannot be greater than total length of the walls."
	MsgAreaOutOfRange  = "Wall area is too large to calculate."
)

// ErrorKind classifies a validation failure.
type ErrorKind string

const (
	// KindParse: a numeric field is not a positive finite number.
	KindParse ErrorKind = "parse"
	// KindStructural: a required collection is empty.
	KindStructural ErrorKind = "structural"
	// KindCrossField: a constraint spanning several fields is violated.
	KindCrossField ErrorKind = "cross_field"
)

// PathSegment is one step of a FieldPath: either a named field or a sequence index.
type PathSegment struct {
	Name    string
	Index   int
	IsIndex bool
}

// Key returns a named path segment.
func Key(name string) PathSegment {
	return PathSegment{Name: name}
}

// Index returns an indexed path segment.
func Index(i int) PathSegment {
	return PathSegment{Index: i, IsIndex: true}
}

func (p PathSegment) String() string {
	if p.IsIndex {
		return strconv.Itoa(p.Index)
	}
	return p.Name
}

// FieldPath locates a field in a Form, e.g. openings.0.height.
type FieldPath []PathSegment

// String joins the segments with dots.
func (fp FieldPath) String() string {
	parts := make([]string, len(fp))
	for i, seg := range fp {
		parts[i] = seg.String()
	}
	return strings.Join(parts, ".")
}

// Leaf returns the last named segment, or "" for an empty path.
func (fp FieldPath) Leaf() string {
	for i := len(fp) - 1; i >= 0; i-- {
		if !fp[i].IsIndex {
			return fp[i].Name
		}
	}
	return ""
}

// ValidationError reports a single offending field.
type ValidationError struct {
	Kind ErrorKind
	Path FieldPath
	// RowID is the stable identity of the segment or opening row the error belongs
	// to. Empty for fields outside a row.
	RowID   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// ValidationErrors is the full set of failures from one validation pass.
type ValidationErrors []ValidationError

func (errs ValidationErrors) Error() string {
	switch len(errs) {
	case 0:
		return "no validation errors"
	case 1:
		return errs[0].Error()
	}
	parts := make([]string, len(errs))
	for i, e := range errs {
		parts[i] = e.Error()
	}
	return fmt.Sprintf("%d validation errors: %s", len(errs), strings.Join(parts, "; "))
}

// Is reports true for ErrInvalidInput.
func (errs ValidationErrors) Is(target error) bool {
	return target == ErrInvalidInput
}

// At returns the errors whose path renders as path.
func (errs ValidationErrors) At(path string) ValidationErrors {
	var out ValidationErrors
	for _, e := range errs {
		if e.Path.String() == path {
			out = append(out, e)
		}
	}
	return out
}

// ForRow returns the errors attached to the row with the given ID.
func (errs ValidationErrors) ForRow(id string) ValidationErrors {
	var out ValidationErrors
	for _, e := range errs {
		if e.RowID == id {
			out = append(out, e)
		}
	}
	return out
}

// OfKind returns the errors of the given kind.
func (errs ValidationErrors) OfKind(kind ErrorKind) ValidationErrors {
	var out ValidationErrors
	for _, e := range errs {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}
