package area

// Option configures a Calculator.
type Option func(*Calculator)

// WithOpeningWidthCheck rejects forms whose total opening width exceeds the total wall
// length. Off by default, in which case such forms are accepted and may produce a
// negative net area.
func WithOpeningWidthCheck(enabled bool) Option {
	return func(c *Calculator) {
		c.checkOpeningWidth = enabled
	}
}

// Calculator validates forms and computes their area. The zero value is ready to use
// and matches New() with no options.
type Calculator struct {
	checkOpeningWidth bool
}

// New creates a Calculator with the given options.
func New(opts ...Option) *Calculator {
	c := &Calculator{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Calculate validates the form and computes its area. On failure the returned error is
// a non-empty ValidationErrors and the result is the zero value.
func (c *Calculator) Calculate(f Form) (CalculationResult, error) {
	in, errs := c.Validate(f)
	if len(errs) > 0 {
		return CalculationResult{}, errs
	}
	return Compute(in), nil
}

// Validate parses every field of the form and checks the structural and cross-field
// constraints. Every check runs; the returned errors are in field order. The input is
// only meaningful when no errors are returned.
func (c *Calculator) Validate(f Form) (CalculationInput, ValidationErrors) {
	var (
		errs ValidationErrors
		in   CalculationInput
	)

	wallHeight, heightOK := ParseNumber(f.Height)
	if !heightOK {
		errs = append(errs, parseError(FieldPath{Key("height")}, ""))
	}
	in.Wall.Height = wallHeight

	segmentsOK := true
	if len(f.Segments) == 0 {
		segmentsOK = false
		errs = append(errs, ValidationError{
			Kind:    KindStructural,
			Path:    FieldPath{Key("segments")},
			Message: MsgNoSegments,
		})
	}
	in.Wall.Segments = make([]float64, 0, len(f.Segments))
	for i, row := range f.Segments {
		length, ok := ParseNumber(row.Length)
		if !ok {
			segmentsOK = false
			errs = append(errs, parseError(FieldPath{Key("segments"), Index(i), Key("length")}, row.ID))
		}
		in.Wall.Segments = append(in.Wall.Segments, length)
	}

	widthsOK := true
	in.Openings = make([]Opening, 0, len(f.Openings))
	for i, row := range f.Openings {
		width, ok := ParseNumber(row.Width)
		if !ok {
			widthsOK = false
			errs = append(errs, parseError(FieldPath{Key("openings"), Index(i), Key("width")}, row.ID))
		}
		height, ok := ParseNumber(row.Height)
		if !ok {
			errs = append(errs, parseError(FieldPath{Key("openings"), Index(i), Key("height")}, row.ID))
		} else if heightOK && height > wallHeight {
			errs = append(errs, ValidationError{
				Kind:    KindCrossField,
				Path:    FieldPath{Key("openings"), Index(i), Key("height")},
				RowID:   row.ID,
				Message: MsgOpeningTooTall,
			})
		}
		in.Openings = append(in.Openings, Opening{Width: width, Height: height})
	}

	if c.checkOpeningWidth && segmentsOK && widthsOK && len(in.Openings) > 0 {
		var totalWidth float64
		for _, o := range in.Openings {
			totalWidth += o.Width
		}
		if totalWidth > in.Wall.TotalLength() {
			errs = append(errs, ValidationError{
				Kind:    KindCrossField,
				Path:    FieldPath{Key("openings")},
				Message: MsgOpeningsTooWide,
			})
		}
	}

	// Every field may be finite while the products overflow.
	if len(errs) == 0 && !Compute(in).finite() {
		errs = append(errs, ValidationError{
			Kind:    KindCrossField,
			Path:    FieldPath{Key("area")},
			Message: MsgAreaOutOfRange,
		})
	}

	return in, errs
}

// Compute returns the area figures for an already validated input.
func Compute(in CalculationInput) CalculationResult {
	totalLength := in.Wall.TotalLength()
	gross := totalLength * in.Wall.Height

	var openingArea float64
	for _, o := range in.Openings {
		openingArea += o.Area()
	}

	return CalculationResult{
		TotalLength: totalLength,
		GrossArea:   gross,
		OpeningArea: openingArea,
		NetArea:     gross - openingArea,
	}
}

// Calculate validates and computes with the default Calculator.
func Calculate(f Form) (CalculationResult, error) {
	return New().Calculate(f)
}

// Validate validates with the default Calculator.
func Validate(f Form) (CalculationInput, ValidationErrors) {
	return New().Validate(f)
}

func parseError(path FieldPath, rowID string) ValidationError {
	return ValidationError{
		Kind:    KindParse,
		Path:    path,
		RowID:   rowID,
		Message: MsgInvalidNumber,
	}
}
