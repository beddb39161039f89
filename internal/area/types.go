package area

import "math"

// WallSpec is the validated wall: a uniform height and the horizontal runs that are
// summed into the total wall length.
type WallSpec struct {
	Height   float64   `json:"height" yaml:"height"`
	Segments []float64 `json:"segments" yaml:"segments"`
}

// TotalLength returns the sum of all segment lengths.
func (w WallSpec) TotalLength() float64 {
	var total float64
	for _, s := range w.Segments {
		total += s
	}
	return total
}

// Opening is a door or window cut out of the wall.
type Opening struct {
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// Area returns width * height.
func (o Opening) Area() float64 {
	return o.Width * o.Height
}

// CalculationInput is a fully validated request. Openings may be empty.
type CalculationInput struct {
	Wall     WallSpec  `json:"wall" yaml:"wall"`
	Openings []Opening `json:"openings" yaml:"openings"`
}

// CalculationResult holds the net area plus the intermediate figures it was derived
// from. Values are not rounded; NetArea may be negative when openings overstate the wall.
type CalculationResult struct {
	TotalLength float64 `json:"total_length" yaml:"total_length"`
	GrossArea   float64 `json:"gross_area" yaml:"gross_area"`
	OpeningArea float64 `json:"opening_area" yaml:"opening_area"`
	NetArea     float64 `json:"net_area" yaml:"net_area"`
}

func (r CalculationResult) finite() bool {
	for _, v := range []float64{r.TotalLength, r.GrossArea, r.OpeningArea, r.NetArea} {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return false
		}
	}
	return true
}
