package area

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// numberPattern accepts an optional sign, digits with an optional '.' fraction
// ("5", "5.", ".5") and an optional exponent. ',' is never a decimal separator.
var numberPattern = regexp.MustCompile(`^[+-]?(?:[0-9]+\.?[0-9]*|\.[0-9]+)(?:[eE][+-]?[0-9]+)?$`)

// ParseNumber converts raw field text into a finite number strictly greater than zero.
// Surrounding whitespace is ignored. The second return value is false for anything
// else, including "", "Inf", "NaN" and values that overflow float64.
func ParseNumber(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if !numberPattern.MatchString(s) {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, false
	}
	if v <= 0 {
		return 0, false
	}
	return v, true
}
