package lib

import (
	"math"
	"strconv"
	"strings"
)

const (
	DefaultPrecision       = 10
	DefaultResultPrecision = 6
)

// normalizeText renders value with at most precision significant digits in
// %g style and trims any trailing decimal point.
func normalizeText(value float64, precision int) string {
	s := formatFloat(value, precision)
	if trimmed := strings.TrimRight(s, "."); trimmed != "" {
		s = trimmed
	}
	return s
}

// normalize returns n with its text canonicalized. Value is re-read from the
// canonical text so that evaluation sees exactly the printed number.
func (n Number) normalize(precision int) Number {
	text := normalizeText(n.Value, precision)
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		value = n.Value
	}
	return Number{Value: value, text: text, loc: n.loc}
}

// FormatResult renders an evaluation result. A negative precision selects the
// shortest representation that round trips.
func FormatResult(value float64, precision int) string {
	return formatFloat(value, precision)
}

func formatFloat(value float64, precision int) string {
	switch {
	case math.IsNaN(value):
		return "nan"
	case math.IsInf(value, 1):
		return "inf"
	case math.IsInf(value, -1):
		return "-inf"
	}
	if precision == 0 {
		precision = 1
	}
	return strconv.FormatFloat(value, 'g', precision, 64)
}
