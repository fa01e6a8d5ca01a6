package csv

import (
	"strconv"
	"strings"

	"github.com/maxsviluppo/prezzario"
)

// currencySymbols are stripped from price tokens before parsing.
var currencySymbols = []string{"€", "EUR", "eur"}

// ParsePrice converts a free-form price token to a number. Currency symbols
// and whitespace are stripped first. The decimal separator is resolved as
// follows: when both "." and "," appear, the rightmost of the two is the
// decimal point and the other is removed as a thousands separator; a lone
// "," is always the decimal point.
//
// Rejects empty tokens, non-numeric tokens and negative values; callers
// skip the row rather than coerce to zero.
func ParsePrice(raw string) (float64, error) {
	s := raw
	for _, sym := range currencySymbols {
		s = strings.ReplaceAll(s, sym, "")
	}
	s = strings.Join(strings.Fields(s), "")
	if s == "" {
		return 0, prezzario.Errorf(prezzario.EINVALID, "empty price token %q", raw)
	}

	lastComma := strings.LastIndex(s, ",")
	lastDot := strings.LastIndex(s, ".")
	switch {
	case lastComma >= 0 && lastDot >= 0 && lastComma > lastDot:
		// European style: 1.234,56
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	case lastComma >= 0 && lastDot >= 0:
		// US style: 1,234.56
		s = strings.ReplaceAll(s, ",", "")
	case lastComma >= 0:
		// Decimal comma: 12,50
		s = strings.Replace(s, ",", ".", 1)
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, prezzario.Errorf(prezzario.EINVALID, "unparsable price token %q", raw)
	}
	if v < 0 {
		return 0, prezzario.Errorf(prezzario.EINVALID, "negative price %q", raw)
	}
	return v, nil
}
