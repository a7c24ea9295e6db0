package hyperapi

import (
	"math"
	"strconv"
	"strings"
)

// WireDecimals is the fixed precision used when rendering prices and sizes
// as wire strings.
const WireDecimals = 8

// FloatToWire renders a float the way the exchange hashes and compares
// decimal strings: fixed 8-decimal formatting with trailing zeros dropped,
// no bare trailing dot, and no negative zero. Two floats that round to the
// same decimal value always produce the same string.
//
// NaN and infinities have no wire representation and collapse to "0".
func FloatToWire(x float64) string {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		log.Warnf("can not render non-finite value %v on the wire, fallback to 0", x)
		return "0"
	}

	s := strconv.FormatFloat(x, 'f', WireDecimals, 64)

	// The fixed formatting always contains a dot, so trailing zeros in the
	// integer part are never touched.
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		return "0"
	}

	return s
}
