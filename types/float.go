package types

import (
	"math"
	"strconv"
)

// doubleNABits is the NaN payload reserved for the double NA (1954)
const doubleNABits = 0x7FF00000000007A2

// DoubleNA is the double NA, a NaN with a reserved payload
var DoubleNA = math.Float64frombits(doubleNABits)

// IsDoubleNA reports whether f is the NA payload, not an ordinary NaN
func IsDoubleNA(f float64) bool {
	return math.Float64bits(f)&0x7FFFFFFFFFFFFFFF == doubleNABits&0x7FFFFFFFFFFFFFFF
}

// IsNAorNaN reports whether f is NA or any other NaN
func IsNAorNaN(f float64) bool {
	return math.IsNaN(f)
}

// FormatDouble renders a double the way the host converts it to a string:
// 15 significant digits, no trailing zeros
func FormatDouble(f float64) string {
	switch {
	case IsDoubleNA(f):
		return "NA"
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Inf"
	case math.IsInf(f, -1):
		return "-Inf"
	}
	if f == math.Trunc(f) && math.Abs(f) < 1e15 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	s := strconv.FormatFloat(f, 'g', 15, 64)
	if p, err := strconv.ParseFloat(s, 64); err == nil {
		s = strconv.FormatFloat(p, 'g', -1, 64)
	}
	return s
}

// sameDouble compares doubles bit-for-bit on NaN payloads, numerically otherwise
func sameDouble(a, b float64) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return math.IsNaN(a) && math.IsNaN(b) && IsDoubleNA(a) == IsDoubleNA(b)
	}
	return a == b
}
