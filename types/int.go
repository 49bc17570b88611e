package types

import (
	"math"
	"strconv"
)

// IntNA is the integer NA. Valid integers fit in 32 bits and never reach it.
const IntNA = math.MinInt32

// IntMax is the largest valid integer element
const IntMax = math.MaxInt32

// IsIntNA reports whether i is the integer NA
func IsIntNA(i int) bool {
	return i == IntNA
}

func formatInt(i int) string {
	if i == IntNA {
		return "NA"
	}
	return strconv.Itoa(i) + "L"
}
