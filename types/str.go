package types

import "strconv"

// StringNA is the character NA. It is not valid UTF-8, so no text produced
// by the host can collide with it.
const StringNA = "\xff\xfeNA\xfe\xff"

// IsStringNA reports whether s is the character NA
func IsStringNA(s string) bool {
	return s == StringNA
}

func formatString(s string) string {
	if s == StringNA {
		return "NA"
	}
	return strconv.Quote(s)
}
