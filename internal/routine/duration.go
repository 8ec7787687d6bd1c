package routine

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// maxMinutes keeps durations inside 32 bits of seconds.
const maxMinutes = math.MaxInt32 / 60

// ParseMinutes converts a minutes string into a duration in seconds.
//
// Leading whitespace and an optional sign are skipped, then the leading run
// of decimal digits is read and anything after it ignored, so "5.9" is five
// minutes and "12abc" twelve. Input with no leading digits, a negative value
// or an out-of-range value yields NaN.
func ParseMinutes(s string) Seconds {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	neg := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return NaN
	}
	m, err := strconv.Atoi(s[:end])
	if err != nil || m > maxMinutes {
		return NaN
	}
	if neg && m != 0 {
		return NaN
	}
	return Seconds(m * 60)
}

// Minutes returns the whole minutes in s, or "" for NaN. It is the value an
// edit form pre-fills.
func (s Seconds) Minutes() string {
	if s.IsNaN() {
		return ""
	}
	return strconv.Itoa(int(s) / 60)
}

// String renders s as "{m}m {s}s".
func (s Seconds) String() string {
	if s.IsNaN() {
		return "NaNm NaNs"
	}
	return fmt.Sprintf("%dm %ds", int(s)/60, int(s)%60)
}
