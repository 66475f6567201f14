package leaderboard

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// ParseInt reads the leading base-10 integer of s. Leading whitespace and a
// sign are accepted and trailing garbage is ignored ("1200 pts" is 1200,
// "12.7" is 12). ok is false when no digit follows the optional sign.
// Values beyond the int64 range saturate.
func ParseInt(s string) (n int64, ok bool) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && isDigit(s[end]) {
		end++
	}
	if end == digits {
		return 0, false
	}
	n, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return n, true
}

// ParseFloat reads the leading decimal number of s, following the same
// prefix rules as ParseInt plus an optional fraction and exponent.
// "Infinity" (optionally signed) is accepted.
func ParseFloat(s string) (f float64, ok bool) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	end := 0
	neg := false
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		neg = s[end] == '-'
		end++
	}
	if strings.HasPrefix(s[end:], "Infinity") {
		if neg {
			return math.Inf(-1), true
		}
		return math.Inf(1), true
	}

	mantissa := 0
	for end < len(s) && isDigit(s[end]) {
		end++
		mantissa++
	}
	if end < len(s) && s[end] == '.' {
		end++
		for end < len(s) && isDigit(s[end]) {
			end++
			mantissa++
		}
	}
	if mantissa == 0 {
		return 0, false
	}

	// Exponent only counts when at least one digit follows it.
	if end < len(s) && (s[end] == 'e' || s[end] == 'E') {
		exp := end + 1
		if exp < len(s) && (s[exp] == '+' || s[exp] == '-') {
			exp++
		}
		expDigits := exp
		for exp < len(s) && isDigit(s[exp]) {
			exp++
		}
		if exp > expDigits {
			end = exp
		}
	}

	f, err := strconv.ParseFloat(s[:end], 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return f, true
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
