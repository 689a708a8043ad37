package parse

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	reEmail    = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	reNameChar = regexp.MustCompile(`^[A-Za-z][A-Za-z\s'\-.]*$`)
	reHasAlpha = regexp.MustCompile(`[A-Za-z]`)
	reYear     = regexp.MustCompile(`^(19|20)\d{2}$`)
)

// validName accepts 3-49 characters of letters, spaces, hyphens and
// apostrophes with at least one letter.
func validName(s string) bool {
	n := len(s)
	return n >= 3 && n <= 49 && reNameChar.MatchString(s)
}

func validEmail(s string) bool {
	return len(s) >= 5 && reEmail.MatchString(s)
}

// validPhone accepts 10-15 digits after separator stripping.
func validPhone(s string) bool {
	n := len(digitsOf(s))
	return n >= 10 && n <= 15
}

// validDate accepts a date-shaped string of 8-12 characters including
// separators, e.g. 01/02/1999 or 1-12-2004.
func validDate(s string) bool {
	return len(s) >= 8 && len(s) <= 12
}

// validAddress requires enough combined text to be a plausible address.
func validAddress(s string) bool {
	return len(s) > 10
}

// validSpan bounds the length of free-text values.
func validSpan(min, max int) func(string) bool {
	return func(s string) bool {
		return len(s) >= min && len(s) <= max && reHasAlpha.MatchString(s)
	}
}

// validDigits requires exactly n digits after stripping.
func validDigits(n int) func(string) bool {
	return func(s string) bool {
		return len(digitsOf(s)) == n
	}
}

// validPercent accepts a numeric value in [0, 100].
func validPercent(s string) bool {
	f, err := strconv.ParseFloat(s, 64)
	return err == nil && f >= 0 && f <= 100
}

func validYear(s string) bool {
	return reYear.MatchString(s)
}

// validNumeric accepts a non-empty digits-and-dot amount.
func validNumeric(s string) bool {
	if s == "" || strings.Count(s, ".") > 1 {
		return false
	}
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

// validEnum accepts 2+ characters, the legacy floor that rejects single
// OCR-mangled letters for gender and blood group.
func validEnum(s string) bool {
	return len(s) >= 2 && len(s) <= 20
}

// validCode accepts application/enrollment style identifiers.
func validCode(s string) bool {
	if len(s) < 3 || len(s) > 30 {
		return false
	}
	for _, r := range s {
		switch {
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-':
		default:
			return false
		}
	}
	return true
}
