package parse

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	reArtifacts  = regexp.MustCompile(`[^\w\s@.,\-+()/]`)
	reMultiSpace = regexp.MustCompile(`\s+`)
	reNonDigit   = regexp.MustCompile(`[^\d+]`)
	reNonIDChar  = regexp.MustCompile(`[^\d\-]`)
	reNonDate    = regexp.MustCompile(`[^\d/\-.]`)
	reNonNumeric = regexp.MustCompile(`[^\d.]`)

	titleCaser = cases.Title(language.English)
)

// cleanValue strips common OCR artifacts and collapses runs of whitespace.
// Field-class cleaners below build on it.
func cleanValue(s string) string {
	s = reArtifacts.ReplaceAllString(s, "")
	s = reMultiSpace.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// cleanName title-cases each word ("jane   doe" -> "Jane Doe").
func cleanName(s string) string {
	return titleCaser.String(cleanValue(s))
}

// cleanEmail lowercases and trims.
func cleanEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// cleanPhone drops everything except digits and a leading plus.
func cleanPhone(s string) string {
	s = strings.TrimSpace(s)
	plus := strings.HasPrefix(s, "+")
	s = reNonDigit.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, "+", "")
	if plus && s != "" {
		return "+" + s
	}
	return s
}

// cleanDate keeps digits and the / - . separators.
func cleanDate(s string) string {
	return strings.TrimSpace(reNonDate.ReplaceAllString(s, ""))
}

// cleanText collapses whitespace and trims stray commas, keeping structure.
func cleanText(s string) string {
	return strings.Trim(cleanValue(s), ",")
}

// cleanDigits keeps digits and hyphens (aadhar, pincode).
func cleanDigits(s string) string {
	return strings.TrimSpace(reNonIDChar.ReplaceAllString(s, ""))
}

// cleanNumeric keeps digits and decimal points (percentages, income).
func cleanNumeric(s string) string {
	return strings.TrimSpace(reNonNumeric.ReplaceAllString(s, ""))
}

// cleanUpper uppercases short enumeration values (gender, blood group).
func cleanUpper(s string) string {
	return strings.ToUpper(cleanValue(s))
}

// digitsOf returns only the decimal digits of s.
func digitsOf(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
