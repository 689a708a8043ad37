package parse

import (
	"fmt"
	"regexp"
	"strings"
)

// A matcher is one attempt at locating a raw value for a field. Matchers
// for a field run in priority order; the first whose cleaned value passes
// the field's validator wins.
type matcher interface {
	find(src *source) (string, bool)
}

// source is the pre-processed view of one document's OCR text.
type source struct {
	flat  string   // whitespace collapsed to single spaces
	lines []string // trimmed, non-empty lines in document order
}

func newSource(raw string) *source {
	flat := reMultiSpace.ReplaceAllString(raw, " ")
	var lines []string
	for _, ln := range strings.Split(raw, "\n") {
		if ln = strings.TrimSpace(ln); ln != "" {
			lines = append(lines, ln)
		}
	}
	return &source{flat: strings.TrimSpace(flat), lines: lines}
}

// patternMatcher searches the collapsed text; the first capture group is
// the value (the whole match when there is no group). Used for values with
// an unambiguous shape (dates, digit runs, email tokens) that cannot bleed
// into neighboring labels.
type patternMatcher struct{ re *regexp.Regexp }

func (m patternMatcher) find(src *source) (string, bool) {
	sub := m.re.FindStringSubmatch(src.flat)
	if sub == nil {
		return "", false
	}
	if len(sub) > 1 {
		return sub[1], sub[1] != ""
	}
	return sub[0], sub[0] != ""
}

// lineMatcher applies its pattern line by line, so free-text captures stay
// bounded by line breaks. The first matching line wins.
type lineMatcher struct{ re *regexp.Regexp }

func (m lineMatcher) find(src *source) (string, bool) {
	for _, ln := range src.lines {
		if sub := m.re.FindStringSubmatch(ln); sub != nil && len(sub) > 1 && sub[1] != "" {
			return sub[1], true
		}
	}
	return "", false
}

// blockMatcher captures the remainder of a labeled line plus up to follow
// subsequent lines, joined with ", ". A following line that itself carries
// a label (contains a colon) ends the block.
type blockMatcher struct {
	re     *regexp.Regexp
	follow int
}

func (m blockMatcher) find(src *source) (string, bool) {
	for i, ln := range src.lines {
		sub := m.re.FindStringSubmatch(ln)
		if sub == nil {
			continue
		}
		parts := make([]string, 0, m.follow+1)
		if len(sub) > 1 && strings.TrimSpace(sub[1]) != "" {
			parts = append(parts, strings.TrimSpace(sub[1]))
		}
		for j := i + 1; j <= i+m.follow && j < len(src.lines); j++ {
			next := src.lines[j]
			if strings.Contains(next, ":") {
				break
			}
			parts = append(parts, next)
		}
		if len(parts) == 0 {
			return "", false
		}
		return strings.Join(parts, ", "), true
	}
	return "", false
}

// labelExpr renders a label alternation followed by a colon, dash or
// whitespace separator. Spaces inside a label match any whitespace run,
// since scans widen the gaps between label words. Longer labels must come
// first so leftmost-first alternation picks them.
func labelExpr(labels ...string) string {
	quoted := make([]string, len(labels))
	for i, l := range labels {
		quoted[i] = strings.ReplaceAll(regexp.QuoteMeta(l), " ", `\s+`)
	}
	return fmt.Sprintf(`\b(?i:(?:%s))(?:\s*[:\-]\s*|\s+)`, strings.Join(quoted, "|"))
}

func pat(expr string) matcher  { return patternMatcher{re: regexp.MustCompile(expr)} }
func line(expr string) matcher { return lineMatcher{re: regexp.MustCompile(expr)} }

// lineAfter captures the remainder of a line that starts with one of the
// labels.
func lineAfter(labels ...string) matcher {
	return lineMatcher{re: regexp.MustCompile(`^` + labelExpr(labels...) + `(.+)$`)}
}

// blockAfter is lineAfter extended across following unlabeled lines.
func blockAfter(follow int, labels ...string) matcher {
	return blockMatcher{
		re:     regexp.MustCompile(`^` + labelExpr(labels...) + `(.*)$`),
		follow: follow,
	}
}

// Value shapes shared across rules.
const (
	capWords  = `[A-Z][a-z]+(?:\s+[A-Z][a-z]+){1,2}` // two or three capitalized words
	phoneRun  = `([+\d][\d\s\-()]{8,17}\d)`
	dateShape = `(\d{1,2}[/\-.]\d{1,2}[/\-.]\d{2,4})`
	emailTok  = `([a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,})`

	// nameStop terminates a name capture before a trailing field label that
	// shares the line, so greedy word runs do not swallow the next label.
	nameStop = `(?:\s+(?i:dob|date|gender|category|nationality|religion|blood|aadhaar|aadhar|phone|mobile|contact|email|address|city|state|pincode|father|mother|guardian|course|class|roll|qualification)\b.*)?\s*$`
)

// nameMatchers prefers a capitalized two-or-three word run after the label
// and falls back to the bounded line remainder.
func nameMatchers(labels ...string) []matcher {
	return []matcher{
		line(`^.*?` + labelExpr(labels...) + `(` + capWords + `)` + nameStop),
		line(`^` + labelExpr(labels...) + `(.{3,50}?)` + nameStop),
	}
}

// phoneMatchers accepts a labeled separator-tolerant digit run, bounded to
// the labeled line.
func phoneMatchers(labels ...string) []matcher {
	return []matcher{
		line(`^.*?` + labelExpr(labels...) + phoneRun),
	}
}

// fieldSpec binds a field name to its ordered matchers, cleaner and
// validator.
type fieldSpec struct {
	name     string
	matchers []matcher
	clean    func(string) string
	valid    func(string) bool
}

func nameSpec(name string, labels ...string) fieldSpec {
	return fieldSpec{name: name, matchers: nameMatchers(labels...), clean: cleanName, valid: validName}
}

func phoneSpec(name string, labels ...string) fieldSpec {
	return fieldSpec{name: name, matchers: phoneMatchers(labels...), clean: cleanPhone, valid: validPhone}
}

func textSpec(name string, min, max int, labels ...string) fieldSpec {
	return fieldSpec{
		name:     name,
		matchers: []matcher{lineAfter(labels...)},
		clean:    cleanText,
		valid:    validSpan(min, max),
	}
}

func yearSpec(name string, labels ...string) fieldSpec {
	return fieldSpec{
		name:     name,
		matchers: []matcher{pat(labelExpr(labels...) + `((?:19|20)\d{2})\b`)},
		clean:    cleanDigits,
		valid:    validYear,
	}
}

func percentSpec(name string, labels ...string) fieldSpec {
	return fieldSpec{
		name:     name,
		matchers: []matcher{pat(labelExpr(labels...) + `(\d{1,3}(?:\.\d+)?)\s*%?`)},
		clean:    cleanNumeric,
		valid:    validPercent,
	}
}

// recordRules is the process-wide rule table, built once at startup and
// never mutated. Order follows the form layout; within a field, matchers
// go from the most specific pattern to the loosest fallback.
var recordRules = []fieldSpec{
	// Basic details
	{
		name: "student_name",
		matchers: append(
			nameMatchers("name of student", "name of applicant", "student name", "applicant name", "full name", "name"),
			line(`^(`+capWords+`)$`),
		),
		clean: cleanName,
		valid: validName,
	},
	{
		name: "date_of_birth",
		matchers: []matcher{
			pat(labelExpr("date of birth", "birth date", "dob", "born") + dateShape),
			pat(dateShape),
		},
		clean: cleanDate,
		valid: validDate,
	},
	{
		name: "gender",
		matchers: []matcher{
			pat(labelExpr("gender", "sex") + `(?i)(male|female|other)\b`),
		},
		clean: cleanUpper,
		valid: validEnum,
	},
	{
		name: "category",
		matchers: []matcher{
			pat(labelExpr("category", "caste") + `(?i)(scheduled caste|scheduled tribe|general|obc|gen|sc|st|other)\b`),
		},
		clean: cleanUpper,
		valid: validEnum,
	},
	nameSpec("nationality", "nationality", "country"),
	nameSpec("religion", "religion"),
	{
		name: "aadhar_number",
		matchers: []matcher{
			pat(labelExpr("aadhaar number", "aadhar number", "aadhaar no", "aadhar no", "aadhaar", "aadhar", "uid") + `(\d{4}[\s\-]?\d{4}[\s\-]?\d{4})`),
			pat(`\b(\d{4}[\s\-]\d{4}[\s\-]\d{4})\b`),
		},
		clean: cleanDigits,
		valid: validDigits(12),
	},
	{
		name: "blood_group",
		matchers: []matcher{
			pat(labelExpr("blood group", "blood type") + `(AB[+\-]?|[ABO][+\-])`),
		},
		clean: cleanUpper,
		valid: validEnum,
	},

	// Address details
	{
		name: "permanent_address",
		matchers: []matcher{
			blockAfter(3, "permanent address", "permanent addr", "address", "residence", "location"),
		},
		clean: cleanText,
		valid: validAddress,
	},
	{
		name: "correspondence_address",
		matchers: []matcher{
			blockAfter(3, "correspondence address", "correspondence addr", "mailing address"),
		},
		clean: cleanText,
		valid: validAddress,
	},
	{
		name: "pincode",
		matchers: []matcher{
			pat(labelExpr("pincode", "pin code", "pin") + `(\d{6})\b`),
		},
		clean: cleanDigits,
		valid: validDigits(6),
	},
	nameSpec("city", "city"),
	nameSpec("state", "state"),

	// Contact details
	{
		name: "phone_number",
		matchers: append(
			phoneMatchers("student phone", "phone number", "phone no", "mobile no", "phone", "mobile", "contact", "tel"),
			pat(`(\+?\d[\d\s\-.()]{8,13}\d)`),
		),
		clean: cleanPhone,
		valid: validPhone,
	},
	phoneSpec("alternate_phone", "alternate phone", "alternate mobile", "secondary phone", "alt phone", "alternate", "alt"),
	{
		name: "email",
		matchers: []matcher{
			pat(labelExpr("email address", "email id", "e-mail", "email") + emailTok),
			pat(emailTok),
		},
		clean: cleanEmail,
		valid: validEmail,
	},
	nameSpec("emergency_contact_name", "emergency contact name", "emergency contact"),
	phoneSpec("emergency_contact_phone", "emergency contact phone", "emergency phone"),

	// Guardian / parent details
	nameSpec("father_name", "father's name", "fathers name", "father name", "father"),
	textSpec("father_occupation", 3, 49, "father's occupation", "fathers occupation", "father occupation"),
	phoneSpec("father_phone", "father's phone", "fathers phone", "father phone", "father contact"),
	nameSpec("mother_name", "mother's name", "mothers name", "mother name", "mother"),
	textSpec("mother_occupation", 3, 49, "mother's occupation", "mothers occupation", "mother occupation"),
	phoneSpec("mother_phone", "mother's phone", "mothers phone", "mother phone", "mother contact"),
	nameSpec("guardian_name", "guardian's name", "guardians name", "guardian name", "guardian", "parent"),
	textSpec("guardian_relation", 3, 49, "guardian relationship", "guardian relation", "relation"),
	phoneSpec("guardian_phone", "guardian's phone", "guardians phone", "guardian phone", "guardian contact"),
	{
		name: "annual_income",
		matchers: []matcher{
			pat(labelExpr("annual income", "family income", "income") + `([\d,]+(?:\.\d+)?)`),
		},
		clean: cleanNumeric,
		valid: validNumeric,
	},

	// Educational qualifications
	textSpec("tenth_board", 3, 49, "10th board", "tenth board", "ssc board", "10 board"),
	yearSpec("tenth_year", "10th year", "tenth year", "ssc year", "10 year"),
	percentSpec("tenth_percentage", "10th percentage", "tenth percentage", "ssc percentage", "10th %", "10 percentage"),
	textSpec("tenth_school", 3, 99, "10th school", "tenth school", "ssc school", "10 school"),
	textSpec("twelfth_board", 3, 49, "12th board", "twelfth board", "hsc board", "intermediate board", "12 board"),
	yearSpec("twelfth_year", "12th year", "twelfth year", "hsc year", "intermediate year", "12 year"),
	percentSpec("twelfth_percentage", "12th percentage", "twelfth percentage", "hsc percentage", "12th %", "12 percentage"),
	textSpec("twelfth_school", 3, 99, "12th school", "twelfth school", "hsc school", "intermediate school", "12 school"),
	textSpec("previous_qualification", 4, 99, "previous qualification", "educational qualification", "qualification", "education", "degree", "diploma"),
	textSpec("graduation_details", 3, 199, "graduation", "degree details", "bachelor"),

	// Course application details
	textSpec("course_applied", 4, 99, "course applied", "course of study", "program applied", "course", "program", "subject", "stream"),
	{
		name: "application_number",
		matchers: []matcher{
			pat(labelExpr("application number", "application no", "app number", "app no") + `([A-Z0-9\-]+)`),
		},
		clean: cleanText,
		valid: validCode,
	},
	{
		name: "enrollment_number",
		matchers: []matcher{
			pat(labelExpr("enrollment number", "enrolment number", "enrollment no", "enrolment no") + `([A-Z0-9\-]+)`),
		},
		clean: cleanText,
		valid: validCode,
	},
	{
		name: "admission_date",
		matchers: []matcher{
			pat(labelExpr("admission date", "date of admission") + dateShape),
		},
		clean: cleanDate,
		valid: validDate,
	},
}
