package ocr

import (
	"regexp"
	"strings"
)

var (
	reDate  = regexp.MustCompile(`\b\d{1,2}[/\-.]\d{1,2}[/\-.]\d{2,4}\b`)
	rePhone = regexp.MustCompile(`\b\d{10}\b|\+\d{11,14}\b`)
	reEmail = regexp.MustCompile(`\b[a-z0-9._%+-]+@[a-z0-9.-]+\.[a-z]{2,}\b`)
)

// formLabels are markers that the text really is an admission form and
// not an unrelated scan.
var formLabels = []string{
	"name", "date of birth", "dob", "gender", "address",
	"phone", "mobile", "email", "father", "mother", "guardian",
	"course", "board", "percentage", "qualification", "category",
}

func hasDatePattern(s string) bool  { return reDate.MatchString(s) }
func hasPhonePattern(s string) bool { return rePhone.MatchString(s) }
func hasEmailPattern(s string) bool { return reEmail.MatchString(s) }

// naive heuristic confidence based on decoded text characteristics
func heuristicConfidence(txt string) float32 {
	txtL := strings.ToLower(txt)
	score := float32(0.2) // base

	var labels int
	for _, l := range formLabels {
		if strings.Contains(txtL, l) {
			labels++
		}
	}
	switch {
	case labels >= 6:
		score += 0.3
	case labels >= 3:
		score += 0.2
	case labels >= 1:
		score += 0.1
	}

	if hasDatePattern(txtL) {
		score += 0.1
	}
	if hasPhonePattern(txtL) {
		score += 0.1
	}
	if hasEmailPattern(txtL) {
		score += 0.1
	}
	if len(txt) > 200 {
		score += 0.1
	} // enough content
	if score > 1.0 {
		score = 1.0
	}
	return score
}

// blendConfidence weights measured OCR confidence higher when present and
// falls back to the heuristic alone.
func blendConfidence(ocrConf, heurConf float32) float32 {
	var conf float32
	if ocrConf > 0 {
		conf = 0.7*ocrConf + 0.3*heurConf
	} else {
		conf = heurConf
	}
	if conf > 1.0 {
		conf = 1.0
	}
	return conf
}
