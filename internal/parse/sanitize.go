package parse

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"maps"
	"strings"

	"github.com/SmritaPandey/OCR-admission-forms/constants"
)

// fieldSynonyms maps key spellings vendors are known to emit onto the
// canonical names.
var fieldSynonyms = map[string]string{
	"name":           constants.FieldStudentName,
	"full_name":      constants.FieldStudentName,
	"applicant":      constants.FieldStudentName,
	"dob":            constants.FieldDateOfBirth,
	"birth_date":     constants.FieldDateOfBirth,
	"phone":          constants.FieldPhoneNumber,
	"mobile":         constants.FieldPhoneNumber,
	"mobile_number":  constants.FieldPhoneNumber,
	"email_address":  constants.FieldEmail,
	"email_id":       constants.FieldEmail,
	"address":        constants.FieldPermanentAddress,
	"pin":            constants.FieldPincode,
	"pin_code":       constants.FieldPincode,
	"aadhaar":        constants.FieldAadharNumber,
	"aadhaar_number": constants.FieldAadharNumber,
	"course":         constants.FieldCourseApplied,
	"program":        constants.FieldCourseApplied,
	"qualification":  constants.FieldPrevQualification,
}

// NormalizeAndSanitizeJSON prepares a vendor structured-OCR payload for
// schema validation and merging:
//   - renames known synonyms to canonical field names
//   - coerces numeric scalars to strings
//   - drops nulls, empties and unknown keys
//   - trims every remaining string
//
// It returns the sanitized document plus the list of keys it touched.
func NormalizeAndSanitizeJSON(raw []byte, logger *slog.Logger) ([]byte, []string, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, nil, fmt.Errorf("sanitize: decode: %w", err)
	}

	dropped := make([]string, 0, 8)

	// 1) rename synonyms; never overwrite a canonical key that is present
	for from, to := range fieldSynonyms {
		v, ok := m[from]
		if !ok {
			continue
		}
		if _, exists := m[to]; !exists {
			m[to] = v
		}
		delete(m, from)
		dropped = append(dropped, from+"->"+to)
	}

	// 2) coerce scalars to strings, drop nulls/empties/unsupported types
	for k, v := range maps.Clone(m) {
		switch t := v.(type) {
		case string:
			s := strings.TrimSpace(t)
			if s == "" {
				delete(m, k)
				dropped = append(dropped, k+"(empty)")
			} else {
				m[k] = s
			}
		case float64:
			if t == float64(int64(t)) {
				m[k] = fmt.Sprintf("%d", int64(t))
			} else {
				m[k] = fmt.Sprintf("%g", t)
			}
		case nil:
			delete(m, k)
			dropped = append(dropped, k+"(null)")
		default:
			delete(m, k)
			dropped = append(dropped, k+"(type)")
		}
	}

	// 3) remove anything outside the canonical field set
	for k := range maps.Clone(m) {
		if !constants.IsRecordField(k) {
			delete(m, k)
			dropped = append(dropped, k+"(unknown)")
		}
	}

	out, err := json.Marshal(m)
	if err != nil {
		return nil, dropped, fmt.Errorf("sanitize: encode: %w", err)
	}
	if len(dropped) > 0 {
		logger.Warn("parse.sanitize", "touched", dropped)
	}
	return out, dropped, nil
}

// CandidateFromJSON decodes a sanitized payload into a merge candidate.
func CandidateFromJSON(doc []byte) (Record, error) {
	var fields FieldMap
	if err := json.Unmarshal(doc, &fields); err != nil {
		return Record{}, fmt.Errorf("candidate: decode: %w", err)
	}
	return Record{Fields: fields.Known()}, nil
}
