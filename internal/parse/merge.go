package parse

import (
	"strings"

	"github.com/SmritaPandey/OCR-admission-forms/constants"
)

// Policy decides how candidate values interact with values already on the
// record.
type Policy string

const (
	// Overwrite replaces stored values unconditionally. Used when a fresh,
	// not-yet-verified form is populated from OCR output.
	Overwrite Policy = "overwrite"
	// Preserve fills only fields that are currently empty, so operator
	// edits are never clobbered by a later auto-fill.
	Preserve Policy = "preserve"
)

// Merge combines a base record with candidate values under the given
// policy and returns a new record. The base is never mutated. Candidate
// entries with empty values or unrecognized field names are skipped
// field by field; the auxiliary bag is shallow-unioned, never replaced.
func Merge(base Record, candidate Record, policy Policy) Record {
	out := base.Clone()

	for name, value := range candidate.Fields {
		if strings.TrimSpace(value) == "" {
			continue
		}
		if !constants.IsRecordField(name) {
			continue
		}
		if policy == Preserve && out.Fields[name] != "" {
			continue
		}
		out.Fields[name] = value
	}

	if len(candidate.AdditionalInfo) > 0 {
		if out.AdditionalInfo == nil {
			out.AdditionalInfo = make(map[string]any, len(candidate.AdditionalInfo))
		}
		for k, v := range candidate.AdditionalInfo {
			if v == nil {
				continue
			}
			if policy == Preserve {
				if _, exists := out.AdditionalInfo[k]; exists {
					continue
				}
			}
			out.AdditionalInfo[k] = v
		}
	}

	return out
}
