package parse

import (
	"maps"

	"github.com/SmritaPandey/OCR-admission-forms/constants"
)

// FieldMap is a partial set of validated field values keyed by the
// canonical names in constants.RecordFields. Absence of a key means
// "not extracted".
type FieldMap map[string]string

// Clone returns a copy of the map. A nil receiver clones to an empty map.
func (m FieldMap) Clone() FieldMap {
	out := make(FieldMap, len(m))
	maps.Copy(out, m)
	return out
}

// Known returns a copy holding only canonical field names with non-empty
// values. Unknown keys are dropped, never an error.
func (m FieldMap) Known() FieldMap {
	out := make(FieldMap, len(m))
	for k, v := range m {
		if v == "" || !constants.IsRecordField(k) {
			continue
		}
		out[k] = v
	}
	return out
}

// Record is the full editable state of one admission form: the canonical
// field values plus an open-ended auxiliary bag carried alongside them.
type Record struct {
	Fields         FieldMap       `json:"fields"`
	AdditionalInfo map[string]any `json:"additional_info,omitempty"`
}

// Clone deep-copies the record one level down. The auxiliary bag is copied
// shallowly, matching the merge granularity.
func (r Record) Clone() Record {
	out := Record{Fields: r.Fields.Clone()}
	if r.AdditionalInfo != nil {
		out.AdditionalInfo = make(map[string]any, len(r.AdditionalInfo))
		maps.Copy(out.AdditionalInfo, r.AdditionalInfo)
	}
	return out
}
