// Package parse turns raw OCR text from scanned admission forms into the
// structured field map the rest of the system stores and edits. Both the
// extractor and the merger are pure functions: no I/O, no shared state,
// safe for concurrent callers.
package parse

import "strings"

// ExtractFields scans raw OCR text and returns every field whose value
// could be located and validated. It is total: unmatched fields are simply
// absent, and empty input yields an empty map.
func ExtractFields(raw string) FieldMap {
	out := FieldMap{}
	if strings.TrimSpace(raw) == "" {
		return out
	}
	src := newSource(raw)
	for _, spec := range recordRules {
		if v, ok := extractField(src, spec); ok {
			out[spec.name] = v
		}
	}
	return out
}

// extractField runs one field's matchers in order. The first raw match
// whose cleaned value validates wins; later matchers are never consulted.
func extractField(src *source, spec fieldSpec) (string, bool) {
	for _, m := range spec.matchers {
		raw, ok := m.find(src)
		if !ok {
			continue
		}
		v := spec.clean(raw)
		if v != "" && spec.valid(v) {
			return v, true
		}
	}
	return "", false
}
