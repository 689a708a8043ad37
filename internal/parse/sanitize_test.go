package parse

import (
	"encoding/json"
	"testing"
)

func sanitized(t *testing.T, raw string) map[string]string {
	t.Helper()
	out, _, err := NormalizeAndSanitizeJSON([]byte(raw), nil)
	if err != nil {
		t.Fatalf("sanitize: %v", err)
	}
	var m map[string]string
	if err := json.Unmarshal(out, &m); err != nil {
		t.Fatalf("decode sanitized: %v", err)
	}
	return m
}

func TestSanitize_RenamesSynonyms(t *testing.T) {
	m := sanitized(t, `{"name":"Jane Doe","dob":"15/08/2005","phone":"9876543210"}`)

	want := map[string]string{
		"student_name":  "Jane Doe",
		"date_of_birth": "15/08/2005",
		"phone_number":  "9876543210",
	}
	for k, v := range want {
		if m[k] != v {
			t.Errorf("%s = %q, want %q", k, m[k], v)
		}
	}
	if _, ok := m["name"]; ok {
		t.Error("synonym key survived sanitization")
	}
}

func TestSanitize_SynonymNeverOverwritesCanonical(t *testing.T) {
	m := sanitized(t, `{"student_name":"Jane Doe","name":"Someone Else"}`)
	if m["student_name"] != "Jane Doe" {
		t.Errorf("student_name = %q, want canonical value kept", m["student_name"])
	}
}

func TestSanitize_CoercesAndDrops(t *testing.T) {
	m := sanitized(t, `{"tenth_year":2020,"tenth_percentage":91.4,"email":"  x@y.com  ","city":"","state":null,"misc":{"a":1}}`)

	if m["tenth_year"] != "2020" {
		t.Errorf("tenth_year = %q, want %q", m["tenth_year"], "2020")
	}
	if m["tenth_percentage"] != "91.4" {
		t.Errorf("tenth_percentage = %q, want %q", m["tenth_percentage"], "91.4")
	}
	if m["email"] != "x@y.com" {
		t.Errorf("email = %q, want trimmed value", m["email"])
	}
	for _, k := range []string{"city", "state", "misc"} {
		if _, ok := m[k]; ok {
			t.Errorf("expected %s to be dropped", k)
		}
	}
}

func TestSanitize_DropsUnknownKeys(t *testing.T) {
	m := sanitized(t, `{"email":"x@y.com","vendor_request_id":"abc123"}`)
	if _, ok := m["vendor_request_id"]; ok {
		t.Error("unknown key survived sanitization")
	}
	if m["email"] != "x@y.com" {
		t.Errorf("email = %q, want %q", m["email"], "x@y.com")
	}
}

func TestSanitize_RejectsMalformedJSON(t *testing.T) {
	if _, _, err := NormalizeAndSanitizeJSON([]byte(`{"email":`), nil); err == nil {
		t.Error("expected error for malformed payload")
	}
}

func TestCandidateFromJSON(t *testing.T) {
	cand, err := CandidateFromJSON([]byte(`{"student_name":"Jane Doe","bogus":"x","email":""}`))
	if err != nil {
		t.Fatalf("candidate: %v", err)
	}
	if cand.Fields["student_name"] != "Jane Doe" {
		t.Errorf("student_name = %q", cand.Fields["student_name"])
	}
	if len(cand.Fields) != 1 {
		t.Errorf("expected only known non-empty fields, got %v", cand.Fields)
	}
}

func TestFieldMapSchema_AcceptsSanitizedPayload(t *testing.T) {
	schema := BuildFieldMapJSONSchema()
	out, _, err := NormalizeAndSanitizeJSON([]byte(`{"name":"Jane Doe","phone":"9876543210","tenth_year":2020}`), nil)
	if err != nil {
		t.Fatalf("sanitize: %v", err)
	}
	if err := ValidateJSONAgainstSchema(schema, out); err != nil {
		t.Errorf("sanitized payload failed schema validation: %v", err)
	}
}

func TestFieldMapSchema_RejectsBadShape(t *testing.T) {
	schema := BuildFieldMapJSONSchema()
	for _, doc := range []string{
		`{"phone_number":"12345"}`,
		`{"pincode":"11001"}`,
		`{"unexpected":"value"}`,
		`{"tenth_year":"1875"}`,
	} {
		if err := ValidateJSONAgainstSchema(schema, []byte(doc)); err == nil {
			t.Errorf("expected schema rejection for %s", doc)
		}
	}
}
