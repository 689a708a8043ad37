package parse

import (
	"reflect"
	"testing"
)

func rec(fields map[string]string) Record {
	return Record{Fields: FieldMap(fields)}
}

func TestMerge_PreserveKeepsExisting(t *testing.T) {
	base := rec(map[string]string{"student_name": "Alice"})
	cand := rec(map[string]string{"student_name": "Bob"})

	got := Merge(base, cand, Preserve)
	if got.Fields["student_name"] != "Alice" {
		t.Errorf("student_name = %q, want %q", got.Fields["student_name"], "Alice")
	}
}

func TestMerge_OverwriteReplaces(t *testing.T) {
	base := rec(map[string]string{"student_name": "Alice"})
	cand := rec(map[string]string{"student_name": "Bob"})

	got := Merge(base, cand, Overwrite)
	if got.Fields["student_name"] != "Bob" {
		t.Errorf("student_name = %q, want %q", got.Fields["student_name"], "Bob")
	}
}

func TestMerge_PreserveFillsEmptyFields(t *testing.T) {
	base := rec(map[string]string{"student_name": "Alice"})
	cand := rec(map[string]string{"email": "alice@example.com", "phone_number": "9876543210"})

	got := Merge(base, cand, Preserve)
	want := FieldMap{
		"student_name": "Alice",
		"email":        "alice@example.com",
		"phone_number": "9876543210",
	}
	if !reflect.DeepEqual(got.Fields, want) {
		t.Errorf("fields = %v, want %v", got.Fields, want)
	}
}

func TestMerge_EmptyCandidateIsNoop(t *testing.T) {
	base := rec(map[string]string{"student_name": "Alice", "city": "Pune"})

	for _, policy := range []Policy{Overwrite, Preserve} {
		got := Merge(base, Record{}, policy)
		if !reflect.DeepEqual(got.Fields, base.Fields) {
			t.Errorf("policy %s: fields = %v, want unchanged %v", policy, got.Fields, base.Fields)
		}
	}
}

func TestMerge_SkipsEmptyAndUnknownCandidateValues(t *testing.T) {
	base := rec(map[string]string{"student_name": "Alice"})
	cand := rec(map[string]string{
		"student_name": "   ",
		"not_a_field":  "whatever",
		"email":        "alice@example.com",
	})

	got := Merge(base, cand, Overwrite)
	if got.Fields["student_name"] != "Alice" {
		t.Errorf("blank candidate value overwrote student_name: %q", got.Fields["student_name"])
	}
	if _, ok := got.Fields["not_a_field"]; ok {
		t.Error("unknown field name leaked into merged record")
	}
	if got.Fields["email"] != "alice@example.com" {
		t.Errorf("email = %q, want %q", got.Fields["email"], "alice@example.com")
	}
}

func TestMerge_DoesNotMutateBase(t *testing.T) {
	base := rec(map[string]string{"student_name": "Alice"})
	base.AdditionalInfo = map[string]any{"source": "manual"}
	cand := rec(map[string]string{"student_name": "Bob", "city": "Pune"})
	cand.AdditionalInfo = map[string]any{"source": "ocr", "pages": 2}

	_ = Merge(base, cand, Overwrite)

	if base.Fields["student_name"] != "Alice" || len(base.Fields) != 1 {
		t.Errorf("base fields mutated: %v", base.Fields)
	}
	if base.AdditionalInfo["source"] != "manual" || len(base.AdditionalInfo) != 1 {
		t.Errorf("base additional info mutated: %v", base.AdditionalInfo)
	}
}

func TestMerge_AdditionalInfoUnion(t *testing.T) {
	base := Record{AdditionalInfo: map[string]any{"a": 1}}
	cand := Record{AdditionalInfo: map[string]any{"b": 2}}

	got := Merge(base, cand, Overwrite)
	want := map[string]any{"a": 1, "b": 2}
	if !reflect.DeepEqual(got.AdditionalInfo, want) {
		t.Errorf("additional info = %v, want %v", got.AdditionalInfo, want)
	}
}

func TestMerge_AdditionalInfoPolicyOnConflict(t *testing.T) {
	base := Record{AdditionalInfo: map[string]any{"source": "manual"}}
	cand := Record{AdditionalInfo: map[string]any{"source": "ocr", "nil_key": nil}}

	got := Merge(base, cand, Preserve)
	if got.AdditionalInfo["source"] != "manual" {
		t.Errorf("preserve: source = %v, want manual", got.AdditionalInfo["source"])
	}

	got = Merge(base, cand, Overwrite)
	if got.AdditionalInfo["source"] != "ocr" {
		t.Errorf("overwrite: source = %v, want ocr", got.AdditionalInfo["source"])
	}
	if _, ok := got.AdditionalInfo["nil_key"]; ok {
		t.Error("nil auxiliary value should be skipped")
	}
}

func TestMerge_Idempotent(t *testing.T) {
	base := rec(map[string]string{"student_name": "Alice", "city": "Pune"})
	cand := rec(map[string]string{"student_name": "Bob", "email": "bob@example.com"})

	for _, policy := range []Policy{Overwrite, Preserve} {
		once := Merge(base, cand, policy)
		twice := Merge(once, cand, policy)
		if !reflect.DeepEqual(once, twice) {
			t.Errorf("policy %s: merge not idempotent: %v vs %v", policy, once, twice)
		}
	}
}
