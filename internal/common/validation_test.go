package common

import "testing"

func TestValidator_CollectsErrors(t *testing.T) {
	v := NewValidator()
	v.Field("student_name", "", Required)
	v.Field("email", "not-an-email", Email)
	v.Field("phone_number", "9876543210", Phone)

	if !v.HasErrors() {
		t.Fatal("expected validation errors")
	}
	if len(v.Errors()) != 2 {
		t.Errorf("errors = %d, want 2", len(v.Errors()))
	}
	if msg := v.ErrorMessage(); msg == "" {
		t.Error("expected combined error message")
	}
}

func TestPhone(t *testing.T) {
	cases := []struct {
		value string
		ok    bool
	}{
		{"9876543210", true},
		{"+919876543210", true},
		{"12345", false},
		{"98-76-54", false},
		{"", false},
	}
	for _, tc := range cases {
		err := Phone("phone_number", tc.value)
		if (err == nil) != tc.ok {
			t.Errorf("Phone(%q) ok=%v, want %v", tc.value, err == nil, tc.ok)
		}
	}
}

func TestEmail(t *testing.T) {
	if err := Email("email", "jane@example.com"); err != nil {
		t.Errorf("valid email rejected: %v", err)
	}
	if err := Email("email", "Jane@Example.com"); err == nil {
		t.Error("non-normalized email should be rejected")
	}
}

func TestPincode(t *testing.T) {
	if err := Pincode("pincode", "110016"); err != nil {
		t.Errorf("valid pincode rejected: %v", err)
	}
	for _, bad := range []string{"1100", "11001A", "1100167"} {
		if err := Pincode("pincode", bad); err == nil {
			t.Errorf("Pincode(%q) should fail", bad)
		}
	}
}

func TestMinMaxLength(t *testing.T) {
	if err := MinLength(3)("f", "ab"); err == nil {
		t.Error("MinLength should fail for short value")
	}
	if err := MaxLength(3)("f", "abcd"); err == nil {
		t.Error("MaxLength should fail for long value")
	}
	if err := MinLength(3)("f", "abc"); err != nil {
		t.Errorf("MinLength false positive: %v", err)
	}
}

func TestUUIDRule(t *testing.T) {
	if err := UUID("form_id", "not-a-uuid"); err == nil {
		t.Error("expected UUID rejection")
	}
	if err := UUID("form_id", "7b8a1a86-8f77-4a4e-9a3c-0f4e5d6c7b8a"); err != nil {
		t.Errorf("valid UUID rejected: %v", err)
	}
}
