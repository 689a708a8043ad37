package entity

import (
	"testing"

	"github.com/SmritaPandey/OCR-admission-forms/internal/parse"
)

func TestRecord_CloneIsIndependent(t *testing.T) {
	f := &AdmissionForm{
		Fields: parse.FieldMap{"student_name": "Anita Rao"},
	}

	rec := f.Record()
	rec.Fields["student_name"] = "Someone Else"

	if f.Fields["student_name"] != "Anita Rao" {
		t.Error("mutating the projected record must not touch the form")
	}
}

func TestApplyRecord_SyncsMirrors(t *testing.T) {
	f := &AdmissionForm{
		StudentName: "Old Name",
		Email:       "old@example.com",
	}

	f.ApplyRecord(parse.Record{Fields: parse.FieldMap{
		"student_name":   "Anita Rao",
		"email":          "anita@example.com",
		"phone_number":   "9876543210",
		"course_applied": "B.Sc Physics",
	}})

	if f.StudentName != "Anita Rao" || f.Email != "anita@example.com" {
		t.Errorf("mirrors not refreshed: %q %q", f.StudentName, f.Email)
	}
	if f.PhoneNumber != "9876543210" || f.CourseApplied != "B.Sc Physics" {
		t.Errorf("mirrors not refreshed: %q %q", f.PhoneNumber, f.CourseApplied)
	}
}
