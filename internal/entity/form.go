package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/SmritaPandey/OCR-admission-forms/constants"
	"github.com/SmritaPandey/OCR-admission-forms/internal/parse"
)

// AdmissionForm represents a digitized admission form for data transfer
// between layers.
type AdmissionForm struct {
	ID             uuid.UUID      `json:"id"`
	DocumentID     uuid.UUID      `json:"document_id"`
	ProfileID      *uuid.UUID     `json:"profile_id,omitempty"`
	Status         string         `json:"status"`
	Fields         parse.FieldMap `json:"fields"`
	AdditionalInfo map[string]any `json:"additional_info,omitempty"`

	// Mirrored search columns, kept in sync with Fields on every write.
	StudentName   string `json:"student_name"`
	Email         string `json:"email"`
	PhoneNumber   string `json:"phone_number"`
	CourseApplied string `json:"course_applied"`

	OCRText       *string    `json:"ocr_text,omitempty"`
	OCRConfidence *float32   `json:"ocr_confidence,omitempty"`
	NeedsReview   bool       `json:"needs_review"`
	ErrorMessage  *string    `json:"error_message,omitempty"`
	VerifiedAt    *time.Time `json:"verified_at,omitempty"`
	VerifiedBy    *string    `json:"verified_by,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// Record projects the form's editable state for merging.
func (f *AdmissionForm) Record() parse.Record {
	return parse.Record{
		Fields:         f.Fields.Clone(),
		AdditionalInfo: f.AdditionalInfo,
	}
}

// ApplyRecord writes merged state back onto the form and refreshes the
// mirrored search columns.
func (f *AdmissionForm) ApplyRecord(rec parse.Record) {
	f.Fields = rec.Fields
	f.AdditionalInfo = rec.AdditionalInfo
	f.StudentName = rec.Fields[constants.FieldStudentName]
	f.Email = rec.Fields[constants.FieldEmail]
	f.PhoneNumber = rec.Fields[constants.FieldPhoneNumber]
	f.CourseApplied = rec.Fields[constants.FieldCourseApplied]
}
