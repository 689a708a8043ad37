// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/SmritaPandey/OCR-admission-forms/db/ent/schema"
	"github.com/SmritaPandey/OCR-admission-forms/gen/ent/admissionform"
	"github.com/SmritaPandey/OCR-admission-forms/gen/ent/studentdocument"
	"github.com/SmritaPandey/OCR-admission-forms/gen/ent/studentprofile"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	admissionformFields := schema.AdmissionForm{}.Fields()
	_ = admissionformFields
	// admissionformDescStatus is the schema descriptor for status field.
	admissionformDescStatus := admissionformFields[3].Descriptor()
	// admissionform.DefaultStatus holds the default value on creation for the status field.
	admissionform.DefaultStatus = admissionformDescStatus.Default.(string)
	// admissionform.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	admissionform.StatusValidator = admissionformDescStatus.Validators[0].(func(string) error)
	// admissionformDescFields is the schema descriptor for fields field.
	admissionformDescFields := admissionformFields[4].Descriptor()
	// admissionform.DefaultFields holds the default value on creation for the fields field.
	admissionform.DefaultFields = admissionformDescFields.Default.(map[string]string)
	// admissionformDescStudentName is the schema descriptor for student_name field.
	admissionformDescStudentName := admissionformFields[6].Descriptor()
	// admissionform.DefaultStudentName holds the default value on creation for the student_name field.
	admissionform.DefaultStudentName = admissionformDescStudentName.Default.(string)
	// admissionformDescEmail is the schema descriptor for email field.
	admissionformDescEmail := admissionformFields[7].Descriptor()
	// admissionform.DefaultEmail holds the default value on creation for the email field.
	admissionform.DefaultEmail = admissionformDescEmail.Default.(string)
	// admissionformDescPhoneNumber is the schema descriptor for phone_number field.
	admissionformDescPhoneNumber := admissionformFields[8].Descriptor()
	// admissionform.DefaultPhoneNumber holds the default value on creation for the phone_number field.
	admissionform.DefaultPhoneNumber = admissionformDescPhoneNumber.Default.(string)
	// admissionformDescCourseApplied is the schema descriptor for course_applied field.
	admissionformDescCourseApplied := admissionformFields[9].Descriptor()
	// admissionform.DefaultCourseApplied holds the default value on creation for the course_applied field.
	admissionform.DefaultCourseApplied = admissionformDescCourseApplied.Default.(string)
	// admissionformDescNeedsReview is the schema descriptor for needs_review field.
	admissionformDescNeedsReview := admissionformFields[12].Descriptor()
	// admissionform.DefaultNeedsReview holds the default value on creation for the needs_review field.
	admissionform.DefaultNeedsReview = admissionformDescNeedsReview.Default.(bool)
	// admissionformDescCreatedAt is the schema descriptor for created_at field.
	admissionformDescCreatedAt := admissionformFields[16].Descriptor()
	// admissionform.DefaultCreatedAt holds the default value on creation for the created_at field.
	admissionform.DefaultCreatedAt = admissionformDescCreatedAt.Default.(func() time.Time)
	// admissionformDescUpdatedAt is the schema descriptor for updated_at field.
	admissionformDescUpdatedAt := admissionformFields[17].Descriptor()
	// admissionform.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	admissionform.DefaultUpdatedAt = admissionformDescUpdatedAt.Default.(func() time.Time)
	// admissionform.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	admissionform.UpdateDefaultUpdatedAt = admissionformDescUpdatedAt.UpdateDefault.(func() time.Time)
	// admissionformDescID is the schema descriptor for id field.
	admissionformDescID := admissionformFields[0].Descriptor()
	// admissionform.DefaultID holds the default value on creation for the id field.
	admissionform.DefaultID = admissionformDescID.Default.(func() uuid.UUID)
	studentdocumentFields := schema.StudentDocument{}.Fields()
	_ = studentdocumentFields
	// studentdocumentDescSourcePath is the schema descriptor for source_path field.
	studentdocumentDescSourcePath := studentdocumentFields[1].Descriptor()
	// studentdocument.SourcePathValidator is a validator for the "source_path" field. It is called by the builders before save.
	studentdocument.SourcePathValidator = studentdocumentDescSourcePath.Validators[0].(func(string) error)
	// studentdocumentDescContentHash is the schema descriptor for content_hash field.
	studentdocumentDescContentHash := studentdocumentFields[2].Descriptor()
	// studentdocument.ContentHashValidator is a validator for the "content_hash" field. It is called by the builders before save.
	studentdocument.ContentHashValidator = studentdocumentDescContentHash.Validators[0].(func([]byte) error)
	// studentdocumentDescFilename is the schema descriptor for filename field.
	studentdocumentDescFilename := studentdocumentFields[3].Descriptor()
	// studentdocument.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	studentdocument.FilenameValidator = studentdocumentDescFilename.Validators[0].(func(string) error)
	// studentdocumentDescFileExt is the schema descriptor for file_ext field.
	studentdocumentDescFileExt := studentdocumentFields[4].Descriptor()
	// studentdocument.FileExtValidator is a validator for the "file_ext" field. It is called by the builders before save.
	studentdocument.FileExtValidator = studentdocumentDescFileExt.Validators[0].(func(string) error)
	// studentdocumentDescFileSize is the schema descriptor for file_size field.
	studentdocumentDescFileSize := studentdocumentFields[5].Descriptor()
	// studentdocument.FileSizeValidator is a validator for the "file_size" field. It is called by the builders before save.
	studentdocument.FileSizeValidator = studentdocumentDescFileSize.Validators[0].(func(int) error)
	// studentdocumentDescUploadedAt is the schema descriptor for uploaded_at field.
	studentdocumentDescUploadedAt := studentdocumentFields[6].Descriptor()
	// studentdocument.DefaultUploadedAt holds the default value on creation for the uploaded_at field.
	studentdocument.DefaultUploadedAt = studentdocumentDescUploadedAt.Default.(func() time.Time)
	// studentdocumentDescID is the schema descriptor for id field.
	studentdocumentDescID := studentdocumentFields[0].Descriptor()
	// studentdocument.DefaultID holds the default value on creation for the id field.
	studentdocument.DefaultID = studentdocumentDescID.Default.(func() uuid.UUID)
	studentprofileFields := schema.StudentProfile{}.Fields()
	_ = studentprofileFields
	// studentprofileDescStudentName is the schema descriptor for student_name field.
	studentprofileDescStudentName := studentprofileFields[1].Descriptor()
	// studentprofile.StudentNameValidator is a validator for the "student_name" field. It is called by the builders before save.
	studentprofile.StudentNameValidator = studentprofileDescStudentName.Validators[0].(func(string) error)
	// studentprofileDescCreatedAt is the schema descriptor for created_at field.
	studentprofileDescCreatedAt := studentprofileFields[5].Descriptor()
	// studentprofile.DefaultCreatedAt holds the default value on creation for the created_at field.
	studentprofile.DefaultCreatedAt = studentprofileDescCreatedAt.Default.(func() time.Time)
	// studentprofileDescUpdatedAt is the schema descriptor for updated_at field.
	studentprofileDescUpdatedAt := studentprofileFields[6].Descriptor()
	// studentprofile.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	studentprofile.DefaultUpdatedAt = studentprofileDescUpdatedAt.Default.(func() time.Time)
	// studentprofile.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	studentprofile.UpdateDefaultUpdatedAt = studentprofileDescUpdatedAt.UpdateDefault.(func() time.Time)
	// studentprofileDescID is the schema descriptor for id field.
	studentprofileDescID := studentprofileFields[0].Descriptor()
	// studentprofile.DefaultID holds the default value on creation for the id field.
	studentprofile.DefaultID = studentprofileDescID.Default.(func() uuid.UUID)
}
