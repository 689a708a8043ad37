package utils

import (
	"time"

	"github.com/SmritaPandey/OCR-admission-forms/gen/ent"
	admissionspb "github.com/SmritaPandey/OCR-admission-forms/gen/proto/admissions/v1"
	"github.com/SmritaPandey/OCR-admission-forms/internal/entity"
	"github.com/SmritaPandey/OCR-admission-forms/internal/parse"
)

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func timeOrEmpty(p *time.Time) string {
	if p == nil {
		return ""
	}
	return p.UTC().Format(time.RFC3339)
}

func ToForm(e *ent.AdmissionForm) *entity.AdmissionForm {
	return &entity.AdmissionForm{
		ID:             e.ID,
		DocumentID:     e.DocumentID,
		ProfileID:      e.ProfileID,
		Status:         e.Status,
		Fields:         parse.FieldMap(e.Fields),
		AdditionalInfo: e.AdditionalInfo,
		StudentName:    e.StudentName,
		Email:          e.Email,
		PhoneNumber:    e.PhoneNumber,
		CourseApplied:  e.CourseApplied,
		OCRText:        e.OcrText,
		OCRConfidence:  e.OcrConfidence,
		NeedsReview:    e.NeedsReview,
		ErrorMessage:   e.ErrorMessage,
		VerifiedAt:     e.VerifiedAt,
		VerifiedBy:     e.VerifiedBy,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

func ToProfile(e *ent.StudentProfile) *entity.StudentProfile {
	return &entity.StudentProfile{
		ID:            e.ID,
		StudentName:   e.StudentName,
		Email:         e.Email,
		PhoneNumber:   e.PhoneNumber,
		CourseApplied: e.CourseApplied,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

func ToDocument(e *ent.StudentDocument) *entity.StudentDocument {
	return &entity.StudentDocument{
		ID:          e.ID,
		SourcePath:  e.SourcePath,
		ContentHash: e.ContentHash,
		Filename:    e.Filename,
		FileExt:     e.FileExt,
		FileSize:    e.FileSize,
		UploadedAt:  e.UploadedAt,
	}
}

func ToPBForm(f *entity.AdmissionForm) *admissionspb.AdmissionForm {
	pb := &admissionspb.AdmissionForm{
		Id:            f.ID.String(),
		DocumentId:    f.DocumentID.String(),
		Status:        f.Status,
		Fields:        map[string]string(f.Fields),
		StudentName:   f.StudentName,
		Email:         f.Email,
		PhoneNumber:   f.PhoneNumber,
		CourseApplied: f.CourseApplied,
		NeedsReview:   f.NeedsReview,
		ErrorMessage:  strOrEmpty(f.ErrorMessage),
		VerifiedAt:    timeOrEmpty(f.VerifiedAt),
		VerifiedBy:    strOrEmpty(f.VerifiedBy),
		CreatedAt:     f.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:     f.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if f.ProfileID != nil {
		pb.ProfileId = f.ProfileID.String()
	}
	if f.OCRConfidence != nil {
		pb.OcrConfidence = *f.OCRConfidence
	}
	return pb
}

func ToPBProfile(p *entity.StudentProfile) *admissionspb.StudentProfile {
	return &admissionspb.StudentProfile{
		Id:            p.ID.String(),
		StudentName:   p.StudentName,
		Email:         strOrEmpty(p.Email),
		PhoneNumber:   strOrEmpty(p.PhoneNumber),
		CourseApplied: strOrEmpty(p.CourseApplied),
		CreatedAt:     p.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:     p.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
