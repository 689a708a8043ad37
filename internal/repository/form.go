package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/SmritaPandey/OCR-admission-forms/constants"
	"github.com/SmritaPandey/OCR-admission-forms/gen/ent"
	entform "github.com/SmritaPandey/OCR-admission-forms/gen/ent/admissionform"
	"github.com/SmritaPandey/OCR-admission-forms/internal/parse"
)

// SaveExtractionRequest wraps the outcome of one OCR extraction run.
type SaveExtractionRequest struct {
	FormID      uuid.UUID
	Record      parse.Record
	OCRText     string
	Confidence  float32
	NeedsReview bool
}

type FormRepository interface {
	Create(ctx context.Context, documentID uuid.UUID) (*ent.AdmissionForm, error)
	GetByID(ctx context.Context, id uuid.UUID) (*ent.AdmissionForm, error)
	GetByDocument(ctx context.Context, documentID uuid.UUID) (*ent.AdmissionForm, error)
	List(ctx context.Context, status string, limit, offset int) ([]*ent.AdmissionForm, error)
	Search(ctx context.Context, query string, limit int) ([]*ent.AdmissionForm, error)
	SetStatus(ctx context.Context, id uuid.UUID, status constants.FormStatus) error
	SetError(ctx context.Context, id uuid.UUID, message string) error
	SaveExtraction(ctx context.Context, req *SaveExtractionRequest) (*ent.AdmissionForm, error)
	SaveRecord(ctx context.Context, id uuid.UUID, rec parse.Record) (*ent.AdmissionForm, error)
	MarkVerified(ctx context.Context, id uuid.UUID, verifiedBy string, profileID *uuid.UUID) (*ent.AdmissionForm, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type formRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewFormRepository(entc *ent.Client, logger *slog.Logger) FormRepository {
	return &formRepo{ent: entc, logger: logger}
}

func (r *formRepo) Create(ctx context.Context, documentID uuid.UUID) (*ent.AdmissionForm, error) {
	row, err := r.ent.AdmissionForm.Create().
		SetDocumentID(documentID).
		SetStatus(string(constants.FormStatusUploaded)).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create form", "document_id", documentID, "error", err)
		return nil, err
	}
	return row, nil
}

func (r *formRepo) GetByID(ctx context.Context, id uuid.UUID) (*ent.AdmissionForm, error) {
	return r.ent.AdmissionForm.Get(ctx, id)
}

// GetByDocument returns the earliest form attached to a document.
func (r *formRepo) GetByDocument(ctx context.Context, documentID uuid.UUID) (*ent.AdmissionForm, error) {
	row, err := r.ent.AdmissionForm.Query().
		Where(entform.DocumentID(documentID)).
		Order(entform.ByCreatedAt()).
		First(ctx)
	if err != nil {
		r.logger.Error("failed to get form by document", "document_id", documentID, "error", err)
		return nil, err
	}
	return row, nil
}

func (r *formRepo) List(ctx context.Context, status string, limit, offset int) ([]*ent.AdmissionForm, error) {
	q := r.ent.AdmissionForm.Query()
	if status != "" {
		q = q.Where(entform.Status(status))
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	if offset > 0 {
		q = q.Offset(offset)
	}
	rows, err := q.Order(entform.ByCreatedAt()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list forms", "status", status, "error", err)
		return nil, err
	}
	return rows, nil
}

// Search matches the mirrored columns case-insensitively. The full field
// map stays opaque JSON; anything searchable must be mirrored.
func (r *formRepo) Search(ctx context.Context, query string, limit int) ([]*ent.AdmissionForm, error) {
	q := r.ent.AdmissionForm.Query().
		Where(entform.Or(
			entform.StudentNameContainsFold(query),
			entform.EmailContainsFold(query),
			entform.PhoneNumberContainsFold(query),
			entform.CourseAppliedContainsFold(query),
		))
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := q.Order(entform.ByCreatedAt()).All(ctx)
	if err != nil {
		r.logger.Error("failed to search forms", "query", query, "error", err)
		return nil, err
	}
	return rows, nil
}

func (r *formRepo) SetStatus(ctx context.Context, id uuid.UUID, status constants.FormStatus) error {
	err := r.ent.AdmissionForm.UpdateOneID(id).
		SetStatus(string(status)).
		Exec(ctx)
	if err != nil {
		r.logger.Error("failed to set form status", "form_id", id, "status", status, "error", err)
	}
	return err
}

func (r *formRepo) SetError(ctx context.Context, id uuid.UUID, message string) error {
	err := r.ent.AdmissionForm.UpdateOneID(id).
		SetStatus(string(constants.FormStatusError)).
		SetErrorMessage(message).
		Exec(ctx)
	if err != nil {
		r.logger.Error("failed to record form error", "form_id", id, "error", err)
	}
	return err
}

func (r *formRepo) SaveExtraction(ctx context.Context, req *SaveExtractionRequest) (*ent.AdmissionForm, error) {
	builder := r.ent.AdmissionForm.UpdateOneID(req.FormID).
		SetStatus(string(constants.FormStatusExtracted)).
		SetOcrText(req.OCRText).
		SetOcrConfidence(req.Confidence).
		SetNeedsReview(req.NeedsReview).
		ClearErrorMessage()
	builder = applyRecord(builder, req.Record)
	row, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("failed to save extraction", "form_id", req.FormID, "error", err)
		return nil, err
	}
	return row, nil
}

func (r *formRepo) SaveRecord(ctx context.Context, id uuid.UUID, rec parse.Record) (*ent.AdmissionForm, error) {
	row, err := applyRecord(r.ent.AdmissionForm.UpdateOneID(id), rec).Save(ctx)
	if err != nil {
		r.logger.Error("failed to save record", "form_id", id, "error", err)
		return nil, err
	}
	return row, nil
}

func (r *formRepo) MarkVerified(ctx context.Context, id uuid.UUID, verifiedBy string, profileID *uuid.UUID) (*ent.AdmissionForm, error) {
	builder := r.ent.AdmissionForm.UpdateOneID(id).
		SetStatus(string(constants.FormStatusVerified)).
		SetVerifiedAt(time.Now()).
		SetVerifiedBy(verifiedBy).
		SetNeedsReview(false)
	if profileID != nil {
		builder = builder.SetProfileID(*profileID)
	}
	row, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("failed to mark form verified", "form_id", id, "error", err)
		return nil, err
	}
	return row, nil
}

func (r *formRepo) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.ent.AdmissionForm.DeleteOneID(id).Exec(ctx)
	if err != nil {
		r.logger.Error("failed to delete form", "form_id", id, "error", err)
	}
	return err
}

// applyRecord writes the field map and refreshes the mirrored columns in
// the same update.
func applyRecord(b *ent.AdmissionFormUpdateOne, rec parse.Record) *ent.AdmissionFormUpdateOne {
	b = b.SetFields(map[string]string(rec.Fields)).
		SetStudentName(rec.Fields[constants.FieldStudentName]).
		SetEmail(rec.Fields[constants.FieldEmail]).
		SetPhoneNumber(rec.Fields[constants.FieldPhoneNumber]).
		SetCourseApplied(rec.Fields[constants.FieldCourseApplied])
	if rec.AdditionalInfo != nil {
		b = b.SetAdditionalInfo(rec.AdditionalInfo)
	}
	return b
}
