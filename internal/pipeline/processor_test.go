package pipeline

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/SmritaPandey/OCR-admission-forms/constants"
	"github.com/SmritaPandey/OCR-admission-forms/gen/ent"
	"github.com/SmritaPandey/OCR-admission-forms/internal/ocr"
	"github.com/SmritaPandey/OCR-admission-forms/internal/parse"
	"github.com/SmritaPandey/OCR-admission-forms/internal/repository"
)

type fakeDocs struct {
	doc *ent.StudentDocument
}

func (f *fakeDocs) GetByID(context.Context, uuid.UUID) (*ent.StudentDocument, error) {
	return f.doc, nil
}
func (f *fakeDocs) GetByHash(context.Context, []byte) (*ent.StudentDocument, error) {
	return nil, errors.New("not found")
}
func (f *fakeDocs) Create(context.Context, string, string, string, int, []byte, time.Time) (*ent.StudentDocument, error) {
	return f.doc, nil
}
func (f *fakeDocs) UpsertByHash(context.Context, string, string, string, int, []byte, time.Time) (*ent.StudentDocument, bool, error) {
	return f.doc, false, nil
}

type fakeForms struct {
	form       *ent.AdmissionForm
	statuses   []constants.FormStatus
	errorSet   string
	extraction *repository.SaveExtractionRequest
	saved      *parse.Record
}

func (f *fakeForms) Create(context.Context, uuid.UUID) (*ent.AdmissionForm, error) {
	return f.form, nil
}
func (f *fakeForms) GetByID(context.Context, uuid.UUID) (*ent.AdmissionForm, error) {
	return f.form, nil
}
func (f *fakeForms) GetByDocument(context.Context, uuid.UUID) (*ent.AdmissionForm, error) {
	return f.form, nil
}
func (f *fakeForms) List(context.Context, string, int, int) ([]*ent.AdmissionForm, error) {
	return []*ent.AdmissionForm{f.form}, nil
}
func (f *fakeForms) Search(context.Context, string, int) ([]*ent.AdmissionForm, error) {
	return nil, nil
}
func (f *fakeForms) SetStatus(_ context.Context, _ uuid.UUID, s constants.FormStatus) error {
	f.statuses = append(f.statuses, s)
	return nil
}
func (f *fakeForms) SetError(_ context.Context, _ uuid.UUID, msg string) error {
	f.errorSet = msg
	return nil
}
func (f *fakeForms) SaveExtraction(_ context.Context, req *repository.SaveExtractionRequest) (*ent.AdmissionForm, error) {
	f.extraction = req
	return f.form, nil
}
func (f *fakeForms) SaveRecord(_ context.Context, _ uuid.UUID, rec parse.Record) (*ent.AdmissionForm, error) {
	f.saved = &rec
	return f.form, nil
}
func (f *fakeForms) MarkVerified(context.Context, uuid.UUID, string, *uuid.UUID) (*ent.AdmissionForm, error) {
	return f.form, nil
}
func (f *fakeForms) Delete(context.Context, uuid.UUID) error { return nil }

type fakeOCR struct {
	res ocr.ExtractionResult
	err error
}

func (f fakeOCR) Name() string { return "fake" }
func (f fakeOCR) ExtractText(context.Context, string) (ocr.ExtractionResult, error) {
	return f.res, f.err
}

func newTestForm(status constants.FormStatus, fields map[string]string) *ent.AdmissionForm {
	return &ent.AdmissionForm{
		ID:         uuid.New(),
		DocumentID: uuid.New(),
		Status:     string(status),
		Fields:     fields,
	}
}

func TestProcessForm_FreshFormOverwrites(t *testing.T) {
	form := newTestForm(constants.FormStatusUploaded, map[string]string{"student_name": "Old Name"})
	forms := &fakeForms{form: form}
	docs := &fakeDocs{doc: &ent.StudentDocument{ID: form.DocumentID, SourcePath: "/scans/a.pdf"}}
	provider := fakeOCR{res: ocr.ExtractionResult{
		Text:       "Name: Jane Doe\nEmail: jane@example.com",
		Confidence: 0.9,
	}}

	p := NewProcessor(nil, Config{}, docs, forms, provider)
	if _, err := p.ProcessForm(context.Background(), form.ID); err != nil {
		t.Fatalf("process: %v", err)
	}

	if len(forms.statuses) == 0 || forms.statuses[0] != constants.FormStatusProcessing {
		t.Errorf("expected PROCESSING transition, got %v", forms.statuses)
	}
	if forms.extraction == nil {
		t.Fatal("extraction result was not persisted")
	}
	if got := forms.extraction.Record.Fields["student_name"]; got != "Jane Doe" {
		t.Errorf("student_name = %q, want overwritten value", got)
	}
	if forms.extraction.NeedsReview {
		t.Error("high-confidence extraction should not be flagged for review")
	}
}

func TestProcessForm_LowConfidenceFlagsReview(t *testing.T) {
	form := newTestForm(constants.FormStatusUploaded, nil)
	forms := &fakeForms{form: form}
	docs := &fakeDocs{doc: &ent.StudentDocument{ID: form.DocumentID, SourcePath: "/scans/a.jpg"}}
	provider := fakeOCR{res: ocr.ExtractionResult{Text: "Name: Jane Doe", Confidence: 0.3}}

	p := NewProcessor(nil, Config{}, docs, forms, provider)
	if _, err := p.ProcessForm(context.Background(), form.ID); err != nil {
		t.Fatalf("process: %v", err)
	}
	if forms.extraction == nil || !forms.extraction.NeedsReview {
		t.Error("low-confidence extraction should be flagged for review")
	}
}

func TestProcessForm_VerifiedFormPreserves(t *testing.T) {
	form := newTestForm(constants.FormStatusVerified, map[string]string{"student_name": "Corrected Name"})
	forms := &fakeForms{form: form}
	docs := &fakeDocs{doc: &ent.StudentDocument{ID: form.DocumentID, SourcePath: "/scans/a.pdf"}}
	provider := fakeOCR{res: ocr.ExtractionResult{
		Text:       "Name: Jane Doe\nEmail: jane@example.com",
		Confidence: 0.9,
	}}

	p := NewProcessor(nil, Config{}, docs, forms, provider)
	if _, err := p.ProcessForm(context.Background(), form.ID); err != nil {
		t.Fatalf("process: %v", err)
	}

	if len(forms.statuses) != 0 {
		t.Errorf("verified form should not change status, got %v", forms.statuses)
	}
	if forms.saved == nil {
		t.Fatal("merged record was not persisted")
	}
	if got := forms.saved.Fields["student_name"]; got != "Corrected Name" {
		t.Errorf("student_name = %q, operator value must survive re-extraction", got)
	}
	if got := forms.saved.Fields["email"]; got != "jane@example.com" {
		t.Errorf("email = %q, empty field should be filled", got)
	}
}

func TestProcessForm_OCRFailureSetsError(t *testing.T) {
	form := newTestForm(constants.FormStatusUploaded, nil)
	forms := &fakeForms{form: form}
	docs := &fakeDocs{doc: &ent.StudentDocument{ID: form.DocumentID, SourcePath: "/scans/a.pdf"}}
	provider := fakeOCR{err: errors.New("tesseract exploded")}

	p := NewProcessor(nil, Config{}, docs, forms, provider)
	if _, err := p.ProcessForm(context.Background(), form.ID); err == nil {
		t.Fatal("expected error")
	}
	if forms.errorSet == "" {
		t.Error("OCR failure should be recorded on the form")
	}
}
