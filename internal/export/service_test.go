package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/SmritaPandey/OCR-admission-forms/constants"
	"github.com/SmritaPandey/OCR-admission-forms/gen/ent"
	"github.com/SmritaPandey/OCR-admission-forms/internal/entity"
	"github.com/SmritaPandey/OCR-admission-forms/internal/parse"
	"github.com/SmritaPandey/OCR-admission-forms/internal/repository"
)

type fakeForms struct {
	rows []*ent.AdmissionForm
}

func (f *fakeForms) Create(context.Context, uuid.UUID) (*ent.AdmissionForm, error) { return nil, nil }
func (f *fakeForms) GetByID(context.Context, uuid.UUID) (*ent.AdmissionForm, error) {
	return nil, nil
}
func (f *fakeForms) GetByDocument(context.Context, uuid.UUID) (*ent.AdmissionForm, error) {
	return nil, nil
}
func (f *fakeForms) List(_ context.Context, status string, _, _ int) ([]*ent.AdmissionForm, error) {
	if status == "" {
		return f.rows, nil
	}
	var out []*ent.AdmissionForm
	for _, r := range f.rows {
		if r.Status == status {
			out = append(out, r)
		}
	}
	return out, nil
}
func (f *fakeForms) Search(context.Context, string, int) ([]*ent.AdmissionForm, error) {
	return nil, nil
}
func (f *fakeForms) SetStatus(context.Context, uuid.UUID, constants.FormStatus) error { return nil }
func (f *fakeForms) SetError(context.Context, uuid.UUID, string) error                { return nil }
func (f *fakeForms) SaveExtraction(context.Context, *repository.SaveExtractionRequest) (*ent.AdmissionForm, error) {
	return nil, nil
}
func (f *fakeForms) SaveRecord(context.Context, uuid.UUID, parse.Record) (*ent.AdmissionForm, error) {
	return nil, nil
}
func (f *fakeForms) MarkVerified(context.Context, uuid.UUID, string, *uuid.UUID) (*ent.AdmissionForm, error) {
	return nil, nil
}
func (f *fakeForms) Delete(context.Context, uuid.UUID) error { return nil }

func sampleRows() []*ent.AdmissionForm {
	return []*ent.AdmissionForm{
		{
			ID:     uuid.New(),
			Status: string(constants.FormStatusExtracted),
			Fields: map[string]string{
				"student_name": "Jane Doe",
				"email":        "jane@example.com",
			},
			CreatedAt: time.Now(),
		},
		{
			ID:     uuid.New(),
			Status: string(constants.FormStatusVerified),
			Fields: map[string]string{
				"student_name": "Priya Sharma",
			},
			CreatedAt: time.Now(),
		},
	}
}

func TestExport_CSV(t *testing.T) {
	svc := NewService(&fakeForms{rows: sampleRows()}, nil)

	out, count, err := svc.Export(context.Background(), FormatCSV, "")
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if count != 2 {
		t.Errorf("count = %d, want 2", count)
	}

	recs, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	if err != nil {
		t.Fatalf("parse csv: %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("rows = %d, want header + 2", len(recs))
	}
	wantCols := len(leadColumns) + len(constants.RecordFields)
	if len(recs[0]) != wantCols {
		t.Errorf("columns = %d, want %d", len(recs[0]), wantCols)
	}

	// student_name sits right after the lead block
	if got := recs[1][len(leadColumns)]; got != "Jane Doe" {
		t.Errorf("first data row student_name = %q", got)
	}
}

func TestExport_StatusFilter(t *testing.T) {
	svc := NewService(&fakeForms{rows: sampleRows()}, nil)

	_, count, err := svc.Export(context.Background(), FormatCSV, string(constants.FormStatusVerified))
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if count != 1 {
		t.Errorf("count = %d, want only verified forms", count)
	}
}

func TestExport_JSON(t *testing.T) {
	svc := NewService(&fakeForms{rows: sampleRows()}, nil)

	out, _, err := svc.Export(context.Background(), FormatJSON, "")
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	var forms []entity.AdmissionForm
	if err := json.Unmarshal(out, &forms); err != nil {
		t.Fatalf("parse json: %v", err)
	}
	if len(forms) != 2 || forms[0].Fields["student_name"] != "Jane Doe" {
		t.Errorf("unexpected decoded export: %+v", forms)
	}
}

func TestExport_XLSX(t *testing.T) {
	svc := NewService(&fakeForms{rows: sampleRows()}, nil)

	out, _, err := svc.Export(context.Background(), FormatXLSX, "")
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	// XLSX files are zip archives
	if len(out) < 4 || out[0] != 'P' || out[1] != 'K' {
		t.Error("expected zip-framed xlsx output")
	}
}

func TestExport_UnknownFormat(t *testing.T) {
	svc := NewService(&fakeForms{}, nil)
	if _, _, err := svc.Export(context.Background(), "pdf", ""); err == nil {
		t.Error("expected error for unsupported format")
	}
}
