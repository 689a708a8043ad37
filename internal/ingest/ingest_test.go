package ingest

import (
	"context"
	"encoding/hex"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/SmritaPandey/OCR-admission-forms/constants"
	"github.com/SmritaPandey/OCR-admission-forms/gen/ent"
	"github.com/SmritaPandey/OCR-admission-forms/internal/parse"
	"github.com/SmritaPandey/OCR-admission-forms/internal/repository"
)

func TestAllowedExt(t *testing.T) {
	cases := []struct {
		ext  string
		want bool
	}{
		{"pdf", true},
		{".PDF", true},
		{"jpeg", true},
		{"tiff", true},
		{"docx", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := AllowedExt(tc.ext); got != tc.want {
			t.Errorf("AllowedExt(%q) = %v, want %v", tc.ext, got, tc.want)
		}
	}
}

func TestIsHidden(t *testing.T) {
	if !IsHidden("/scans/.DS_Store") {
		t.Error("dotfile should be hidden")
	}
	if IsHidden("/scans/form.pdf") {
		t.Error("regular file should not be hidden")
	}
}

type memDocs struct {
	byHash map[string]*ent.StudentDocument
}

func (m *memDocs) GetByID(context.Context, uuid.UUID) (*ent.StudentDocument, error) {
	return nil, os.ErrNotExist
}

func (m *memDocs) GetByHash(_ context.Context, hash []byte) (*ent.StudentDocument, error) {
	if d, ok := m.byHash[hex.EncodeToString(hash)]; ok {
		return d, nil
	}
	return nil, os.ErrNotExist
}

func (m *memDocs) Create(_ context.Context, sourcePath, filename, ext string, size int, hash []byte, uploadedAt time.Time) (*ent.StudentDocument, error) {
	d := &ent.StudentDocument{
		ID:          uuid.New(),
		SourcePath:  sourcePath,
		Filename:    filename,
		FileExt:     ext,
		FileSize:    size,
		ContentHash: hash,
		UploadedAt:  uploadedAt,
	}
	m.byHash[hex.EncodeToString(hash)] = d
	return d, nil
}

func (m *memDocs) UpsertByHash(ctx context.Context, sourcePath, filename, ext string, size int, hash []byte, uploadedAt time.Time) (*ent.StudentDocument, bool, error) {
	if d, err := m.GetByHash(ctx, hash); err == nil {
		return d, true, nil
	}
	d, err := m.Create(ctx, sourcePath, filename, ext, size, hash, uploadedAt)
	return d, false, err
}

type countForms struct {
	created int
}

func (c *countForms) Create(context.Context, uuid.UUID) (*ent.AdmissionForm, error) {
	c.created++
	return &ent.AdmissionForm{ID: uuid.New()}, nil
}
func (c *countForms) GetByID(context.Context, uuid.UUID) (*ent.AdmissionForm, error) {
	return nil, os.ErrNotExist
}
func (c *countForms) GetByDocument(context.Context, uuid.UUID) (*ent.AdmissionForm, error) {
	return nil, os.ErrNotExist
}
func (c *countForms) List(context.Context, string, int, int) ([]*ent.AdmissionForm, error) {
	return nil, nil
}
func (c *countForms) Search(context.Context, string, int) ([]*ent.AdmissionForm, error) {
	return nil, nil
}
func (c *countForms) SetStatus(context.Context, uuid.UUID, constants.FormStatus) error { return nil }
func (c *countForms) SetError(context.Context, uuid.UUID, string) error                { return nil }
func (c *countForms) SaveExtraction(context.Context, *repository.SaveExtractionRequest) (*ent.AdmissionForm, error) {
	return nil, nil
}
func (c *countForms) SaveRecord(context.Context, uuid.UUID, parse.Record) (*ent.AdmissionForm, error) {
	return nil, nil
}
func (c *countForms) MarkVerified(context.Context, uuid.UUID, string, *uuid.UUID) (*ent.AdmissionForm, error) {
	return nil, nil
}
func (c *countForms) Delete(context.Context, uuid.UUID) error { return nil }

func TestIngestPath_DedupeBySHA256(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "form.pdf")
	if err := os.WriteFile(path, []byte("%PDF-1.4 fake form"), 0o644); err != nil {
		t.Fatal(err)
	}

	docs := &memDocs{byHash: map[string]*ent.StudentDocument{}}
	forms := &countForms{}
	ing := NewFSIngestor(docs, forms, nil)

	first, err := ing.IngestPath(context.Background(), path)
	if err != nil {
		t.Fatalf("first ingest: %v", err)
	}
	if first.Deduplicated || first.FormID == "" {
		t.Errorf("first ingest should create a form: %+v", first)
	}

	second, err := ing.IngestPath(context.Background(), path)
	if err != nil {
		t.Fatalf("second ingest: %v", err)
	}
	if !second.Deduplicated {
		t.Error("second ingest of identical bytes should deduplicate")
	}
	if second.DocumentID != first.DocumentID {
		t.Error("dedupe should return the original document")
	}
	if forms.created != 1 {
		t.Errorf("forms created = %d, want 1", forms.created)
	}
}

func TestIngestPath_RejectsUnsupportedExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(path, []byte("hello"), 0o644); err != nil {
		t.Fatal(err)
	}

	ing := NewFSIngestor(&memDocs{byHash: map[string]*ent.StudentDocument{}}, &countForms{}, nil)
	if _, err := ing.IngestPath(context.Background(), path); err == nil {
		t.Error("expected rejection for unsupported extension")
	}
}

func TestIngestDirectory(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"a.pdf":       "form a",
		"b.jpg":       "form b",
		"skip.txt":    "not a scan",
		".hidden.pdf": "hidden",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	docs := &memDocs{byHash: map[string]*ent.StudentDocument{}}
	forms := &countForms{}
	ing := NewFSIngestor(docs, forms, nil)

	results, stats, err := ing.IngestDirectory(context.Background(), dir, true)
	if err != nil {
		t.Fatalf("walk: %v", err)
	}
	if stats.Succeeded != 2 || stats.Failed != 0 {
		t.Errorf("stats = %+v, want 2 succeeded", stats)
	}
	if len(results) != 2 {
		t.Errorf("results = %d, want 2", len(results))
	}
	if forms.created != 2 {
		t.Errorf("forms created = %d, want 2", forms.created)
	}
}

func TestIngestDirectory_EmptyRoot(t *testing.T) {
	ing := NewFSIngestor(&memDocs{byHash: map[string]*ent.StudentDocument{}}, &countForms{}, nil)
	if _, _, err := ing.IngestDirectory(context.Background(), "  ", false); err == nil {
		t.Error("expected error for blank root")
	}
}
