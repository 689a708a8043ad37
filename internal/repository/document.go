package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/SmritaPandey/OCR-admission-forms/gen/ent"
	entdoc "github.com/SmritaPandey/OCR-admission-forms/gen/ent/studentdocument"
)

type DocumentRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ent.StudentDocument, error)
	GetByHash(ctx context.Context, hash []byte) (*ent.StudentDocument, error)
	Create(ctx context.Context, sourcePath, filename, ext string, size int, hash []byte, uploadedAt time.Time) (*ent.StudentDocument, error)
	UpsertByHash(ctx context.Context, sourcePath, filename, ext string, size int, hash []byte, uploadedAt time.Time) (*ent.StudentDocument, bool, error)
}

type documentRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewDocumentRepository(entc *ent.Client, logger *slog.Logger) DocumentRepository {
	return &documentRepo{
		ent:    entc,
		logger: logger,
	}
}

func (r *documentRepo) GetByID(ctx context.Context, id uuid.UUID) (*ent.StudentDocument, error) {
	return r.ent.StudentDocument.Get(ctx, id)
}

func (r *documentRepo) GetByHash(ctx context.Context, hash []byte) (*ent.StudentDocument, error) {
	row, err := r.ent.StudentDocument.Query().
		Where(entdoc.ContentHash(hash)).
		Only(ctx)
	if err != nil {
		r.logger.Error("failed to get document by hash", "error", err)
		return nil, err
	}
	return row, nil
}

func (r *documentRepo) Create(ctx context.Context, sourcePath, filename, ext string, size int, hash []byte, uploadedAt time.Time) (*ent.StudentDocument, error) {
	row, err := r.ent.StudentDocument.Create().
		SetSourcePath(sourcePath).
		SetFilename(filename).
		SetFileExt(ext).
		SetFileSize(size).
		SetContentHash(hash).
		SetUploadedAt(uploadedAt).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create document", "source_path", sourcePath, "filename", filename, "error", err)
		return nil, err
	}
	return row, nil
}

func (r *documentRepo) UpsertByHash(ctx context.Context, sourcePath, filename, ext string, size int, hash []byte, uploadedAt time.Time) (*ent.StudentDocument, bool, error) {
	if existing, err := r.GetByHash(ctx, hash); err == nil {
		return existing, true, nil
	}
	row, err := r.Create(ctx, sourcePath, filename, ext, size, hash, uploadedAt)
	if err != nil {
		r.logger.Error("failed to upsert document by hash", "source_path", sourcePath, "filename", filename, "error", err)
		return nil, false, err
	}
	return row, false, nil
}
