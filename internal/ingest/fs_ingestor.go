package ingest

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/SmritaPandey/OCR-admission-forms/constants"
	"github.com/SmritaPandey/OCR-admission-forms/internal/repository"
	"github.com/SmritaPandey/OCR-admission-forms/internal/utils"
)

// FSIngestor reads scanned admission forms from the local filesystem.
// Every new document gets an admission form shell in UPLOADED; a
// re-ingested file (same sha256) reuses the stored document and creates
// nothing.
type FSIngestor struct {
	DocsRepo  repository.DocumentRepository
	FormsRepo repository.FormRepository
	Logger    *slog.Logger
}

func NewFSIngestor(docs repository.DocumentRepository, forms repository.FormRepository, logger *slog.Logger) *FSIngestor {
	if logger == nil {
		logger = slog.Default()
	}
	return &FSIngestor{
		DocsRepo:  docs,
		FormsRepo: forms,
		Logger:    logger,
	}
}

func (i *FSIngestor) IngestPath(ctx context.Context, path string) (IngestionResult, error) {
	var out IngestionResult

	abs, err := filepath.Abs(path)
	if err != nil {
		i.Logger.Error("abs path error", "path", path, "error", err)
		return out, err
	}

	ext := constants.NormalizeExt(filepath.Ext(abs))
	if ext == "" || !AllowedExt(ext) {
		i.Logger.Error("unsupported or missing extension", "ext", ext, "path", abs)
		return out, fmt.Errorf("unsupported or missing extension")
	}

	f, err := os.Open(abs)
	if err != nil {
		i.Logger.Error("open error", "path", abs, "error", err)
		return out, err
	}
	defer func(f *os.File) {
		if err := f.Close(); err != nil {
			i.Logger.Error("close file error", "path", abs, "error", err)
		}
	}(f)

	h := sha256.New()
	size, err := io.Copy(h, f)
	if err != nil {
		i.Logger.Error("hash error", "path", abs, "error", err)
		return out, err
	}
	sum := h.Sum(nil)
	now := time.Now().UTC()

	row, dedup, err := i.DocsRepo.UpsertByHash(ctx, abs, filepath.Base(abs), ext, int(size), sum, now)
	if err != nil {
		return out, err
	}

	doc := utils.ToDocument(row)
	out = IngestionResult{
		SourcePath:   doc.SourcePath,
		DocumentID:   doc.ID.String(),
		Deduplicated: dedup,
		HashHex:      hex.EncodeToString(doc.ContentHash),
		FileExt:      doc.FileExt,
		UploadedAt:   doc.UploadedAt,
	}

	if !dedup {
		form, err := i.FormsRepo.Create(ctx, row.ID)
		if err != nil {
			return out, err
		}
		out.FormID = form.ID.String()
	}
	return out, nil
}

// IngestDirectory walks root, skips hidden if requested, and calls
// IngestPath for each matching file. Returns per-file results + aggregate
// stats.
func (i *FSIngestor) IngestDirectory(
	ctx context.Context,
	root string,
	skipHidden bool,
) ([]IngestionResult, DirStats, error) {
	if strings.TrimSpace(root) == "" {
		return nil, DirStats{}, errors.New("root_path is required")
	}

	var results []IngestionResult
	var stats DirStats

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		stats.Scanned++
		if walkErr != nil {
			results = append(results, IngestionResult{SourcePath: path, Err: walkErr.Error()})
			stats.Failed++
			return nil
		}
		if skipHidden && IsHidden(path) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			return nil
		}
		ext := constants.NormalizeExt(filepath.Ext(path))
		if !AllowedExt(ext) {
			return nil
		}
		stats.Matched++

		r, err := i.IngestPath(ctx, path)
		if err != nil {
			results = append(results, IngestionResult{SourcePath: path, Err: err.Error()})
			stats.Failed++
			return nil
		}

		results = append(results, r)
		stats.Succeeded++
		if r.Deduplicated {
			stats.Deduplicated++
		}
		return nil
	})

	if err != nil {
		return results, stats, fmt.Errorf("walk: %w", err)
	}
	return results, stats, nil
}
