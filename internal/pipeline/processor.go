package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/SmritaPandey/OCR-admission-forms/constants"
	"github.com/SmritaPandey/OCR-admission-forms/gen/ent"
	"github.com/SmritaPandey/OCR-admission-forms/internal/ocr"
	"github.com/SmritaPandey/OCR-admission-forms/internal/parse"
	"github.com/SmritaPandey/OCR-admission-forms/internal/repository"
)

// Config holds thresholds and behavior flags for form processing.
type Config struct {
	MinConfidence float32 // below this the form is flagged for review; default 0.60
}

// Processor runs one form through OCR, field extraction and merge, and
// persists the outcome with the matching status transition.
type Processor struct {
	Logger   *slog.Logger
	Cfg      Config
	Docs     repository.DocumentRepository
	Forms    repository.FormRepository
	Provider ocr.Provider
}

func NewProcessor(logger *slog.Logger, cfg Config, docs repository.DocumentRepository, forms repository.FormRepository, provider ocr.Provider) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.MinConfidence <= 0 {
		cfg.MinConfidence = 0.60
	}
	return &Processor{Logger: logger, Cfg: cfg, Docs: docs, Forms: forms, Provider: provider}
}

// ProcessForm OCRs the form's document, extracts fields from the decoded
// text and merges them into the stored record.
//
// A fresh or failed form is repopulated under the overwrite policy and
// moves UPLOADED/ERROR -> PROCESSING -> EXTRACTED. A verified form is
// re-extracted under preserve, so operator-confirmed values survive, and
// it stays VERIFIED.
func (p *Processor) ProcessForm(ctx context.Context, formID uuid.UUID) (*ent.AdmissionForm, error) {
	form, err := p.Forms.GetByID(ctx, formID)
	if err != nil {
		return nil, fmt.Errorf("load form: %w", err)
	}
	doc, err := p.Docs.GetByID(ctx, form.DocumentID)
	if err != nil {
		return nil, fmt.Errorf("load document: %w", err)
	}

	verified := form.Status == string(constants.FormStatusVerified)
	if !verified {
		if err := p.Forms.SetStatus(ctx, formID, constants.FormStatusProcessing); err != nil {
			return nil, fmt.Errorf("mark processing: %w", err)
		}
	}

	res, err := p.Provider.ExtractText(ctx, doc.SourcePath)
	if err != nil {
		p.Logger.Error("pipeline.ocr.failed", "form_id", formID, "path", doc.SourcePath, "error", err)
		if !verified {
			_ = p.Forms.SetError(ctx, formID, err.Error())
		}
		return nil, err
	}
	p.Logger.Info("pipeline.ocr.ok",
		"form_id", formID,
		"method", res.Method,
		"pages", res.Pages,
		"confidence", res.Confidence,
	)

	fields := parse.ExtractFields(res.Text)
	policy := parse.Overwrite
	if verified {
		policy = parse.Preserve
	}
	merged := parse.Merge(
		parse.Record{Fields: parse.FieldMap(form.Fields), AdditionalInfo: form.AdditionalInfo},
		parse.Record{Fields: fields},
		policy,
	)

	needsReview := res.Confidence > 0 && res.Confidence < p.Cfg.MinConfidence
	if needsReview {
		p.Logger.Warn("pipeline.low_confidence", "form_id", formID, "confidence", res.Confidence)
	}

	if verified {
		// status, verifier and review flag stay untouched on a verified form
		row, err := p.Forms.SaveRecord(ctx, formID, merged)
		if err != nil {
			return nil, fmt.Errorf("save record: %w", err)
		}
		return row, nil
	}

	row, err := p.Forms.SaveExtraction(ctx, &repository.SaveExtractionRequest{
		FormID:      formID,
		Record:      merged,
		OCRText:     res.Text,
		Confidence:  res.Confidence,
		NeedsReview: needsReview,
	})
	if err != nil {
		_ = p.Forms.SetError(ctx, formID, err.Error())
		return nil, fmt.Errorf("save extraction: %w", err)
	}
	p.Logger.Info("pipeline.extracted", "form_id", formID, "fields", len(merged.Fields))
	return row, nil
}
