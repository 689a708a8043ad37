package server

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	admissionspb "github.com/SmritaPandey/OCR-admission-forms/gen/proto/admissions/v1"
	"github.com/SmritaPandey/OCR-admission-forms/internal/utils"
)

// ExtractForm ingests a new scan (or targets an existing form) and runs
// the OCR + field extraction pipeline on it.
func (s *AdmissionsService) ExtractForm(ctx context.Context, req *admissionspb.ExtractFormRequest) (*admissionspb.ExtractFormResponse, error) {
	sourcePath := strings.TrimSpace(req.GetSourcePath())
	rawFormID := strings.TrimSpace(req.GetFormId())
	if sourcePath == "" && rawFormID == "" {
		return nil, status.Error(codes.InvalidArgument, "source_path or form_id is required")
	}
	if sourcePath != "" && rawFormID != "" {
		return nil, status.Error(codes.InvalidArgument, "source_path and form_id are mutually exclusive")
	}

	var formID uuid.UUID
	var duplicate bool

	if sourcePath != "" {
		res, err := s.ingestor.IngestPath(ctx, sourcePath)
		if err != nil {
			s.logger.Error("ingest failed", "path", sourcePath, "error", err)
			return nil, status.Errorf(codes.InvalidArgument, "ingest %s: %v", sourcePath, err)
		}
		duplicate = res.Deduplicated
		if res.FormID == "" {
			// duplicate upload; reuse the earliest form for this document
			docID, err := uuid.Parse(res.DocumentID)
			if err != nil {
				return nil, status.Errorf(codes.Internal, "bad document id: %v", err)
			}
			row, err := s.formsRepo.GetByDocument(ctx, docID)
			if err != nil {
				return nil, status.Errorf(codes.NotFound, "no form for document %s: %v", docID, err)
			}
			formID = row.ID
		} else {
			formID, err = uuid.Parse(res.FormID)
			if err != nil {
				return nil, status.Errorf(codes.Internal, "bad form id: %v", err)
			}
		}
	} else {
		var err error
		formID, err = parseFormID(rawFormID)
		if err != nil {
			return nil, err
		}
	}

	row, err := s.processor.ProcessForm(ctx, formID)
	if err != nil {
		s.logger.Error("extraction failed", "form_id", formID, "error", err)
		return nil, status.Errorf(codes.Internal, "extract form: %v", err)
	}
	return &admissionspb.ExtractFormResponse{
		Form:      utils.ToPBForm(utils.ToForm(row)),
		Duplicate: duplicate,
	}, nil
}
