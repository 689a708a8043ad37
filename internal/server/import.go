package server

import (
	"context"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	admissionspb "github.com/SmritaPandey/OCR-admission-forms/gen/proto/admissions/v1"
	"github.com/SmritaPandey/OCR-admission-forms/internal/parse"
	"github.com/SmritaPandey/OCR-admission-forms/internal/utils"
)

// ImportFields merges a structured-OCR vendor payload into a stored form.
// The payload is sanitized (synonym renames, scalar coercion, unknown-key
// drops) and validated against the field schema before anything reaches
// the merger. With dry_run the merged form is returned without persisting.
func (s *AdmissionsService) ImportFields(ctx context.Context, req *admissionspb.ImportFieldsRequest) (*admissionspb.ImportFieldsResponse, error) {
	formID, err := parseFormID(req.GetFormId())
	if err != nil {
		return nil, err
	}
	payload := strings.TrimSpace(req.GetPayloadJson())
	if payload == "" {
		return nil, status.Error(codes.InvalidArgument, "payload_json is required")
	}
	policy, err := parsePolicy(req.GetMergePolicy())
	if err != nil {
		return nil, err
	}

	row, err := s.formsRepo.GetByID(ctx, formID)
	if err != nil {
		return nil, status.Errorf(codes.NotFound, "form %s not found", formID)
	}

	doc, adjusted, err := parse.NormalizeAndSanitizeJSON([]byte(payload), s.logger)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "payload_json: %v", err)
	}
	if err := parse.ValidateJSONAgainstSchema(parse.BuildFieldMapJSONSchema(), doc); err != nil {
		s.logger.Warn("vendor payload failed schema check", "form_id", formID, "error", err)
		return nil, status.Errorf(codes.InvalidArgument, "payload_json: %v", err)
	}
	candidate, err := parse.CandidateFromJSON(doc)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "payload_json: %v", err)
	}

	form := utils.ToForm(row)
	merged := parse.Merge(form.Record(), candidate, policy)

	if req.GetDryRun() {
		form.ApplyRecord(merged)
		return &admissionspb.ImportFieldsResponse{
			Form:         utils.ToPBForm(form),
			AdjustedKeys: adjusted,
		}, nil
	}

	saved, err := s.formsRepo.SaveRecord(ctx, formID, merged)
	if err != nil {
		s.logger.Error("failed to import fields", "form_id", formID, "error", err)
		return nil, status.Errorf(codes.Internal, "import fields: %v", err)
	}
	s.logger.Info("fields imported", "form_id", formID, "policy", policy, "fields", len(candidate.Fields), "adjusted", len(adjusted))
	return &admissionspb.ImportFieldsResponse{
		Form:         utils.ToPBForm(utils.ToForm(saved)),
		AdjustedKeys: adjusted,
	}, nil
}
