package server

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/SmritaPandey/OCR-admission-forms/constants"
	admissionspb "github.com/SmritaPandey/OCR-admission-forms/gen/proto/admissions/v1"
	"github.com/SmritaPandey/OCR-admission-forms/internal/parse"
	"github.com/SmritaPandey/OCR-admission-forms/internal/utils"
)

func (s *AdmissionsService) ListForms(ctx context.Context, req *admissionspb.ListFormsRequest) (*admissionspb.ListFormsResponse, error) {
	st := strings.TrimSpace(req.GetStatus())
	if st != "" && !constants.IsValidStatus(constants.FormStatus(st)) {
		return nil, status.Errorf(codes.InvalidArgument, "unknown status %q", st)
	}

	rows, err := s.formsRepo.List(ctx, st, int(req.GetLimit()), int(req.GetOffset()))
	if err != nil {
		s.logger.Error("failed to list forms", "status", st, "error", err)
		return nil, status.Errorf(codes.Internal, "list forms: %v", err)
	}

	out := make([]*admissionspb.AdmissionForm, 0, len(rows))
	for _, r := range rows {
		out = append(out, utils.ToPBForm(utils.ToForm(r)))
	}
	return &admissionspb.ListFormsResponse{Forms: out}, nil
}

func (s *AdmissionsService) GetForm(ctx context.Context, req *admissionspb.GetFormRequest) (*admissionspb.GetFormResponse, error) {
	formID, err := parseFormID(req.GetFormId())
	if err != nil {
		return nil, err
	}
	row, err := s.formsRepo.GetByID(ctx, formID)
	if err != nil {
		s.logger.Error("failed to get form", "form_id", formID, "error", err)
		return nil, status.Errorf(codes.NotFound, "form %s not found", formID)
	}
	return &admissionspb.GetFormResponse{Form: utils.ToPBForm(utils.ToForm(row))}, nil
}

func (s *AdmissionsService) SearchForms(ctx context.Context, req *admissionspb.SearchFormsRequest) (*admissionspb.SearchFormsResponse, error) {
	query := strings.TrimSpace(req.GetQuery())
	if query == "" {
		return nil, status.Error(codes.InvalidArgument, "query is required")
	}

	rows, err := s.formsRepo.Search(ctx, query, int(req.GetLimit()))
	if err != nil {
		s.logger.Error("failed to search forms", "query", query, "error", err)
		return nil, status.Errorf(codes.Internal, "search forms: %v", err)
	}

	out := make([]*admissionspb.AdmissionForm, 0, len(rows))
	for _, r := range rows {
		out = append(out, utils.ToPBForm(utils.ToForm(r)))
	}
	return &admissionspb.SearchFormsResponse{Forms: out}, nil
}

// UpdateForm merges operator-supplied field values into the stored record.
// The candidate goes through the same sanitation as vendor payloads, so
// unknown keys and empty values are dropped rather than rejected.
func (s *AdmissionsService) UpdateForm(ctx context.Context, req *admissionspb.UpdateFormRequest) (*admissionspb.UpdateFormResponse, error) {
	formID, err := parseFormID(req.GetFormId())
	if err != nil {
		return nil, err
	}
	if len(req.GetFields()) == 0 {
		return nil, status.Error(codes.InvalidArgument, "fields are required")
	}
	policy, err := parsePolicy(req.GetMergePolicy())
	if err != nil {
		return nil, err
	}

	row, err := s.formsRepo.GetByID(ctx, formID)
	if err != nil {
		return nil, status.Errorf(codes.NotFound, "form %s not found", formID)
	}

	candidate := parse.Record{Fields: parse.FieldMap(req.GetFields()).Known()}
	merged := parse.Merge(utils.ToForm(row).Record(), candidate, policy)

	saved, err := s.formsRepo.SaveRecord(ctx, formID, merged)
	if err != nil {
		s.logger.Error("failed to update form", "form_id", formID, "error", err)
		return nil, status.Errorf(codes.Internal, "update form: %v", err)
	}
	s.logger.Info("form updated", "form_id", formID, "policy", policy, "fields", len(candidate.Fields))
	return &admissionspb.UpdateFormResponse{Form: utils.ToPBForm(utils.ToForm(saved))}, nil
}

func (s *AdmissionsService) DeleteForm(ctx context.Context, req *admissionspb.DeleteFormRequest) (*admissionspb.DeleteFormResponse, error) {
	formID, err := parseFormID(req.GetFormId())
	if err != nil {
		return nil, err
	}
	if err := s.formsRepo.Delete(ctx, formID); err != nil {
		s.logger.Error("failed to delete form", "form_id", formID, "error", err)
		return nil, status.Errorf(codes.Internal, "delete form: %v", err)
	}
	s.logger.Info("form deleted", "form_id", formID)
	return &admissionspb.DeleteFormResponse{Deleted: true}, nil
}

func parseFormID(raw string) (uuid.UUID, error) {
	if strings.TrimSpace(raw) == "" {
		return uuid.Nil, status.Error(codes.InvalidArgument, "form_id is required")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, status.Error(codes.InvalidArgument, "form_id must be a UUID")
	}
	return id, nil
}

func parsePolicy(raw string) (parse.Policy, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", string(parse.Overwrite):
		return parse.Overwrite, nil
	case string(parse.Preserve):
		return parse.Preserve, nil
	default:
		return "", status.Errorf(codes.InvalidArgument, "merge_policy must be %q or %q", parse.Overwrite, parse.Preserve)
	}
}
