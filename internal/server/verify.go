package server

import (
	"context"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/SmritaPandey/OCR-admission-forms/constants"
	admissionspb "github.com/SmritaPandey/OCR-admission-forms/gen/proto/admissions/v1"
	"github.com/SmritaPandey/OCR-admission-forms/internal/parse"
	"github.com/SmritaPandey/OCR-admission-forms/internal/repository"
	"github.com/SmritaPandey/OCR-admission-forms/internal/utils"
)

// VerifyForm freezes a form after operator review. Supplied corrections
// are merged first (overwrite, since the operator outranks OCR), then the
// form moves to VERIFIED and can optionally mint a student profile.
func (s *AdmissionsService) VerifyForm(ctx context.Context, req *admissionspb.VerifyFormRequest) (*admissionspb.VerifyFormResponse, error) {
	formID, err := parseFormID(req.GetFormId())
	if err != nil {
		return nil, err
	}
	verifiedBy := strings.TrimSpace(req.GetVerifiedBy())
	if verifiedBy == "" {
		return nil, status.Error(codes.InvalidArgument, "verified_by is required")
	}

	row, err := s.formsRepo.GetByID(ctx, formID)
	if err != nil {
		return nil, status.Errorf(codes.NotFound, "form %s not found", formID)
	}
	switch constants.FormStatus(row.Status) {
	case constants.FormStatusExtracted, constants.FormStatusVerified:
	default:
		return nil, status.Errorf(codes.FailedPrecondition, "form %s is %s; only extracted forms can be verified", formID, row.Status)
	}

	merged := utils.ToForm(row).Record()
	if len(req.GetFields()) > 0 {
		merged = parse.Merge(merged, parse.Record{Fields: parse.FieldMap(req.GetFields()).Known()}, parse.Overwrite)
		if _, err := s.formsRepo.SaveRecord(ctx, formID, merged); err != nil {
			s.logger.Error("failed to apply corrections", "form_id", formID, "error", err)
			return nil, status.Errorf(codes.Internal, "apply corrections: %v", err)
		}
	}

	resp := &admissionspb.VerifyFormResponse{}

	if req.GetCreateProfile() {
		name := merged.Fields[constants.FieldStudentName]
		if name == "" {
			return nil, status.Error(codes.FailedPrecondition, "cannot create profile without student_name")
		}
		p, err := s.profilesRepo.CreateProfile(ctx, &repository.Profile{
			StudentName:   name,
			Email:         merged.Fields[constants.FieldEmail],
			PhoneNumber:   merged.Fields[constants.FieldPhoneNumber],
			CourseApplied: merged.Fields[constants.FieldCourseApplied],
		})
		if err != nil {
			s.logger.Error("failed to create profile", "form_id", formID, "error", err)
			return nil, status.Errorf(codes.Internal, "create profile: %v", err)
		}
		resp.Profile = utils.ToPBProfile(utils.ToProfile(p))
		verified, err := s.formsRepo.MarkVerified(ctx, formID, verifiedBy, &p.ID)
		if err != nil {
			return nil, status.Errorf(codes.Internal, "mark verified: %v", err)
		}
		resp.Form = utils.ToPBForm(utils.ToForm(verified))
		s.logger.Info("form verified", "form_id", formID, "verified_by", verifiedBy, "profile_id", p.ID)
		return resp, nil
	}

	verified, err := s.formsRepo.MarkVerified(ctx, formID, verifiedBy, nil)
	if err != nil {
		s.logger.Error("failed to mark form verified", "form_id", formID, "error", err)
		return nil, status.Errorf(codes.Internal, "mark verified: %v", err)
	}
	resp.Form = utils.ToPBForm(utils.ToForm(verified))
	s.logger.Info("form verified", "form_id", formID, "verified_by", verifiedBy)
	return resp, nil
}
