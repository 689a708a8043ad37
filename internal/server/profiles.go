package server

import (
	"context"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	admissionspb "github.com/SmritaPandey/OCR-admission-forms/gen/proto/admissions/v1"
	"github.com/SmritaPandey/OCR-admission-forms/internal/common"
	"github.com/SmritaPandey/OCR-admission-forms/internal/repository"
	"github.com/SmritaPandey/OCR-admission-forms/internal/utils"
)

// CreateProfile registers a student profile directly, without going
// through form verification.
func (s *AdmissionsService) CreateProfile(ctx context.Context, req *admissionspb.CreateProfileRequest) (*admissionspb.CreateProfileResponse, error) {
	v := common.NewValidator()
	v.Field("student_name", req.GetStudentName(), common.Required, common.MinLength(3), common.MaxLength(49))
	if req.GetEmail() != "" {
		v.Field("email", req.GetEmail(), common.Email)
	}
	if req.GetPhoneNumber() != "" {
		v.Field("phone_number", req.GetPhoneNumber(), common.Phone)
	}
	if err := common.ValidateAndReturnError(v); err != nil {
		return nil, err
	}

	p, err := s.profilesRepo.CreateProfile(ctx, &repository.Profile{
		StudentName:   strings.TrimSpace(req.GetStudentName()),
		Email:         strings.TrimSpace(req.GetEmail()),
		PhoneNumber:   strings.TrimSpace(req.GetPhoneNumber()),
		CourseApplied: strings.TrimSpace(req.GetCourseApplied()),
	})
	if err != nil {
		s.logger.Error("failed to create profile", "error", err)
		return nil, status.Errorf(codes.Internal, "create profile: %v", err)
	}
	return &admissionspb.CreateProfileResponse{
		Profile: utils.ToPBProfile(utils.ToProfile(p)),
	}, nil
}

// ListProfiles lists all the student profiles.
func (s *AdmissionsService) ListProfiles(ctx context.Context, _ *admissionspb.ListProfilesRequest) (*admissionspb.ListProfilesResponse, error) {
	plist, err := s.profilesRepo.ListProfiles(ctx)
	if err != nil {
		s.logger.Error("failed to list profiles", "error", err)
		return nil, status.Errorf(codes.Internal, "list profiles: %v", err)
	}

	out := make([]*admissionspb.StudentProfile, 0, len(plist))
	for _, p := range plist {
		out = append(out, utils.ToPBProfile(utils.ToProfile(p)))
	}
	return &admissionspb.ListProfilesResponse{Profiles: out}, nil
}
