package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/SmritaPandey/OCR-admission-forms/gen/ent"
	entprofile "github.com/SmritaPandey/OCR-admission-forms/gen/ent/studentprofile"
)

type Profile struct {
	StudentName   string
	Email         string
	PhoneNumber   string
	CourseApplied string
}

type ProfileRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ent.StudentProfile, error)
	CreateProfile(ctx context.Context, profile *Profile) (*ent.StudentProfile, error)
	ListProfiles(ctx context.Context) ([]*ent.StudentProfile, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type profileRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewProfileRepository(client *ent.Client, logger *slog.Logger) ProfileRepository {
	return &profileRepository{
		client: client,
		logger: logger,
	}
}

func (r *profileRepository) GetByID(ctx context.Context, id uuid.UUID) (*ent.StudentProfile, error) {
	return r.client.StudentProfile.
		Query().
		Where(entprofile.ID(id)).
		Only(ctx)
}

func (r *profileRepository) CreateProfile(ctx context.Context, profile *Profile) (*ent.StudentProfile, error) {
	builder := r.client.StudentProfile.Create().
		SetStudentName(profile.StudentName)
	if profile.Email != "" {
		builder = builder.SetEmail(profile.Email)
	}
	if profile.PhoneNumber != "" {
		builder = builder.SetPhoneNumber(profile.PhoneNumber)
	}
	if profile.CourseApplied != "" {
		builder = builder.SetCourseApplied(profile.CourseApplied)
	}
	p, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("failed to create profile", "student_name", profile.StudentName, "error", err)
		return nil, err
	}
	return p, nil
}

func (r *profileRepository) ListProfiles(ctx context.Context) ([]*ent.StudentProfile, error) {
	plist, err := r.client.StudentProfile.Query().Order(entprofile.ByCreatedAt()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list profiles", "error", err)
		return nil, err
	}
	return plist, nil
}

func (r *profileRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	exists, err := r.client.StudentProfile.Query().Where(entprofile.ID(id)).Exist(ctx)
	if err != nil {
		r.logger.Error("failed to check profile existence", "profile_id", id, "error", err)
		return false, err
	}
	return exists, nil
}
