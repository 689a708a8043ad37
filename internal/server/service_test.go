package server

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/SmritaPandey/OCR-admission-forms/constants"
	"github.com/SmritaPandey/OCR-admission-forms/gen/ent"
	admissionspb "github.com/SmritaPandey/OCR-admission-forms/gen/proto/admissions/v1"
	"github.com/SmritaPandey/OCR-admission-forms/internal/common"
	"github.com/SmritaPandey/OCR-admission-forms/internal/parse"
	"github.com/SmritaPandey/OCR-admission-forms/internal/repository"
)

var errNotFound = errors.New("not found")

type fakeForms struct {
	rows     map[uuid.UUID]*ent.AdmissionForm
	verified map[uuid.UUID]string
	deleted  []uuid.UUID
}

func newFakeForms(rows ...*ent.AdmissionForm) *fakeForms {
	f := &fakeForms{
		rows:     map[uuid.UUID]*ent.AdmissionForm{},
		verified: map[uuid.UUID]string{},
	}
	for _, r := range rows {
		f.rows[r.ID] = r
	}
	return f
}

func (f *fakeForms) Create(context.Context, uuid.UUID) (*ent.AdmissionForm, error) { return nil, nil }

func (f *fakeForms) GetByID(_ context.Context, id uuid.UUID) (*ent.AdmissionForm, error) {
	if r, ok := f.rows[id]; ok {
		return r, nil
	}
	return nil, errNotFound
}

func (f *fakeForms) GetByDocument(context.Context, uuid.UUID) (*ent.AdmissionForm, error) {
	return nil, errNotFound
}

func (f *fakeForms) List(_ context.Context, st string, _, _ int) ([]*ent.AdmissionForm, error) {
	var out []*ent.AdmissionForm
	for _, r := range f.rows {
		if st == "" || r.Status == st {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeForms) Search(context.Context, string, int) ([]*ent.AdmissionForm, error) {
	return nil, nil
}

func (f *fakeForms) SetStatus(context.Context, uuid.UUID, constants.FormStatus) error { return nil }
func (f *fakeForms) SetError(context.Context, uuid.UUID, string) error                { return nil }

func (f *fakeForms) SaveExtraction(context.Context, *repository.SaveExtractionRequest) (*ent.AdmissionForm, error) {
	return nil, nil
}

func (f *fakeForms) SaveRecord(_ context.Context, id uuid.UUID, rec parse.Record) (*ent.AdmissionForm, error) {
	r, ok := f.rows[id]
	if !ok {
		return nil, errNotFound
	}
	r.Fields = map[string]string(rec.Fields)
	r.AdditionalInfo = rec.AdditionalInfo
	r.StudentName = rec.Fields[constants.FieldStudentName]
	r.Email = rec.Fields[constants.FieldEmail]
	r.PhoneNumber = rec.Fields[constants.FieldPhoneNumber]
	r.CourseApplied = rec.Fields[constants.FieldCourseApplied]
	return r, nil
}

func (f *fakeForms) MarkVerified(_ context.Context, id uuid.UUID, verifiedBy string, profileID *uuid.UUID) (*ent.AdmissionForm, error) {
	r, ok := f.rows[id]
	if !ok {
		return nil, errNotFound
	}
	now := time.Now()
	r.Status = string(constants.FormStatusVerified)
	r.VerifiedAt = &now
	r.VerifiedBy = &verifiedBy
	r.ProfileID = profileID
	f.verified[id] = verifiedBy
	return r, nil
}

func (f *fakeForms) Delete(_ context.Context, id uuid.UUID) error {
	f.deleted = append(f.deleted, id)
	delete(f.rows, id)
	return nil
}

type fakeProfiles struct {
	created []*repository.Profile
}

func (f *fakeProfiles) GetByID(context.Context, uuid.UUID) (*ent.StudentProfile, error) {
	return nil, errNotFound
}

func (f *fakeProfiles) CreateProfile(_ context.Context, p *repository.Profile) (*ent.StudentProfile, error) {
	f.created = append(f.created, p)
	out := &ent.StudentProfile{
		ID:          uuid.New(),
		StudentName: p.StudentName,
	}
	if p.Email != "" {
		out.Email = &p.Email
	}
	if p.PhoneNumber != "" {
		out.PhoneNumber = &p.PhoneNumber
	}
	if p.CourseApplied != "" {
		out.CourseApplied = &p.CourseApplied
	}
	return out, nil
}

func (f *fakeProfiles) ListProfiles(context.Context) ([]*ent.StudentProfile, error) {
	out := make([]*ent.StudentProfile, 0, len(f.created))
	for _, p := range f.created {
		out = append(out, &ent.StudentProfile{ID: uuid.New(), StudentName: p.StudentName})
	}
	return out, nil
}

func (f *fakeProfiles) Exists(context.Context, uuid.UUID) (bool, error) { return false, nil }

func extractedForm(fields map[string]string) *ent.AdmissionForm {
	return &ent.AdmissionForm{
		ID:         uuid.New(),
		DocumentID: uuid.New(),
		Status:     string(constants.FormStatusExtracted),
		Fields:     fields,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}
}

func newTestService(forms *fakeForms, profiles *fakeProfiles) *AdmissionsService {
	return NewAdmissionsService(forms, nil, profiles, nil, nil, nil, nil)
}

func wantCode(t *testing.T, err error, code codes.Code) {
	t.Helper()
	st, ok := status.FromError(err)
	if !ok {
		t.Fatalf("not a status error: %v", err)
	}
	if st.Code() != code {
		t.Fatalf("code = %v, want %v (%v)", st.Code(), code, err)
	}
}

func TestGetForm_InvalidID(t *testing.T) {
	svc := newTestService(newFakeForms(), &fakeProfiles{})

	_, err := svc.GetForm(context.Background(), &admissionspb.GetFormRequest{FormId: "nope"})
	wantCode(t, err, codes.InvalidArgument)

	_, err = svc.GetForm(context.Background(), &admissionspb.GetFormRequest{FormId: uuid.NewString()})
	wantCode(t, err, codes.NotFound)
}

func TestListForms_RejectsUnknownStatus(t *testing.T) {
	svc := newTestService(newFakeForms(), &fakeProfiles{})

	_, err := svc.ListForms(context.Background(), &admissionspb.ListFormsRequest{Status: "PENDING"})
	wantCode(t, err, codes.InvalidArgument)
}

func TestUpdateForm_PreservePolicy(t *testing.T) {
	row := extractedForm(map[string]string{"student_name": "Anita Rao", "email": ""})
	forms := newFakeForms(row)
	svc := newTestService(forms, &fakeProfiles{})

	resp, err := svc.UpdateForm(context.Background(), &admissionspb.UpdateFormRequest{
		FormId:      row.ID.String(),
		Fields:      map[string]string{"student_name": "Someone Else", "email": "anita@example.com"},
		MergePolicy: "preserve",
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	got := resp.GetForm().GetFields()
	if got["student_name"] != "Anita Rao" {
		t.Errorf("preserve should keep existing name, got %q", got["student_name"])
	}
	if got["email"] != "anita@example.com" {
		t.Errorf("preserve should fill empty email, got %q", got["email"])
	}
}

func TestUpdateForm_DropsUnknownFieldNames(t *testing.T) {
	row := extractedForm(map[string]string{"student_name": "Anita Rao"})
	svc := newTestService(newFakeForms(row), &fakeProfiles{})

	resp, err := svc.UpdateForm(context.Background(), &admissionspb.UpdateFormRequest{
		FormId: row.ID.String(),
		Fields: map[string]string{"favourite_colour": "blue", "email": "anita@example.com"},
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	got := resp.GetForm().GetFields()
	if _, ok := got["favourite_colour"]; ok {
		t.Error("unknown field names must be dropped")
	}
	if got["email"] != "anita@example.com" {
		t.Errorf("known field should survive, got %q", got["email"])
	}
}

func TestUpdateForm_BadPolicy(t *testing.T) {
	row := extractedForm(nil)
	svc := newTestService(newFakeForms(row), &fakeProfiles{})

	_, err := svc.UpdateForm(context.Background(), &admissionspb.UpdateFormRequest{
		FormId:      row.ID.String(),
		Fields:      map[string]string{"email": "x@example.com"},
		MergePolicy: "merge",
	})
	wantCode(t, err, codes.InvalidArgument)
}

func TestImportFields_SanitizesAndMerges(t *testing.T) {
	row := extractedForm(map[string]string{"student_name": "Anita Rao"})
	forms := newFakeForms(row)
	svc := newTestService(forms, &fakeProfiles{})

	resp, err := svc.ImportFields(context.Background(), &admissionspb.ImportFieldsRequest{
		FormId:      row.ID.String(),
		PayloadJson: `{"name":"  Anita Rao  ","phone":"9876543210","tenth_year":2019,"junk":"x"}`,
	})
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	got := resp.GetForm().GetFields()
	if got["phone_number"] != "9876543210" {
		t.Errorf("phone synonym not renamed, fields: %v", got)
	}
	if got["tenth_year"] != "2019" {
		t.Errorf("numeric year not coerced, got %q", got["tenth_year"])
	}
	if _, ok := got["junk"]; ok {
		t.Error("unknown key must be dropped before merging")
	}
	if len(resp.GetAdjustedKeys()) == 0 {
		t.Error("renames and drops should be reported")
	}
	if row.Fields["phone_number"] != "9876543210" {
		t.Errorf("import not persisted: %v", row.Fields)
	}
}

func TestImportFields_RejectsInvalidPayload(t *testing.T) {
	row := extractedForm(nil)
	svc := newTestService(newFakeForms(row), &fakeProfiles{})

	_, err := svc.ImportFields(context.Background(), &admissionspb.ImportFieldsRequest{
		FormId:      row.ID.String(),
		PayloadJson: `{"phone_number":"123"}`,
	})
	wantCode(t, err, codes.InvalidArgument)

	_, err = svc.ImportFields(context.Background(), &admissionspb.ImportFieldsRequest{
		FormId:      row.ID.String(),
		PayloadJson: `not json`,
	})
	wantCode(t, err, codes.InvalidArgument)
}

func TestImportFields_DryRunDoesNotPersist(t *testing.T) {
	row := extractedForm(map[string]string{"student_name": "Anita Rao"})
	forms := newFakeForms(row)
	svc := newTestService(forms, &fakeProfiles{})

	resp, err := svc.ImportFields(context.Background(), &admissionspb.ImportFieldsRequest{
		FormId:      row.ID.String(),
		PayloadJson: `{"email":"anita@example.com"}`,
		DryRun:      true,
	})
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if resp.GetForm().GetFields()["email"] != "anita@example.com" {
		t.Errorf("dry run should preview the merge, got %v", resp.GetForm().GetFields())
	}
	if resp.GetForm().GetEmail() != "anita@example.com" {
		t.Errorf("preview should refresh mirrored columns, got %q", resp.GetForm().GetEmail())
	}
	if _, ok := row.Fields["email"]; ok {
		t.Errorf("dry run must not persist: %v", row.Fields)
	}
}

func TestVerifyForm_MarksVerified(t *testing.T) {
	row := extractedForm(map[string]string{"student_name": "Anita Rao"})
	forms := newFakeForms(row)
	svc := newTestService(forms, &fakeProfiles{})

	resp, err := svc.VerifyForm(context.Background(), &admissionspb.VerifyFormRequest{
		FormId:     row.ID.String(),
		VerifiedBy: "registrar01",
		Fields:     map[string]string{"course_applied": "B.Com (Hons)"},
	})
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if resp.GetForm().GetStatus() != string(constants.FormStatusVerified) {
		t.Errorf("status = %q, want VERIFIED", resp.GetForm().GetStatus())
	}
	if forms.verified[row.ID] != "registrar01" {
		t.Error("verifier not recorded")
	}
	if row.Fields["course_applied"] != "B.Com (Hons)" {
		t.Errorf("correction not applied: %v", row.Fields)
	}
}

func TestVerifyForm_CreatesProfile(t *testing.T) {
	row := extractedForm(map[string]string{
		"student_name":   "Anita Rao",
		"email":          "anita@example.com",
		"course_applied": "B.Sc Physics",
	})
	profiles := &fakeProfiles{}
	svc := newTestService(newFakeForms(row), profiles)

	resp, err := svc.VerifyForm(context.Background(), &admissionspb.VerifyFormRequest{
		FormId:        row.ID.String(),
		VerifiedBy:    "registrar01",
		CreateProfile: true,
	})
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if len(profiles.created) != 1 || profiles.created[0].StudentName != "Anita Rao" {
		t.Fatalf("profile not created from form fields: %+v", profiles.created)
	}
	if resp.GetProfile().GetEmail() != "anita@example.com" {
		t.Errorf("profile email = %q", resp.GetProfile().GetEmail())
	}
	if resp.GetForm().GetProfileId() == "" {
		t.Error("verified form should link to the new profile")
	}
}

func TestVerifyForm_RejectsUploadedForm(t *testing.T) {
	row := extractedForm(nil)
	row.Status = string(constants.FormStatusUploaded)
	svc := newTestService(newFakeForms(row), &fakeProfiles{})

	_, err := svc.VerifyForm(context.Background(), &admissionspb.VerifyFormRequest{
		FormId:     row.ID.String(),
		VerifiedBy: "registrar01",
	})
	wantCode(t, err, codes.FailedPrecondition)
}

func TestVerifyForm_RequiresVerifier(t *testing.T) {
	row := extractedForm(nil)
	svc := newTestService(newFakeForms(row), &fakeProfiles{})

	_, err := svc.VerifyForm(context.Background(), &admissionspb.VerifyFormRequest{
		FormId: row.ID.String(),
	})
	wantCode(t, err, codes.InvalidArgument)
}

func TestCreateProfile_Validation(t *testing.T) {
	svc := newTestService(newFakeForms(), &fakeProfiles{})

	_, err := svc.CreateProfile(context.Background(), &admissionspb.CreateProfileRequest{
		StudentName: "Al",
	})
	wantCode(t, err, codes.InvalidArgument)

	_, err = svc.CreateProfile(context.Background(), &admissionspb.CreateProfileRequest{
		StudentName: "Anita Rao",
		Email:       "not-an-email",
	})
	wantCode(t, err, codes.InvalidArgument)
}

func TestCreateProfile_OK(t *testing.T) {
	profiles := &fakeProfiles{}
	svc := newTestService(newFakeForms(), profiles)

	resp, err := svc.CreateProfile(context.Background(), &admissionspb.CreateProfileRequest{
		StudentName: "Anita Rao",
		Email:       "anita@example.com",
		PhoneNumber: "+919811122233",
	})
	if err != nil {
		t.Fatalf("create profile: %v", err)
	}
	if resp.GetProfile().GetStudentName() != "Anita Rao" {
		t.Errorf("unexpected profile: %+v", resp.GetProfile())
	}
	if len(profiles.created) != 1 {
		t.Errorf("created = %d, want 1", len(profiles.created))
	}
}

func TestDeleteForm(t *testing.T) {
	row := extractedForm(nil)
	forms := newFakeForms(row)
	svc := newTestService(forms, &fakeProfiles{})

	resp, err := svc.DeleteForm(context.Background(), &admissionspb.DeleteFormRequest{FormId: row.ID.String()})
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if !resp.GetDeleted() || len(forms.deleted) != 1 {
		t.Error("form should be deleted")
	}
}

func TestRequestIDInterceptor_StampsContext(t *testing.T) {
	ic := RequestIDInterceptor(nil)

	var got string
	_, err := ic(context.Background(), nil,
		&grpc.UnaryServerInfo{FullMethod: "/admissions.v1.AdmissionsService/GetForm"},
		func(ctx context.Context, _ any) (any, error) {
			got = common.RequestIDFromContext(ctx)
			return nil, nil
		})
	if err != nil {
		t.Fatalf("interceptor: %v", err)
	}
	if _, perr := uuid.Parse(got); perr != nil {
		t.Errorf("handler saw request id %q, want a UUID", got)
	}
}

func TestExtractForm_RequiresExactlyOneTarget(t *testing.T) {
	svc := newTestService(newFakeForms(), &fakeProfiles{})

	_, err := svc.ExtractForm(context.Background(), &admissionspb.ExtractFormRequest{})
	wantCode(t, err, codes.InvalidArgument)

	_, err = svc.ExtractForm(context.Background(), &admissionspb.ExtractFormRequest{
		SourcePath: "/scans/a.pdf",
		FormId:     uuid.NewString(),
	})
	wantCode(t, err, codes.InvalidArgument)
}
