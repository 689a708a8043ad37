// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/SmritaPandey/OCR-admission-forms/gen/ent/admissionform"
	"github.com/SmritaPandey/OCR-admission-forms/gen/ent/predicate"
	"github.com/SmritaPandey/OCR-admission-forms/gen/ent/studentdocument"
	"github.com/SmritaPandey/OCR-admission-forms/gen/ent/studentprofile"
	"github.com/google/uuid"
)

// AdmissionFormUpdate is the builder for updating AdmissionForm entities.
type AdmissionFormUpdate struct {
	config
	hooks    []Hook
	mutation *AdmissionFormMutation
}

// Where appends a list predicates to the AdmissionFormUpdate builder.
func (_u *AdmissionFormUpdate) Where(ps ...predicate.AdmissionForm) *AdmissionFormUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *AdmissionFormUpdate) SetDocumentID(v uuid.UUID) *AdmissionFormUpdate {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *AdmissionFormUpdate) SetNillableDocumentID(v *uuid.UUID) *AdmissionFormUpdate {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetProfileID sets the "profile_id" field.
func (_u *AdmissionFormUpdate) SetProfileID(v uuid.UUID) *AdmissionFormUpdate {
	_u.mutation.SetProfileID(v)
	return _u
}

// SetNillableProfileID sets the "profile_id" field if the given value is not nil.
func (_u *AdmissionFormUpdate) SetNillableProfileID(v *uuid.UUID) *AdmissionFormUpdate {
	if v != nil {
		_u.SetProfileID(*v)
	}
	return _u
}

// ClearProfileID clears the value of the "profile_id" field.
func (_u *AdmissionFormUpdate) ClearProfileID() *AdmissionFormUpdate {
	_u.mutation.ClearProfileID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *AdmissionFormUpdate) SetStatus(v string) *AdmissionFormUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AdmissionFormUpdate) SetNillableStatus(v *string) *AdmissionFormUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetFields sets the "fields" field.
func (_u *AdmissionFormUpdate) SetFields(v map[string]string) *AdmissionFormUpdate {
	_u.mutation.SetFields(v)
	return _u
}

// SetAdditionalInfo sets the "additional_info" field.
func (_u *AdmissionFormUpdate) SetAdditionalInfo(v map[string]interface{}) *AdmissionFormUpdate {
	_u.mutation.SetAdditionalInfo(v)
	return _u
}

// ClearAdditionalInfo clears the value of the "additional_info" field.
func (_u *AdmissionFormUpdate) ClearAdditionalInfo() *AdmissionFormUpdate {
	_u.mutation.ClearAdditionalInfo()
	return _u
}

// SetStudentName sets the "student_name" field.
func (_u *AdmissionFormUpdate) SetStudentName(v string) *AdmissionFormUpdate {
	_u.mutation.SetStudentName(v)
	return _u
}

// SetNillableStudentName sets the "student_name" field if the given value is not nil.
func (_u *AdmissionFormUpdate) SetNillableStudentName(v *string) *AdmissionFormUpdate {
	if v != nil {
		_u.SetStudentName(*v)
	}
	return _u
}

// ClearStudentName clears the value of the "student_name" field.
func (_u *AdmissionFormUpdate) ClearStudentName() *AdmissionFormUpdate {
	_u.mutation.ClearStudentName()
	return _u
}

// SetEmail sets the "email" field.
func (_u *AdmissionFormUpdate) SetEmail(v string) *AdmissionFormUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *AdmissionFormUpdate) SetNillableEmail(v *string) *AdmissionFormUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *AdmissionFormUpdate) ClearEmail() *AdmissionFormUpdate {
	_u.mutation.ClearEmail()
	return _u
}

// SetPhoneNumber sets the "phone_number" field.
func (_u *AdmissionFormUpdate) SetPhoneNumber(v string) *AdmissionFormUpdate {
	_u.mutation.SetPhoneNumber(v)
	return _u
}

// SetNillablePhoneNumber sets the "phone_number" field if the given value is not nil.
func (_u *AdmissionFormUpdate) SetNillablePhoneNumber(v *string) *AdmissionFormUpdate {
	if v != nil {
		_u.SetPhoneNumber(*v)
	}
	return _u
}

// ClearPhoneNumber clears the value of the "phone_number" field.
func (_u *AdmissionFormUpdate) ClearPhoneNumber() *AdmissionFormUpdate {
	_u.mutation.ClearPhoneNumber()
	return _u
}

// SetCourseApplied sets the "course_applied" field.
func (_u *AdmissionFormUpdate) SetCourseApplied(v string) *AdmissionFormUpdate {
	_u.mutation.SetCourseApplied(v)
	return _u
}

// SetNillableCourseApplied sets the "course_applied" field if the given value is not nil.
func (_u *AdmissionFormUpdate) SetNillableCourseApplied(v *string) *AdmissionFormUpdate {
	if v != nil {
		_u.SetCourseApplied(*v)
	}
	return _u
}

// ClearCourseApplied clears the value of the "course_applied" field.
func (_u *AdmissionFormUpdate) ClearCourseApplied() *AdmissionFormUpdate {
	_u.mutation.ClearCourseApplied()
	return _u
}

// SetOcrText sets the "ocr_text" field.
func (_u *AdmissionFormUpdate) SetOcrText(v string) *AdmissionFormUpdate {
	_u.mutation.SetOcrText(v)
	return _u
}

// SetNillableOcrText sets the "ocr_text" field if the given value is not nil.
func (_u *AdmissionFormUpdate) SetNillableOcrText(v *string) *AdmissionFormUpdate {
	if v != nil {
		_u.SetOcrText(*v)
	}
	return _u
}

// ClearOcrText clears the value of the "ocr_text" field.
func (_u *AdmissionFormUpdate) ClearOcrText() *AdmissionFormUpdate {
	_u.mutation.ClearOcrText()
	return _u
}

// SetOcrConfidence sets the "ocr_confidence" field.
func (_u *AdmissionFormUpdate) SetOcrConfidence(v float32) *AdmissionFormUpdate {
	_u.mutation.ResetOcrConfidence()
	_u.mutation.SetOcrConfidence(v)
	return _u
}

// SetNillableOcrConfidence sets the "ocr_confidence" field if the given value is not nil.
func (_u *AdmissionFormUpdate) SetNillableOcrConfidence(v *float32) *AdmissionFormUpdate {
	if v != nil {
		_u.SetOcrConfidence(*v)
	}
	return _u
}

// AddOcrConfidence adds value to the "ocr_confidence" field.
func (_u *AdmissionFormUpdate) AddOcrConfidence(v float32) *AdmissionFormUpdate {
	_u.mutation.AddOcrConfidence(v)
	return _u
}

// ClearOcrConfidence clears the value of the "ocr_confidence" field.
func (_u *AdmissionFormUpdate) ClearOcrConfidence() *AdmissionFormUpdate {
	_u.mutation.ClearOcrConfidence()
	return _u
}

// SetNeedsReview sets the "needs_review" field.
func (_u *AdmissionFormUpdate) SetNeedsReview(v bool) *AdmissionFormUpdate {
	_u.mutation.SetNeedsReview(v)
	return _u
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (_u *AdmissionFormUpdate) SetNillableNeedsReview(v *bool) *AdmissionFormUpdate {
	if v != nil {
		_u.SetNeedsReview(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *AdmissionFormUpdate) SetErrorMessage(v string) *AdmissionFormUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *AdmissionFormUpdate) SetNillableErrorMessage(v *string) *AdmissionFormUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *AdmissionFormUpdate) ClearErrorMessage() *AdmissionFormUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetVerifiedAt sets the "verified_at" field.
func (_u *AdmissionFormUpdate) SetVerifiedAt(v time.Time) *AdmissionFormUpdate {
	_u.mutation.SetVerifiedAt(v)
	return _u
}

// SetNillableVerifiedAt sets the "verified_at" field if the given value is not nil.
func (_u *AdmissionFormUpdate) SetNillableVerifiedAt(v *time.Time) *AdmissionFormUpdate {
	if v != nil {
		_u.SetVerifiedAt(*v)
	}
	return _u
}

// ClearVerifiedAt clears the value of the "verified_at" field.
func (_u *AdmissionFormUpdate) ClearVerifiedAt() *AdmissionFormUpdate {
	_u.mutation.ClearVerifiedAt()
	return _u
}

// SetVerifiedBy sets the "verified_by" field.
func (_u *AdmissionFormUpdate) SetVerifiedBy(v string) *AdmissionFormUpdate {
	_u.mutation.SetVerifiedBy(v)
	return _u
}

// SetNillableVerifiedBy sets the "verified_by" field if the given value is not nil.
func (_u *AdmissionFormUpdate) SetNillableVerifiedBy(v *string) *AdmissionFormUpdate {
	if v != nil {
		_u.SetVerifiedBy(*v)
	}
	return _u
}

// ClearVerifiedBy clears the value of the "verified_by" field.
func (_u *AdmissionFormUpdate) ClearVerifiedBy() *AdmissionFormUpdate {
	_u.mutation.ClearVerifiedBy()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *AdmissionFormUpdate) SetCreatedAt(v time.Time) *AdmissionFormUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *AdmissionFormUpdate) SetNillableCreatedAt(v *time.Time) *AdmissionFormUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AdmissionFormUpdate) SetUpdatedAt(v time.Time) *AdmissionFormUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDocument sets the "document" edge to the StudentDocument entity.
func (_u *AdmissionFormUpdate) SetDocument(v *StudentDocument) *AdmissionFormUpdate {
	return _u.SetDocumentID(v.ID)
}

// SetProfile sets the "profile" edge to the StudentProfile entity.
func (_u *AdmissionFormUpdate) SetProfile(v *StudentProfile) *AdmissionFormUpdate {
	return _u.SetProfileID(v.ID)
}

// Mutation returns the AdmissionFormMutation object of the builder.
func (_u *AdmissionFormUpdate) Mutation() *AdmissionFormMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the StudentDocument entity.
func (_u *AdmissionFormUpdate) ClearDocument() *AdmissionFormUpdate {
	_u.mutation.ClearDocument()
	return _u
}

// ClearProfile clears the "profile" edge to the StudentProfile entity.
func (_u *AdmissionFormUpdate) ClearProfile() *AdmissionFormUpdate {
	_u.mutation.ClearProfile()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AdmissionFormUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AdmissionFormUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AdmissionFormUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AdmissionFormUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AdmissionFormUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := admissionform.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AdmissionFormUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := admissionform.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AdmissionForm.status": %w`, err)}
		}
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AdmissionForm.document"`)
	}
	return nil
}

func (_u *AdmissionFormUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(admissionform.Table, admissionform.Columns, sqlgraph.NewFieldSpec(admissionform.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(admissionform.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.GetFields(); ok {
		_spec.SetField(admissionform.FieldFields, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AdditionalInfo(); ok {
		_spec.SetField(admissionform.FieldAdditionalInfo, field.TypeJSON, value)
	}
	if _u.mutation.AdditionalInfoCleared() {
		_spec.ClearField(admissionform.FieldAdditionalInfo, field.TypeJSON)
	}
	if value, ok := _u.mutation.StudentName(); ok {
		_spec.SetField(admissionform.FieldStudentName, field.TypeString, value)
	}
	if _u.mutation.StudentNameCleared() {
		_spec.ClearField(admissionform.FieldStudentName, field.TypeString)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(admissionform.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(admissionform.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.PhoneNumber(); ok {
		_spec.SetField(admissionform.FieldPhoneNumber, field.TypeString, value)
	}
	if _u.mutation.PhoneNumberCleared() {
		_spec.ClearField(admissionform.FieldPhoneNumber, field.TypeString)
	}
	if value, ok := _u.mutation.CourseApplied(); ok {
		_spec.SetField(admissionform.FieldCourseApplied, field.TypeString, value)
	}
	if _u.mutation.CourseAppliedCleared() {
		_spec.ClearField(admissionform.FieldCourseApplied, field.TypeString)
	}
	if value, ok := _u.mutation.OcrText(); ok {
		_spec.SetField(admissionform.FieldOcrText, field.TypeString, value)
	}
	if _u.mutation.OcrTextCleared() {
		_spec.ClearField(admissionform.FieldOcrText, field.TypeString)
	}
	if value, ok := _u.mutation.OcrConfidence(); ok {
		_spec.SetField(admissionform.FieldOcrConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedOcrConfidence(); ok {
		_spec.AddField(admissionform.FieldOcrConfidence, field.TypeFloat32, value)
	}
	if _u.mutation.OcrConfidenceCleared() {
		_spec.ClearField(admissionform.FieldOcrConfidence, field.TypeFloat32)
	}
	if value, ok := _u.mutation.NeedsReview(); ok {
		_spec.SetField(admissionform.FieldNeedsReview, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(admissionform.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(admissionform.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.VerifiedAt(); ok {
		_spec.SetField(admissionform.FieldVerifiedAt, field.TypeTime, value)
	}
	if _u.mutation.VerifiedAtCleared() {
		_spec.ClearField(admissionform.FieldVerifiedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.VerifiedBy(); ok {
		_spec.SetField(admissionform.FieldVerifiedBy, field.TypeString, value)
	}
	if _u.mutation.VerifiedByCleared() {
		_spec.ClearField(admissionform.FieldVerifiedBy, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(admissionform.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(admissionform.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.DocumentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   admissionform.DocumentTable,
			Columns: []string{admissionform.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(studentdocument.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   admissionform.DocumentTable,
			Columns: []string{admissionform.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(studentdocument.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ProfileCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   admissionform.ProfileTable,
			Columns: []string{admissionform.ProfileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(studentprofile.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProfileIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   admissionform.ProfileTable,
			Columns: []string{admissionform.ProfileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(studentprofile.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{admissionform.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AdmissionFormUpdateOne is the builder for updating a single AdmissionForm entity.
type AdmissionFormUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AdmissionFormMutation
}

// SetDocumentID sets the "document_id" field.
func (_u *AdmissionFormUpdateOne) SetDocumentID(v uuid.UUID) *AdmissionFormUpdateOne {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *AdmissionFormUpdateOne) SetNillableDocumentID(v *uuid.UUID) *AdmissionFormUpdateOne {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetProfileID sets the "profile_id" field.
func (_u *AdmissionFormUpdateOne) SetProfileID(v uuid.UUID) *AdmissionFormUpdateOne {
	_u.mutation.SetProfileID(v)
	return _u
}

// SetNillableProfileID sets the "profile_id" field if the given value is not nil.
func (_u *AdmissionFormUpdateOne) SetNillableProfileID(v *uuid.UUID) *AdmissionFormUpdateOne {
	if v != nil {
		_u.SetProfileID(*v)
	}
	return _u
}

// ClearProfileID clears the value of the "profile_id" field.
func (_u *AdmissionFormUpdateOne) ClearProfileID() *AdmissionFormUpdateOne {
	_u.mutation.ClearProfileID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *AdmissionFormUpdateOne) SetStatus(v string) *AdmissionFormUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AdmissionFormUpdateOne) SetNillableStatus(v *string) *AdmissionFormUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetFields sets the "fields" field.
func (_u *AdmissionFormUpdateOne) SetFields(v map[string]string) *AdmissionFormUpdateOne {
	_u.mutation.SetFields(v)
	return _u
}

// SetAdditionalInfo sets the "additional_info" field.
func (_u *AdmissionFormUpdateOne) SetAdditionalInfo(v map[string]interface{}) *AdmissionFormUpdateOne {
	_u.mutation.SetAdditionalInfo(v)
	return _u
}

// ClearAdditionalInfo clears the value of the "additional_info" field.
func (_u *AdmissionFormUpdateOne) ClearAdditionalInfo() *AdmissionFormUpdateOne {
	_u.mutation.ClearAdditionalInfo()
	return _u
}

// SetStudentName sets the "student_name" field.
func (_u *AdmissionFormUpdateOne) SetStudentName(v string) *AdmissionFormUpdateOne {
	_u.mutation.SetStudentName(v)
	return _u
}

// SetNillableStudentName sets the "student_name" field if the given value is not nil.
func (_u *AdmissionFormUpdateOne) SetNillableStudentName(v *string) *AdmissionFormUpdateOne {
	if v != nil {
		_u.SetStudentName(*v)
	}
	return _u
}

// ClearStudentName clears the value of the "student_name" field.
func (_u *AdmissionFormUpdateOne) ClearStudentName() *AdmissionFormUpdateOne {
	_u.mutation.ClearStudentName()
	return _u
}

// SetEmail sets the "email" field.
func (_u *AdmissionFormUpdateOne) SetEmail(v string) *AdmissionFormUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *AdmissionFormUpdateOne) SetNillableEmail(v *string) *AdmissionFormUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *AdmissionFormUpdateOne) ClearEmail() *AdmissionFormUpdateOne {
	_u.mutation.ClearEmail()
	return _u
}

// SetPhoneNumber sets the "phone_number" field.
func (_u *AdmissionFormUpdateOne) SetPhoneNumber(v string) *AdmissionFormUpdateOne {
	_u.mutation.SetPhoneNumber(v)
	return _u
}

// SetNillablePhoneNumber sets the "phone_number" field if the given value is not nil.
func (_u *AdmissionFormUpdateOne) SetNillablePhoneNumber(v *string) *AdmissionFormUpdateOne {
	if v != nil {
		_u.SetPhoneNumber(*v)
	}
	return _u
}

// ClearPhoneNumber clears the value of the "phone_number" field.
func (_u *AdmissionFormUpdateOne) ClearPhoneNumber() *AdmissionFormUpdateOne {
	_u.mutation.ClearPhoneNumber()
	return _u
}

// SetCourseApplied sets the "course_applied" field.
func (_u *AdmissionFormUpdateOne) SetCourseApplied(v string) *AdmissionFormUpdateOne {
	_u.mutation.SetCourseApplied(v)
	return _u
}

// SetNillableCourseApplied sets the "course_applied" field if the given value is not nil.
func (_u *AdmissionFormUpdateOne) SetNillableCourseApplied(v *string) *AdmissionFormUpdateOne {
	if v != nil {
		_u.SetCourseApplied(*v)
	}
	return _u
}

// ClearCourseApplied clears the value of the "course_applied" field.
func (_u *AdmissionFormUpdateOne) ClearCourseApplied() *AdmissionFormUpdateOne {
	_u.mutation.ClearCourseApplied()
	return _u
}

// SetOcrText sets the "ocr_text" field.
func (_u *AdmissionFormUpdateOne) SetOcrText(v string) *AdmissionFormUpdateOne {
	_u.mutation.SetOcrText(v)
	return _u
}

// SetNillableOcrText sets the "ocr_text" field if the given value is not nil.
func (_u *AdmissionFormUpdateOne) SetNillableOcrText(v *string) *AdmissionFormUpdateOne {
	if v != nil {
		_u.SetOcrText(*v)
	}
	return _u
}

// ClearOcrText clears the value of the "ocr_text" field.
func (_u *AdmissionFormUpdateOne) ClearOcrText() *AdmissionFormUpdateOne {
	_u.mutation.ClearOcrText()
	return _u
}

// SetOcrConfidence sets the "ocr_confidence" field.
func (_u *AdmissionFormUpdateOne) SetOcrConfidence(v float32) *AdmissionFormUpdateOne {
	_u.mutation.ResetOcrConfidence()
	_u.mutation.SetOcrConfidence(v)
	return _u
}

// SetNillableOcrConfidence sets the "ocr_confidence" field if the given value is not nil.
func (_u *AdmissionFormUpdateOne) SetNillableOcrConfidence(v *float32) *AdmissionFormUpdateOne {
	if v != nil {
		_u.SetOcrConfidence(*v)
	}
	return _u
}

// AddOcrConfidence adds value to the "ocr_confidence" field.
func (_u *AdmissionFormUpdateOne) AddOcrConfidence(v float32) *AdmissionFormUpdateOne {
	_u.mutation.AddOcrConfidence(v)
	return _u
}

// ClearOcrConfidence clears the value of the "ocr_confidence" field.
func (_u *AdmissionFormUpdateOne) ClearOcrConfidence() *AdmissionFormUpdateOne {
	_u.mutation.ClearOcrConfidence()
	return _u
}

// SetNeedsReview sets the "needs_review" field.
func (_u *AdmissionFormUpdateOne) SetNeedsReview(v bool) *AdmissionFormUpdateOne {
	_u.mutation.SetNeedsReview(v)
	return _u
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (_u *AdmissionFormUpdateOne) SetNillableNeedsReview(v *bool) *AdmissionFormUpdateOne {
	if v != nil {
		_u.SetNeedsReview(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *AdmissionFormUpdateOne) SetErrorMessage(v string) *AdmissionFormUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *AdmissionFormUpdateOne) SetNillableErrorMessage(v *string) *AdmissionFormUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *AdmissionFormUpdateOne) ClearErrorMessage() *AdmissionFormUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetVerifiedAt sets the "verified_at" field.
func (_u *AdmissionFormUpdateOne) SetVerifiedAt(v time.Time) *AdmissionFormUpdateOne {
	_u.mutation.SetVerifiedAt(v)
	return _u
}

// SetNillableVerifiedAt sets the "verified_at" field if the given value is not nil.
func (_u *AdmissionFormUpdateOne) SetNillableVerifiedAt(v *time.Time) *AdmissionFormUpdateOne {
	if v != nil {
		_u.SetVerifiedAt(*v)
	}
	return _u
}

// ClearVerifiedAt clears the value of the "verified_at" field.
func (_u *AdmissionFormUpdateOne) ClearVerifiedAt() *AdmissionFormUpdateOne {
	_u.mutation.ClearVerifiedAt()
	return _u
}

// SetVerifiedBy sets the "verified_by" field.
func (_u *AdmissionFormUpdateOne) SetVerifiedBy(v string) *AdmissionFormUpdateOne {
	_u.mutation.SetVerifiedBy(v)
	return _u
}

// SetNillableVerifiedBy sets the "verified_by" field if the given value is not nil.
func (_u *AdmissionFormUpdateOne) SetNillableVerifiedBy(v *string) *AdmissionFormUpdateOne {
	if v != nil {
		_u.SetVerifiedBy(*v)
	}
	return _u
}

// ClearVerifiedBy clears the value of the "verified_by" field.
func (_u *AdmissionFormUpdateOne) ClearVerifiedBy() *AdmissionFormUpdateOne {
	_u.mutation.ClearVerifiedBy()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *AdmissionFormUpdateOne) SetCreatedAt(v time.Time) *AdmissionFormUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *AdmissionFormUpdateOne) SetNillableCreatedAt(v *time.Time) *AdmissionFormUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AdmissionFormUpdateOne) SetUpdatedAt(v time.Time) *AdmissionFormUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDocument sets the "document" edge to the StudentDocument entity.
func (_u *AdmissionFormUpdateOne) SetDocument(v *StudentDocument) *AdmissionFormUpdateOne {
	return _u.SetDocumentID(v.ID)
}

// SetProfile sets the "profile" edge to the StudentProfile entity.
func (_u *AdmissionFormUpdateOne) SetProfile(v *StudentProfile) *AdmissionFormUpdateOne {
	return _u.SetProfileID(v.ID)
}

// Mutation returns the AdmissionFormMutation object of the builder.
func (_u *AdmissionFormUpdateOne) Mutation() *AdmissionFormMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the StudentDocument entity.
func (_u *AdmissionFormUpdateOne) ClearDocument() *AdmissionFormUpdateOne {
	_u.mutation.ClearDocument()
	return _u
}

// ClearProfile clears the "profile" edge to the StudentProfile entity.
func (_u *AdmissionFormUpdateOne) ClearProfile() *AdmissionFormUpdateOne {
	_u.mutation.ClearProfile()
	return _u
}

// Where appends a list predicates to the AdmissionFormUpdate builder.
func (_u *AdmissionFormUpdateOne) Where(ps ...predicate.AdmissionForm) *AdmissionFormUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AdmissionFormUpdateOne) Select(field string, fields ...string) *AdmissionFormUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AdmissionForm entity.
func (_u *AdmissionFormUpdateOne) Save(ctx context.Context) (*AdmissionForm, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AdmissionFormUpdateOne) SaveX(ctx context.Context) *AdmissionForm {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AdmissionFormUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AdmissionFormUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AdmissionFormUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := admissionform.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AdmissionFormUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := admissionform.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AdmissionForm.status": %w`, err)}
		}
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AdmissionForm.document"`)
	}
	return nil
}

func (_u *AdmissionFormUpdateOne) sqlSave(ctx context.Context) (_node *AdmissionForm, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(admissionform.Table, admissionform.Columns, sqlgraph.NewFieldSpec(admissionform.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AdmissionForm.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, admissionform.FieldID)
		for _, f := range fields {
			if !admissionform.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != admissionform.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(admissionform.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.GetFields(); ok {
		_spec.SetField(admissionform.FieldFields, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AdditionalInfo(); ok {
		_spec.SetField(admissionform.FieldAdditionalInfo, field.TypeJSON, value)
	}
	if _u.mutation.AdditionalInfoCleared() {
		_spec.ClearField(admissionform.FieldAdditionalInfo, field.TypeJSON)
	}
	if value, ok := _u.mutation.StudentName(); ok {
		_spec.SetField(admissionform.FieldStudentName, field.TypeString, value)
	}
	if _u.mutation.StudentNameCleared() {
		_spec.ClearField(admissionform.FieldStudentName, field.TypeString)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(admissionform.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(admissionform.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.PhoneNumber(); ok {
		_spec.SetField(admissionform.FieldPhoneNumber, field.TypeString, value)
	}
	if _u.mutation.PhoneNumberCleared() {
		_spec.ClearField(admissionform.FieldPhoneNumber, field.TypeString)
	}
	if value, ok := _u.mutation.CourseApplied(); ok {
		_spec.SetField(admissionform.FieldCourseApplied, field.TypeString, value)
	}
	if _u.mutation.CourseAppliedCleared() {
		_spec.ClearField(admissionform.FieldCourseApplied, field.TypeString)
	}
	if value, ok := _u.mutation.OcrText(); ok {
		_spec.SetField(admissionform.FieldOcrText, field.TypeString, value)
	}
	if _u.mutation.OcrTextCleared() {
		_spec.ClearField(admissionform.FieldOcrText, field.TypeString)
	}
	if value, ok := _u.mutation.OcrConfidence(); ok {
		_spec.SetField(admissionform.FieldOcrConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedOcrConfidence(); ok {
		_spec.AddField(admissionform.FieldOcrConfidence, field.TypeFloat32, value)
	}
	if _u.mutation.OcrConfidenceCleared() {
		_spec.ClearField(admissionform.FieldOcrConfidence, field.TypeFloat32)
	}
	if value, ok := _u.mutation.NeedsReview(); ok {
		_spec.SetField(admissionform.FieldNeedsReview, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(admissionform.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(admissionform.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.VerifiedAt(); ok {
		_spec.SetField(admissionform.FieldVerifiedAt, field.TypeTime, value)
	}
	if _u.mutation.VerifiedAtCleared() {
		_spec.ClearField(admissionform.FieldVerifiedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.VerifiedBy(); ok {
		_spec.SetField(admissionform.FieldVerifiedBy, field.TypeString, value)
	}
	if _u.mutation.VerifiedByCleared() {
		_spec.ClearField(admissionform.FieldVerifiedBy, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(admissionform.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(admissionform.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.DocumentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   admissionform.DocumentTable,
			Columns: []string{admissionform.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(studentdocument.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   admissionform.DocumentTable,
			Columns: []string{admissionform.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(studentdocument.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ProfileCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   admissionform.ProfileTable,
			Columns: []string{admissionform.ProfileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(studentprofile.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProfileIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   admissionform.ProfileTable,
			Columns: []string{admissionform.ProfileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(studentprofile.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &AdmissionForm{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{admissionform.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
