// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/SmritaPandey/OCR-admission-forms/gen/ent/admissionform"
	"github.com/SmritaPandey/OCR-admission-forms/gen/ent/predicate"
	"github.com/SmritaPandey/OCR-admission-forms/gen/ent/studentdocument"
	"github.com/SmritaPandey/OCR-admission-forms/gen/ent/studentprofile"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAdmissionForm   = "AdmissionForm"
	TypeStudentDocument = "StudentDocument"
	TypeStudentProfile  = "StudentProfile"
)

// AdmissionFormMutation represents an operation that mutates the AdmissionForm nodes in the graph.
type AdmissionFormMutation struct {
	config
	op                Op
	typ               string
	id                *uuid.UUID
	status            *string
	fields            *map[string]string
	additional_info   *map[string]interface{}
	student_name      *string
	email             *string
	phone_number      *string
	course_applied    *string
	ocr_text          *string
	ocr_confidence    *float32
	addocr_confidence *float32
	needs_review      *bool
	error_message     *string
	verified_at       *time.Time
	verified_by       *string
	created_at        *time.Time
	updated_at        *time.Time
	clearedFields     map[string]struct{}
	document          *uuid.UUID
	cleareddocument   bool
	profile           *uuid.UUID
	clearedprofile    bool
	done              bool
	oldValue          func(context.Context) (*AdmissionForm, error)
	predicates        []predicate.AdmissionForm
}

var _ ent.Mutation = (*AdmissionFormMutation)(nil)

// admissionformOption allows management of the mutation configuration using functional options.
type admissionformOption func(*AdmissionFormMutation)

// newAdmissionFormMutation creates new mutation for the AdmissionForm entity.
func newAdmissionFormMutation(c config, op Op, opts ...admissionformOption) *AdmissionFormMutation {
	m := &AdmissionFormMutation{
		config:        c,
		op:            op,
		typ:           TypeAdmissionForm,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAdmissionFormID sets the ID field of the mutation.
func withAdmissionFormID(id uuid.UUID) admissionformOption {
	return func(m *AdmissionFormMutation) {
		var (
			err   error
			once  sync.Once
			value *AdmissionForm
		)
		m.oldValue = func(ctx context.Context) (*AdmissionForm, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AdmissionForm.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAdmissionForm sets the old AdmissionForm of the mutation.
func withAdmissionForm(node *AdmissionForm) admissionformOption {
	return func(m *AdmissionFormMutation) {
		m.oldValue = func(context.Context) (*AdmissionForm, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AdmissionFormMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AdmissionFormMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AdmissionForm entities.
func (m *AdmissionFormMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AdmissionFormMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AdmissionFormMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AdmissionForm.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDocumentID sets the "document_id" field.
func (m *AdmissionFormMutation) SetDocumentID(u uuid.UUID) {
	m.document = &u
}

// DocumentID returns the value of the "document_id" field in the mutation.
func (m *AdmissionFormMutation) DocumentID() (r uuid.UUID, exists bool) {
	v := m.document
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentID returns the old "document_id" field's value of the AdmissionForm entity.
// If the AdmissionForm object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdmissionFormMutation) OldDocumentID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentID: %w", err)
	}
	return oldValue.DocumentID, nil
}

// ResetDocumentID resets all changes to the "document_id" field.
func (m *AdmissionFormMutation) ResetDocumentID() {
	m.document = nil
}

// SetProfileID sets the "profile_id" field.
func (m *AdmissionFormMutation) SetProfileID(u uuid.UUID) {
	m.profile = &u
}

// ProfileID returns the value of the "profile_id" field in the mutation.
func (m *AdmissionFormMutation) ProfileID() (r uuid.UUID, exists bool) {
	v := m.profile
	if v == nil {
		return
	}
	return *v, true
}

// OldProfileID returns the old "profile_id" field's value of the AdmissionForm entity.
// If the AdmissionForm object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdmissionFormMutation) OldProfileID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProfileID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProfileID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProfileID: %w", err)
	}
	return oldValue.ProfileID, nil
}

// ClearProfileID clears the value of the "profile_id" field.
func (m *AdmissionFormMutation) ClearProfileID() {
	m.profile = nil
	m.clearedFields[admissionform.FieldProfileID] = struct{}{}
}

// ProfileIDCleared returns if the "profile_id" field was cleared in this mutation.
func (m *AdmissionFormMutation) ProfileIDCleared() bool {
	_, ok := m.clearedFields[admissionform.FieldProfileID]
	return ok
}

// ResetProfileID resets all changes to the "profile_id" field.
func (m *AdmissionFormMutation) ResetProfileID() {
	m.profile = nil
	delete(m.clearedFields, admissionform.FieldProfileID)
}

// SetStatus sets the "status" field.
func (m *AdmissionFormMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *AdmissionFormMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the AdmissionForm entity.
// If the AdmissionForm object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdmissionFormMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *AdmissionFormMutation) ResetStatus() {
	m.status = nil
}

// SetFields sets the "fields" field.
func (m *AdmissionFormMutation) SetFields(value map[string]string) {
	m.fields = &value
}

// GetFields returns the value of the "fields" field in the mutation.
func (m *AdmissionFormMutation) GetFields() (r map[string]string, exists bool) {
	v := m.fields
	if v == nil {
		return
	}
	return *v, true
}

// OldFields returns the old "fields" field's value of the AdmissionForm entity.
// If the AdmissionForm object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdmissionFormMutation) OldFields(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFields is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFields requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFields: %w", err)
	}
	return oldValue.Fields, nil
}

// ResetFields resets all changes to the "fields" field.
func (m *AdmissionFormMutation) ResetFields() {
	m.fields = nil
}

// SetAdditionalInfo sets the "additional_info" field.
func (m *AdmissionFormMutation) SetAdditionalInfo(value map[string]interface{}) {
	m.additional_info = &value
}

// AdditionalInfo returns the value of the "additional_info" field in the mutation.
func (m *AdmissionFormMutation) AdditionalInfo() (r map[string]interface{}, exists bool) {
	v := m.additional_info
	if v == nil {
		return
	}
	return *v, true
}

// OldAdditionalInfo returns the old "additional_info" field's value of the AdmissionForm entity.
// If the AdmissionForm object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdmissionFormMutation) OldAdditionalInfo(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAdditionalInfo is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAdditionalInfo requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAdditionalInfo: %w", err)
	}
	return oldValue.AdditionalInfo, nil
}

// ClearAdditionalInfo clears the value of the "additional_info" field.
func (m *AdmissionFormMutation) ClearAdditionalInfo() {
	m.additional_info = nil
	m.clearedFields[admissionform.FieldAdditionalInfo] = struct{}{}
}

// AdditionalInfoCleared returns if the "additional_info" field was cleared in this mutation.
func (m *AdmissionFormMutation) AdditionalInfoCleared() bool {
	_, ok := m.clearedFields[admissionform.FieldAdditionalInfo]
	return ok
}

// ResetAdditionalInfo resets all changes to the "additional_info" field.
func (m *AdmissionFormMutation) ResetAdditionalInfo() {
	m.additional_info = nil
	delete(m.clearedFields, admissionform.FieldAdditionalInfo)
}

// SetStudentName sets the "student_name" field.
func (m *AdmissionFormMutation) SetStudentName(s string) {
	m.student_name = &s
}

// StudentName returns the value of the "student_name" field in the mutation.
func (m *AdmissionFormMutation) StudentName() (r string, exists bool) {
	v := m.student_name
	if v == nil {
		return
	}
	return *v, true
}

// OldStudentName returns the old "student_name" field's value of the AdmissionForm entity.
// If the AdmissionForm object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdmissionFormMutation) OldStudentName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStudentName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStudentName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStudentName: %w", err)
	}
	return oldValue.StudentName, nil
}

// ClearStudentName clears the value of the "student_name" field.
func (m *AdmissionFormMutation) ClearStudentName() {
	m.student_name = nil
	m.clearedFields[admissionform.FieldStudentName] = struct{}{}
}

// StudentNameCleared returns if the "student_name" field was cleared in this mutation.
func (m *AdmissionFormMutation) StudentNameCleared() bool {
	_, ok := m.clearedFields[admissionform.FieldStudentName]
	return ok
}

// ResetStudentName resets all changes to the "student_name" field.
func (m *AdmissionFormMutation) ResetStudentName() {
	m.student_name = nil
	delete(m.clearedFields, admissionform.FieldStudentName)
}

// SetEmail sets the "email" field.
func (m *AdmissionFormMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *AdmissionFormMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the AdmissionForm entity.
// If the AdmissionForm object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdmissionFormMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ClearEmail clears the value of the "email" field.
func (m *AdmissionFormMutation) ClearEmail() {
	m.email = nil
	m.clearedFields[admissionform.FieldEmail] = struct{}{}
}

// EmailCleared returns if the "email" field was cleared in this mutation.
func (m *AdmissionFormMutation) EmailCleared() bool {
	_, ok := m.clearedFields[admissionform.FieldEmail]
	return ok
}

// ResetEmail resets all changes to the "email" field.
func (m *AdmissionFormMutation) ResetEmail() {
	m.email = nil
	delete(m.clearedFields, admissionform.FieldEmail)
}

// SetPhoneNumber sets the "phone_number" field.
func (m *AdmissionFormMutation) SetPhoneNumber(s string) {
	m.phone_number = &s
}

// PhoneNumber returns the value of the "phone_number" field in the mutation.
func (m *AdmissionFormMutation) PhoneNumber() (r string, exists bool) {
	v := m.phone_number
	if v == nil {
		return
	}
	return *v, true
}

// OldPhoneNumber returns the old "phone_number" field's value of the AdmissionForm entity.
// If the AdmissionForm object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdmissionFormMutation) OldPhoneNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhoneNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhoneNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhoneNumber: %w", err)
	}
	return oldValue.PhoneNumber, nil
}

// ClearPhoneNumber clears the value of the "phone_number" field.
func (m *AdmissionFormMutation) ClearPhoneNumber() {
	m.phone_number = nil
	m.clearedFields[admissionform.FieldPhoneNumber] = struct{}{}
}

// PhoneNumberCleared returns if the "phone_number" field was cleared in this mutation.
func (m *AdmissionFormMutation) PhoneNumberCleared() bool {
	_, ok := m.clearedFields[admissionform.FieldPhoneNumber]
	return ok
}

// ResetPhoneNumber resets all changes to the "phone_number" field.
func (m *AdmissionFormMutation) ResetPhoneNumber() {
	m.phone_number = nil
	delete(m.clearedFields, admissionform.FieldPhoneNumber)
}

// SetCourseApplied sets the "course_applied" field.
func (m *AdmissionFormMutation) SetCourseApplied(s string) {
	m.course_applied = &s
}

// CourseApplied returns the value of the "course_applied" field in the mutation.
func (m *AdmissionFormMutation) CourseApplied() (r string, exists bool) {
	v := m.course_applied
	if v == nil {
		return
	}
	return *v, true
}

// OldCourseApplied returns the old "course_applied" field's value of the AdmissionForm entity.
// If the AdmissionForm object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdmissionFormMutation) OldCourseApplied(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCourseApplied is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCourseApplied requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCourseApplied: %w", err)
	}
	return oldValue.CourseApplied, nil
}

// ClearCourseApplied clears the value of the "course_applied" field.
func (m *AdmissionFormMutation) ClearCourseApplied() {
	m.course_applied = nil
	m.clearedFields[admissionform.FieldCourseApplied] = struct{}{}
}

// CourseAppliedCleared returns if the "course_applied" field was cleared in this mutation.
func (m *AdmissionFormMutation) CourseAppliedCleared() bool {
	_, ok := m.clearedFields[admissionform.FieldCourseApplied]
	return ok
}

// ResetCourseApplied resets all changes to the "course_applied" field.
func (m *AdmissionFormMutation) ResetCourseApplied() {
	m.course_applied = nil
	delete(m.clearedFields, admissionform.FieldCourseApplied)
}

// SetOcrText sets the "ocr_text" field.
func (m *AdmissionFormMutation) SetOcrText(s string) {
	m.ocr_text = &s
}

// OcrText returns the value of the "ocr_text" field in the mutation.
func (m *AdmissionFormMutation) OcrText() (r string, exists bool) {
	v := m.ocr_text
	if v == nil {
		return
	}
	return *v, true
}

// OldOcrText returns the old "ocr_text" field's value of the AdmissionForm entity.
// If the AdmissionForm object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdmissionFormMutation) OldOcrText(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOcrText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOcrText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOcrText: %w", err)
	}
	return oldValue.OcrText, nil
}

// ClearOcrText clears the value of the "ocr_text" field.
func (m *AdmissionFormMutation) ClearOcrText() {
	m.ocr_text = nil
	m.clearedFields[admissionform.FieldOcrText] = struct{}{}
}

// OcrTextCleared returns if the "ocr_text" field was cleared in this mutation.
func (m *AdmissionFormMutation) OcrTextCleared() bool {
	_, ok := m.clearedFields[admissionform.FieldOcrText]
	return ok
}

// ResetOcrText resets all changes to the "ocr_text" field.
func (m *AdmissionFormMutation) ResetOcrText() {
	m.ocr_text = nil
	delete(m.clearedFields, admissionform.FieldOcrText)
}

// SetOcrConfidence sets the "ocr_confidence" field.
func (m *AdmissionFormMutation) SetOcrConfidence(f float32) {
	m.ocr_confidence = &f
	m.addocr_confidence = nil
}

// OcrConfidence returns the value of the "ocr_confidence" field in the mutation.
func (m *AdmissionFormMutation) OcrConfidence() (r float32, exists bool) {
	v := m.ocr_confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldOcrConfidence returns the old "ocr_confidence" field's value of the AdmissionForm entity.
// If the AdmissionForm object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdmissionFormMutation) OldOcrConfidence(ctx context.Context) (v *float32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOcrConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOcrConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOcrConfidence: %w", err)
	}
	return oldValue.OcrConfidence, nil
}

// AddOcrConfidence adds f to the "ocr_confidence" field.
func (m *AdmissionFormMutation) AddOcrConfidence(f float32) {
	if m.addocr_confidence != nil {
		*m.addocr_confidence += f
	} else {
		m.addocr_confidence = &f
	}
}

// AddedOcrConfidence returns the value that was added to the "ocr_confidence" field in this mutation.
func (m *AdmissionFormMutation) AddedOcrConfidence() (r float32, exists bool) {
	v := m.addocr_confidence
	if v == nil {
		return
	}
	return *v, true
}

// ClearOcrConfidence clears the value of the "ocr_confidence" field.
func (m *AdmissionFormMutation) ClearOcrConfidence() {
	m.ocr_confidence = nil
	m.addocr_confidence = nil
	m.clearedFields[admissionform.FieldOcrConfidence] = struct{}{}
}

// OcrConfidenceCleared returns if the "ocr_confidence" field was cleared in this mutation.
func (m *AdmissionFormMutation) OcrConfidenceCleared() bool {
	_, ok := m.clearedFields[admissionform.FieldOcrConfidence]
	return ok
}

// ResetOcrConfidence resets all changes to the "ocr_confidence" field.
func (m *AdmissionFormMutation) ResetOcrConfidence() {
	m.ocr_confidence = nil
	m.addocr_confidence = nil
	delete(m.clearedFields, admissionform.FieldOcrConfidence)
}

// SetNeedsReview sets the "needs_review" field.
func (m *AdmissionFormMutation) SetNeedsReview(b bool) {
	m.needs_review = &b
}

// NeedsReview returns the value of the "needs_review" field in the mutation.
func (m *AdmissionFormMutation) NeedsReview() (r bool, exists bool) {
	v := m.needs_review
	if v == nil {
		return
	}
	return *v, true
}

// OldNeedsReview returns the old "needs_review" field's value of the AdmissionForm entity.
// If the AdmissionForm object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdmissionFormMutation) OldNeedsReview(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNeedsReview is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNeedsReview requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNeedsReview: %w", err)
	}
	return oldValue.NeedsReview, nil
}

// ResetNeedsReview resets all changes to the "needs_review" field.
func (m *AdmissionFormMutation) ResetNeedsReview() {
	m.needs_review = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *AdmissionFormMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *AdmissionFormMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the AdmissionForm entity.
// If the AdmissionForm object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdmissionFormMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *AdmissionFormMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[admissionform.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *AdmissionFormMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[admissionform.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *AdmissionFormMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, admissionform.FieldErrorMessage)
}

// SetVerifiedAt sets the "verified_at" field.
func (m *AdmissionFormMutation) SetVerifiedAt(t time.Time) {
	m.verified_at = &t
}

// VerifiedAt returns the value of the "verified_at" field in the mutation.
func (m *AdmissionFormMutation) VerifiedAt() (r time.Time, exists bool) {
	v := m.verified_at
	if v == nil {
		return
	}
	return *v, true
}

// OldVerifiedAt returns the old "verified_at" field's value of the AdmissionForm entity.
// If the AdmissionForm object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdmissionFormMutation) OldVerifiedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVerifiedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVerifiedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVerifiedAt: %w", err)
	}
	return oldValue.VerifiedAt, nil
}

// ClearVerifiedAt clears the value of the "verified_at" field.
func (m *AdmissionFormMutation) ClearVerifiedAt() {
	m.verified_at = nil
	m.clearedFields[admissionform.FieldVerifiedAt] = struct{}{}
}

// VerifiedAtCleared returns if the "verified_at" field was cleared in this mutation.
func (m *AdmissionFormMutation) VerifiedAtCleared() bool {
	_, ok := m.clearedFields[admissionform.FieldVerifiedAt]
	return ok
}

// ResetVerifiedAt resets all changes to the "verified_at" field.
func (m *AdmissionFormMutation) ResetVerifiedAt() {
	m.verified_at = nil
	delete(m.clearedFields, admissionform.FieldVerifiedAt)
}

// SetVerifiedBy sets the "verified_by" field.
func (m *AdmissionFormMutation) SetVerifiedBy(s string) {
	m.verified_by = &s
}

// VerifiedBy returns the value of the "verified_by" field in the mutation.
func (m *AdmissionFormMutation) VerifiedBy() (r string, exists bool) {
	v := m.verified_by
	if v == nil {
		return
	}
	return *v, true
}

// OldVerifiedBy returns the old "verified_by" field's value of the AdmissionForm entity.
// If the AdmissionForm object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdmissionFormMutation) OldVerifiedBy(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVerifiedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVerifiedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVerifiedBy: %w", err)
	}
	return oldValue.VerifiedBy, nil
}

// ClearVerifiedBy clears the value of the "verified_by" field.
func (m *AdmissionFormMutation) ClearVerifiedBy() {
	m.verified_by = nil
	m.clearedFields[admissionform.FieldVerifiedBy] = struct{}{}
}

// VerifiedByCleared returns if the "verified_by" field was cleared in this mutation.
func (m *AdmissionFormMutation) VerifiedByCleared() bool {
	_, ok := m.clearedFields[admissionform.FieldVerifiedBy]
	return ok
}

// ResetVerifiedBy resets all changes to the "verified_by" field.
func (m *AdmissionFormMutation) ResetVerifiedBy() {
	m.verified_by = nil
	delete(m.clearedFields, admissionform.FieldVerifiedBy)
}

// SetCreatedAt sets the "created_at" field.
func (m *AdmissionFormMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AdmissionFormMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AdmissionForm entity.
// If the AdmissionForm object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdmissionFormMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AdmissionFormMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AdmissionFormMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AdmissionFormMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the AdmissionForm entity.
// If the AdmissionForm object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdmissionFormMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *AdmissionFormMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearDocument clears the "document" edge to the StudentDocument entity.
func (m *AdmissionFormMutation) ClearDocument() {
	m.cleareddocument = true
	m.clearedFields[admissionform.FieldDocumentID] = struct{}{}
}

// DocumentCleared reports if the "document" edge to the StudentDocument entity was cleared.
func (m *AdmissionFormMutation) DocumentCleared() bool {
	return m.cleareddocument
}

// DocumentIDs returns the "document" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DocumentID instead. It exists only for internal usage by the builders.
func (m *AdmissionFormMutation) DocumentIDs() (ids []uuid.UUID) {
	if id := m.document; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDocument resets all changes to the "document" edge.
func (m *AdmissionFormMutation) ResetDocument() {
	m.document = nil
	m.cleareddocument = false
}

// ClearProfile clears the "profile" edge to the StudentProfile entity.
func (m *AdmissionFormMutation) ClearProfile() {
	m.clearedprofile = true
	m.clearedFields[admissionform.FieldProfileID] = struct{}{}
}

// ProfileCleared reports if the "profile" edge to the StudentProfile entity was cleared.
func (m *AdmissionFormMutation) ProfileCleared() bool {
	return m.ProfileIDCleared() || m.clearedprofile
}

// ProfileIDs returns the "profile" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProfileID instead. It exists only for internal usage by the builders.
func (m *AdmissionFormMutation) ProfileIDs() (ids []uuid.UUID) {
	if id := m.profile; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProfile resets all changes to the "profile" edge.
func (m *AdmissionFormMutation) ResetProfile() {
	m.profile = nil
	m.clearedprofile = false
}

// Where appends a list predicates to the AdmissionFormMutation builder.
func (m *AdmissionFormMutation) Where(ps ...predicate.AdmissionForm) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AdmissionFormMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AdmissionFormMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AdmissionForm, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AdmissionFormMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AdmissionFormMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AdmissionForm).
func (m *AdmissionFormMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AdmissionFormMutation) Fields() []string {
	fields := make([]string, 0, 17)
	if m.document != nil {
		fields = append(fields, admissionform.FieldDocumentID)
	}
	if m.profile != nil {
		fields = append(fields, admissionform.FieldProfileID)
	}
	if m.status != nil {
		fields = append(fields, admissionform.FieldStatus)
	}
	if m.fields != nil {
		fields = append(fields, admissionform.FieldFields)
	}
	if m.additional_info != nil {
		fields = append(fields, admissionform.FieldAdditionalInfo)
	}
	if m.student_name != nil {
		fields = append(fields, admissionform.FieldStudentName)
	}
	if m.email != nil {
		fields = append(fields, admissionform.FieldEmail)
	}
	if m.phone_number != nil {
		fields = append(fields, admissionform.FieldPhoneNumber)
	}
	if m.course_applied != nil {
		fields = append(fields, admissionform.FieldCourseApplied)
	}
	if m.ocr_text != nil {
		fields = append(fields, admissionform.FieldOcrText)
	}
	if m.ocr_confidence != nil {
		fields = append(fields, admissionform.FieldOcrConfidence)
	}
	if m.needs_review != nil {
		fields = append(fields, admissionform.FieldNeedsReview)
	}
	if m.error_message != nil {
		fields = append(fields, admissionform.FieldErrorMessage)
	}
	if m.verified_at != nil {
		fields = append(fields, admissionform.FieldVerifiedAt)
	}
	if m.verified_by != nil {
		fields = append(fields, admissionform.FieldVerifiedBy)
	}
	if m.created_at != nil {
		fields = append(fields, admissionform.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, admissionform.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AdmissionFormMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case admissionform.FieldDocumentID:
		return m.DocumentID()
	case admissionform.FieldProfileID:
		return m.ProfileID()
	case admissionform.FieldStatus:
		return m.Status()
	case admissionform.FieldFields:
		return m.GetFields()
	case admissionform.FieldAdditionalInfo:
		return m.AdditionalInfo()
	case admissionform.FieldStudentName:
		return m.StudentName()
	case admissionform.FieldEmail:
		return m.Email()
	case admissionform.FieldPhoneNumber:
		return m.PhoneNumber()
	case admissionform.FieldCourseApplied:
		return m.CourseApplied()
	case admissionform.FieldOcrText:
		return m.OcrText()
	case admissionform.FieldOcrConfidence:
		return m.OcrConfidence()
	case admissionform.FieldNeedsReview:
		return m.NeedsReview()
	case admissionform.FieldErrorMessage:
		return m.ErrorMessage()
	case admissionform.FieldVerifiedAt:
		return m.VerifiedAt()
	case admissionform.FieldVerifiedBy:
		return m.VerifiedBy()
	case admissionform.FieldCreatedAt:
		return m.CreatedAt()
	case admissionform.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AdmissionFormMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case admissionform.FieldDocumentID:
		return m.OldDocumentID(ctx)
	case admissionform.FieldProfileID:
		return m.OldProfileID(ctx)
	case admissionform.FieldStatus:
		return m.OldStatus(ctx)
	case admissionform.FieldFields:
		return m.OldFields(ctx)
	case admissionform.FieldAdditionalInfo:
		return m.OldAdditionalInfo(ctx)
	case admissionform.FieldStudentName:
		return m.OldStudentName(ctx)
	case admissionform.FieldEmail:
		return m.OldEmail(ctx)
	case admissionform.FieldPhoneNumber:
		return m.OldPhoneNumber(ctx)
	case admissionform.FieldCourseApplied:
		return m.OldCourseApplied(ctx)
	case admissionform.FieldOcrText:
		return m.OldOcrText(ctx)
	case admissionform.FieldOcrConfidence:
		return m.OldOcrConfidence(ctx)
	case admissionform.FieldNeedsReview:
		return m.OldNeedsReview(ctx)
	case admissionform.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case admissionform.FieldVerifiedAt:
		return m.OldVerifiedAt(ctx)
	case admissionform.FieldVerifiedBy:
		return m.OldVerifiedBy(ctx)
	case admissionform.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case admissionform.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AdmissionForm field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AdmissionFormMutation) SetField(name string, value ent.Value) error {
	switch name {
	case admissionform.FieldDocumentID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentID(v)
		return nil
	case admissionform.FieldProfileID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProfileID(v)
		return nil
	case admissionform.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case admissionform.FieldFields:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFields(v)
		return nil
	case admissionform.FieldAdditionalInfo:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAdditionalInfo(v)
		return nil
	case admissionform.FieldStudentName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStudentName(v)
		return nil
	case admissionform.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case admissionform.FieldPhoneNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhoneNumber(v)
		return nil
	case admissionform.FieldCourseApplied:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCourseApplied(v)
		return nil
	case admissionform.FieldOcrText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOcrText(v)
		return nil
	case admissionform.FieldOcrConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOcrConfidence(v)
		return nil
	case admissionform.FieldNeedsReview:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNeedsReview(v)
		return nil
	case admissionform.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case admissionform.FieldVerifiedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVerifiedAt(v)
		return nil
	case admissionform.FieldVerifiedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVerifiedBy(v)
		return nil
	case admissionform.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case admissionform.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AdmissionForm field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AdmissionFormMutation) AddedFields() []string {
	var fields []string
	if m.addocr_confidence != nil {
		fields = append(fields, admissionform.FieldOcrConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AdmissionFormMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case admissionform.FieldOcrConfidence:
		return m.AddedOcrConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AdmissionFormMutation) AddField(name string, value ent.Value) error {
	switch name {
	case admissionform.FieldOcrConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOcrConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown AdmissionForm numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AdmissionFormMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(admissionform.FieldProfileID) {
		fields = append(fields, admissionform.FieldProfileID)
	}
	if m.FieldCleared(admissionform.FieldAdditionalInfo) {
		fields = append(fields, admissionform.FieldAdditionalInfo)
	}
	if m.FieldCleared(admissionform.FieldStudentName) {
		fields = append(fields, admissionform.FieldStudentName)
	}
	if m.FieldCleared(admissionform.FieldEmail) {
		fields = append(fields, admissionform.FieldEmail)
	}
	if m.FieldCleared(admissionform.FieldPhoneNumber) {
		fields = append(fields, admissionform.FieldPhoneNumber)
	}
	if m.FieldCleared(admissionform.FieldCourseApplied) {
		fields = append(fields, admissionform.FieldCourseApplied)
	}
	if m.FieldCleared(admissionform.FieldOcrText) {
		fields = append(fields, admissionform.FieldOcrText)
	}
	if m.FieldCleared(admissionform.FieldOcrConfidence) {
		fields = append(fields, admissionform.FieldOcrConfidence)
	}
	if m.FieldCleared(admissionform.FieldErrorMessage) {
		fields = append(fields, admissionform.FieldErrorMessage)
	}
	if m.FieldCleared(admissionform.FieldVerifiedAt) {
		fields = append(fields, admissionform.FieldVerifiedAt)
	}
	if m.FieldCleared(admissionform.FieldVerifiedBy) {
		fields = append(fields, admissionform.FieldVerifiedBy)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AdmissionFormMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AdmissionFormMutation) ClearField(name string) error {
	switch name {
	case admissionform.FieldProfileID:
		m.ClearProfileID()
		return nil
	case admissionform.FieldAdditionalInfo:
		m.ClearAdditionalInfo()
		return nil
	case admissionform.FieldStudentName:
		m.ClearStudentName()
		return nil
	case admissionform.FieldEmail:
		m.ClearEmail()
		return nil
	case admissionform.FieldPhoneNumber:
		m.ClearPhoneNumber()
		return nil
	case admissionform.FieldCourseApplied:
		m.ClearCourseApplied()
		return nil
	case admissionform.FieldOcrText:
		m.ClearOcrText()
		return nil
	case admissionform.FieldOcrConfidence:
		m.ClearOcrConfidence()
		return nil
	case admissionform.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case admissionform.FieldVerifiedAt:
		m.ClearVerifiedAt()
		return nil
	case admissionform.FieldVerifiedBy:
		m.ClearVerifiedBy()
		return nil
	}
	return fmt.Errorf("unknown AdmissionForm nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AdmissionFormMutation) ResetField(name string) error {
	switch name {
	case admissionform.FieldDocumentID:
		m.ResetDocumentID()
		return nil
	case admissionform.FieldProfileID:
		m.ResetProfileID()
		return nil
	case admissionform.FieldStatus:
		m.ResetStatus()
		return nil
	case admissionform.FieldFields:
		m.ResetFields()
		return nil
	case admissionform.FieldAdditionalInfo:
		m.ResetAdditionalInfo()
		return nil
	case admissionform.FieldStudentName:
		m.ResetStudentName()
		return nil
	case admissionform.FieldEmail:
		m.ResetEmail()
		return nil
	case admissionform.FieldPhoneNumber:
		m.ResetPhoneNumber()
		return nil
	case admissionform.FieldCourseApplied:
		m.ResetCourseApplied()
		return nil
	case admissionform.FieldOcrText:
		m.ResetOcrText()
		return nil
	case admissionform.FieldOcrConfidence:
		m.ResetOcrConfidence()
		return nil
	case admissionform.FieldNeedsReview:
		m.ResetNeedsReview()
		return nil
	case admissionform.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case admissionform.FieldVerifiedAt:
		m.ResetVerifiedAt()
		return nil
	case admissionform.FieldVerifiedBy:
		m.ResetVerifiedBy()
		return nil
	case admissionform.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case admissionform.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown AdmissionForm field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AdmissionFormMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.document != nil {
		edges = append(edges, admissionform.EdgeDocument)
	}
	if m.profile != nil {
		edges = append(edges, admissionform.EdgeProfile)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AdmissionFormMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case admissionform.EdgeDocument:
		if id := m.document; id != nil {
			return []ent.Value{*id}
		}
	case admissionform.EdgeProfile:
		if id := m.profile; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AdmissionFormMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AdmissionFormMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AdmissionFormMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.cleareddocument {
		edges = append(edges, admissionform.EdgeDocument)
	}
	if m.clearedprofile {
		edges = append(edges, admissionform.EdgeProfile)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AdmissionFormMutation) EdgeCleared(name string) bool {
	switch name {
	case admissionform.EdgeDocument:
		return m.cleareddocument
	case admissionform.EdgeProfile:
		return m.clearedprofile
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AdmissionFormMutation) ClearEdge(name string) error {
	switch name {
	case admissionform.EdgeDocument:
		m.ClearDocument()
		return nil
	case admissionform.EdgeProfile:
		m.ClearProfile()
		return nil
	}
	return fmt.Errorf("unknown AdmissionForm unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AdmissionFormMutation) ResetEdge(name string) error {
	switch name {
	case admissionform.EdgeDocument:
		m.ResetDocument()
		return nil
	case admissionform.EdgeProfile:
		m.ResetProfile()
		return nil
	}
	return fmt.Errorf("unknown AdmissionForm edge %s", name)
}

// StudentDocumentMutation represents an operation that mutates the StudentDocument nodes in the graph.
type StudentDocumentMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	source_path   *string
	content_hash  *[]byte
	filename      *string
	file_ext      *string
	file_size     *int
	addfile_size  *int
	uploaded_at   *time.Time
	clearedFields map[string]struct{}
	forms         map[uuid.UUID]struct{}
	removedforms  map[uuid.UUID]struct{}
	clearedforms  bool
	done          bool
	oldValue      func(context.Context) (*StudentDocument, error)
	predicates    []predicate.StudentDocument
}

var _ ent.Mutation = (*StudentDocumentMutation)(nil)

// studentdocumentOption allows management of the mutation configuration using functional options.
type studentdocumentOption func(*StudentDocumentMutation)

// newStudentDocumentMutation creates new mutation for the StudentDocument entity.
func newStudentDocumentMutation(c config, op Op, opts ...studentdocumentOption) *StudentDocumentMutation {
	m := &StudentDocumentMutation{
		config:        c,
		op:            op,
		typ:           TypeStudentDocument,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStudentDocumentID sets the ID field of the mutation.
func withStudentDocumentID(id uuid.UUID) studentdocumentOption {
	return func(m *StudentDocumentMutation) {
		var (
			err   error
			once  sync.Once
			value *StudentDocument
		)
		m.oldValue = func(ctx context.Context) (*StudentDocument, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().StudentDocument.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStudentDocument sets the old StudentDocument of the mutation.
func withStudentDocument(node *StudentDocument) studentdocumentOption {
	return func(m *StudentDocumentMutation) {
		m.oldValue = func(context.Context) (*StudentDocument, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StudentDocumentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StudentDocumentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of StudentDocument entities.
func (m *StudentDocumentMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StudentDocumentMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StudentDocumentMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().StudentDocument.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSourcePath sets the "source_path" field.
func (m *StudentDocumentMutation) SetSourcePath(s string) {
	m.source_path = &s
}

// SourcePath returns the value of the "source_path" field in the mutation.
func (m *StudentDocumentMutation) SourcePath() (r string, exists bool) {
	v := m.source_path
	if v == nil {
		return
	}
	return *v, true
}

// OldSourcePath returns the old "source_path" field's value of the StudentDocument entity.
// If the StudentDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudentDocumentMutation) OldSourcePath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourcePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourcePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourcePath: %w", err)
	}
	return oldValue.SourcePath, nil
}

// ResetSourcePath resets all changes to the "source_path" field.
func (m *StudentDocumentMutation) ResetSourcePath() {
	m.source_path = nil
}

// SetContentHash sets the "content_hash" field.
func (m *StudentDocumentMutation) SetContentHash(b []byte) {
	m.content_hash = &b
}

// ContentHash returns the value of the "content_hash" field in the mutation.
func (m *StudentDocumentMutation) ContentHash() (r []byte, exists bool) {
	v := m.content_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldContentHash returns the old "content_hash" field's value of the StudentDocument entity.
// If the StudentDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudentDocumentMutation) OldContentHash(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentHash: %w", err)
	}
	return oldValue.ContentHash, nil
}

// ResetContentHash resets all changes to the "content_hash" field.
func (m *StudentDocumentMutation) ResetContentHash() {
	m.content_hash = nil
}

// SetFilename sets the "filename" field.
func (m *StudentDocumentMutation) SetFilename(s string) {
	m.filename = &s
}

// Filename returns the value of the "filename" field in the mutation.
func (m *StudentDocumentMutation) Filename() (r string, exists bool) {
	v := m.filename
	if v == nil {
		return
	}
	return *v, true
}

// OldFilename returns the old "filename" field's value of the StudentDocument entity.
// If the StudentDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudentDocumentMutation) OldFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilename: %w", err)
	}
	return oldValue.Filename, nil
}

// ResetFilename resets all changes to the "filename" field.
func (m *StudentDocumentMutation) ResetFilename() {
	m.filename = nil
}

// SetFileExt sets the "file_ext" field.
func (m *StudentDocumentMutation) SetFileExt(s string) {
	m.file_ext = &s
}

// FileExt returns the value of the "file_ext" field in the mutation.
func (m *StudentDocumentMutation) FileExt() (r string, exists bool) {
	v := m.file_ext
	if v == nil {
		return
	}
	return *v, true
}

// OldFileExt returns the old "file_ext" field's value of the StudentDocument entity.
// If the StudentDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudentDocumentMutation) OldFileExt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileExt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileExt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileExt: %w", err)
	}
	return oldValue.FileExt, nil
}

// ResetFileExt resets all changes to the "file_ext" field.
func (m *StudentDocumentMutation) ResetFileExt() {
	m.file_ext = nil
}

// SetFileSize sets the "file_size" field.
func (m *StudentDocumentMutation) SetFileSize(i int) {
	m.file_size = &i
	m.addfile_size = nil
}

// FileSize returns the value of the "file_size" field in the mutation.
func (m *StudentDocumentMutation) FileSize() (r int, exists bool) {
	v := m.file_size
	if v == nil {
		return
	}
	return *v, true
}

// OldFileSize returns the old "file_size" field's value of the StudentDocument entity.
// If the StudentDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudentDocumentMutation) OldFileSize(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileSize is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileSize requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileSize: %w", err)
	}
	return oldValue.FileSize, nil
}

// AddFileSize adds i to the "file_size" field.
func (m *StudentDocumentMutation) AddFileSize(i int) {
	if m.addfile_size != nil {
		*m.addfile_size += i
	} else {
		m.addfile_size = &i
	}
}

// AddedFileSize returns the value that was added to the "file_size" field in this mutation.
func (m *StudentDocumentMutation) AddedFileSize() (r int, exists bool) {
	v := m.addfile_size
	if v == nil {
		return
	}
	return *v, true
}

// ResetFileSize resets all changes to the "file_size" field.
func (m *StudentDocumentMutation) ResetFileSize() {
	m.file_size = nil
	m.addfile_size = nil
}

// SetUploadedAt sets the "uploaded_at" field.
func (m *StudentDocumentMutation) SetUploadedAt(t time.Time) {
	m.uploaded_at = &t
}

// UploadedAt returns the value of the "uploaded_at" field in the mutation.
func (m *StudentDocumentMutation) UploadedAt() (r time.Time, exists bool) {
	v := m.uploaded_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUploadedAt returns the old "uploaded_at" field's value of the StudentDocument entity.
// If the StudentDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudentDocumentMutation) OldUploadedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUploadedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUploadedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUploadedAt: %w", err)
	}
	return oldValue.UploadedAt, nil
}

// ResetUploadedAt resets all changes to the "uploaded_at" field.
func (m *StudentDocumentMutation) ResetUploadedAt() {
	m.uploaded_at = nil
}

// AddFormIDs adds the "forms" edge to the AdmissionForm entity by ids.
func (m *StudentDocumentMutation) AddFormIDs(ids ...uuid.UUID) {
	if m.forms == nil {
		m.forms = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.forms[ids[i]] = struct{}{}
	}
}

// ClearForms clears the "forms" edge to the AdmissionForm entity.
func (m *StudentDocumentMutation) ClearForms() {
	m.clearedforms = true
}

// FormsCleared reports if the "forms" edge to the AdmissionForm entity was cleared.
func (m *StudentDocumentMutation) FormsCleared() bool {
	return m.clearedforms
}

// RemoveFormIDs removes the "forms" edge to the AdmissionForm entity by IDs.
func (m *StudentDocumentMutation) RemoveFormIDs(ids ...uuid.UUID) {
	if m.removedforms == nil {
		m.removedforms = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.forms, ids[i])
		m.removedforms[ids[i]] = struct{}{}
	}
}

// RemovedForms returns the removed IDs of the "forms" edge to the AdmissionForm entity.
func (m *StudentDocumentMutation) RemovedFormsIDs() (ids []uuid.UUID) {
	for id := range m.removedforms {
		ids = append(ids, id)
	}
	return
}

// FormsIDs returns the "forms" edge IDs in the mutation.
func (m *StudentDocumentMutation) FormsIDs() (ids []uuid.UUID) {
	for id := range m.forms {
		ids = append(ids, id)
	}
	return
}

// ResetForms resets all changes to the "forms" edge.
func (m *StudentDocumentMutation) ResetForms() {
	m.forms = nil
	m.clearedforms = false
	m.removedforms = nil
}

// Where appends a list predicates to the StudentDocumentMutation builder.
func (m *StudentDocumentMutation) Where(ps ...predicate.StudentDocument) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StudentDocumentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StudentDocumentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.StudentDocument, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StudentDocumentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StudentDocumentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (StudentDocument).
func (m *StudentDocumentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StudentDocumentMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.source_path != nil {
		fields = append(fields, studentdocument.FieldSourcePath)
	}
	if m.content_hash != nil {
		fields = append(fields, studentdocument.FieldContentHash)
	}
	if m.filename != nil {
		fields = append(fields, studentdocument.FieldFilename)
	}
	if m.file_ext != nil {
		fields = append(fields, studentdocument.FieldFileExt)
	}
	if m.file_size != nil {
		fields = append(fields, studentdocument.FieldFileSize)
	}
	if m.uploaded_at != nil {
		fields = append(fields, studentdocument.FieldUploadedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StudentDocumentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case studentdocument.FieldSourcePath:
		return m.SourcePath()
	case studentdocument.FieldContentHash:
		return m.ContentHash()
	case studentdocument.FieldFilename:
		return m.Filename()
	case studentdocument.FieldFileExt:
		return m.FileExt()
	case studentdocument.FieldFileSize:
		return m.FileSize()
	case studentdocument.FieldUploadedAt:
		return m.UploadedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StudentDocumentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case studentdocument.FieldSourcePath:
		return m.OldSourcePath(ctx)
	case studentdocument.FieldContentHash:
		return m.OldContentHash(ctx)
	case studentdocument.FieldFilename:
		return m.OldFilename(ctx)
	case studentdocument.FieldFileExt:
		return m.OldFileExt(ctx)
	case studentdocument.FieldFileSize:
		return m.OldFileSize(ctx)
	case studentdocument.FieldUploadedAt:
		return m.OldUploadedAt(ctx)
	}
	return nil, fmt.Errorf("unknown StudentDocument field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StudentDocumentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case studentdocument.FieldSourcePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourcePath(v)
		return nil
	case studentdocument.FieldContentHash:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentHash(v)
		return nil
	case studentdocument.FieldFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilename(v)
		return nil
	case studentdocument.FieldFileExt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileExt(v)
		return nil
	case studentdocument.FieldFileSize:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileSize(v)
		return nil
	case studentdocument.FieldUploadedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUploadedAt(v)
		return nil
	}
	return fmt.Errorf("unknown StudentDocument field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StudentDocumentMutation) AddedFields() []string {
	var fields []string
	if m.addfile_size != nil {
		fields = append(fields, studentdocument.FieldFileSize)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StudentDocumentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case studentdocument.FieldFileSize:
		return m.AddedFileSize()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StudentDocumentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case studentdocument.FieldFileSize:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFileSize(v)
		return nil
	}
	return fmt.Errorf("unknown StudentDocument numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StudentDocumentMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StudentDocumentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StudentDocumentMutation) ClearField(name string) error {
	return fmt.Errorf("unknown StudentDocument nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StudentDocumentMutation) ResetField(name string) error {
	switch name {
	case studentdocument.FieldSourcePath:
		m.ResetSourcePath()
		return nil
	case studentdocument.FieldContentHash:
		m.ResetContentHash()
		return nil
	case studentdocument.FieldFilename:
		m.ResetFilename()
		return nil
	case studentdocument.FieldFileExt:
		m.ResetFileExt()
		return nil
	case studentdocument.FieldFileSize:
		m.ResetFileSize()
		return nil
	case studentdocument.FieldUploadedAt:
		m.ResetUploadedAt()
		return nil
	}
	return fmt.Errorf("unknown StudentDocument field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StudentDocumentMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.forms != nil {
		edges = append(edges, studentdocument.EdgeForms)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StudentDocumentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case studentdocument.EdgeForms:
		ids := make([]ent.Value, 0, len(m.forms))
		for id := range m.forms {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StudentDocumentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedforms != nil {
		edges = append(edges, studentdocument.EdgeForms)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StudentDocumentMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case studentdocument.EdgeForms:
		ids := make([]ent.Value, 0, len(m.removedforms))
		for id := range m.removedforms {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StudentDocumentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedforms {
		edges = append(edges, studentdocument.EdgeForms)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StudentDocumentMutation) EdgeCleared(name string) bool {
	switch name {
	case studentdocument.EdgeForms:
		return m.clearedforms
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StudentDocumentMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown StudentDocument unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StudentDocumentMutation) ResetEdge(name string) error {
	switch name {
	case studentdocument.EdgeForms:
		m.ResetForms()
		return nil
	}
	return fmt.Errorf("unknown StudentDocument edge %s", name)
}

// StudentProfileMutation represents an operation that mutates the StudentProfile nodes in the graph.
type StudentProfileMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	student_name   *string
	email          *string
	phone_number   *string
	course_applied *string
	created_at     *time.Time
	updated_at     *time.Time
	clearedFields  map[string]struct{}
	forms          map[uuid.UUID]struct{}
	removedforms   map[uuid.UUID]struct{}
	clearedforms   bool
	done           bool
	oldValue       func(context.Context) (*StudentProfile, error)
	predicates     []predicate.StudentProfile
}

var _ ent.Mutation = (*StudentProfileMutation)(nil)

// studentprofileOption allows management of the mutation configuration using functional options.
type studentprofileOption func(*StudentProfileMutation)

// newStudentProfileMutation creates new mutation for the StudentProfile entity.
func newStudentProfileMutation(c config, op Op, opts ...studentprofileOption) *StudentProfileMutation {
	m := &StudentProfileMutation{
		config:        c,
		op:            op,
		typ:           TypeStudentProfile,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStudentProfileID sets the ID field of the mutation.
func withStudentProfileID(id uuid.UUID) studentprofileOption {
	return func(m *StudentProfileMutation) {
		var (
			err   error
			once  sync.Once
			value *StudentProfile
		)
		m.oldValue = func(ctx context.Context) (*StudentProfile, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().StudentProfile.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStudentProfile sets the old StudentProfile of the mutation.
func withStudentProfile(node *StudentProfile) studentprofileOption {
	return func(m *StudentProfileMutation) {
		m.oldValue = func(context.Context) (*StudentProfile, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StudentProfileMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StudentProfileMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of StudentProfile entities.
func (m *StudentProfileMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StudentProfileMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StudentProfileMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().StudentProfile.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetStudentName sets the "student_name" field.
func (m *StudentProfileMutation) SetStudentName(s string) {
	m.student_name = &s
}

// StudentName returns the value of the "student_name" field in the mutation.
func (m *StudentProfileMutation) StudentName() (r string, exists bool) {
	v := m.student_name
	if v == nil {
		return
	}
	return *v, true
}

// OldStudentName returns the old "student_name" field's value of the StudentProfile entity.
// If the StudentProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudentProfileMutation) OldStudentName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStudentName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStudentName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStudentName: %w", err)
	}
	return oldValue.StudentName, nil
}

// ResetStudentName resets all changes to the "student_name" field.
func (m *StudentProfileMutation) ResetStudentName() {
	m.student_name = nil
}

// SetEmail sets the "email" field.
func (m *StudentProfileMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *StudentProfileMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the StudentProfile entity.
// If the StudentProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudentProfileMutation) OldEmail(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ClearEmail clears the value of the "email" field.
func (m *StudentProfileMutation) ClearEmail() {
	m.email = nil
	m.clearedFields[studentprofile.FieldEmail] = struct{}{}
}

// EmailCleared returns if the "email" field was cleared in this mutation.
func (m *StudentProfileMutation) EmailCleared() bool {
	_, ok := m.clearedFields[studentprofile.FieldEmail]
	return ok
}

// ResetEmail resets all changes to the "email" field.
func (m *StudentProfileMutation) ResetEmail() {
	m.email = nil
	delete(m.clearedFields, studentprofile.FieldEmail)
}

// SetPhoneNumber sets the "phone_number" field.
func (m *StudentProfileMutation) SetPhoneNumber(s string) {
	m.phone_number = &s
}

// PhoneNumber returns the value of the "phone_number" field in the mutation.
func (m *StudentProfileMutation) PhoneNumber() (r string, exists bool) {
	v := m.phone_number
	if v == nil {
		return
	}
	return *v, true
}

// OldPhoneNumber returns the old "phone_number" field's value of the StudentProfile entity.
// If the StudentProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudentProfileMutation) OldPhoneNumber(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhoneNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhoneNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhoneNumber: %w", err)
	}
	return oldValue.PhoneNumber, nil
}

// ClearPhoneNumber clears the value of the "phone_number" field.
func (m *StudentProfileMutation) ClearPhoneNumber() {
	m.phone_number = nil
	m.clearedFields[studentprofile.FieldPhoneNumber] = struct{}{}
}

// PhoneNumberCleared returns if the "phone_number" field was cleared in this mutation.
func (m *StudentProfileMutation) PhoneNumberCleared() bool {
	_, ok := m.clearedFields[studentprofile.FieldPhoneNumber]
	return ok
}

// ResetPhoneNumber resets all changes to the "phone_number" field.
func (m *StudentProfileMutation) ResetPhoneNumber() {
	m.phone_number = nil
	delete(m.clearedFields, studentprofile.FieldPhoneNumber)
}

// SetCourseApplied sets the "course_applied" field.
func (m *StudentProfileMutation) SetCourseApplied(s string) {
	m.course_applied = &s
}

// CourseApplied returns the value of the "course_applied" field in the mutation.
func (m *StudentProfileMutation) CourseApplied() (r string, exists bool) {
	v := m.course_applied
	if v == nil {
		return
	}
	return *v, true
}

// OldCourseApplied returns the old "course_applied" field's value of the StudentProfile entity.
// If the StudentProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudentProfileMutation) OldCourseApplied(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCourseApplied is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCourseApplied requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCourseApplied: %w", err)
	}
	return oldValue.CourseApplied, nil
}

// ClearCourseApplied clears the value of the "course_applied" field.
func (m *StudentProfileMutation) ClearCourseApplied() {
	m.course_applied = nil
	m.clearedFields[studentprofile.FieldCourseApplied] = struct{}{}
}

// CourseAppliedCleared returns if the "course_applied" field was cleared in this mutation.
func (m *StudentProfileMutation) CourseAppliedCleared() bool {
	_, ok := m.clearedFields[studentprofile.FieldCourseApplied]
	return ok
}

// ResetCourseApplied resets all changes to the "course_applied" field.
func (m *StudentProfileMutation) ResetCourseApplied() {
	m.course_applied = nil
	delete(m.clearedFields, studentprofile.FieldCourseApplied)
}

// SetCreatedAt sets the "created_at" field.
func (m *StudentProfileMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *StudentProfileMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the StudentProfile entity.
// If the StudentProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudentProfileMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *StudentProfileMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *StudentProfileMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *StudentProfileMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the StudentProfile entity.
// If the StudentProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudentProfileMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *StudentProfileMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddFormIDs adds the "forms" edge to the AdmissionForm entity by ids.
func (m *StudentProfileMutation) AddFormIDs(ids ...uuid.UUID) {
	if m.forms == nil {
		m.forms = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.forms[ids[i]] = struct{}{}
	}
}

// ClearForms clears the "forms" edge to the AdmissionForm entity.
func (m *StudentProfileMutation) ClearForms() {
	m.clearedforms = true
}

// FormsCleared reports if the "forms" edge to the AdmissionForm entity was cleared.
func (m *StudentProfileMutation) FormsCleared() bool {
	return m.clearedforms
}

// RemoveFormIDs removes the "forms" edge to the AdmissionForm entity by IDs.
func (m *StudentProfileMutation) RemoveFormIDs(ids ...uuid.UUID) {
	if m.removedforms == nil {
		m.removedforms = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.forms, ids[i])
		m.removedforms[ids[i]] = struct{}{}
	}
}

// RemovedForms returns the removed IDs of the "forms" edge to the AdmissionForm entity.
func (m *StudentProfileMutation) RemovedFormsIDs() (ids []uuid.UUID) {
	for id := range m.removedforms {
		ids = append(ids, id)
	}
	return
}

// FormsIDs returns the "forms" edge IDs in the mutation.
func (m *StudentProfileMutation) FormsIDs() (ids []uuid.UUID) {
	for id := range m.forms {
		ids = append(ids, id)
	}
	return
}

// ResetForms resets all changes to the "forms" edge.
func (m *StudentProfileMutation) ResetForms() {
	m.forms = nil
	m.clearedforms = false
	m.removedforms = nil
}

// Where appends a list predicates to the StudentProfileMutation builder.
func (m *StudentProfileMutation) Where(ps ...predicate.StudentProfile) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StudentProfileMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StudentProfileMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.StudentProfile, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StudentProfileMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StudentProfileMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (StudentProfile).
func (m *StudentProfileMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StudentProfileMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.student_name != nil {
		fields = append(fields, studentprofile.FieldStudentName)
	}
	if m.email != nil {
		fields = append(fields, studentprofile.FieldEmail)
	}
	if m.phone_number != nil {
		fields = append(fields, studentprofile.FieldPhoneNumber)
	}
	if m.course_applied != nil {
		fields = append(fields, studentprofile.FieldCourseApplied)
	}
	if m.created_at != nil {
		fields = append(fields, studentprofile.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, studentprofile.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StudentProfileMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case studentprofile.FieldStudentName:
		return m.StudentName()
	case studentprofile.FieldEmail:
		return m.Email()
	case studentprofile.FieldPhoneNumber:
		return m.PhoneNumber()
	case studentprofile.FieldCourseApplied:
		return m.CourseApplied()
	case studentprofile.FieldCreatedAt:
		return m.CreatedAt()
	case studentprofile.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StudentProfileMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case studentprofile.FieldStudentName:
		return m.OldStudentName(ctx)
	case studentprofile.FieldEmail:
		return m.OldEmail(ctx)
	case studentprofile.FieldPhoneNumber:
		return m.OldPhoneNumber(ctx)
	case studentprofile.FieldCourseApplied:
		return m.OldCourseApplied(ctx)
	case studentprofile.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case studentprofile.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown StudentProfile field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StudentProfileMutation) SetField(name string, value ent.Value) error {
	switch name {
	case studentprofile.FieldStudentName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStudentName(v)
		return nil
	case studentprofile.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case studentprofile.FieldPhoneNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhoneNumber(v)
		return nil
	case studentprofile.FieldCourseApplied:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCourseApplied(v)
		return nil
	case studentprofile.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case studentprofile.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown StudentProfile field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StudentProfileMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StudentProfileMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StudentProfileMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown StudentProfile numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StudentProfileMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(studentprofile.FieldEmail) {
		fields = append(fields, studentprofile.FieldEmail)
	}
	if m.FieldCleared(studentprofile.FieldPhoneNumber) {
		fields = append(fields, studentprofile.FieldPhoneNumber)
	}
	if m.FieldCleared(studentprofile.FieldCourseApplied) {
		fields = append(fields, studentprofile.FieldCourseApplied)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StudentProfileMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StudentProfileMutation) ClearField(name string) error {
	switch name {
	case studentprofile.FieldEmail:
		m.ClearEmail()
		return nil
	case studentprofile.FieldPhoneNumber:
		m.ClearPhoneNumber()
		return nil
	case studentprofile.FieldCourseApplied:
		m.ClearCourseApplied()
		return nil
	}
	return fmt.Errorf("unknown StudentProfile nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StudentProfileMutation) ResetField(name string) error {
	switch name {
	case studentprofile.FieldStudentName:
		m.ResetStudentName()
		return nil
	case studentprofile.FieldEmail:
		m.ResetEmail()
		return nil
	case studentprofile.FieldPhoneNumber:
		m.ResetPhoneNumber()
		return nil
	case studentprofile.FieldCourseApplied:
		m.ResetCourseApplied()
		return nil
	case studentprofile.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case studentprofile.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown StudentProfile field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StudentProfileMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.forms != nil {
		edges = append(edges, studentprofile.EdgeForms)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StudentProfileMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case studentprofile.EdgeForms:
		ids := make([]ent.Value, 0, len(m.forms))
		for id := range m.forms {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StudentProfileMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedforms != nil {
		edges = append(edges, studentprofile.EdgeForms)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StudentProfileMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case studentprofile.EdgeForms:
		ids := make([]ent.Value, 0, len(m.removedforms))
		for id := range m.removedforms {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StudentProfileMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedforms {
		edges = append(edges, studentprofile.EdgeForms)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StudentProfileMutation) EdgeCleared(name string) bool {
	switch name {
	case studentprofile.EdgeForms:
		return m.clearedforms
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StudentProfileMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown StudentProfile unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StudentProfileMutation) ResetEdge(name string) error {
	switch name {
	case studentprofile.EdgeForms:
		m.ResetForms()
		return nil
	}
	return fmt.Errorf("unknown StudentProfile edge %s", name)
}
