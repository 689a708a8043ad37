// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/SmritaPandey/OCR-admission-forms/gen/ent/admissionform"
	"github.com/SmritaPandey/OCR-admission-forms/gen/ent/studentdocument"
	"github.com/SmritaPandey/OCR-admission-forms/gen/ent/studentprofile"
	"github.com/google/uuid"
)

// AdmissionFormCreate is the builder for creating a AdmissionForm entity.
type AdmissionFormCreate struct {
	config
	mutation *AdmissionFormMutation
	hooks    []Hook
}

// SetDocumentID sets the "document_id" field.
func (_c *AdmissionFormCreate) SetDocumentID(v uuid.UUID) *AdmissionFormCreate {
	_c.mutation.SetDocumentID(v)
	return _c
}

// SetProfileID sets the "profile_id" field.
func (_c *AdmissionFormCreate) SetProfileID(v uuid.UUID) *AdmissionFormCreate {
	_c.mutation.SetProfileID(v)
	return _c
}

// SetNillableProfileID sets the "profile_id" field if the given value is not nil.
func (_c *AdmissionFormCreate) SetNillableProfileID(v *uuid.UUID) *AdmissionFormCreate {
	if v != nil {
		_c.SetProfileID(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *AdmissionFormCreate) SetStatus(v string) *AdmissionFormCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *AdmissionFormCreate) SetNillableStatus(v *string) *AdmissionFormCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetFields sets the "fields" field.
func (_c *AdmissionFormCreate) SetFields(v map[string]string) *AdmissionFormCreate {
	_c.mutation.SetFields(v)
	return _c
}

// SetAdditionalInfo sets the "additional_info" field.
func (_c *AdmissionFormCreate) SetAdditionalInfo(v map[string]interface{}) *AdmissionFormCreate {
	_c.mutation.SetAdditionalInfo(v)
	return _c
}

// SetStudentName sets the "student_name" field.
func (_c *AdmissionFormCreate) SetStudentName(v string) *AdmissionFormCreate {
	_c.mutation.SetStudentName(v)
	return _c
}

// SetNillableStudentName sets the "student_name" field if the given value is not nil.
func (_c *AdmissionFormCreate) SetNillableStudentName(v *string) *AdmissionFormCreate {
	if v != nil {
		_c.SetStudentName(*v)
	}
	return _c
}

// SetEmail sets the "email" field.
func (_c *AdmissionFormCreate) SetEmail(v string) *AdmissionFormCreate {
	_c.mutation.SetEmail(v)
	return _c
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_c *AdmissionFormCreate) SetNillableEmail(v *string) *AdmissionFormCreate {
	if v != nil {
		_c.SetEmail(*v)
	}
	return _c
}

// SetPhoneNumber sets the "phone_number" field.
func (_c *AdmissionFormCreate) SetPhoneNumber(v string) *AdmissionFormCreate {
	_c.mutation.SetPhoneNumber(v)
	return _c
}

// SetNillablePhoneNumber sets the "phone_number" field if the given value is not nil.
func (_c *AdmissionFormCreate) SetNillablePhoneNumber(v *string) *AdmissionFormCreate {
	if v != nil {
		_c.SetPhoneNumber(*v)
	}
	return _c
}

// SetCourseApplied sets the "course_applied" field.
func (_c *AdmissionFormCreate) SetCourseApplied(v string) *AdmissionFormCreate {
	_c.mutation.SetCourseApplied(v)
	return _c
}

// SetNillableCourseApplied sets the "course_applied" field if the given value is not nil.
func (_c *AdmissionFormCreate) SetNillableCourseApplied(v *string) *AdmissionFormCreate {
	if v != nil {
		_c.SetCourseApplied(*v)
	}
	return _c
}

// SetOcrText sets the "ocr_text" field.
func (_c *AdmissionFormCreate) SetOcrText(v string) *AdmissionFormCreate {
	_c.mutation.SetOcrText(v)
	return _c
}

// SetNillableOcrText sets the "ocr_text" field if the given value is not nil.
func (_c *AdmissionFormCreate) SetNillableOcrText(v *string) *AdmissionFormCreate {
	if v != nil {
		_c.SetOcrText(*v)
	}
	return _c
}

// SetOcrConfidence sets the "ocr_confidence" field.
func (_c *AdmissionFormCreate) SetOcrConfidence(v float32) *AdmissionFormCreate {
	_c.mutation.SetOcrConfidence(v)
	return _c
}

// SetNillableOcrConfidence sets the "ocr_confidence" field if the given value is not nil.
func (_c *AdmissionFormCreate) SetNillableOcrConfidence(v *float32) *AdmissionFormCreate {
	if v != nil {
		_c.SetOcrConfidence(*v)
	}
	return _c
}

// SetNeedsReview sets the "needs_review" field.
func (_c *AdmissionFormCreate) SetNeedsReview(v bool) *AdmissionFormCreate {
	_c.mutation.SetNeedsReview(v)
	return _c
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (_c *AdmissionFormCreate) SetNillableNeedsReview(v *bool) *AdmissionFormCreate {
	if v != nil {
		_c.SetNeedsReview(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *AdmissionFormCreate) SetErrorMessage(v string) *AdmissionFormCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *AdmissionFormCreate) SetNillableErrorMessage(v *string) *AdmissionFormCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetVerifiedAt sets the "verified_at" field.
func (_c *AdmissionFormCreate) SetVerifiedAt(v time.Time) *AdmissionFormCreate {
	_c.mutation.SetVerifiedAt(v)
	return _c
}

// SetNillableVerifiedAt sets the "verified_at" field if the given value is not nil.
func (_c *AdmissionFormCreate) SetNillableVerifiedAt(v *time.Time) *AdmissionFormCreate {
	if v != nil {
		_c.SetVerifiedAt(*v)
	}
	return _c
}

// SetVerifiedBy sets the "verified_by" field.
func (_c *AdmissionFormCreate) SetVerifiedBy(v string) *AdmissionFormCreate {
	_c.mutation.SetVerifiedBy(v)
	return _c
}

// SetNillableVerifiedBy sets the "verified_by" field if the given value is not nil.
func (_c *AdmissionFormCreate) SetNillableVerifiedBy(v *string) *AdmissionFormCreate {
	if v != nil {
		_c.SetVerifiedBy(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AdmissionFormCreate) SetCreatedAt(v time.Time) *AdmissionFormCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AdmissionFormCreate) SetNillableCreatedAt(v *time.Time) *AdmissionFormCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *AdmissionFormCreate) SetUpdatedAt(v time.Time) *AdmissionFormCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *AdmissionFormCreate) SetNillableUpdatedAt(v *time.Time) *AdmissionFormCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AdmissionFormCreate) SetID(v uuid.UUID) *AdmissionFormCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *AdmissionFormCreate) SetNillableID(v *uuid.UUID) *AdmissionFormCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetDocument sets the "document" edge to the StudentDocument entity.
func (_c *AdmissionFormCreate) SetDocument(v *StudentDocument) *AdmissionFormCreate {
	return _c.SetDocumentID(v.ID)
}

// SetProfile sets the "profile" edge to the StudentProfile entity.
func (_c *AdmissionFormCreate) SetProfile(v *StudentProfile) *AdmissionFormCreate {
	return _c.SetProfileID(v.ID)
}

// Mutation returns the AdmissionFormMutation object of the builder.
func (_c *AdmissionFormCreate) Mutation() *AdmissionFormMutation {
	return _c.mutation
}

// Save creates the AdmissionForm in the database.
func (_c *AdmissionFormCreate) Save(ctx context.Context) (*AdmissionForm, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AdmissionFormCreate) SaveX(ctx context.Context) *AdmissionForm {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AdmissionFormCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AdmissionFormCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AdmissionFormCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := admissionform.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.GetFields(); !ok {
		v := admissionform.DefaultFields
		_c.mutation.SetFields(v)
	}
	if _, ok := _c.mutation.StudentName(); !ok {
		v := admissionform.DefaultStudentName
		_c.mutation.SetStudentName(v)
	}
	if _, ok := _c.mutation.Email(); !ok {
		v := admissionform.DefaultEmail
		_c.mutation.SetEmail(v)
	}
	if _, ok := _c.mutation.PhoneNumber(); !ok {
		v := admissionform.DefaultPhoneNumber
		_c.mutation.SetPhoneNumber(v)
	}
	if _, ok := _c.mutation.CourseApplied(); !ok {
		v := admissionform.DefaultCourseApplied
		_c.mutation.SetCourseApplied(v)
	}
	if _, ok := _c.mutation.NeedsReview(); !ok {
		v := admissionform.DefaultNeedsReview
		_c.mutation.SetNeedsReview(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := admissionform.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := admissionform.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := admissionform.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AdmissionFormCreate) check() error {
	if _, ok := _c.mutation.DocumentID(); !ok {
		return &ValidationError{Name: "document_id", err: errors.New(`ent: missing required field "AdmissionForm.document_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "AdmissionForm.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := admissionform.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AdmissionForm.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.GetFields(); !ok {
		return &ValidationError{Name: "fields", err: errors.New(`ent: missing required field "AdmissionForm.fields"`)}
	}
	if _, ok := _c.mutation.NeedsReview(); !ok {
		return &ValidationError{Name: "needs_review", err: errors.New(`ent: missing required field "AdmissionForm.needs_review"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AdmissionForm.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "AdmissionForm.updated_at"`)}
	}
	if len(_c.mutation.DocumentIDs()) == 0 {
		return &ValidationError{Name: "document", err: errors.New(`ent: missing required edge "AdmissionForm.document"`)}
	}
	return nil
}

func (_c *AdmissionFormCreate) sqlSave(ctx context.Context) (*AdmissionForm, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AdmissionFormCreate) createSpec() (*AdmissionForm, *sqlgraph.CreateSpec) {
	var (
		_node = &AdmissionForm{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(admissionform.Table, sqlgraph.NewFieldSpec(admissionform.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(admissionform.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.GetFields(); ok {
		_spec.SetField(admissionform.FieldFields, field.TypeJSON, value)
		_node.Fields = value
	}
	if value, ok := _c.mutation.AdditionalInfo(); ok {
		_spec.SetField(admissionform.FieldAdditionalInfo, field.TypeJSON, value)
		_node.AdditionalInfo = value
	}
	if value, ok := _c.mutation.StudentName(); ok {
		_spec.SetField(admissionform.FieldStudentName, field.TypeString, value)
		_node.StudentName = value
	}
	if value, ok := _c.mutation.Email(); ok {
		_spec.SetField(admissionform.FieldEmail, field.TypeString, value)
		_node.Email = value
	}
	if value, ok := _c.mutation.PhoneNumber(); ok {
		_spec.SetField(admissionform.FieldPhoneNumber, field.TypeString, value)
		_node.PhoneNumber = value
	}
	if value, ok := _c.mutation.CourseApplied(); ok {
		_spec.SetField(admissionform.FieldCourseApplied, field.TypeString, value)
		_node.CourseApplied = value
	}
	if value, ok := _c.mutation.OcrText(); ok {
		_spec.SetField(admissionform.FieldOcrText, field.TypeString, value)
		_node.OcrText = &value
	}
	if value, ok := _c.mutation.OcrConfidence(); ok {
		_spec.SetField(admissionform.FieldOcrConfidence, field.TypeFloat32, value)
		_node.OcrConfidence = &value
	}
	if value, ok := _c.mutation.NeedsReview(); ok {
		_spec.SetField(admissionform.FieldNeedsReview, field.TypeBool, value)
		_node.NeedsReview = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(admissionform.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.VerifiedAt(); ok {
		_spec.SetField(admissionform.FieldVerifiedAt, field.TypeTime, value)
		_node.VerifiedAt = &value
	}
	if value, ok := _c.mutation.VerifiedBy(); ok {
		_spec.SetField(admissionform.FieldVerifiedBy, field.TypeString, value)
		_node.VerifiedBy = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(admissionform.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(admissionform.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.DocumentIDs(); len(nodes) > 0 {
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
		_node.DocumentID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ProfileIDs(); len(nodes) > 0 {
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
		_node.ProfileID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// AdmissionFormCreateBulk is the builder for creating many AdmissionForm entities in bulk.
type AdmissionFormCreateBulk struct {
	config
	err      error
	builders []*AdmissionFormCreate
}

// Save creates the AdmissionForm entities in the database.
func (_c *AdmissionFormCreateBulk) Save(ctx context.Context) ([]*AdmissionForm, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AdmissionForm, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AdmissionFormMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *AdmissionFormCreateBulk) SaveX(ctx context.Context) []*AdmissionForm {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AdmissionFormCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AdmissionFormCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
