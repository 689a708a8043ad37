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
	"github.com/SmritaPandey/OCR-admission-forms/gen/ent/studentprofile"
	"github.com/google/uuid"
)

// StudentProfileUpdate is the builder for updating StudentProfile entities.
type StudentProfileUpdate struct {
	config
	hooks    []Hook
	mutation *StudentProfileMutation
}

// Where appends a list predicates to the StudentProfileUpdate builder.
func (_u *StudentProfileUpdate) Where(ps ...predicate.StudentProfile) *StudentProfileUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStudentName sets the "student_name" field.
func (_u *StudentProfileUpdate) SetStudentName(v string) *StudentProfileUpdate {
	_u.mutation.SetStudentName(v)
	return _u
}

// SetNillableStudentName sets the "student_name" field if the given value is not nil.
func (_u *StudentProfileUpdate) SetNillableStudentName(v *string) *StudentProfileUpdate {
	if v != nil {
		_u.SetStudentName(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *StudentProfileUpdate) SetEmail(v string) *StudentProfileUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *StudentProfileUpdate) SetNillableEmail(v *string) *StudentProfileUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *StudentProfileUpdate) ClearEmail() *StudentProfileUpdate {
	_u.mutation.ClearEmail()
	return _u
}

// SetPhoneNumber sets the "phone_number" field.
func (_u *StudentProfileUpdate) SetPhoneNumber(v string) *StudentProfileUpdate {
	_u.mutation.SetPhoneNumber(v)
	return _u
}

// SetNillablePhoneNumber sets the "phone_number" field if the given value is not nil.
func (_u *StudentProfileUpdate) SetNillablePhoneNumber(v *string) *StudentProfileUpdate {
	if v != nil {
		_u.SetPhoneNumber(*v)
	}
	return _u
}

// ClearPhoneNumber clears the value of the "phone_number" field.
func (_u *StudentProfileUpdate) ClearPhoneNumber() *StudentProfileUpdate {
	_u.mutation.ClearPhoneNumber()
	return _u
}

// SetCourseApplied sets the "course_applied" field.
func (_u *StudentProfileUpdate) SetCourseApplied(v string) *StudentProfileUpdate {
	_u.mutation.SetCourseApplied(v)
	return _u
}

// SetNillableCourseApplied sets the "course_applied" field if the given value is not nil.
func (_u *StudentProfileUpdate) SetNillableCourseApplied(v *string) *StudentProfileUpdate {
	if v != nil {
		_u.SetCourseApplied(*v)
	}
	return _u
}

// ClearCourseApplied clears the value of the "course_applied" field.
func (_u *StudentProfileUpdate) ClearCourseApplied() *StudentProfileUpdate {
	_u.mutation.ClearCourseApplied()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *StudentProfileUpdate) SetCreatedAt(v time.Time) *StudentProfileUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *StudentProfileUpdate) SetNillableCreatedAt(v *time.Time) *StudentProfileUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *StudentProfileUpdate) SetUpdatedAt(v time.Time) *StudentProfileUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddFormIDs adds the "forms" edge to the AdmissionForm entity by IDs.
func (_u *StudentProfileUpdate) AddFormIDs(ids ...uuid.UUID) *StudentProfileUpdate {
	_u.mutation.AddFormIDs(ids...)
	return _u
}

// AddForms adds the "forms" edges to the AdmissionForm entity.
func (_u *StudentProfileUpdate) AddForms(v ...*AdmissionForm) *StudentProfileUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFormIDs(ids...)
}

// Mutation returns the StudentProfileMutation object of the builder.
func (_u *StudentProfileUpdate) Mutation() *StudentProfileMutation {
	return _u.mutation
}

// ClearForms clears all "forms" edges to the AdmissionForm entity.
func (_u *StudentProfileUpdate) ClearForms() *StudentProfileUpdate {
	_u.mutation.ClearForms()
	return _u
}

// RemoveFormIDs removes the "forms" edge to AdmissionForm entities by IDs.
func (_u *StudentProfileUpdate) RemoveFormIDs(ids ...uuid.UUID) *StudentProfileUpdate {
	_u.mutation.RemoveFormIDs(ids...)
	return _u
}

// RemoveForms removes "forms" edges to AdmissionForm entities.
func (_u *StudentProfileUpdate) RemoveForms(v ...*AdmissionForm) *StudentProfileUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFormIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StudentProfileUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StudentProfileUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StudentProfileUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StudentProfileUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *StudentProfileUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := studentprofile.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StudentProfileUpdate) check() error {
	if v, ok := _u.mutation.StudentName(); ok {
		if err := studentprofile.StudentNameValidator(v); err != nil {
			return &ValidationError{Name: "student_name", err: fmt.Errorf(`ent: validator failed for field "StudentProfile.student_name": %w`, err)}
		}
	}
	return nil
}

func (_u *StudentProfileUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(studentprofile.Table, studentprofile.Columns, sqlgraph.NewFieldSpec(studentprofile.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StudentName(); ok {
		_spec.SetField(studentprofile.FieldStudentName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(studentprofile.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(studentprofile.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.PhoneNumber(); ok {
		_spec.SetField(studentprofile.FieldPhoneNumber, field.TypeString, value)
	}
	if _u.mutation.PhoneNumberCleared() {
		_spec.ClearField(studentprofile.FieldPhoneNumber, field.TypeString)
	}
	if value, ok := _u.mutation.CourseApplied(); ok {
		_spec.SetField(studentprofile.FieldCourseApplied, field.TypeString, value)
	}
	if _u.mutation.CourseAppliedCleared() {
		_spec.ClearField(studentprofile.FieldCourseApplied, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(studentprofile.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(studentprofile.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.FormsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   studentprofile.FormsTable,
			Columns: []string{studentprofile.FormsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(admissionform.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFormsIDs(); len(nodes) > 0 && !_u.mutation.FormsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   studentprofile.FormsTable,
			Columns: []string{studentprofile.FormsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(admissionform.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FormsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   studentprofile.FormsTable,
			Columns: []string{studentprofile.FormsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(admissionform.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{studentprofile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StudentProfileUpdateOne is the builder for updating a single StudentProfile entity.
type StudentProfileUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StudentProfileMutation
}

// SetStudentName sets the "student_name" field.
func (_u *StudentProfileUpdateOne) SetStudentName(v string) *StudentProfileUpdateOne {
	_u.mutation.SetStudentName(v)
	return _u
}

// SetNillableStudentName sets the "student_name" field if the given value is not nil.
func (_u *StudentProfileUpdateOne) SetNillableStudentName(v *string) *StudentProfileUpdateOne {
	if v != nil {
		_u.SetStudentName(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *StudentProfileUpdateOne) SetEmail(v string) *StudentProfileUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *StudentProfileUpdateOne) SetNillableEmail(v *string) *StudentProfileUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *StudentProfileUpdateOne) ClearEmail() *StudentProfileUpdateOne {
	_u.mutation.ClearEmail()
	return _u
}

// SetPhoneNumber sets the "phone_number" field.
func (_u *StudentProfileUpdateOne) SetPhoneNumber(v string) *StudentProfileUpdateOne {
	_u.mutation.SetPhoneNumber(v)
	return _u
}

// SetNillablePhoneNumber sets the "phone_number" field if the given value is not nil.
func (_u *StudentProfileUpdateOne) SetNillablePhoneNumber(v *string) *StudentProfileUpdateOne {
	if v != nil {
		_u.SetPhoneNumber(*v)
	}
	return _u
}

// ClearPhoneNumber clears the value of the "phone_number" field.
func (_u *StudentProfileUpdateOne) ClearPhoneNumber() *StudentProfileUpdateOne {
	_u.mutation.ClearPhoneNumber()
	return _u
}

// SetCourseApplied sets the "course_applied" field.
func (_u *StudentProfileUpdateOne) SetCourseApplied(v string) *StudentProfileUpdateOne {
	_u.mutation.SetCourseApplied(v)
	return _u
}

// SetNillableCourseApplied sets the "course_applied" field if the given value is not nil.
func (_u *StudentProfileUpdateOne) SetNillableCourseApplied(v *string) *StudentProfileUpdateOne {
	if v != nil {
		_u.SetCourseApplied(*v)
	}
	return _u
}

// ClearCourseApplied clears the value of the "course_applied" field.
func (_u *StudentProfileUpdateOne) ClearCourseApplied() *StudentProfileUpdateOne {
	_u.mutation.ClearCourseApplied()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *StudentProfileUpdateOne) SetCreatedAt(v time.Time) *StudentProfileUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *StudentProfileUpdateOne) SetNillableCreatedAt(v *time.Time) *StudentProfileUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *StudentProfileUpdateOne) SetUpdatedAt(v time.Time) *StudentProfileUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddFormIDs adds the "forms" edge to the AdmissionForm entity by IDs.
func (_u *StudentProfileUpdateOne) AddFormIDs(ids ...uuid.UUID) *StudentProfileUpdateOne {
	_u.mutation.AddFormIDs(ids...)
	return _u
}

// AddForms adds the "forms" edges to the AdmissionForm entity.
func (_u *StudentProfileUpdateOne) AddForms(v ...*AdmissionForm) *StudentProfileUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFormIDs(ids...)
}

// Mutation returns the StudentProfileMutation object of the builder.
func (_u *StudentProfileUpdateOne) Mutation() *StudentProfileMutation {
	return _u.mutation
}

// ClearForms clears all "forms" edges to the AdmissionForm entity.
func (_u *StudentProfileUpdateOne) ClearForms() *StudentProfileUpdateOne {
	_u.mutation.ClearForms()
	return _u
}

// RemoveFormIDs removes the "forms" edge to AdmissionForm entities by IDs.
func (_u *StudentProfileUpdateOne) RemoveFormIDs(ids ...uuid.UUID) *StudentProfileUpdateOne {
	_u.mutation.RemoveFormIDs(ids...)
	return _u
}

// RemoveForms removes "forms" edges to AdmissionForm entities.
func (_u *StudentProfileUpdateOne) RemoveForms(v ...*AdmissionForm) *StudentProfileUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFormIDs(ids...)
}

// Where appends a list predicates to the StudentProfileUpdate builder.
func (_u *StudentProfileUpdateOne) Where(ps ...predicate.StudentProfile) *StudentProfileUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StudentProfileUpdateOne) Select(field string, fields ...string) *StudentProfileUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated StudentProfile entity.
func (_u *StudentProfileUpdateOne) Save(ctx context.Context) (*StudentProfile, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StudentProfileUpdateOne) SaveX(ctx context.Context) *StudentProfile {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StudentProfileUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StudentProfileUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *StudentProfileUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := studentprofile.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StudentProfileUpdateOne) check() error {
	if v, ok := _u.mutation.StudentName(); ok {
		if err := studentprofile.StudentNameValidator(v); err != nil {
			return &ValidationError{Name: "student_name", err: fmt.Errorf(`ent: validator failed for field "StudentProfile.student_name": %w`, err)}
		}
	}
	return nil
}

func (_u *StudentProfileUpdateOne) sqlSave(ctx context.Context) (_node *StudentProfile, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(studentprofile.Table, studentprofile.Columns, sqlgraph.NewFieldSpec(studentprofile.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "StudentProfile.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, studentprofile.FieldID)
		for _, f := range fields {
			if !studentprofile.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != studentprofile.FieldID {
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
	if value, ok := _u.mutation.StudentName(); ok {
		_spec.SetField(studentprofile.FieldStudentName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(studentprofile.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(studentprofile.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.PhoneNumber(); ok {
		_spec.SetField(studentprofile.FieldPhoneNumber, field.TypeString, value)
	}
	if _u.mutation.PhoneNumberCleared() {
		_spec.ClearField(studentprofile.FieldPhoneNumber, field.TypeString)
	}
	if value, ok := _u.mutation.CourseApplied(); ok {
		_spec.SetField(studentprofile.FieldCourseApplied, field.TypeString, value)
	}
	if _u.mutation.CourseAppliedCleared() {
		_spec.ClearField(studentprofile.FieldCourseApplied, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(studentprofile.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(studentprofile.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.FormsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   studentprofile.FormsTable,
			Columns: []string{studentprofile.FormsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(admissionform.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFormsIDs(); len(nodes) > 0 && !_u.mutation.FormsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   studentprofile.FormsTable,
			Columns: []string{studentprofile.FormsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(admissionform.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FormsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   studentprofile.FormsTable,
			Columns: []string{studentprofile.FormsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(admissionform.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &StudentProfile{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{studentprofile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
