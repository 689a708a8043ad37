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
	"github.com/SmritaPandey/OCR-admission-forms/gen/ent/studentprofile"
	"github.com/google/uuid"
)

// StudentProfileCreate is the builder for creating a StudentProfile entity.
type StudentProfileCreate struct {
	config
	mutation *StudentProfileMutation
	hooks    []Hook
}

// SetStudentName sets the "student_name" field.
func (_c *StudentProfileCreate) SetStudentName(v string) *StudentProfileCreate {
	_c.mutation.SetStudentName(v)
	return _c
}

// SetEmail sets the "email" field.
func (_c *StudentProfileCreate) SetEmail(v string) *StudentProfileCreate {
	_c.mutation.SetEmail(v)
	return _c
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_c *StudentProfileCreate) SetNillableEmail(v *string) *StudentProfileCreate {
	if v != nil {
		_c.SetEmail(*v)
	}
	return _c
}

// SetPhoneNumber sets the "phone_number" field.
func (_c *StudentProfileCreate) SetPhoneNumber(v string) *StudentProfileCreate {
	_c.mutation.SetPhoneNumber(v)
	return _c
}

// SetNillablePhoneNumber sets the "phone_number" field if the given value is not nil.
func (_c *StudentProfileCreate) SetNillablePhoneNumber(v *string) *StudentProfileCreate {
	if v != nil {
		_c.SetPhoneNumber(*v)
	}
	return _c
}

// SetCourseApplied sets the "course_applied" field.
func (_c *StudentProfileCreate) SetCourseApplied(v string) *StudentProfileCreate {
	_c.mutation.SetCourseApplied(v)
	return _c
}

// SetNillableCourseApplied sets the "course_applied" field if the given value is not nil.
func (_c *StudentProfileCreate) SetNillableCourseApplied(v *string) *StudentProfileCreate {
	if v != nil {
		_c.SetCourseApplied(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *StudentProfileCreate) SetCreatedAt(v time.Time) *StudentProfileCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *StudentProfileCreate) SetNillableCreatedAt(v *time.Time) *StudentProfileCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *StudentProfileCreate) SetUpdatedAt(v time.Time) *StudentProfileCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *StudentProfileCreate) SetNillableUpdatedAt(v *time.Time) *StudentProfileCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *StudentProfileCreate) SetID(v uuid.UUID) *StudentProfileCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *StudentProfileCreate) SetNillableID(v *uuid.UUID) *StudentProfileCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddFormIDs adds the "forms" edge to the AdmissionForm entity by IDs.
func (_c *StudentProfileCreate) AddFormIDs(ids ...uuid.UUID) *StudentProfileCreate {
	_c.mutation.AddFormIDs(ids...)
	return _c
}

// AddForms adds the "forms" edges to the AdmissionForm entity.
func (_c *StudentProfileCreate) AddForms(v ...*AdmissionForm) *StudentProfileCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddFormIDs(ids...)
}

// Mutation returns the StudentProfileMutation object of the builder.
func (_c *StudentProfileCreate) Mutation() *StudentProfileMutation {
	return _c.mutation
}

// Save creates the StudentProfile in the database.
func (_c *StudentProfileCreate) Save(ctx context.Context) (*StudentProfile, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StudentProfileCreate) SaveX(ctx context.Context) *StudentProfile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StudentProfileCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StudentProfileCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StudentProfileCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := studentprofile.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := studentprofile.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := studentprofile.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StudentProfileCreate) check() error {
	if _, ok := _c.mutation.StudentName(); !ok {
		return &ValidationError{Name: "student_name", err: errors.New(`ent: missing required field "StudentProfile.student_name"`)}
	}
	if v, ok := _c.mutation.StudentName(); ok {
		if err := studentprofile.StudentNameValidator(v); err != nil {
			return &ValidationError{Name: "student_name", err: fmt.Errorf(`ent: validator failed for field "StudentProfile.student_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "StudentProfile.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "StudentProfile.updated_at"`)}
	}
	return nil
}

func (_c *StudentProfileCreate) sqlSave(ctx context.Context) (*StudentProfile, error) {
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

func (_c *StudentProfileCreate) createSpec() (*StudentProfile, *sqlgraph.CreateSpec) {
	var (
		_node = &StudentProfile{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(studentprofile.Table, sqlgraph.NewFieldSpec(studentprofile.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.StudentName(); ok {
		_spec.SetField(studentprofile.FieldStudentName, field.TypeString, value)
		_node.StudentName = value
	}
	if value, ok := _c.mutation.Email(); ok {
		_spec.SetField(studentprofile.FieldEmail, field.TypeString, value)
		_node.Email = &value
	}
	if value, ok := _c.mutation.PhoneNumber(); ok {
		_spec.SetField(studentprofile.FieldPhoneNumber, field.TypeString, value)
		_node.PhoneNumber = &value
	}
	if value, ok := _c.mutation.CourseApplied(); ok {
		_spec.SetField(studentprofile.FieldCourseApplied, field.TypeString, value)
		_node.CourseApplied = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(studentprofile.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(studentprofile.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.FormsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// StudentProfileCreateBulk is the builder for creating many StudentProfile entities in bulk.
type StudentProfileCreateBulk struct {
	config
	err      error
	builders []*StudentProfileCreate
}

// Save creates the StudentProfile entities in the database.
func (_c *StudentProfileCreateBulk) Save(ctx context.Context) ([]*StudentProfile, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StudentProfile, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StudentProfileMutation)
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
func (_c *StudentProfileCreateBulk) SaveX(ctx context.Context) []*StudentProfile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StudentProfileCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StudentProfileCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
