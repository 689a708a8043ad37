// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/SmritaPandey/OCR-admission-forms/gen/ent/admissionform"
	"github.com/SmritaPandey/OCR-admission-forms/gen/ent/predicate"
)

// AdmissionFormDelete is the builder for deleting a AdmissionForm entity.
type AdmissionFormDelete struct {
	config
	hooks    []Hook
	mutation *AdmissionFormMutation
}

// Where appends a list predicates to the AdmissionFormDelete builder.
func (_d *AdmissionFormDelete) Where(ps ...predicate.AdmissionForm) *AdmissionFormDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *AdmissionFormDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AdmissionFormDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *AdmissionFormDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(admissionform.Table, sqlgraph.NewFieldSpec(admissionform.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// AdmissionFormDeleteOne is the builder for deleting a single AdmissionForm entity.
type AdmissionFormDeleteOne struct {
	_d *AdmissionFormDelete
}

// Where appends a list predicates to the AdmissionFormDelete builder.
func (_d *AdmissionFormDeleteOne) Where(ps ...predicate.AdmissionForm) *AdmissionFormDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *AdmissionFormDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{admissionform.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AdmissionFormDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
