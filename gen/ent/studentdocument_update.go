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
	"github.com/google/uuid"
)

// StudentDocumentUpdate is the builder for updating StudentDocument entities.
type StudentDocumentUpdate struct {
	config
	hooks    []Hook
	mutation *StudentDocumentMutation
}

// Where appends a list predicates to the StudentDocumentUpdate builder.
func (_u *StudentDocumentUpdate) Where(ps ...predicate.StudentDocument) *StudentDocumentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSourcePath sets the "source_path" field.
func (_u *StudentDocumentUpdate) SetSourcePath(v string) *StudentDocumentUpdate {
	_u.mutation.SetSourcePath(v)
	return _u
}

// SetNillableSourcePath sets the "source_path" field if the given value is not nil.
func (_u *StudentDocumentUpdate) SetNillableSourcePath(v *string) *StudentDocumentUpdate {
	if v != nil {
		_u.SetSourcePath(*v)
	}
	return _u
}

// SetContentHash sets the "content_hash" field.
func (_u *StudentDocumentUpdate) SetContentHash(v []byte) *StudentDocumentUpdate {
	_u.mutation.SetContentHash(v)
	return _u
}

// SetFilename sets the "filename" field.
func (_u *StudentDocumentUpdate) SetFilename(v string) *StudentDocumentUpdate {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *StudentDocumentUpdate) SetNillableFilename(v *string) *StudentDocumentUpdate {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetFileExt sets the "file_ext" field.
func (_u *StudentDocumentUpdate) SetFileExt(v string) *StudentDocumentUpdate {
	_u.mutation.SetFileExt(v)
	return _u
}

// SetNillableFileExt sets the "file_ext" field if the given value is not nil.
func (_u *StudentDocumentUpdate) SetNillableFileExt(v *string) *StudentDocumentUpdate {
	if v != nil {
		_u.SetFileExt(*v)
	}
	return _u
}

// SetFileSize sets the "file_size" field.
func (_u *StudentDocumentUpdate) SetFileSize(v int) *StudentDocumentUpdate {
	_u.mutation.ResetFileSize()
	_u.mutation.SetFileSize(v)
	return _u
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (_u *StudentDocumentUpdate) SetNillableFileSize(v *int) *StudentDocumentUpdate {
	if v != nil {
		_u.SetFileSize(*v)
	}
	return _u
}

// AddFileSize adds value to the "file_size" field.
func (_u *StudentDocumentUpdate) AddFileSize(v int) *StudentDocumentUpdate {
	_u.mutation.AddFileSize(v)
	return _u
}

// SetUploadedAt sets the "uploaded_at" field.
func (_u *StudentDocumentUpdate) SetUploadedAt(v time.Time) *StudentDocumentUpdate {
	_u.mutation.SetUploadedAt(v)
	return _u
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (_u *StudentDocumentUpdate) SetNillableUploadedAt(v *time.Time) *StudentDocumentUpdate {
	if v != nil {
		_u.SetUploadedAt(*v)
	}
	return _u
}

// AddFormIDs adds the "forms" edge to the AdmissionForm entity by IDs.
func (_u *StudentDocumentUpdate) AddFormIDs(ids ...uuid.UUID) *StudentDocumentUpdate {
	_u.mutation.AddFormIDs(ids...)
	return _u
}

// AddForms adds the "forms" edges to the AdmissionForm entity.
func (_u *StudentDocumentUpdate) AddForms(v ...*AdmissionForm) *StudentDocumentUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFormIDs(ids...)
}

// Mutation returns the StudentDocumentMutation object of the builder.
func (_u *StudentDocumentUpdate) Mutation() *StudentDocumentMutation {
	return _u.mutation
}

// ClearForms clears all "forms" edges to the AdmissionForm entity.
func (_u *StudentDocumentUpdate) ClearForms() *StudentDocumentUpdate {
	_u.mutation.ClearForms()
	return _u
}

// RemoveFormIDs removes the "forms" edge to AdmissionForm entities by IDs.
func (_u *StudentDocumentUpdate) RemoveFormIDs(ids ...uuid.UUID) *StudentDocumentUpdate {
	_u.mutation.RemoveFormIDs(ids...)
	return _u
}

// RemoveForms removes "forms" edges to AdmissionForm entities.
func (_u *StudentDocumentUpdate) RemoveForms(v ...*AdmissionForm) *StudentDocumentUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFormIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StudentDocumentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StudentDocumentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StudentDocumentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StudentDocumentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StudentDocumentUpdate) check() error {
	if v, ok := _u.mutation.SourcePath(); ok {
		if err := studentdocument.SourcePathValidator(v); err != nil {
			return &ValidationError{Name: "source_path", err: fmt.Errorf(`ent: validator failed for field "StudentDocument.source_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContentHash(); ok {
		if err := studentdocument.ContentHashValidator(v); err != nil {
			return &ValidationError{Name: "content_hash", err: fmt.Errorf(`ent: validator failed for field "StudentDocument.content_hash": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Filename(); ok {
		if err := studentdocument.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "StudentDocument.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileExt(); ok {
		if err := studentdocument.FileExtValidator(v); err != nil {
			return &ValidationError{Name: "file_ext", err: fmt.Errorf(`ent: validator failed for field "StudentDocument.file_ext": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileSize(); ok {
		if err := studentdocument.FileSizeValidator(v); err != nil {
			return &ValidationError{Name: "file_size", err: fmt.Errorf(`ent: validator failed for field "StudentDocument.file_size": %w`, err)}
		}
	}
	return nil
}

func (_u *StudentDocumentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(studentdocument.Table, studentdocument.Columns, sqlgraph.NewFieldSpec(studentdocument.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SourcePath(); ok {
		_spec.SetField(studentdocument.FieldSourcePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(studentdocument.FieldContentHash, field.TypeBytes, value)
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(studentdocument.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileExt(); ok {
		_spec.SetField(studentdocument.FieldFileExt, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileSize(); ok {
		_spec.SetField(studentdocument.FieldFileSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFileSize(); ok {
		_spec.AddField(studentdocument.FieldFileSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UploadedAt(); ok {
		_spec.SetField(studentdocument.FieldUploadedAt, field.TypeTime, value)
	}
	if _u.mutation.FormsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   studentdocument.FormsTable,
			Columns: []string{studentdocument.FormsColumn},
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
			Table:   studentdocument.FormsTable,
			Columns: []string{studentdocument.FormsColumn},
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
			Table:   studentdocument.FormsTable,
			Columns: []string{studentdocument.FormsColumn},
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
			err = &NotFoundError{studentdocument.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StudentDocumentUpdateOne is the builder for updating a single StudentDocument entity.
type StudentDocumentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StudentDocumentMutation
}

// SetSourcePath sets the "source_path" field.
func (_u *StudentDocumentUpdateOne) SetSourcePath(v string) *StudentDocumentUpdateOne {
	_u.mutation.SetSourcePath(v)
	return _u
}

// SetNillableSourcePath sets the "source_path" field if the given value is not nil.
func (_u *StudentDocumentUpdateOne) SetNillableSourcePath(v *string) *StudentDocumentUpdateOne {
	if v != nil {
		_u.SetSourcePath(*v)
	}
	return _u
}

// SetContentHash sets the "content_hash" field.
func (_u *StudentDocumentUpdateOne) SetContentHash(v []byte) *StudentDocumentUpdateOne {
	_u.mutation.SetContentHash(v)
	return _u
}

// SetFilename sets the "filename" field.
func (_u *StudentDocumentUpdateOne) SetFilename(v string) *StudentDocumentUpdateOne {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *StudentDocumentUpdateOne) SetNillableFilename(v *string) *StudentDocumentUpdateOne {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetFileExt sets the "file_ext" field.
func (_u *StudentDocumentUpdateOne) SetFileExt(v string) *StudentDocumentUpdateOne {
	_u.mutation.SetFileExt(v)
	return _u
}

// SetNillableFileExt sets the "file_ext" field if the given value is not nil.
func (_u *StudentDocumentUpdateOne) SetNillableFileExt(v *string) *StudentDocumentUpdateOne {
	if v != nil {
		_u.SetFileExt(*v)
	}
	return _u
}

// SetFileSize sets the "file_size" field.
func (_u *StudentDocumentUpdateOne) SetFileSize(v int) *StudentDocumentUpdateOne {
	_u.mutation.ResetFileSize()
	_u.mutation.SetFileSize(v)
	return _u
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (_u *StudentDocumentUpdateOne) SetNillableFileSize(v *int) *StudentDocumentUpdateOne {
	if v != nil {
		_u.SetFileSize(*v)
	}
	return _u
}

// AddFileSize adds value to the "file_size" field.
func (_u *StudentDocumentUpdateOne) AddFileSize(v int) *StudentDocumentUpdateOne {
	_u.mutation.AddFileSize(v)
	return _u
}

// SetUploadedAt sets the "uploaded_at" field.
func (_u *StudentDocumentUpdateOne) SetUploadedAt(v time.Time) *StudentDocumentUpdateOne {
	_u.mutation.SetUploadedAt(v)
	return _u
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (_u *StudentDocumentUpdateOne) SetNillableUploadedAt(v *time.Time) *StudentDocumentUpdateOne {
	if v != nil {
		_u.SetUploadedAt(*v)
	}
	return _u
}

// AddFormIDs adds the "forms" edge to the AdmissionForm entity by IDs.
func (_u *StudentDocumentUpdateOne) AddFormIDs(ids ...uuid.UUID) *StudentDocumentUpdateOne {
	_u.mutation.AddFormIDs(ids...)
	return _u
}

// AddForms adds the "forms" edges to the AdmissionForm entity.
func (_u *StudentDocumentUpdateOne) AddForms(v ...*AdmissionForm) *StudentDocumentUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFormIDs(ids...)
}

// Mutation returns the StudentDocumentMutation object of the builder.
func (_u *StudentDocumentUpdateOne) Mutation() *StudentDocumentMutation {
	return _u.mutation
}

// ClearForms clears all "forms" edges to the AdmissionForm entity.
func (_u *StudentDocumentUpdateOne) ClearForms() *StudentDocumentUpdateOne {
	_u.mutation.ClearForms()
	return _u
}

// RemoveFormIDs removes the "forms" edge to AdmissionForm entities by IDs.
func (_u *StudentDocumentUpdateOne) RemoveFormIDs(ids ...uuid.UUID) *StudentDocumentUpdateOne {
	_u.mutation.RemoveFormIDs(ids...)
	return _u
}

// RemoveForms removes "forms" edges to AdmissionForm entities.
func (_u *StudentDocumentUpdateOne) RemoveForms(v ...*AdmissionForm) *StudentDocumentUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFormIDs(ids...)
}

// Where appends a list predicates to the StudentDocumentUpdate builder.
func (_u *StudentDocumentUpdateOne) Where(ps ...predicate.StudentDocument) *StudentDocumentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StudentDocumentUpdateOne) Select(field string, fields ...string) *StudentDocumentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated StudentDocument entity.
func (_u *StudentDocumentUpdateOne) Save(ctx context.Context) (*StudentDocument, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StudentDocumentUpdateOne) SaveX(ctx context.Context) *StudentDocument {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StudentDocumentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StudentDocumentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StudentDocumentUpdateOne) check() error {
	if v, ok := _u.mutation.SourcePath(); ok {
		if err := studentdocument.SourcePathValidator(v); err != nil {
			return &ValidationError{Name: "source_path", err: fmt.Errorf(`ent: validator failed for field "StudentDocument.source_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContentHash(); ok {
		if err := studentdocument.ContentHashValidator(v); err != nil {
			return &ValidationError{Name: "content_hash", err: fmt.Errorf(`ent: validator failed for field "StudentDocument.content_hash": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Filename(); ok {
		if err := studentdocument.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "StudentDocument.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileExt(); ok {
		if err := studentdocument.FileExtValidator(v); err != nil {
			return &ValidationError{Name: "file_ext", err: fmt.Errorf(`ent: validator failed for field "StudentDocument.file_ext": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileSize(); ok {
		if err := studentdocument.FileSizeValidator(v); err != nil {
			return &ValidationError{Name: "file_size", err: fmt.Errorf(`ent: validator failed for field "StudentDocument.file_size": %w`, err)}
		}
	}
	return nil
}

func (_u *StudentDocumentUpdateOne) sqlSave(ctx context.Context) (_node *StudentDocument, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(studentdocument.Table, studentdocument.Columns, sqlgraph.NewFieldSpec(studentdocument.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "StudentDocument.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, studentdocument.FieldID)
		for _, f := range fields {
			if !studentdocument.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != studentdocument.FieldID {
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
	if value, ok := _u.mutation.SourcePath(); ok {
		_spec.SetField(studentdocument.FieldSourcePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(studentdocument.FieldContentHash, field.TypeBytes, value)
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(studentdocument.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileExt(); ok {
		_spec.SetField(studentdocument.FieldFileExt, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileSize(); ok {
		_spec.SetField(studentdocument.FieldFileSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFileSize(); ok {
		_spec.AddField(studentdocument.FieldFileSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UploadedAt(); ok {
		_spec.SetField(studentdocument.FieldUploadedAt, field.TypeTime, value)
	}
	if _u.mutation.FormsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   studentdocument.FormsTable,
			Columns: []string{studentdocument.FormsColumn},
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
			Table:   studentdocument.FormsTable,
			Columns: []string{studentdocument.FormsColumn},
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
			Table:   studentdocument.FormsTable,
			Columns: []string{studentdocument.FormsColumn},
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
	_node = &StudentDocument{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{studentdocument.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
