// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/SmritaPandey/OCR-admission-forms/gen/ent/studentdocument"
	"github.com/google/uuid"
)

// StudentDocument is the model entity for the StudentDocument schema.
type StudentDocument struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// SourcePath holds the value of the "source_path" field.
	SourcePath string `json:"source_path,omitempty"`
	// ContentHash holds the value of the "content_hash" field.
	ContentHash []byte `json:"content_hash,omitempty"`
	// Filename holds the value of the "filename" field.
	Filename string `json:"filename,omitempty"`
	// FileExt holds the value of the "file_ext" field.
	FileExt string `json:"file_ext,omitempty"`
	// FileSize holds the value of the "file_size" field.
	FileSize int `json:"file_size,omitempty"`
	// UploadedAt holds the value of the "uploaded_at" field.
	UploadedAt time.Time `json:"uploaded_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the StudentDocumentQuery when eager-loading is set.
	Edges        StudentDocumentEdges `json:"edges"`
	selectValues sql.SelectValues
}

// StudentDocumentEdges holds the relations/edges for other nodes in the graph.
type StudentDocumentEdges struct {
	// Forms holds the value of the forms edge.
	Forms []*AdmissionForm `json:"forms,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// FormsOrErr returns the Forms value or an error if the edge
// was not loaded in eager-loading.
func (e StudentDocumentEdges) FormsOrErr() ([]*AdmissionForm, error) {
	if e.loadedTypes[0] {
		return e.Forms, nil
	}
	return nil, &NotLoadedError{edge: "forms"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*StudentDocument) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case studentdocument.FieldContentHash:
			values[i] = new([]byte)
		case studentdocument.FieldFileSize:
			values[i] = new(sql.NullInt64)
		case studentdocument.FieldSourcePath, studentdocument.FieldFilename, studentdocument.FieldFileExt:
			values[i] = new(sql.NullString)
		case studentdocument.FieldUploadedAt:
			values[i] = new(sql.NullTime)
		case studentdocument.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the StudentDocument fields.
func (_m *StudentDocument) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case studentdocument.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case studentdocument.FieldSourcePath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_path", values[i])
			} else if value.Valid {
				_m.SourcePath = value.String
			}
		case studentdocument.FieldContentHash:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field content_hash", values[i])
			} else if value != nil {
				_m.ContentHash = *value
			}
		case studentdocument.FieldFilename:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field filename", values[i])
			} else if value.Valid {
				_m.Filename = value.String
			}
		case studentdocument.FieldFileExt:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field file_ext", values[i])
			} else if value.Valid {
				_m.FileExt = value.String
			}
		case studentdocument.FieldFileSize:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field file_size", values[i])
			} else if value.Valid {
				_m.FileSize = int(value.Int64)
			}
		case studentdocument.FieldUploadedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field uploaded_at", values[i])
			} else if value.Valid {
				_m.UploadedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the StudentDocument.
// This includes values selected through modifiers, order, etc.
func (_m *StudentDocument) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryForms queries the "forms" edge of the StudentDocument entity.
func (_m *StudentDocument) QueryForms() *AdmissionFormQuery {
	return NewStudentDocumentClient(_m.config).QueryForms(_m)
}

// Update returns a builder for updating this StudentDocument.
// Note that you need to call StudentDocument.Unwrap() before calling this method if this StudentDocument
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *StudentDocument) Update() *StudentDocumentUpdateOne {
	return NewStudentDocumentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the StudentDocument entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *StudentDocument) Unwrap() *StudentDocument {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: StudentDocument is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *StudentDocument) String() string {
	var builder strings.Builder
	builder.WriteString("StudentDocument(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("source_path=")
	builder.WriteString(_m.SourcePath)
	builder.WriteString(", ")
	builder.WriteString("content_hash=")
	builder.WriteString(fmt.Sprintf("%v", _m.ContentHash))
	builder.WriteString(", ")
	builder.WriteString("filename=")
	builder.WriteString(_m.Filename)
	builder.WriteString(", ")
	builder.WriteString("file_ext=")
	builder.WriteString(_m.FileExt)
	builder.WriteString(", ")
	builder.WriteString("file_size=")
	builder.WriteString(fmt.Sprintf("%v", _m.FileSize))
	builder.WriteString(", ")
	builder.WriteString("uploaded_at=")
	builder.WriteString(_m.UploadedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// StudentDocuments is a parsable slice of StudentDocument.
type StudentDocuments []*StudentDocument
