// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/SmritaPandey/OCR-admission-forms/gen/ent/studentprofile"
	"github.com/google/uuid"
)

// StudentProfile is the model entity for the StudentProfile schema.
type StudentProfile struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// StudentName holds the value of the "student_name" field.
	StudentName string `json:"student_name,omitempty"`
	// Email holds the value of the "email" field.
	Email *string `json:"email,omitempty"`
	// PhoneNumber holds the value of the "phone_number" field.
	PhoneNumber *string `json:"phone_number,omitempty"`
	// CourseApplied holds the value of the "course_applied" field.
	CourseApplied *string `json:"course_applied,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the StudentProfileQuery when eager-loading is set.
	Edges        StudentProfileEdges `json:"edges"`
	selectValues sql.SelectValues
}

// StudentProfileEdges holds the relations/edges for other nodes in the graph.
type StudentProfileEdges struct {
	// Forms holds the value of the forms edge.
	Forms []*AdmissionForm `json:"forms,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// FormsOrErr returns the Forms value or an error if the edge
// was not loaded in eager-loading.
func (e StudentProfileEdges) FormsOrErr() ([]*AdmissionForm, error) {
	if e.loadedTypes[0] {
		return e.Forms, nil
	}
	return nil, &NotLoadedError{edge: "forms"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*StudentProfile) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case studentprofile.FieldStudentName, studentprofile.FieldEmail, studentprofile.FieldPhoneNumber, studentprofile.FieldCourseApplied:
			values[i] = new(sql.NullString)
		case studentprofile.FieldCreatedAt, studentprofile.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case studentprofile.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the StudentProfile fields.
func (_m *StudentProfile) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case studentprofile.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case studentprofile.FieldStudentName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field student_name", values[i])
			} else if value.Valid {
				_m.StudentName = value.String
			}
		case studentprofile.FieldEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field email", values[i])
			} else if value.Valid {
				_m.Email = new(string)
				*_m.Email = value.String
			}
		case studentprofile.FieldPhoneNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field phone_number", values[i])
			} else if value.Valid {
				_m.PhoneNumber = new(string)
				*_m.PhoneNumber = value.String
			}
		case studentprofile.FieldCourseApplied:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field course_applied", values[i])
			} else if value.Valid {
				_m.CourseApplied = new(string)
				*_m.CourseApplied = value.String
			}
		case studentprofile.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case studentprofile.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the StudentProfile.
// This includes values selected through modifiers, order, etc.
func (_m *StudentProfile) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryForms queries the "forms" edge of the StudentProfile entity.
func (_m *StudentProfile) QueryForms() *AdmissionFormQuery {
	return NewStudentProfileClient(_m.config).QueryForms(_m)
}

// Update returns a builder for updating this StudentProfile.
// Note that you need to call StudentProfile.Unwrap() before calling this method if this StudentProfile
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *StudentProfile) Update() *StudentProfileUpdateOne {
	return NewStudentProfileClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the StudentProfile entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *StudentProfile) Unwrap() *StudentProfile {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: StudentProfile is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *StudentProfile) String() string {
	var builder strings.Builder
	builder.WriteString("StudentProfile(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("student_name=")
	builder.WriteString(_m.StudentName)
	builder.WriteString(", ")
	if v := _m.Email; v != nil {
		builder.WriteString("email=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.PhoneNumber; v != nil {
		builder.WriteString("phone_number=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.CourseApplied; v != nil {
		builder.WriteString("course_applied=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// StudentProfiles is a parsable slice of StudentProfile.
type StudentProfiles []*StudentProfile
