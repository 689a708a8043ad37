// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/SmritaPandey/OCR-admission-forms/gen/ent/admissionform"
	"github.com/SmritaPandey/OCR-admission-forms/gen/ent/studentdocument"
	"github.com/SmritaPandey/OCR-admission-forms/gen/ent/studentprofile"
	"github.com/google/uuid"
)

// AdmissionForm is the model entity for the AdmissionForm schema.
type AdmissionForm struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// DocumentID holds the value of the "document_id" field.
	DocumentID uuid.UUID `json:"document_id,omitempty"`
	// ProfileID holds the value of the "profile_id" field.
	ProfileID *uuid.UUID `json:"profile_id,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// Fields holds the value of the "fields" field.
	Fields map[string]string `json:"fields,omitempty"`
	// AdditionalInfo holds the value of the "additional_info" field.
	AdditionalInfo map[string]interface{} `json:"additional_info,omitempty"`
	// StudentName holds the value of the "student_name" field.
	StudentName string `json:"student_name,omitempty"`
	// Email holds the value of the "email" field.
	Email string `json:"email,omitempty"`
	// PhoneNumber holds the value of the "phone_number" field.
	PhoneNumber string `json:"phone_number,omitempty"`
	// CourseApplied holds the value of the "course_applied" field.
	CourseApplied string `json:"course_applied,omitempty"`
	// OcrText holds the value of the "ocr_text" field.
	OcrText *string `json:"ocr_text,omitempty"`
	// OcrConfidence holds the value of the "ocr_confidence" field.
	OcrConfidence *float32 `json:"ocr_confidence,omitempty"`
	// NeedsReview holds the value of the "needs_review" field.
	NeedsReview bool `json:"needs_review,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// VerifiedAt holds the value of the "verified_at" field.
	VerifiedAt *time.Time `json:"verified_at,omitempty"`
	// VerifiedBy holds the value of the "verified_by" field.
	VerifiedBy *string `json:"verified_by,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AdmissionFormQuery when eager-loading is set.
	Edges        AdmissionFormEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AdmissionFormEdges holds the relations/edges for other nodes in the graph.
type AdmissionFormEdges struct {
	// Document holds the value of the document edge.
	Document *StudentDocument `json:"document,omitempty"`
	// Profile holds the value of the profile edge.
	Profile *StudentProfile `json:"profile,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// DocumentOrErr returns the Document value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AdmissionFormEdges) DocumentOrErr() (*StudentDocument, error) {
	if e.Document != nil {
		return e.Document, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: studentdocument.Label}
	}
	return nil, &NotLoadedError{edge: "document"}
}

// ProfileOrErr returns the Profile value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AdmissionFormEdges) ProfileOrErr() (*StudentProfile, error) {
	if e.Profile != nil {
		return e.Profile, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: studentprofile.Label}
	}
	return nil, &NotLoadedError{edge: "profile"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AdmissionForm) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case admissionform.FieldProfileID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case admissionform.FieldFields, admissionform.FieldAdditionalInfo:
			values[i] = new([]byte)
		case admissionform.FieldNeedsReview:
			values[i] = new(sql.NullBool)
		case admissionform.FieldOcrConfidence:
			values[i] = new(sql.NullFloat64)
		case admissionform.FieldStatus, admissionform.FieldStudentName, admissionform.FieldEmail, admissionform.FieldPhoneNumber, admissionform.FieldCourseApplied, admissionform.FieldOcrText, admissionform.FieldErrorMessage, admissionform.FieldVerifiedBy:
			values[i] = new(sql.NullString)
		case admissionform.FieldVerifiedAt, admissionform.FieldCreatedAt, admissionform.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case admissionform.FieldID, admissionform.FieldDocumentID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AdmissionForm fields.
func (_m *AdmissionForm) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case admissionform.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case admissionform.FieldDocumentID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field document_id", values[i])
			} else if value != nil {
				_m.DocumentID = *value
			}
		case admissionform.FieldProfileID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field profile_id", values[i])
			} else if value.Valid {
				_m.ProfileID = new(uuid.UUID)
				*_m.ProfileID = *value.S.(*uuid.UUID)
			}
		case admissionform.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case admissionform.FieldFields:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field fields", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Fields); err != nil {
					return fmt.Errorf("unmarshal field fields: %w", err)
				}
			}
		case admissionform.FieldAdditionalInfo:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field additional_info", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.AdditionalInfo); err != nil {
					return fmt.Errorf("unmarshal field additional_info: %w", err)
				}
			}
		case admissionform.FieldStudentName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field student_name", values[i])
			} else if value.Valid {
				_m.StudentName = value.String
			}
		case admissionform.FieldEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field email", values[i])
			} else if value.Valid {
				_m.Email = value.String
			}
		case admissionform.FieldPhoneNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field phone_number", values[i])
			} else if value.Valid {
				_m.PhoneNumber = value.String
			}
		case admissionform.FieldCourseApplied:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field course_applied", values[i])
			} else if value.Valid {
				_m.CourseApplied = value.String
			}
		case admissionform.FieldOcrText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ocr_text", values[i])
			} else if value.Valid {
				_m.OcrText = new(string)
				*_m.OcrText = value.String
			}
		case admissionform.FieldOcrConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field ocr_confidence", values[i])
			} else if value.Valid {
				_m.OcrConfidence = new(float32)
				*_m.OcrConfidence = float32(value.Float64)
			}
		case admissionform.FieldNeedsReview:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field needs_review", values[i])
			} else if value.Valid {
				_m.NeedsReview = value.Bool
			}
		case admissionform.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case admissionform.FieldVerifiedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field verified_at", values[i])
			} else if value.Valid {
				_m.VerifiedAt = new(time.Time)
				*_m.VerifiedAt = value.Time
			}
		case admissionform.FieldVerifiedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field verified_by", values[i])
			} else if value.Valid {
				_m.VerifiedBy = new(string)
				*_m.VerifiedBy = value.String
			}
		case admissionform.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case admissionform.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the AdmissionForm.
// This includes values selected through modifiers, order, etc.
func (_m *AdmissionForm) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryDocument queries the "document" edge of the AdmissionForm entity.
func (_m *AdmissionForm) QueryDocument() *StudentDocumentQuery {
	return NewAdmissionFormClient(_m.config).QueryDocument(_m)
}

// QueryProfile queries the "profile" edge of the AdmissionForm entity.
func (_m *AdmissionForm) QueryProfile() *StudentProfileQuery {
	return NewAdmissionFormClient(_m.config).QueryProfile(_m)
}

// Update returns a builder for updating this AdmissionForm.
// Note that you need to call AdmissionForm.Unwrap() before calling this method if this AdmissionForm
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AdmissionForm) Update() *AdmissionFormUpdateOne {
	return NewAdmissionFormClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AdmissionForm entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AdmissionForm) Unwrap() *AdmissionForm {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AdmissionForm is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AdmissionForm) String() string {
	var builder strings.Builder
	builder.WriteString("AdmissionForm(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("document_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.DocumentID))
	builder.WriteString(", ")
	if v := _m.ProfileID; v != nil {
		builder.WriteString("profile_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("fields=")
	builder.WriteString(fmt.Sprintf("%v", _m.Fields))
	builder.WriteString(", ")
	builder.WriteString("additional_info=")
	builder.WriteString(fmt.Sprintf("%v", _m.AdditionalInfo))
	builder.WriteString(", ")
	builder.WriteString("student_name=")
	builder.WriteString(_m.StudentName)
	builder.WriteString(", ")
	builder.WriteString("email=")
	builder.WriteString(_m.Email)
	builder.WriteString(", ")
	builder.WriteString("phone_number=")
	builder.WriteString(_m.PhoneNumber)
	builder.WriteString(", ")
	builder.WriteString("course_applied=")
	builder.WriteString(_m.CourseApplied)
	builder.WriteString(", ")
	if v := _m.OcrText; v != nil {
		builder.WriteString("ocr_text=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.OcrConfidence; v != nil {
		builder.WriteString("ocr_confidence=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("needs_review=")
	builder.WriteString(fmt.Sprintf("%v", _m.NeedsReview))
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.VerifiedAt; v != nil {
		builder.WriteString("verified_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.VerifiedBy; v != nil {
		builder.WriteString("verified_by=")
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

// AdmissionForms is a parsable slice of AdmissionForm.
type AdmissionForms []*AdmissionForm
