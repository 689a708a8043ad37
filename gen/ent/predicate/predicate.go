// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AdmissionForm is the predicate function for admissionform builders.
type AdmissionForm func(*sql.Selector)

// StudentDocument is the predicate function for studentdocument builders.
type StudentDocument func(*sql.Selector)

// StudentProfile is the predicate function for studentprofile builders.
type StudentProfile func(*sql.Selector)
