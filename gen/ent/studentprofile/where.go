// Code generated by ent, DO NOT EDIT.

package studentprofile

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/SmritaPandey/OCR-admission-forms/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldLTE(FieldID, id))
}

// StudentName applies equality check predicate on the "student_name" field. It's identical to StudentNameEQ.
func StudentName(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldEQ(FieldStudentName, v))
}

// Email applies equality check predicate on the "email" field. It's identical to EmailEQ.
func Email(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldEQ(FieldEmail, v))
}

// PhoneNumber applies equality check predicate on the "phone_number" field. It's identical to PhoneNumberEQ.
func PhoneNumber(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldEQ(FieldPhoneNumber, v))
}

// CourseApplied applies equality check predicate on the "course_applied" field. It's identical to CourseAppliedEQ.
func CourseApplied(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldEQ(FieldCourseApplied, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldEQ(FieldUpdatedAt, v))
}

// StudentNameEQ applies the EQ predicate on the "student_name" field.
func StudentNameEQ(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldEQ(FieldStudentName, v))
}

// StudentNameNEQ applies the NEQ predicate on the "student_name" field.
func StudentNameNEQ(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldNEQ(FieldStudentName, v))
}

// StudentNameIn applies the In predicate on the "student_name" field.
func StudentNameIn(vs ...string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldIn(FieldStudentName, vs...))
}

// StudentNameNotIn applies the NotIn predicate on the "student_name" field.
func StudentNameNotIn(vs ...string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldNotIn(FieldStudentName, vs...))
}

// StudentNameGT applies the GT predicate on the "student_name" field.
func StudentNameGT(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldGT(FieldStudentName, v))
}

// StudentNameGTE applies the GTE predicate on the "student_name" field.
func StudentNameGTE(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldGTE(FieldStudentName, v))
}

// StudentNameLT applies the LT predicate on the "student_name" field.
func StudentNameLT(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldLT(FieldStudentName, v))
}

// StudentNameLTE applies the LTE predicate on the "student_name" field.
func StudentNameLTE(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldLTE(FieldStudentName, v))
}

// StudentNameContains applies the Contains predicate on the "student_name" field.
func StudentNameContains(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldContains(FieldStudentName, v))
}

// StudentNameHasPrefix applies the HasPrefix predicate on the "student_name" field.
func StudentNameHasPrefix(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldHasPrefix(FieldStudentName, v))
}

// StudentNameHasSuffix applies the HasSuffix predicate on the "student_name" field.
func StudentNameHasSuffix(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldHasSuffix(FieldStudentName, v))
}

// StudentNameEqualFold applies the EqualFold predicate on the "student_name" field.
func StudentNameEqualFold(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldEqualFold(FieldStudentName, v))
}

// StudentNameContainsFold applies the ContainsFold predicate on the "student_name" field.
func StudentNameContainsFold(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldContainsFold(FieldStudentName, v))
}

// EmailEQ applies the EQ predicate on the "email" field.
func EmailEQ(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldEQ(FieldEmail, v))
}

// EmailNEQ applies the NEQ predicate on the "email" field.
func EmailNEQ(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldNEQ(FieldEmail, v))
}

// EmailIn applies the In predicate on the "email" field.
func EmailIn(vs ...string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldIn(FieldEmail, vs...))
}

// EmailNotIn applies the NotIn predicate on the "email" field.
func EmailNotIn(vs ...string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldNotIn(FieldEmail, vs...))
}

// EmailGT applies the GT predicate on the "email" field.
func EmailGT(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldGT(FieldEmail, v))
}

// EmailGTE applies the GTE predicate on the "email" field.
func EmailGTE(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldGTE(FieldEmail, v))
}

// EmailLT applies the LT predicate on the "email" field.
func EmailLT(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldLT(FieldEmail, v))
}

// EmailLTE applies the LTE predicate on the "email" field.
func EmailLTE(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldLTE(FieldEmail, v))
}

// EmailContains applies the Contains predicate on the "email" field.
func EmailContains(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldContains(FieldEmail, v))
}

// EmailHasPrefix applies the HasPrefix predicate on the "email" field.
func EmailHasPrefix(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldHasPrefix(FieldEmail, v))
}

// EmailHasSuffix applies the HasSuffix predicate on the "email" field.
func EmailHasSuffix(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldHasSuffix(FieldEmail, v))
}

// EmailIsNil applies the IsNil predicate on the "email" field.
func EmailIsNil() predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldIsNull(FieldEmail))
}

// EmailNotNil applies the NotNil predicate on the "email" field.
func EmailNotNil() predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldNotNull(FieldEmail))
}

// EmailEqualFold applies the EqualFold predicate on the "email" field.
func EmailEqualFold(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldEqualFold(FieldEmail, v))
}

// EmailContainsFold applies the ContainsFold predicate on the "email" field.
func EmailContainsFold(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldContainsFold(FieldEmail, v))
}

// PhoneNumberEQ applies the EQ predicate on the "phone_number" field.
func PhoneNumberEQ(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldEQ(FieldPhoneNumber, v))
}

// PhoneNumberNEQ applies the NEQ predicate on the "phone_number" field.
func PhoneNumberNEQ(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldNEQ(FieldPhoneNumber, v))
}

// PhoneNumberIn applies the In predicate on the "phone_number" field.
func PhoneNumberIn(vs ...string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldIn(FieldPhoneNumber, vs...))
}

// PhoneNumberNotIn applies the NotIn predicate on the "phone_number" field.
func PhoneNumberNotIn(vs ...string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldNotIn(FieldPhoneNumber, vs...))
}

// PhoneNumberGT applies the GT predicate on the "phone_number" field.
func PhoneNumberGT(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldGT(FieldPhoneNumber, v))
}

// PhoneNumberGTE applies the GTE predicate on the "phone_number" field.
func PhoneNumberGTE(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldGTE(FieldPhoneNumber, v))
}

// PhoneNumberLT applies the LT predicate on the "phone_number" field.
func PhoneNumberLT(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldLT(FieldPhoneNumber, v))
}

// PhoneNumberLTE applies the LTE predicate on the "phone_number" field.
func PhoneNumberLTE(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldLTE(FieldPhoneNumber, v))
}

// PhoneNumberContains applies the Contains predicate on the "phone_number" field.
func PhoneNumberContains(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldContains(FieldPhoneNumber, v))
}

// PhoneNumberHasPrefix applies the HasPrefix predicate on the "phone_number" field.
func PhoneNumberHasPrefix(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldHasPrefix(FieldPhoneNumber, v))
}

// PhoneNumberHasSuffix applies the HasSuffix predicate on the "phone_number" field.
func PhoneNumberHasSuffix(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldHasSuffix(FieldPhoneNumber, v))
}

// PhoneNumberIsNil applies the IsNil predicate on the "phone_number" field.
func PhoneNumberIsNil() predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldIsNull(FieldPhoneNumber))
}

// PhoneNumberNotNil applies the NotNil predicate on the "phone_number" field.
func PhoneNumberNotNil() predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldNotNull(FieldPhoneNumber))
}

// PhoneNumberEqualFold applies the EqualFold predicate on the "phone_number" field.
func PhoneNumberEqualFold(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldEqualFold(FieldPhoneNumber, v))
}

// PhoneNumberContainsFold applies the ContainsFold predicate on the "phone_number" field.
func PhoneNumberContainsFold(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldContainsFold(FieldPhoneNumber, v))
}

// CourseAppliedEQ applies the EQ predicate on the "course_applied" field.
func CourseAppliedEQ(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldEQ(FieldCourseApplied, v))
}

// CourseAppliedNEQ applies the NEQ predicate on the "course_applied" field.
func CourseAppliedNEQ(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldNEQ(FieldCourseApplied, v))
}

// CourseAppliedIn applies the In predicate on the "course_applied" field.
func CourseAppliedIn(vs ...string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldIn(FieldCourseApplied, vs...))
}

// CourseAppliedNotIn applies the NotIn predicate on the "course_applied" field.
func CourseAppliedNotIn(vs ...string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldNotIn(FieldCourseApplied, vs...))
}

// CourseAppliedGT applies the GT predicate on the "course_applied" field.
func CourseAppliedGT(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldGT(FieldCourseApplied, v))
}

// CourseAppliedGTE applies the GTE predicate on the "course_applied" field.
func CourseAppliedGTE(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldGTE(FieldCourseApplied, v))
}

// CourseAppliedLT applies the LT predicate on the "course_applied" field.
func CourseAppliedLT(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldLT(FieldCourseApplied, v))
}

// CourseAppliedLTE applies the LTE predicate on the "course_applied" field.
func CourseAppliedLTE(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldLTE(FieldCourseApplied, v))
}

// CourseAppliedContains applies the Contains predicate on the "course_applied" field.
func CourseAppliedContains(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldContains(FieldCourseApplied, v))
}

// CourseAppliedHasPrefix applies the HasPrefix predicate on the "course_applied" field.
func CourseAppliedHasPrefix(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldHasPrefix(FieldCourseApplied, v))
}

// CourseAppliedHasSuffix applies the HasSuffix predicate on the "course_applied" field.
func CourseAppliedHasSuffix(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldHasSuffix(FieldCourseApplied, v))
}

// CourseAppliedIsNil applies the IsNil predicate on the "course_applied" field.
func CourseAppliedIsNil() predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldIsNull(FieldCourseApplied))
}

// CourseAppliedNotNil applies the NotNil predicate on the "course_applied" field.
func CourseAppliedNotNil() predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldNotNull(FieldCourseApplied))
}

// CourseAppliedEqualFold applies the EqualFold predicate on the "course_applied" field.
func CourseAppliedEqualFold(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldEqualFold(FieldCourseApplied, v))
}

// CourseAppliedContainsFold applies the ContainsFold predicate on the "course_applied" field.
func CourseAppliedContainsFold(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldContainsFold(FieldCourseApplied, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasForms applies the HasEdge predicate on the "forms" edge.
func HasForms() predicate.StudentProfile {
	return predicate.StudentProfile(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, FormsTable, FormsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFormsWith applies the HasEdge predicate on the "forms" edge with a given conditions (other predicates).
func HasFormsWith(preds ...predicate.AdmissionForm) predicate.StudentProfile {
	return predicate.StudentProfile(func(s *sql.Selector) {
		step := newFormsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.StudentProfile) predicate.StudentProfile {
	return predicate.StudentProfile(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.StudentProfile) predicate.StudentProfile {
	return predicate.StudentProfile(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.StudentProfile) predicate.StudentProfile {
	return predicate.StudentProfile(sql.NotPredicates(p))
}
