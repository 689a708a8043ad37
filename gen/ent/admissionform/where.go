// Code generated by ent, DO NOT EDIT.

package admissionform

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/SmritaPandey/OCR-admission-forms/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldLTE(FieldID, id))
}

// DocumentID applies equality check predicate on the "document_id" field. It's identical to DocumentIDEQ.
func DocumentID(v uuid.UUID) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldEQ(FieldDocumentID, v))
}

// ProfileID applies equality check predicate on the "profile_id" field. It's identical to ProfileIDEQ.
func ProfileID(v uuid.UUID) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldEQ(FieldProfileID, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldEQ(FieldStatus, v))
}

// StudentName applies equality check predicate on the "student_name" field. It's identical to StudentNameEQ.
func StudentName(v string) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldEQ(FieldStudentName, v))
}

// Email applies equality check predicate on the "email" field. It's identical to EmailEQ.
func Email(v string) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldEQ(FieldEmail, v))
}

// PhoneNumber applies equality check predicate on the "phone_number" field. It's identical to PhoneNumberEQ.
func PhoneNumber(v string) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldEQ(FieldPhoneNumber, v))
}

// CourseApplied applies equality check predicate on the "course_applied" field. It's identical to CourseAppliedEQ.
func CourseApplied(v string) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldEQ(FieldCourseApplied, v))
}

// OcrText applies equality check predicate on the "ocr_text" field. It's identical to OcrTextEQ.
func OcrText(v string) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldEQ(FieldOcrText, v))
}

// OcrConfidence applies equality check predicate on the "ocr_confidence" field. It's identical to OcrConfidenceEQ.
func OcrConfidence(v float32) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldEQ(FieldOcrConfidence, v))
}

// NeedsReview applies equality check predicate on the "needs_review" field. It's identical to NeedsReviewEQ.
func NeedsReview(v bool) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldEQ(FieldNeedsReview, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldEQ(FieldErrorMessage, v))
}

// VerifiedAt applies equality check predicate on the "verified_at" field. It's identical to VerifiedAtEQ.
func VerifiedAt(v time.Time) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldEQ(FieldVerifiedAt, v))
}

// VerifiedBy applies equality check predicate on the "verified_by" field. It's identical to VerifiedByEQ.
func VerifiedBy(v string) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldEQ(FieldVerifiedBy, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldEQ(FieldUpdatedAt, v))
}

// DocumentIDEQ applies the EQ predicate on the "document_id" field.
func DocumentIDEQ(v uuid.UUID) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldEQ(FieldDocumentID, v))
}

// DocumentIDNEQ applies the NEQ predicate on the "document_id" field.
func DocumentIDNEQ(v uuid.UUID) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldNEQ(FieldDocumentID, v))
}

// DocumentIDIn applies the In predicate on the "document_id" field.
func DocumentIDIn(vs ...uuid.UUID) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldIn(FieldDocumentID, vs...))
}

// DocumentIDNotIn applies the NotIn predicate on the "document_id" field.
func DocumentIDNotIn(vs ...uuid.UUID) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldNotIn(FieldDocumentID, vs...))
}

// ProfileIDEQ applies the EQ predicate on the "profile_id" field.
func ProfileIDEQ(v uuid.UUID) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldEQ(FieldProfileID, v))
}

// ProfileIDNEQ applies the NEQ predicate on the "profile_id" field.
func ProfileIDNEQ(v uuid.UUID) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldNEQ(FieldProfileID, v))
}

// ProfileIDIn applies the In predicate on the "profile_id" field.
func ProfileIDIn(vs ...uuid.UUID) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldIn(FieldProfileID, vs...))
}

// ProfileIDNotIn applies the NotIn predicate on the "profile_id" field.
func ProfileIDNotIn(vs ...uuid.UUID) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldNotIn(FieldProfileID, vs...))
}

// ProfileIDIsNil applies the IsNil predicate on the "profile_id" field.
func ProfileIDIsNil() predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldIsNull(FieldProfileID))
}

// ProfileIDNotNil applies the NotNil predicate on the "profile_id" field.
func ProfileIDNotNil() predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldNotNull(FieldProfileID))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldContainsFold(FieldStatus, v))
}

// AdditionalInfoIsNil applies the IsNil predicate on the "additional_info" field.
func AdditionalInfoIsNil() predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldIsNull(FieldAdditionalInfo))
}

// AdditionalInfoNotNil applies the NotNil predicate on the "additional_info" field.
func AdditionalInfoNotNil() predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldNotNull(FieldAdditionalInfo))
}

// StudentNameEQ applies the EQ predicate on the "student_name" field.
func StudentNameEQ(v string) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldEQ(FieldStudentName, v))
}

// StudentNameNEQ applies the NEQ predicate on the "student_name" field.
func StudentNameNEQ(v string) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldNEQ(FieldStudentName, v))
}

// StudentNameIn applies the In predicate on the "student_name" field.
func StudentNameIn(vs ...string) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldIn(FieldStudentName, vs...))
}

// StudentNameNotIn applies the NotIn predicate on the "student_name" field.
func StudentNameNotIn(vs ...string) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldNotIn(FieldStudentName, vs...))
}

// StudentNameGT applies the GT predicate on the "student_name" field.
func StudentNameGT(v string) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldGT(FieldStudentName, v))
}

// StudentNameGTE applies the GTE predicate on the "student_name" field.
func StudentNameGTE(v string) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldGTE(FieldStudentName, v))
}

// StudentNameLT applies the LT predicate on the "student_name" field.
func StudentNameLT(v string) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldLT(FieldStudentName, v))
}

// StudentNameLTE applies the LTE predicate on the "student_name" field.
func StudentNameLTE(v string) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldLTE(FieldStudentName, v))
}

// StudentNameContains applies the Contains predicate on the "student_name" field.
func StudentNameContains(v string) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldContains(FieldStudentName, v))
}

// StudentNameHasPrefix applies the HasPrefix predicate on the "student_name" field.
func StudentNameHasPrefix(v string) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldHasPrefix(FieldStudentName, v))
}

// StudentNameHasSuffix applies the HasSuffix predicate on the "student_name" field.
func StudentNameHasSuffix(v string) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldHasSuffix(FieldStudentName, v))
}

// StudentNameIsNil applies the IsNil predicate on the "student_name" field.
func StudentNameIsNil() predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldIsNull(FieldStudentName))
}

// StudentNameNotNil applies the NotNil predicate on the "student_name" field.
func StudentNameNotNil() predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldNotNull(FieldStudentName))
}

// StudentNameEqualFold applies the EqualFold predicate on the "student_name" field.
func StudentNameEqualFold(v string) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldEqualFold(FieldStudentName, v))
}

// StudentNameContainsFold applies the ContainsFold predicate on the "student_name" field.
func StudentNameContainsFold(v string) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldContainsFold(FieldStudentName, v))
}

// EmailEQ applies the EQ predicate on the "email" field.
func EmailEQ(v string) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldEQ(FieldEmail, v))
}

// EmailNEQ applies the NEQ predicate on the "email" field.
func EmailNEQ(v string) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldNEQ(FieldEmail, v))
}

// EmailIn applies the In predicate on the "email" field.
func EmailIn(vs ...string) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldIn(FieldEmail, vs...))
}

// EmailNotIn applies the NotIn predicate on the "email" field.
func EmailNotIn(vs ...string) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldNotIn(FieldEmail, vs...))
}

// EmailGT applies the GT predicate on the "email" field.
func EmailGT(v string) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldGT(FieldEmail, v))
}

// EmailGTE applies the GTE predicate on the "email" field.
func EmailGTE(v string) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldGTE(FieldEmail, v))
}

// EmailLT applies the LT predicate on the "email" field.
func EmailLT(v string) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldLT(FieldEmail, v))
}

// EmailLTE applies the LTE predicate on the "email" field.
func EmailLTE(v string) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldLTE(FieldEmail, v))
}

// EmailContains applies the Contains predicate on the "email" field.
func EmailContains(v string) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldContains(FieldEmail, v))
}

// EmailHasPrefix applies the HasPrefix predicate on the "email" field.
func EmailHasPrefix(v string) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldHasPrefix(FieldEmail, v))
}

// EmailHasSuffix applies the HasSuffix predicate on the "email" field.
func EmailHasSuffix(v string) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldHasSuffix(FieldEmail, v))
}

// EmailIsNil applies the IsNil predicate on the "email" field.
func EmailIsNil() predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldIsNull(FieldEmail))
}

// EmailNotNil applies the NotNil predicate on the "email" field.
func EmailNotNil() predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldNotNull(FieldEmail))
}

// EmailEqualFold applies the EqualFold predicate on the "email" field.
func EmailEqualFold(v string) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldEqualFold(FieldEmail, v))
}

// EmailContainsFold applies the ContainsFold predicate on the "email" field.
func EmailContainsFold(v string) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldContainsFold(FieldEmail, v))
}

// PhoneNumberEQ applies the EQ predicate on the "phone_number" field.
func PhoneNumberEQ(v string) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldEQ(FieldPhoneNumber, v))
}

// PhoneNumberNEQ applies the NEQ predicate on the "phone_number" field.
func PhoneNumberNEQ(v string) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldNEQ(FieldPhoneNumber, v))
}

// PhoneNumberIn applies the In predicate on the "phone_number" field.
func PhoneNumberIn(vs ...string) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldIn(FieldPhoneNumber, vs...))
}

// PhoneNumberNotIn applies the NotIn predicate on the "phone_number" field.
func PhoneNumberNotIn(vs ...string) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldNotIn(FieldPhoneNumber, vs...))
}

// PhoneNumberGT applies the GT predicate on the "phone_number" field.
func PhoneNumberGT(v string) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldGT(FieldPhoneNumber, v))
}

// PhoneNumberGTE applies the GTE predicate on the "phone_number" field.
func PhoneNumberGTE(v string) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldGTE(FieldPhoneNumber, v))
}

// PhoneNumberLT applies the LT predicate on the "phone_number" field.
func PhoneNumberLT(v string) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldLT(FieldPhoneNumber, v))
}

// PhoneNumberLTE applies the LTE predicate on the "phone_number" field.
func PhoneNumberLTE(v string) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldLTE(FieldPhoneNumber, v))
}

// PhoneNumberContains applies the Contains predicate on the "phone_number" field.
func PhoneNumberContains(v string) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldContains(FieldPhoneNumber, v))
}

// PhoneNumberHasPrefix applies the HasPrefix predicate on the "phone_number" field.
func PhoneNumberHasPrefix(v string) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldHasPrefix(FieldPhoneNumber, v))
}

// PhoneNumberHasSuffix applies the HasSuffix predicate on the "phone_number" field.
func PhoneNumberHasSuffix(v string) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldHasSuffix(FieldPhoneNumber, v))
}

// PhoneNumberIsNil applies the IsNil predicate on the "phone_number" field.
func PhoneNumberIsNil() predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldIsNull(FieldPhoneNumber))
}

// PhoneNumberNotNil applies the NotNil predicate on the "phone_number" field.
func PhoneNumberNotNil() predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldNotNull(FieldPhoneNumber))
}

// PhoneNumberEqualFold applies the EqualFold predicate on the "phone_number" field.
func PhoneNumberEqualFold(v string) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldEqualFold(FieldPhoneNumber, v))
}

// PhoneNumberContainsFold applies the ContainsFold predicate on the "phone_number" field.
func PhoneNumberContainsFold(v string) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldContainsFold(FieldPhoneNumber, v))
}

// CourseAppliedEQ applies the EQ predicate on the "course_applied" field.
func CourseAppliedEQ(v string) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldEQ(FieldCourseApplied, v))
}

// CourseAppliedNEQ applies the NEQ predicate on the "course_applied" field.
func CourseAppliedNEQ(v string) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldNEQ(FieldCourseApplied, v))
}

// CourseAppliedIn applies the In predicate on the "course_applied" field.
func CourseAppliedIn(vs ...string) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldIn(FieldCourseApplied, vs...))
}

// CourseAppliedNotIn applies the NotIn predicate on the "course_applied" field.
func CourseAppliedNotIn(vs ...string) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldNotIn(FieldCourseApplied, vs...))
}

// CourseAppliedGT applies the GT predicate on the "course_applied" field.
func CourseAppliedGT(v string) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldGT(FieldCourseApplied, v))
}

// CourseAppliedGTE applies the GTE predicate on the "course_applied" field.
func CourseAppliedGTE(v string) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldGTE(FieldCourseApplied, v))
}

// CourseAppliedLT applies the LT predicate on the "course_applied" field.
func CourseAppliedLT(v string) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldLT(FieldCourseApplied, v))
}

// CourseAppliedLTE applies the LTE predicate on the "course_applied" field.
func CourseAppliedLTE(v string) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldLTE(FieldCourseApplied, v))
}

// CourseAppliedContains applies the Contains predicate on the "course_applied" field.
func CourseAppliedContains(v string) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldContains(FieldCourseApplied, v))
}

// CourseAppliedHasPrefix applies the HasPrefix predicate on the "course_applied" field.
func CourseAppliedHasPrefix(v string) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldHasPrefix(FieldCourseApplied, v))
}

// CourseAppliedHasSuffix applies the HasSuffix predicate on the "course_applied" field.
func CourseAppliedHasSuffix(v string) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldHasSuffix(FieldCourseApplied, v))
}

// CourseAppliedIsNil applies the IsNil predicate on the "course_applied" field.
func CourseAppliedIsNil() predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldIsNull(FieldCourseApplied))
}

// CourseAppliedNotNil applies the NotNil predicate on the "course_applied" field.
func CourseAppliedNotNil() predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldNotNull(FieldCourseApplied))
}

// CourseAppliedEqualFold applies the EqualFold predicate on the "course_applied" field.
func CourseAppliedEqualFold(v string) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldEqualFold(FieldCourseApplied, v))
}

// CourseAppliedContainsFold applies the ContainsFold predicate on the "course_applied" field.
func CourseAppliedContainsFold(v string) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldContainsFold(FieldCourseApplied, v))
}

// OcrTextEQ applies the EQ predicate on the "ocr_text" field.
func OcrTextEQ(v string) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldEQ(FieldOcrText, v))
}

// OcrTextNEQ applies the NEQ predicate on the "ocr_text" field.
func OcrTextNEQ(v string) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldNEQ(FieldOcrText, v))
}

// OcrTextIn applies the In predicate on the "ocr_text" field.
func OcrTextIn(vs ...string) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldIn(FieldOcrText, vs...))
}

// OcrTextNotIn applies the NotIn predicate on the "ocr_text" field.
func OcrTextNotIn(vs ...string) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldNotIn(FieldOcrText, vs...))
}

// OcrTextGT applies the GT predicate on the "ocr_text" field.
func OcrTextGT(v string) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldGT(FieldOcrText, v))
}

// OcrTextGTE applies the GTE predicate on the "ocr_text" field.
func OcrTextGTE(v string) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldGTE(FieldOcrText, v))
}

// OcrTextLT applies the LT predicate on the "ocr_text" field.
func OcrTextLT(v string) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldLT(FieldOcrText, v))
}

// OcrTextLTE applies the LTE predicate on the "ocr_text" field.
func OcrTextLTE(v string) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldLTE(FieldOcrText, v))
}

// OcrTextContains applies the Contains predicate on the "ocr_text" field.
func OcrTextContains(v string) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldContains(FieldOcrText, v))
}

// OcrTextHasPrefix applies the HasPrefix predicate on the "ocr_text" field.
func OcrTextHasPrefix(v string) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldHasPrefix(FieldOcrText, v))
}

// OcrTextHasSuffix applies the HasSuffix predicate on the "ocr_text" field.
func OcrTextHasSuffix(v string) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldHasSuffix(FieldOcrText, v))
}

// OcrTextIsNil applies the IsNil predicate on the "ocr_text" field.
func OcrTextIsNil() predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldIsNull(FieldOcrText))
}

// OcrTextNotNil applies the NotNil predicate on the "ocr_text" field.
func OcrTextNotNil() predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldNotNull(FieldOcrText))
}

// OcrTextEqualFold applies the EqualFold predicate on the "ocr_text" field.
func OcrTextEqualFold(v string) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldEqualFold(FieldOcrText, v))
}

// OcrTextContainsFold applies the ContainsFold predicate on the "ocr_text" field.
func OcrTextContainsFold(v string) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldContainsFold(FieldOcrText, v))
}

// OcrConfidenceEQ applies the EQ predicate on the "ocr_confidence" field.
func OcrConfidenceEQ(v float32) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldEQ(FieldOcrConfidence, v))
}

// OcrConfidenceNEQ applies the NEQ predicate on the "ocr_confidence" field.
func OcrConfidenceNEQ(v float32) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldNEQ(FieldOcrConfidence, v))
}

// OcrConfidenceIn applies the In predicate on the "ocr_confidence" field.
func OcrConfidenceIn(vs ...float32) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldIn(FieldOcrConfidence, vs...))
}

// OcrConfidenceNotIn applies the NotIn predicate on the "ocr_confidence" field.
func OcrConfidenceNotIn(vs ...float32) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldNotIn(FieldOcrConfidence, vs...))
}

// OcrConfidenceGT applies the GT predicate on the "ocr_confidence" field.
func OcrConfidenceGT(v float32) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldGT(FieldOcrConfidence, v))
}

// OcrConfidenceGTE applies the GTE predicate on the "ocr_confidence" field.
func OcrConfidenceGTE(v float32) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldGTE(FieldOcrConfidence, v))
}

// OcrConfidenceLT applies the LT predicate on the "ocr_confidence" field.
func OcrConfidenceLT(v float32) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldLT(FieldOcrConfidence, v))
}

// OcrConfidenceLTE applies the LTE predicate on the "ocr_confidence" field.
func OcrConfidenceLTE(v float32) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldLTE(FieldOcrConfidence, v))
}

// OcrConfidenceIsNil applies the IsNil predicate on the "ocr_confidence" field.
func OcrConfidenceIsNil() predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldIsNull(FieldOcrConfidence))
}

// OcrConfidenceNotNil applies the NotNil predicate on the "ocr_confidence" field.
func OcrConfidenceNotNil() predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldNotNull(FieldOcrConfidence))
}

// NeedsReviewEQ applies the EQ predicate on the "needs_review" field.
func NeedsReviewEQ(v bool) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldEQ(FieldNeedsReview, v))
}

// NeedsReviewNEQ applies the NEQ predicate on the "needs_review" field.
func NeedsReviewNEQ(v bool) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldNEQ(FieldNeedsReview, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldContainsFold(FieldErrorMessage, v))
}

// VerifiedAtEQ applies the EQ predicate on the "verified_at" field.
func VerifiedAtEQ(v time.Time) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldEQ(FieldVerifiedAt, v))
}

// VerifiedAtNEQ applies the NEQ predicate on the "verified_at" field.
func VerifiedAtNEQ(v time.Time) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldNEQ(FieldVerifiedAt, v))
}

// VerifiedAtIn applies the In predicate on the "verified_at" field.
func VerifiedAtIn(vs ...time.Time) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldIn(FieldVerifiedAt, vs...))
}

// VerifiedAtNotIn applies the NotIn predicate on the "verified_at" field.
func VerifiedAtNotIn(vs ...time.Time) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldNotIn(FieldVerifiedAt, vs...))
}

// VerifiedAtGT applies the GT predicate on the "verified_at" field.
func VerifiedAtGT(v time.Time) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldGT(FieldVerifiedAt, v))
}

// VerifiedAtGTE applies the GTE predicate on the "verified_at" field.
func VerifiedAtGTE(v time.Time) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldGTE(FieldVerifiedAt, v))
}

// VerifiedAtLT applies the LT predicate on the "verified_at" field.
func VerifiedAtLT(v time.Time) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldLT(FieldVerifiedAt, v))
}

// VerifiedAtLTE applies the LTE predicate on the "verified_at" field.
func VerifiedAtLTE(v time.Time) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldLTE(FieldVerifiedAt, v))
}

// VerifiedAtIsNil applies the IsNil predicate on the "verified_at" field.
func VerifiedAtIsNil() predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldIsNull(FieldVerifiedAt))
}

// VerifiedAtNotNil applies the NotNil predicate on the "verified_at" field.
func VerifiedAtNotNil() predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldNotNull(FieldVerifiedAt))
}

// VerifiedByEQ applies the EQ predicate on the "verified_by" field.
func VerifiedByEQ(v string) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldEQ(FieldVerifiedBy, v))
}

// VerifiedByNEQ applies the NEQ predicate on the "verified_by" field.
func VerifiedByNEQ(v string) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldNEQ(FieldVerifiedBy, v))
}

// VerifiedByIn applies the In predicate on the "verified_by" field.
func VerifiedByIn(vs ...string) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldIn(FieldVerifiedBy, vs...))
}

// VerifiedByNotIn applies the NotIn predicate on the "verified_by" field.
func VerifiedByNotIn(vs ...string) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldNotIn(FieldVerifiedBy, vs...))
}

// VerifiedByGT applies the GT predicate on the "verified_by" field.
func VerifiedByGT(v string) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldGT(FieldVerifiedBy, v))
}

// VerifiedByGTE applies the GTE predicate on the "verified_by" field.
func VerifiedByGTE(v string) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldGTE(FieldVerifiedBy, v))
}

// VerifiedByLT applies the LT predicate on the "verified_by" field.
func VerifiedByLT(v string) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldLT(FieldVerifiedBy, v))
}

// VerifiedByLTE applies the LTE predicate on the "verified_by" field.
func VerifiedByLTE(v string) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldLTE(FieldVerifiedBy, v))
}

// VerifiedByContains applies the Contains predicate on the "verified_by" field.
func VerifiedByContains(v string) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldContains(FieldVerifiedBy, v))
}

// VerifiedByHasPrefix applies the HasPrefix predicate on the "verified_by" field.
func VerifiedByHasPrefix(v string) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldHasPrefix(FieldVerifiedBy, v))
}

// VerifiedByHasSuffix applies the HasSuffix predicate on the "verified_by" field.
func VerifiedByHasSuffix(v string) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldHasSuffix(FieldVerifiedBy, v))
}

// VerifiedByIsNil applies the IsNil predicate on the "verified_by" field.
func VerifiedByIsNil() predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldIsNull(FieldVerifiedBy))
}

// VerifiedByNotNil applies the NotNil predicate on the "verified_by" field.
func VerifiedByNotNil() predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldNotNull(FieldVerifiedBy))
}

// VerifiedByEqualFold applies the EqualFold predicate on the "verified_by" field.
func VerifiedByEqualFold(v string) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldEqualFold(FieldVerifiedBy, v))
}

// VerifiedByContainsFold applies the ContainsFold predicate on the "verified_by" field.
func VerifiedByContainsFold(v string) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldContainsFold(FieldVerifiedBy, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasDocument applies the HasEdge predicate on the "document" edge.
func HasDocument() predicate.AdmissionForm {
	return predicate.AdmissionForm(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, DocumentTable, DocumentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDocumentWith applies the HasEdge predicate on the "document" edge with a given conditions (other predicates).
func HasDocumentWith(preds ...predicate.StudentDocument) predicate.AdmissionForm {
	return predicate.AdmissionForm(func(s *sql.Selector) {
		step := newDocumentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasProfile applies the HasEdge predicate on the "profile" edge.
func HasProfile() predicate.AdmissionForm {
	return predicate.AdmissionForm(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ProfileTable, ProfileColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProfileWith applies the HasEdge predicate on the "profile" edge with a given conditions (other predicates).
func HasProfileWith(preds ...predicate.StudentProfile) predicate.AdmissionForm {
	return predicate.AdmissionForm(func(s *sql.Selector) {
		step := newProfileStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AdmissionForm) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AdmissionForm) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AdmissionForm) predicate.AdmissionForm {
	return predicate.AdmissionForm(sql.NotPredicates(p))
}
