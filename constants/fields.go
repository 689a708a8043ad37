package constants

// Canonical field names for the admission-form record. These are the only
// keys accepted by the merger; the extractor never emits anything else.
const (
	// Basic details
	FieldStudentName  = "student_name"
	FieldDateOfBirth  = "date_of_birth"
	FieldGender       = "gender"
	FieldCategory     = "category"
	FieldNationality  = "nationality"
	FieldReligion     = "religion"
	FieldAadharNumber = "aadhar_number"
	FieldBloodGroup   = "blood_group"

	// Address details
	FieldPermanentAddress      = "permanent_address"
	FieldCorrespondenceAddress = "correspondence_address"
	FieldPincode               = "pincode"
	FieldCity                  = "city"
	FieldState                 = "state"

	// Contact details
	FieldPhoneNumber           = "phone_number"
	FieldAlternatePhone        = "alternate_phone"
	FieldEmail                 = "email"
	FieldEmergencyContactName  = "emergency_contact_name"
	FieldEmergencyContactPhone = "emergency_contact_phone"

	// Guardian / parent details
	FieldFatherName       = "father_name"
	FieldFatherOccupation = "father_occupation"
	FieldFatherPhone      = "father_phone"
	FieldMotherName       = "mother_name"
	FieldMotherOccupation = "mother_occupation"
	FieldMotherPhone      = "mother_phone"
	FieldGuardianName     = "guardian_name"
	FieldGuardianRelation = "guardian_relation"
	FieldGuardianPhone    = "guardian_phone"
	FieldAnnualIncome     = "annual_income"

	// Educational qualifications
	FieldTenthBoard        = "tenth_board"
	FieldTenthYear         = "tenth_year"
	FieldTenthPercentage   = "tenth_percentage"
	FieldTenthSchool       = "tenth_school"
	FieldTwelfthBoard      = "twelfth_board"
	FieldTwelfthYear       = "twelfth_year"
	FieldTwelfthPercentage = "twelfth_percentage"
	FieldTwelfthSchool     = "twelfth_school"
	FieldPrevQualification = "previous_qualification"
	FieldGraduationDetails = "graduation_details"

	// Course application details
	FieldCourseApplied     = "course_applied"
	FieldApplicationNumber = "application_number"
	FieldEnrollmentNumber  = "enrollment_number"
	FieldAdmissionDate     = "admission_date"
)

// RecordFields lists every canonical field in form order.
var RecordFields = []string{
	FieldStudentName, FieldDateOfBirth, FieldGender, FieldCategory,
	FieldNationality, FieldReligion, FieldAadharNumber, FieldBloodGroup,

	FieldPermanentAddress, FieldCorrespondenceAddress, FieldPincode,
	FieldCity, FieldState,

	FieldPhoneNumber, FieldAlternatePhone, FieldEmail,
	FieldEmergencyContactName, FieldEmergencyContactPhone,

	FieldFatherName, FieldFatherOccupation, FieldFatherPhone,
	FieldMotherName, FieldMotherOccupation, FieldMotherPhone,
	FieldGuardianName, FieldGuardianRelation, FieldGuardianPhone,
	FieldAnnualIncome,

	FieldTenthBoard, FieldTenthYear, FieldTenthPercentage, FieldTenthSchool,
	FieldTwelfthBoard, FieldTwelfthYear, FieldTwelfthPercentage,
	FieldTwelfthSchool, FieldPrevQualification, FieldGraduationDetails,

	FieldCourseApplied, FieldApplicationNumber, FieldEnrollmentNumber,
	FieldAdmissionDate,
}

var recordFieldSet = func() map[string]struct{} {
	s := make(map[string]struct{}, len(RecordFields))
	for _, f := range RecordFields {
		s[f] = struct{}{}
	}
	return s
}()

// IsRecordField reports whether name belongs to the canonical field set.
func IsRecordField(name string) bool {
	_, ok := recordFieldSet[name]
	return ok
}
