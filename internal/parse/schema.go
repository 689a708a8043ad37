package parse

import (
	"github.com/SmritaPandey/OCR-admission-forms/constants"
)

// BuildFieldMapJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map constraining vendor structured-OCR payloads. Shaped fields get
// tight patterns; free-text fields get length bounds. Nothing is required:
// a vendor payload with zero recognized fields is still a valid (empty)
// candidate.
func BuildFieldMapJSONSchema() map[string]any {
	props := map[string]any{
		constants.FieldStudentName:  nameProp(),
		constants.FieldDateOfBirth:  dateProp(),
		constants.FieldGender:       map[string]any{"type": "string", "enum": []string{"MALE", "FEMALE", "OTHER"}},
		constants.FieldCategory:     map[string]any{"type": "string", "minLength": 2, "maxLength": 20},
		constants.FieldNationality:  nameProp(),
		constants.FieldReligion:     nameProp(),
		constants.FieldAadharNumber: map[string]any{"type": "string", "pattern": `^\d{12}$`},
		constants.FieldBloodGroup:   map[string]any{"type": "string", "pattern": `^(AB|[ABO])[+-]?$`},

		constants.FieldPermanentAddress:      textProp(11, 300),
		constants.FieldCorrespondenceAddress: textProp(11, 300),
		constants.FieldPincode:               map[string]any{"type": "string", "pattern": `^\d{6}$`},
		constants.FieldCity:                  nameProp(),
		constants.FieldState:                 nameProp(),

		constants.FieldPhoneNumber:           phoneProp(),
		constants.FieldAlternatePhone:        phoneProp(),
		constants.FieldEmail:                 map[string]any{"type": "string", "pattern": `^[a-z0-9._%+-]+@[a-z0-9.-]+\.[a-z]{2,}$`},
		constants.FieldEmergencyContactName:  nameProp(),
		constants.FieldEmergencyContactPhone: phoneProp(),

		constants.FieldFatherName:       nameProp(),
		constants.FieldFatherOccupation: textProp(3, 49),
		constants.FieldFatherPhone:      phoneProp(),
		constants.FieldMotherName:       nameProp(),
		constants.FieldMotherOccupation: textProp(3, 49),
		constants.FieldMotherPhone:      phoneProp(),
		constants.FieldGuardianName:     nameProp(),
		constants.FieldGuardianRelation: textProp(3, 49),
		constants.FieldGuardianPhone:    phoneProp(),
		constants.FieldAnnualIncome:     map[string]any{"type": "string", "pattern": `^\d+(\.\d+)?$`},

		constants.FieldTenthBoard:        textProp(3, 49),
		constants.FieldTenthYear:         yearProp(),
		constants.FieldTenthPercentage:   percentProp(),
		constants.FieldTenthSchool:       textProp(3, 99),
		constants.FieldTwelfthBoard:      textProp(3, 49),
		constants.FieldTwelfthYear:       yearProp(),
		constants.FieldTwelfthPercentage: percentProp(),
		constants.FieldTwelfthSchool:     textProp(3, 99),
		constants.FieldPrevQualification: textProp(4, 99),
		constants.FieldGraduationDetails: textProp(3, 199),

		constants.FieldCourseApplied:     textProp(4, 99),
		constants.FieldApplicationNumber: map[string]any{"type": "string", "pattern": `^[A-Z0-9\-]{3,30}$`},
		constants.FieldEnrollmentNumber:  map[string]any{"type": "string", "pattern": `^[A-Z0-9\-]{3,30}$`},
		constants.FieldAdmissionDate:     dateProp(),
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           props,
	}
}

func nameProp() map[string]any {
	return map[string]any{"type": "string", "minLength": 3, "maxLength": 49}
}

func textProp(min, max int) map[string]any {
	return map[string]any{"type": "string", "minLength": min, "maxLength": max}
}

func phoneProp() map[string]any {
	return map[string]any{"type": "string", "pattern": `^\+?\d{10,15}$`}
}

func dateProp() map[string]any {
	return map[string]any{"type": "string", "minLength": 8, "maxLength": 12}
}

func yearProp() map[string]any {
	return map[string]any{"type": "string", "pattern": `^(19|20)\d{2}$`}
}

func percentProp() map[string]any {
	return map[string]any{"type": "string", "pattern": `^\d{1,3}(\.\d+)?$`}
}
