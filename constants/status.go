package constants

// FormStatus is the canonical lifecycle status for rows in admission_forms.
type FormStatus string

// Stable values (store these exact strings in DB).
const (
	FormStatusUploaded   FormStatus = "UPLOADED"   // file registered, no text yet
	FormStatusProcessing FormStatus = "PROCESSING" // OCR in progress
	FormStatusExtracted  FormStatus = "EXTRACTED"  // text + candidate fields available
	FormStatusVerified   FormStatus = "VERIFIED"   // operator confirmed the record
	FormStatusError      FormStatus = "ERROR"      // terminal extraction failure
)

// ValidStatuses lists every accepted FormStatus value.
var ValidStatuses = []FormStatus{
	FormStatusUploaded,
	FormStatusProcessing,
	FormStatusExtracted,
	FormStatusVerified,
	FormStatusError,
}

// IsValidStatus reports whether s is one of the stable status strings.
func IsValidStatus(s string) bool {
	for _, v := range ValidStatuses {
		if string(v) == s {
			return true
		}
	}
	return false
}
