package parse

import "testing"

const sampleForm = `SRCC DATA FORM

Name: Jane Doe
DOB: 15/08/2005
Gender: Female
Category: OBC
Nationality: Indian
Blood Group: O+

Address: 12 Park Lane
Green Colony Sector 9
Pincode: 110016
City: New Delhi
State: Delhi

Phone: 987-654-3210
Email: jane.doe@Example.COM

Father's Name: Rajesh Kumar
Father Phone: +91 98111 22233
Mother's Name: Sunita Kumar
Guardian: Ramesh Gupta
Guardian Phone: 9822334455

10th Board: CBSE
10th Year: 2020
10th Percentage: 91.4
12th Board: CBSE
12th Year: 2022
12th Percentage: 88

Course: B.Sc Computer Science
Qualification: Senior Secondary
Application No: APP-2024-0117
`

func TestExtractFields_LabeledName(t *testing.T) {
	got := ExtractFields("some header\nName: Jane Doe\nmore text")
	if got["student_name"] != "Jane Doe" {
		t.Errorf("student_name = %q, want %q", got["student_name"], "Jane Doe")
	}
}

func TestExtractFields_EmailLowercased(t *testing.T) {
	got := ExtractFields("contact at john.doe@Example.COM for details")
	if got["email"] != "john.doe@example.com" {
		t.Errorf("email = %q, want %q", got["email"], "john.doe@example.com")
	}
}

func TestExtractFields_PhoneDigitsOnly(t *testing.T) {
	got := ExtractFields("Phone: 987-654-3210")
	if got["phone_number"] != "9876543210" {
		t.Errorf("phone_number = %q, want %q", got["phone_number"], "9876543210")
	}
}

func TestExtractFields_EmptyInput(t *testing.T) {
	if got := ExtractFields(""); len(got) != 0 {
		t.Errorf("expected empty map for empty input, got %v", got)
	}
	if got := ExtractFields("   \n\t  "); len(got) != 0 {
		t.Errorf("expected empty map for blank input, got %v", got)
	}
}

func TestExtractFields_FullForm(t *testing.T) {
	got := ExtractFields(sampleForm)

	want := map[string]string{
		"student_name":       "Jane Doe",
		"date_of_birth":      "15/08/2005",
		"gender":             "FEMALE",
		"category":           "OBC",
		"nationality":        "Indian",
		"blood_group":        "O+",
		"pincode":            "110016",
		"city":               "New Delhi",
		"state":              "Delhi",
		"phone_number":       "9876543210",
		"email":              "jane.doe@example.com",
		"father_name":        "Rajesh Kumar",
		"mother_name":        "Sunita Kumar",
		"guardian_name":      "Ramesh Gupta",
		"guardian_phone":     "9822334455",
		"tenth_board":        "CBSE",
		"tenth_year":         "2020",
		"tenth_percentage":   "91.4",
		"twelfth_board":      "CBSE",
		"twelfth_year":       "2022",
		"twelfth_percentage": "88",
		"course_applied":     "B.Sc Computer Science",
		"application_number": "APP-2024-0117",
	}
	for field, v := range want {
		if got[field] != v {
			t.Errorf("%s = %q, want %q", field, got[field], v)
		}
	}

	if got["permanent_address"] == "" {
		t.Error("expected permanent_address to be extracted")
	}
	if got["father_phone"] != "+919811122233" {
		t.Errorf("father_phone = %q, want %q", got["father_phone"], "+919811122233")
	}
}

func TestExtractFields_StandaloneCapitalizedName(t *testing.T) {
	got := ExtractFields("ADMISSION FORM\nPriya Sharma\nCourse: B.Com Honours")
	if got["student_name"] != "Priya Sharma" {
		t.Errorf("student_name = %q, want %q", got["student_name"], "Priya Sharma")
	}
}

func TestExtractFields_FirstValidatingRuleWins(t *testing.T) {
	// The labeled phone must beat the earlier bare digit run.
	got := ExtractFields("Roll 123456789012345678\nMobile: 9876543210")
	if got["phone_number"] != "9876543210" {
		t.Errorf("phone_number = %q, want labeled value %q", got["phone_number"], "9876543210")
	}
}

func TestExtractFields_RejectsImplausibleValues(t *testing.T) {
	cases := []struct {
		name  string
		text  string
		field string
	}{
		{"phone too short", "Phone: 12345", "phone_number"},
		{"name too short", "Name: Jo", "student_name"},
		{"date too short", "DOB: 1/2/99", "date_of_birth"},
		{"address too short", "Address: x", "permanent_address"},
		{"course too short", "Course: ab", "course_applied"},
		{"percentage out of range", "10th Percentage: 140", "tenth_percentage"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ExtractFields(tc.text)
			if v, ok := got[tc.field]; ok {
				t.Errorf("expected %s to be rejected, got %q", tc.field, v)
			}
		})
	}
}

func TestExtractFields_NormalizesNameCase(t *testing.T) {
	got := ExtractFields("Student Name: Jane Doe\nCity: new delhi")
	if got["city"] != "New Delhi" {
		t.Errorf("city = %q, want %q", got["city"], "New Delhi")
	}
}

func TestExtractFields_MultiLineAddress(t *testing.T) {
	text := "Address: 42 Lake View Road\nShanti Nagar\nMumbai\nPhone: 9876543210"
	got := ExtractFields(text)
	want := "42 Lake View Road, Shanti Nagar, Mumbai"
	if got["permanent_address"] != want {
		t.Errorf("permanent_address = %q, want %q", got["permanent_address"], want)
	}
}

func TestExtractFields_RaggedLabelSpacing(t *testing.T) {
	// Scans often widen the gaps between label words; multi-word labels
	// must still match across runs of spaces or tabs.
	text := "Name  of  Student: Anita Rao\n" +
		"Father's  Name: Rajesh Kumar\n" +
		"Guardian\tPhone: 9822334455\n" +
		"Blood  Group: B+"
	got := ExtractFields(text)

	want := map[string]string{
		"student_name":   "Anita Rao",
		"father_name":    "Rajesh Kumar",
		"guardian_phone": "9822334455",
		"blood_group":    "B+",
	}
	for field, v := range want {
		if got[field] != v {
			t.Errorf("%s = %q, want %q", field, got[field], v)
		}
	}
}

func TestExtractFields_DateSeparatorVariants(t *testing.T) {
	for _, tc := range []struct{ text, want string }{
		{"Date of Birth: 15/08/2005", "15/08/2005"},
		{"DOB: 15-08-2005", "15-08-2005"},
		{"Born: 15.08.2005", "15.08.2005"},
	} {
		got := ExtractFields(tc.text)
		if got["date_of_birth"] != tc.want {
			t.Errorf("date_of_birth for %q = %q, want %q", tc.text, got["date_of_birth"], tc.want)
		}
	}
}

func TestExtractFields_OnlyKnownFieldNames(t *testing.T) {
	got := ExtractFields(sampleForm)
	for name := range got {
		found := false
		for _, f := range knownFieldNames() {
			if f == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("extractor emitted unknown field %q", name)
		}
	}
}

func knownFieldNames() []string {
	names := make([]string, 0, len(recordRules))
	for _, spec := range recordRules {
		names = append(names, spec.name)
	}
	return names
}
