package entity

import (
	"time"

	"github.com/google/uuid"
)

// StudentProfile represents a confirmed student master record, created
// when a form is verified.
type StudentProfile struct {
	ID            uuid.UUID `json:"id"`
	StudentName   string    `json:"student_name"`
	Email         *string   `json:"email,omitempty"`
	PhoneNumber   *string   `json:"phone_number,omitempty"`
	CourseApplied *string   `json:"course_applied,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
