package api

import (
	"time"

	"github.com/placemate/placemate/internal/validate"
)

type Student struct {
	ID             string    `json:"id"`
	StudentID      string    `json:"studentId"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	AlternateEmail string    `json:"alternateEmail,omitempty"`
	Created        time.Time `json:"created"`
	Updated        time.Time `json:"updated"`
}

type CreateStudentRequest struct {
	StudentID      string `json:"studentId"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	AlternateEmail string `json:"alternateEmail"`
	Password       string `json:"password"`
}

func (r CreateStudentRequest) ValidationRules() []validate.ValidationRule {
	return []validate.ValidationRule{
		validate.Required("studentId", r.StudentID),
		validate.Required("email", r.Email),
		validate.Email("email", r.Email),
		validate.Email("alternateEmail", r.AlternateEmail),
		validate.Required("password", r.Password),
		validate.StringRule{Name: "password", Value: r.Password, MinLength: PasswordMinLength, MaxLength: 253},
	}
}

type GetStudentRequest struct {
	ID string `uri:"id"`
}

func (r GetStudentRequest) ValidationRules() []validate.ValidationRule {
	return []validate.ValidationRule{
		validate.Required("id", r.ID),
	}
}

// UpdateStudentPasswordRequest is the profile password-change path for a
// student, verified against the current password.
type UpdateStudentPasswordRequest struct {
	ID              string `uri:"id" json:"-"`
	CurrentPassword string `json:"currentPassword"`
	Password        string `json:"password"`
}

func (r UpdateStudentPasswordRequest) ValidationRules() []validate.ValidationRule {
	return []validate.ValidationRule{
		validate.Required("id", r.ID),
		validate.Required("currentPassword", r.CurrentPassword),
		validate.Required("password", r.Password),
		validate.StringRule{Name: "password", Value: r.Password, MinLength: PasswordMinLength, MaxLength: 253},
	}
}
