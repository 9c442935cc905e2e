package models

import (
	"github.com/placemate/placemate/api"
)

// Student is an internship candidate. Email and AlternateEmail are both
// recovery addresses.
type Student struct {
	Model

	StudentID      string `gorm:"uniqueIndex" validate:"required"`
	Name           string
	Email          string `gorm:"uniqueIndex" validate:"required"`
	AlternateEmail string
	PasswordHash   []byte `validate:"required"`
}

func (s *Student) ToAPI() *api.Student {
	return &api.Student{
		ID:             s.ID,
		StudentID:      s.StudentID,
		Name:           s.Name,
		Email:          s.Email,
		AlternateEmail: s.AlternateEmail,
		Created:        s.CreatedAt,
		Updated:        s.UpdatedAt,
	}
}
