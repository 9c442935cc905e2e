package models

import (
	"github.com/placemate/placemate/api"
)

// Coordinator is a placement coordinator (admin) account. Coordinators have a
// single registered recovery email.
type Coordinator struct {
	Model

	AdminID      string `gorm:"uniqueIndex" validate:"required"`
	Name         string
	Email        string `gorm:"uniqueIndex" validate:"required"`
	PasswordHash []byte `validate:"required"`
}

func (c *Coordinator) ToAPI() *api.Admin {
	return &api.Admin{
		ID:      c.ID,
		AdminID: c.AdminID,
		Name:    c.Name,
		Email:   c.Email,
		Created: c.CreatedAt,
		Updated: c.UpdatedAt,
	}
}
