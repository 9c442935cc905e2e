package models

import (
	"github.com/placemate/placemate/api"
)

// Organization is a host company account, identified by its login username.
// The coordinator emails are the recovery addresses for the account.
type Organization struct {
	Model

	Username                  string `gorm:"uniqueIndex" validate:"required"`
	Name                      string
	CoordinatorEmail          string `validate:"required"`
	CoordinatorAlternateEmail string
	PasswordHash              []byte `validate:"required"`
}

func (o *Organization) ToAPI() *api.Organization {
	return &api.Organization{
		ID:                        o.ID,
		Username:                  o.Username,
		Name:                      o.Name,
		CoordinatorEmail:          o.CoordinatorEmail,
		CoordinatorAlternateEmail: o.CoordinatorAlternateEmail,
		Created:                   o.CreatedAt,
		Updated:                   o.UpdatedAt,
	}
}
