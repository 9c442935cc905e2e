package api

import (
	"time"

	"github.com/placemate/placemate/internal/validate"
)

type Organization struct {
	ID                        string    `json:"id"`
	Username                  string    `json:"username"`
	Name                      string    `json:"name"`
	CoordinatorEmail          string    `json:"coordinatorEmail"`
	CoordinatorAlternateEmail string    `json:"coordinatorAlternateEmail,omitempty"`
	Created                   time.Time `json:"created"`
	Updated                   time.Time `json:"updated"`
}

type CreateOrganizationRequest struct {
	Username                  string `json:"username"`
	Name                      string `json:"name"`
	CoordinatorEmail          string `json:"coordinatorEmail"`
	CoordinatorAlternateEmail string `json:"coordinatorAlternateEmail"`
	Password                  string `json:"password"`
}

func (r CreateOrganizationRequest) ValidationRules() []validate.ValidationRule {
	return []validate.ValidationRule{
		validate.Required("username", r.Username),
		validate.StringRule{Name: "username", Value: r.Username, MinLength: 2, MaxLength: 64},
		validate.Required("coordinatorEmail", r.CoordinatorEmail),
		validate.Email("coordinatorEmail", r.CoordinatorEmail),
		validate.Email("coordinatorAlternateEmail", r.CoordinatorAlternateEmail),
		validate.Required("password", r.Password),
		validate.StringRule{Name: "password", Value: r.Password, MinLength: PasswordMinLength, MaxLength: 253},
	}
}
