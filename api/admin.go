package api

import (
	"time"

	"github.com/placemate/placemate/internal/validate"
)

type Admin struct {
	ID      string    `json:"id"`
	AdminID string    `json:"adminId"`
	Name    string    `json:"name"`
	Email   string    `json:"email"`
	Created time.Time `json:"created"`
	Updated time.Time `json:"updated"`
}

type CreateAdminRequest struct {
	AdminID  string `json:"adminId"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r CreateAdminRequest) ValidationRules() []validate.ValidationRule {
	return []validate.ValidationRule{
		validate.Required("adminId", r.AdminID),
		validate.Required("email", r.Email),
		validate.Email("email", r.Email),
		validate.Required("password", r.Password),
		validate.StringRule{Name: "password", Value: r.Password, MinLength: PasswordMinLength, MaxLength: 253},
	}
}

type GetAdminRequest struct {
	ID string `uri:"id"`
}

func (r GetAdminRequest) ValidationRules() []validate.ValidationRule {
	return []validate.ValidationRule{
		validate.Required("id", r.ID),
	}
}
