package api

import (
	"time"

	"github.com/placemate/placemate/internal/validate"
)

// PasswordMinLength applies uniformly to the reset-commit path and the
// profile password-change paths.
const PasswordMinLength = 8

// ForgotPasswordRequest starts a password recovery for the account owning
// the email.
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

func (r ForgotPasswordRequest) ValidationRules() []validate.ValidationRule {
	return []validate.ValidationRule{
		validate.Required("email", r.Email),
		validate.Email("email", r.Email),
	}
}

type ResetStatusRequest struct {
	Email string `uri:"email"`
}

func (r ResetStatusRequest) ValidationRules() []validate.ValidationRule {
	return []validate.ValidationRule{
		validate.Required("email", r.Email),
	}
}

// ResetStatusResponse reports the most recently issued recovery request for
// an email.
type ResetStatusResponse struct {
	Token  string `json:"token"`
	Status string `json:"status"`
}

// ResetPasswordRequest commits a new password using an approved confirmation
// token.
type ResetPasswordRequest struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

func (r ResetPasswordRequest) ValidationRules() []validate.ValidationRule {
	return []validate.ValidationRule{
		validate.Required("token", r.Token),
		validate.Required("password", r.Password),
		validate.StringRule{Name: "password", Value: r.Password, MinLength: PasswordMinLength, MaxLength: 253},
	}
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r LoginRequest) ValidationRules() []validate.ValidationRule {
	return []validate.ValidationRule{
		validate.Required("username", r.Username),
		validate.Required("password", r.Password),
	}
}

type LoginResponse struct {
	Name      string    `json:"name"`
	AccessKey string    `json:"accessKey"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// UpdatePasswordRequest changes the password of an authenticated account,
// verified against the current password.
type UpdatePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	Password        string `json:"password"`
}

func (r UpdatePasswordRequest) ValidationRules() []validate.ValidationRule {
	return []validate.ValidationRule{
		validate.Required("currentPassword", r.CurrentPassword),
		validate.Required("password", r.Password),
		validate.StringRule{Name: "password", Value: r.Password, MinLength: PasswordMinLength, MaxLength: 253},
	}
}

type EmptyRequest struct{}

func (r EmptyRequest) ValidationRules() []validate.ValidationRule {
	return nil
}

type MessageResponse struct {
	Message string `json:"message"`
}
