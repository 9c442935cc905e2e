package server

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/placemate/placemate/api"
	"github.com/placemate/placemate/internal"
	"github.com/placemate/placemate/internal/access"
	"github.com/placemate/placemate/internal/logging"
	"github.com/placemate/placemate/internal/server/email"
)

// ForgotPassword starts a password recovery. The pending request is stored
// before the confirmation email is sent, so a delivery failure does not lose
// the request. An email that resolves to no account is reported as not found.
func (a *API) ForgotPassword(c *gin.Context, r *api.ForgotPasswordRequest) (*api.MessageResponse, error) {
	rr, ref, err := access.PasswordResetRequest(c, r.Email)
	if err != nil {
		return nil, err
	}

	base := a.server.options.BaseURL
	data := email.ConfirmationData{
		AccountKind: string(rr.AccountKind),
		ApproveLink: fmt.Sprintf("%s/verify-reset?token=%s", base, rr.Token),
		DenyLink:    fmt.Sprintf("%s/deny-reset?token=%s", base, rr.Token),
		Expiry:      rr.ExpiresAt.Format(time.RFC1123),
	}

	if err := email.SendResetConfirmation(ref.Name, r.Email, data); err != nil {
		logging.Errorf("sending reset confirmation to %q: %s", r.Email, err)
		return nil, fmt.Errorf("sending confirmation email: %w", err)
	}

	return &api.MessageResponse{Message: "confirmation email sent"}, nil
}

// ResetStatus reports the most recently issued request for the email, with
// expiry applied.
func (a *API) ResetStatus(c *gin.Context, r *api.ResetStatusRequest) (*api.ResetStatusResponse, error) {
	rr, err := access.PasswordResetStatus(c, r.Email)
	if err != nil {
		return nil, err
	}
	return &api.ResetStatusResponse{Token: rr.Token, Status: string(rr.Status)}, nil
}

// ResetPassword commits a new password using an approved token.
func (a *API) ResetPassword(c *gin.Context, r *api.ResetPasswordRequest) (*api.MessageResponse, error) {
	if err := access.CommitPasswordReset(c, r.Token, r.Password); err != nil {
		return nil, err
	}
	return &api.MessageResponse{Message: "password updated"}, nil
}

// verifyResetHandler and denyResetHandler serve the links embedded in the
// confirmation email, so they respond with a human-readable page instead of
// JSON.
func (a *API) verifyResetHandler(c *gin.Context) {
	a.confirmResetHandler(c, access.DecisionApprove,
		"Reset approved. You may now choose a new password.")
}

func (a *API) denyResetHandler(c *gin.Context) {
	a.confirmResetHandler(c, access.DecisionDeny,
		"Reset denied. Your password has not been changed.")
}

func (a *API) confirmResetHandler(c *gin.Context, decision access.Decision, okMessage string) {
	token := c.Query("token")
	if token == "" {
		confirmationPage(c, http.StatusBadRequest, "This confirmation link is missing its token.")
		return
	}

	_, err := access.ConfirmPasswordReset(c, token, decision)

	var transitionErr access.TransitionError
	switch {
	case err == nil:
		confirmationPage(c, http.StatusOK, okMessage)
	case errors.Is(err, internal.ErrExpired):
		confirmationPage(c, http.StatusBadRequest, "This confirmation link has expired. Request a new password reset to continue.")
	case errors.Is(err, internal.ErrNotFound):
		confirmationPage(c, http.StatusNotFound, "This confirmation link is not valid.")
	case errors.As(err, &transitionErr):
		confirmationPage(c, http.StatusConflict, fmt.Sprintf("This reset request was already %s.", transitionErr.Status))
	default:
		logging.Errorf("confirm password reset: %s", err)
		confirmationPage(c, http.StatusInternalServerError, "Something went wrong. Try the link again in a moment.")
	}
}

func confirmationPage(c *gin.Context, code int, message string) {
	body := fmt.Sprintf(`<!DOCTYPE html>
<html>
  <head><title>Password Reset</title></head>
  <body style="font-family: sans-serif; max-width: 32em; margin: 4em auto;">
    <h1>Password Reset</h1>
    <p>%s</p>
  </body>
</html>
`, message)
	c.Data(code, "text/html; charset=utf-8", []byte(body))
}
