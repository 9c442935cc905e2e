package access

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/placemate/placemate/internal"
	"github.com/placemate/placemate/internal/logging"
	"github.com/placemate/placemate/internal/server/data"
	"github.com/placemate/placemate/internal/server/models"
)

// Decision is the outcome the user chose from the confirmation email.
type Decision string

const (
	DecisionApprove Decision = "approve"
	DecisionDeny    Decision = "deny"
)

// TransitionError reports an illegal state transition on a reset request.
// The current status is echoed so callers can see what the request actually
// is.
type TransitionError struct {
	Status  models.ResetStatus
	Require models.ResetStatus
}

func (e TransitionError) Error() string {
	return fmt.Sprintf("reset request is %s, expected %s", e.Status, e.Require)
}

func (e TransitionError) Is(other error) bool {
	// nolint:errorlint // comparing with == is correct here, the caller uses Unwrap.
	return other == internal.ErrBadRequest
}

// StaleAccountResets counts commits whose account vanished between approval
// and commit. The commit still completes (the token is consumed), but the
// condition is surfaced here and in the log instead of passing silently.
var StaleAccountResets = prometheus.NewCounter(prometheus.CounterOpts{
	Namespace: "placemate",
	Name:      "resets_stale_account_total",
	Help:      "Password reset commits whose account no longer existed.",
})

// PasswordResetRequest starts a recovery attempt for email. The email must
// resolve to one of the three account stores; internal.ErrNotFound is
// returned to the caller when it does not. The new pending request is
// persisted before this returns, so a failure to deliver the confirmation
// email afterwards leaves a valid request behind.
func PasswordResetRequest(c *gin.Context, email string) (*models.ResetRequest, *data.AccountRef, error) {
	// no auth required
	db := GetRequestContext(c).DB

	ref, err := data.ResolveAccount(db, email)
	if err != nil {
		return nil, nil, err
	}

	rr, err := data.CreateResetRequest(db, email, ref.Kind)
	if err != nil {
		return nil, nil, err
	}

	return rr, ref, nil
}

// ConfirmPasswordReset applies the user's approve or deny click. Only a
// pending, unexpired request can be confirmed, and only once: the first
// transition to leave pending wins, concurrent confirmations lose with a
// TransitionError.
func ConfirmPasswordReset(c *gin.Context, token string, decision Decision) (*models.ResetRequest, error) {
	// no auth required, the token is the capability
	db := GetRequestContext(c).DB

	rr, err := data.GetResetRequestByToken(db, token)
	if err != nil {
		return nil, err
	}

	if rr.Status == models.ResetStatusExpired {
		return nil, internal.ErrExpired
	}
	if rr.Status != models.ResetStatusPending {
		return nil, TransitionError{Status: rr.Status, Require: models.ResetStatusPending}
	}

	to := models.ResetStatusDenied
	if decision == DecisionApprove {
		to = models.ResetStatusApproved
	}

	err = data.TransitionResetRequest(db, token, models.ResetStatusPending, to)
	switch {
	case errors.Is(err, data.ErrStatusConflict):
		return nil, currentTransitionError(db, token, models.ResetStatusPending)
	case err != nil:
		return nil, err
	}

	rr.Status = to
	return rr, nil
}

// CommitPasswordReset consumes an approved request and writes the new
// password hash to the owning account. The request is claimed
// (approved -> used) before the hash write, so a double-submit of the
// password form can only succeed once.
func CommitPasswordReset(c *gin.Context, token, newPassword string) error {
	// no auth required, the token is the capability
	db := GetRequestContext(c).DB

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	rr, err := data.GetResetRequestByToken(db, token)
	if err != nil {
		return err
	}

	if rr.Status == models.ResetStatusExpired {
		return internal.ErrExpired
	}
	if rr.Status != models.ResetStatusApproved {
		return TransitionError{Status: rr.Status, Require: models.ResetStatusApproved}
	}

	err = data.TransitionResetRequest(db, token, models.ResetStatusApproved, models.ResetStatusUsed)
	switch {
	case errors.Is(err, data.ErrStatusConflict):
		return currentTransitionError(db, token, models.ResetStatusApproved)
	case err != nil:
		return err
	}

	err = data.SetAccountPassword(db, rr.AccountKind, rr.Email, hash)
	if errors.Is(err, internal.ErrNotFound) {
		// the account was deleted after the confirmation was approved. The
		// request stays used: a completed confirmation is not retried
		// against a vanished account.
		logging.Warnf("password reset for %s account %q committed but the account no longer exists", rr.AccountKind, rr.Email)
		StaleAccountResets.Inc()
		return nil
	}
	return err
}

// PasswordResetStatus returns the most recently issued request for email,
// with the expiry transition applied.
func PasswordResetStatus(c *gin.Context, email string) (*models.ResetRequest, error) {
	// no auth required
	db := GetRequestContext(c).DB
	return data.GetResetRequestByEmail(db, email)
}

// currentTransitionError re-reads a request after a lost conditional update
// and reports the status the winner left behind.
func currentTransitionError(db *gorm.DB, token string, require models.ResetStatus) error {
	rr, err := data.GetResetRequestByToken(db, token)
	if err != nil {
		return err
	}
	if rr.Status == models.ResetStatusExpired {
		return internal.ErrExpired
	}
	return TransitionError{Status: rr.Status, Require: require}
}
