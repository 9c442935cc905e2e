package data

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/placemate/placemate/internal/generate"
	"github.com/placemate/placemate/internal/server/models"
)

// ErrStatusConflict means a conditional status update matched no row: either
// the token is unknown or another writer moved the status first. Callers
// re-read the record to tell the two apart.
var ErrStatusConflict = fmt.Errorf("reset request status changed")

func ByToken(token string) SelectorFunc {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("token = ?", token)
	}
}

// CreateResetRequest issues a new pending recovery request for email. Any
// prior request for the same email is removed first, whatever its status, so
// at most one request is ever live per address and old tokens stop resolving.
func CreateResetRequest(db *gorm.DB, email string, kind models.AccountKind) (*models.ResetRequest, error) {
	err := db.Unscoped().Where("email = ?", email).Delete(&models.ResetRequest{}).Error
	if err != nil {
		return nil, fmt.Errorf("supersede reset requests: %w", err)
	}

	token, err := generate.CryptoRandom(models.ResetTokenLength, generate.CharsetAlphaNumeric)
	if err != nil {
		return nil, err
	}

	rr := &models.ResetRequest{
		Email:       email,
		Token:       token,
		AccountKind: kind,
		Status:      models.ResetStatusPending,
		ExpiresAt:   time.Now().Add(models.ResetRequestTTL).UTC(),
	}

	if err := add(db, rr); err != nil {
		return nil, err
	}

	return rr, nil
}

// GetResetRequestByToken looks up a request by its token. A request past its
// deadline is moved to expired before it is returned; no other code path
// observes a stale pending or approved status.
func GetResetRequestByToken(db *gorm.DB, token string) (*models.ResetRequest, error) {
	rr, err := get[models.ResetRequest](db, ByToken(token))
	if err != nil {
		return nil, err
	}
	return expireIfPast(db, rr)
}

// GetResetRequestByEmail returns the most recently issued request for email.
func GetResetRequestByEmail(db *gorm.DB, email string) (*models.ResetRequest, error) {
	rr, err := get[models.ResetRequest](db, func(db *gorm.DB) *gorm.DB {
		return db.Where("email = ?", email).Order("created_at DESC")
	})
	if err != nil {
		return nil, err
	}
	return expireIfPast(db, rr)
}

// TransitionResetRequest moves a request from one status to another as a
// single conditional update, so two near-simultaneous transitions can never
// both succeed. The first writer to leave the `from` status wins; the loser
// gets ErrStatusConflict. A request past its deadline can only move to
// expired: the deadline is part of the same conditional update, so a request
// that expires between the caller's read and this write cannot be approved
// or consumed.
func TransitionResetRequest(db *gorm.DB, token string, from, to models.ResetStatus) error {
	query := db.Model(&models.ResetRequest{}).
		Where("token = ? AND status = ?", token, from)
	if to != models.ResetStatusExpired {
		query = query.Where("expires_at > ?", time.Now().UTC())
	}

	result := query.Update("status", to)
	if result.Error != nil {
		return handleError(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrStatusConflict
	}
	return nil
}

// expireIfPast materializes the expired transition for a request whose
// deadline has passed. Expiry is evaluated lazily on access, never by a
// background sweep, so this is the only place the transition happens.
func expireIfPast(db *gorm.DB, rr *models.ResetRequest) (*models.ResetRequest, error) {
	if rr.Status.Terminal() || !rr.Expired(time.Now()) {
		return rr, nil
	}

	err := TransitionResetRequest(db, rr.Token, rr.Status, models.ResetStatusExpired)
	switch {
	case err == nil:
		rr.Status = models.ResetStatusExpired
		return rr, nil
	case errors.Is(err, ErrStatusConflict):
		// another writer moved the status first; their transition wins and
		// the fresh read reflects it
		return get[models.ResetRequest](db, ByToken(rr.Token))
	default:
		return nil, err
	}
}
