package data

import (
	"testing"
	"time"

	"gorm.io/gorm"
	"gotest.tools/v3/assert"

	"github.com/placemate/placemate/internal"
	"github.com/placemate/placemate/internal/server/models"
)

func TestCreateResetRequest(t *testing.T) {
	db := setupDB(t)

	rr, err := CreateResetRequest(db, "amina@example.edu", models.AccountKindStudent)
	assert.NilError(t, err)
	assert.Assert(t, rr.Token != "")
	assert.Equal(t, len(rr.Token), models.ResetTokenLength)
	assert.Equal(t, rr.Status, models.ResetStatusPending)
	assert.Assert(t, rr.ExpiresAt.After(time.Now()))
}

func TestCreateResetRequestSupersedesPrior(t *testing.T) {
	db := setupDB(t)

	first, err := CreateResetRequest(db, "amina@example.edu", models.AccountKindStudent)
	assert.NilError(t, err)

	second, err := CreateResetRequest(db, "amina@example.edu", models.AccountKindStudent)
	assert.NilError(t, err)
	assert.Assert(t, first.Token != second.Token)

	// the superseded token no longer resolves
	_, err = GetResetRequestByToken(db, first.Token)
	assert.ErrorIs(t, err, internal.ErrNotFound)

	// the latest request is the one reported for the email
	got, err := GetResetRequestByEmail(db, "amina@example.edu")
	assert.NilError(t, err)
	assert.Equal(t, got.Token, second.Token)
}

func TestCreateResetRequestSupersedesTerminal(t *testing.T) {
	db := setupDB(t)

	first, err := CreateResetRequest(db, "amina@example.edu", models.AccountKindStudent)
	assert.NilError(t, err)

	err = TransitionResetRequest(db, first.Token, models.ResetStatusPending, models.ResetStatusDenied)
	assert.NilError(t, err)

	// a denied request does not block a fresh one
	second, err := CreateResetRequest(db, "amina@example.edu", models.AccountKindStudent)
	assert.NilError(t, err)

	got, err := GetResetRequestByEmail(db, "amina@example.edu")
	assert.NilError(t, err)
	assert.Equal(t, got.Token, second.Token)
	assert.Equal(t, got.Status, models.ResetStatusPending)
}

func TestTransitionResetRequest(t *testing.T) {
	db := setupDB(t)

	rr, err := CreateResetRequest(db, "amina@example.edu", models.AccountKindStudent)
	assert.NilError(t, err)

	err = TransitionResetRequest(db, rr.Token, models.ResetStatusPending, models.ResetStatusApproved)
	assert.NilError(t, err)

	// the same transition cannot be applied twice
	err = TransitionResetRequest(db, rr.Token, models.ResetStatusPending, models.ResetStatusDenied)
	assert.ErrorIs(t, err, ErrStatusConflict)

	got, err := GetResetRequestByToken(db, rr.Token)
	assert.NilError(t, err)
	assert.Equal(t, got.Status, models.ResetStatusApproved)
}

func TestTransitionResetRequestUnknownToken(t *testing.T) {
	db := setupDB(t)

	err := TransitionResetRequest(db, "no-such-token", models.ResetStatusPending, models.ResetStatusApproved)
	assert.ErrorIs(t, err, ErrStatusConflict)
}

func TestTransitionRejectsExpiredRequest(t *testing.T) {
	db := setupDB(t)

	rr, err := CreateResetRequest(db, "amina@example.edu", models.AccountKindStudent)
	assert.NilError(t, err)

	// the deadline passes after the caller's read, before the write
	forceExpiry(t, db, rr.Token)

	err = TransitionResetRequest(db, rr.Token, models.ResetStatusPending, models.ResetStatusApproved)
	assert.ErrorIs(t, err, ErrStatusConflict)

	// the request was never approved; the re-read materializes expired
	got, err := GetResetRequestByToken(db, rr.Token)
	assert.NilError(t, err)
	assert.Equal(t, got.Status, models.ResetStatusExpired)
}

func TestTransitionRejectsExpiredApproved(t *testing.T) {
	db := setupDB(t)

	rr, err := CreateResetRequest(db, "amina@example.edu", models.AccountKindStudent)
	assert.NilError(t, err)

	err = TransitionResetRequest(db, rr.Token, models.ResetStatusPending, models.ResetStatusApproved)
	assert.NilError(t, err)

	forceExpiry(t, db, rr.Token)

	// an approved request that ran out the clock cannot be consumed
	err = TransitionResetRequest(db, rr.Token, models.ResetStatusApproved, models.ResetStatusUsed)
	assert.ErrorIs(t, err, ErrStatusConflict)

	got, err := GetResetRequestByToken(db, rr.Token)
	assert.NilError(t, err)
	assert.Equal(t, got.Status, models.ResetStatusExpired)
}

func TestLazyExpiry(t *testing.T) {
	db := setupDB(t)

	rr, err := CreateResetRequest(db, "amina@example.edu", models.AccountKindStudent)
	assert.NilError(t, err)

	forceExpiry(t, db, rr.Token)

	// stored status is still pending until something reads the request
	var stored models.ResetRequest
	err = db.Where("token = ?", rr.Token).First(&stored).Error
	assert.NilError(t, err)
	assert.Equal(t, stored.Status, models.ResetStatusPending)

	got, err := GetResetRequestByToken(db, rr.Token)
	assert.NilError(t, err)
	assert.Equal(t, got.Status, models.ResetStatusExpired)

	// the transition was materialized, not just reported
	err = db.Where("token = ?", rr.Token).First(&stored).Error
	assert.NilError(t, err)
	assert.Equal(t, stored.Status, models.ResetStatusExpired)
}

func TestLazyExpiryOfApproved(t *testing.T) {
	db := setupDB(t)

	rr, err := CreateResetRequest(db, "amina@example.edu", models.AccountKindStudent)
	assert.NilError(t, err)

	err = TransitionResetRequest(db, rr.Token, models.ResetStatusPending, models.ResetStatusApproved)
	assert.NilError(t, err)

	forceExpiry(t, db, rr.Token)

	got, err := GetResetRequestByEmail(db, "amina@example.edu")
	assert.NilError(t, err)
	assert.Equal(t, got.Status, models.ResetStatusExpired)
}

func TestExpiryDoesNotTouchTerminal(t *testing.T) {
	db := setupDB(t)

	rr, err := CreateResetRequest(db, "amina@example.edu", models.AccountKindStudent)
	assert.NilError(t, err)

	err = TransitionResetRequest(db, rr.Token, models.ResetStatusPending, models.ResetStatusUsed)
	assert.NilError(t, err)

	forceExpiry(t, db, rr.Token)

	got, err := GetResetRequestByToken(db, rr.Token)
	assert.NilError(t, err)
	assert.Equal(t, got.Status, models.ResetStatusUsed)
}

// forceExpiry backdates the deadline so the next read must materialize the
// expired transition.
func forceExpiry(t *testing.T, db *gorm.DB, token string) {
	t.Helper()
	err := db.Model(&models.ResetRequest{}).
		Where("token = ?", token).
		Update("expires_at", time.Now().Add(-time.Minute).UTC()).Error
	assert.NilError(t, err)
}
