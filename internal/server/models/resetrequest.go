package models

import (
	"time"
)

// AccountKind names one of the three account stores an email can resolve to.
type AccountKind string

const (
	AccountKindStudent      AccountKind = "student"
	AccountKindAdmin        AccountKind = "admin"
	AccountKindOrganization AccountKind = "organization"
)

// ResetStatus is the state of an in-flight password recovery request.
//
//	pending -> approved -> used
//	pending -> denied
//	pending | approved -> expired
//
// denied, expired, and used are terminal.
type ResetStatus string

const (
	ResetStatusPending  ResetStatus = "pending"
	ResetStatusApproved ResetStatus = "approved"
	ResetStatusDenied   ResetStatus = "denied"
	ResetStatusExpired  ResetStatus = "expired"
	ResetStatusUsed     ResetStatus = "used"
)

// Terminal reports whether no further transition is permitted from s.
func (s ResetStatus) Terminal() bool {
	switch s {
	case ResetStatusDenied, ResetStatusExpired, ResetStatusUsed:
		return true
	}
	return false
}

const (
	// ResetTokenLength is the length of the secret emailed to the user. The
	// token is the sole capability to act on the request, so it must be
	// unguessable.
	ResetTokenLength = 24

	// ResetRequestTTL is how long a confirmation link stays valid.
	ResetRequestTTL = 10 * time.Minute
)

// ResetRequest records one password recovery attempt. At most one live
// request exists per email; issuing a new one removes all prior requests for
// that address. CreatedAt doubles as the issue timestamp.
type ResetRequest struct {
	Model

	Email       string      `gorm:"index" validate:"required"`
	Token       string      `gorm:"uniqueIndex" validate:"required"`
	AccountKind AccountKind `validate:"required"`
	Status      ResetStatus `validate:"required"`
	ExpiresAt   time.Time   `validate:"required"`
}

func (ResetRequest) IsAModel() {}

// Expired reports whether the request deadline has passed. Callers must still
// materialize the expired transition in the store before acting on it.
func (r *ResetRequest) Expired(now time.Time) bool {
	return now.After(r.ExpiresAt)
}
