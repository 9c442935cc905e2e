package models

import (
	"time"
)

var (
	AccessKeyKeyLength    = 10 // the length of the ID used to look up the access key
	AccessKeySecretLength = 24 // the length of the secret used to validate an access key
)

// AccessKey is an opaque bearer credential presented by an organization as
// proof of authentication. Only the sha256 checksum of the secret is stored.
type AccessKey struct {
	Model

	OrganizationID string `gorm:"index" validate:"required"`
	Name           string

	ExpiresAt time.Time

	KeyID          string `gorm:"uniqueIndex"`
	Secret         string `gorm:"-"`
	SecretChecksum []byte
}

// Token returns the value the client presents on requests. Secret is only
// populated when the key is first created, so Token is only available then.
func (ak *AccessKey) Token() string {
	if len(ak.Secret) == 0 {
		return ""
	}
	return ak.KeyID + "." + ak.Secret
}
