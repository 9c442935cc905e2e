package data

import (
	"crypto/sha256"
	"crypto/subtle"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/placemate/placemate/internal/generate"
	"github.com/placemate/placemate/internal/server/models"
)

var (
	ErrAccessKeyExpired = fmt.Errorf("access key expired")
)

func secretChecksum(secret string) []byte {
	chksm := sha256.Sum256([]byte(secret))
	return chksm[:]
}

// CreateAccessKey stores a new key and returns the one-time body
// ("keyID.secret") presented to the client. Only the checksum of the secret
// is persisted.
func CreateAccessKey(db *gorm.DB, accessKey *models.AccessKey) (body string, err error) {
	if accessKey.OrganizationID == "" {
		return "", fmt.Errorf("organizationID is required")
	}

	if accessKey.KeyID == "" {
		accessKey.KeyID = generate.MathRandom(models.AccessKeyKeyLength, generate.CharsetAlphaNumeric)
	}

	if len(accessKey.KeyID) != models.AccessKeyKeyLength {
		return "", fmt.Errorf("invalid key length")
	}

	if accessKey.Secret == "" {
		secret, err := generate.CryptoRandom(models.AccessKeySecretLength, generate.CharsetAlphaNumeric)
		if err != nil {
			return "", err
		}

		accessKey.Secret = secret
	}

	if len(accessKey.Secret) != models.AccessKeySecretLength {
		return "", fmt.Errorf("invalid secret length")
	}

	accessKey.SecretChecksum = secretChecksum(accessKey.Secret)

	if accessKey.ExpiresAt.IsZero() {
		accessKey.ExpiresAt = time.Now().Add(time.Hour * 12).UTC()
	}

	if accessKey.Name == "" {
		accessKey.Name = fmt.Sprintf("%s-%s", accessKey.OrganizationID, accessKey.KeyID)
	}

	if err := add(db, accessKey); err != nil {
		return "", err
	}

	return accessKey.Token(), nil
}

// GetAccessKey using the keyID, which is globally unique.
func GetAccessKey(db *gorm.DB, keyID string) (*models.AccessKey, error) {
	return get[models.AccessKey](db, func(db *gorm.DB) *gorm.DB {
		return db.Where("key_id = ?", keyID)
	})
}

func DeleteAccessKey(db *gorm.DB, id string) error {
	return delete[models.AccessKey](db, id)
}

// DeleteAccessKeysForOrganization revokes every key issued to the
// organization except the ones named in exceptIDs.
func DeleteAccessKeysForOrganization(db *gorm.DB, orgID string, exceptIDs ...string) error {
	query := db.Where("organization_id = ?", orgID)
	if len(exceptIDs) > 0 {
		query = query.Where("id NOT IN (?)", exceptIDs)
	}
	return query.Delete(&models.AccessKey{}).Error
}

// ValidateAccessKey checks a bearer credential against the store and returns
// the key it resolves to.
func ValidateAccessKey(db *gorm.DB, authnKey string) (*models.AccessKey, error) {
	keyID, secret, ok := strings.Cut(authnKey, ".")
	if !ok {
		return nil, fmt.Errorf("invalid access key format")
	}

	t, err := GetAccessKey(db, keyID)
	if err != nil {
		return nil, fmt.Errorf("%w: could not get access key from database, it may not exist", err)
	}

	sum := secretChecksum(secret)

	if subtle.ConstantTimeCompare(t.SecretChecksum, sum) != 1 {
		return nil, fmt.Errorf("access key invalid secret")
	}

	if time.Now().UTC().After(t.ExpiresAt) {
		return nil, ErrAccessKeyExpired
	}

	return t, nil
}
