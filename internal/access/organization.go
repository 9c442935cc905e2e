package access

import (
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/placemate/placemate/internal"
	"github.com/placemate/placemate/internal/server/data"
	"github.com/placemate/placemate/internal/server/models"
)

// LoginOrganization verifies the username and password and, on success, mints
// a new access key for the organization. The returned body is the bearer
// credential for subsequent requests.
func LoginOrganization(c *gin.Context, username, password string, sessionDuration time.Duration) (*models.Organization, *models.AccessKey, error) {
	// no auth required, this is the login endpoint
	db := GetRequestContext(c).DB

	org, err := data.GetOrganization(db, data.ByUsername(username))
	if err != nil {
		if errors.Is(err, internal.ErrNotFound) {
			return nil, nil, fmt.Errorf("%w: invalid username or password", internal.ErrUnauthorized)
		}
		return nil, nil, err
	}

	if err := bcrypt.CompareHashAndPassword(org.PasswordHash, []byte(password)); err != nil {
		return nil, nil, fmt.Errorf("%w: invalid username or password", internal.ErrUnauthorized)
	}

	key := &models.AccessKey{
		OrganizationID: org.ID,
		ExpiresAt:      time.Now().Add(sessionDuration).UTC(),
	}

	if _, err := data.CreateAccessKey(db, key); err != nil {
		return nil, nil, err
	}

	return org, key, nil
}

// Logout deletes the access key used to authenticate this request.
func Logout(c *gin.Context) error {
	rCtx := GetRequestContext(c)
	if rCtx.Authenticated.AccessKey == nil {
		return internal.ErrUnauthorized
	}
	return data.DeleteAccessKey(rCtx.DB, rCtx.Authenticated.AccessKey.ID)
}

// CurrentOrganization returns the organization that authenticated this
// request.
func CurrentOrganization(c *gin.Context) (*models.Organization, error) {
	rCtx := GetRequestContext(c)
	if rCtx.Authenticated.Organization == nil {
		return nil, internal.ErrUnauthorized
	}
	return rCtx.Authenticated.Organization, nil
}

// UpdateOrganizationPassword rotates the authenticated organization's
// password after verifying the current one, then revokes every outstanding
// access key except the one used on this request.
func UpdateOrganizationPassword(c *gin.Context, currentPassword, newPassword string) error {
	rCtx := GetRequestContext(c)
	org := rCtx.Authenticated.Organization
	if org == nil {
		return internal.ErrUnauthorized
	}

	if err := bcrypt.CompareHashAndPassword(org.PasswordHash, []byte(currentPassword)); err != nil {
		return fmt.Errorf("%w: invalid password", internal.ErrUnauthorized)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	org.PasswordHash = hash
	if err := data.SaveOrganization(rCtx.DB, org); err != nil {
		return err
	}

	return data.DeleteAccessKeysForOrganization(rCtx.DB, org.ID, rCtx.Authenticated.AccessKey.ID)
}
