package data

import (
	"gorm.io/gorm"

	"github.com/placemate/placemate/internal/server/models"
)

func CreateOrganization(db *gorm.DB, org *models.Organization) error {
	return add(db, org)
}

func GetOrganization(db *gorm.DB, selectors ...SelectorFunc) (*models.Organization, error) {
	return get[models.Organization](db, selectors...)
}

func SaveOrganization(db *gorm.DB, org *models.Organization) error {
	return save(db, org)
}

// ByCoordinatorEmail matches an organization by either of its coordinator's
// recovery addresses.
func ByCoordinatorEmail(email string) SelectorFunc {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("coordinator_email = ? OR coordinator_alternate_email = ?", email, email)
	}
}
