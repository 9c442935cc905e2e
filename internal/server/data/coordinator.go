package data

import (
	"gorm.io/gorm"

	"github.com/placemate/placemate/internal/server/models"
)

func CreateCoordinator(db *gorm.DB, coordinator *models.Coordinator) error {
	return add(db, coordinator)
}

func GetCoordinator(db *gorm.DB, selectors ...SelectorFunc) (*models.Coordinator, error) {
	return get[models.Coordinator](db, selectors...)
}

func SaveCoordinator(db *gorm.DB, coordinator *models.Coordinator) error {
	return save(db, coordinator)
}
