package data

import (
	"gorm.io/gorm"

	"github.com/placemate/placemate/internal/server/models"
)

func CreateProject(db *gorm.DB, project *models.Project) error {
	return add(db, project)
}

// GetProject looks up a single project. Callers gating on an acting
// organization must include ByOrganizationID so that one organization can
// never read another's postings.
func GetProject(db *gorm.DB, selectors ...SelectorFunc) (*models.Project, error) {
	return get[models.Project](db, selectors...)
}

func ListProjects(db *gorm.DB, selectors ...SelectorFunc) ([]models.Project, error) {
	return list[models.Project](db, selectors...)
}

func SaveProject(db *gorm.DB, project *models.Project) error {
	return save(db, project)
}

// DeleteProject removes a project scoped to the owning organization. Deleting
// an id owned by another organization affects no rows.
func DeleteProject(db *gorm.DB, orgID, id string) error {
	return db.Where("organization_id = ?", orgID).
		Delete(&models.Project{}, "id = ?", id).Error
}
