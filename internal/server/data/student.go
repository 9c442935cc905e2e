package data

import (
	"gorm.io/gorm"

	"github.com/placemate/placemate/internal/server/models"
)

func CreateStudent(db *gorm.DB, student *models.Student) error {
	return add(db, student)
}

func GetStudent(db *gorm.DB, selectors ...SelectorFunc) (*models.Student, error) {
	return get[models.Student](db, selectors...)
}

func SaveStudent(db *gorm.DB, student *models.Student) error {
	return save(db, student)
}

func DeleteStudent(db *gorm.DB, id string) error {
	return delete[models.Student](db, id)
}

// ByRecoveryEmail matches a student by either of their registered recovery
// addresses.
func ByRecoveryEmail(email string) SelectorFunc {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("email = ? OR alternate_email = ?", email, email)
	}
}
