package access

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/placemate/placemate/internal"
	"github.com/placemate/placemate/internal/server/data"
	"github.com/placemate/placemate/internal/server/models"
)

// CreateStudent registers a new student account with the given password.
func CreateStudent(c *gin.Context, student *models.Student, password string) error {
	db := GetRequestContext(c).DB

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	student.PasswordHash = hash

	return data.CreateStudent(db, student)
}

func GetStudent(c *gin.Context, id string) (*models.Student, error) {
	db := GetRequestContext(c).DB
	return data.GetStudent(db, data.ByID(id))
}

// UpdateStudentPassword rotates a student's password after verifying the
// current one.
func UpdateStudentPassword(c *gin.Context, id, currentPassword, newPassword string) error {
	db := GetRequestContext(c).DB

	student, err := data.GetStudent(db, data.ByID(id))
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword(student.PasswordHash, []byte(currentPassword)); err != nil {
		return fmt.Errorf("%w: invalid password", internal.ErrUnauthorized)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	student.PasswordHash = hash
	return data.SaveStudent(db, student)
}

// CreateCoordinator registers a new placement coordinator account.
func CreateCoordinator(c *gin.Context, coordinator *models.Coordinator, password string) error {
	db := GetRequestContext(c).DB

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	coordinator.PasswordHash = hash

	return data.CreateCoordinator(db, coordinator)
}

func GetCoordinator(c *gin.Context, id string) (*models.Coordinator, error) {
	db := GetRequestContext(c).DB
	return data.GetCoordinator(db, data.ByID(id))
}

// CreateOrganization registers a new organization account.
func CreateOrganization(c *gin.Context, org *models.Organization, password string) error {
	db := GetRequestContext(c).DB

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	org.PasswordHash = hash

	return data.CreateOrganization(db, org)
}

func GetOrganization(c *gin.Context, id string) (*models.Organization, error) {
	db := GetRequestContext(c).DB
	return data.GetOrganization(db, data.ByID(id))
}
