package data

import (
	"testing"

	"gorm.io/gorm"
	"gotest.tools/v3/assert"

	"github.com/placemate/placemate/internal"
	"github.com/placemate/placemate/internal/server/models"
)

func createTestAccounts(t *testing.T, db *gorm.DB) {
	t.Helper()

	err := CreateStudent(db, &models.Student{
		StudentID:      "s-100",
		Name:           "Amina",
		Email:          "amina@example.edu",
		AlternateEmail: "amina@backup.example",
		PasswordHash:   []byte("x"),
	})
	assert.NilError(t, err)

	err = CreateCoordinator(db, &models.Coordinator{
		AdminID:      "a-1",
		Name:         "Coordinator",
		Email:        "coord@example.edu",
		PasswordHash: []byte("x"),
	})
	assert.NilError(t, err)

	err = CreateOrganization(db, &models.Organization{
		Username:                  "acme",
		Name:                      "Acme Corp",
		CoordinatorEmail:          "hr@acme.example",
		CoordinatorAlternateEmail: "hr-backup@acme.example",
		PasswordHash:              []byte("x"),
	})
	assert.NilError(t, err)
}

func TestResolveAccount(t *testing.T) {
	db := setupDB(t)
	createTestAccounts(t, db)

	t.Run("student by primary email", func(t *testing.T) {
		ref, err := ResolveAccount(db, "amina@example.edu")
		assert.NilError(t, err)
		assert.Equal(t, ref.Kind, models.AccountKindStudent)
		assert.Equal(t, ref.Name, "Amina")
	})

	t.Run("student by alternate email", func(t *testing.T) {
		ref, err := ResolveAccount(db, "amina@backup.example")
		assert.NilError(t, err)
		assert.Equal(t, ref.Kind, models.AccountKindStudent)
	})

	t.Run("admin", func(t *testing.T) {
		ref, err := ResolveAccount(db, "coord@example.edu")
		assert.NilError(t, err)
		assert.Equal(t, ref.Kind, models.AccountKindAdmin)
	})

	t.Run("organization by coordinator email", func(t *testing.T) {
		ref, err := ResolveAccount(db, "hr@acme.example")
		assert.NilError(t, err)
		assert.Equal(t, ref.Kind, models.AccountKindOrganization)
	})

	t.Run("organization by coordinator alternate email", func(t *testing.T) {
		ref, err := ResolveAccount(db, "hr-backup@acme.example")
		assert.NilError(t, err)
		assert.Equal(t, ref.Kind, models.AccountKindOrganization)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := ResolveAccount(db, "nobody@example.edu")
		assert.ErrorIs(t, err, internal.ErrNotFound)
	})
}

func TestResolveAccountPriorityOrder(t *testing.T) {
	db := setupDB(t)

	// the same address is registered as a student alternate email and as an
	// organization coordinator email
	err := CreateStudent(db, &models.Student{
		StudentID:      "s-200",
		Email:          "primary@example.edu",
		AlternateEmail: "shared@example.edu",
		PasswordHash:   []byte("x"),
	})
	assert.NilError(t, err)

	err = CreateOrganization(db, &models.Organization{
		Username:         "shared-org",
		CoordinatorEmail: "shared@example.edu",
		PasswordHash:     []byte("x"),
	})
	assert.NilError(t, err)

	// the student store is searched first, so the student always wins
	ref, err := ResolveAccount(db, "shared@example.edu")
	assert.NilError(t, err)
	assert.Equal(t, ref.Kind, models.AccountKindStudent)
}

func TestSetAccountPassword(t *testing.T) {
	db := setupDB(t)
	createTestAccounts(t, db)

	err := SetAccountPassword(db, models.AccountKindStudent, "amina@backup.example", []byte("new-hash"))
	assert.NilError(t, err)

	student, err := GetStudent(db, ByRecoveryEmail("amina@example.edu"))
	assert.NilError(t, err)
	assert.DeepEqual(t, student.PasswordHash, []byte("new-hash"))

	err = SetAccountPassword(db, models.AccountKindOrganization, "hr@acme.example", []byte("org-hash"))
	assert.NilError(t, err)

	org, err := GetOrganization(db, ByUsername("acme"))
	assert.NilError(t, err)
	assert.DeepEqual(t, org.PasswordHash, []byte("org-hash"))
}

func TestSetAccountPasswordVanishedAccount(t *testing.T) {
	db := setupDB(t)

	err := SetAccountPassword(db, models.AccountKindStudent, "gone@example.edu", []byte("x"))
	assert.ErrorIs(t, err, internal.ErrNotFound)
}
