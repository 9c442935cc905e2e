package data

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/placemate/placemate/internal"
	"github.com/placemate/placemate/internal/server/models"
)

// AccountRef is a typed reference to the account that owns an email, without
// loading the full record. Kind and Key are enough to route a password-hash
// write back to the correct store.
type AccountRef struct {
	Kind models.AccountKind
	// Key is the store primary key of the account record.
	Key string
	// Name is a human-readable display name for email salutations.
	Name string
}

// accountStore is one entry in the resolver's lookup table: how to find an
// account of this kind by recovery email, and how to write a new password
// hash to it.
type accountStore struct {
	kind        models.AccountKind
	find        func(db *gorm.DB, email string) (*AccountRef, error)
	setPassword func(db *gorm.DB, email string, hash []byte) error
}

// accountStores is ordered. An email registered under more than one kind
// always resolves to the first match: student, then admin, then organization.
var accountStores = []accountStore{
	{
		kind: models.AccountKindStudent,
		find: func(db *gorm.DB, email string) (*AccountRef, error) {
			student, err := GetStudent(db, ByRecoveryEmail(email))
			if err != nil {
				return nil, err
			}
			return &AccountRef{Kind: models.AccountKindStudent, Key: student.ID, Name: student.Name}, nil
		},
		setPassword: func(db *gorm.DB, email string, hash []byte) error {
			student, err := GetStudent(db, ByRecoveryEmail(email))
			if err != nil {
				return err
			}
			student.PasswordHash = hash
			return SaveStudent(db, student)
		},
	},
	{
		kind: models.AccountKindAdmin,
		find: func(db *gorm.DB, email string) (*AccountRef, error) {
			coordinator, err := GetCoordinator(db, ByEmail(email))
			if err != nil {
				return nil, err
			}
			return &AccountRef{Kind: models.AccountKindAdmin, Key: coordinator.ID, Name: coordinator.Name}, nil
		},
		setPassword: func(db *gorm.DB, email string, hash []byte) error {
			coordinator, err := GetCoordinator(db, ByEmail(email))
			if err != nil {
				return err
			}
			coordinator.PasswordHash = hash
			return SaveCoordinator(db, coordinator)
		},
	},
	{
		kind: models.AccountKindOrganization,
		find: func(db *gorm.DB, email string) (*AccountRef, error) {
			org, err := GetOrganization(db, ByCoordinatorEmail(email))
			if err != nil {
				return nil, err
			}
			return &AccountRef{Kind: models.AccountKindOrganization, Key: org.ID, Name: org.Name}, nil
		},
		setPassword: func(db *gorm.DB, email string, hash []byte) error {
			org, err := GetOrganization(db, ByCoordinatorEmail(email))
			if err != nil {
				return err
			}
			org.PasswordHash = hash
			return SaveOrganization(db, org)
		},
	},
}

// ResolveAccount determines which account owns the email. Stores are searched
// in the fixed priority order and the first match wins, so the same email
// resolves to the same kind every time. Returns internal.ErrNotFound when no
// store matches.
func ResolveAccount(db *gorm.DB, email string) (*AccountRef, error) {
	for _, store := range accountStores {
		ref, err := store.find(db, email)
		switch {
		case err == nil:
			return ref, nil
		case errors.Is(err, internal.ErrNotFound):
			continue
		default:
			return nil, err
		}
	}
	return nil, internal.ErrNotFound
}

// SetAccountPassword writes a new password hash to the account of the given
// kind that owns the email. Returns internal.ErrNotFound if the account no
// longer exists.
func SetAccountPassword(db *gorm.DB, kind models.AccountKind, email string, hash []byte) error {
	for _, store := range accountStores {
		if store.kind == kind {
			return store.setPassword(db, email, hash)
		}
	}
	return fmt.Errorf("unknown account kind %q", kind)
}
