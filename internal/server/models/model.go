package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Modelable determines if a struct is a model. Models that compose
// models.Model implement it for free.
type Modelable interface {
	IsAModel()
}

type Model struct {
	ID string `gorm:"primaryKey"`
	// CreatedAt is set by GORM to time.Now when a record is first created.
	CreatedAt time.Time
	// UpdatedAt is set by GORM to time.Now when a record is updated.
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt
}

func (Model) IsAModel() {}

// BeforeCreate sets an ID if one does not already exist. IDs are generated
// here and not with a `gorm:"default"` tag because not all supported
// databases can generate UUIDs.
func (m *Model) BeforeCreate(_ *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}

	return nil
}
