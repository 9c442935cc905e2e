package models

import (
	"time"

	"github.com/placemate/placemate/api"
)

// Project is an internship posting owned by one organization. Every read and
// write is scoped to the owning OrganizationID.
type Project struct {
	Model

	OrganizationID string `gorm:"index" validate:"required"`
	Title          string `validate:"required"`
	Description    string
	Slots          int
	Deadline       time.Time
}

func (p *Project) ToAPI() *api.Project {
	return &api.Project{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Slots:       p.Slots,
		Deadline:    p.Deadline,
		Created:     p.CreatedAt,
		Updated:     p.UpdatedAt,
	}
}
