package access

import (
	"github.com/gin-gonic/gin"

	"github.com/placemate/placemate/internal"
	"github.com/placemate/placemate/internal/server/data"
	"github.com/placemate/placemate/internal/server/models"
)

// ListProjects returns the authenticated organization's postings.
func ListProjects(c *gin.Context) ([]models.Project, error) {
	rCtx := GetRequestContext(c)
	if rCtx.Authenticated.Organization == nil {
		return nil, internal.ErrUnauthorized
	}
	return data.ListProjects(rCtx.DB, data.ByOrganizationID(rCtx.Authenticated.Organization.ID))
}

// GetProject returns one posting owned by the authenticated organization. A
// posting owned by anyone else reads as not found.
func GetProject(c *gin.Context, id string) (*models.Project, error) {
	rCtx := GetRequestContext(c)
	if rCtx.Authenticated.Organization == nil {
		return nil, internal.ErrUnauthorized
	}
	return data.GetProject(rCtx.DB, data.ByID(id), data.ByOrganizationID(rCtx.Authenticated.Organization.ID))
}

// CreateProject creates a posting owned by the authenticated organization.
// The owner is always taken from the access key, never from the request body.
func CreateProject(c *gin.Context, project *models.Project) error {
	rCtx := GetRequestContext(c)
	if rCtx.Authenticated.Organization == nil {
		return internal.ErrUnauthorized
	}
	project.OrganizationID = rCtx.Authenticated.Organization.ID
	return data.CreateProject(rCtx.DB, project)
}

// UpdateProject overwrites a posting the authenticated organization owns.
func UpdateProject(c *gin.Context, project *models.Project) error {
	rCtx := GetRequestContext(c)
	if rCtx.Authenticated.Organization == nil {
		return internal.ErrUnauthorized
	}

	existing, err := data.GetProject(rCtx.DB, data.ByID(project.ID), data.ByOrganizationID(rCtx.Authenticated.Organization.ID))
	if err != nil {
		return err
	}

	existing.Title = project.Title
	existing.Description = project.Description
	existing.Slots = project.Slots
	existing.Deadline = project.Deadline
	*project = *existing
	return data.SaveProject(rCtx.DB, existing)
}

// DeleteProject removes a posting the authenticated organization owns.
func DeleteProject(c *gin.Context, id string) error {
	rCtx := GetRequestContext(c)
	if rCtx.Authenticated.Organization == nil {
		return internal.ErrUnauthorized
	}

	// read first so a cross-organization delete reports not found instead of
	// silently affecting nothing
	if _, err := data.GetProject(rCtx.DB, data.ByID(id), data.ByOrganizationID(rCtx.Authenticated.Organization.ID)); err != nil {
		return err
	}
	return data.DeleteProject(rCtx.DB, rCtx.Authenticated.Organization.ID, id)
}
