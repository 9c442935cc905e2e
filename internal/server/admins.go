package server

import (
	"github.com/gin-gonic/gin"

	"github.com/placemate/placemate/api"
	"github.com/placemate/placemate/internal/access"
	"github.com/placemate/placemate/internal/server/models"
)

func (a *API) CreateAdmin(c *gin.Context, r *api.CreateAdminRequest) (*api.Admin, error) {
	coordinator := &models.Coordinator{
		AdminID: r.AdminID,
		Name:    r.Name,
		Email:   r.Email,
	}

	if err := access.CreateCoordinator(c, coordinator, r.Password); err != nil {
		return nil, err
	}
	return coordinator.ToAPI(), nil
}

func (a *API) GetAdmin(c *gin.Context, r *api.GetAdminRequest) (*api.Admin, error) {
	coordinator, err := access.GetCoordinator(c, r.ID)
	if err != nil {
		return nil, err
	}
	return coordinator.ToAPI(), nil
}
