package server

import (
	"github.com/gin-gonic/gin"

	"github.com/placemate/placemate/api"
	"github.com/placemate/placemate/internal/access"
	"github.com/placemate/placemate/internal/server/models"
)

// Login exchanges organization credentials for a new access key.
func (a *API) Login(c *gin.Context, r *api.LoginRequest) (*api.LoginResponse, error) {
	org, key, err := access.LoginOrganization(c, r.Username, r.Password, a.server.options.SessionDuration)
	if err != nil {
		return nil, err
	}

	return &api.LoginResponse{
		Name:      org.Name,
		AccessKey: key.Token(),
		ExpiresAt: key.ExpiresAt,
	}, nil
}

// Logout revokes the access key used on this request.
func (a *API) Logout(c *gin.Context, _ *api.EmptyRequest) (*api.MessageResponse, error) {
	if err := access.Logout(c); err != nil {
		return nil, err
	}
	return &api.MessageResponse{Message: "logged out"}, nil
}

func (a *API) CurrentOrganization(c *gin.Context, _ *api.EmptyRequest) (*api.Organization, error) {
	org, err := access.CurrentOrganization(c)
	if err != nil {
		return nil, err
	}
	return org.ToAPI(), nil
}

func (a *API) UpdateOrganizationPassword(c *gin.Context, r *api.UpdatePasswordRequest) (*api.MessageResponse, error) {
	if err := access.UpdateOrganizationPassword(c, r.CurrentPassword, r.Password); err != nil {
		return nil, err
	}
	return &api.MessageResponse{Message: "password updated"}, nil
}

func (a *API) CreateOrganization(c *gin.Context, r *api.CreateOrganizationRequest) (*api.Organization, error) {
	org := &models.Organization{
		Username:                  r.Username,
		Name:                      r.Name,
		CoordinatorEmail:          r.CoordinatorEmail,
		CoordinatorAlternateEmail: r.CoordinatorAlternateEmail,
	}

	if err := access.CreateOrganization(c, org, r.Password); err != nil {
		return nil, err
	}
	return org.ToAPI(), nil
}
