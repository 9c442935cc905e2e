package server

import (
	"github.com/gin-gonic/gin"

	"github.com/placemate/placemate/api"
	"github.com/placemate/placemate/internal/access"
	"github.com/placemate/placemate/internal/server/models"
)

func (a *API) ListProjects(c *gin.Context, _ *api.EmptyRequest) (*api.ListProjectsResponse, error) {
	projects, err := access.ListProjects(c)
	if err != nil {
		return nil, err
	}

	resp := &api.ListProjectsResponse{
		Items: make([]api.Project, 0, len(projects)),
		Count: len(projects),
	}
	for i := range projects {
		resp.Items = append(resp.Items, *projects[i].ToAPI())
	}
	return resp, nil
}

func (a *API) GetProject(c *gin.Context, r *api.GetProjectRequest) (*api.Project, error) {
	project, err := access.GetProject(c, r.ID)
	if err != nil {
		return nil, err
	}
	return project.ToAPI(), nil
}

func (a *API) CreateProject(c *gin.Context, r *api.CreateProjectRequest) (*api.Project, error) {
	project := &models.Project{
		Title:       r.Title,
		Description: r.Description,
		Slots:       r.Slots,
		Deadline:    r.Deadline,
	}

	if err := access.CreateProject(c, project); err != nil {
		return nil, err
	}
	return project.ToAPI(), nil
}

func (a *API) UpdateProject(c *gin.Context, r *api.UpdateProjectRequest) (*api.Project, error) {
	project := &models.Project{
		Model:       models.Model{ID: r.ID},
		Title:       r.Title,
		Description: r.Description,
		Slots:       r.Slots,
		Deadline:    r.Deadline,
	}

	if err := access.UpdateProject(c, project); err != nil {
		return nil, err
	}
	return project.ToAPI(), nil
}

func (a *API) DeleteProject(c *gin.Context, r *api.DeleteProjectRequest) error {
	return access.DeleteProject(c, r.ID)
}
