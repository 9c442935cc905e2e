package api

import (
	"time"

	"github.com/placemate/placemate/internal/validate"
)

type Project struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Slots       int       `json:"slots"`
	Deadline    time.Time `json:"deadline"`
	Created     time.Time `json:"created"`
	Updated     time.Time `json:"updated"`
}

type ListProjectsResponse struct {
	Items []Project `json:"items"`
	Count int       `json:"count"`
}

type CreateProjectRequest struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Slots       int       `json:"slots"`
	Deadline    time.Time `json:"deadline"`
}

func (r CreateProjectRequest) ValidationRules() []validate.ValidationRule {
	return []validate.ValidationRule{
		validate.Required("title", r.Title),
		validate.StringRule{Name: "title", Value: r.Title, MinLength: 2, MaxLength: 140},
	}
}

type GetProjectRequest struct {
	ID string `uri:"id"`
}

func (r GetProjectRequest) ValidationRules() []validate.ValidationRule {
	return []validate.ValidationRule{
		validate.Required("id", r.ID),
	}
}

type UpdateProjectRequest struct {
	ID          string    `uri:"id" json:"-"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Slots       int       `json:"slots"`
	Deadline    time.Time `json:"deadline"`
}

func (r UpdateProjectRequest) ValidationRules() []validate.ValidationRule {
	return []validate.ValidationRule{
		validate.Required("id", r.ID),
		validate.Required("title", r.Title),
		validate.StringRule{Name: "title", Value: r.Title, MinLength: 2, MaxLength: 140},
	}
}

type DeleteProjectRequest struct {
	ID string `uri:"id"`
}

func (r DeleteProjectRequest) ValidationRules() []validate.ValidationRule {
	return []validate.ValidationRule{
		validate.Required("id", r.ID),
	}
}
