package server

import (
	"github.com/gin-gonic/gin"

	"github.com/placemate/placemate/api"
	"github.com/placemate/placemate/internal/access"
	"github.com/placemate/placemate/internal/server/models"
)

func (a *API) CreateStudent(c *gin.Context, r *api.CreateStudentRequest) (*api.Student, error) {
	student := &models.Student{
		StudentID:      r.StudentID,
		Name:           r.Name,
		Email:          r.Email,
		AlternateEmail: r.AlternateEmail,
	}

	if err := access.CreateStudent(c, student, r.Password); err != nil {
		return nil, err
	}
	return student.ToAPI(), nil
}

func (a *API) GetStudent(c *gin.Context, r *api.GetStudentRequest) (*api.Student, error) {
	student, err := access.GetStudent(c, r.ID)
	if err != nil {
		return nil, err
	}
	return student.ToAPI(), nil
}

func (a *API) UpdateStudentPassword(c *gin.Context, r *api.UpdateStudentPasswordRequest) (*api.MessageResponse, error) {
	if err := access.UpdateStudentPassword(c, r.ID, r.CurrentPassword, r.Password); err != nil {
		return nil, err
	}
	return &api.MessageResponse{Message: "password updated"}, nil
}
