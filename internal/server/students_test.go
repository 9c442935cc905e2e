package server

import (
	"net/http"
	"testing"

	"golang.org/x/crypto/bcrypt"
	"gotest.tools/v3/assert"

	"github.com/placemate/placemate/api"
	"github.com/placemate/placemate/internal/server/data"
)

func TestCreateStudent(t *testing.T) {
	srv, handler := setupServer(t)

	resp := doJSON(t, handler, http.MethodPost, "/api/students", api.CreateStudentRequest{
		StudentID: "s-100",
		Name:      "Amina",
		Email:     "amina@example.edu",
		Password:  "a-long-password",
	}, "")
	assert.Equal(t, resp.Code, http.StatusCreated, resp.Body.String())

	var student api.Student
	decodeJSON(t, resp, &student)
	assert.Assert(t, student.ID != "")

	// passwords are stored hashed
	stored, err := data.GetStudent(srv.DB(), data.ByID(student.ID))
	assert.NilError(t, err)
	assert.NilError(t, bcrypt.CompareHashAndPassword(stored.PasswordHash, []byte("a-long-password")))

	t.Run("duplicate student id", func(t *testing.T) {
		resp := doJSON(t, handler, http.MethodPost, "/api/students", api.CreateStudentRequest{
			StudentID: "s-100",
			Email:     "other@example.edu",
			Password:  "a-long-password",
		}, "")
		assert.Equal(t, resp.Code, http.StatusConflict)
	})

	t.Run("get", func(t *testing.T) {
		resp := doJSON(t, handler, http.MethodGet, "/api/students/"+student.ID, nil, "")
		assert.Equal(t, resp.Code, http.StatusOK)

		var got api.Student
		decodeJSON(t, resp, &got)
		assert.Equal(t, got.Email, "amina@example.edu")
	})
}

func TestUpdateStudentPassword(t *testing.T) {
	srv, handler := setupServer(t)
	student := createTestStudent(t, srv.DB(), "amina@example.edu", "")

	t.Run("wrong current password", func(t *testing.T) {
		resp := doJSON(t, handler, http.MethodPut, "/api/students/"+student.ID+"/password", api.UpdateStudentPasswordRequest{
			CurrentPassword: "wrong",
			Password:        "a-new-password",
		}, "")
		assert.Equal(t, resp.Code, http.StatusUnauthorized)
	})

	resp := doJSON(t, handler, http.MethodPut, "/api/students/"+student.ID+"/password", api.UpdateStudentPasswordRequest{
		CurrentPassword: "current-pass",
		Password:        "a-new-password",
	}, "")
	assert.Equal(t, resp.Code, http.StatusOK, resp.Body.String())

	stored, err := data.GetStudent(srv.DB(), data.ByID(student.ID))
	assert.NilError(t, err)
	assert.NilError(t, bcrypt.CompareHashAndPassword(stored.PasswordHash, []byte("a-new-password")))
}

func TestCreateAdmin(t *testing.T) {
	_, handler := setupServer(t)

	resp := doJSON(t, handler, http.MethodPost, "/api/admins", api.CreateAdminRequest{
		AdminID:  "a-1",
		Name:     "Coordinator",
		Email:    "coord@example.edu",
		Password: "a-long-password",
	}, "")
	assert.Equal(t, resp.Code, http.StatusCreated, resp.Body.String())

	var admin api.Admin
	decodeJSON(t, resp, &admin)
	assert.Assert(t, admin.ID != "")

	resp2 := doJSON(t, handler, http.MethodGet, "/api/admins/"+admin.ID, nil, "")
	assert.Equal(t, resp2.Code, http.StatusOK)
}
