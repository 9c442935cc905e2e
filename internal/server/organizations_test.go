package server

import (
	"net/http"
	"testing"

	"gotest.tools/v3/assert"

	"github.com/placemate/placemate/api"
)

func TestLogin(t *testing.T) {
	srv, handler := setupServer(t)
	createTestOrganization(t, srv.DB(), "acme")

	key := loginOrganization(t, handler, "acme")

	resp := doJSON(t, handler, http.MethodGet, "/api/organization", nil, key)
	assert.Equal(t, resp.Code, http.StatusOK)

	var org api.Organization
	decodeJSON(t, resp, &org)
	assert.Equal(t, org.Username, "acme")
}

func TestLoginBadCredentials(t *testing.T) {
	srv, handler := setupServer(t)
	createTestOrganization(t, srv.DB(), "acme")

	t.Run("wrong password", func(t *testing.T) {
		resp := doJSON(t, handler, http.MethodPost, "/api/organization/login", api.LoginRequest{
			Username: "acme",
			Password: "wrong",
		}, "")
		assert.Equal(t, resp.Code, http.StatusUnauthorized)
	})

	t.Run("unknown username", func(t *testing.T) {
		resp := doJSON(t, handler, http.MethodPost, "/api/organization/login", api.LoginRequest{
			Username: "ghost",
			Password: "current-pass",
		}, "")
		assert.Equal(t, resp.Code, http.StatusUnauthorized)
	})

	// the response does not reveal which field was wrong
	resp := doJSON(t, handler, http.MethodPost, "/api/organization/login", api.LoginRequest{
		Username: "ghost",
		Password: "wrong",
	}, "")
	var apiErr api.Error
	decodeJSON(t, resp, &apiErr)
	assert.Equal(t, apiErr.Message, "unauthorized")
}

func TestAuthenticationRequired(t *testing.T) {
	_, handler := setupServer(t)

	t.Run("no token", func(t *testing.T) {
		resp := doJSON(t, handler, http.MethodGet, "/api/projects", nil, "")
		assert.Equal(t, resp.Code, http.StatusUnauthorized)
	})

	t.Run("malformed token", func(t *testing.T) {
		resp := doJSON(t, handler, http.MethodGet, "/api/projects", nil, "garbage")
		assert.Equal(t, resp.Code, http.StatusUnauthorized)
	})

	t.Run("unknown token", func(t *testing.T) {
		resp := doJSON(t, handler, http.MethodGet, "/api/projects", nil, "0123456789.abcdefghijklmnopqrstuvwx")
		assert.Equal(t, resp.Code, http.StatusUnauthorized)
	})
}

func TestLogout(t *testing.T) {
	srv, handler := setupServer(t)
	createTestOrganization(t, srv.DB(), "acme")
	key := loginOrganization(t, handler, "acme")

	resp := doJSON(t, handler, http.MethodPost, "/api/organization/logout", nil, key)
	assert.Equal(t, resp.Code, http.StatusCreated, resp.Body.String())

	// the key is dead after logout
	resp2 := doJSON(t, handler, http.MethodGet, "/api/organization", nil, key)
	assert.Equal(t, resp2.Code, http.StatusUnauthorized)
}

func TestUpdateOrganizationPassword(t *testing.T) {
	srv, handler := setupServer(t)
	createTestOrganization(t, srv.DB(), "acme")
	key := loginOrganization(t, handler, "acme")
	otherKey := loginOrganization(t, handler, "acme")

	t.Run("wrong current password", func(t *testing.T) {
		resp := doJSON(t, handler, http.MethodPut, "/api/organization/password", api.UpdatePasswordRequest{
			CurrentPassword: "wrong",
			Password:        "a-new-password",
		}, key)
		assert.Equal(t, resp.Code, http.StatusUnauthorized)
	})

	resp := doJSON(t, handler, http.MethodPut, "/api/organization/password", api.UpdatePasswordRequest{
		CurrentPassword: "current-pass",
		Password:        "a-new-password",
	}, key)
	assert.Equal(t, resp.Code, http.StatusOK, resp.Body.String())

	// other sessions were revoked, the current one survives
	resp2 := doJSON(t, handler, http.MethodGet, "/api/organization", nil, otherKey)
	assert.Equal(t, resp2.Code, http.StatusUnauthorized)

	resp3 := doJSON(t, handler, http.MethodGet, "/api/organization", nil, key)
	assert.Equal(t, resp3.Code, http.StatusOK)

	// the new password logs in
	resp4 := doJSON(t, handler, http.MethodPost, "/api/organization/login", api.LoginRequest{
		Username: "acme",
		Password: "a-new-password",
	}, "")
	assert.Equal(t, resp4.Code, http.StatusCreated)
}

func TestCreateOrganization(t *testing.T) {
	_, handler := setupServer(t)

	resp := doJSON(t, handler, http.MethodPost, "/api/organizations", api.CreateOrganizationRequest{
		Username:         "globex",
		Name:             "Globex",
		CoordinatorEmail: "hr@globex.example",
		Password:         "a-long-password",
	}, "")
	assert.Equal(t, resp.Code, http.StatusCreated, resp.Body.String())

	var org api.Organization
	decodeJSON(t, resp, &org)
	assert.Assert(t, org.ID != "")
	assert.Equal(t, org.Username, "globex")

	// duplicate username conflicts
	resp2 := doJSON(t, handler, http.MethodPost, "/api/organizations", api.CreateOrganizationRequest{
		Username:         "globex",
		CoordinatorEmail: "other@globex.example",
		Password:         "a-long-password",
	}, "")
	assert.Equal(t, resp2.Code, http.StatusConflict)
}
