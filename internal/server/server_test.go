package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gotest.tools/v3/assert"

	"github.com/placemate/placemate/api"
	"github.com/placemate/placemate/internal/logging"
	"github.com/placemate/placemate/internal/server/data"
	"github.com/placemate/placemate/internal/server/email"
	"github.com/placemate/placemate/internal/server/models"
)

func setupServer(t *testing.T) (*Server, http.Handler) {
	t.Helper()
	logging.PatchLogger(t, zerolog.NewTestWriter(t))

	driver, err := data.NewSQLiteDriver("file::memory:")
	assert.NilError(t, err)

	db, err := data.NewDB(driver)
	assert.NilError(t, err)

	srv := &Server{
		options: Options{
			BaseURL:         "https://place.example",
			SessionDuration: time.Hour,
		},
		db:              db,
		metricsRegistry: prometheus.NewRegistry(),
	}

	email.TestMode = true
	email.TestSent = nil
	t.Cleanup(func() {
		email.TestMode = false
		email.TestSent = nil
	})

	return srv, srv.GenerateRoutes(srv.metricsRegistry)
}

func jsonBody(t *testing.T, v interface{}) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	err := json.NewEncoder(buf).Encode(v)
	assert.NilError(t, err)
	return buf
}

func doJSON(t *testing.T, handler http.Handler, method, path string, body interface{}, accessKey string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Buffer
	if body != nil {
		reader = jsonBody(t, body)
	} else {
		reader = &bytes.Buffer{}
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if accessKey != "" {
		req.Header.Set("Authorization", "Bearer "+accessKey)
	}

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)
	return resp
}

func decodeJSON(t *testing.T, resp *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	assert.NilError(t, json.Unmarshal(resp.Body.Bytes(), v))
}

func createTestStudent(t *testing.T, db *gorm.DB, addr, alternate string) *models.Student {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("current-pass"), bcrypt.MinCost)
	assert.NilError(t, err)

	student := &models.Student{
		StudentID:      "s-" + addr,
		Name:           "Test Student",
		Email:          addr,
		AlternateEmail: alternate,
		PasswordHash:   hash,
	}
	assert.NilError(t, data.CreateStudent(db, student))
	return student
}

func createTestOrganization(t *testing.T, db *gorm.DB, username string) *models.Organization {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("current-pass"), bcrypt.MinCost)
	assert.NilError(t, err)

	org := &models.Organization{
		Username:         username,
		Name:             username + " inc",
		CoordinatorEmail: username + "@example.com",
		PasswordHash:     hash,
	}
	assert.NilError(t, data.CreateOrganization(db, org))
	return org
}

func loginOrganization(t *testing.T, handler http.Handler, username string) string {
	t.Helper()
	resp := doJSON(t, handler, http.MethodPost, "/api/organization/login", api.LoginRequest{
		Username: username,
		Password: "current-pass",
	}, "")
	assert.Equal(t, resp.Code, http.StatusCreated, resp.Body.String())

	var login api.LoginResponse
	decodeJSON(t, resp, &login)
	assert.Assert(t, login.AccessKey != "")
	return login.AccessKey
}

func TestHealthz(t *testing.T) {
	_, handler := setupServer(t)

	resp := doJSON(t, handler, http.MethodGet, "/healthz", nil, "")
	assert.Equal(t, resp.Code, http.StatusOK)
}

func TestNotFoundRoute(t *testing.T) {
	_, handler := setupServer(t)

	resp := doJSON(t, handler, http.MethodGet, "/api/no-such-thing", nil, "")
	assert.Equal(t, resp.Code, http.StatusNotFound)

	var apiErr api.Error
	decodeJSON(t, resp, &apiErr)
	assert.Equal(t, apiErr.Code, int32(http.StatusNotFound))
}
