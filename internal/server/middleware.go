package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/placemate/placemate/internal"
	"github.com/placemate/placemate/internal/access"
	"github.com/placemate/placemate/internal/server/data"
)

// TimeoutMiddleware adds a timeout to the request context within the Gin
// context. To correctly abort long-running requests, this depends on the
// users of the context to stop working when the context cancels.
func TimeoutMiddleware(timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// DatabaseMiddleware injects a `db` object into the Gin context. The request
// is not wrapped in a transaction: each store operation commits on its own,
// so anything written before a later failure (like an email send) stays
// written.
func DatabaseMiddleware(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("db", db.WithContext(c.Request.Context()))
		c.Next()
	}
}

func getDB(c *gin.Context) *gorm.DB {
	db, ok := c.MustGet("db").(*gorm.DB)
	if !ok {
		return nil
	}
	return db
}

// authenticatedMiddleware is applied to all routes that require an access
// key. It validates the key and resolves the organization it was issued to.
func authenticatedMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		db := getDB(c)
		authned, err := requireAccessKey(db, c.Request)
		if err != nil {
			sendAPIError(c, err)
			return
		}

		rCtx := access.RequestContext{
			Request:       c.Request,
			DB:            db,
			Authenticated: authned,
		}
		c.Set(access.RequestContextKey, rCtx)
		c.Next()
	}
}

// requireAccessKey checks the bearer token is present and valid.
func requireAccessKey(db *gorm.DB, req *http.Request) (access.Authenticated, error) {
	var u access.Authenticated
	header := req.Header.Get("Authorization")

	bearer := ""

	parts := strings.Split(header, " ")
	if len(parts) == 2 && parts[0] == "Bearer" {
		bearer = parts[1]
	}

	if strings.TrimSpace(bearer) == "" {
		return u, fmt.Errorf("%w: valid token not found in request", internal.ErrUnauthorized)
	}

	accessKey, err := data.ValidateAccessKey(db, bearer)
	if err != nil {
		if errors.Is(err, data.ErrAccessKeyExpired) {
			return u, err
		}
		return u, fmt.Errorf("%w: invalid token: %s", internal.ErrUnauthorized, err)
	}

	org, err := data.GetOrganization(db, data.ByID(accessKey.OrganizationID))
	if err != nil {
		return u, fmt.Errorf("%w: organization for token: %s", internal.ErrUnauthorized, err)
	}

	u.AccessKey = accessKey
	u.Organization = org
	return u, nil
}

func unauthenticatedMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		rCtx := access.RequestContext{
			Request: c.Request,
			DB:      getDB(c),
		}
		c.Set(access.RequestContextKey, rCtx)
		c.Next()
	}
}
