package access

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/placemate/placemate/internal/server/models"
)

const RequestContextKey = "requestContext"

// RequestContext stores the http.Request and values derived from the request
// like the authenticated organization. It also provides the database handle.
type RequestContext struct {
	Request       *http.Request
	DB            *gorm.DB
	Authenticated Authenticated
}

// Authenticated stores data about the authenticated caller. If AccessKey or
// Organization are nil, no caller was authenticated.
type Authenticated struct {
	AccessKey    *models.AccessKey
	Organization *models.Organization
}

func GetRequestContext(c *gin.Context) RequestContext {
	raw, ok := c.Get(RequestContextKey)
	if !ok {
		return RequestContext{}
	}
	rCtx, ok := raw.(RequestContext)
	if !ok {
		return RequestContext{}
	}
	return rCtx
}
