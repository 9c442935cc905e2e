package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/placemate/placemate/internal"
	"github.com/placemate/placemate/internal/logging"
	"github.com/placemate/placemate/internal/validate"
	"github.com/placemate/placemate/metrics"
)

// GenerateRoutes constructs the http.Handler for the primary http server.
//
// The order of routes in this function is important! Gin saves a route along
// with all the middleware that will apply to the route when the
// Router.{GET,POST,etc} method is called.
func (s *Server) GenerateRoutes(promRegistry prometheus.Registerer) http.Handler {
	a := &API{server: s}
	router := gin.New()
	router.NoRoute(notFoundHandler)

	router.Use(gin.Recovery())
	router.GET("/healthz", healthHandler)

	router.Use(
		logging.Middleware(),
		TimeoutMiddleware(1*time.Minute),
	)

	api := router.Group("/",
		metrics.Middleware(promRegistry),
		DatabaseMiddleware(s.db), // must be after TimeoutMiddleware to time out db queries.
	)

	// the confirmation links from the reset email render plain pages, they
	// are opened in a browser rather than called by an API client
	links := api.Group("/", unauthenticatedMiddleware())
	links.GET("/verify-reset", a.verifyResetHandler)
	links.GET("/deny-reset", a.denyResetHandler)

	noAuthn := api.Group("/", unauthenticatedMiddleware())

	post(noAuthn, "/api/auth/forgot-password", a.ForgotPassword)
	get(noAuthn, "/api/auth/reset-status/:email", a.ResetStatus)
	post(noAuthn, "/api/auth/reset-password", a.ResetPassword)

	post(noAuthn, "/api/organization/login", a.Login)

	post(noAuthn, "/api/students", a.CreateStudent)
	get(noAuthn, "/api/students/:id", a.GetStudent)
	put(noAuthn, "/api/students/:id/password", a.UpdateStudentPassword)

	post(noAuthn, "/api/admins", a.CreateAdmin)
	get(noAuthn, "/api/admins/:id", a.GetAdmin)

	post(noAuthn, "/api/organizations", a.CreateOrganization)

	authn := api.Group("/", authenticatedMiddleware())

	post(authn, "/api/organization/logout", a.Logout)
	get(authn, "/api/organization", a.CurrentOrganization)
	put(authn, "/api/organization/password", a.UpdateOrganizationPassword)

	get(authn, "/api/projects", a.ListProjects)
	post(authn, "/api/projects", a.CreateProject)
	get(authn, "/api/projects/:id", a.GetProject)
	put(authn, "/api/projects/:id", a.UpdateProject)
	delete(authn, "/api/projects/:id", a.DeleteProject)

	return router
}

type ReqHandlerFunc[Req any] func(c *gin.Context, req *Req) error
type ReqResHandlerFunc[Req, Res any] func(c *gin.Context, req *Req) (Res, error)

func get[Req, Res any](r *gin.RouterGroup, route string, handler ReqResHandlerFunc[Req, Res]) {
	r.GET(route, func(c *gin.Context) {
		req := new(Req)
		if err := bind(c, req); err != nil {
			sendAPIError(c, err)
			return
		}

		resp, err := handler(c, req)
		if err != nil {
			sendAPIError(c, err)
			return
		}

		c.JSON(http.StatusOK, resp)
	})
}

func post[Req, Res any](r *gin.RouterGroup, route string, handler ReqResHandlerFunc[Req, Res]) {
	r.POST(route, func(c *gin.Context) {
		req := new(Req)
		if err := bind(c, req); err != nil {
			sendAPIError(c, err)
			return
		}

		resp, err := handler(c, req)
		if err != nil {
			sendAPIError(c, err)
			return
		}

		c.JSON(http.StatusCreated, resp)
	})
}

func put[Req, Res any](r *gin.RouterGroup, route string, handler ReqResHandlerFunc[Req, Res]) {
	r.PUT(route, func(c *gin.Context) {
		req := new(Req)
		if err := bind(c, req); err != nil {
			sendAPIError(c, err)
			return
		}

		resp, err := handler(c, req)
		if err != nil {
			sendAPIError(c, err)
			return
		}

		c.JSON(http.StatusOK, resp)
	})
}

func delete[Req any](r *gin.RouterGroup, route string, handler ReqHandlerFunc[Req]) {
	r.DELETE(route, func(c *gin.Context) {
		req := new(Req)
		if err := bind(c, req); err != nil {
			sendAPIError(c, err)
			return
		}

		if err := handler(c, req); err != nil {
			sendAPIError(c, err)
			return
		}

		c.Status(http.StatusNoContent)
		c.Writer.WriteHeaderNow()
	})
}

func bind(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindUri(req); err != nil {
		return fmt.Errorf("%w: %s", internal.ErrBadRequest, err)
	}

	if err := c.ShouldBindQuery(req); err != nil {
		return fmt.Errorf("%w: %s", internal.ErrBadRequest, err)
	}

	if c.Request.Body != nil && c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(req); err != nil {
			return fmt.Errorf("%w: %s", internal.ErrBadRequest, err)
		}
	}

	if r, ok := req.(validate.Request); ok {
		if err := validate.Validate(r); err != nil {
			return err
		}
	}

	return nil
}

func init() {
	gin.DisableBindValidation()
}

func healthHandler(c *gin.Context) {
	c.Status(http.StatusOK)
}

func notFoundHandler(c *gin.Context) {
	sendAPIError(c, internal.ErrNotFound)
}
