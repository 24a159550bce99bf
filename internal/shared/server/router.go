package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edalcin/medlog/internal/attachments"
	"github.com/edalcin/medlog/internal/consultations"
	"github.com/edalcin/medlog/internal/dashboard"
	"github.com/edalcin/medlog/internal/professionals"
	"github.com/edalcin/medlog/internal/shared/server/middleware"
	"github.com/edalcin/medlog/internal/shared/web"
)

// RouterDeps carries the handlers the router mounts.
type RouterDeps struct {
	Professionals *professionals.Handler
	Consultations *consultations.Handler
	Attachments   *attachments.Handler
	Dashboard     *dashboard.Handler
}

// NewRouter constructs the Gin engine with middleware, templates and
// routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.SetHTMLTemplate(web.Templates())

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
	)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	deps.Consultations.RegisterRoutes(r)
	deps.Professionals.RegisterRoutes(r)
	deps.Attachments.RegisterRoutes(r)
	deps.Dashboard.RegisterRoutes(r)

	r.NoRoute(func(c *gin.Context) {
		web.NotFound(c, "")
	})

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
