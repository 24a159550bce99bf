// Package web holds the embedded HTML templates and rendering helpers
// shared by all page handlers.
package web

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edalcin/medlog/internal/shared/server/flash"
	"github.com/edalcin/medlog/internal/shared/telemetry"
)

//go:embed templates/*.html
var templateFS embed.FS

// Templates parses the embedded template set.
func Templates() *template.Template {
	return template.Must(template.ParseFS(templateFS, "templates/*.html"))
}

// Render renders a page template, attaching any pending flash banner.
func Render(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	if msg, ok := flash.Pop(c); ok {
		data["Flash"] = msg
	}
	c.HTML(status, name, data)
}

// NotFound renders the 404 page.
func NotFound(c *gin.Context, what string) {
	Render(c, http.StatusNotFound, "notfound.html", gin.H{"What": what})
}

// ServerError logs the failure and renders the 500 page.
func ServerError(c *gin.Context, action string, err error) {
	telemetry.Error("http.error", map[string]any{
		"action": action,
		"err":    err.Error(),
		"path":   c.Request.URL.Path,
		"method": c.Request.Method,
	})
	Render(c, http.StatusInternalServerError, "error.html", gin.H{
		"Message": "Something went wrong while " + action + ". Please try again.",
	})
}
