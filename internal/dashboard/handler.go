// Package dashboard renders entity counts for the dashboard page.
package dashboard

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edalcin/medlog/internal/shared/web"
)

// Counter reports how many records a repository holds.
type Counter interface {
	Count(ctx context.Context) (int, error)
}

// Handler aggregates counts from the three repositories.
type Handler struct {
	Professionals Counter
	Consultations Counter
	Attachments   Counter
}

// NewHandler constructs a Handler.
func NewHandler(professionals, consultations, attachments Counter) *Handler {
	return &Handler{
		Professionals: professionals,
		Consultations: consultations,
		Attachments:   attachments,
	}
}

// RegisterRoutes attaches the dashboard route.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/dashboard", h.show)
}

func (h *Handler) show(c *gin.Context) {
	ctx := c.Request.Context()

	profs, err := h.Professionals.Count(ctx)
	if err != nil {
		web.ServerError(c, "loading the dashboard", err)
		return
	}
	cons, err := h.Consultations.Count(ctx)
	if err != nil {
		web.ServerError(c, "loading the dashboard", err)
		return
	}
	files, err := h.Attachments.Count(ctx)
	if err != nil {
		web.ServerError(c, "loading the dashboard", err)
		return
	}

	web.Render(c, http.StatusOK, "dashboard.html", gin.H{
		"Professionals": profs,
		"Consultations": cons,
		"Attachments":   files,
	})
}
