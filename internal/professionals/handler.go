package professionals

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/edalcin/medlog/internal/shared/server/flash"
	"github.com/edalcin/medlog/internal/shared/web"
)

// Handler wires the professional pages to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches the professional routes.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/professionals", h.list)
	r.GET("/professionals/new", h.newForm)
	r.POST("/professionals/new", h.create)
	r.GET("/professionals/:id/edit", h.editForm)
	r.POST("/professionals/:id/edit", h.update)
	r.POST("/professionals/:id/delete", h.remove)
}

type professionalForm struct {
	Name      string `form:"name"`
	Specialty string `form:"specialty"`
	CRM       string `form:"crm"`
	Phone     string `form:"phone"`
	Address   string `form:"address"`
}

func (f professionalForm) toModel(id int64) Professional {
	return Professional{
		ID:        id,
		Name:      f.Name,
		Specialty: f.Specialty,
		CRM:       f.CRM,
		Phone:     f.Phone,
		Address:   f.Address,
	}
}

func formFromModel(p Professional) professionalForm {
	return professionalForm{
		Name:      p.Name,
		Specialty: p.Specialty,
		CRM:       p.CRM,
		Phone:     p.Phone,
		Address:   p.Address,
	}
}

func (h *Handler) list(c *gin.Context) {
	profs, err := h.Svc.List(c.Request.Context())
	if err != nil {
		web.ServerError(c, "listing professionals", err)
		return
	}
	web.Render(c, http.StatusOK, "professionals.html", gin.H{"Professionals": profs})
}

func (h *Handler) newForm(c *gin.Context) {
	web.Render(c, http.StatusOK, "professional_form.html", gin.H{
		"Title":  "New professional",
		"Action": "/professionals/new",
		"Form":   professionalForm{},
	})
}

func (h *Handler) create(c *gin.Context) {
	var form professionalForm
	_ = c.ShouldBind(&form)

	_, err := h.Svc.Create(c.Request.Context(), form.toModel(0))
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			web.Render(c, http.StatusUnprocessableEntity, "professional_form.html", gin.H{
				"Title":  "New professional",
				"Action": "/professionals/new",
				"Form":   form,
				"Error":  "Name and specialty are required.",
			})
			return
		}
		web.ServerError(c, "saving the professional", err)
		return
	}

	flash.Success(c, "Professional registered successfully.")
	c.Redirect(http.StatusSeeOther, "/professionals")
}

func (h *Handler) editForm(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	p, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			web.NotFound(c, "professional")
			return
		}
		web.ServerError(c, "loading the professional", err)
		return
	}
	web.Render(c, http.StatusOK, "professional_form.html", gin.H{
		"Title":  "Edit professional",
		"Action": fmt.Sprintf("/professionals/%d/edit", p.ID),
		"Form":   formFromModel(p),
	})
}

func (h *Handler) update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var form professionalForm
	_ = c.ShouldBind(&form)

	err := h.Svc.Update(c.Request.Context(), form.toModel(id))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			web.NotFound(c, "professional")
		case errors.Is(err, ErrInvalidInput):
			web.Render(c, http.StatusUnprocessableEntity, "professional_form.html", gin.H{
				"Title":  "Edit professional",
				"Action": fmt.Sprintf("/professionals/%d/edit", id),
				"Form":   form,
				"Error":  "Name and specialty are required.",
			})
		default:
			web.ServerError(c, "saving the professional", err)
		}
		return
	}

	flash.Success(c, "Professional updated successfully.")
	c.Redirect(http.StatusSeeOther, "/professionals")
}

func (h *Handler) remove(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	err := h.Svc.Delete(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			web.NotFound(c, "professional")
		case errors.Is(err, ErrHasConsultations):
			flash.Error(c, "Cannot remove a professional with registered consultations.")
			c.Redirect(http.StatusSeeOther, "/professionals")
		default:
			web.ServerError(c, "removing the professional", err)
		}
		return
	}

	flash.Success(c, "Professional removed successfully.")
	c.Redirect(http.StatusSeeOther, "/professionals")
}

func idParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		web.NotFound(c, "professional")
		return 0, false
	}
	return id, true
}
