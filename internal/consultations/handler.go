package consultations

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/edalcin/medlog/internal/attachments"
	"github.com/edalcin/medlog/internal/shared/server/flash"
	"github.com/edalcin/medlog/internal/shared/web"
)

const (
	dateLayout    = "2006-01-02"
	maxUploadSize = 32 << 20 // whole multipart request
)

// Handler wires the consultation pages to the service.
type Handler struct {
	Svc   *Service
	Files *attachments.Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service, files *attachments.Service) *Handler {
	return &Handler{Svc: svc, Files: files}
}

// RegisterRoutes attaches the consultation routes. The root path is the
// consultation list.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/", h.index)
	r.GET("/consultations/new", h.newForm)
	r.POST("/consultations/new", h.create)
	r.GET("/consultations/:id", h.detail)
	r.GET("/consultations/:id/edit", h.editForm)
	r.POST("/consultations/:id/edit", h.update)
	r.POST("/consultations/:id/delete", h.remove)
}

type consultationForm struct {
	Date           string `form:"date"`
	ProfessionalID string `form:"professional_id"`
	Specialty      string `form:"specialty"`
	Notes          string `form:"notes"`
}

func formFromModel(c Consultation) consultationForm {
	return consultationForm{
		Date:           c.Date.Format(dateLayout),
		ProfessionalID: strconv.FormatInt(c.ProfessionalID, 10),
		Specialty:      c.Specialty,
		Notes:          c.Notes,
	}
}

// toModel parses the submitted fields. It returns a user-facing message
// when a field is missing or malformed.
func (f consultationForm) toModel(id int64) (Consultation, string) {
	if f.Date == "" || f.Specialty == "" || f.ProfessionalID == "" {
		return Consultation{}, "Date, professional and specialty are required."
	}
	date, err := time.Parse(dateLayout, f.Date)
	if err != nil {
		return Consultation{}, "Date must be a valid calendar date in YYYY-MM-DD format."
	}
	professionalID, err := strconv.ParseInt(f.ProfessionalID, 10, 64)
	if err != nil || professionalID <= 0 {
		return Consultation{}, "Select a valid professional."
	}
	return Consultation{
		ID:             id,
		Date:           date,
		ProfessionalID: professionalID,
		Specialty:      f.Specialty,
		Notes:          f.Notes,
	}, ""
}

func (h *Handler) index(c *gin.Context) {
	list, err := h.Svc.List(c.Request.Context())
	if err != nil {
		web.ServerError(c, "listing consultations", err)
		return
	}
	web.Render(c, http.StatusOK, "index.html", gin.H{"Consultations": list})
}

func (h *Handler) newForm(c *gin.Context) {
	h.renderForm(c, http.StatusOK, "New consultation", "/consultations/new", consultationForm{}, "")
}

func (h *Handler) create(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	var form consultationForm
	_ = c.ShouldBind(&form)

	cons, msg := form.toModel(0)
	if msg != "" {
		h.renderForm(c, http.StatusUnprocessableEntity, "New consultation", "/consultations/new", form, msg)
		return
	}

	id, err := h.Svc.Create(c.Request.Context(), cons)
	if err != nil {
		h.handleWriteError(c, "New consultation", "/consultations/new", form, err)
		return
	}

	if err := h.saveUploads(c, id); err != nil {
		web.ServerError(c, "storing the attached files", err)
		return
	}

	flash.Success(c, "Consultation registered successfully.")
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *Handler) detail(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	detail, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			web.NotFound(c, "consultation")
			return
		}
		web.ServerError(c, "loading the consultation", err)
		return
	}
	web.Render(c, http.StatusOK, "consultation_detail.html", gin.H{
		"Consultation":     detail.Consultation,
		"ProfessionalName": detail.ProfessionalName,
		"Files":            detail.Files,
	})
}

func (h *Handler) editForm(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	detail, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			web.NotFound(c, "consultation")
			return
		}
		web.ServerError(c, "loading the consultation", err)
		return
	}
	action := fmt.Sprintf("/consultations/%d/edit", id)
	h.renderForm(c, http.StatusOK, "Edit consultation", action, formFromModel(detail.Consultation), "")
}

func (h *Handler) update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)
	action := fmt.Sprintf("/consultations/%d/edit", id)

	var form consultationForm
	_ = c.ShouldBind(&form)

	cons, msg := form.toModel(id)
	if msg != "" {
		h.renderForm(c, http.StatusUnprocessableEntity, "Edit consultation", action, form, msg)
		return
	}

	if err := h.Svc.Update(c.Request.Context(), cons); err != nil {
		if errors.Is(err, ErrNotFound) {
			web.NotFound(c, "consultation")
			return
		}
		h.handleWriteError(c, "Edit consultation", action, form, err)
		return
	}

	// Additional files are additive; existing ones stay untouched.
	if err := h.saveUploads(c, id); err != nil {
		web.ServerError(c, "storing the attached files", err)
		return
	}

	flash.Success(c, "Consultation updated successfully.")
	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/consultations/%d", id))
}

func (h *Handler) remove(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.Svc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			web.NotFound(c, "consultation")
			return
		}
		web.ServerError(c, "removing the consultation", err)
		return
	}

	flash.Success(c, "Consultation removed successfully.")
	c.Redirect(http.StatusSeeOther, "/")
}

// saveUploads stores any files attached to the request under the
// consultation. Runs after the consultation row exists.
func (h *Handler) saveUploads(c *gin.Context, consultationID int64) error {
	mf, err := c.MultipartForm()
	if err != nil || mf == nil {
		return nil
	}
	_, err = h.Files.SaveBatch(c.Request.Context(), consultationID, mf.File["files"])
	return err
}

func (h *Handler) renderForm(c *gin.Context, status int, title, action string, form consultationForm, errMsg string) {
	profs, err := h.Svc.Professionals.List(c.Request.Context())
	if err != nil {
		web.ServerError(c, "loading professionals", err)
		return
	}
	data := gin.H{
		"Title":         title,
		"Action":        action,
		"Form":          form,
		"Professionals": profs,
	}
	if errMsg != "" {
		data["Error"] = errMsg
	}
	web.Render(c, status, "consultation_form.html", data)
}

func (h *Handler) handleWriteError(c *gin.Context, title, action string, form consultationForm, err error) {
	switch {
	case errors.Is(err, ErrProfessionalNotFound):
		h.renderForm(c, http.StatusUnprocessableEntity, title, action, form, "Select a valid professional.")
	case errors.Is(err, ErrInvalidInput):
		h.renderForm(c, http.StatusUnprocessableEntity, title, action, form, "Date, professional and specialty are required.")
	default:
		web.ServerError(c, "saving the consultation", err)
	}
}

func idParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		web.NotFound(c, "consultation")
		return 0, false
	}
	return id, true
}
