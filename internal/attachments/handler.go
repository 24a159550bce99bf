package attachments

import (
	"errors"
	"fmt"
	"mime"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/edalcin/medlog/internal/shared/server/flash"
	"github.com/edalcin/medlog/internal/shared/storage/object"
	"github.com/edalcin/medlog/internal/shared/web"
)

// Handler wires the attachment routes to the service.
type Handler struct {
	Svc   *Service
	Store object.ObjectStore
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service, store object.ObjectStore) *Handler {
	return &Handler{Svc: svc, Store: store}
}

// RegisterRoutes attaches the attachment routes.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.POST("/files/:id/delete", h.remove)
	r.POST("/files/:id/edit", h.editDescription)
	r.GET("/uploads/:filename", h.serve)
}

func (h *Handler) remove(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	f, err := h.Svc.Delete(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			web.NotFound(c, "file")
			return
		}
		web.ServerError(c, "removing the file", err)
		return
	}

	flash.Success(c, "File removed successfully.")
	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/consultations/%d", f.ConsultationID))
}

func (h *Handler) editDescription(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	f, err := h.Svc.UpdateDescription(c.Request.Context(), id, c.PostForm("description"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			web.NotFound(c, "file")
			return
		}
		web.ServerError(c, "updating the file description", err)
		return
	}

	flash.Success(c, "File description updated.")
	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/consultations/%d", f.ConsultationID))
}

// serve streams the raw bytes of a stored file by storage key. The key is
// looked up directly in the store, not via the database record.
func (h *Handler) serve(c *gin.Context) {
	key := c.Param("filename")

	r, size, err := h.Store.Open(c.Request.Context(), key)
	if err != nil {
		web.NotFound(c, "file")
		return
	}
	defer r.Close()

	contentType := mime.TypeByExtension(filepath.Ext(key))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.DataFromReader(http.StatusOK, size, contentType, r, nil)
}

func idParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		web.NotFound(c, "file")
		return 0, false
	}
	return id, true
}
