package handler

import (
	"errors"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/forgo/clubsphere/internal/middleware"
	"github.com/forgo/clubsphere/internal/model"
	"github.com/forgo/clubsphere/internal/service"
)

// Uploader stores uploaded file blobs and returns their retrieval URL
type Uploader interface {
	Save(filename string, r io.Reader) (string, error)
}

// ResourceHandler handles resource HTTP requests
type ResourceHandler struct {
	svc      *service.ResourceService
	uploads  Uploader
	maxBytes int64
}

// NewResourceHandler creates a new resource handler
func NewResourceHandler(svc *service.ResourceService, uploads Uploader, maxBytes int64) *ResourceHandler {
	return &ResourceHandler{svc: svc, uploads: uploads, maxBytes: maxBytes}
}

type linkResourceRequest struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Create handles POST /v1/clubs/{clubId}/resources. A multipart body
// uploads a file; a JSON body shares a link.
func (h *ResourceHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	clubID := r.PathValue("clubId")
	if clubID == "" {
		WriteError(w, model.NewBadRequestError("club ID required"))
		return
	}

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	var req service.CreateResourceRequest
	if strings.HasPrefix(mediaType, "multipart/") {
		if err := r.ParseMultipartForm(h.maxBytes); err != nil {
			WriteError(w, model.NewBadRequestError("invalid multipart body"))
			return
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			WriteError(w, model.NewBadRequestError("file field required"))
			return
		}
		defer file.Close()

		url, err := h.uploads.Save(header.Filename, file)
		if err != nil {
			WriteError(w, model.NewBadRequestError("upload failed"))
			return
		}

		name := r.FormValue("name")
		if name == "" {
			name = header.Filename
		}
		req = service.CreateResourceRequest{
			Type: model.ResourceTypeFile,
			Name: name,
			URL:  url,
		}
	} else {
		var link linkResourceRequest
		if err := DecodeJSON(r, &link); err != nil {
			WriteError(w, model.NewBadRequestError("invalid request body"))
			return
		}
		req = service.CreateResourceRequest{
			Type: model.ResourceTypeLink,
			Name: link.Name,
			URL:  link.URL,
		}
	}

	resource, err := h.svc.Create(ctx, userID, clubID, req)
	if err != nil {
		h.handleError(w, err)
		return
	}

	WriteData(w, http.StatusCreated, resource)
}

// List handles GET /v1/clubs/{clubId}/resources
func (h *ResourceHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	clubID := r.PathValue("clubId")
	if clubID == "" {
		WriteError(w, model.NewBadRequestError("club ID required"))
		return
	}

	resources, err := h.svc.List(ctx, userID, clubID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	WriteData(w, http.StatusOK, resources)
}

// Delete handles DELETE /v1/clubs/{clubId}/resources/{resourceId}
func (h *ResourceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	clubID := r.PathValue("clubId")
	resourceID := r.PathValue("resourceId")
	if clubID == "" || resourceID == "" {
		WriteError(w, model.NewBadRequestError("club ID and resource ID required"))
		return
	}

	if err := h.svc.Delete(ctx, userID, clubID, resourceID); err != nil {
		h.handleError(w, err)
		return
	}

	WriteData(w, http.StatusOK, map[string]string{"result": "deleted"})
}

func (h *ResourceHandler) handleError(w http.ResponseWriter, err error) {
	if writeClubAccessError(w, err) {
		return
	}
	switch {
	case errors.Is(err, service.ErrResourceNameRequired):
		WriteError(w, model.NewValidationError([]model.FieldError{
			{Field: "name", Message: "resource name is required"},
		}))
	case errors.Is(err, service.ErrResourceTargetRequired):
		WriteError(w, model.NewValidationError([]model.FieldError{
			{Field: "url", Message: "resource needs a file or a link"},
		}))
	case errors.Is(err, service.ErrResourceNotFound):
		WriteError(w, model.NewNotFoundError("resource"))
	default:
		WriteError(w, model.NewInternalError(""))
	}
}
