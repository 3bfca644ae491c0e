package handler

import (
	"errors"
	"net/http"

	"github.com/forgo/clubsphere/internal/middleware"
	"github.com/forgo/clubsphere/internal/model"
	"github.com/forgo/clubsphere/internal/service"
)

// AnnouncementHandler handles announcement HTTP requests
type AnnouncementHandler struct {
	svc *service.AnnouncementService
}

// NewAnnouncementHandler creates a new announcement handler
func NewAnnouncementHandler(svc *service.AnnouncementService) *AnnouncementHandler {
	return &AnnouncementHandler{svc: svc}
}

// Create handles POST /v1/clubs/{clubId}/announcements
func (h *AnnouncementHandler) Create(w http.ResponseWriter, r *http.Request) {
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

	var req service.CreateAnnouncementRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	announcement, err := h.svc.Create(ctx, userID, clubID, req)
	if err != nil {
		h.handleError(w, err)
		return
	}

	WriteData(w, http.StatusCreated, announcement)
}

// List handles GET /v1/clubs/{clubId}/announcements
func (h *AnnouncementHandler) List(w http.ResponseWriter, r *http.Request) {
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

	announcements, err := h.svc.List(ctx, userID, clubID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	WriteData(w, http.StatusOK, announcements)
}

func (h *AnnouncementHandler) handleError(w http.ResponseWriter, err error) {
	if writeClubAccessError(w, err) {
		return
	}
	switch {
	case errors.Is(err, service.ErrTitleRequired):
		WriteError(w, model.NewValidationError([]model.FieldError{
			{Field: "title", Message: "title is required"},
		}))
	case errors.Is(err, service.ErrContentRequired):
		WriteError(w, model.NewValidationError([]model.FieldError{
			{Field: "body", Message: "content is required"},
		}))
	default:
		WriteError(w, model.NewInternalError(""))
	}
}
