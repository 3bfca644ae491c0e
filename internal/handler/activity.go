package handler

import (
	"errors"
	"net/http"

	"github.com/forgo/clubsphere/internal/middleware"
	"github.com/forgo/clubsphere/internal/model"
	"github.com/forgo/clubsphere/internal/service"
)

// ActivityHandler handles activity log HTTP requests
type ActivityHandler struct {
	svc *service.ActivityService
}

// NewActivityHandler creates a new activity handler
func NewActivityHandler(svc *service.ActivityService) *ActivityHandler {
	return &ActivityHandler{svc: svc}
}

// Create handles POST /v1/clubs/{clubId}/activities
func (h *ActivityHandler) Create(w http.ResponseWriter, r *http.Request) {
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

	var req service.CreateActivityRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	activity, err := h.svc.Create(ctx, userID, clubID, req)
	if err != nil {
		h.handleError(w, err)
		return
	}

	WriteData(w, http.StatusCreated, activity)
}

// List handles GET /v1/clubs/{clubId}/activities
func (h *ActivityHandler) List(w http.ResponseWriter, r *http.Request) {
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

	activities, err := h.svc.List(ctx, userID, clubID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	WriteData(w, http.StatusOK, activities)
}

func (h *ActivityHandler) handleError(w http.ResponseWriter, err error) {
	if writeClubAccessError(w, err) {
		return
	}
	switch {
	case errors.Is(err, service.ErrTitleRequired):
		WriteError(w, model.NewValidationError([]model.FieldError{
			{Field: "title", Message: "title is required"},
		}))
	default:
		WriteError(w, model.NewInternalError(""))
	}
}
