package handler

import (
	"errors"
	"net/http"

	"github.com/forgo/clubsphere/internal/middleware"
	"github.com/forgo/clubsphere/internal/model"
	"github.com/forgo/clubsphere/internal/service"
)

// EventHandler handles event HTTP requests
type EventHandler struct {
	svc *service.EventService
}

// NewEventHandler creates a new event handler
func NewEventHandler(svc *service.EventService) *EventHandler {
	return &EventHandler{svc: svc}
}

// Create handles POST /v1/clubs/{clubId}/events
func (h *EventHandler) Create(w http.ResponseWriter, r *http.Request) {
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

	var req service.CreateEventRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	event, err := h.svc.Create(ctx, userID, clubID, req)
	if err != nil {
		h.handleError(w, err)
		return
	}

	WriteData(w, http.StatusCreated, event)
}

// List handles GET /v1/clubs/{clubId}/events
func (h *EventHandler) List(w http.ResponseWriter, r *http.Request) {
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

	events, err := h.svc.List(ctx, userID, clubID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	WriteData(w, http.StatusOK, events)
}

// Volunteer handles POST /v1/clubs/{clubId}/events/{eventId}/volunteers
func (h *EventHandler) Volunteer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	clubID := r.PathValue("clubId")
	eventID := r.PathValue("eventId")
	if clubID == "" || eventID == "" {
		WriteError(w, model.NewBadRequestError("club ID and event ID required"))
		return
	}

	if err := h.svc.Volunteer(ctx, userID, clubID, eventID); err != nil {
		h.handleError(w, err)
		return
	}

	WriteData(w, http.StatusOK, map[string]string{"result": "signed up"})
}

// ListVolunteers handles GET /v1/clubs/{clubId}/events/{eventId}/volunteers
func (h *EventHandler) ListVolunteers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	clubID := r.PathValue("clubId")
	eventID := r.PathValue("eventId")
	if clubID == "" || eventID == "" {
		WriteError(w, model.NewBadRequestError("club ID and event ID required"))
		return
	}

	volunteers, err := h.svc.ListVolunteers(ctx, userID, clubID, eventID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	WriteData(w, http.StatusOK, volunteers)
}

// Delete handles DELETE /v1/clubs/{clubId}/events/{eventId}
func (h *EventHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	clubID := r.PathValue("clubId")
	eventID := r.PathValue("eventId")
	if clubID == "" || eventID == "" {
		WriteError(w, model.NewBadRequestError("club ID and event ID required"))
		return
	}

	if err := h.svc.Delete(ctx, userID, clubID, eventID); err != nil {
		h.handleError(w, err)
		return
	}

	WriteData(w, http.StatusOK, map[string]string{"result": "deleted"})
}

func (h *EventHandler) handleError(w http.ResponseWriter, err error) {
	if writeClubAccessError(w, err) {
		return
	}
	switch {
	case errors.Is(err, service.ErrTitleRequired):
		WriteError(w, model.NewValidationError([]model.FieldError{
			{Field: "title", Message: "title is required"},
		}))
	case errors.Is(err, service.ErrEventNotFound):
		WriteError(w, model.NewNotFoundError("event"))
	case errors.Is(err, service.ErrAlreadySignedUp):
		WriteError(w, model.NewConflictError("already signed up to volunteer for this event"))
	default:
		WriteError(w, model.NewInternalError(""))
	}
}
