package handler

import (
	"errors"
	"net/http"

	"github.com/forgo/clubsphere/internal/middleware"
	"github.com/forgo/clubsphere/internal/model"
	"github.com/forgo/clubsphere/internal/service"
)

// MeetingHandler handles meeting HTTP requests
type MeetingHandler struct {
	svc *service.MeetingService
}

// NewMeetingHandler creates a new meeting handler
func NewMeetingHandler(svc *service.MeetingService) *MeetingHandler {
	return &MeetingHandler{svc: svc}
}

// Create handles POST /v1/clubs/{clubId}/meetings
func (h *MeetingHandler) Create(w http.ResponseWriter, r *http.Request) {
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

	var req service.CreateMeetingRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	meeting, err := h.svc.Create(ctx, userID, clubID, req)
	if err != nil {
		h.handleError(w, err)
		return
	}

	WriteData(w, http.StatusCreated, meeting)
}

// List handles GET /v1/clubs/{clubId}/meetings
func (h *MeetingHandler) List(w http.ResponseWriter, r *http.Request) {
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

	meetings, err := h.svc.List(ctx, userID, clubID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	WriteData(w, http.StatusOK, meetings)
}

// MarkAttendance handles POST /v1/clubs/{clubId}/meetings/{meetingId}/attendance
func (h *MeetingHandler) MarkAttendance(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	clubID := r.PathValue("clubId")
	meetingID := r.PathValue("meetingId")
	if clubID == "" || meetingID == "" {
		WriteError(w, model.NewBadRequestError("club ID and meeting ID required"))
		return
	}

	if err := h.svc.MarkAttendance(ctx, userID, clubID, meetingID); err != nil {
		h.handleError(w, err)
		return
	}

	WriteData(w, http.StatusOK, map[string]string{"result": "attended"})
}

func (h *MeetingHandler) handleError(w http.ResponseWriter, err error) {
	if writeClubAccessError(w, err) {
		return
	}
	switch {
	case errors.Is(err, service.ErrTitleRequired):
		WriteError(w, model.NewValidationError([]model.FieldError{
			{Field: "title", Message: "title is required"},
		}))
	case errors.Is(err, service.ErrMeetingNotFound):
		WriteError(w, model.NewNotFoundError("meeting"))
	case errors.Is(err, service.ErrNotInvitedToMeeting):
		WriteError(w, model.NewForbiddenError("user is not invited to this meeting"))
	case errors.Is(err, service.ErrAttendanceAlreadySet):
		WriteError(w, model.NewConflictError("attendance already marked for this meeting"))
	default:
		WriteError(w, model.NewInternalError(""))
	}
}
