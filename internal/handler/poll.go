package handler

import (
	"errors"
	"net/http"

	"github.com/forgo/clubsphere/internal/middleware"
	"github.com/forgo/clubsphere/internal/model"
	"github.com/forgo/clubsphere/internal/service"
)

// PollHandler handles poll HTTP requests
type PollHandler struct {
	svc *service.PollService
}

// NewPollHandler creates a new poll handler
func NewPollHandler(svc *service.PollService) *PollHandler {
	return &PollHandler{svc: svc}
}

// Create handles POST /v1/clubs/{clubId}/polls
func (h *PollHandler) Create(w http.ResponseWriter, r *http.Request) {
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

	var req service.CreatePollRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	poll, err := h.svc.Create(ctx, userID, clubID, req)
	if err != nil {
		h.handleError(w, err)
		return
	}

	WriteData(w, http.StatusCreated, poll)
}

// List handles GET /v1/clubs/{clubId}/polls
func (h *PollHandler) List(w http.ResponseWriter, r *http.Request) {
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

	polls, err := h.svc.List(ctx, userID, clubID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	WriteData(w, http.StatusOK, polls)
}

type voteRequest struct {
	OptionID string `json:"option_id"`
}

// Vote handles POST /v1/clubs/{clubId}/polls/{pollId}/vote
func (h *PollHandler) Vote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	clubID := r.PathValue("clubId")
	pollID := r.PathValue("pollId")
	if clubID == "" || pollID == "" {
		WriteError(w, model.NewBadRequestError("club ID and poll ID required"))
		return
	}

	var req voteRequest
	if err := DecodeJSON(r, &req); err != nil || req.OptionID == "" {
		WriteError(w, model.NewBadRequestError("option_id required"))
		return
	}

	poll, err := h.svc.Vote(ctx, userID, clubID, pollID, req.OptionID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	WriteData(w, http.StatusOK, poll)
}

// Update handles PUT /v1/clubs/{clubId}/polls/{pollId}. Poll editing is
// deliberately unsupported.
func (h *PollHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	if err := h.svc.Edit(ctx, userID, r.PathValue("clubId"), r.PathValue("pollId")); err != nil {
		h.handleError(w, err)
		return
	}
}

// Delete handles DELETE /v1/clubs/{clubId}/polls/{pollId}
func (h *PollHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	clubID := r.PathValue("clubId")
	pollID := r.PathValue("pollId")
	if clubID == "" || pollID == "" {
		WriteError(w, model.NewBadRequestError("club ID and poll ID required"))
		return
	}

	if err := h.svc.Delete(ctx, userID, clubID, pollID); err != nil {
		h.handleError(w, err)
		return
	}

	WriteData(w, http.StatusOK, map[string]string{"result": "deleted"})
}

func (h *PollHandler) handleError(w http.ResponseWriter, err error) {
	if writeClubAccessError(w, err) {
		return
	}
	switch {
	case errors.Is(err, service.ErrPollQuestionRequired):
		WriteError(w, model.NewValidationError([]model.FieldError{
			{Field: "question", Message: "poll question is required"},
		}))
	case errors.Is(err, service.ErrPollOptionsRequired):
		WriteError(w, model.NewValidationError([]model.FieldError{
			{Field: "options", Message: "a poll needs at least two options"},
		}))
	case errors.Is(err, service.ErrPollNotFound):
		WriteError(w, model.NewNotFoundError("poll"))
	case errors.Is(err, service.ErrPollOptionNotFound):
		WriteError(w, model.NewNotFoundError("poll option"))
	case errors.Is(err, service.ErrPollEditNotSupported):
		WriteError(w, model.NewNotImplementedError("editing a poll is not supported"))
	default:
		WriteError(w, model.NewInternalError(""))
	}
}
