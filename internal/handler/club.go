package handler

import (
	"errors"
	"net/http"

	"github.com/forgo/clubsphere/internal/middleware"
	"github.com/forgo/clubsphere/internal/model"
	"github.com/forgo/clubsphere/internal/service"
)

// ClubHandler handles club and membership HTTP requests
type ClubHandler struct {
	svc *service.ClubService
}

// NewClubHandler creates a new club handler
func NewClubHandler(svc *service.ClubService) *ClubHandler {
	return &ClubHandler{svc: svc}
}

// Create handles POST /v1/clubs
func (h *ClubHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	var req model.CreateClubRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	club, err := h.svc.CreateClub(ctx, userID, req)
	if err != nil {
		h.handleError(w, err)
		return
	}

	WriteData(w, http.StatusCreated, club)
}

// List handles GET /v1/clubs
func (h *ClubHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if middleware.GetUserID(ctx) == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	clubs, err := h.svc.ListClubs(ctx)
	if err != nil {
		h.handleError(w, err)
		return
	}

	WriteData(w, http.StatusOK, clubs)
}

// Get handles GET /v1/clubs/{clubId}
func (h *ClubHandler) Get(w http.ResponseWriter, r *http.Request) {
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

	club, err := h.svc.GetClub(ctx, userID, clubID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	WriteData(w, http.StatusOK, club)
}

// Update handles PUT /v1/clubs/{clubId}
func (h *ClubHandler) Update(w http.ResponseWriter, r *http.Request) {
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

	var req model.UpdateClubRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	club, err := h.svc.EditClub(ctx, userID, clubID, req)
	if err != nil {
		h.handleError(w, err)
		return
	}

	WriteData(w, http.StatusOK, club)
}

// Invite handles POST /v1/clubs/{clubId}/invite
func (h *ClubHandler) Invite(w http.ResponseWriter, r *http.Request) {
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

	var req model.InviteRequest
	if err := DecodeJSON(r, &req); err != nil || req.UserID == "" {
		WriteError(w, model.NewBadRequestError("user_id required"))
		return
	}

	if err := h.svc.Invite(ctx, userID, clubID, req.UserID); err != nil {
		h.handleError(w, err)
		return
	}

	WriteData(w, http.StatusOK, map[string]string{"result": "invited"})
}

// RespondInvitation handles POST /v1/clubs/{clubId}/invitations/respond
func (h *ClubHandler) RespondInvitation(w http.ResponseWriter, r *http.Request) {
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

	var req model.RespondInvitationRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	if err := h.svc.RespondToInvitation(ctx, userID, clubID, req.Accept); err != nil {
		h.handleError(w, err)
		return
	}

	result := "declined"
	if req.Accept {
		result = "joined"
	}
	WriteData(w, http.StatusOK, map[string]string{"result": result})
}

// RemoveMember handles DELETE /v1/clubs/{clubId}/members/{userId}
func (h *ClubHandler) RemoveMember(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	clubID := r.PathValue("clubId")
	targetID := r.PathValue("userId")
	if clubID == "" || targetID == "" {
		WriteError(w, model.NewBadRequestError("club ID and user ID required"))
		return
	}

	if err := h.svc.RemoveMember(ctx, userID, clubID, targetID); err != nil {
		h.handleError(w, err)
		return
	}

	WriteData(w, http.StatusOK, map[string]string{"result": "removed"})
}

func (h *ClubHandler) handleError(w http.ResponseWriter, err error) {
	if writeClubAccessError(w, err) {
		return
	}
	switch {
	case errors.Is(err, service.ErrClubNameRequired):
		WriteError(w, model.NewValidationError([]model.FieldError{
			{Field: "name", Message: "club name is required"},
		}))
	case errors.Is(err, service.ErrClubNameTooLong):
		WriteError(w, model.NewValidationError([]model.FieldError{
			{Field: "name", Message: "club name exceeds maximum length"},
		}))
	case errors.Is(err, service.ErrClubDescTooLong):
		WriteError(w, model.NewValidationError([]model.FieldError{
			{Field: "description", Message: "club description exceeds maximum length"},
		}))
	case errors.Is(err, service.ErrClubNameExists):
		WriteError(w, model.NewConflictError("a club with this name already exists"))
	case errors.Is(err, service.ErrUserNotFound):
		WriteError(w, model.NewNotFoundError("user"))
	case errors.Is(err, service.ErrAlreadyMember):
		WriteError(w, model.NewConflictError("user is already a member of this club"))
	case errors.Is(err, service.ErrAlreadyInvited):
		WriteError(w, model.NewConflictError("user already has a pending invitation"))
	case errors.Is(err, service.ErrNoInvitationFound):
		WriteError(w, model.NewConflictError("no pending invitation for this club"))
	case errors.Is(err, service.ErrNotAMember):
		WriteError(w, model.NewConflictError("user is not a member of this club"))
	case errors.Is(err, service.ErrCannotRemoveOwner):
		WriteError(w, model.NewForbiddenError("the club owner cannot be removed"))
	default:
		WriteError(w, model.NewInternalError(""))
	}
}
