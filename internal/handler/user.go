package handler

import (
	"errors"
	"net/http"

	"github.com/forgo/clubsphere/internal/middleware"
	"github.com/forgo/clubsphere/internal/model"
	"github.com/forgo/clubsphere/internal/service"
)

// UserHandler serves the caller's club listings
type UserHandler struct {
	svc *service.ClubService
}

// NewUserHandler creates a new user handler
func NewUserHandler(svc *service.ClubService) *UserHandler {
	return &UserHandler{svc: svc}
}

// MyClubs handles GET /v1/users/me/clubs
func (h *UserHandler) MyClubs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	clubs, err := h.svc.ListMyClubs(ctx, userID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	WriteData(w, http.StatusOK, clubs)
}

// MyInvitations handles GET /v1/users/me/invitations
func (h *UserHandler) MyInvitations(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	invitations, err := h.svc.ListInvitations(ctx, userID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	WriteData(w, http.StatusOK, invitations)
}

func (h *UserHandler) handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		WriteError(w, model.NewNotFoundError("user"))
	default:
		WriteError(w, model.NewInternalError(""))
	}
}
