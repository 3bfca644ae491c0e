package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/forgo/clubsphere/internal/middleware"
	"github.com/forgo/clubsphere/internal/model"
	"github.com/forgo/clubsphere/internal/service"
)

// AchievementHandler handles achievement HTTP requests
type AchievementHandler struct {
	svc *service.AchievementService
}

// NewAchievementHandler creates a new achievement handler
func NewAchievementHandler(svc *service.AchievementService) *AchievementHandler {
	return &AchievementHandler{svc: svc}
}

// Create handles POST /v1/clubs/{clubId}/achievements
func (h *AchievementHandler) Create(w http.ResponseWriter, r *http.Request) {
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

	var req service.CreateAchievementRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	achievement, err := h.svc.Create(ctx, userID, clubID, req)
	if err != nil {
		h.handleError(w, err)
		return
	}

	WriteData(w, http.StatusCreated, achievement)
}

// List handles GET /v1/clubs/{clubId}/achievements
func (h *AchievementHandler) List(w http.ResponseWriter, r *http.Request) {
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

	achievements, err := h.svc.List(ctx, userID, clubID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	WriteData(w, http.StatusOK, achievements)
}

// Update handles PUT /v1/clubs/{clubId}/achievements/{achievementId}
func (h *AchievementHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	clubID := r.PathValue("clubId")
	achievementID := r.PathValue("achievementId")
	if clubID == "" || achievementID == "" {
		WriteError(w, model.NewBadRequestError("club ID and achievement ID required"))
		return
	}

	var req service.UpdateAchievementRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	achievement, err := h.svc.Update(ctx, userID, clubID, achievementID, req)
	if err != nil {
		h.handleError(w, err)
		return
	}

	WriteData(w, http.StatusOK, achievement)
}

// Delete handles DELETE /v1/clubs/{clubId}/achievements/{achievementId}
func (h *AchievementHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	clubID := r.PathValue("clubId")
	achievementID := r.PathValue("achievementId")
	if clubID == "" || achievementID == "" {
		WriteError(w, model.NewBadRequestError("club ID and achievement ID required"))
		return
	}

	if err := h.svc.Delete(ctx, userID, clubID, achievementID); err != nil {
		h.handleError(w, err)
		return
	}

	WriteData(w, http.StatusOK, map[string]string{"result": "deleted"})
}

type awardRequest struct {
	UserID string `json:"user_id"`
}

// Award handles POST /v1/clubs/{clubId}/achievements/{achievementId}/award
func (h *AchievementHandler) Award(w http.ResponseWriter, r *http.Request) {
	h.changeAward(w, r, h.svc.Award, "awarded")
}

// Revoke handles POST /v1/clubs/{clubId}/achievements/{achievementId}/revoke
func (h *AchievementHandler) Revoke(w http.ResponseWriter, r *http.Request) {
	h.changeAward(w, r, h.svc.Revoke, "revoked")
}

func (h *AchievementHandler) changeAward(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, actorID, clubID, achievementID, targetID string) error, result string) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	clubID := r.PathValue("clubId")
	achievementID := r.PathValue("achievementId")
	if clubID == "" || achievementID == "" {
		WriteError(w, model.NewBadRequestError("club ID and achievement ID required"))
		return
	}

	var req awardRequest
	if err := DecodeJSON(r, &req); err != nil || req.UserID == "" {
		WriteError(w, model.NewBadRequestError("user_id required"))
		return
	}

	if err := op(ctx, userID, clubID, achievementID, req.UserID); err != nil {
		h.handleError(w, err)
		return
	}

	WriteData(w, http.StatusOK, map[string]string{"result": result})
}

func (h *AchievementHandler) handleError(w http.ResponseWriter, err error) {
	if writeClubAccessError(w, err) {
		return
	}
	switch {
	case errors.Is(err, service.ErrTitleRequired):
		WriteError(w, model.NewValidationError([]model.FieldError{
			{Field: "title", Message: "title is required"},
		}))
	case errors.Is(err, service.ErrAchievementNotFound):
		WriteError(w, model.NewNotFoundError("achievement"))
	case errors.Is(err, service.ErrNotAMember):
		WriteError(w, model.NewConflictError("user is not a member of this club"))
	case errors.Is(err, service.ErrAlreadyAwarded):
		WriteError(w, model.NewConflictError("achievement already awarded to this member"))
	case errors.Is(err, service.ErrNotAwarded):
		WriteError(w, model.NewConflictError("achievement was never awarded to this member"))
	default:
		WriteError(w, model.NewInternalError(""))
	}
}
