package handler

import (
	"errors"
	"net/http"

	"github.com/forgo/clubsphere/internal/middleware"
	"github.com/forgo/clubsphere/internal/model"
	"github.com/forgo/clubsphere/internal/service"
)

// ContactHandler handles contact directory HTTP requests
type ContactHandler struct {
	svc *service.ContactService
}

// NewContactHandler creates a new contact handler
func NewContactHandler(svc *service.ContactService) *ContactHandler {
	return &ContactHandler{svc: svc}
}

// Create handles POST /v1/clubs/{clubId}/contacts
func (h *ContactHandler) Create(w http.ResponseWriter, r *http.Request) {
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

	var req service.CreateContactRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	contact, err := h.svc.Create(ctx, userID, clubID, req)
	if err != nil {
		h.handleError(w, err)
		return
	}

	WriteData(w, http.StatusCreated, contact)
}

// List handles GET /v1/clubs/{clubId}/contacts
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
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

	contacts, err := h.svc.List(ctx, userID, clubID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	WriteData(w, http.StatusOK, contacts)
}

// Update handles PUT /v1/clubs/{clubId}/contacts/{contactId}
func (h *ContactHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	clubID := r.PathValue("clubId")
	contactID := r.PathValue("contactId")
	if clubID == "" || contactID == "" {
		WriteError(w, model.NewBadRequestError("club ID and contact ID required"))
		return
	}

	var req service.UpdateContactRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	contact, err := h.svc.Update(ctx, userID, clubID, contactID, req)
	if err != nil {
		h.handleError(w, err)
		return
	}

	WriteData(w, http.StatusOK, contact)
}

// Delete handles DELETE /v1/clubs/{clubId}/contacts/{contactId}
func (h *ContactHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	clubID := r.PathValue("clubId")
	contactID := r.PathValue("contactId")
	if clubID == "" || contactID == "" {
		WriteError(w, model.NewBadRequestError("club ID and contact ID required"))
		return
	}

	if err := h.svc.Delete(ctx, userID, clubID, contactID); err != nil {
		h.handleError(w, err)
		return
	}

	WriteData(w, http.StatusOK, map[string]string{"result": "deleted"})
}

func (h *ContactHandler) handleError(w http.ResponseWriter, err error) {
	if writeClubAccessError(w, err) {
		return
	}
	switch {
	case errors.Is(err, service.ErrContactNameRequired):
		WriteError(w, model.NewValidationError([]model.FieldError{
			{Field: "name", Message: "contact name is required"},
		}))
	case errors.Is(err, service.ErrContactNotFound):
		WriteError(w, model.NewNotFoundError("contact"))
	default:
		WriteError(w, model.NewInternalError(""))
	}
}
