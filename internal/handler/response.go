package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/forgo/clubsphere/internal/model"
	"github.com/forgo/clubsphere/internal/service"
)

// DataResponse wraps a successful response
type DataResponse struct {
	Data interface{} `json:"data"`
}

// WriteJSON writes a JSON response with the given status code
func WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// WriteData writes a successful data response
func WriteData(w http.ResponseWriter, status int, data interface{}) {
	WriteJSON(w, status, DataResponse{Data: data})
}

// WriteError writes an error response using RFC 9457 Problem Details
func WriteError(w http.ResponseWriter, err *model.ProblemDetails) {
	WriteJSON(w, err.Status, err)
}

// DecodeJSON decodes a JSON request body into the given struct
func DecodeJSON(r *http.Request, v interface{}) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(v)
}

// writeClubAccessError maps the errors every club-scoped operation can
// produce. Returns false if the error is not one of them, leaving it to
// the caller's own switch.
func writeClubAccessError(w http.ResponseWriter, err error) bool {
	switch {
	case errors.Is(err, service.ErrClubNotFound):
		WriteError(w, model.NewNotFoundError("club"))
	case errors.Is(err, service.ErrNotClubMember):
		WriteError(w, model.NewForbiddenError("not a member of this club"))
	case errors.Is(err, service.ErrNotClubManager):
		WriteError(w, model.NewForbiddenError("not authorized to perform this action"))
	case errors.Is(err, service.ErrVersionConflict):
		WriteError(w, model.NewConflictError("club was modified concurrently, retry the request"))
	default:
		return false
	}
	return true
}
