package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jbweber/homelab/nettree/internal/inventory"
	"github.com/jbweber/homelab/nettree/internal/repository"
)

// ErrorResponse is the JSON body of every failed request
type ErrorResponse struct {
	Error string `json:"error"`
}

// writeJSON encodes body with the given status
func (a *API) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		a.log.Warnw("failed to encode response", "status", status, "error", err)
	}
}

// writeError writes msg as an ErrorResponse
func (a *API) writeError(w http.ResponseWriter, status int, msg string) {
	a.writeJSON(w, status, ErrorResponse{Error: msg})
}

// statusFor maps repository and inventory errors to HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, repository.ErrNotFound), errors.Is(err, inventory.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, repository.ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, repository.ErrInvalidEntity), errors.Is(err, inventory.ErrInvalidConfiguration):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// writeErr logs server-side failures and writes err with its mapped status
func (a *API) writeErr(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		a.log.Errorw("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		a.writeError(w, status, "internal error")
		return
	}
	a.writeError(w, status, err.Error())
}
