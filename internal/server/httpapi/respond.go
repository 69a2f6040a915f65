package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"finbook/internal/common"
)

// errorBody mirrors the response shape existing clients expect.
type errorBody struct {
	Detail string `json:"detail"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, errorBody{Detail: detail})
}

func unauthorized(w http.ResponseWriter, detail string) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	writeDetail(w, http.StatusUnauthorized, detail)
}

// writeServiceError maps service-layer errors onto the HTTP taxonomy.
// notFoundDetail supplies the per-entity 404 wording; ownership mismatches
// arrive here as common.ErrorNotFound and are indistinguishable from true
// absence.
func (s *HTTPServer) writeServiceError(w http.ResponseWriter, r *http.Request, err error, notFoundDetail string) {
	var validationErr *common.ValidationError

	switch {
	case errors.As(err, &validationErr):
		writeDetail(w, http.StatusUnprocessableEntity, validationErr.Message)
	case errors.Is(err, common.ErrorNotFound):
		writeDetail(w, http.StatusNotFound, notFoundDetail)
	case errors.Is(err, common.ErrAccountNotFound):
		writeDetail(w, http.StatusUnprocessableEntity, "Account does not exist.")
	case errors.Is(err, common.ErrTransferAccountNotFound):
		writeDetail(w, http.StatusUnprocessableEntity, "Transfer account does not exist.")
	case errors.Is(err, common.ErrorConflict):
		writeDetail(w, http.StatusBadRequest, "Email already registered.")
	case errors.Is(err, common.ErrCurrentPasswordRequired):
		writeDetail(w, http.StatusBadRequest, "Current password is required")
	case errors.Is(err, common.ErrCurrentPasswordIncorrect):
		writeDetail(w, http.StatusBadRequest, "Current password is incorrect")
	case errors.Is(err, common.ErrorUnauthorized):
		unauthorized(w, "Could not validate credentials")
	default:
		s.logger.Error(r.Context(), "request failed", "error", err.Error(), "path", r.URL.Path)
		writeDetail(w, http.StatusInternalServerError, "Internal server error")
	}
}

// decodeJSON decodes the request body into v, rejecting unknown syntax with
// a 422 the way existing clients expect.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, "Invalid request body.")
		return false
	}
	return true
}
