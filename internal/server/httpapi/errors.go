package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/animalspotter/internal/common"
)

type errorResponse struct {
	Error  bool   `json:"error"`
	Reason string `json:"reason"`
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, common.ErrorValidation):
		return http.StatusBadRequest
	case errors.Is(err, common.ErrorUnauthorized),
		errors.Is(err, common.ErrInvalidToken),
		errors.Is(err, common.ErrTokenExpired):
		return http.StatusUnauthorized
	case errors.Is(err, common.ErrorNotFound):
		return http.StatusNotFound
	case errors.Is(err, common.ErrorAlreadyExists):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// writeError maps err to a status and a {"error":true,"reason":...} body.
// Internal failures are logged and their details kept out of the response.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)

	reason := err.Error()
	if status == http.StatusInternalServerError {
		s.logger.Error(r.Context(), "request failed", "error", err, "request_id", requestIDFromContext(r.Context()))
		reason = common.ErrorInternal.Error()
	}

	writeJSON(w, status, errorResponse{Error: true, Reason: reason})
}

// methodNotAllowed answers a known path requested with the wrong method.
// Router middleware does not run for it, so the request id is echoed here.
func (s *Server) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	if id := r.Header.Get(common.RequestIDHeaderName); id != "" {
		w.Header().Set(common.RequestIDHeaderName, id)
	}
	writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: true, Reason: http.StatusText(http.StatusMethodNotAllowed)})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", common.ContentTypeJSON)
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
