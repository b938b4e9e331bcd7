package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"cinevault/internal/common"
	"cinevault/internal/logging"
)

type errorBody struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

// writeError maps service errors onto HTTP statuses. Anything unrecognized is
// a 500 with a generic body; the detail goes to the log only.
func writeError(w http.ResponseWriter, r *http.Request, l logging.Logger, err error) {
	switch {
	case errors.Is(err, common.ErrorValidation):
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid input"})
	case errors.Is(err, common.ErrorWeakPassword):
		writeJSON(w, http.StatusBadRequest, errorBody{Error: common.ErrorWeakPassword.Error()})
	case errors.Is(err, common.ErrorEmailTaken):
		writeJSON(w, http.StatusConflict, errorBody{Error: common.ErrorEmailTaken.Error()})
	case errors.Is(err, common.ErrorInvalidCredentials):
		writeJSON(w, http.StatusUnauthorized, errorBody{Error: common.ErrorInvalidCredentials.Error()})
	case errors.Is(err, common.ErrorSessionExpired):
		// distinct code so clients know to drop the token and re-login
		writeJSON(w, http.StatusUnauthorized, errorBody{Error: common.ErrorSessionExpired.Error(), Code: "SESSION_EXPIRED"})
	case errors.Is(err, common.ErrorInvalidToken):
		writeJSON(w, http.StatusUnauthorized, errorBody{Error: common.ErrorInvalidToken.Error()})
	case errors.Is(err, common.ErrorWrongCurrentPassword):
		writeJSON(w, http.StatusForbidden, errorBody{Error: common.ErrorWrongCurrentPassword.Error()})
	case errors.Is(err, common.ErrorWrongAnswer):
		writeJSON(w, http.StatusForbidden, errorBody{Error: common.ErrorWrongAnswer.Error()})
	case errors.Is(err, common.ErrorUserNotFound):
		writeJSON(w, http.StatusNotFound, errorBody{Error: common.ErrorUserNotFound.Error()})
	case errors.Is(err, common.ErrorNotFound):
		writeJSON(w, http.StatusNotFound, errorBody{Error: common.ErrorNotFound.Error()})
	default:
		l.Error(r.Context(), "request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: "internal error"})
	}
}
