package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gearted/gearted-backend/internal/logger"
	"github.com/gearted/gearted-backend/internal/services"
)

// ErrorResponse is the body of every failed request.
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// MessageResponse is returned by endpoints without a payload.
// swagger:model MessageResponse
type MessageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Errorw("failed to encode response", "err", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

// statusByError maps service sentinels to HTTP statuses.
var statusByError = []struct {
	err    error
	status int
}{
	{services.ErrMissingField, http.StatusBadRequest},
	{services.ErrInvalidField, http.StatusBadRequest},
	{services.ErrUnsupportedProvider, http.StatusBadRequest},
	{services.ErrInvalidCredentials, http.StatusUnauthorized},
	{services.ErrOAuthOnlyAccount, http.StatusUnauthorized},
	{services.ErrUserNotFound, http.StatusNotFound},
	{services.ErrEquipmentNotFound, http.StatusNotFound},
	{services.ErrListingNotFound, http.StatusNotFound},
	{services.ErrForbidden, http.StatusForbidden},
	{services.ErrAccountSuspended, http.StatusForbidden},
	{services.ErrUserAlreadyExists, http.StatusConflict},
	{services.ErrDuplicateRule, http.StatusConflict},
	{services.ErrStorageUnavailable, http.StatusServiceUnavailable},
	{services.ErrImageTooLarge, http.StatusRequestEntityTooLarge},
	{services.ErrUpstreamTimeout, http.StatusGatewayTimeout},
}

// writeServiceError answers with the status matching err. Unknown errors are
// logged and reported as 500 without details.
func writeServiceError(w http.ResponseWriter, err error, op string) {
	for _, m := range statusByError {
		if errors.Is(err, m.err) {
			writeError(w, m.status, err.Error())
			return
		}
	}
	logger.Log.Errorw("internal server error", "op", op, "err", err)
	writeError(w, http.StatusInternalServerError, "Internal server error")
}

func decodeJSON(r *http.Request, dst any) bool {
	return json.NewDecoder(r.Body).Decode(dst) == nil
}
