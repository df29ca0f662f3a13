package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/weatherwize/weatherwize/internal/apperrors"
	"github.com/weatherwize/weatherwize/internal/logger"
	"github.com/weatherwize/weatherwize/internal/middlewares"
)

// ErrorResponse is the uniform error body for every endpoint.
type ErrorResponse struct {
	// Error message
	// example: Invalid credentials
	Message string `json:"message"`
}

// statusByKind is the single taxonomy-to-status translation table. Handlers
// only ever produce typed errors; this is the one place statuses come from.
var statusByKind = map[apperrors.Kind]int{
	apperrors.KindValidation:    http.StatusBadRequest,
	apperrors.KindAuth:          http.StatusUnauthorized,
	apperrors.KindForbidden:     http.StatusForbidden,
	apperrors.KindNotFound:      http.StatusNotFound,
	apperrors.KindConflict:      http.StatusConflict,
	apperrors.KindConfiguration: http.StatusServiceUnavailable,
	apperrors.KindUpstreamAuth:  http.StatusBadGateway,
	apperrors.KindInternal:      http.StatusInternalServerError,
}

// writeError translates a typed error into its HTTP status and JSON body.
// Upstream errors pass the provider's status through; untyped errors are
// logged and reported as internal. Server-side logs carry the request id
// assigned by the logging middleware.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	reqID := middlewares.GetRequestIDFromContext(r.Context())

	appErr := apperrors.As(err)
	if appErr == nil {
		logger.Log.Errorw("unexpected error at HTTP boundary", "request_id", reqID, "err", err)
		appErr = apperrors.Internal(err)
	}

	status, ok := statusByKind[appErr.Kind]
	if appErr.Kind == apperrors.KindUpstream {
		status = appErr.UpstreamStatus
		ok = status >= 400 && status <= 599
	}
	if !ok {
		status = http.StatusInternalServerError
	}

	if appErr.Kind == apperrors.KindInternal && appErr.Err != nil {
		logger.Log.Errorw("internal server error", "request_id", reqID, "err", appErr.Err)
	}

	writeJSON(w, status, ErrorResponse{Message: appErr.Message})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
