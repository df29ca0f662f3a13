package handlers

import (
	"net/http"

	"github.com/weatherwize/weatherwize/internal/apperrors"
	"github.com/weatherwize/weatherwize/internal/middlewares"
)

// userIDFromRequest returns the authenticated user's id attached by the auth
// middleware. Protected routes without claims are a wiring bug, reported as
// an auth failure rather than a panic.
func userIDFromRequest(r *http.Request) (int64, error) {
	claims, ok := middlewares.GetClaimsFromContext(r.Context())
	if !ok {
		return 0, apperrors.Auth("No token, authorization denied")
	}
	return claims.UserID, nil
}
