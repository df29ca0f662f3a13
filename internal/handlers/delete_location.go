package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/weatherwize/weatherwize/internal/apperrors"
)

// LocationDeleter defines the interface that the delete-location service must implement.
type LocationDeleter interface {
	Delete(ctx context.Context, userID, locationID int64) error
}

// DeleteLocationResponse represents a successful delete response
// swagger:model DeleteLocationResponse
type DeleteLocationResponse struct {
	// Success message
	// default: Location deleted
	Message string `json:"message"`
}

// NewDeleteLocationHandler returns an HTTP handler for deleting a saved location.
// @Summary Delete a saved location
// @Description Removes a saved location owned by the authenticated user. Locations owned by other users are reported as not found.
// @Tags weather
// @Produce json
// @Param id path int true "Saved location ID"
// @Success 200 {object} handlers.DeleteLocationResponse "Location deleted"
// @Failure 400 {object} handlers.ErrorResponse "Invalid id"
// @Failure 404 {object} handlers.ErrorResponse "Saved location not found"
// @Router /api/weather/saved/{id} [delete]
// @Security BearerAuth
func NewDeleteLocationHandler(svc LocationDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := userIDFromRequest(r)
		if err != nil {
			writeError(w, r, err)
			return
		}

		locationID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil || locationID <= 0 {
			writeError(w, r, apperrors.Validation("Invalid location id"))
			return
		}

		if err := svc.Delete(r.Context(), userID, locationID); err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, DeleteLocationResponse{
			Message: "Location deleted",
		})
	}
}
