package handlers

import (
	"context"
	"net/http"

	"github.com/weatherwize/weatherwize/internal/models"
)

// LocationLister defines the interface that the list-locations service must implement.
type LocationLister interface {
	List(ctx context.Context, userID int64) ([]models.SavedLocationDB, error)
}

// NewListSavedLocationsHandler returns an HTTP handler for listing saved locations.
// @Summary List saved locations
// @Description Returns every location saved by the authenticated user
// @Tags weather
// @Produce json
// @Success 200 {array} models.SavedLocationDB "Saved locations"
// @Router /api/weather/saved [get]
// @Security BearerAuth
func NewListSavedLocationsHandler(svc LocationLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := userIDFromRequest(r)
		if err != nil {
			writeError(w, r, err)
			return
		}

		locations, err := svc.List(r.Context(), userID)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, locations)
	}
}
