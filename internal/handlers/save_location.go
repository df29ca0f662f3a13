package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/weatherwize/weatherwize/internal/apperrors"
)

// LocationSaver defines the interface that the save-location service must implement.
type LocationSaver interface {
	Save(ctx context.Context, userID int64, locationText string) error
}

// SaveLocationRequest represents the JSON body for saving a location
// swagger:model SaveLocationRequest
type SaveLocationRequest struct {
	// Free-text location name
	// required: true
	// default: Boston
	Location string `json:"location"`
}

// SaveLocationResponse represents a successful save response
// swagger:model SaveLocationResponse
type SaveLocationResponse struct {
	// Success message
	// default: Location saved
	Message string `json:"message"`
}

// NewSaveLocationHandler returns an HTTP handler for saving a location.
// @Summary Save a location
// @Description Adds a location to the authenticated user's saved list. Duplicates are rejected case-insensitively.
// @Tags weather
// @Accept json
// @Produce json
// @Param saveLocationRequest body handlers.SaveLocationRequest true "Location to save"
// @Success 201 {object} handlers.SaveLocationResponse "Location saved"
// @Failure 400 {object} handlers.ErrorResponse "Missing location"
// @Failure 409 {object} handlers.ErrorResponse "Location already saved"
// @Router /api/weather/save [post]
// @Security BearerAuth
func NewSaveLocationHandler(svc LocationSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := userIDFromRequest(r)
		if err != nil {
			writeError(w, r, err)
			return
		}

		var req SaveLocationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, r, apperrors.Validation("Invalid request body"))
			return
		}

		if err := svc.Save(r.Context(), userID, req.Location); err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, SaveLocationResponse{
			Message: "Location saved",
		})
	}
}
