package handlers

import (
	"context"
	"net/http"

	"github.com/weatherwize/weatherwize/internal/models"
)

// WeatherGetter defines the interface that the weather pipeline must implement.
type WeatherGetter interface {
	GetWeather(ctx context.Context, locationText string) (*models.WeatherSnapshot, error)
}

// NewGetWeatherHandler returns an HTTP handler for current conditions.
// @Summary Get current weather
// @Description Resolves the location and returns normalized current conditions in imperial units
// @Tags weather
// @Produce json
// @Param location query string true "Free-text location, e.g. Boston"
// @Success 200 {object} models.WeatherSnapshot "Current conditions"
// @Failure 400 {object} handlers.ErrorResponse "Missing location"
// @Failure 404 {object} handlers.ErrorResponse "Location not found"
// @Failure 502 {object} handlers.ErrorResponse "Provider rejected credentials"
// @Failure 503 {object} handlers.ErrorResponse "Weather service not configured"
// @Router /api/weather [get]
// @Security BearerAuth
func NewGetWeatherHandler(svc WeatherGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snapshot, err := svc.GetWeather(r.Context(), r.URL.Query().Get("location"))
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, snapshot)
	}
}
