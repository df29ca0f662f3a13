package handlers

import (
	"context"
	"net/http"

	"github.com/weatherwize/weatherwize/internal/models"
)

// ForecastGetter defines the interface that the forecast pipeline must implement.
type ForecastGetter interface {
	GetHourlyForecast(ctx context.Context, locationText string) (*models.ForecastReport, error)
}

// NewGetHourlyForecastHandler returns an HTTP handler for the hourly forecast.
// @Summary Get hourly forecast
// @Description Resolves the location and returns up to eight forecast intervals in provider order
// @Tags weather
// @Produce json
// @Param location query string true "Free-text location, e.g. Boston"
// @Success 200 {object} models.ForecastReport "Forecast report"
// @Failure 400 {object} handlers.ErrorResponse "Missing location"
// @Failure 404 {object} handlers.ErrorResponse "Location not found"
// @Failure 502 {object} handlers.ErrorResponse "Provider rejected credentials"
// @Failure 503 {object} handlers.ErrorResponse "Weather service not configured"
// @Router /api/weather/hourly [get]
// @Security BearerAuth
func NewGetHourlyForecastHandler(svc ForecastGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report, err := svc.GetHourlyForecast(r.Context(), r.URL.Query().Get("location"))
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, report)
	}
}
