package services

import (
	"context"
	"strings"

	"github.com/weatherwize/weatherwize/internal/apperrors"
	"github.com/weatherwize/weatherwize/internal/logger"
	"github.com/weatherwize/weatherwize/internal/models"
)

// forecastPointCount is the number of intervals requested per forecast.
const forecastPointCount = 8

// GeocodeResolver resolves free-text locations against the upstream provider.
// A nil result with a nil error means no match.
type GeocodeResolver interface {
	Resolve(ctx context.Context, query string) (*models.GeoPoint, error)
}

// GeocodeCacheReader caches resolved locations.
type GeocodeCacheReader interface {
	Get(ctx context.Context, query string) (*models.GeoPoint, error)
	Set(ctx context.Context, query string, point *models.GeoPoint) error
}

// WeatherReader fetches normalized weather data from the upstream provider.
type WeatherReader interface {
	Current(ctx context.Context, lat, lon float64) (*models.WeatherSnapshot, error)
	Hourly(ctx context.Context, lat, lon float64, count int) ([]models.ForecastInterval, error)
}

// WeatherService orchestrates the lookup pipeline:
// resolve, fetch, compose with the geocoder's display name.
type WeatherService struct {
	resolver GeocodeResolver
	cache    GeocodeCacheReader
	weather  WeatherReader
}

// NewWeatherService creates a new service instance
func NewWeatherService(resolver GeocodeResolver, cache GeocodeCacheReader, weather WeatherReader) *WeatherService {
	return &WeatherService{
		resolver: resolver,
		cache:    cache,
		weather:  weather,
	}
}

// GetWeather returns current conditions for a free-text location.
func (svc *WeatherService) GetWeather(ctx context.Context, locationText string) (*models.WeatherSnapshot, error) {
	point, err := svc.resolve(ctx, locationText)
	if err != nil {
		return nil, err
	}

	snapshot, err := svc.weather.Current(ctx, point.Lat, point.Lon)
	if err != nil {
		return nil, svc.wrapUpstream(err)
	}

	// The geocoder's display name is the authoritative location label.
	snapshot.Location = point.DisplayName
	return snapshot, nil
}

// GetHourlyForecast returns an 8-point forecast for a free-text location.
func (svc *WeatherService) GetHourlyForecast(ctx context.Context, locationText string) (*models.ForecastReport, error) {
	point, err := svc.resolve(ctx, locationText)
	if err != nil {
		return nil, err
	}

	intervals, err := svc.weather.Hourly(ctx, point.Lat, point.Lon, forecastPointCount)
	if err != nil {
		return nil, svc.wrapUpstream(err)
	}

	return &models.ForecastReport{
		Location:  point.DisplayName,
		Intervals: intervals,
	}, nil
}

// resolve validates the input and turns it into coordinates, consulting the
// cache before the upstream geocoder.
func (svc *WeatherService) resolve(ctx context.Context, locationText string) (*models.GeoPoint, error) {
	query := strings.TrimSpace(locationText)
	if query == "" {
		return nil, apperrors.Validation("Location is required")
	}

	if cached, err := svc.cache.Get(ctx, query); err == nil && cached != nil {
		return cached, nil
	}

	point, err := svc.resolver.Resolve(ctx, query)
	if err != nil {
		logger.Log.Errorw("geocoding failed", "location", query, "err", err)
		return nil, svc.wrapUpstream(err)
	}
	if point == nil {
		return nil, apperrors.NotFound("Location not found")
	}

	if err := svc.cache.Set(ctx, query, point); err != nil {
		// Cache failures never fail the lookup.
		logger.Log.Errorw("failed to cache geocode result", "location", query, "err", err)
	}

	return point, nil
}

// wrapUpstream passes typed errors through unchanged and downgrades anything
// else (network failures, decode errors) to a generic internal error.
func (svc *WeatherService) wrapUpstream(err error) error {
	if appErr := apperrors.As(err); appErr != nil {
		return appErr
	}
	return apperrors.Internal(err)
}
