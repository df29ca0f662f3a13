package facades

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/weatherwize/weatherwize/internal/apperrors"
	"github.com/weatherwize/weatherwize/internal/logger"
	"github.com/weatherwize/weatherwize/internal/models"
)

// GeocodingHTTPFacade resolves free-text location strings against the
// OpenWeather geocoding endpoint, limited to the single best match.
type GeocodingHTTPFacade struct {
	client  *http.Client
	apiKey  string
	baseURL string
}

// NewGeocodingHTTPFacade creates a new facade with an HTTP client.
func NewGeocodingHTTPFacade(client *http.Client, apiKey, baseURL string) *GeocodingHTTPFacade {
	return &GeocodingHTTPFacade{client: client, apiKey: apiKey, baseURL: baseURL}
}

// geoResult mirrors one entry of the provider's direct-geocoding response.
type geoResult struct {
	Name    string  `json:"name"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	Country string  `json:"country"`
	State   string  `json:"state"`
}

// Resolve returns coordinates and a display name for the query, or nil when
// the provider finds no match or answers with a non-success status. The
// caller maps nil to its not-found error. A missing key fails before any
// network I/O so an unconfigured deployment never masquerades as not-found.
func (f *GeocodingHTTPFacade) Resolve(ctx context.Context, query string) (*models.GeoPoint, error) {
	if f.apiKey == "" || f.apiKey == placeholderAPIKey {
		return nil, apperrors.Configuration("Weather service is not configured")
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("limit", "1")
	params.Set("appid", f.apiKey)

	reqURL := fmt.Sprintf("%s/direct?%s", f.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		logger.Log.Errorw("geocoding request failed", "query", query, "error", err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Log.Errorw("geocoding provider returned non-success status",
			"query", query, "status", resp.StatusCode)
		return nil, nil
	}

	var results []geoResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		logger.Log.Errorw("failed to decode geocoding response", "query", query, "error", err)
		return nil, err
	}

	if len(results) == 0 {
		return nil, nil
	}

	best := results[0]
	displayName := fmt.Sprintf("%s, %s", best.Name, best.Country)
	if best.State != "" {
		displayName = fmt.Sprintf("%s, %s", best.Name, best.State)
	}

	return &models.GeoPoint{
		Lat:         best.Lat,
		Lon:         best.Lon,
		DisplayName: displayName,
	}, nil
}
