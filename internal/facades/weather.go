package facades

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/weatherwize/weatherwize/internal/apperrors"
	"github.com/weatherwize/weatherwize/internal/logger"
	"github.com/weatherwize/weatherwize/internal/models"
)

// placeholderAPIKey is the value shipped in config templates; treated the
// same as a missing key.
const placeholderAPIKey = "your_api_key_here"

// WeatherHTTPFacade fetches current conditions and forecasts from the
// OpenWeather data endpoints, with units fixed to imperial.
type WeatherHTTPFacade struct {
	client  *http.Client
	apiKey  string
	baseURL string
}

// NewWeatherHTTPFacade creates a new facade with an HTTP client.
func NewWeatherHTTPFacade(client *http.Client, apiKey, baseURL string) *WeatherHTTPFacade {
	return &WeatherHTTPFacade{client: client, apiKey: apiKey, baseURL: baseURL}
}

// currentResponse mirrors the provider's current-conditions payload.
type currentResponse struct {
	Weather []struct {
		Main string `json:"main"`
	} `json:"weather"`
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity int     `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
}

// forecastResponse mirrors the provider's forecast payload.
type forecastResponse struct {
	List []struct {
		DtTxt string `json:"dt_txt"`
		Main  struct {
			Temp     float64 `json:"temp"`
			Humidity int     `json:"humidity"`
		} `json:"main"`
		Weather []struct {
			Main string `json:"main"`
		} `json:"weather"`
		Wind struct {
			Speed float64 `json:"speed"`
		} `json:"wind"`
	} `json:"list"`
}

// providerError mirrors the provider's error body.
type providerError struct {
	Message string `json:"message"`
}

// Current fetches and normalizes current conditions for the coordinates.
// The snapshot's Location is left empty for the caller to fill with the
// geocoder's display name.
func (f *WeatherHTTPFacade) Current(ctx context.Context, lat, lon float64) (*models.WeatherSnapshot, error) {
	body, err := f.get(ctx, "/weather", lat, lon, nil)
	if err != nil {
		return nil, err
	}

	var payload currentResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		logger.Log.Errorw("failed to decode current weather response", "error", err)
		return nil, err
	}

	condition := "Unknown"
	if len(payload.Weather) > 0 && payload.Weather[0].Main != "" {
		condition = payload.Weather[0].Main
	}

	return &models.WeatherSnapshot{
		Temp:      payload.Main.Temp,
		Condition: condition,
		Humidity:  payload.Main.Humidity,
		WindSpeed: payload.Wind.Speed,
		Lat:       lat,
		Lon:       lon,
	}, nil
}

// Hourly fetches and normalizes up to count forecast intervals for the
// coordinates, keeping the provider's order and timestamp strings.
func (f *WeatherHTTPFacade) Hourly(ctx context.Context, lat, lon float64, count int) ([]models.ForecastInterval, error) {
	extra := url.Values{}
	extra.Set("cnt", strconv.Itoa(count))

	body, err := f.get(ctx, "/forecast", lat, lon, extra)
	if err != nil {
		return nil, err
	}

	var payload forecastResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		logger.Log.Errorw("failed to decode forecast response", "error", err)
		return nil, err
	}

	intervals := make([]models.ForecastInterval, 0, len(payload.List))
	for _, entry := range payload.List {
		condition := "Unknown"
		if len(entry.Weather) > 0 && entry.Weather[0].Main != "" {
			condition = entry.Weather[0].Main
		}
		intervals = append(intervals, models.ForecastInterval{
			Time:      entry.DtTxt,
			Temp:      entry.Main.Temp,
			Condition: condition,
			Humidity:  entry.Main.Humidity,
			WindSpeed: entry.Wind.Speed,
		})
	}

	return intervals, nil
}

// get performs one provider call and maps the failure modes: missing key
// before any network I/O, provider 401 as an upstream-auth failure, other
// non-2xx as a pass-through upstream failure.
func (f *WeatherHTTPFacade) get(ctx context.Context, path string, lat, lon float64, extra url.Values) ([]byte, error) {
	if f.apiKey == "" || f.apiKey == placeholderAPIKey {
		return nil, apperrors.Configuration("Weather service is not configured")
	}

	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	params.Set("units", "imperial")
	params.Set("appid", f.apiKey)
	for key, vals := range extra {
		for _, val := range vals {
			params.Set(key, val)
		}
	}

	reqURL := fmt.Sprintf("%s%s?%s", f.baseURL, path, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		logger.Log.Errorw("weather request failed", "path", path, "error", err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		logger.Log.Errorw("weather provider rejected API key", "path", path)
		return nil, apperrors.UpstreamAuth("Weather provider rejected the API key")
	}

	buf, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var provErr providerError
		_ = json.Unmarshal(buf, &provErr)
		message := provErr.Message
		if message == "" {
			message = fmt.Sprintf("Weather provider returned status %d", resp.StatusCode)
		}
		logger.Log.Errorw("weather provider returned non-success status",
			"path", path, "status", resp.StatusCode, "message", message)
		return nil, apperrors.Upstream(resp.StatusCode, message)
	}

	return buf, nil
}
