package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/weatherwize/weatherwize/internal/logger"
	"github.com/weatherwize/weatherwize/internal/models"
)

// GeocodeCacheRepository caches resolved geocoding results in Redis.
// Only the stable place-to-coordinates mapping is cached; weather data
// itself is always fetched fresh.
type GeocodeCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached results
}

// NewGeocodeCacheRepository creates a new repository instance with the given TTL
func NewGeocodeCacheRepository(client *redis.Client, expiration time.Duration) *GeocodeCacheRepository {
	return &GeocodeCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func geocodeKey(query string) string {
	return "geocode:" + strings.ToLower(strings.TrimSpace(query))
}

// Get fetches a cached geocoding result for the query string.
func (r *GeocodeCacheRepository) Get(ctx context.Context, query string) (*models.GeoPoint, error) {
	key := geocodeKey(query)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		logger.Log.Infow(
			"key", key,
			"result", val,
			"error", err,
		)
		if err == redis.Nil {
			return nil, fmt.Errorf("geocode result not found in cache for %q", query)
		}
		return nil, err
	}

	var point models.GeoPoint
	if err := json.Unmarshal([]byte(val), &point); err != nil {
		logger.Log.Infow(
			"key", key,
			"value", val,
			"error", err,
		)
		return nil, err
	}

	logger.Log.Infow(
		"key", key,
		"value", val,
		"error", nil,
	)

	return &point, nil
}

// Set caches a geocoding result with the configured expiration.
func (r *GeocodeCacheRepository) Set(ctx context.Context, query string, point *models.GeoPoint) error {
	key := geocodeKey(query)

	data, err := json.Marshal(point)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.Log.Infow(
		"key", key,
		"value", string(data),
		"result", "ok",
		"error", err,
	)

	return err
}
