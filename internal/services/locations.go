package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/weatherwize/weatherwize/internal/apperrors"
	"github.com/weatherwize/weatherwize/internal/logger"
	"github.com/weatherwize/weatherwize/internal/models"
)

// SavedLocationReader defines read operations for saved locations.
type SavedLocationReader interface {
	ListByUserID(ctx context.Context, userID int64) ([]models.SavedLocationDB, error)
	ExistsForUser(ctx context.Context, userID int64, locationName string) (bool, error)
}

// SavedLocationWriter defines write operations for saved locations.
type SavedLocationWriter interface {
	Save(ctx context.Context, userID int64, locationName string) (int64, error)
	Delete(ctx context.Context, userID, locationID int64) (int64, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// LocationService handles the per-user saved-location list and publishes
// change events. Every operation is scoped to the owning user.
type LocationService struct {
	reader SavedLocationReader
	writer SavedLocationWriter
	events KafkaWriter
}

// NewLocationService creates a new LocationService instance.
func NewLocationService(reader SavedLocationReader, writer SavedLocationWriter, events KafkaWriter) *LocationService {
	return &LocationService{
		reader: reader,
		writer: writer,
		events: events,
	}
}

// publishEvent publishes a saved-location change to Kafka. Publishing never
// fails the operation that triggered it.
func (svc *LocationService) publishEvent(ctx context.Context, event models.SavedLocationEvent) {
	if svc.events == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "event_id", event.EventID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal saved-location event", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: data,
	}

	if err := svc.events.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish saved-location event", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("Saved-location event published", "event_id", event.EventID, "operation", event.Operation)
	}
}

// Save adds a location to the user's list and publishes the change.
// Duplicates are matched case-insensitively.
func (svc *LocationService) Save(ctx context.Context, userID int64, locationText string) error {
	location := strings.TrimSpace(locationText)
	if location == "" {
		return apperrors.Validation("Location is required")
	}

	exists, err := svc.reader.ExistsForUser(ctx, userID, location)
	if err != nil {
		logger.Log.Errorw("failed to check saved location", "err", err)
		return apperrors.Internal(err)
	}
	if exists {
		return apperrors.Conflict("Location already saved")
	}

	id, err := svc.writer.Save(ctx, userID, location)
	if err != nil {
		// The unique index closes the check-then-act race: a concurrent
		// duplicate insert affects no rows and comes back as ErrNoRows.
		if errors.Is(err, sql.ErrNoRows) {
			return apperrors.Conflict("Location already saved")
		}
		logger.Log.Errorw("failed to save location", "err", err)
		return apperrors.Internal(err)
	}

	svc.publishEvent(ctx, models.SavedLocationEvent{
		EventID:      uuid.NewString(),
		Timestamp:    time.Now().Unix(),
		UserID:       userID,
		LocationID:   id,
		LocationName: location,
		Operation:    "save",
	})

	return nil
}

// List returns all locations saved by the user.
func (svc *LocationService) List(ctx context.Context, userID int64) ([]models.SavedLocationDB, error) {
	locations, err := svc.reader.ListByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list saved locations", "err", err)
		return nil, apperrors.Internal(err)
	}
	if locations == nil {
		locations = []models.SavedLocationDB{}
	}
	return locations, nil
}

// Delete removes the location matching both id and owner and publishes the
// change. A miss on either is reported as not found; the caller cannot tell
// the two cases apart.
func (svc *LocationService) Delete(ctx context.Context, userID, locationID int64) error {
	if locationID <= 0 {
		return apperrors.Validation("Invalid location id")
	}

	rows, err := svc.writer.Delete(ctx, userID, locationID)
	if err != nil {
		logger.Log.Errorw("failed to delete saved location", "err", err)
		return apperrors.Internal(err)
	}
	if rows == 0 {
		return apperrors.NotFound("Saved location not found")
	}

	svc.publishEvent(ctx, models.SavedLocationEvent{
		EventID:    uuid.NewString(),
		Timestamp:  time.Now().Unix(),
		UserID:     userID,
		LocationID: locationID,
		Operation:  "delete",
	})

	return nil
}
