package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/weatherwize/weatherwize/internal/logger"
	"github.com/weatherwize/weatherwize/internal/models"
)

type SavedLocationReadRepository struct {
	db *sqlx.DB
}

func NewSavedLocationReadRepository(db *sqlx.DB) *SavedLocationReadRepository {
	return &SavedLocationReadRepository{db: db}
}

// ListByUserID returns every saved location owned by the user.
func (r *SavedLocationReadRepository) ListByUserID(ctx context.Context, userID int64) ([]models.SavedLocationDB, error) {
	const query = `
		SELECT id, user_id, location_name
		FROM saved_locations
		WHERE user_id = $1
		ORDER BY id
	`

	var locations []models.SavedLocationDB
	err := r.db.SelectContext(ctx, &locations, query, userID)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", len(locations),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return locations, nil
}

// ExistsForUser reports whether the user already saved the location,
// matched case-insensitively.
func (r *SavedLocationReadRepository) ExistsForUser(ctx context.Context, userID int64, locationName string) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1
			FROM saved_locations
			WHERE user_id = $1 AND LOWER(location_name) = LOWER($2)
		)
	`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, userID, locationName)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, locationName},
		"result", exists,
		"error", err,
	)

	if err != nil {
		return false, err
	}

	return exists, nil
}

type SavedLocationWriteRepository struct {
	db *sqlx.DB
}

func NewSavedLocationWriteRepository(db *sqlx.DB) *SavedLocationWriteRepository {
	return &SavedLocationWriteRepository{db: db}
}

// Save inserts a saved location and returns its generated id. The per-user
// case-insensitive unique index is the conflict signal: a duplicate insert
// affects no rows and surfaces as sql.ErrNoRows.
func (r *SavedLocationWriteRepository) Save(ctx context.Context, userID int64, locationName string) (int64, error) {
	const query = `
		INSERT INTO saved_locations (user_id, location_name)
		VALUES ($1, $2)
		ON CONFLICT (user_id, LOWER(location_name)) DO NOTHING
		RETURNING id
	`
	args := []any{userID, locationName}

	var id int64
	err := r.db.GetContext(ctx, &id, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", id,
		"error", err,
	)

	if err != nil {
		return 0, err
	}

	return id, nil
}

// Delete removes the location matching both id and owner, and reports how
// many rows were affected. Zero rows covers "absent" and "owned by someone
// else" alike.
func (r *SavedLocationWriteRepository) Delete(ctx context.Context, userID, locationID int64) (int64, error) {
	const query = `
		DELETE FROM saved_locations
		WHERE id = $1 AND user_id = $2
	`
	args := []any{locationID, userID}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return 0, err
	}

	return rowsAffected, nil
}
