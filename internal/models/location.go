package models

// SavedLocationDB represents a saved location record in the database
type SavedLocationDB struct {
	ID           int64  `json:"id" db:"id"`                       // Primary key
	UserID       int64  `json:"user_id" db:"user_id"`             // Owning user
	LocationName string `json:"location_name" db:"location_name"` // Free-text place name as saved
}

// SavedLocationEvent is the message published to Kafka when a user's
// saved-location list changes.
type SavedLocationEvent struct {
	EventID      string `json:"event_id"`                // Unique event id
	Timestamp    int64  `json:"timestamp"`               // Unix time the change happened
	UserID       int64  `json:"user_id"`                 // Owning user
	LocationID   int64  `json:"location_id"`             // Affected row
	LocationName string `json:"location_name,omitempty"` // Set for save events
	Operation    string `json:"operation"`               // save or delete
}
