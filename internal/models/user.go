package models

// UserDB represents a user record in the database
type UserDB struct {
	ID           int64  `json:"id" db:"id"`                      // Primary key
	Username     string `json:"username" db:"username"`          // Unique username
	PasswordHash string `json:"-" db:"password_hash"`            // Bcrypt hash, never serialized
	Role         string `json:"role" db:"role"`                  // One of admin, general, advanced
}

// PublicUser is the client-facing view of a user, returned by login
// and role-update responses.
type PublicUser struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// Public returns the client-facing view of the user.
func (u *UserDB) Public() *PublicUser {
	return &PublicUser{
		ID:       u.ID,
		Username: u.Username,
		Role:     u.Role,
	}
}
