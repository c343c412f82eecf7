package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents an identity row in the users table.
// Rows are created on first authenticated visit and never updated or deleted.
type UserDB struct {
	UserID    uuid.UUID `json:"id" db:"user_id"`            // Primary key
	FirstName string    `json:"first_name" db:"first_name"` // Given name from the identity provider
	LastName  string    `json:"last_name" db:"last_name"`   // Family name from the identity provider
	Email     string    `json:"email" db:"email"`           // Unique user email
	CreatedAt time.Time `json:"created_at" db:"created_at"` // Creation timestamp
}
