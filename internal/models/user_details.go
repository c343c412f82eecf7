package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDetailsDB represents the one-time onboarding row in the user_details
// table. Absence of a row means the user has not completed onboarding.
type UserDetailsDB struct {
	UserID    uuid.UUID `json:"user_id" db:"user_id"`      // Owning user id
	Height    float64   `json:"height" db:"height"`        // Height in cm
	Weight    float64   `json:"weight" db:"weight"`        // Weight in kg
	Gender    string    `json:"gender" db:"gender"`        // Self-reported gender
	Goal      string    `json:"goal" db:"goal"`            // Fitness goal
	Age       int       `json:"age" db:"age"`              // Age in years
	Focus     string    `json:"focus" db:"focus"`          // Focus area
	CreatedAt time.Time `json:"created_at" db:"created_at"` // Creation timestamp
}
