package models

// SignupEvent is published to Kafka when a first visit creates an
// identity row.
type SignupEvent struct {
	EventID   string `json:"event_id"`   // Unique event id
	Timestamp int64  `json:"timestamp"`  // Unix timestamp of the signup
	Email     string `json:"email"`      // Email of the new user
	FirstName string `json:"first_name"` // Given name
	LastName  string `json:"last_name"`  // Family name
}
