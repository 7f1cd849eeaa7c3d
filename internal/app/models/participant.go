package models

import "time"

// Participant represents a user participating in an event
type Participant struct {
	ID       int64     `json:"id" db:"id"`
	EventID  int64     `json:"eventId" db:"event_id"`
	UserID   int64     `json:"userId" db:"user_id"`
	JoinedAt time.Time `json:"joinedAt" db:"joined_at"`

	// Related entities
	User *User `json:"user,omitempty"`
}
