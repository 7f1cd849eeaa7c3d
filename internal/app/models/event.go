package models

import "time"

// Event represents an event organized by a user
type Event struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description *string   `json:"description,omitempty" db:"description"`
	EventDate   time.Time `json:"eventDate" db:"event_date"`
	Location    string    `json:"location" db:"location"`
	Capacity    *int      `json:"capacity,omitempty" db:"capacity"`
	IsPublic    bool      `json:"isPublic" db:"is_public"`
	OrganizerID int64     `json:"organizerId" db:"organizer_id"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`

	// Related entities
	Organizer    *User          `json:"organizer,omitempty"`
	Participants []*Participant `json:"participants,omitempty"`

	// Derived from the participants join table
	ParticipantCount int `json:"participantCount" db:"-"`
}

// IsFull reports whether the event has a capacity and it has been reached
func (e *Event) IsFull() bool {
	return e.Capacity != nil && e.ParticipantCount >= *e.Capacity
}
