package dto

import "time"

// CreateEventRequest represents the event creation payload
type CreateEventRequest struct {
	Name        string    `json:"name" binding:"required,min=3,max=255" example:"Go Meetup"`
	Description *string   `json:"description,omitempty" binding:"omitempty,max=2000"`
	EventDate   time.Time `json:"eventDate" binding:"required" example:"2026-10-01T18:00:00Z"`
	Location    string    `json:"location" binding:"required,min=2,max=500" example:"Community Hall"`
	Capacity    *int      `json:"capacity,omitempty" binding:"omitempty,min=1" example:"50"`
	IsPublic    *bool     `json:"isPublic" binding:"required" example:"true"`
}

// UpdateEventRequest represents a partial event update. Absent fields keep
// their prior value; they never clear it.
type UpdateEventRequest struct {
	Name        *string    `json:"name,omitempty" binding:"omitempty,min=3,max=255"`
	Description *string    `json:"description,omitempty" binding:"omitempty,max=2000"`
	EventDate   *time.Time `json:"eventDate,omitempty"`
	Location    *string    `json:"location,omitempty" binding:"omitempty,min=2,max=500"`
	Capacity    *int       `json:"capacity,omitempty" binding:"omitempty,min=0"`
	IsPublic    *bool      `json:"isPublic,omitempty"`
}

// EventListResponse is the compact event projection used in list views
type EventListResponse struct {
	ID               int64     `json:"id" example:"42"`
	Name             string    `json:"name" example:"Go Meetup"`
	ShortDescription string    `json:"shortDescription" example:"Monthly Go meetup with talks..."`
	EventDate        time.Time `json:"eventDate"`
	Location         string    `json:"location" example:"Community Hall"`
	ParticipantCount int       `json:"participantCount" example:"12"`
	IsFull           bool      `json:"isFull" example:"false"`
}

// EventDetailResponse is the full event projection
type EventDetailResponse struct {
	ID               int64                 `json:"id" example:"42"`
	Name             string                `json:"name" example:"Go Meetup"`
	Description      *string               `json:"description,omitempty"`
	EventDate        time.Time             `json:"eventDate"`
	Location         string                `json:"location" example:"Community Hall"`
	Capacity         *int                  `json:"capacity,omitempty" example:"50"`
	IsPublic         bool                  `json:"isPublic" example:"true"`
	OrganizerName    string                `json:"organizerName" example:"Jane Doe"`
	ParticipantCount int                   `json:"participantCount" example:"12"`
	Participants     []ParticipantResponse `json:"participants"`
}

// ParticipantResponse identifies a user participating in an event
type ParticipantResponse struct {
	ID   int64  `json:"id" example:"1"`
	Name string `json:"name" example:"Jane Doe"`
}

// CalendarEventResponse is an event projected onto a display window
type CalendarEventResponse struct {
	ID          int64     `json:"id" example:"42"`
	Title       string    `json:"title" example:"Go Meetup"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	Location    string    `json:"location" example:"Community Hall"`
	IsOrganizer bool      `json:"isOrganizer" example:"true"`
}

// CalendarViewResponse is the time-windowed projection of a user's events
type CalendarViewResponse struct {
	Events    []CalendarEventResponse `json:"events"`
	StartDate time.Time               `json:"startDate"`
	EndDate   time.Time               `json:"endDate"`
	ViewType  string                  `json:"viewType" example:"month"`
}
