package dto

import (
	"github.com/yalcin/gatherly/internal/app/models"
)

// shortDescriptionLimit bounds the description shown in list views
const shortDescriptionLimit = 100

// ShortDescription truncates a description to the list-view limit, appending
// an ellipsis when the original is longer.
func ShortDescription(description *string) string {
	if description == nil {
		return ""
	}
	runes := []rune(*description)
	if len(runes) <= shortDescriptionLimit {
		return *description
	}
	return string(runes[:shortDescriptionLimit]) + "..."
}

// NewEventListResponse maps an event to its compact list projection
func NewEventListResponse(ev *models.Event) EventListResponse {
	return EventListResponse{
		ID:               ev.ID,
		Name:             ev.Name,
		ShortDescription: ShortDescription(ev.Description),
		EventDate:        ev.EventDate,
		Location:         ev.Location,
		ParticipantCount: ev.ParticipantCount,
		IsFull:           ev.IsFull(),
	}
}

// NewEventDetailResponse maps an event with its participants to the detail projection
func NewEventDetailResponse(ev *models.Event) EventDetailResponse {
	organizerName := "Unknown"
	if ev.Organizer != nil {
		organizerName = ev.Organizer.Name
	}

	participants := make([]ParticipantResponse, 0, len(ev.Participants))
	for _, p := range ev.Participants {
		if p.User == nil {
			continue
		}
		participants = append(participants, ParticipantResponse{
			ID:   p.User.ID,
			Name: p.User.Name,
		})
	}

	return EventDetailResponse{
		ID:               ev.ID,
		Name:             ev.Name,
		Description:      ev.Description,
		EventDate:        ev.EventDate,
		Location:         ev.Location,
		Capacity:         ev.Capacity,
		IsPublic:         ev.IsPublic,
		OrganizerName:    organizerName,
		ParticipantCount: ev.ParticipantCount,
		Participants:     participants,
	}
}

// NewUserResponse maps a user to its public projection
func NewUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}
