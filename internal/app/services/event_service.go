package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog"
	"github.com/yalcin/gatherly/internal/app/models"
	"github.com/yalcin/gatherly/internal/app/models/dto"
	"github.com/yalcin/gatherly/internal/pkg/apperrors"
)

// calendarEventDuration is the display window projected for each calendar entry
const calendarEventDuration = 2 * time.Hour

// EventRepository is the data access needed by the event service
type EventRepository interface {
	GetPublicEvents(ctx context.Context) ([]*models.Event, error)
	GetByID(ctx context.Context, id int64) (*models.Event, error)
	GetByOrganizerID(ctx context.Context, organizerID int64) ([]*models.Event, error)
	GetParticipatingByUserID(ctx context.Context, userID int64) ([]*models.Event, error)
	GetOrganizedBetween(ctx context.Context, organizerID int64, start, end time.Time) ([]*models.Event, error)
	GetParticipatingBetween(ctx context.Context, userID int64, start, end time.Time) ([]*models.Event, error)
	Create(ctx context.Context, ev *models.Event) (int64, error)
	Update(ctx context.Context, ev *models.Event) error
	Delete(ctx context.Context, id int64) error
}

// ParticipantRepository is the membership data access needed by the event service
type ParticipantRepository interface {
	GetParticipantsByEventID(ctx context.Context, eventID int64) ([]*models.Participant, error)
	GetCountByEventID(ctx context.Context, eventID int64) (int, error)
	IsParticipant(ctx context.Context, eventID, userID int64) (bool, error)
	AddParticipant(ctx context.Context, eventID, userID int64) (int64, error)
	RemoveParticipant(ctx context.Context, eventID, userID int64) error
}

// EventService defines the interface for event operations
type EventService interface {
	GetPublicEvents(ctx context.Context) ([]dto.EventListResponse, error)
	GetEventByID(ctx context.Context, id int64) (*dto.EventDetailResponse, error)
	CreateEvent(ctx context.Context, req *dto.CreateEventRequest, organizerID int64) (int64, error)
	UpdateEvent(ctx context.Context, eventID int64, req *dto.UpdateEventRequest, requesterID int64) error
	DeleteEvent(ctx context.Context, eventID, requesterID int64) error
	JoinEvent(ctx context.Context, eventID, userID int64) error
	LeaveEvent(ctx context.Context, eventID, userID int64) error
	GetUserEvents(ctx context.Context, userID int64) ([]dto.EventListResponse, error)
	GetUserCalendar(ctx context.Context, userID int64, start, end time.Time, viewType string) (*dto.CalendarViewResponse, error)
}

// eventServiceImpl implements EventService
type eventServiceImpl struct {
	eventRepo       EventRepository
	participantRepo ParticipantRepository
	userRepo        UserRepository
	logger          zerolog.Logger
}

// NewEventService creates a new EventService
func NewEventService(
	eventRepo EventRepository,
	participantRepo ParticipantRepository,
	userRepo UserRepository,
	logger zerolog.Logger,
) EventService {
	return &eventServiceImpl{
		eventRepo:       eventRepo,
		participantRepo: participantRepo,
		userRepo:        userRepo,
		logger:          logger,
	}
}

// GetPublicEvents retrieves all public events as list projections
func (s *eventServiceImpl) GetPublicEvents(ctx context.Context) ([]dto.EventListResponse, error) {
	events, err := s.eventRepo.GetPublicEvents(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to get public events")
		return nil, fmt.Errorf("error getting public events: %w", err)
	}

	responses := make([]dto.EventListResponse, 0, len(events))
	for _, ev := range events {
		responses = append(responses, dto.NewEventListResponse(ev))
	}

	return responses, nil
}

// GetEventByID retrieves an event with its participants
func (s *eventServiceImpl) GetEventByID(ctx context.Context, id int64) (*dto.EventDetailResponse, error) {
	ev, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !ev.IsPublic {
		s.logger.Warn().Int64("eventId", id).Msg("Access to private event by ID")
	}

	participants, err := s.participantRepo.GetParticipantsByEventID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int64("eventId", id).Msg("Failed to get participants for event")
		return nil, fmt.Errorf("error getting participants: %w", err)
	}
	ev.Participants = participants

	response := dto.NewEventDetailResponse(ev)
	return &response, nil
}

// CreateEvent validates the organizer and persists a new event. Enrolling the
// organizer as the first participant is the caller's second step, via JoinEvent.
func (s *eventServiceImpl) CreateEvent(ctx context.Context, req *dto.CreateEventRequest, organizerID int64) (int64, error) {
	if _, err := s.userRepo.GetByID(ctx, organizerID); err != nil {
		if err == apperrors.ErrUserNotFound {
			return 0, apperrors.NewResourceNotFoundError("Organizer not found")
		}
		return 0, fmt.Errorf("error checking organizer: %w", err)
	}

	if !req.EventDate.After(time.Now()) {
		return 0, apperrors.NewBadRequestError("Event date must be in the future")
	}

	ev := &models.Event{
		Name:        req.Name,
		Description: req.Description,
		EventDate:   req.EventDate,
		Location:    req.Location,
		Capacity:    req.Capacity,
		IsPublic:    *req.IsPublic,
		OrganizerID: organizerID,
	}

	id, err := s.eventRepo.Create(ctx, ev)
	if err != nil {
		s.logger.Error().Err(err).Int64("organizerId", organizerID).Msg("Failed to create event")
		return 0, fmt.Errorf("error creating event: %w", err)
	}

	s.logger.Info().Int64("eventId", id).Int64("organizerId", organizerID).Msg("Event created")
	return id, nil
}

// UpdateEvent applies a partial update after checking the organizer-only and
// capacity invariants. Absent fields keep their prior value.
func (s *eventServiceImpl) UpdateEvent(ctx context.Context, eventID int64, req *dto.UpdateEventRequest, requesterID int64) error {
	ev, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return err
	}

	if ev.OrganizerID != requesterID {
		return apperrors.NewForbiddenError("Only the organizer can edit this event")
	}

	if req.Capacity != nil {
		if *req.Capacity < 1 {
			return apperrors.NewBadRequestError("Capacity must be positive")
		}
		if *req.Capacity < ev.ParticipantCount {
			return apperrors.NewBadRequestError("Capacity cannot be less than current participants")
		}
	}

	if req.Name != nil {
		ev.Name = *req.Name
	}
	if req.Description != nil {
		ev.Description = req.Description
	}
	if req.EventDate != nil {
		ev.EventDate = *req.EventDate
	}
	if req.Location != nil {
		ev.Location = *req.Location
	}
	if req.Capacity != nil {
		ev.Capacity = req.Capacity
	}
	if req.IsPublic != nil {
		ev.IsPublic = *req.IsPublic
	}

	if err := s.eventRepo.Update(ctx, ev); err != nil {
		s.logger.Error().Err(err).Int64("eventId", eventID).Msg("Failed to update event")
		return fmt.Errorf("error updating event: %w", err)
	}

	return nil
}

// DeleteEvent removes an event after checking the organizer-only invariant.
// Participant rows cascade with the event.
func (s *eventServiceImpl) DeleteEvent(ctx context.Context, eventID, requesterID int64) error {
	ev, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return err
	}

	if ev.OrganizerID != requesterID {
		return apperrors.NewForbiddenError("You can only delete your own events")
	}

	if err := s.eventRepo.Delete(ctx, eventID); err != nil {
		s.logger.Error().Err(err).Int64("eventId", eventID).Msg("Failed to delete event")
		return fmt.Errorf("error deleting event: %w", err)
	}

	s.logger.Info().Int64("eventId", eventID).Int64("userId", requesterID).Msg("Event deleted")
	return nil
}

// JoinEvent adds a user to an event. The advisory duplicate and capacity
// checks here give precise errors; the repository re-validates both inside a
// row-locked transaction, so concurrent joins can never exceed capacity.
func (s *eventServiceImpl) JoinEvent(ctx context.Context, eventID, userID int64) error {
	ev, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return err
	}

	alreadyJoined, err := s.participantRepo.IsParticipant(ctx, eventID, userID)
	if err != nil {
		s.logger.Error().Err(err).Int64("eventId", eventID).Int64("userId", userID).Msg("Failed to check participant status")
		return fmt.Errorf("error checking participant status: %w", err)
	}
	if alreadyJoined {
		return apperrors.NewConflictError("User already joined this event")
	}

	if ev.Capacity != nil {
		count, err := s.participantRepo.GetCountByEventID(ctx, eventID)
		if err != nil {
			s.logger.Error().Err(err).Int64("eventId", eventID).Msg("Failed to count participants")
			return fmt.Errorf("error counting participants: %w", err)
		}
		if count >= *ev.Capacity {
			return apperrors.NewBadRequestError("Event is full")
		}
	}

	_, err = s.participantRepo.AddParticipant(ctx, eventID, userID)
	if err != nil {
		switch err {
		case apperrors.ErrEventFull:
			return apperrors.NewBadRequestError("Event is full")
		case apperrors.ErrAlreadyParticipant:
			return apperrors.NewConflictError("User already joined this event")
		case apperrors.ErrEventNotFound:
			return err
		}
		s.logger.Error().Err(err).Int64("eventId", eventID).Int64("userId", userID).Msg("Failed to add participant")
		return fmt.Errorf("error adding participant: %w", err)
	}

	s.logger.Info().Int64("eventId", eventID).Int64("userId", userID).Msg("User joined event")
	return nil
}

// LeaveEvent removes a user's membership from an event
func (s *eventServiceImpl) LeaveEvent(ctx context.Context, eventID, userID int64) error {
	err := s.participantRepo.RemoveParticipant(ctx, eventID, userID)
	if err != nil {
		if err == apperrors.ErrNotParticipant {
			return apperrors.NewResourceNotFoundError(
				fmt.Sprintf("User with id %d is not a participant in event with id %d", userID, eventID))
		}
		s.logger.Error().Err(err).Int64("eventId", eventID).Int64("userId", userID).Msg("Failed to remove participant")
		return fmt.Errorf("error removing participant: %w", err)
	}

	s.logger.Info().Int64("eventId", eventID).Int64("userId", userID).Msg("User left event")
	return nil
}

// GetUserEvents retrieves the union of events a user organizes or has joined
func (s *eventServiceImpl) GetUserEvents(ctx context.Context, userID int64) ([]dto.EventListResponse, error) {
	organized, err := s.eventRepo.GetByOrganizerID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error getting organized events: %w", err)
	}

	participating, err := s.eventRepo.GetParticipatingByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error getting participating events: %w", err)
	}

	responses := make([]dto.EventListResponse, 0, len(organized)+len(participating))
	for _, ev := range organized {
		responses = append(responses, dto.NewEventListResponse(ev))
	}
	for _, ev := range participating {
		responses = append(responses, dto.NewEventListResponse(ev))
	}

	return responses, nil
}

// GetUserCalendar projects the user's organized and joined events in
// [start, end] onto fixed two-hour display windows. Events the user organizes
// appear once, tagged isOrganizer, even though the organizer also holds a
// participant row.
func (s *eventServiceImpl) GetUserCalendar(ctx context.Context, userID int64, start, end time.Time, viewType string) (*dto.CalendarViewResponse, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		if err == apperrors.ErrUserNotFound {
			return nil, apperrors.NewResourceNotFoundError(fmt.Sprintf("User with id %d not found", userID))
		}
		return nil, fmt.Errorf("error checking user: %w", err)
	}

	organized, err := s.eventRepo.GetOrganizedBetween(ctx, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("error getting organized events: %w", err)
	}

	participating, err := s.eventRepo.GetParticipatingBetween(ctx, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("error getting participating events: %w", err)
	}

	events := make([]dto.CalendarEventResponse, 0, len(organized)+len(participating))
	for _, ev := range organized {
		events = append(events, calendarEntry(ev, true))
	}
	for _, ev := range participating {
		events = append(events, calendarEntry(ev, false))
	}

	sort.Slice(events, func(i, j int) bool {
		return events[i].Start.Before(events[j].Start)
	})

	return &dto.CalendarViewResponse{
		Events:    events,
		StartDate: start,
		EndDate:   end,
		ViewType:  viewType,
	}, nil
}

func calendarEntry(ev *models.Event, isOrganizer bool) dto.CalendarEventResponse {
	return dto.CalendarEventResponse{
		ID:          ev.ID,
		Title:       ev.Name,
		Start:       ev.EventDate,
		End:         ev.EventDate.Add(calendarEventDuration),
		Location:    ev.Location,
		IsOrganizer: isOrganizer,
	}
}
