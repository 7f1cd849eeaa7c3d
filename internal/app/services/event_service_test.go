package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yalcin/gatherly/internal/app/models/dto"
	"github.com/yalcin/gatherly/internal/pkg/apperrors"
)

type eventServiceFixture struct {
	service EventService
	state   *fakeState
}

func newEventServiceFixture() *eventServiceFixture {
	state := newFakeState()
	service := NewEventService(
		&fakeEventRepo{state: state},
		&fakeParticipantRepo{state: state},
		&fakeUserRepo{state: state},
		zerolog.Nop(),
	)
	return &eventServiceFixture{service: service, state: state}
}

func (f *eventServiceFixture) createEvent(t *testing.T, organizerID int64, capacity *int, date time.Time) int64 {
	t.Helper()
	isPublic := true
	req := &dto.CreateEventRequest{
		Name:      "Board Game Night",
		EventDate: date,
		Location:  "Community Hall",
		Capacity:  capacity,
		IsPublic:  &isPublic,
	}
	id, err := f.service.CreateEvent(context.Background(), req, organizerID)
	require.NoError(t, err)
	require.NoError(t, f.service.JoinEvent(context.Background(), id, organizerID))
	return id
}

func futureDate() time.Time {
	return time.Now().Add(48 * time.Hour)
}

func TestCreateEventEnrollsOrganizer(t *testing.T) {
	f := newEventServiceFixture()
	organizer := f.state.addUser("Alice Smith", "alice@example.com", "hash")

	eventID := f.createEvent(t, organizer.ID, nil, futureDate())

	detail, err := f.service.GetEventByID(context.Background(), eventID)
	require.NoError(t, err)
	assert.Equal(t, 1, detail.ParticipantCount)
	require.Len(t, detail.Participants, 1)
	assert.Equal(t, organizer.ID, detail.Participants[0].ID)
	assert.Equal(t, "Alice Smith", detail.OrganizerName)
}

func TestCreateEventUnknownOrganizer(t *testing.T) {
	f := newEventServiceFixture()
	isPublic := true
	req := &dto.CreateEventRequest{
		Name:      "Orphan Event",
		EventDate: futureDate(),
		Location:  "Nowhere",
		IsPublic:  &isPublic,
	}

	_, err := f.service.CreateEvent(context.Background(), req, 99)
	assert.True(t, errors.Is(err, apperrors.ErrResourceNotFound))
}

func TestCreateEventRejectsPastDate(t *testing.T) {
	f := newEventServiceFixture()
	organizer := f.state.addUser("Alice Smith", "alice@example.com", "hash")

	isPublic := true
	req := &dto.CreateEventRequest{
		Name:      "Retro Party",
		EventDate: time.Now().Add(-time.Hour),
		Location:  "Community Hall",
		IsPublic:  &isPublic,
	}

	_, err := f.service.CreateEvent(context.Background(), req, organizer.ID)
	assert.True(t, errors.Is(err, apperrors.ErrBadRequest))
}

func TestJoinEventRespectsCapacity(t *testing.T) {
	f := newEventServiceFixture()
	organizer := f.state.addUser("Alice Smith", "alice@example.com", "hash")
	bob := f.state.addUser("Bob Jones", "bob@example.com", "hash")

	capacity := 1
	eventID := f.createEvent(t, organizer.ID, &capacity, futureDate())

	err := f.service.JoinEvent(context.Background(), eventID, bob.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrBadRequest))
	assert.Equal(t, "Event is full", err.Error())

	detail, err := f.service.GetEventByID(context.Background(), eventID)
	require.NoError(t, err)
	assert.Equal(t, 1, detail.ParticipantCount)
}

func TestJoinEventDuplicateIsConflict(t *testing.T) {
	f := newEventServiceFixture()
	organizer := f.state.addUser("Alice Smith", "alice@example.com", "hash")
	bob := f.state.addUser("Bob Jones", "bob@example.com", "hash")

	eventID := f.createEvent(t, organizer.ID, nil, futureDate())

	require.NoError(t, f.service.JoinEvent(context.Background(), eventID, bob.ID))

	err := f.service.JoinEvent(context.Background(), eventID, bob.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrConflict))
	assert.Equal(t, "User already joined this event", err.Error())
}

func TestJoinEventUnknownEvent(t *testing.T) {
	f := newEventServiceFixture()
	bob := f.state.addUser("Bob Jones", "bob@example.com", "hash")

	err := f.service.JoinEvent(context.Background(), 404, bob.ID)
	assert.True(t, errors.Is(err, apperrors.ErrEventNotFound))
}

func TestLeaveEventFreesCapacity(t *testing.T) {
	f := newEventServiceFixture()
	organizer := f.state.addUser("Alice Smith", "alice@example.com", "hash")
	bob := f.state.addUser("Bob Jones", "bob@example.com", "hash")
	carol := f.state.addUser("Carol White", "carol@example.com", "hash")

	capacity := 2
	eventID := f.createEvent(t, organizer.ID, &capacity, futureDate())

	require.NoError(t, f.service.JoinEvent(context.Background(), eventID, bob.ID))
	require.Error(t, f.service.JoinEvent(context.Background(), eventID, carol.ID))

	require.NoError(t, f.service.LeaveEvent(context.Background(), eventID, bob.ID))
	assert.NoError(t, f.service.JoinEvent(context.Background(), eventID, carol.ID))
}

func TestLeaveEventNotParticipant(t *testing.T) {
	f := newEventServiceFixture()
	organizer := f.state.addUser("Alice Smith", "alice@example.com", "hash")
	bob := f.state.addUser("Bob Jones", "bob@example.com", "hash")

	eventID := f.createEvent(t, organizer.ID, nil, futureDate())

	err := f.service.LeaveEvent(context.Background(), eventID, bob.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrResourceNotFound))
}

func TestUpdateEventOrganizerOnly(t *testing.T) {
	f := newEventServiceFixture()
	organizer := f.state.addUser("Alice Smith", "alice@example.com", "hash")
	bob := f.state.addUser("Bob Jones", "bob@example.com", "hash")

	eventID := f.createEvent(t, organizer.ID, nil, futureDate())

	newName := "Renamed Event"
	err := f.service.UpdateEvent(context.Background(), eventID, &dto.UpdateEventRequest{Name: &newName}, bob.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrPermissionDenied))

	require.NoError(t, f.service.UpdateEvent(context.Background(), eventID, &dto.UpdateEventRequest{Name: &newName}, organizer.ID))

	detail, err := f.service.GetEventByID(context.Background(), eventID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed Event", detail.Name)
}

func TestUpdateEventPartialKeepsOtherFields(t *testing.T) {
	f := newEventServiceFixture()
	organizer := f.state.addUser("Alice Smith", "alice@example.com", "hash")

	date := futureDate()
	eventID := f.createEvent(t, organizer.ID, nil, date)

	newLocation := "Rooftop Terrace"
	require.NoError(t, f.service.UpdateEvent(context.Background(), eventID,
		&dto.UpdateEventRequest{Location: &newLocation}, organizer.ID))

	detail, err := f.service.GetEventByID(context.Background(), eventID)
	require.NoError(t, err)
	assert.Equal(t, "Board Game Night", detail.Name)
	assert.Equal(t, "Rooftop Terrace", detail.Location)
	assert.True(t, detail.EventDate.Equal(date))
	assert.True(t, detail.IsPublic)
}

func TestUpdateEventCapacityBelowParticipants(t *testing.T) {
	f := newEventServiceFixture()
	organizer := f.state.addUser("Alice Smith", "alice@example.com", "hash")
	bob := f.state.addUser("Bob Jones", "bob@example.com", "hash")

	eventID := f.createEvent(t, organizer.ID, nil, futureDate())
	require.NoError(t, f.service.JoinEvent(context.Background(), eventID, bob.ID))

	lowCapacity := 1
	err := f.service.UpdateEvent(context.Background(), eventID,
		&dto.UpdateEventRequest{Capacity: &lowCapacity}, organizer.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrBadRequest))
	assert.Equal(t, "Capacity cannot be less than current participants", err.Error())

	zeroCapacity := 0
	err = f.service.UpdateEvent(context.Background(), eventID,
		&dto.UpdateEventRequest{Capacity: &zeroCapacity}, organizer.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrBadRequest))
}

func TestDeleteEventOrganizerOnly(t *testing.T) {
	f := newEventServiceFixture()
	organizer := f.state.addUser("Alice Smith", "alice@example.com", "hash")
	bob := f.state.addUser("Bob Jones", "bob@example.com", "hash")

	eventID := f.createEvent(t, organizer.ID, nil, futureDate())

	err := f.service.DeleteEvent(context.Background(), eventID, bob.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrPermissionDenied))

	require.NoError(t, f.service.DeleteEvent(context.Background(), eventID, organizer.ID))

	_, err = f.service.GetEventByID(context.Background(), eventID)
	assert.True(t, errors.Is(err, apperrors.ErrEventNotFound))
}

func TestGetPublicEventsExcludesPrivate(t *testing.T) {
	f := newEventServiceFixture()
	organizer := f.state.addUser("Alice Smith", "alice@example.com", "hash")

	f.createEvent(t, organizer.ID, nil, futureDate())

	isPublic := false
	req := &dto.CreateEventRequest{
		Name:      "Private Dinner",
		EventDate: futureDate().Add(time.Hour),
		Location:  "Home",
		IsPublic:  &isPublic,
	}
	_, err := f.service.CreateEvent(context.Background(), req, organizer.ID)
	require.NoError(t, err)

	events, err := f.service.GetPublicEvents(context.Background())
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "Board Game Night", events[0].Name)
}

func TestGetUserEventsUnion(t *testing.T) {
	f := newEventServiceFixture()
	organizer := f.state.addUser("Alice Smith", "alice@example.com", "hash")
	bob := f.state.addUser("Bob Jones", "bob@example.com", "hash")

	ownEventID := f.createEvent(t, organizer.ID, nil, futureDate())
	otherEventID := f.createEvent(t, bob.ID, nil, futureDate().Add(time.Hour))
	require.NoError(t, f.service.JoinEvent(context.Background(), otherEventID, organizer.ID))

	events, err := f.service.GetUserEvents(context.Background(), organizer.ID)
	require.NoError(t, err)
	require.Len(t, events, 2)

	ids := []int64{events[0].ID, events[1].ID}
	assert.Contains(t, ids, ownEventID)
	assert.Contains(t, ids, otherEventID)
}

func TestGetUserCalendarWindowsAndDeduplication(t *testing.T) {
	f := newEventServiceFixture()
	organizer := f.state.addUser("Alice Smith", "alice@example.com", "hash")
	bob := f.state.addUser("Bob Jones", "bob@example.com", "hash")

	ownDate := futureDate().Truncate(time.Hour)
	joinedDate := ownDate.Add(24 * time.Hour)

	ownEventID := f.createEvent(t, organizer.ID, nil, ownDate)
	joinedEventID := f.createEvent(t, bob.ID, nil, joinedDate)
	require.NoError(t, f.service.JoinEvent(context.Background(), joinedEventID, organizer.ID))

	start := ownDate.Add(-time.Hour)
	end := ownDate.AddDate(0, 1, 0)

	calendar, err := f.service.GetUserCalendar(context.Background(), organizer.ID, start, end, "month")
	require.NoError(t, err)
	require.Len(t, calendar.Events, 2)
	assert.Equal(t, "month", calendar.ViewType)

	// Events come back sorted by start time; the organizer's own event holds
	// a participant row too, but appears exactly once.
	first, second := calendar.Events[0], calendar.Events[1]
	assert.Equal(t, ownEventID, first.ID)
	assert.True(t, first.IsOrganizer)
	assert.True(t, first.Start.Equal(ownDate))
	assert.True(t, first.End.Equal(ownDate.Add(2*time.Hour)))

	assert.Equal(t, joinedEventID, second.ID)
	assert.False(t, second.IsOrganizer)
	assert.True(t, second.End.Equal(joinedDate.Add(2*time.Hour)))
}

func TestGetUserCalendarRangeFilter(t *testing.T) {
	f := newEventServiceFixture()
	organizer := f.state.addUser("Alice Smith", "alice@example.com", "hash")

	inRange := futureDate()
	outOfRange := inRange.AddDate(0, 2, 0)

	inRangeID := f.createEvent(t, organizer.ID, nil, inRange)
	f.createEvent(t, organizer.ID, nil, outOfRange)

	calendar, err := f.service.GetUserCalendar(context.Background(),
		organizer.ID, inRange.Add(-time.Hour), inRange.AddDate(0, 1, 0), "month")
	require.NoError(t, err)
	require.Len(t, calendar.Events, 1)
	assert.Equal(t, inRangeID, calendar.Events[0].ID)
}

func TestGetUserCalendarUnknownUser(t *testing.T) {
	f := newEventServiceFixture()

	_, err := f.service.GetUserCalendar(context.Background(), 42,
		time.Now(), time.Now().AddDate(0, 1, 0), "month")
	assert.True(t, errors.Is(err, apperrors.ErrResourceNotFound))
}
