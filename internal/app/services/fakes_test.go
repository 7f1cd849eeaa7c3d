package services

import (
	"context"
	"sort"
	"time"

	"github.com/yalcin/gatherly/internal/app/models"
	"github.com/yalcin/gatherly/internal/pkg/apperrors"
)

// fakeState is an in-memory store shared by the fake repositories so the
// service under test sees consistent users, events and memberships.
type fakeState struct {
	users        map[int64]*models.User
	events       map[int64]*models.Event
	participants map[int64]map[int64]time.Time // eventID -> userID -> joinedAt
	nextUserID   int64
	nextEventID  int64
}

func newFakeState() *fakeState {
	return &fakeState{
		users:        make(map[int64]*models.User),
		events:       make(map[int64]*models.Event),
		participants: make(map[int64]map[int64]time.Time),
	}
}

func (s *fakeState) addUser(name, email, passwordHash string) *models.User {
	s.nextUserID++
	user := &models.User{
		ID:           s.nextUserID,
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	s.users[user.ID] = user
	return user
}

func (s *fakeState) eventSnapshot(id int64) *models.Event {
	ev, ok := s.events[id]
	if !ok {
		return nil
	}
	snapshot := *ev
	snapshot.ParticipantCount = len(s.participants[id])
	return &snapshot
}

// fakeUserRepo implements UserRepository
type fakeUserRepo struct {
	state *fakeState
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) (int64, error) {
	for _, existing := range r.state.users {
		if existing.Email == user.Email {
			return 0, apperrors.ErrEmailAlreadyExists
		}
	}
	created := r.state.addUser(user.Name, user.Email, user.PasswordHash)
	user.ID = created.ID
	user.CreatedAt = created.CreatedAt
	user.UpdatedAt = created.UpdatedAt
	return created.ID, nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id int64) (*models.User, error) {
	user, ok := r.state.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, user := range r.state.users {
		if user.Email == normalizeEmail(email) {
			copied := *user
			return &copied, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (r *fakeUserRepo) EmailExists(_ context.Context, email string) (bool, error) {
	_, err := r.GetByEmail(context.Background(), email)
	if err == apperrors.ErrUserNotFound {
		return false, nil
	}
	return err == nil, err
}

func normalizeEmail(email string) string {
	lowered := make([]rune, 0, len(email))
	for _, r := range email {
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		lowered = append(lowered, r)
	}
	return string(lowered)
}

// fakeEventRepo implements EventRepository
type fakeEventRepo struct {
	state *fakeState
}

func (r *fakeEventRepo) GetPublicEvents(_ context.Context) ([]*models.Event, error) {
	var events []*models.Event
	for id, ev := range r.state.events {
		if ev.IsPublic {
			events = append(events, r.state.eventSnapshot(id))
		}
	}
	sortByDate(events)
	return events, nil
}

func (r *fakeEventRepo) GetByID(_ context.Context, id int64) (*models.Event, error) {
	ev := r.state.eventSnapshot(id)
	if ev == nil {
		return nil, apperrors.ErrEventNotFound
	}
	if organizer, ok := r.state.users[ev.OrganizerID]; ok {
		copied := *organizer
		ev.Organizer = &copied
	}
	return ev, nil
}

func (r *fakeEventRepo) GetByOrganizerID(_ context.Context, organizerID int64) ([]*models.Event, error) {
	var events []*models.Event
	for id, ev := range r.state.events {
		if ev.OrganizerID == organizerID {
			events = append(events, r.state.eventSnapshot(id))
		}
	}
	sortByDate(events)
	return events, nil
}

func (r *fakeEventRepo) GetParticipatingByUserID(_ context.Context, userID int64) ([]*models.Event, error) {
	var events []*models.Event
	for id, ev := range r.state.events {
		if _, joined := r.state.participants[id][userID]; joined && ev.OrganizerID != userID {
			events = append(events, r.state.eventSnapshot(id))
		}
	}
	sortByDate(events)
	return events, nil
}

func (r *fakeEventRepo) GetOrganizedBetween(ctx context.Context, organizerID int64, start, end time.Time) ([]*models.Event, error) {
	events, _ := r.GetByOrganizerID(ctx, organizerID)
	return filterByDate(events, start, end), nil
}

func (r *fakeEventRepo) GetParticipatingBetween(ctx context.Context, userID int64, start, end time.Time) ([]*models.Event, error) {
	events, _ := r.GetParticipatingByUserID(ctx, userID)
	return filterByDate(events, start, end), nil
}

func (r *fakeEventRepo) Create(_ context.Context, ev *models.Event) (int64, error) {
	r.state.nextEventID++
	stored := *ev
	stored.ID = r.state.nextEventID
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = time.Now()
	r.state.events[stored.ID] = &stored
	r.state.participants[stored.ID] = make(map[int64]time.Time)
	ev.ID = stored.ID
	return stored.ID, nil
}

func (r *fakeEventRepo) Update(_ context.Context, ev *models.Event) error {
	stored, ok := r.state.events[ev.ID]
	if !ok {
		return apperrors.ErrEventNotFound
	}
	stored.Name = ev.Name
	stored.Description = ev.Description
	stored.EventDate = ev.EventDate
	stored.Location = ev.Location
	stored.Capacity = ev.Capacity
	stored.IsPublic = ev.IsPublic
	stored.UpdatedAt = time.Now()
	return nil
}

func (r *fakeEventRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.state.events[id]; !ok {
		return apperrors.ErrEventNotFound
	}
	delete(r.state.events, id)
	delete(r.state.participants, id)
	return nil
}

// fakeParticipantRepo implements ParticipantRepository
type fakeParticipantRepo struct {
	state *fakeState
}

func (r *fakeParticipantRepo) GetParticipantsByEventID(_ context.Context, eventID int64) ([]*models.Participant, error) {
	members := r.state.participants[eventID]
	participants := make([]*models.Participant, 0, len(members))
	for userID, joinedAt := range members {
		p := &models.Participant{EventID: eventID, UserID: userID, JoinedAt: joinedAt}
		if user, ok := r.state.users[userID]; ok {
			copied := *user
			p.User = &copied
		}
		participants = append(participants, p)
	}
	sort.Slice(participants, func(i, j int) bool {
		return participants[i].UserID < participants[j].UserID
	})
	return participants, nil
}

func (r *fakeParticipantRepo) GetCountByEventID(_ context.Context, eventID int64) (int, error) {
	return len(r.state.participants[eventID]), nil
}

func (r *fakeParticipantRepo) IsParticipant(_ context.Context, eventID, userID int64) (bool, error) {
	_, joined := r.state.participants[eventID][userID]
	return joined, nil
}

func (r *fakeParticipantRepo) AddParticipant(_ context.Context, eventID, userID int64) (int64, error) {
	ev, ok := r.state.events[eventID]
	if !ok {
		return 0, apperrors.ErrEventNotFound
	}
	members := r.state.participants[eventID]
	if _, joined := members[userID]; joined {
		return 0, apperrors.ErrAlreadyParticipant
	}
	if ev.Capacity != nil && len(members) >= *ev.Capacity {
		return 0, apperrors.ErrEventFull
	}
	members[userID] = time.Now()
	return int64(len(members)), nil
}

func (r *fakeParticipantRepo) RemoveParticipant(_ context.Context, eventID, userID int64) error {
	members := r.state.participants[eventID]
	if _, joined := members[userID]; !joined {
		return apperrors.ErrNotParticipant
	}
	delete(members, userID)
	return nil
}

func sortByDate(events []*models.Event) {
	sort.Slice(events, func(i, j int) bool {
		return events[i].EventDate.Before(events[j].EventDate)
	})
}

func filterByDate(events []*models.Event, start, end time.Time) []*models.Event {
	var filtered []*models.Event
	for _, ev := range events {
		if !ev.EventDate.Before(start) && !ev.EventDate.After(end) {
			filtered = append(filtered, ev)
		}
	}
	return filtered
}
