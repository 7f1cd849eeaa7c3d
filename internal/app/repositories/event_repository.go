package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yalcin/gatherly/internal/app/models"
	"github.com/yalcin/gatherly/internal/pkg/apperrors"
)

// eventColumns are the event fields selected by every query, with the
// participant count derived from the join table.
var eventColumns = []string{
	"e.id", "e.name", "e.description", "e.event_date", "e.location",
	"e.capacity", "e.is_public", "e.organizer_id", "e.created_at", "e.updated_at",
	"COUNT(p.id) AS participant_count",
}

// EventRepository handles database operations for events
type EventRepository struct {
	db *pgxpool.Pool
}

// NewEventRepository creates a new EventRepository
func NewEventRepository(db *pgxpool.Pool) *EventRepository {
	return &EventRepository{db: db}
}

func eventSelect() squirrel.SelectBuilder {
	return squirrel.Select(eventColumns...).
		From("events e").
		LeftJoin("participants p ON p.event_id = e.id").
		GroupBy("e.id").
		PlaceholderFormat(squirrel.Dollar)
}

func scanEvent(row pgx.Row) (*models.Event, error) {
	var ev models.Event
	err := row.Scan(
		&ev.ID, &ev.Name, &ev.Description, &ev.EventDate, &ev.Location,
		&ev.Capacity, &ev.IsPublic, &ev.OrganizerID, &ev.CreatedAt, &ev.UpdatedAt,
		&ev.ParticipantCount,
	)
	if err != nil {
		return nil, err
	}
	return &ev, nil
}

func (r *EventRepository) queryEvents(ctx context.Context, query squirrel.SelectBuilder) ([]*models.Event, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var events []*models.Event
	for rows.Next() {
		ev, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return events, nil
}

// GetPublicEvents retrieves all public events with their participant counts
func (r *EventRepository) GetPublicEvents(ctx context.Context) ([]*models.Event, error) {
	return r.queryEvents(ctx, eventSelect().
		Where("e.is_public").
		OrderBy("e.event_date"))
}

// GetByID retrieves a single event with its participant count and organizer.
// Returns ErrEventNotFound when the event does not exist.
func (r *EventRepository) GetByID(ctx context.Context, id int64) (*models.Event, error) {
	query := eventSelect().Where("e.id = ?", id)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	ev, err := scanEvent(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	organizer := &models.User{}
	err = r.db.QueryRow(ctx, `
		SELECT id, name, email, created_at, updated_at
		FROM users
		WHERE id = $1`,
		ev.OrganizerID).Scan(
		&organizer.ID, &organizer.Name, &organizer.Email,
		&organizer.CreatedAt, &organizer.UpdatedAt)
	if err == nil {
		ev.Organizer = organizer
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("error loading organizer: %w", err)
	}

	return ev, nil
}

// GetByOrganizerID retrieves all events organized by a user
func (r *EventRepository) GetByOrganizerID(ctx context.Context, organizerID int64) ([]*models.Event, error) {
	return r.queryEvents(ctx, eventSelect().
		Where("e.organizer_id = ?", organizerID).
		OrderBy("e.event_date"))
}

// GetParticipatingByUserID retrieves all events a user has joined, excluding
// events the user organizes so callers never see the organizer's auto-join
// membership as a second entry.
func (r *EventRepository) GetParticipatingByUserID(ctx context.Context, userID int64) ([]*models.Event, error) {
	return r.queryEvents(ctx, eventSelect().
		Join("participants me ON me.event_id = e.id AND me.user_id = ?", userID).
		Where("e.organizer_id <> ?", userID).
		OrderBy("e.event_date"))
}

// GetOrganizedBetween retrieves events a user organizes with event_date in [start, end]
func (r *EventRepository) GetOrganizedBetween(ctx context.Context, organizerID int64, start, end time.Time) ([]*models.Event, error) {
	return r.queryEvents(ctx, eventSelect().
		Where("e.organizer_id = ?", organizerID).
		Where("e.event_date >= ?", start).
		Where("e.event_date <= ?", end).
		OrderBy("e.event_date"))
}

// GetParticipatingBetween retrieves joined events with event_date in
// [start, end], excluding events the user organizes.
func (r *EventRepository) GetParticipatingBetween(ctx context.Context, userID int64, start, end time.Time) ([]*models.Event, error) {
	return r.queryEvents(ctx, eventSelect().
		Join("participants me ON me.event_id = e.id AND me.user_id = ?", userID).
		Where("e.organizer_id <> ?", userID).
		Where("e.event_date >= ?", start).
		Where("e.event_date <= ?", end).
		OrderBy("e.event_date"))
}

// Create inserts a new event and returns its generated ID
func (r *EventRepository) Create(ctx context.Context, ev *models.Event) (int64, error) {
	query := squirrel.Insert("events").
		Columns("name", "description", "event_date", "location", "capacity", "is_public", "organizer_id").
		Values(ev.Name, ev.Description, ev.EventDate, ev.Location, ev.Capacity, ev.IsPublic, ev.OrganizerID).
		Suffix("RETURNING id, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("error building SQL: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id, &ev.CreatedAt, &ev.UpdatedAt)
	if err != nil {
		return 0, fmt.Errorf("error executing query: %w", err)
	}

	ev.ID = id
	return id, nil
}

// Update persists the mutable fields of an event and stamps updated_at.
// The organizer_id column is immutable.
func (r *EventRepository) Update(ctx context.Context, ev *models.Event) error {
	query := squirrel.Update("events").
		Set("name", ev.Name).
		Set("description", ev.Description).
		Set("event_date", ev.EventDate).
		Set("location", ev.Location).
		Set("capacity", ev.Capacity).
		Set("is_public", ev.IsPublic).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where("id = ?", ev.ID).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	result, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrEventNotFound
	}

	return nil
}

// Delete removes an event; participant rows cascade at the database level
func (r *EventRepository) Delete(ctx context.Context, id int64) error {
	query := squirrel.Delete("events").
		Where("id = ?", id).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	result, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrEventNotFound
	}

	return nil
}
