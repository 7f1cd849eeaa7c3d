package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yalcin/gatherly/internal/app/models"
	"github.com/yalcin/gatherly/internal/pkg/apperrors"
	"github.com/yalcin/gatherly/internal/pkg/dberrors"
)

// participantsEventUserKey is the unique constraint on (event_id, user_id)
const participantsEventUserKey = "participants_event_id_user_id_key"

// ParticipantRepository handles database operations for event participants
type ParticipantRepository struct {
	db *pgxpool.Pool
}

// NewParticipantRepository creates a new ParticipantRepository
func NewParticipantRepository(db *pgxpool.Pool) *ParticipantRepository {
	return &ParticipantRepository{db: db}
}

// GetParticipantsByEventID retrieves all participants for an event with their users
func (r *ParticipantRepository) GetParticipantsByEventID(ctx context.Context, eventID int64) ([]*models.Participant, error) {
	query := squirrel.Select(
		"p.id", "p.event_id", "p.user_id", "p.joined_at",
		"u.id", "u.name", "u.email", "u.created_at", "u.updated_at",
	).
		From("participants p").
		Join("users u ON u.id = p.user_id").
		Where("p.event_id = ?", eventID).
		OrderBy("p.joined_at").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var participants []*models.Participant
	for rows.Next() {
		var participant models.Participant
		var user models.User
		err := rows.Scan(
			&participant.ID,
			&participant.EventID,
			&participant.UserID,
			&participant.JoinedAt,
			&user.ID, &user.Name, &user.Email, &user.CreatedAt, &user.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		participant.User = &user
		participants = append(participants, &participant)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return participants, nil
}

// GetCountByEventID retrieves the number of participants for an event
func (r *ParticipantRepository) GetCountByEventID(ctx context.Context, eventID int64) (int, error) {
	query := squirrel.Select("COUNT(*)").
		From("participants").
		Where("event_id = ?", eventID).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("error building SQL: %w", err)
	}

	var count int
	err = r.db.QueryRow(ctx, sql, args...).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error executing query: %w", err)
	}

	return count, nil
}

// IsParticipant checks if a user is a participant in an event
func (r *ParticipantRepository) IsParticipant(ctx context.Context, eventID, userID int64) (bool, error) {
	query := squirrel.Select("1").
		From("participants").
		Where("event_id = ? AND user_id = ?", eventID, userID).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return false, fmt.Errorf("error building SQL: %w", err)
	}

	var exists int
	err = r.db.QueryRow(ctx, sql, args...).Scan(&exists)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("error executing query: %w", err)
	}

	return true, nil
}

// AddParticipant inserts a membership row within a transaction that locks the
// event row first, so the capacity check and the insert see a consistent
// participant count even under concurrent joins. The unique constraint on
// (event_id, user_id) backs the duplicate check.
func (r *ParticipantRepository) AddParticipant(ctx context.Context, eventID, userID int64) (int64, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("error beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var capacity *int
	err = tx.QueryRow(ctx, `
		SELECT capacity FROM events WHERE id = $1 FOR UPDATE`,
		eventID).Scan(&capacity)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperrors.ErrEventNotFound
		}
		return 0, fmt.Errorf("error locking event: %w", err)
	}

	if capacity != nil {
		var count int
		err = tx.QueryRow(ctx, `
			SELECT COUNT(*) FROM participants WHERE event_id = $1`,
			eventID).Scan(&count)
		if err != nil {
			return 0, fmt.Errorf("error counting participants: %w", err)
		}
		if count >= *capacity {
			return 0, apperrors.ErrEventFull
		}
	}

	var id int64
	err = tx.QueryRow(ctx, `
		INSERT INTO participants (event_id, user_id)
		VALUES ($1, $2)
		RETURNING id`,
		eventID, userID).Scan(&id)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, participantsEventUserKey) {
			return 0, apperrors.ErrAlreadyParticipant
		}
		return 0, fmt.Errorf("error inserting participant: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("error committing transaction: %w", err)
	}

	return id, nil
}

// RemoveParticipant removes a user's membership from an event
func (r *ParticipantRepository) RemoveParticipant(ctx context.Context, eventID, userID int64) error {
	query := squirrel.Delete("participants").
		Where("event_id = ? AND user_id = ?", eventID, userID).
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
		return apperrors.ErrNotParticipant
	}

	return nil
}
