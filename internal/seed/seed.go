// Package seed creates demo data for local development
package seed

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	appModels "github.com/yalcin/gatherly/internal/app/models"
	appRepos "github.com/yalcin/gatherly/internal/app/repositories"
	"github.com/yalcin/gatherly/internal/pkg/apperrors"
	"github.com/yalcin/gatherly/internal/pkg/auth"
)

// CreateDefaultData creates demo users and events if they don't exist.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	userRepo := appRepos.NewUserRepository(dbPool)
	eventRepo := appRepos.NewEventRepository(dbPool)
	participantRepo := appRepos.NewParticipantRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data (demo users and events)...")
	var finalErr error

	organizerID, err := seedUser(ctx, userRepo, "Alice Demo", "alice@gatherly.dev", "Passw0rd")
	if err != nil {
		lgr.Error().Err(err).Msg("Error creating demo organizer")
		finalErr = errors.Join(finalErr, err)
	}

	attendeeID, err := seedUser(ctx, userRepo, "Bob Demo", "bob@gatherly.dev", "Passw0rd")
	if err != nil {
		lgr.Error().Err(err).Msg("Error creating demo attendee")
		finalErr = errors.Join(finalErr, err)
	}

	if organizerID == 0 {
		return finalErr
	}

	// Only seed events on a fresh database
	existing, err := eventRepo.GetByOrganizerID(ctx, organizerID)
	if err != nil {
		return errors.Join(finalErr, err)
	}
	if len(existing) > 0 {
		return finalErr
	}

	description := "Monthly community meetup with lightning talks, project demos and an open discussion round. Newcomers welcome."
	capacity := 50

	meetup := &appModels.Event{
		Name:        "Community Meetup",
		Description: &description,
		EventDate:   time.Now().AddDate(0, 0, 14).Truncate(time.Hour),
		Location:    "Community Hall",
		Capacity:    &capacity,
		IsPublic:    true,
		OrganizerID: organizerID,
	}

	meetupID, err := eventRepo.Create(ctx, meetup)
	if err != nil {
		lgr.Error().Err(err).Msg("Error creating demo event")
		return errors.Join(finalErr, err)
	}

	for _, userID := range []int64{organizerID, attendeeID} {
		if userID == 0 {
			continue
		}
		if _, err := participantRepo.AddParticipant(ctx, meetupID, userID); err != nil &&
			!errors.Is(err, apperrors.ErrAlreadyParticipant) {
			lgr.Error().Err(err).Int64("userId", userID).Msg("Error enrolling demo participant")
			finalErr = errors.Join(finalErr, err)
		}
	}

	lgr.Info().Int64("eventId", meetupID).Msg("Demo data created")
	return finalErr
}

// seedUser creates a user if absent, returning its ID either way
func seedUser(ctx context.Context, userRepo *appRepos.UserRepository, name, email, password string) (int64, error) {
	existing, err := userRepo.GetByEmail(ctx, email)
	if err == nil {
		return existing.ID, nil
	}
	if !errors.Is(err, apperrors.ErrUserNotFound) {
		return 0, err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return 0, err
	}

	user := &appModels.User{Name: name, Email: email, PasswordHash: hash}
	id, err := userRepo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			if existing, errGet := userRepo.GetByEmail(ctx, email); errGet == nil {
				return existing.ID, nil
			}
		}
		return 0, err
	}

	return id, nil
}
