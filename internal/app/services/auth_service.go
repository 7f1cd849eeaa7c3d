package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/yalcin/gatherly/internal/app/models"
	"github.com/yalcin/gatherly/internal/app/models/dto"
	"github.com/yalcin/gatherly/internal/pkg/apperrors"
	"github.com/yalcin/gatherly/internal/pkg/auth"
	"github.com/yalcin/gatherly/internal/pkg/validation"
)

// UserRepository is the data access needed by the auth service
type UserRepository interface {
	Create(ctx context.Context, user *models.User) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}

// AuthService defines the interface for registration, login and profile lookup
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	GetUserByID(ctx context.Context, id int64) (*dto.UserDetailResponse, error)
}

// authServiceImpl implements AuthService
type authServiceImpl struct {
	userRepo   UserRepository
	eventRepo  EventRepository
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userRepo UserRepository,
	eventRepo EventRepository,
	jwtService *auth.JWTService,
	logger zerolog.Logger,
) AuthService {
	return &authServiceImpl{
		userRepo:   userRepo,
		eventRepo:  eventRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Register creates a new user account. Emails are compared case-insensitively,
// so a duplicate differing only in case is still a conflict.
func (s *authServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error) {
	name := strings.TrimSpace(req.Name)
	if !validation.ValidName(name) {
		return nil, apperrors.NewBadRequestError("Name must be 3-255 characters and contain only letters and spaces")
	}
	if !validation.ValidEmail(req.Email) {
		return nil, apperrors.NewBadRequestError("Invalid email address")
	}
	if !validation.ValidPassword(req.Password) {
		return nil, apperrors.NewBadRequestError(
			"Password must be 6-64 characters and contain an uppercase letter, a lowercase letter and a digit")
	}

	exists, err := s.userRepo.EmailExists(ctx, req.Email)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to check email existence")
		return nil, fmt.Errorf("error checking email: %w", err)
	}
	if exists {
		return nil, apperrors.NewConflictError("User with this email already exists")
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to hash password")
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Name:         name,
		Email:        strings.ToLower(req.Email),
		PasswordHash: passwordHash,
	}

	if _, err := s.userRepo.Create(ctx, user); err != nil {
		// Covers the race where the same email registers between the
		// existence check and the insert.
		if err == apperrors.ErrEmailAlreadyExists {
			return nil, apperrors.NewConflictError("User with this email already exists")
		}
		s.logger.Error().Err(err).Msg("Failed to create user")
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	s.logger.Info().Int64("userId", user.ID).Msg("User registered")

	response := dto.NewUserResponse(user)
	return &response, nil
}

// Login verifies credentials and issues an access token. Both an unknown email
// and a wrong password produce the same error, so the response does not reveal
// which accounts exist.
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if err == apperrors.ErrUserNotFound {
			return nil, apperrors.NewBadRequestError("Invalid email or password")
		}
		s.logger.Error().Err(err).Msg("Failed to get user by email")
		return nil, fmt.Errorf("error getting user: %w", err)
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		return nil, apperrors.NewBadRequestError("Invalid email or password")
	}

	token, expiresIn, err := s.jwtService.GenerateToken(user)
	if err != nil {
		s.logger.Error().Err(err).Int64("userId", user.ID).Msg("Failed to generate token")
		return nil, fmt.Errorf("error generating token: %w", err)
	}

	s.logger.Info().Int64("userId", user.ID).Msg("User logged in")

	return &dto.AuthResponse{
		Token:     token,
		ExpiresIn: expiresIn,
		User:      dto.NewUserResponse(user),
	}, nil
}

// GetUserByID retrieves a user profile with organized and joined events
func (s *authServiceImpl) GetUserByID(ctx context.Context, id int64) (*dto.UserDetailResponse, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if err == apperrors.ErrUserNotFound {
			return nil, apperrors.NewResourceNotFoundError(fmt.Sprintf("User with id %d not found", id))
		}
		return nil, fmt.Errorf("error getting user: %w", err)
	}

	organized, err := s.eventRepo.GetByOrganizerID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error getting organized events: %w", err)
	}

	participating, err := s.eventRepo.GetParticipatingByUserID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error getting participating events: %w", err)
	}

	response := &dto.UserDetailResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
	for _, ev := range organized {
		response.OrganizedEvents = append(response.OrganizedEvents, dto.NewEventListResponse(ev))
	}
	for _, ev := range participating {
		response.ParticipatingEvents = append(response.ParticipatingEvents, dto.NewEventListResponse(ev))
	}

	return response, nil
}
