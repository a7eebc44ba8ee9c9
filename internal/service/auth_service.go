package service

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"sellerhub/internal/auth"
	"sellerhub/internal/domain"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

// bcryptCost matches the original password hashing work factor
const bcryptCost = 12

// AuthService handles registration, login and token refresh
type AuthService struct {
	users   domain.UserRepository
	session *auth.Session
}

// NewAuthService creates a new AuthService
func NewAuthService(users domain.UserRepository, session *auth.Session) *AuthService {
	return &AuthService{
		users:   users,
		session: session,
	}
}

// Register creates a new free-plan user and issues its first token
func (s *AuthService) Register(ctx context.Context, email, password, name string) (*domain.User, string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, "", err
	}

	now := time.Now()
	user := &domain.User{
		ID:           uuid.New(),
		Email:        email,
		Name:         name,
		PasswordHash: string(hashedPassword),
		Plan:         domain.PlanFree,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			return nil, "", domain.ErrEmailTaken
		}
		logger.Error().Err(err).Msg("Error creating user")
		return nil, "", err
	}

	token, err := s.session.Issue(user)
	if err != nil {
		logger.Error().Err(err).Str("user_id", user.ID.String()).Msg("Error issuing token after registration")
		return nil, "", err
	}

	return user, token, nil
}

// Login verifies credentials and issues a token. A wrong email and a
// wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, "", domain.ErrInvalidCredentials
		}
		logger.Error().Err(err).Msg("Error looking up user for login")
		return nil, "", err
	}

	if !user.Active {
		return nil, "", domain.ErrAccountDisabled
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", domain.ErrInvalidCredentials
	}

	token, err := s.session.Issue(user)
	if err != nil {
		logger.Error().Err(err).Str("user_id", user.ID.String()).Msg("Error issuing token at login")
		return nil, "", err
	}

	return user, token, nil
}

// Refresh re-resolves the user and issues a fresh token. Resolving again
// catches deactivation since the original issuance; the old credential
// is never re-signed.
func (s *AuthService) Refresh(ctx context.Context, userID uuid.UUID) (*domain.User, string, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, "", domain.ErrUserNotFound
		}
		logger.Error().Err(err).Str("user_id", userID.String()).Msg("Error resolving user for refresh")
		return nil, "", err
	}

	if !user.Active {
		return nil, "", domain.ErrAccountDisabled
	}

	token, err := s.session.Issue(user)
	if err != nil {
		logger.Error().Err(err).Str("user_id", userID.String()).Msg("Error issuing refreshed token")
		return nil, "", err
	}

	return user, token, nil
}
