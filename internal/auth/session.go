package auth

import (
	"context"
	"errors"

	"sellerhub/internal/domain"
)

// Session resolves bearer tokens to active users. Verification always
// re-reads the user record so a deactivation after issuance is caught on
// the next request, not at the next login.
type Session struct {
	tokens *TokenManager
	users  domain.UserRepository
}

// NewSession creates a Session over a token manager and user store
func NewSession(tokens *TokenManager, users domain.UserRepository) *Session {
	return &Session{
		tokens: tokens,
		users:  users,
	}
}

// Verify validates a token and resolves it to an active user.
// Failure modes, in order: ErrTokenInvalid / ErrTokenExpired,
// domain.ErrUserNotFound, domain.ErrAccountDisabled.
func (s *Session) Verify(ctx context.Context, tokenString string) (*domain.User, error) {
	claims, err := s.tokens.Parse(tokenString)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, &domain.DependencyError{Dependency: "user store", Err: err}
	}

	if !user.Active {
		return nil, domain.ErrAccountDisabled
	}

	return user, nil
}

// Issue generates a new token for the given user
func (s *Session) Issue(user *domain.User) (string, error) {
	return s.tokens.Issue(user.ID)
}
