package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a record does not exist or belongs to
	// another user. The two cases are indistinguishable on purpose.
	ErrNotFound = errors.New("record not found")

	// ErrEmailTaken is returned when an email is already registered
	ErrEmailTaken = errors.New("email already in use")

	// ErrInvalidCredentials is returned on login with a wrong email or
	// password. Which of the two was wrong is not disclosed.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUserNotFound is returned when a credential references a user
	// that no longer exists
	ErrUserNotFound = errors.New("user not found")

	// ErrAccountDisabled blocks all authorization regardless of plan
	ErrAccountDisabled = errors.New("account disabled")

	// ErrConnectionExists is returned when an active connection for the
	// same store type already exists
	ErrConnectionExists = errors.New("active connection for this store type already exists")

	// ErrInvalidStoreCredentials is returned when the store gateway
	// rejects the supplied API credentials
	ErrInvalidStoreCredentials = errors.New("invalid store API credentials")
)

// DependencyError wraps a failure of an external collaborator (database,
// store bridge, market bridge). It is surfaced as a generic failure and
// never retried automatically.
type DependencyError struct {
	Dependency string
	Err        error
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("%s unavailable: %v", e.Dependency, e.Err)
}

func (e *DependencyError) Unwrap() error {
	return e.Err
}
