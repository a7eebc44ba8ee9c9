package auth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sellerhub/internal/domain"
)

// fakeUserRepo is an in-memory UserRepository for session tests
type fakeUserRepo struct {
	users map[uuid.UUID]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*domain.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *fakeUserRepo) UpdateProfile(_ context.Context, user *domain.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) UpdatePlan(_ context.Context, id uuid.UUID, plan domain.Plan) error {
	r.users[id].Plan = plan
	return nil
}

func (r *fakeUserRepo) SetActive(_ context.Context, id uuid.UUID, active bool) error {
	r.users[id].Active = active
	return nil
}

func newTestUser(repo *fakeUserRepo) *domain.User {
	user := &domain.User{
		ID:     uuid.New(),
		Email:  "seller@example.com",
		Name:   "Seller",
		Plan:   domain.PlanFree,
		Active: true,
	}
	repo.users[user.ID] = user
	return user
}

func TestSession_Verify(t *testing.T) {
	repo := newFakeUserRepo()
	user := newTestUser(repo)
	session := NewSession(NewTokenManager("test-secret", time.Hour), repo)

	token, err := session.Issue(user)
	require.NoError(t, err)

	resolved, err := session.Verify(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, resolved.ID)
	assert.Equal(t, user.Email, resolved.Email)
}

func TestSession_Verify_DeactivatedAfterIssuance(t *testing.T) {
	repo := newFakeUserRepo()
	user := newTestUser(repo)
	session := NewSession(NewTokenManager("test-secret", time.Hour), repo)

	token, err := session.Issue(user)
	require.NoError(t, err)

	// Deactivation after issuance must be caught on the next verify,
	// not served from any issuance-time state.
	require.NoError(t, repo.SetActive(context.Background(), user.ID, false))

	_, err = session.Verify(context.Background(), token)
	assert.ErrorIs(t, err, domain.ErrAccountDisabled)
}

func TestSession_Verify_UserDeleted(t *testing.T) {
	repo := newFakeUserRepo()
	user := newTestUser(repo)
	session := NewSession(NewTokenManager("test-secret", time.Hour), repo)

	token, err := session.Issue(user)
	require.NoError(t, err)

	delete(repo.users, user.ID)

	_, err = session.Verify(context.Background(), token)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestSession_Verify_BadToken(t *testing.T) {
	repo := newFakeUserRepo()
	session := NewSession(NewTokenManager("test-secret", time.Hour), repo)

	_, err := session.Verify(context.Background(), "garbage")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestRequirePlan(t *testing.T) {
	free := &domain.User{Plan: domain.PlanFree}
	enterprise := &domain.User{Plan: domain.PlanEnterprise}

	err := domain.RequirePlan(free, domain.PlanPremium)
	var insufficient *domain.InsufficientPlanError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, domain.PlanFree, insufficient.Current)
	assert.Equal(t, domain.PlanPremium, insufficient.Required)

	assert.NoError(t, domain.RequirePlan(enterprise, domain.PlanPremium))
	assert.NoError(t, domain.RequirePlan(free, domain.PlanFree))
}
