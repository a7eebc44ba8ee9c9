package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sellerhub/internal/auth"
	"sellerhub/internal/domain"
)

// fakeUserRepo is an in-memory UserRepository for auth tests
type fakeUserRepo struct {
	users map[uuid.UUID]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*domain.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return domain.ErrEmailTaken
		}
	}
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

func newAuthService(repo *fakeUserRepo) *AuthService {
	session := auth.NewSession(auth.NewTokenManager("test-secret", time.Hour), repo)
	return NewAuthService(repo, session)
}

func TestAuthService_RegisterAndLogin(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newAuthService(repo)

	user, token, err := svc.Register(context.Background(), "seller@example.com", "senha-segura", "Seller")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, domain.PlanFree, user.Plan)
	assert.True(t, user.Active)
	assert.NotEqual(t, "senha-segura", user.PasswordHash)

	logged, token, err := svc.Login(context.Background(), "seller@example.com", "senha-segura")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, user.ID, logged.ID)
}

func TestAuthService_Register_EmailTaken(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newAuthService(repo)

	_, _, err := svc.Register(context.Background(), "seller@example.com", "senha-segura", "Seller")
	require.NoError(t, err)

	_, _, err = svc.Register(context.Background(), "seller@example.com", "outra-senha", "Outro")
	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newAuthService(repo)

	_, _, err := svc.Register(context.Background(), "seller@example.com", "senha-segura", "Seller")
	require.NoError(t, err)

	_, _, err = svc.Login(context.Background(), "seller@example.com", "senha-errada")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc := newAuthService(newFakeUserRepo())

	// Unknown email must look exactly like a wrong password
	_, _, err := svc.Login(context.Background(), "nobody@example.com", "senha")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_Login_DisabledAccount(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newAuthService(repo)

	user, _, err := svc.Register(context.Background(), "seller@example.com", "senha-segura", "Seller")
	require.NoError(t, err)
	require.NoError(t, repo.SetActive(context.Background(), user.ID, false))

	_, _, err = svc.Login(context.Background(), "seller@example.com", "senha-segura")
	assert.ErrorIs(t, err, domain.ErrAccountDisabled)
}

func TestAuthService_Refresh(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newAuthService(repo)

	user, _, err := svc.Register(context.Background(), "seller@example.com", "senha-segura", "Seller")
	require.NoError(t, err)

	refreshed, token, err := svc.Refresh(context.Background(), user.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, user.ID, refreshed.ID)

	require.NoError(t, repo.SetActive(context.Background(), user.ID, false))
	_, _, err = svc.Refresh(context.Background(), user.ID)
	assert.ErrorIs(t, err, domain.ErrAccountDisabled)

	_, _, err = svc.Refresh(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
