package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sellerhub/internal/auth"
	"sellerhub/internal/domain"
	"sellerhub/internal/service"
)

// fakeUserRepo is an in-memory UserRepository for login handler tests
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

func newAuthTestHandler(repo *fakeUserRepo) *AuthHandler {
	session := auth.NewSession(auth.NewTokenManager("test-secret", time.Hour), repo)
	return NewAuthHandler(service.NewAuthService(repo, session))
}

func newLoginContext(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = NewRequestValidator()

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Login(t *testing.T) {
	repo := newFakeUserRepo()
	handler := newAuthTestHandler(repo)

	c, rec := newLoginContext(t, `{"email": "seller@example.com", "password": "senha-segura", "name": "Seller"}`)
	require.NoError(t, handler.Register(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	c, rec = newLoginContext(t, `{"email": "seller@example.com", "password": "senha-segura"}`)
	require.NoError(t, handler.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthHandler_Login_WrongPassword(t *testing.T) {
	repo := newFakeUserRepo()
	handler := newAuthTestHandler(repo)

	c, rec := newLoginContext(t, `{"email": "seller@example.com", "password": "senha-segura", "name": "Seller"}`)
	require.NoError(t, handler.Register(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	c, rec = newLoginContext(t, `{"email": "seller@example.com", "password": "senha-errada"}`)
	require.NoError(t, handler.Login(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthHandler_Login_DisabledAccount(t *testing.T) {
	repo := newFakeUserRepo()
	handler := newAuthTestHandler(repo)

	c, rec := newLoginContext(t, `{"email": "seller@example.com", "password": "senha-segura", "name": "Seller"}`)
	require.NoError(t, handler.Register(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var userID uuid.UUID
	for id := range repo.users {
		userID = id
	}
	require.NoError(t, repo.SetActive(context.Background(), userID, false))

	// A disabled account at login is an authentication failure, same
	// status as wrong credentials. The 403 is reserved for established
	// sessions hitting the auth middleware.
	c, rec = newLoginContext(t, `{"email": "seller@example.com", "password": "senha-segura"}`)
	require.NoError(t, handler.Login(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
