package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"sellerhub/internal/auth"
	"sellerhub/internal/domain"
)

const userContextKey = "auth_user"

// Authenticator validates bearer tokens and attaches the resolved user
// to the request context
type Authenticator struct {
	session *auth.Session
}

// NewAuthenticator creates an Authenticator over an auth session
func NewAuthenticator(session *auth.Session) *Authenticator {
	return &Authenticator{session: session}
}

// Authenticate validates the Authorization header and sets the user in
// the echo context. Each auth failure keeps its own message so clients
// can distinguish an expired token from a revoked account.
func (a *Authenticator) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, err := bearerToken(c)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
		}

		user, err := a.session.Verify(c.Request().Context(), token)
		if err != nil {
			switch {
			case errors.Is(err, auth.ErrTokenExpired):
				return echo.NewHTTPError(http.StatusUnauthorized, "Token expired")
			case errors.Is(err, auth.ErrTokenInvalid):
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
			case errors.Is(err, domain.ErrUserNotFound):
				return echo.NewHTTPError(http.StatusUnauthorized, "User not found")
			case errors.Is(err, domain.ErrAccountDisabled):
				return echo.NewHTTPError(http.StatusForbidden, "Account disabled")
			default:
				return echo.NewHTTPError(http.StatusInternalServerError, "Authentication failed")
			}
		}

		c.Set(userContextKey, user)
		return next(c)
	}
}

// RequirePlan gates a route group to users at or above the given tier.
// Must run after Authenticate.
func RequirePlan(min domain.Plan) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, err := GetUser(c)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
			}

			if err := domain.RequirePlan(user, min); err != nil {
				var insufficient *domain.InsufficientPlanError
				if errors.As(err, &insufficient) {
					return echo.NewHTTPError(http.StatusForbidden, map[string]string{
						"message":       fmt.Sprintf("Plan %s required", insufficient.Required),
						"current_plan":  string(insufficient.Current),
						"required_plan": string(insufficient.Required),
					})
				}
				return echo.NewHTTPError(http.StatusForbidden, "Insufficient plan")
			}

			return next(c)
		}
	}
}

// GetUser extracts the authenticated user from the echo context
func GetUser(c echo.Context) (*domain.User, error) {
	user, ok := c.Get(userContextKey).(*domain.User)
	if !ok {
		return nil, fmt.Errorf("user not found in context")
	}
	return user, nil
}

func bearerToken(c echo.Context) (string, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return "", fmt.Errorf("missing authentication token")
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", fmt.Errorf("invalid authorization header format")
	}

	return parts[1], nil
}
