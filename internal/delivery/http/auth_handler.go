package http

import (
	"context"
	"errors"
	"time"

	"github.com/labstack/echo/v4"

	"sellerhub/internal/delivery/http/dto"
	"sellerhub/internal/domain"
	"sellerhub/internal/middleware"
	"sellerhub/internal/service"
)

// AuthHandler handles authentication-related requests
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register handles user registration
// POST /api/auth/register
func (h *AuthHandler) Register(c echo.Context) error {
	var req dto.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return BadRequestResponse(c, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	user, token, err := h.authService.Register(ctx, req.Email, req.Password, req.Name)
	if err != nil {
		return FailureResponse(c, err)
	}

	return CreatedResponse(c, dto.AuthResponse{
		Token: token,
		User:  dto.NewUserOutput(user),
	})
}

// Login handles user login
// POST /api/auth/login
func (h *AuthHandler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return BadRequestResponse(c, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	user, token, err := h.authService.Login(ctx, req.Email, req.Password)
	if err != nil {
		// At login a disabled account is an authentication failure, not
		// a forbidden action on an established session.
		if errors.Is(err, domain.ErrAccountDisabled) {
			return UnauthorizedResponse(c, "Account disabled")
		}
		return FailureResponse(c, err)
	}

	return SuccessResponse(c, dto.AuthResponse{
		Token: token,
		User:  dto.NewUserOutput(user),
	})
}

// Refresh issues a fresh token for the authenticated user
// POST /api/auth/refresh
func (h *AuthHandler) Refresh(c echo.Context) error {
	user, err := middleware.GetUser(c)
	if err != nil {
		return UnauthorizedResponse(c, "User not authenticated")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	fresh, token, err := h.authService.Refresh(ctx, user.ID)
	if err != nil {
		return FailureResponse(c, err)
	}

	return SuccessResponse(c, dto.AuthResponse{
		Token: token,
		User:  dto.NewUserOutput(fresh),
	})
}

// Logout acknowledges a logout. Tokens are stateless; the client drops
// its copy.
// POST /api/auth/logout
func (h *AuthHandler) Logout(c echo.Context) error {
	return SuccessMessageResponse(c, "Logged out successfully", nil)
}

// Profile returns the authenticated user
// GET /api/auth/profile
func (h *AuthHandler) Profile(c echo.Context) error {
	user, err := middleware.GetUser(c)
	if err != nil {
		return UnauthorizedResponse(c, "User not authenticated")
	}

	return SuccessResponse(c, dto.NewUserOutput(user))
}
