package http

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"

	"sellerhub/internal/delivery/http/dto"
	"sellerhub/internal/domain"
	"sellerhub/internal/middleware"
	"sellerhub/internal/service"
)

// UserHandler handles user profile and plan requests
type UserHandler struct {
	userService *service.UserService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// UpdateProfile updates the authenticated user's name and/or email
// PUT /api/users/profile
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	user, err := middleware.GetUser(c)
	if err != nil {
		return UnauthorizedResponse(c, "User not authenticated")
	}

	var req dto.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return BadRequestResponse(c, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	updated, err := h.userService.UpdateProfile(ctx, user.ID, req.Name, req.Email)
	if err != nil {
		return FailureResponse(c, err)
	}

	return SuccessMessageResponse(c, "Profile updated successfully", dto.NewUserOutput(updated))
}

// UpdatePlan changes the authenticated user's subscription plan
// PUT /api/users/plan
func (h *UserHandler) UpdatePlan(c echo.Context) error {
	user, err := middleware.GetUser(c)
	if err != nil {
		return UnauthorizedResponse(c, "User not authenticated")
	}

	var req dto.UpdatePlanRequest
	if err := c.Bind(&req); err != nil {
		return BadRequestResponse(c, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	plan, err := domain.ParsePlan(req.Plan)
	if err != nil {
		return BadRequestResponse(c, "Invalid plan")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	updated, err := h.userService.UpdatePlan(ctx, user.ID, plan)
	if err != nil {
		return FailureResponse(c, err)
	}

	return SuccessMessageResponse(c, "Plan updated successfully", dto.NewUserOutput(updated))
}

// Stats returns the authenticated user's record counts
// GET /api/users/stats
func (h *UserHandler) Stats(c echo.Context) error {
	user, err := middleware.GetUser(c)
	if err != nil {
		return UnauthorizedResponse(c, "User not authenticated")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	stats, err := h.userService.Stats(ctx, user.ID)
	if err != nil {
		return FailureResponse(c, err)
	}

	return SuccessResponse(c, stats)
}

// Plans returns the public plan catalog
// GET /api/users/plans
func (h *UserHandler) Plans(c echo.Context) error {
	return SuccessResponse(c, h.userService.Plans())
}
