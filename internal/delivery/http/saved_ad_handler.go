package http

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"sellerhub/internal/delivery/http/dto"
	"sellerhub/internal/middleware"
	"sellerhub/internal/service"
)

// SavedAdHandler handles saved calculator snapshot requests
type SavedAdHandler struct {
	savedAdService *service.SavedAdService
}

// NewSavedAdHandler creates a new SavedAdHandler
func NewSavedAdHandler(savedAdService *service.SavedAdService) *SavedAdHandler {
	return &SavedAdHandler{
		savedAdService: savedAdService,
	}
}

// Create persists a new saved ad
// POST /api/saved-ads
func (h *SavedAdHandler) Create(c echo.Context) error {
	user, err := middleware.GetUser(c)
	if err != nil {
		return UnauthorizedResponse(c, "User not authenticated")
	}

	var req dto.CreateSavedAdRequest
	if err := c.Bind(&req); err != nil {
		return BadRequestResponse(c, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	ad, err := h.savedAdService.Create(ctx, user.ID, req.Name, req.CalculatorType, req.CalcData, req.PhotoURL, req.Comment, req.Tags)
	if err != nil {
		return FailureResponse(c, err)
	}

	return CreatedResponse(c, ad)
}

// List returns all of the user's saved ads
// GET /api/saved-ads
func (h *SavedAdHandler) List(c echo.Context) error {
	user, err := middleware.GetUser(c)
	if err != nil {
		return UnauthorizedResponse(c, "User not authenticated")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	ads, err := h.savedAdService.List(ctx, user.ID)
	if err != nil {
		return FailureResponse(c, err)
	}

	return SuccessResponse(c, ads)
}

// Get returns a single saved ad
// GET /api/saved-ads/:id
func (h *SavedAdHandler) Get(c echo.Context) error {
	user, err := middleware.GetUser(c)
	if err != nil {
		return UnauthorizedResponse(c, "User not authenticated")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return BadRequestResponse(c, "Invalid saved ad ID")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	ad, err := h.savedAdService.Get(ctx, id, user.ID)
	if err != nil {
		return FailureResponse(c, err)
	}

	return SuccessResponse(c, ad)
}

// Update modifies a saved ad
// PUT /api/saved-ads/:id
func (h *SavedAdHandler) Update(c echo.Context) error {
	user, err := middleware.GetUser(c)
	if err != nil {
		return UnauthorizedResponse(c, "User not authenticated")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return BadRequestResponse(c, "Invalid saved ad ID")
	}

	var req dto.UpdateSavedAdRequest
	if err := c.Bind(&req); err != nil {
		return BadRequestResponse(c, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	ad, err := h.savedAdService.Update(ctx, id, user.ID, req.Name, req.CalcData, req.PhotoURL, req.Comment, req.Tags)
	if err != nil {
		return FailureResponse(c, err)
	}

	return SuccessMessageResponse(c, "Saved ad updated successfully", ad)
}

// Delete removes a saved ad
// DELETE /api/saved-ads/:id
func (h *SavedAdHandler) Delete(c echo.Context) error {
	user, err := middleware.GetUser(c)
	if err != nil {
		return UnauthorizedResponse(c, "User not authenticated")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return BadRequestResponse(c, "Invalid saved ad ID")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.savedAdService.Delete(ctx, id, user.ID); err != nil {
		return FailureResponse(c, err)
	}

	return SuccessMessageResponse(c, "Saved ad deleted successfully", nil)
}
