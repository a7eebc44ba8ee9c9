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

// ResearchHandler handles market research and trend requests
type ResearchHandler struct {
	researchService *service.ResearchService
}

// NewResearchHandler creates a new ResearchHandler
func NewResearchHandler(researchService *service.ResearchService) *ResearchHandler {
	return &ResearchHandler{
		researchService: researchService,
	}
}

// Create runs a market research and persists the result
// POST /api/research
func (h *ResearchHandler) Create(c echo.Context) error {
	user, err := middleware.GetUser(c)
	if err != nil {
		return UnauthorizedResponse(c, "User not authenticated")
	}

	var req dto.CreateResearchRequest
	if err := c.Bind(&req); err != nil {
		return BadRequestResponse(c, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 60*time.Second)
	defer cancel()

	research, err := h.researchService.Create(ctx, user.ID, req.ProductName, req.Category, req.SearchData)
	if err != nil {
		return FailureResponse(c, err)
	}

	return CreatedResponse(c, research)
}

// List returns a page of the user's researches, optionally filtered by
// category
// GET /api/research
func (h *ResearchHandler) List(c echo.Context) error {
	user, err := middleware.GetUser(c)
	if err != nil {
		return UnauthorizedResponse(c, "User not authenticated")
	}

	page, limit, offset := dto.PageParams(c, 10, 100)

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	researches, total, err := h.researchService.List(ctx, user.ID, c.QueryParam("category"), offset, limit)
	if err != nil {
		return FailureResponse(c, err)
	}

	return SuccessResponse(c, echo.Map{
		"researches": researches,
		"pagination": dto.NewPagination(page, limit, total),
	})
}

// Get returns a single market research
// GET /api/research/:id
func (h *ResearchHandler) Get(c echo.Context) error {
	user, err := middleware.GetUser(c)
	if err != nil {
		return UnauthorizedResponse(c, "User not authenticated")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return BadRequestResponse(c, "Invalid research ID")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	research, err := h.researchService.Get(ctx, id, user.ID)
	if err != nil {
		return FailureResponse(c, err)
	}

	return SuccessResponse(c, research)
}

// Update modifies a research's descriptive fields
// PUT /api/research/:id
func (h *ResearchHandler) Update(c echo.Context) error {
	user, err := middleware.GetUser(c)
	if err != nil {
		return UnauthorizedResponse(c, "User not authenticated")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return BadRequestResponse(c, "Invalid research ID")
	}

	var req dto.UpdateResearchRequest
	if err := c.Bind(&req); err != nil {
		return BadRequestResponse(c, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	research, err := h.researchService.Update(ctx, id, user.ID, req.ProductName, req.Category, req.SearchData)
	if err != nil {
		return FailureResponse(c, err)
	}

	return SuccessMessageResponse(c, "Research updated successfully", research)
}

// Delete removes a market research
// DELETE /api/research/:id
func (h *ResearchHandler) Delete(c echo.Context) error {
	user, err := middleware.GetUser(c)
	if err != nil {
		return UnauthorizedResponse(c, "User not authenticated")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return BadRequestResponse(c, "Invalid research ID")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.researchService.Delete(ctx, id, user.ID); err != nil {
		return FailureResponse(c, err)
	}

	return SuccessMessageResponse(c, "Research deleted successfully", nil)
}

// Trends returns a market-wide trend report
// GET /api/research/trends
func (h *ResearchHandler) Trends(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 60*time.Second)
	defer cancel()

	report, err := h.researchService.Trends(ctx, c.QueryParam("category"), c.QueryParam("period"))
	if err != nil {
		return FailureResponse(c, err)
	}

	return SuccessResponse(c, report)
}
