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

// CalculatorHandler handles DRE and pricing calculator requests
type CalculatorHandler struct {
	calculatorService *service.CalculatorService
}

// NewCalculatorHandler creates a new CalculatorHandler
func NewCalculatorHandler(calculatorService *service.CalculatorService) *CalculatorHandler {
	return &CalculatorHandler{
		calculatorService: calculatorService,
	}
}

// QuickDRE computes a DRE without persisting it
// POST /api/calculators/quick/dre
func (h *CalculatorHandler) QuickDRE(c echo.Context) error {
	var req dto.QuickDRERequest
	if err := c.Bind(&req); err != nil {
		return BadRequestResponse(c, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	result := h.calculatorService.QuickDRE(req.Revenue, req.Costs, req.Expenses)
	return SuccessResponse(c, result)
}

// QuickPricing computes a pricing result without persisting it
// POST /api/calculators/quick/pricing
func (h *CalculatorHandler) QuickPricing(c echo.Context) error {
	var req dto.QuickPricingRequest
	if err := c.Bind(&req); err != nil {
		return BadRequestResponse(c, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	result, err := h.calculatorService.QuickPricing(req.CostPrice, req.DesiredMargin, req.MarketplaceFees)
	if err != nil {
		return FailureResponse(c, err)
	}
	return SuccessResponse(c, result)
}

// CreateDRE computes and saves a DRE statement for a reporting period
// POST /api/calculators/dre
func (h *CalculatorHandler) CreateDRE(c echo.Context) error {
	user, err := middleware.GetUser(c)
	if err != nil {
		return UnauthorizedResponse(c, "User not authenticated")
	}

	var req dto.CreateDRERequest
	if err := c.Bind(&req); err != nil {
		return BadRequestResponse(c, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	periodStart, err := time.Parse("2006-01-02", req.PeriodStart)
	if err != nil {
		return BadRequestResponse(c, "Invalid period_start")
	}
	periodEnd, err := time.Parse("2006-01-02", req.PeriodEnd)
	if err != nil {
		return BadRequestResponse(c, "Invalid period_end")
	}
	if periodEnd.Before(periodStart) {
		return BadRequestResponse(c, "period_end must not be before period_start")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	dre, err := h.calculatorService.CreateDRE(ctx, user.ID, req.Name, periodStart, periodEnd, req.Revenue, req.Costs, req.Expenses)
	if err != nil {
		return FailureResponse(c, err)
	}

	return CreatedResponse(c, dre)
}

// ListDREs returns a page of the user's saved DRE calculations
// GET /api/calculators/dre
func (h *CalculatorHandler) ListDREs(c echo.Context) error {
	user, err := middleware.GetUser(c)
	if err != nil {
		return UnauthorizedResponse(c, "User not authenticated")
	}

	page, limit, offset := dto.PageParams(c, 10, 100)

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	dres, total, err := h.calculatorService.ListDREs(ctx, user.ID, offset, limit)
	if err != nil {
		return FailureResponse(c, err)
	}

	return SuccessResponse(c, echo.Map{
		"calculations": dres,
		"pagination":   dto.NewPagination(page, limit, total),
	})
}

// GetDRE returns a single saved DRE calculation
// GET /api/calculators/dre/:id
func (h *CalculatorHandler) GetDRE(c echo.Context) error {
	user, err := middleware.GetUser(c)
	if err != nil {
		return UnauthorizedResponse(c, "User not authenticated")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return BadRequestResponse(c, "Invalid calculation ID")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	dre, err := h.calculatorService.GetDRE(ctx, id, user.ID)
	if err != nil {
		return FailureResponse(c, err)
	}

	return SuccessResponse(c, dre)
}

// CreatePricing computes and saves a pricing calculation
// POST /api/calculators/pricing
func (h *CalculatorHandler) CreatePricing(c echo.Context) error {
	user, err := middleware.GetUser(c)
	if err != nil {
		return UnauthorizedResponse(c, "User not authenticated")
	}

	var req dto.CreatePricingRequest
	if err := c.Bind(&req); err != nil {
		return BadRequestResponse(c, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	pricing, err := h.calculatorService.CreatePricing(ctx, user.ID, req.ProductName, req.CostPrice, req.DesiredMargin, req.MarketplaceFees)
	if err != nil {
		return FailureResponse(c, err)
	}

	return CreatedResponse(c, pricing)
}

// ListPricings returns a page of the user's saved pricing calculations
// GET /api/calculators/pricing
func (h *CalculatorHandler) ListPricings(c echo.Context) error {
	user, err := middleware.GetUser(c)
	if err != nil {
		return UnauthorizedResponse(c, "User not authenticated")
	}

	page, limit, offset := dto.PageParams(c, 10, 100)

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	pricings, total, err := h.calculatorService.ListPricings(ctx, user.ID, offset, limit)
	if err != nil {
		return FailureResponse(c, err)
	}

	return SuccessResponse(c, echo.Map{
		"calculations": pricings,
		"pagination":   dto.NewPagination(page, limit, total),
	})
}

// GetPricing returns a single saved pricing calculation
// GET /api/calculators/pricing/:id
func (h *CalculatorHandler) GetPricing(c echo.Context) error {
	user, err := middleware.GetUser(c)
	if err != nil {
		return UnauthorizedResponse(c, "User not authenticated")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return BadRequestResponse(c, "Invalid calculation ID")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	pricing, err := h.calculatorService.GetPricing(ctx, id, user.ID)
	if err != nil {
		return FailureResponse(c, err)
	}

	return SuccessResponse(c, pricing)
}
