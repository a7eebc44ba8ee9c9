package http

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"sellerhub/internal/delivery/http/dto"
	"sellerhub/internal/domain"
	"sellerhub/internal/middleware"
	"sellerhub/internal/service"
)

// ConnectionHandler handles store connection and product sync requests
type ConnectionHandler struct {
	connectionService *service.ConnectionService
}

// NewConnectionHandler creates a new ConnectionHandler
func NewConnectionHandler(connectionService *service.ConnectionService) *ConnectionHandler {
	return &ConnectionHandler{
		connectionService: connectionService,
	}
}

// Create registers a new store connection after validating its credentials
// POST /api/connections
func (h *ConnectionHandler) Create(c echo.Context) error {
	user, err := middleware.GetUser(c)
	if err != nil {
		return UnauthorizedResponse(c, "User not authenticated")
	}

	var req dto.CreateConnectionRequest
	if err := c.Bind(&req); err != nil {
		return BadRequestResponse(c, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 30*time.Second)
	defer cancel()

	conn, err := h.connectionService.Create(ctx, user.ID, req.StoreType, req.StoreName, req.APICredentials)
	if err != nil {
		return FailureResponse(c, err)
	}

	return CreatedResponse(c, conn)
}

// List returns the user's store connections, optionally filtered by
// store_type and is_active query parameters
// GET /api/connections
func (h *ConnectionHandler) List(c echo.Context) error {
	user, err := middleware.GetUser(c)
	if err != nil {
		return UnauthorizedResponse(c, "User not authenticated")
	}

	filter := domain.ConnectionFilter{StoreType: c.QueryParam("store_type")}
	if raw := c.QueryParam("is_active"); raw != "" {
		active, err := strconv.ParseBool(raw)
		if err != nil {
			return BadRequestResponse(c, "Invalid is_active filter")
		}
		filter.IsActive = &active
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	conns, err := h.connectionService.List(ctx, user.ID, filter)
	if err != nil {
		return FailureResponse(c, err)
	}

	return SuccessResponse(c, conns)
}

// Get returns a single store connection
// GET /api/connections/:id
func (h *ConnectionHandler) Get(c echo.Context) error {
	user, err := middleware.GetUser(c)
	if err != nil {
		return UnauthorizedResponse(c, "User not authenticated")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return BadRequestResponse(c, "Invalid connection ID")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	conn, err := h.connectionService.Get(ctx, id, user.ID)
	if err != nil {
		return FailureResponse(c, err)
	}

	return SuccessResponse(c, conn)
}

// Update modifies a connection's name, credentials or active flag
// PUT /api/connections/:id
func (h *ConnectionHandler) Update(c echo.Context) error {
	user, err := middleware.GetUser(c)
	if err != nil {
		return UnauthorizedResponse(c, "User not authenticated")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return BadRequestResponse(c, "Invalid connection ID")
	}

	var req dto.UpdateConnectionRequest
	if err := c.Bind(&req); err != nil {
		return BadRequestResponse(c, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 30*time.Second)
	defer cancel()

	conn, err := h.connectionService.Update(ctx, id, user.ID, req.StoreName, req.APICredentials, req.IsActive)
	if err != nil {
		return FailureResponse(c, err)
	}

	return SuccessMessageResponse(c, "Connection updated successfully", conn)
}

// Delete removes a store connection
// DELETE /api/connections/:id
func (h *ConnectionHandler) Delete(c echo.Context) error {
	user, err := middleware.GetUser(c)
	if err != nil {
		return UnauthorizedResponse(c, "User not authenticated")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return BadRequestResponse(c, "Invalid connection ID")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.connectionService.Delete(ctx, id, user.ID); err != nil {
		return FailureResponse(c, err)
	}

	return SuccessMessageResponse(c, "Connection deleted successfully", nil)
}

// Sync pulls the store catalog into the local product table
// POST /api/connections/:id/sync
func (h *ConnectionHandler) Sync(c echo.Context) error {
	user, err := middleware.GetUser(c)
	if err != nil {
		return UnauthorizedResponse(c, "User not authenticated")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return BadRequestResponse(c, "Invalid connection ID")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 60*time.Second)
	defer cancel()

	synced, err := h.connectionService.Sync(ctx, id, user.ID)
	if err != nil {
		return FailureResponse(c, err)
	}

	return SuccessMessageResponse(c, "Sync completed successfully", echo.Map{
		"products_synced": synced,
	})
}

// Products returns a page of the user's synced products, optionally
// filtered by connection_id and category
// GET /api/connections/products
func (h *ConnectionHandler) Products(c echo.Context) error {
	user, err := middleware.GetUser(c)
	if err != nil {
		return UnauthorizedResponse(c, "User not authenticated")
	}

	filter := domain.ProductFilter{Category: c.QueryParam("category")}
	if raw := c.QueryParam("connection_id"); raw != "" {
		connID, err := uuid.Parse(raw)
		if err != nil {
			return BadRequestResponse(c, "Invalid connection_id filter")
		}
		filter.ConnectionID = &connID
	}

	page, limit, offset := dto.PageParams(c, 20, 100)

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	products, total, err := h.connectionService.Products(ctx, user.ID, filter, offset, limit)
	if err != nil {
		return FailureResponse(c, err)
	}

	return SuccessResponse(c, echo.Map{
		"products":   products,
		"pagination": dto.NewPagination(page, limit, total),
	})
}
