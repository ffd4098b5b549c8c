package handler

import (
	"errors"
	"net/http"
	"strconv"

	"meditrack/internal/core/logger"
	"meditrack/internal/features/inventory/domain"
	"meditrack/internal/features/inventory/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// InventoryHandler handles HTTP requests for warehouse stock.
type InventoryHandler struct {
	inventoryService *service.InventoryService
}

// NewInventoryHandler creates a new InventoryHandler.
func NewInventoryHandler(inventoryService *service.InventoryService) *InventoryHandler {
	return &InventoryHandler{
		inventoryService: inventoryService,
	}
}

// ErrorResponse represents an error response with Ray ID.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for tracing.
	RayID string `json:"ray_id,omitempty"`
}

// ItemRequest is the body for creating or updating an item.
type ItemRequest struct {
	ItemName string `json:"itemName"`
	Quantity int    `json:"quantity"`
	Category string `json:"category"`
}

func rayID(c *fiber.Ctx) string {
	if id, ok := c.Locals("requestid").(string); ok {
		return id
	}
	return "unknown"
}

// ListItems godoc
// @Summary List inventory items
// @Description Returns all items, optionally filtered by a substring match on name or category.
// @Tags inventory
// @Produce json
// @Param search query string false "Substring to match against name or category"
// @Success 200 {array} domain.Item
// @Failure 503 {object} ErrorResponse
// @Router /api/inventory [get]
func (h *InventoryHandler) ListItems(c *fiber.Ctx) error {
	items, err := h.inventoryService.List(c.Context(), c.Query("search"))
	if err != nil {
		return h.writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(items)
}

// AddItem godoc
// @Summary Add an inventory item
// @Tags inventory
// @Accept json
// @Produce json
// @Param item body ItemRequest true "Item to add"
// @Success 201 {object} domain.Item
// @Failure 400 {object} ErrorResponse
// @Router /api/inventory [post]
func (h *InventoryHandler) AddItem(c *fiber.Ctx) error {
	var req ItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "invalid request body",
			RayID:   rayID(c),
		})
	}

	item, err := h.inventoryService.Add(c.Context(), req.ItemName, req.Quantity, req.Category)
	if err != nil {
		return h.writeError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(item)
}

// UpdateItem godoc
// @Summary Update an inventory item
// @Tags inventory
// @Accept json
// @Produce json
// @Param id path int true "Item ID"
// @Param item body ItemRequest true "Replacement fields"
// @Success 200 {object} domain.Item
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/inventory/{id} [put]
func (h *InventoryHandler) UpdateItem(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "item ID must be an integer",
			RayID:   rayID(c),
		})
	}

	var req ItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "invalid request body",
			RayID:   rayID(c),
		})
	}

	item, err := h.inventoryService.Update(c.Context(), id, req.ItemName, req.Quantity, req.Category)
	if err != nil {
		return h.writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(item)
}

// DeleteItem godoc
// @Summary Delete an inventory item
// @Tags inventory
// @Produce json
// @Param id path int true "Item ID"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/inventory/{id} [delete]
func (h *InventoryHandler) DeleteItem(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "item ID must be an integer",
			RayID:   rayID(c),
		})
	}

	if err := h.inventoryService.Remove(c.Context(), id); err != nil {
		return h.writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"success": true})
}

func (h *InventoryHandler) writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidItem):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: err.Error(),
			RayID:   rayID(c),
		})

	case errors.Is(err, domain.ErrItemNotFound):
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{
			Message: "Inventory item not found",
			RayID:   rayID(c),
		})

	default:
		logger.Get().Error("Inventory request failed",
			zap.String("ray_id", rayID(c)),
			zap.Error(err),
		)
		return c.Status(http.StatusServiceUnavailable).JSON(ErrorResponse{
			Message: "Service temporarily unavailable",
			RayID:   rayID(c),
		})
	}
}
