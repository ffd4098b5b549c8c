package handler

import (
	"meditrack/internal/core/logger"
	"meditrack/internal/features/sales/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// SalesHandler serves the sales demand chart endpoint.
type SalesHandler struct {
	salesService *service.SalesService
}

func NewSalesHandler(salesService *service.SalesService) *SalesHandler {
	return &SalesHandler{salesService: salesService}
}

// ErrorResponse is the standard error envelope.
type ErrorResponse struct {
	Message string `json:"message"`
	RayID   string `json:"ray_id,omitempty"`
}

func rayID(c *fiber.Ctx) string {
	if id, ok := c.Locals("requestid").(string); ok {
		return id
	}
	return ""
}

// Demand godoc
// @Summary Sales demand series
// @Description Returns the month axis plus one unit series per product for the demand chart
// @Tags sales
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} ErrorResponse
// @Router /api/sales_demand [get]
func (h *SalesHandler) Demand(c *fiber.Ctx) error {
	chart, err := h.salesService.DemandChart(c.Context())
	if err != nil {
		logger.Get().Error("Sales demand request failed",
			zap.String("ray_id", rayID(c)),
			zap.Error(err),
		)
		return c.Status(fiber.StatusServiceUnavailable).JSON(ErrorResponse{
			Message: "Sales data is temporarily unavailable",
			RayID:   rayID(c),
		})
	}

	payload := make(map[string]interface{}, len(chart.Series)+1)
	payload["months"] = chart.Months
	for product, units := range chart.Series {
		payload[product] = units
	}
	return c.JSON(payload)
}
