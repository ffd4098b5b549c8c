package handler

import (
	"errors"
	"net/http"
	"time"

	"meditrack/internal/core/logger"
	"meditrack/internal/features/tracking/domain"
	"meditrack/internal/features/tracking/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// TrackingHandler handles HTTP requests for shipment tracking.
type TrackingHandler struct {
	trackingService *service.TrackingService
}

// NewTrackingHandler creates a new TrackingHandler.
func NewTrackingHandler(trackingService *service.TrackingService) *TrackingHandler {
	return &TrackingHandler{
		trackingService: trackingService,
	}
}

// ErrorResponse represents an error response with Ray ID.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for tracing.
	RayID string `json:"ray_id,omitempty"`
}

// AppendEventRequest is the body for recording a status transition.
type AppendEventRequest struct {
	// Status is the new lifecycle status, as slug or display label.
	Status string `json:"status"`
	// Location is where the event occurred.
	Location string `json:"location"`
	// Timestamp is when the event occurred (YYYY-MM-DD HH:MM). Defaults to now.
	Timestamp string `json:"timestamp"`
}

func rayID(c *fiber.Ctx) string {
	if id, ok := c.Locals("requestid").(string); ok {
		return id
	}
	return "unknown"
}

// TrackOrder godoc
// @Summary Track an order
// @Description Returns the current lifecycle status and full tracking history for an order.
// @Tags tracking
// @Produce json
// @Param orderId query string true "Order ID"
// @Success 200 {object} domain.TrackingView
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/track_order [get]
func (h *TrackingHandler) TrackOrder(c *fiber.Ctx) error {
	orderID := c.Query("orderId")

	view, err := h.trackingService.Resolve(c.Context(), orderID)
	if err != nil {
		return h.writeError(c, orderID, err)
	}

	return c.Status(http.StatusOK).JSON(view)
}

// AppendEvent godoc
// @Summary Record a status transition
// @Description Appends a tracking event and advances the order's status by exactly one lifecycle step.
// @Tags tracking
// @Accept json
// @Produce json
// @Param orderId path string true "Order ID"
// @Param event body AppendEventRequest true "Transition to record"
// @Success 201 {object} domain.EventView
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/track_order/{orderId}/events [post]
func (h *TrackingHandler) AppendEvent(c *fiber.Ctx) error {
	orderID := c.Params("orderId")

	var req AppendEventRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "invalid request body",
			RayID:   rayID(c),
		})
	}

	status, err := domain.ParseStatus(req.Status)
	if err != nil {
		return h.writeError(c, orderID, err)
	}

	timestamp := time.Now()
	if req.Timestamp != "" {
		timestamp, err = time.Parse(domain.EventTimeLayout, req.Timestamp)
		if err != nil {
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Message: "timestamp must be formatted as YYYY-MM-DD HH:MM",
				RayID:   rayID(c),
			})
		}
	}

	event, err := h.trackingService.AppendEvent(c.Context(), orderID, domain.TrackingEvent{
		Status:    status,
		Location:  req.Location,
		Timestamp: timestamp,
	})
	if err != nil {
		return h.writeError(c, orderID, err)
	}

	return c.Status(http.StatusCreated).JSON(domain.EventView{
		Status:    event.Status.Label(),
		Location:  event.Location,
		Timestamp: event.Timestamp.Format(domain.EventTimeLayout),
	})
}

// writeError maps the tracking error taxonomy to HTTP responses.
func (h *TrackingHandler) writeError(c *fiber.Ctx, orderID string, err error) error {
	ray := rayID(c)

	switch {
	case errors.Is(err, domain.ErrInvalidArgument):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: err.Error(),
			RayID:   ray,
		})

	case errors.Is(err, domain.ErrOrderNotFound):
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{
			Message: "Order not found",
			RayID:   ray,
		})

	case errors.Is(err, domain.ErrInvalidTransition):
		return c.Status(http.StatusConflict).JSON(ErrorResponse{
			Message: err.Error(),
			RayID:   ray,
		})

	case errors.Is(err, domain.ErrIntegrityFault):
		logger.Get().Error("Tracking history integrity fault",
			zap.String("order_id", orderID),
			zap.String("ray_id", ray),
			zap.Error(err),
		)
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Message: "Tracking data is inconsistent for this order",
			RayID:   ray,
		})

	default:
		logger.Get().Error("Tracking request failed",
			zap.String("order_id", orderID),
			zap.String("ray_id", ray),
			zap.Error(err),
		)
		return c.Status(http.StatusServiceUnavailable).JSON(ErrorResponse{
			Message: "Service temporarily unavailable",
			RayID:   ray,
		})
	}
}
