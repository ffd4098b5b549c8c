package handler

import (
	"errors"

	"meditrack/internal/core/logger"
	"meditrack/internal/features/training/domain"
	"meditrack/internal/features/training/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// TrainingHandler serves the training booking endpoint.
type TrainingHandler struct {
	trainingService *service.TrainingService
}

func NewTrainingHandler(trainingService *service.TrainingService) *TrainingHandler {
	return &TrainingHandler{trainingService: trainingService}
}

// BookingRequest is the booking payload.
type BookingRequest struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

// BookingResponse confirms a stored booking.
type BookingResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	ID      int64  `json:"id"`
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

// Book godoc
// @Summary Book a training session
// @Description Schedules a product training session for the given date and time
// @Tags training
// @Accept json
// @Produce json
// @Param request body BookingRequest true "Requested slot"
// @Success 201 {object} BookingResponse
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/book_training [post]
func (h *TrainingHandler) Book(c *fiber.Ctx) error {
	var req BookingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Message: "Invalid request body",
			RayID:   rayID(c),
		})
	}

	booking, err := h.trainingService.Book(c.Context(), req.Date, req.Time)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidBooking) {
			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
				Message: err.Error(),
				RayID:   rayID(c),
			})
		}
		logger.Get().Error("Training booking failed",
			zap.String("ray_id", rayID(c)),
			zap.Error(err),
		)
		return c.Status(fiber.StatusServiceUnavailable).JSON(ErrorResponse{
			Message: "Booking is temporarily unavailable",
			RayID:   rayID(c),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(BookingResponse{
		Success: true,
		Message: "Training session booked for " + booking.Date + " at " + booking.Time,
		ID:      booking.ID,
	})
}
