package handler

import (
	"errors"

	"meditrack/internal/core/logger"
	"meditrack/internal/features/feedback/domain"
	"meditrack/internal/features/feedback/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// FeedbackHandler serves the feedback submission endpoint.
type FeedbackHandler struct {
	feedbackService *service.FeedbackService
}

func NewFeedbackHandler(feedbackService *service.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{feedbackService: feedbackService}
}

// FeedbackRequest is the submission payload.
type FeedbackRequest struct {
	Rating   int    `json:"rating"`
	Feedback string `json:"feedback"`
}

// FeedbackResponse confirms a stored submission.
type FeedbackResponse struct {
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

// Submit godoc
// @Summary Submit feedback
// @Description Records a customer satisfaction rating and comment
// @Tags feedback
// @Accept json
// @Produce json
// @Param request body FeedbackRequest true "Rating and comment"
// @Success 201 {object} FeedbackResponse
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/submit_feedback [post]
func (h *FeedbackHandler) Submit(c *fiber.Ctx) error {
	var req FeedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Message: "Invalid request body",
			RayID:   rayID(c),
		})
	}

	feedback, err := h.feedbackService.Submit(c.Context(), req.Rating, req.Feedback)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidFeedback) {
			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
				Message: err.Error(),
				RayID:   rayID(c),
			})
		}
		logger.Get().Error("Feedback submission failed",
			zap.String("ray_id", rayID(c)),
			zap.Error(err),
		)
		return c.Status(fiber.StatusServiceUnavailable).JSON(ErrorResponse{
			Message: "Feedback is temporarily unavailable",
			RayID:   rayID(c),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(FeedbackResponse{
		Success: true,
		Message: "Thank you for your feedback!",
		ID:      feedback.ID,
	})
}
