package handler

import (
	"errors"
	"net/http"

	"meditrack/internal/core/logger"
	"meditrack/internal/features/verification/domain"
	"meditrack/internal/features/verification/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// VerificationHandler handles HTTP requests for certification verification.
type VerificationHandler struct {
	verificationService *service.VerificationService
}

// NewVerificationHandler creates a new VerificationHandler.
func NewVerificationHandler(verificationService *service.VerificationService) *VerificationHandler {
	return &VerificationHandler{
		verificationService: verificationService,
	}
}

// ErrorResponse represents an error response with Ray ID.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for tracing.
	RayID string `json:"ray_id,omitempty"`
}

// VerifyRequest is the body for a certification scan.
type VerifyRequest struct {
	// Code is the scanned barcode/QR payload.
	Code string `json:"code"`
}

func rayID(c *fiber.Ctx) string {
	if id, ok := c.Locals("requestid").(string); ok {
		return id
	}
	return "unknown"
}

// VerifyCertification godoc
// @Summary Verify a certification code
// @Description Looks up a scanned barcode/QR code and evaluates its validity at the current time. Unknown and lapsed codes are reported as unsuccessful verifications, not errors.
// @Tags verification
// @Accept json
// @Produce json
// @Param request body VerifyRequest true "Scanned code"
// @Success 200 {object} domain.VerificationResult
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/verify_certification [post]
func (h *VerificationHandler) VerifyCertification(c *fiber.Ctx) error {
	var req VerifyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "invalid request body",
			RayID:   rayID(c),
		})
	}

	result, err := h.verificationService.Verify(c.Context(), req.Code)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidArgument) {
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Message: err.Error(),
				RayID:   rayID(c),
			})
		}

		logger.Get().Error("Certification verification failed",
			zap.String("code", req.Code),
			zap.String("ray_id", rayID(c)),
			zap.Error(err),
		)
		return c.Status(http.StatusServiceUnavailable).JSON(ErrorResponse{
			Message: "Service temporarily unavailable",
			RayID:   rayID(c),
		})
	}

	return c.Status(http.StatusOK).JSON(result)
}
