package handler

import (
	"errors"

	"meditrack/internal/core/logger"
	"meditrack/internal/features/auth/domain"
	"meditrack/internal/features/auth/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AuthHandler serves login and registration.
type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// CredentialsRequest is the login and registration payload.
type CredentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the issued session token.
type LoginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
}

// RegisterResponse confirms a created account.
type RegisterResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
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

// Login godoc
// @Summary Log in
// @Description Verifies credentials and returns a signed session token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body CredentialsRequest true "Email and password"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req CredentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Message: "Invalid request body",
			RayID:   rayID(c),
		})
	}

	token, err := h.authService.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
				Message: "Invalid email or password",
				RayID:   rayID(c),
			})
		}
		logger.Get().Error("Login failed",
			zap.String("ray_id", rayID(c)),
			zap.Error(err),
		)
		return c.Status(fiber.StatusServiceUnavailable).JSON(ErrorResponse{
			Message: "Login is temporarily unavailable",
			RayID:   rayID(c),
		})
	}

	return c.JSON(LoginResponse{Success: true, Token: token})
}

// Register godoc
// @Summary Register an operator account
// @Description Creates an account with a bcrypt-hashed password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body CredentialsRequest true "Email and password"
// @Success 201 {object} RegisterResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req CredentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Message: "Invalid request body",
			RayID:   rayID(c),
		})
	}

	if _, err := h.authService.Register(c.Context(), req.Email, req.Password); err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidUser):
			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
				Message: err.Error(),
				RayID:   rayID(c),
			})
		case errors.Is(err, domain.ErrEmailTaken):
			return c.Status(fiber.StatusConflict).JSON(ErrorResponse{
				Message: "An account with this email already exists",
				RayID:   rayID(c),
			})
		default:
			logger.Get().Error("Registration failed",
				zap.String("ray_id", rayID(c)),
				zap.Error(err),
			)
			return c.Status(fiber.StatusServiceUnavailable).JSON(ErrorResponse{
				Message: "Registration is temporarily unavailable",
				RayID:   rayID(c),
			})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(RegisterResponse{
		Success: true,
		Message: "Account created",
	})
}
