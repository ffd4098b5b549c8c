package handler

import (
	"meditrack/internal/features/chatbot/service"

	"github.com/gofiber/fiber/v2"
)

// ChatbotHandler serves the support chatbot endpoint.
type ChatbotHandler struct {
	chatbotService *service.ChatbotService
}

func NewChatbotHandler(chatbotService *service.ChatbotService) *ChatbotHandler {
	return &ChatbotHandler{chatbotService: chatbotService}
}

// ChatRequest is the chat payload.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse carries the bot's reply.
type ChatResponse struct {
	Reply string `json:"reply"`
}

// ErrorResponse is the standard error envelope.
type ErrorResponse struct {
	Message string `json:"message"`
}

// Chat godoc
// @Summary Ask the support chatbot
// @Description Returns a canned reply matched on keywords in the message
// @Tags chatbot
// @Accept json
// @Produce json
// @Param request body ChatRequest true "User message"
// @Success 200 {object} ChatResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/chatbot [post]
func (h *ChatbotHandler) Chat(c *fiber.Ctx) error {
	var req ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Message: "Invalid request body",
		})
	}
	return c.JSON(ChatResponse{Reply: h.chatbotService.Reply(req.Message)})
}
