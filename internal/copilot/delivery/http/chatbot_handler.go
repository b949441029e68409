package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"golang-stock-copilot/internal/copilot/dto"
	"golang-stock-copilot/internal/copilot/service"
	"golang-stock-copilot/pkg/logger"
)

// ChatbotHandler answers trading questions.
type ChatbotHandler struct {
	chatbot service.ChatbotService
	logger  *logger.Logger
}

func NewChatbotHandler(chatbot service.ChatbotService, logger *logger.Logger) *ChatbotHandler {
	return &ChatbotHandler{chatbot: chatbot, logger: logger}
}

// RegisterRoutes registers the chatbot routes to the Echo group.
func (h *ChatbotHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/chatbot", h.Ask)
}

// Ask godoc
// @Summary Ask the trading assistant
// @Tags chatbot
// @Accept json
// @Produce json
// @Param request body dto.ChatbotRequest true "Question"
// @Success 200 {object} dto.ChatbotResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /chatbot [post]
func (h *ChatbotHandler) Ask(c echo.Context) error {
	var req dto.ChatbotRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, validationMessage(err))
	}

	resp, err := h.chatbot.Ask(c.Request().Context(), req.Question)
	if errors.Is(err, dto.ErrMissingFields) {
		return badRequest(c, "No question provided")
	}
	if err != nil {
		h.logger.Error("Chatbot failed", logger.ErrorField(err))
		return errorJSON(c, http.StatusInternalServerError, "Failed to answer question")
	}
	return c.JSON(http.StatusOK, resp)
}
