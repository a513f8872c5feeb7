package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/seu-repo/acessa/internal/domain"
	"github.com/seu-repo/acessa/internal/ports"
)

type AssistantHandler struct {
	service ports.AssistantService
	log     *zap.Logger
}

func NewAssistantHandler(service ports.AssistantService, log *zap.Logger) *AssistantHandler {
	return &AssistantHandler{service: service, log: log}
}

type interpretRequest struct {
	Utterance string `json:"utterance"`
	Context   string `json:"context"`
	ContentID string `json:"content_id,omitempty"`
}

// Interpret handles POST /api/v1/assistant/interpret
func (h *AssistantHandler) Interpret(c *fiber.Ctx) error {
	var req interpretRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if req.Utterance == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "utterance is required"})
	}
	if req.Context == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "context is required"})
	}

	cmd := domain.CommandRequest{
		Utterance: req.Utterance,
		Context:   domain.CommandContext(req.Context),
		ContentID: req.ContentID,
	}
	if userID, ok := c.Locals("user_id").(string); ok {
		cmd.UserID = userID
	}

	response, err := h.service.Interpret(c.Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(response)
}
