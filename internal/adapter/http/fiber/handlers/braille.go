package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/seu-repo/acessa/internal/domain"
	"github.com/seu-repo/acessa/internal/ports"
)

type BrailleHandler struct {
	service      ports.BrailleService
	defaultGrade domain.BrailleGrade
	defaultWidth int
	log          *zap.Logger
}

func NewBrailleHandler(service ports.BrailleService, defaultGrade domain.BrailleGrade, defaultWidth int, log *zap.Logger) *BrailleHandler {
	return &BrailleHandler{
		service:      service,
		defaultGrade: defaultGrade,
		defaultWidth: defaultWidth,
		log:          log,
	}
}

type encodeRequest struct {
	Text         string `json:"text"`
	Grade        string `json:"grade,omitempty"`
	CellsPerLine int    `json:"cells_per_line,omitempty"`
}

// Encode handles POST /api/v1/braille/encode
func (h *BrailleHandler) Encode(c *fiber.Ctx) error {
	var req encodeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	grade := h.defaultGrade
	if req.Grade != "" {
		grade = domain.BrailleGrade(req.Grade)
	}
	width := h.defaultWidth
	if req.CellsPerLine != 0 {
		width = req.CellsPerLine
	}

	doc, err := h.service.Encode(req.Text, grade, width)
	if err != nil {
		return err
	}

	return c.JSON(doc)
}
