package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/seu-repo/acessa/internal/domain"
	"github.com/seu-repo/acessa/internal/ports"
	"github.com/seu-repo/acessa/internal/service/accessibility"
)

type CatalogHandler struct {
	service ports.CatalogService
	log     *zap.Logger
}

func NewCatalogHandler(service ports.CatalogService, log *zap.Logger) *CatalogHandler {
	return &CatalogHandler{service: service, log: log}
}

// GetContent handles GET /api/v1/content/:id
func (h *CatalogHandler) GetContent(c *fiber.Ctx) error {
	item, err := h.service.GetContent(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"content":             item,
		"accessibility_score": accessibility.Score(item),
	})
}

// SearchContent handles GET /api/v1/content
func (h *CatalogHandler) SearchContent(c *fiber.Ctx) error {
	filter := domain.ContentFilter{
		Query:            c.Query("q"),
		Genre:            c.Query("genre"),
		AudioDescription: c.QueryBool("audio_description"),
		ClosedCaptions:   c.QueryBool("closed_captions"),
		SignLanguage:     c.QueryBool("sign_language"),
		Limit:            c.QueryInt("limit"),
	}

	items, err := h.service.SearchContent(c.Context(), filter)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"results": items,
		"count":   len(items),
	})
}

// GetAccessibilityScore handles GET /api/v1/content/:id/accessibility
func (h *CatalogHandler) GetAccessibilityScore(c *fiber.Ctx) error {
	item, err := h.service.GetContent(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}

	return c.JSON(accessibility.Score(item))
}

// GetStreamURL handles GET /api/v1/content/:id/stream
func (h *CatalogHandler) GetStreamURL(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)

	ticket, err := h.service.StreamURL(c.Context(), userID, c.Params("id"))
	if err != nil {
		return err
	}

	return c.JSON(ticket)
}

// ListFavorites handles GET /api/v1/favorites
func (h *CatalogHandler) ListFavorites(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)

	items, err := h.service.ListFavorites(c.Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"favorites": items,
		"count":     len(items),
	})
}

// AddFavorite handles POST /api/v1/favorites/:contentId
func (h *CatalogHandler) AddFavorite(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)

	favorite, err := h.service.AddFavorite(c.Context(), userID, c.Params("contentId"))
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(favorite)
}

// RemoveFavorite handles DELETE /api/v1/favorites/:contentId
func (h *CatalogHandler) RemoveFavorite(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)

	if err := h.service.RemoveFavorite(c.Context(), userID, c.Params("contentId")); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}

type rateRequest struct {
	Score   int    `json:"score"`
	Comment string `json:"comment,omitempty"`
}

// RateContent handles POST /api/v1/content/:id/ratings
func (h *CatalogHandler) RateContent(c *fiber.Ctx) error {
	var req rateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	userID, _ := c.Locals("user_id").(string)

	rating, err := h.service.RateContent(c.Context(), userID, c.Params("id"), req.Score, req.Comment)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(rating)
}

// GetRatingSummary handles GET /api/v1/content/:id/ratings
func (h *CatalogHandler) GetRatingSummary(c *fiber.Ctx) error {
	average, count, err := h.service.GetRatingSummary(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"content_id": c.Params("id"),
		"average":    average,
		"count":      count,
	})
}
