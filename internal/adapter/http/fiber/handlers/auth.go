package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/seu-repo/acessa/internal/domain"
	"github.com/seu-repo/acessa/internal/ports"
)

type AuthHandler struct {
	service ports.AuthService
	email   ports.EmailService
	log     *zap.Logger
}

func NewAuthHandler(service ports.AuthService, email ports.EmailService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{service: service, email: email, log: log}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Name                    string `json:"name"`
	Email                   string `json:"email"`
	Password                string `json:"password"`
	PreferredLanguage       string `json:"preferred_language,omitempty"`
	PrefersAudioDescription bool   `json:"prefers_audio_description"`
	PrefersClosedCaptions   bool   `json:"prefers_closed_captions"`
	PrefersBrailleOutput    bool   `json:"prefers_braille_output"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// Login handles POST /api/v1/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if req.Email == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "email and password are required"})
	}

	accessToken, refreshToken, err := h.service.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"accessToken":  accessToken,
		"refreshToken": refreshToken,
	})
}

// Register handles POST /api/v1/auth/register
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if req.Name == "" || req.Email == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "name, email and password are required"})
	}

	user := &domain.User{
		Name:                    req.Name,
		Email:                   req.Email,
		Password:                req.Password,
		PreferredLanguage:       req.PreferredLanguage,
		PrefersAudioDescription: req.PrefersAudioDescription,
		PrefersClosedCaptions:   req.PrefersClosedCaptions,
		PrefersBrailleOutput:    req.PrefersBrailleOutput,
	}

	if err := h.service.Register(c.Context(), user); err != nil {
		return err
	}

	if h.email != nil {
		if err := h.email.SendWelcome(c.Context(), user); err != nil {
			h.log.Warn("Failed to send welcome email",
				zap.String("user_id", user.ID),
				zap.Error(err),
			)
		}
	}

	return c.Status(fiber.StatusCreated).JSON(user)
}

// RefreshToken handles POST /api/v1/auth/refresh
func (h *AuthHandler) RefreshToken(c *fiber.Ctx) error {
	var req refreshRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if req.RefreshToken == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "refreshToken is required"})
	}

	accessToken, err := h.service.RefreshToken(c.Context(), req.RefreshToken)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"accessToken": accessToken})
}

// Me handles GET /api/v1/auth/me
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user, ok := c.Locals("user").(*domain.User)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not authenticated"})
	}

	return c.JSON(user)
}
