package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/seu-repo/acessa/internal/domain"
	"github.com/seu-repo/acessa/internal/service/auth"
)

// NewErrorHandler maps domain errors to HTTP status codes so handlers can
// simply return them. Anything unmapped is logged and answered with 500.
func NewErrorHandler(log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		var fiberErr *fiber.Error
		switch {
		case errors.As(err, &fiberErr):
			code = fiberErr.Code
		case errors.Is(err, domain.ErrContentIDRequired),
			errors.Is(err, domain.ErrInvalidScore),
			errors.Is(err, domain.ErrInvalidGrade),
			errors.Is(err, domain.ErrInvalidCellsPerLine):
			code = fiber.StatusBadRequest
		case errors.Is(err, domain.ErrContentNotFound),
			errors.Is(err, domain.ErrNoStream):
			code = fiber.StatusNotFound
		case errors.Is(err, auth.ErrInvalidCredentials),
			errors.Is(err, auth.ErrInvalidToken):
			code = fiber.StatusUnauthorized
		case errors.Is(err, auth.ErrEmailTaken):
			code = fiber.StatusConflict
		}

		if code == fiber.StatusInternalServerError {
			log.Error("Unhandled request error",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.Error(err),
			)
			return c.Status(code).JSON(fiber.Map{"error": "Internal server error"})
		}

		return c.Status(code).JSON(fiber.Map{"error": err.Error()})
	}
}
