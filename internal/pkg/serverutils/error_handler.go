package serverutils

import (
	"errors"

	"github.com/LuisRodriguez27/notex/internal/pkg/apperror"
	"github.com/LuisRodriguez27/notex/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// NewErrorHandler maps the service error classes onto HTTP statuses. The
// message inside the error is boundary-safe by construction; raw causes
// never reach here.
func NewErrorHandler(log logger.ILogger) fiber.ErrorHandler {
	return func(ctx *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError

		switch {
		case errors.Is(err, apperror.ErrValidation):
			status = fiber.StatusBadRequest
		case errors.Is(err, apperror.ErrNotFound):
			status = fiber.StatusNotFound
		case errors.Is(err, apperror.ErrAttachmentIO):
			status = fiber.StatusInternalServerError
		case errors.Is(err, apperror.ErrStorage):
			status = fiber.StatusInternalServerError
		default:
			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) {
				status = fiberErr.Code
			}
		}

		if status >= fiber.StatusInternalServerError {
			log.Error("HTTP", "request failed", map[string]interface{}{
				"path":   ctx.Path(),
				"method": ctx.Method(),
				"error":  err.Error(),
			})
		}

		return ctx.Status(status).JSON(ErrorResponse(err.Error()))
	}
}
