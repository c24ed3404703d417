package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"paperspace-be/internal/pkg/apperrors"
	"paperspace-be/internal/pkg/logger"
)

func statusForKind(kind apperrors.Kind) int {
	switch kind {
	case apperrors.KindValidation:
		return fiber.StatusBadRequest
	case apperrors.KindUnauthorized:
		return fiber.StatusUnauthorized
	case apperrors.KindNotFound:
		return fiber.StatusNotFound
	case apperrors.KindConflict:
		return fiber.StatusConflict
	case apperrors.KindExtraction, apperrors.KindEmbedding:
		return fiber.StatusUnprocessableEntity
	case apperrors.KindCompletion, apperrors.KindUpstream:
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}

// ErrorHandlerMiddleware converts domain errors bubbling out of handlers
// into JSON error responses with matching status codes.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(fiber.Map{
				"status":  "error",
				"message": fiberErr.Message,
			})
		}

		kind := apperrors.KindOf(err)
		status := statusForKind(kind)

		var appErr *apperrors.Error
		message := "Internal server error"
		if errors.As(err, &appErr) {
			message = appErr.Message
		}

		if status >= fiber.StatusInternalServerError {
			log.Error("http", "request failed", map[string]interface{}{
				"path":   ctx.Path(),
				"method": ctx.Method(),
				"error":  err.Error(),
			})
		}

		return ctx.Status(status).JSON(fiber.Map{
			"status":  "error",
			"error":   kind.String(),
			"message": message,
		})
	}
}
