package handler

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/ead-tools/teachers-tool-api/internal/utils"
)

// ErrorHandler renders any error that escapes a handler, including recovered
// panics and unmatched routes, as the API error envelope.
func ErrorHandler(logger zerolog.Logger) fiber.ErrorHandler {
	logger = logger.With().Str("component", "error_handler").Logger()

	return func(c *fiber.Ctx, err error) error {
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			detail := fiberErr.Message
			if fiberErr.Code == fiber.StatusNotFound || detail == "" {
				detail = http.StatusText(fiberErr.Code)
			}
			return utils.SendError(c, fiberErr.Code, detail)
		}

		requestLogger(logger, c).Error().Err(err).Str("path", c.Path()).Msg("unhandled error")
		return utils.SendError(c, fiber.StatusInternalServerError, "Internal server error")
	}
}
