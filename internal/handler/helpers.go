package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/ead-tools/teachers-tool-api/internal/middleware"
	"github.com/ead-tools/teachers-tool-api/internal/service"
	"github.com/ead-tools/teachers-tool-api/internal/utils"
)

const invalidBodyDetail = "Invalid request body"

func requestLogger(base zerolog.Logger, c *fiber.Ctx) *zerolog.Logger {
	logger := base
	if c != nil {
		if correlation := middleware.GetCorrelationID(c); correlation != "" {
			logger = base.With().Str("correlation_id", correlation).Logger()
		}
	}
	return &logger
}

// parseBody decodes the JSON body into payload, answering 422 on failure.
// The boolean reports whether the handler should continue.
func parseBody(c *fiber.Ctx, payload interface{}) (bool, error) {
	if err := c.BodyParser(payload); err != nil {
		return false, utils.SendError(c, fiber.StatusUnprocessableEntity, invalidBodyDetail)
	}
	return true, nil
}

// respondFailure maps a service error to the API error envelope. action
// completes the sentence "Error <action>: ..." used for server errors.
func respondFailure(c *fiber.Ctx, logger zerolog.Logger, action string, err error) error {
	var validationErrors validator.ValidationErrors
	switch {
	case errors.As(err, &validationErrors):
		return utils.SendError(c, fiber.StatusUnprocessableEntity, describeValidation(validationErrors))
	case errors.Is(err, service.ErrQuestionEmpty):
		return utils.SendError(c, fiber.StatusUnprocessableEntity, "question must contain text")
	default:
		requestLogger(logger, c).Error().Err(err).Str("action", action).Msg("request failed")
		return utils.SendError(c, fiber.StatusInternalServerError, fmt.Sprintf("Error %s: %s", action, err.Error()))
	}
}

func describeValidation(errs validator.ValidationErrors) string {
	parts := make([]string, 0, len(errs))
	for _, fieldErr := range errs {
		rule := fieldErr.Tag()
		if fieldErr.Param() != "" {
			rule += "=" + fieldErr.Param()
		}
		parts = append(parts, fmt.Sprintf("%s: failed %s", fieldPath(fieldErr), rule))
	}
	return strings.Join(parts, "; ")
}

// fieldPath drops the struct name from the namespace, e.g. question_types[0].
func fieldPath(fieldErr validator.FieldError) string {
	namespace := fieldErr.Namespace()
	if idx := strings.IndexByte(namespace, '.'); idx >= 0 {
		return namespace[idx+1:]
	}
	return fieldErr.Field()
}
