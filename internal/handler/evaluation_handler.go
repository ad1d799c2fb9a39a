package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/ead-tools/teachers-tool-api/internal/dto"
	"github.com/ead-tools/teachers-tool-api/internal/service"
	"github.com/ead-tools/teachers-tool-api/internal/utils"
)

// EvaluationHandler exposes assessment evaluation endpoints.
type EvaluationHandler struct {
	service service.EvaluationService
	logger  zerolog.Logger
}

// NewEvaluationHandler constructs the handler.
func NewEvaluationHandler(service service.EvaluationService, logger zerolog.Logger) *EvaluationHandler {
	return &EvaluationHandler{
		service: service,
		logger:  logger.With().Str("component", "evaluation_handler").Logger(),
	}
}

// Register wires the handler endpoints into the router group.
func (h *EvaluationHandler) Register(router fiber.Router) {
	router.Post("/evaluate", h.evaluate)
	router.Get("/health", h.health)
}

func (h *EvaluationHandler) evaluate(c *fiber.Ctx) error {
	var payload dto.EvaluationRequest
	if ok, err := parseBody(c, &payload); !ok {
		return err
	}

	result, err := h.service.Evaluate(c.UserContext(), payload)
	if err != nil {
		return respondFailure(c, h.logger, "evaluating assessment", err)
	}

	return utils.SendSuccess(c, result)
}

func (h *EvaluationHandler) health(c *fiber.Ctx) error {
	return utils.SendSuccess(c, h.service.Health(c.UserContext()))
}
