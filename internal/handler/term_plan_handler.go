package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/ead-tools/teachers-tool-api/internal/dto"
	"github.com/ead-tools/teachers-tool-api/internal/service"
	"github.com/ead-tools/teachers-tool-api/internal/utils"
)

// TermPlanHandler exposes term plan generation endpoints.
type TermPlanHandler struct {
	service service.TermPlanService
	logger  zerolog.Logger
}

// NewTermPlanHandler constructs the handler.
func NewTermPlanHandler(service service.TermPlanService, logger zerolog.Logger) *TermPlanHandler {
	return &TermPlanHandler{
		service: service,
		logger:  logger.With().Str("component", "term_plan_handler").Logger(),
	}
}

// Register wires the handler endpoints into the router group.
func (h *TermPlanHandler) Register(router fiber.Router) {
	router.Post("/generate", h.generate)
	router.Get("/", h.list)
	router.Get("/:id", h.get)
}

func (h *TermPlanHandler) generate(c *fiber.Ctx) error {
	var payload dto.TermPlanRequest
	if ok, err := parseBody(c, &payload); !ok {
		return err
	}

	response, err := h.service.Generate(c.UserContext(), payload)
	if err != nil {
		return respondFailure(c, h.logger, "generating term plan", err)
	}

	return utils.SendSuccess(c, response)
}

func (h *TermPlanHandler) list(c *fiber.Ctx) error {
	response, err := h.service.List(c.UserContext())
	if err != nil {
		return respondFailure(c, h.logger, "listing term plans", err)
	}
	return utils.SendSuccess(c, response)
}

func (h *TermPlanHandler) get(c *fiber.Ctx) error {
	response, err := h.service.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		if errors.Is(err, service.ErrTermPlanNotFound) {
			return utils.SendError(c, fiber.StatusNotFound, "Term plan not found")
		}
		return respondFailure(c, h.logger, "retrieving term plan", err)
	}
	return utils.SendSuccess(c, response)
}
