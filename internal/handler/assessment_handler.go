package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/ead-tools/teachers-tool-api/internal/dto"
	"github.com/ead-tools/teachers-tool-api/internal/service"
	"github.com/ead-tools/teachers-tool-api/internal/utils"
)

// AssessmentHandler exposes assessment generation endpoints.
type AssessmentHandler struct {
	service service.AssessmentService
	logger  zerolog.Logger
}

// NewAssessmentHandler constructs the handler.
func NewAssessmentHandler(service service.AssessmentService, logger zerolog.Logger) *AssessmentHandler {
	return &AssessmentHandler{
		service: service,
		logger:  logger.With().Str("component", "assessment_handler").Logger(),
	}
}

// Register wires the handler endpoints into the router group.
func (h *AssessmentHandler) Register(router fiber.Router) {
	router.Post("/generate", h.generate)
	router.Get("/", h.list)
	router.Get("/:id", h.get)
}

func (h *AssessmentHandler) generate(c *fiber.Ctx) error {
	var payload dto.AssessmentRequest
	if ok, err := parseBody(c, &payload); !ok {
		return err
	}

	response, err := h.service.Generate(c.UserContext(), payload)
	if err != nil {
		return respondFailure(c, h.logger, "generating assessment", err)
	}

	return utils.SendSuccess(c, response)
}

func (h *AssessmentHandler) list(c *fiber.Ctx) error {
	response, err := h.service.List(c.UserContext())
	if err != nil {
		return respondFailure(c, h.logger, "listing assessments", err)
	}
	return utils.SendSuccess(c, response)
}

func (h *AssessmentHandler) get(c *fiber.Ctx) error {
	response, err := h.service.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		if errors.Is(err, service.ErrAssessmentNotFound) {
			return utils.SendError(c, fiber.StatusNotFound, "Assessment not found")
		}
		return respondFailure(c, h.logger, "retrieving assessment", err)
	}
	return utils.SendSuccess(c, response)
}
