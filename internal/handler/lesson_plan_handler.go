package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/ead-tools/teachers-tool-api/internal/dto"
	"github.com/ead-tools/teachers-tool-api/internal/service"
	"github.com/ead-tools/teachers-tool-api/internal/utils"
)

// LessonPlanHandler exposes lesson plan generation endpoints.
type LessonPlanHandler struct {
	service service.LessonPlanService
	logger  zerolog.Logger
}

// NewLessonPlanHandler constructs the handler.
func NewLessonPlanHandler(service service.LessonPlanService, logger zerolog.Logger) *LessonPlanHandler {
	return &LessonPlanHandler{
		service: service,
		logger:  logger.With().Str("component", "lesson_plan_handler").Logger(),
	}
}

// Register wires the handler endpoints into the router group.
func (h *LessonPlanHandler) Register(router fiber.Router) {
	router.Post("/generate", h.generate)
	router.Get("/", h.list)
	router.Get("/:id", h.get)
}

func (h *LessonPlanHandler) generate(c *fiber.Ctx) error {
	var payload dto.LessonPlanRequest
	if ok, err := parseBody(c, &payload); !ok {
		return err
	}

	response, err := h.service.Generate(c.UserContext(), payload)
	if err != nil {
		return respondFailure(c, h.logger, "generating lesson plan", err)
	}

	return utils.SendSuccess(c, response)
}

func (h *LessonPlanHandler) list(c *fiber.Ctx) error {
	response, err := h.service.List(c.UserContext())
	if err != nil {
		return respondFailure(c, h.logger, "listing lesson plans", err)
	}
	return utils.SendSuccess(c, response)
}

func (h *LessonPlanHandler) get(c *fiber.Ctx) error {
	response, err := h.service.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		if errors.Is(err, service.ErrLessonPlanNotFound) {
			return utils.SendError(c, fiber.StatusNotFound, "Lesson plan not found")
		}
		return respondFailure(c, h.logger, "retrieving lesson plan", err)
	}
	return utils.SendSuccess(c, response)
}
