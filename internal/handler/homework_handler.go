package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/ead-tools/teachers-tool-api/internal/dto"
	"github.com/ead-tools/teachers-tool-api/internal/service"
	"github.com/ead-tools/teachers-tool-api/internal/utils"
)

// HomeworkHandler exposes homework generation endpoints.
type HomeworkHandler struct {
	service service.HomeworkService
	logger  zerolog.Logger
}

// NewHomeworkHandler constructs the handler.
func NewHomeworkHandler(service service.HomeworkService, logger zerolog.Logger) *HomeworkHandler {
	return &HomeworkHandler{
		service: service,
		logger:  logger.With().Str("component", "homework_handler").Logger(),
	}
}

// Register wires the handler endpoints into the router group.
func (h *HomeworkHandler) Register(router fiber.Router) {
	router.Post("/generate", h.generate)
	router.Get("/", h.list)
	router.Get("/:id", h.get)
}

func (h *HomeworkHandler) generate(c *fiber.Ctx) error {
	var payload dto.HomeworkRequest
	if ok, err := parseBody(c, &payload); !ok {
		return err
	}

	response, err := h.service.Generate(c.UserContext(), payload)
	if err != nil {
		return respondFailure(c, h.logger, "generating homework", err)
	}

	return utils.SendSuccess(c, response)
}

func (h *HomeworkHandler) list(c *fiber.Ctx) error {
	response, err := h.service.List(c.UserContext())
	if err != nil {
		return respondFailure(c, h.logger, "listing homework assignments", err)
	}
	return utils.SendSuccess(c, response)
}

func (h *HomeworkHandler) get(c *fiber.Ctx) error {
	response, err := h.service.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		if errors.Is(err, service.ErrHomeworkNotFound) {
			return utils.SendError(c, fiber.StatusNotFound, "Homework assignment not found")
		}
		return respondFailure(c, h.logger, "retrieving homework assignment", err)
	}
	return utils.SendSuccess(c, response)
}
