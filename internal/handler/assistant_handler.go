package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/ead-tools/teachers-tool-api/internal/dto"
	"github.com/ead-tools/teachers-tool-api/internal/service"
	"github.com/ead-tools/teachers-tool-api/internal/utils"
)

// AssistantHandler exposes the ask/list/get endpoints of one assistant.
type AssistantHandler struct {
	service        service.AssistantService
	logger         zerolog.Logger
	audience       string
	notFound       error
	notFoundDetail string
}

// NewStudentAssistantHandler constructs the handler for the student assistant.
func NewStudentAssistantHandler(svc service.AssistantService, logger zerolog.Logger) *AssistantHandler {
	return newAssistantHandler(svc, logger, "student", service.ErrStudentQueryNotFound, "Student query not found")
}

// NewTeacherAssistantHandler constructs the handler for the teacher assistant.
func NewTeacherAssistantHandler(svc service.AssistantService, logger zerolog.Logger) *AssistantHandler {
	return newAssistantHandler(svc, logger, "teacher", service.ErrTeacherQueryNotFound, "Teacher query not found")
}

func newAssistantHandler(svc service.AssistantService, logger zerolog.Logger, audience string, notFound error, detail string) *AssistantHandler {
	return &AssistantHandler{
		service:        svc,
		logger:         logger.With().Str("component", audience+"_assistant_handler").Logger(),
		audience:       audience,
		notFound:       notFound,
		notFoundDetail: detail,
	}
}

// Register wires the handler endpoints into the router group.
func (h *AssistantHandler) Register(router fiber.Router) {
	router.Post("/ask", h.ask)
	router.Get("/", h.list)
	router.Get("/:id", h.get)
}

func (h *AssistantHandler) ask(c *fiber.Ctx) error {
	var payload dto.AssistantRequest
	if ok, err := parseBody(c, &payload); !ok {
		return err
	}

	response, err := h.service.Ask(c.UserContext(), payload)
	if err != nil {
		return respondFailure(c, h.logger, "getting "+h.audience+" assistance", err)
	}

	return utils.SendSuccess(c, response)
}

func (h *AssistantHandler) list(c *fiber.Ctx) error {
	response, err := h.service.List(c.UserContext())
	if err != nil {
		return respondFailure(c, h.logger, "listing "+h.audience+" queries", err)
	}
	return utils.SendSuccess(c, response)
}

func (h *AssistantHandler) get(c *fiber.Ctx) error {
	response, err := h.service.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		if errors.Is(err, h.notFound) {
			return utils.SendError(c, fiber.StatusNotFound, h.notFoundDetail)
		}
		return respondFailure(c, h.logger, "retrieving "+h.audience+" query", err)
	}
	return utils.SendSuccess(c, response)
}
