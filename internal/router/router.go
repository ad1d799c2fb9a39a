package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ead-tools/teachers-tool-api/internal/config"
	"github.com/ead-tools/teachers-tool-api/internal/handler"
	"github.com/ead-tools/teachers-tool-api/internal/observability"
)

// Dependencies groups router dependencies for registration.
type Dependencies struct {
	LessonPlanHandler       *handler.LessonPlanHandler
	TermPlanHandler         *handler.TermPlanHandler
	AssessmentHandler       *handler.AssessmentHandler
	EvaluationHandler       *handler.EvaluationHandler
	HomeworkHandler         *handler.HomeworkHandler
	StudentAssistantHandler *handler.AssistantHandler
	TeacherAssistantHandler *handler.AssistantHandler
	RateLimiter             fiber.Handler
}

// Register wires the HTTP routes into the fiber application.
func Register(app *fiber.App, cfg config.Config, deps Dependencies) {
	app.Get("/", handler.Root(cfg))
	app.Get("/health", handler.HealthCheck())
	app.Get("/metrics", observability.MetricsHandler())

	limiter := deps.RateLimiter
	if limiter == nil {
		limiter = func(c *fiber.Ctx) error { return c.Next() }
	}

	api := app.Group("/api/v1", func(c *fiber.Ctx) error {
		c.Set("X-Application", cfg.AppName)
		return c.Next()
	}, limiter)

	if deps.LessonPlanHandler != nil {
		deps.LessonPlanHandler.Register(api.Group("/lesson-plan"))
	}
	if deps.TermPlanHandler != nil {
		deps.TermPlanHandler.Register(api.Group("/term-plan"))
	}
	if deps.AssessmentHandler != nil {
		deps.AssessmentHandler.Register(api.Group("/assessment"))
	}
	if deps.EvaluationHandler != nil {
		deps.EvaluationHandler.Register(api.Group("/assessment-eval"))
	}
	if deps.HomeworkHandler != nil {
		deps.HomeworkHandler.Register(api.Group("/homework-generator"))
	}
	if deps.StudentAssistantHandler != nil {
		deps.StudentAssistantHandler.Register(api.Group("/student-assistant"))
	}
	if deps.TeacherAssistantHandler != nil {
		deps.TeacherAssistantHandler.Register(api.Group("/teacher-assistant"))
	}
}
