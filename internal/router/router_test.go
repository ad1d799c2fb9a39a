package router_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/ead-tools/teachers-tool-api/internal/config"
	"github.com/ead-tools/teachers-tool-api/internal/dto"
	"github.com/ead-tools/teachers-tool-api/internal/handler"
	"github.com/ead-tools/teachers-tool-api/internal/middleware"
	"github.com/ead-tools/teachers-tool-api/internal/router"
	"github.com/ead-tools/teachers-tool-api/internal/service"
	"github.com/ead-tools/teachers-tool-api/pkg/ai"
)

type echoGenerator struct{}

func (echoGenerator) Generate(_ context.Context, input ai.GenerationInput) (string, error) {
	return "ok", nil
}

func newApp(limiter fiber.Handler) *fiber.App {
	logger := zerolog.New(io.Discard)
	validate := dto.NewValidator()
	gen := echoGenerator{}
	generation := service.GenerationConfig{Timeout: time.Second}
	cfg := config.Config{AppName: "EAD Teachers Tool Backend", AppVersion: "1.0.0", AppEnv: "test"}

	app := fiber.New(fiber.Config{ErrorHandler: handler.ErrorHandler(logger)})
	middleware.Register(app, middleware.Config{Logger: &logger, AllowedOrigins: []string{"*"}})
	router.Register(app, cfg, router.Dependencies{
		LessonPlanHandler:       handler.NewLessonPlanHandler(service.NewLessonPlanService(gen, validate, logger, generation), logger),
		TermPlanHandler:         handler.NewTermPlanHandler(service.NewTermPlanService(gen, validate, logger, generation), logger),
		AssessmentHandler:       handler.NewAssessmentHandler(service.NewAssessmentService(gen, validate, logger, generation), logger),
		EvaluationHandler:       handler.NewEvaluationHandler(service.NewEvaluationService(gen, nil, validate, logger, generation), logger),
		HomeworkHandler:         handler.NewHomeworkHandler(service.NewHomeworkService(gen, validate, logger, generation), logger),
		StudentAssistantHandler: handler.NewStudentAssistantHandler(service.NewStudentAssistantService(gen, validate, logger, generation), logger),
		TeacherAssistantHandler: handler.NewTeacherAssistantHandler(service.NewTeacherAssistantService(gen, validate, logger, generation), logger),
		RateLimiter:             limiter,
	})
	return app
}

func TestRegisterExposesEveryRoute(t *testing.T) {
	app := newApp(nil)

	routes := []struct {
		method string
		path   string
		status int
	}{
		{http.MethodGet, "/", fiber.StatusOK},
		{http.MethodGet, "/health", fiber.StatusOK},
		{http.MethodGet, "/metrics", fiber.StatusOK},
		{http.MethodGet, "/api/v1/assessment-eval/health", fiber.StatusOK},
		{http.MethodGet, "/api/v1/lesson-plan/", fiber.StatusOK},
		{http.MethodGet, "/api/v1/term-plan/", fiber.StatusOK},
		{http.MethodGet, "/api/v1/assessment/", fiber.StatusOK},
		{http.MethodGet, "/api/v1/homework-generator/", fiber.StatusOK},
		{http.MethodGet, "/api/v1/student-assistant/", fiber.StatusOK},
		{http.MethodGet, "/api/v1/teacher-assistant/", fiber.StatusOK},
		{http.MethodGet, "/api/v1/lesson-plan/1", fiber.StatusNotFound},
		{http.MethodGet, "/api/v1/teacher-assistant/1", fiber.StatusNotFound},
	}

	for _, route := range routes {
		resp, err := app.Test(httptest.NewRequest(route.method, route.path, nil), -1)
		require.NoError(t, err)
		require.Equal(t, route.status, resp.StatusCode, route.path)
		require.NotEmpty(t, resp.Header.Get(middleware.CorrelationHeader), route.path)
	}
}

func TestAPIGroupSetsApplicationHeader(t *testing.T) {
	app := newApp(nil)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/lesson-plan/", nil), -1)
	require.NoError(t, err)
	require.Equal(t, "EAD Teachers Tool Backend", resp.Header.Get("X-Application"))
}

func TestRateLimiterAppliesToAPIOnly(t *testing.T) {
	app := newApp(middleware.RateLimit("api", middleware.RateLimitConfig{Max: 1, Window: time.Minute}))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/term-plan/", nil), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/term-plan/", nil), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/health", nil), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
}
