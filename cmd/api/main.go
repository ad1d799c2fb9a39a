package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/ead-tools/teachers-tool-api/internal/config"
	"github.com/ead-tools/teachers-tool-api/internal/database"
	"github.com/ead-tools/teachers-tool-api/internal/dto"
	"github.com/ead-tools/teachers-tool-api/internal/evaluation"
	"github.com/ead-tools/teachers-tool-api/internal/handler"
	"github.com/ead-tools/teachers-tool-api/internal/middleware"
	"github.com/ead-tools/teachers-tool-api/internal/router"
	"github.com/ead-tools/teachers-tool-api/internal/service"
	"github.com/ead-tools/teachers-tool-api/pkg/ai"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		bootLogger := zerolog.New(os.Stderr).With().Timestamp().Logger()
		bootLogger.Fatal().Err(err).Msg("failed to load configuration")
	}

	logger := newLogger(cfg.LogLevel)

	if err := run(cfg, logger); err != nil {
		logger.Fatal().Err(err).Msg("server exited")
	}
}

// run wires the application and blocks until shutdown. Every exit path
// returns through here so deferred cleanup always runs.
func run(cfg config.Config, logger zerolog.Logger) error {
	generator, err := buildGenerator(cfg, logger)
	if err != nil {
		return err
	}
	if closer, ok := generator.(io.Closer); ok {
		defer closeQuietly(closer, "generator", logger)
	}

	limiterStorage := buildLimiterStorage(cfg, logger)
	if limiterStorage != nil {
		defer closeQuietly(limiterStorage, "rate limit store", logger)
	}

	validate := dto.NewValidator()
	generation := service.GenerationConfig{Timeout: cfg.AITimeout}
	reconciler := evaluation.NewReconciler(evaluation.WithLogger(logger))

	lessonPlanService := service.NewLessonPlanService(generator, validate, logger, generation)
	termPlanService := service.NewTermPlanService(generator, validate, logger, generation)
	assessmentService := service.NewAssessmentService(generator, validate, logger, generation)
	evaluationService := service.NewEvaluationService(generator, reconciler, validate, logger, generation)
	homeworkService := service.NewHomeworkService(generator, validate, logger, generation)
	studentAssistantService := service.NewStudentAssistantService(generator, validate, logger, generation)
	teacherAssistantService := service.NewTeacherAssistantService(generator, validate, logger, generation)

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ServerHeader: cfg.AppName,
		ErrorHandler: handler.ErrorHandler(logger),
	})

	middleware.Register(app, middleware.Config{
		Logger:         &logger,
		AllowedOrigins: cfg.AllowedOrigins,
		AccessLog:      true,
	})

	var rateLimitStorage fiber.Storage
	if limiterStorage != nil {
		rateLimitStorage = limiterStorage
	}

	router.Register(app, cfg, router.Dependencies{
		LessonPlanHandler:       handler.NewLessonPlanHandler(lessonPlanService, logger),
		TermPlanHandler:         handler.NewTermPlanHandler(termPlanService, logger),
		AssessmentHandler:       handler.NewAssessmentHandler(assessmentService, logger),
		EvaluationHandler:       handler.NewEvaluationHandler(evaluationService, logger),
		HomeworkHandler:         handler.NewHomeworkHandler(homeworkService, logger),
		StudentAssistantHandler: handler.NewStudentAssistantHandler(studentAssistantService, logger),
		TeacherAssistantHandler: handler.NewTeacherAssistantHandler(teacherAssistantService, logger),
		RateLimiter: middleware.RateLimit("api", middleware.RateLimitConfig{
			Max:     cfg.RateLimitMax,
			Window:  cfg.RateLimitWindow,
			Storage: rateLimitStorage,
		}),
	})

	listenErr := make(chan error, 1)
	go func() {
		logger.Info().Str("address", cfg.HTTPAddress()).Str("environment", cfg.AppEnv).Msg("starting server")
		listenErr <- app.Listen(cfg.HTTPAddress())
	}()

	return waitForShutdown(app, listenErr, logger)
}

func closeQuietly(closer io.Closer, name string, logger zerolog.Logger) {
	if err := closer.Close(); err != nil {
		logger.Warn().Err(err).Str("resource", name).Msg("close failed")
	}
}

func newLogger(level string) zerolog.Logger {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil || parsed == zerolog.NoLevel {
		parsed = zerolog.InfoLevel
	}
	return zerolog.New(os.Stdout).Level(parsed).With().Timestamp().Str("service", "teachers-tool-api").Logger()
}

// buildGenerator constructs the generator once. A missing credential only
// stops startup when AI_REQUIRE_KEY is set; otherwise every generation
// request reports the configuration error.
func buildGenerator(cfg config.Config, logger zerolog.Logger) (ai.Generator, error) {
	generator, err := ai.NewGenerator(context.Background(), ai.Config{
		Provider:      cfg.AIProvider,
		Model:         cfg.AIModel,
		MaxTokens:     cfg.AIMaxTokens,
		Temperature:   cfg.AITemperature,
		GoogleAPIKey:  cfg.GoogleAPIKey,
		OpenAIAPIKey:  cfg.OpenAIAPIKey,
		OpenAIBaseURL: cfg.OpenAIBaseURL,
		Logger:        logger,
	})
	if err != nil {
		if cfg.AIRequireKey || !ai.IsMissingCredential(err) {
			return nil, fmt.Errorf("configure generator: %w", err)
		}
		logger.Warn().Err(err).Msg("generator unavailable, generation requests will fail until configured")
		return ai.UnavailableGenerator{Cause: err}, nil
	}

	logger.Info().Str("provider", cfg.AIProvider).Str("model", cfg.AIModel).Msg("generator configured")
	return generator, nil
}

func buildLimiterStorage(cfg config.Config, logger zerolog.Logger) *middleware.RedisStorage {
	if cfg.RedisURL == "" {
		return nil
	}

	client, err := database.ConnectRedis(context.Background(), cfg.RedisURL, database.DefaultPingTimeout)
	if err != nil {
		logger.Warn().Err(err).Msg("redis unavailable, rate limiting per instance")
		return nil
	}
	return middleware.NewRedisStorage(client, "")
}

// waitForShutdown blocks until a termination signal or a listener failure.
func waitForShutdown(app *fiber.App, listenErr <-chan error, logger zerolog.Logger) error {
	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-listenErr:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-shutdownCtx.Done():
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown failed")
	}

	logger.Info().Msg("server stopped")
	return nil
}
