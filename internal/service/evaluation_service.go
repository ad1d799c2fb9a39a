package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/ead-tools/teachers-tool-api/internal/dto"
	"github.com/ead-tools/teachers-tool-api/internal/evaluation"
	"github.com/ead-tools/teachers-tool-api/internal/prompt"
	"github.com/ead-tools/teachers-tool-api/pkg/ai"
)

// EvaluationServiceName identifies the evaluation feature in health probes.
const EvaluationServiceName = "assessment_evaluation"

// EvaluationService grades completed assessments.
type EvaluationService interface {
	Evaluate(ctx context.Context, payload dto.EvaluationRequest) (dto.EvaluationResult, error)
	Health(ctx context.Context) dto.EvaluationHealthResponse
}

type evaluationService struct {
	runner     generationRunner
	reconciler *evaluation.Reconciler
	validator  *validator.Validate
	logger     zerolog.Logger
}

// NewEvaluationService constructs an EvaluationService. A nil reconciler
// falls back to evaluation.NewReconciler with the service logger.
func NewEvaluationService(generator ai.Generator, reconciler *evaluation.Reconciler, validate *validator.Validate, logger zerolog.Logger, cfg GenerationConfig) EvaluationService {
	logger = logger.With().Str("component", "evaluation_service").Logger()
	if reconciler == nil {
		reconciler = evaluation.NewReconciler(evaluation.WithLogger(logger))
	}

	return &evaluationService{
		runner:     newGenerationRunner(generator, cfg, logger),
		reconciler: reconciler,
		validator:  validate,
		logger:     logger,
	}
}

func (s *evaluationService) Evaluate(ctx context.Context, payload dto.EvaluationRequest) (dto.EvaluationResult, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.EvaluationResult{}, err
	}

	raw, err := s.runner.run(ctx, "evaluation.evaluate", prompt.Evaluation(payload))
	if err != nil {
		return dto.EvaluationResult{}, err
	}

	result, err := s.reconciler.Reconcile(raw, payload)
	if err != nil {
		return dto.EvaluationResult{}, err
	}

	s.logger.Info().
		Str("evaluation_id", result.ID).
		Int("questions", len(result.QuestionEvaluations)).
		Float64("percentage", result.Percentage).
		Msg("assessment evaluated")

	return result, nil
}

func (s *evaluationService) Health(context.Context) dto.EvaluationHealthResponse {
	return dto.EvaluationHealthResponse{Status: "healthy", Service: EvaluationServiceName}
}
