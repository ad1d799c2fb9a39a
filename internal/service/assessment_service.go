package service

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/ead-tools/teachers-tool-api/internal/dto"
	"github.com/ead-tools/teachers-tool-api/internal/prompt"
	"github.com/ead-tools/teachers-tool-api/pkg/ai"
)

// AssessmentService generates assessments from source text.
type AssessmentService interface {
	Generate(ctx context.Context, payload dto.AssessmentRequest) (dto.AssessmentResponse, error)
	List(ctx context.Context) (dto.AssessmentListResponse, error)
	Get(ctx context.Context, id string) (dto.AssessmentResponse, error)
}

// ErrAssessmentNotFound is returned for every lookup.
var ErrAssessmentNotFound = errors.New("assessment not found")

type assessmentService struct {
	runner    generationRunner
	validator *validator.Validate
}

// NewAssessmentService constructs an AssessmentService.
func NewAssessmentService(generator ai.Generator, validate *validator.Validate, logger zerolog.Logger, cfg GenerationConfig) AssessmentService {
	logger = logger.With().Str("component", "assessment_service").Logger()
	return &assessmentService{
		runner:    newGenerationRunner(generator, cfg, logger),
		validator: validate,
	}
}

func (s *assessmentService) Generate(ctx context.Context, payload dto.AssessmentRequest) (dto.AssessmentResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.AssessmentResponse{}, err
	}

	assessment, err := s.runner.run(ctx, "assessment.generate", prompt.Assessment(payload))
	if err != nil {
		return dto.AssessmentResponse{}, err
	}

	return dto.AssessmentResponse{
		ID:                  s.runner.newID(),
		QuestionTypes:       payload.QuestionTypes,
		TextContent:         payload.TextContent,
		GeneratedAssessment: assessment,
		CreatedAt:           s.runner.now(),
		Status:              dto.StatusCompleted,
	}, nil
}

func (s *assessmentService) List(context.Context) (dto.AssessmentListResponse, error) {
	return dto.AssessmentListResponse{Assessments: []dto.AssessmentResponse{}, TotalCount: 0}, nil
}

func (s *assessmentService) Get(context.Context, string) (dto.AssessmentResponse, error) {
	return dto.AssessmentResponse{}, ErrAssessmentNotFound
}
