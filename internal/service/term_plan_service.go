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

// TermPlanService generates term plans for a curriculum, subject and grade.
type TermPlanService interface {
	Generate(ctx context.Context, payload dto.TermPlanRequest) (dto.TermPlanResponse, error)
	List(ctx context.Context) (dto.TermPlanListResponse, error)
	Get(ctx context.Context, id string) (dto.TermPlanResponse, error)
}

// ErrTermPlanNotFound is returned for every lookup.
var ErrTermPlanNotFound = errors.New("term plan not found")

type termPlanService struct {
	runner    generationRunner
	validator *validator.Validate
}

// NewTermPlanService constructs a TermPlanService.
func NewTermPlanService(generator ai.Generator, validate *validator.Validate, logger zerolog.Logger, cfg GenerationConfig) TermPlanService {
	logger = logger.With().Str("component", "term_plan_service").Logger()
	return &termPlanService{
		runner:    newGenerationRunner(generator, cfg, logger),
		validator: validate,
	}
}

func (s *termPlanService) Generate(ctx context.Context, payload dto.TermPlanRequest) (dto.TermPlanResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.TermPlanResponse{}, err
	}

	plan, err := s.runner.run(ctx, "term_plan.generate", prompt.TermPlan(payload))
	if err != nil {
		return dto.TermPlanResponse{}, err
	}

	return dto.TermPlanResponse{
		ID:              s.runner.newID(),
		Curriculum:      payload.Curriculum,
		Subject:         payload.Subject,
		Grade:           payload.Grade,
		AdditionalNotes: payload.AdditionalNotes,
		GeneratedPlan:   plan,
		CreatedAt:       s.runner.now(),
		Status:          dto.StatusCompleted,
	}, nil
}

func (s *termPlanService) List(context.Context) (dto.TermPlanListResponse, error) {
	return dto.TermPlanListResponse{Plans: []dto.TermPlanResponse{}, TotalCount: 0}, nil
}

func (s *termPlanService) Get(context.Context, string) (dto.TermPlanResponse, error) {
	return dto.TermPlanResponse{}, ErrTermPlanNotFound
}
