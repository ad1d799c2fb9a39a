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

// LessonPlanService generates lesson plans from syllabus content.
type LessonPlanService interface {
	Generate(ctx context.Context, payload dto.LessonPlanRequest) (dto.LessonPlanResponse, error)
	List(ctx context.Context) (dto.LessonPlanListResponse, error)
	Get(ctx context.Context, id string) (dto.LessonPlanResponse, error)
}

// ErrLessonPlanNotFound is returned for every lookup since plans are not stored.
var ErrLessonPlanNotFound = errors.New("lesson plan not found")

type lessonPlanService struct {
	runner    generationRunner
	validator *validator.Validate
}

// NewLessonPlanService constructs a LessonPlanService.
func NewLessonPlanService(generator ai.Generator, validate *validator.Validate, logger zerolog.Logger, cfg GenerationConfig) LessonPlanService {
	logger = logger.With().Str("component", "lesson_plan_service").Logger()
	return &lessonPlanService{
		runner:    newGenerationRunner(generator, cfg, logger),
		validator: validate,
	}
}

func (s *lessonPlanService) Generate(ctx context.Context, payload dto.LessonPlanRequest) (dto.LessonPlanResponse, error) {
	payload.ApplyDefaults()
	if err := s.validator.Struct(payload); err != nil {
		return dto.LessonPlanResponse{}, err
	}

	plan, err := s.runner.run(ctx, "lesson_plan.generate", prompt.LessonPlan(payload))
	if err != nil {
		return dto.LessonPlanResponse{}, err
	}

	return dto.LessonPlanResponse{
		ID:               s.runner.newID(),
		SyllabusFilename: dto.SyllabusSourceLabel,
		NumberOfClasses:  payload.NumberOfClasses,
		ClassDuration:    payload.ClassDuration,
		TeachingStyle:    payload.TeachingStyle,
		HomeworkLevel:    payload.HomeworkLevel,
		GeneratedPlan:    plan,
		CreatedAt:        s.runner.now(),
		Status:           dto.StatusCompleted,
	}, nil
}

func (s *lessonPlanService) List(context.Context) (dto.LessonPlanListResponse, error) {
	return dto.LessonPlanListResponse{Plans: []dto.LessonPlanResponse{}, TotalCount: 0}, nil
}

func (s *lessonPlanService) Get(context.Context, string) (dto.LessonPlanResponse, error) {
	return dto.LessonPlanResponse{}, ErrLessonPlanNotFound
}
