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

// HomeworkService generates homework assignments.
type HomeworkService interface {
	Generate(ctx context.Context, payload dto.HomeworkRequest) (dto.HomeworkResponse, error)
	List(ctx context.Context) (dto.HomeworkListResponse, error)
	Get(ctx context.Context, id string) (dto.HomeworkResponse, error)
}

// ErrHomeworkNotFound is returned for every lookup.
var ErrHomeworkNotFound = errors.New("homework assignment not found")

type homeworkService struct {
	runner    generationRunner
	validator *validator.Validate
}

// NewHomeworkService constructs a HomeworkService.
func NewHomeworkService(generator ai.Generator, validate *validator.Validate, logger zerolog.Logger, cfg GenerationConfig) HomeworkService {
	logger = logger.With().Str("component", "homework_service").Logger()
	return &homeworkService{
		runner:    newGenerationRunner(generator, cfg, logger),
		validator: validate,
	}
}

func (s *homeworkService) Generate(ctx context.Context, payload dto.HomeworkRequest) (dto.HomeworkResponse, error) {
	payload.ApplyDefaults()
	if err := s.validator.Struct(payload); err != nil {
		return dto.HomeworkResponse{}, err
	}

	homework, err := s.runner.run(ctx, "homework.generate", prompt.Homework(payload))
	if err != nil {
		return dto.HomeworkResponse{}, err
	}

	return dto.HomeworkResponse{
		ID:                     s.runner.newID(),
		Curriculum:             payload.Curriculum,
		Subject:                payload.Subject,
		Grade:                  payload.Grade,
		Topic:                  payload.Topic,
		DifficultyLevel:        payload.DifficultyLevel,
		AdditionalRequirements: payload.AdditionalRequirements,
		GeneratedHomework:      homework,
		CreatedAt:              s.runner.now(),
		Status:                 dto.StatusCompleted,
	}, nil
}

func (s *homeworkService) List(context.Context) (dto.HomeworkListResponse, error) {
	return dto.HomeworkListResponse{HomeworkAssignments: []dto.HomeworkResponse{}, TotalCount: 0}, nil
}

func (s *homeworkService) Get(context.Context, string) (dto.HomeworkResponse, error) {
	return dto.HomeworkResponse{}, ErrHomeworkNotFound
}
