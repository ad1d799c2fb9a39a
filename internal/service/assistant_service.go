package service

import (
	"context"
	"errors"
	"html"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog"

	"github.com/ead-tools/teachers-tool-api/internal/dto"
	"github.com/ead-tools/teachers-tool-api/internal/prompt"
	"github.com/ead-tools/teachers-tool-api/pkg/ai"
)

// AssistantService answers questions for one audience.
type AssistantService interface {
	Ask(ctx context.Context, payload dto.AssistantRequest) (dto.AssistantResponse, error)
	List(ctx context.Context) (dto.AssistantListResponse, error)
	Get(ctx context.Context, id string) (dto.AssistantResponse, error)
}

var (
	// ErrStudentQueryNotFound is returned by the student assistant for every lookup.
	ErrStudentQueryNotFound = errors.New("student query not found")
	// ErrTeacherQueryNotFound is returned by the teacher assistant for every lookup.
	ErrTeacherQueryNotFound = errors.New("teacher query not found")
	// ErrQuestionEmpty indicates nothing was left of the question after stripping markup.
	ErrQuestionEmpty = errors.New("question empty after sanitization")
)

type assistantService struct {
	runner    generationRunner
	validator *validator.Validate
	sanitizer *bluemonday.Policy
	operation string
	build     func(dto.AssistantRequest) ai.GenerationInput
	notFound  error
}

// NewStudentAssistantService constructs the assistant that explains concepts to students.
func NewStudentAssistantService(generator ai.Generator, validate *validator.Validate, logger zerolog.Logger, cfg GenerationConfig) AssistantService {
	return newAssistantService(generator, validate, logger, cfg, "student_assistant", prompt.StudentAssistant, ErrStudentQueryNotFound)
}

// NewTeacherAssistantService constructs the assistant that supports teachers.
func NewTeacherAssistantService(generator ai.Generator, validate *validator.Validate, logger zerolog.Logger, cfg GenerationConfig) AssistantService {
	return newAssistantService(generator, validate, logger, cfg, "teacher_assistant", prompt.TeacherAssistant, ErrTeacherQueryNotFound)
}

func newAssistantService(generator ai.Generator, validate *validator.Validate, logger zerolog.Logger, cfg GenerationConfig, name string, build func(dto.AssistantRequest) ai.GenerationInput, notFound error) *assistantService {
	logger = logger.With().Str("component", name+"_service").Logger()
	return &assistantService{
		runner:    newGenerationRunner(generator, cfg, logger),
		validator: validate,
		sanitizer: bluemonday.StrictPolicy(),
		operation: name + ".ask",
		build:     build,
		notFound:  notFound,
	}
}

func (s *assistantService) Ask(ctx context.Context, payload dto.AssistantRequest) (dto.AssistantResponse, error) {
	payload.ApplyDefaults()
	if err := s.validator.Struct(payload); err != nil {
		return dto.AssistantResponse{}, err
	}

	payload.Question = s.sanitize(payload.Question)
	if payload.Question == "" {
		return dto.AssistantResponse{}, ErrQuestionEmpty
	}

	answer, err := s.runner.run(ctx, s.operation, s.build(payload))
	if err != nil {
		return dto.AssistantResponse{}, err
	}

	return dto.AssistantResponse{
		ID:          s.runner.newID(),
		Curriculum:  payload.Curriculum,
		Subject:     payload.Subject,
		Grade:       payload.Grade,
		Question:    payload.Question,
		InputMethod: payload.InputMethod,
		Answer:      answer,
		CreatedAt:   s.runner.now(),
		Status:      dto.StatusCompleted,
	}, nil
}

func (s *assistantService) List(context.Context) (dto.AssistantListResponse, error) {
	return dto.AssistantListResponse{Queries: []dto.AssistantResponse{}, TotalCount: 0}, nil
}

func (s *assistantService) Get(context.Context, string) (dto.AssistantResponse, error) {
	return dto.AssistantResponse{}, s.notFound
}

// sanitize strips markup; the policy escapes entities, which are decoded
// again so the model sees plain text.
func (s *assistantService) sanitize(question string) string {
	return strings.TrimSpace(html.UnescapeString(s.sanitizer.Sanitize(question)))
}
