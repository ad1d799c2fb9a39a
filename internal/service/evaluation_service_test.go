package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"

	"github.com/ead-tools/teachers-tool-api/internal/dto"
	"github.com/ead-tools/teachers-tool-api/internal/evaluation"
	"github.com/ead-tools/teachers-tool-api/internal/prompt"
	"github.com/ead-tools/teachers-tool-api/pkg/ai"
)

func newTestEvaluationService(gen ai.Generator) EvaluationService {
	reconciler := evaluation.NewReconciler(
		evaluation.WithIDGenerator(func() string { return "eval-1" }),
	)
	return NewEvaluationService(gen, reconciler, testValidator(), testLogger(), testConfig())
}

func TestEvaluationServiceReconcilesModelReply(t *testing.T) {
	gen := &stubGenerator{reply: "```json\n" + `{"total_marks_obtained": 8, "total_marks": 10, "percentage": 80, "grade": "B",
		"question_evaluations": [{"question_number": 1, "marks_obtained": 8, "max_marks": 10, "is_correct": true}]}` + "\n```"}
	svc := newTestEvaluationService(gen)

	total := 10
	result, err := svc.Evaluate(context.Background(), dto.EvaluationRequest{
		AssessmentData: "Q1: Define gravity. A: A force of attraction.",
		Subject:        "Physics",
		TotalMarks:     &total,
	})
	require.NoError(t, err)

	require.Equal(t, "eval-1", result.ID)
	require.Equal(t, 8.0, result.TotalMarksObtained)
	require.Equal(t, 10, result.TotalMarks)
	require.Equal(t, "B", result.Grade)
	require.Len(t, result.QuestionEvaluations, 1)
	require.Equal(t, dto.StatusCompleted, result.Status)

	require.Equal(t, prompt.EvaluationPersona, gen.lastInput.System)
	require.Contains(t, gen.lastInput.Prompt, "Subject: Physics")
	require.Contains(t, gen.lastInput.Prompt, "Total Marks: 10")
}

func TestEvaluationServiceFallsBackOnProse(t *testing.T) {
	svc := newTestEvaluationService(&stubGenerator{reply: "The student did reasonably well overall."})

	total := 50
	result, err := svc.Evaluate(context.Background(), dto.EvaluationRequest{
		AssessmentData: strings.Repeat("a", 600),
		TotalMarks:     &total,
	})
	require.NoError(t, err)
	require.Equal(t, "B", result.Grade)
	require.Equal(t, 40.0, result.TotalMarksObtained)
	require.Equal(t, 80.0, result.Percentage)
	require.Contains(t, result.OverallFeedback, evaluation.FallbackMarker)
}

func TestEvaluationServiceSurfacesGenerationFailure(t *testing.T) {
	cause := &ai.ConfigurationError{Setting: "GOOGLE_API_KEY", Reason: "is required"}
	svc := newTestEvaluationService(ai.UnavailableGenerator{Cause: cause})

	_, err := svc.Evaluate(context.Background(), dto.EvaluationRequest{AssessmentData: "Q1 A1"})
	require.ErrorIs(t, err, cause)
	require.True(t, ai.IsConfigurationError(err))

	upstream := &ai.GenerationError{Provider: "openai", Err: errors.New("timeout")}
	svc = newTestEvaluationService(&stubGenerator{err: upstream})
	_, err = svc.Evaluate(context.Background(), dto.EvaluationRequest{AssessmentData: "Q1 A1"})
	require.True(t, ai.IsGenerationError(err))
}

func TestEvaluationServiceValidatesRequest(t *testing.T) {
	gen := &stubGenerator{reply: "{}"}
	svc := newTestEvaluationService(gen)

	_, err := svc.Evaluate(context.Background(), dto.EvaluationRequest{AssessmentData: "   "})
	var validationErrors validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrors)

	zero := 0
	_, err = svc.Evaluate(context.Background(), dto.EvaluationRequest{AssessmentData: "Q1", TotalMarks: &zero})
	require.ErrorAs(t, err, &validationErrors)
	require.Zero(t, gen.calls)
}

func TestEvaluationServiceHealth(t *testing.T) {
	svc := NewEvaluationService(&stubGenerator{}, nil, testValidator(), testLogger(), testConfig())

	health := svc.Health(context.Background())
	require.Equal(t, "healthy", health.Status)
	require.Equal(t, "assessment_evaluation", health.Service)
}
