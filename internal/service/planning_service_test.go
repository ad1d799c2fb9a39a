package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"

	"github.com/ead-tools/teachers-tool-api/internal/dto"
	"github.com/ead-tools/teachers-tool-api/internal/prompt"
	"github.com/ead-tools/teachers-tool-api/pkg/ai"
)

func TestLessonPlanServiceGenerateAppliesDefaults(t *testing.T) {
	gen := &stubGenerator{reply: "Week 1: fractions"}
	svc := NewLessonPlanService(gen, testValidator(), testLogger(), testConfig())

	resp, err := svc.Generate(context.Background(), dto.LessonPlanRequest{SyllabusContent: "Fractions and decimals for grade 5"})
	require.NoError(t, err)

	require.Equal(t, "id-1", resp.ID)
	require.Equal(t, dto.SyllabusSourceLabel, resp.SyllabusFilename)
	require.Equal(t, 1, resp.NumberOfClasses)
	require.Equal(t, "45 minutes", resp.ClassDuration)
	require.Equal(t, "Interactive", resp.TeachingStyle)
	require.Equal(t, "Moderate", resp.HomeworkLevel)
	require.Equal(t, "Week 1: fractions", resp.GeneratedPlan)
	require.Equal(t, testNow, resp.CreatedAt)
	require.Equal(t, dto.StatusCompleted, resp.Status)

	require.Equal(t, prompt.LessonPlanPersona, gen.lastInput.System)
	require.Contains(t, gen.lastInput.Prompt, "Fractions and decimals for grade 5")
	require.True(t, gen.hadDeadline)
}

func TestLessonPlanServiceRejectsShortSyllabus(t *testing.T) {
	gen := &stubGenerator{reply: "unused"}
	svc := NewLessonPlanService(gen, testValidator(), testLogger(), testConfig())

	_, err := svc.Generate(context.Background(), dto.LessonPlanRequest{SyllabusContent: "short"})
	var validationErrors validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrors)
	require.Zero(t, gen.calls)
}

func TestLessonPlanServiceRejectsTooManyClasses(t *testing.T) {
	svc := NewLessonPlanService(&stubGenerator{}, testValidator(), testLogger(), testConfig())

	_, err := svc.Generate(context.Background(), dto.LessonPlanRequest{SyllabusContent: "A long enough syllabus", NumberOfClasses: 21})
	require.Error(t, err)
}

func TestLessonPlanServiceListAndGet(t *testing.T) {
	svc := NewLessonPlanService(&stubGenerator{}, testValidator(), testLogger(), testConfig())

	list, err := svc.List(context.Background())
	require.NoError(t, err)
	require.NotNil(t, list.Plans)
	require.Empty(t, list.Plans)
	require.Zero(t, list.TotalCount)

	_, err = svc.Get(context.Background(), "anything")
	require.ErrorIs(t, err, ErrLessonPlanNotFound)
}

func TestTermPlanServiceGenerate(t *testing.T) {
	gen := &stubGenerator{reply: "Term overview"}
	svc := NewTermPlanService(gen, testValidator(), testLogger(), testConfig())

	resp, err := svc.Generate(context.Background(), dto.TermPlanRequest{Curriculum: "CBSE", Subject: "Science", Grade: "Grade 7"})
	require.NoError(t, err)
	require.Equal(t, "Term overview", resp.GeneratedPlan)
	require.Nil(t, resp.AdditionalNotes)
	require.Contains(t, gen.lastInput.Prompt, "Additional Notes: None provided")

	_, err = svc.Get(context.Background(), "x")
	require.ErrorIs(t, err, ErrTermPlanNotFound)
}

func TestAssessmentServiceGenerate(t *testing.T) {
	gen := &stubGenerator{reply: "1. What is photosynthesis?"}
	svc := NewAssessmentService(gen, testValidator(), testLogger(), testConfig())

	resp, err := svc.Generate(context.Background(), dto.AssessmentRequest{
		QuestionTypes: []string{"mcq", "short answer"},
		TextContent:   "Plants convert light into chemical energy.",
	})
	require.NoError(t, err)
	require.Equal(t, []string{"mcq", "short answer"}, resp.QuestionTypes)
	require.Equal(t, "1. What is photosynthesis?", resp.GeneratedAssessment)

	_, err = svc.Generate(context.Background(), dto.AssessmentRequest{QuestionTypes: []string{}, TextContent: "text"})
	require.Error(t, err)

	list, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Empty(t, list.Assessments)

	_, err = svc.Get(context.Background(), "x")
	require.ErrorIs(t, err, ErrAssessmentNotFound)
}

func TestHomeworkServiceGenerateDefaultsDifficulty(t *testing.T) {
	gen := &stubGenerator{reply: "Homework sheet"}
	svc := NewHomeworkService(gen, testValidator(), testLogger(), testConfig())

	resp, err := svc.Generate(context.Background(), dto.HomeworkRequest{
		Curriculum: "IB", Subject: "Maths", Grade: "Grade 9", Topic: "Quadratics",
	})
	require.NoError(t, err)
	require.Equal(t, "Medium", resp.DifficultyLevel)
	require.Equal(t, "Homework sheet", resp.GeneratedHomework)
	require.Contains(t, gen.lastInput.Prompt, "None specified")

	_, err = svc.Get(context.Background(), "x")
	require.ErrorIs(t, err, ErrHomeworkNotFound)
}

func TestGenerationFailureIsReturnedUnchanged(t *testing.T) {
	upstream := &ai.GenerationError{Provider: "gemini", Err: errors.New("quota exceeded")}
	svc := NewTermPlanService(&stubGenerator{err: upstream}, testValidator(), testLogger(), testConfig())

	_, err := svc.Generate(context.Background(), dto.TermPlanRequest{Curriculum: "CBSE", Subject: "Science", Grade: "7"})
	require.ErrorIs(t, err, upstream)
	require.Contains(t, err.Error(), "quota exceeded")
}

func TestGenerationRespectsTimeout(t *testing.T) {
	cfg := testConfig()
	cfg.Timeout = 10 * time.Millisecond
	svc := NewHomeworkService(&stubGenerator{block: true}, testValidator(), testLogger(), cfg)

	_, err := svc.Generate(context.Background(), dto.HomeworkRequest{Curriculum: "IB", Subject: "Maths", Grade: "9", Topic: "Sets"})
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestGenerationWithoutGenerator(t *testing.T) {
	svc := NewAssessmentService(nil, testValidator(), testLogger(), testConfig())

	_, err := svc.Generate(context.Background(), dto.AssessmentRequest{QuestionTypes: []string{"mcq"}, TextContent: "text"})
	require.ErrorIs(t, err, ErrGeneratorMissing)
}
