package evaluation

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/ead-tools/teachers-tool-api/internal/dto"
	"github.com/ead-tools/teachers-tool-api/pkg/ai"
)

// FallbackMarker appears in the overall feedback of every fallback evaluation.
const FallbackMarker = "This is a fallback evaluation due to parsing issues."

type lengthBucket struct {
	below    int
	fraction float64
	grade    string
}

// Buckets are checked in order; the last one catches everything else.
var lengthBuckets = []lengthBucket{
	{below: 50, fraction: 0.2, grade: "F"},
	{below: 200, fraction: 0.4, grade: "D"},
	{below: 500, fraction: 0.6, grade: "C"},
	{below: 1000, fraction: 0.8, grade: "B"},
	{below: math.MaxInt, fraction: 0.9, grade: "A"},
}

// FallbackEvaluator scores an assessment by input length alone. It keeps the
// response contract satisfiable when the model reply is unusable and makes no
// claim about answer quality.
type FallbackEvaluator struct{}

// Evaluate returns a structurally complete Record for the given text.
func (FallbackEvaluator) Evaluate(assessmentText string, totalMarks int) (Record, error) {
	if totalMarks <= 0 {
		return Record{}, &ai.ConfigurationError{
			Setting: "total_marks",
			Reason:  fmt.Sprintf("must be positive, got %d", totalMarks),
		}
	}

	length := utf8.RuneCountInString(assessmentText)
	bucket := lengthBuckets[len(lengthBuckets)-1]
	for _, candidate := range lengthBuckets {
		if length < candidate.below {
			bucket = candidate
			break
		}
	}

	total := float64(totalMarks)
	marks := round2(total * bucket.fraction)
	percentage := round2(marks / total * 100)

	return Record{
		TotalMarksObtained: marks,
		Percentage:         percentage,
		Grade:              bucket.grade,
		OverallFeedback: fmt.Sprintf(
			"Assessment evaluation completed. Data length: %d characters. Please note: %s",
			length, FallbackMarker,
		),
		Questions: []dto.QuestionEvaluation{
			{
				QuestionNumber: 1,
				Question:       "Assessment question",
				StudentAnswer:  "Student response",
				MarksObtained:  round2(marks / 2),
				MaxMarks:       total / 2,
				Feedback:       "Basic evaluation completed",
				IsCorrect:      marks > total*0.5,
			},
		},
		Strengths:           []string{"Provided responses", "Attempted to answer"},
		AreasForImprovement: []string{"Improve response quality", "Provide more detailed answers"},
		Suggestions:         []string{"Expand on your answers", "Provide specific examples", "Review the questions carefully"},
		EvaluationCriteria:  "Basic evaluation based on response length and content quality",
		TotalMarks:          total,
		HasTotalMarks:       true,
	}, nil
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}
