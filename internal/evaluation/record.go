package evaluation

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/ead-tools/teachers-tool-api/internal/dto"
)

// Record is the fully defaulted evaluation extracted from a model reply or
// produced by the fallback evaluator. No field is ever left undefined.
type Record struct {
	TotalMarksObtained  float64
	Percentage          float64
	Grade               string
	OverallFeedback     string
	Questions           []dto.QuestionEvaluation
	Strengths           []string
	AreasForImprovement []string
	Suggestions         []string
	EvaluationCriteria  string
	// TotalMarks is only meaningful when HasTotalMarks is set.
	TotalMarks    float64
	HasTotalMarks bool
}

// Per-question defaults applied when a key is absent.
const (
	defaultQuestionNumber = 1
	defaultMaxMarks       = 1.0
)

// maxIntegral bounds model numbers that are converted to int. Larger values
// are treated as absent.
const maxIntegral = math.MaxInt32

type rawQuestion struct {
	QuestionNumber *flexNumber `json:"question_number"`
	Question       *string     `json:"question"`
	StudentAnswer  *string     `json:"student_answer"`
	MarksObtained  *flexNumber `json:"marks_obtained"`
	MaxMarks       *flexNumber `json:"max_marks"`
	Feedback       *string     `json:"feedback"`
	IsCorrect      *flexBool   `json:"is_correct"`
}

type rawRecord struct {
	TotalMarksObtained  *flexNumber     `json:"total_marks_obtained"`
	Percentage          *flexNumber     `json:"percentage"`
	Grade               *string         `json:"grade"`
	OverallFeedback     *string         `json:"overall_feedback"`
	QuestionEvaluations []rawQuestion   `json:"question_evaluations"`
	Strengths           []string        `json:"strengths"`
	AreasForImprovement []string        `json:"areas_for_improvement"`
	Suggestions         []string        `json:"suggestions"`
	EvaluationCriteria  *string         `json:"evaluation_criteria"`
	TotalMarks          json.RawMessage `json:"total_marks"`
}

// parseRecord decodes a candidate span and applies every default.
func parseRecord(candidate string) (Record, error) {
	var raw rawRecord
	if err := json.Unmarshal([]byte(candidate), &raw); err != nil {
		return Record{}, fmt.Errorf("decode evaluation object: %w", err)
	}

	record := Record{
		TotalMarksObtained:  raw.TotalMarksObtained.value(0),
		Percentage:          raw.Percentage.value(0),
		Grade:               stringOr(raw.Grade),
		OverallFeedback:     stringOr(raw.OverallFeedback),
		Questions:           make([]dto.QuestionEvaluation, 0, len(raw.QuestionEvaluations)),
		Strengths:           listOr(raw.Strengths),
		AreasForImprovement: listOr(raw.AreasForImprovement),
		Suggestions:         listOr(raw.Suggestions),
		EvaluationCriteria:  stringOr(raw.EvaluationCriteria),
	}

	for _, q := range raw.QuestionEvaluations {
		record.Questions = append(record.Questions, dto.QuestionEvaluation{
			QuestionNumber: questionNumber(q.QuestionNumber),
			Question:       stringOr(q.Question),
			StudentAnswer:  stringOr(q.StudentAnswer),
			MarksObtained:  q.MarksObtained.value(0),
			MaxMarks:       q.MaxMarks.value(defaultMaxMarks),
			Feedback:       stringOr(q.Feedback),
			IsCorrect:      q.IsCorrect.value(),
		})
	}

	if total, ok := jsonNumber(raw.TotalMarks); ok && integral(total) {
		record.TotalMarks = total
		record.HasTotalMarks = true
	}

	return record, nil
}

// jsonNumber reports whether raw is a JSON number literal. Quoted numbers and
// null do not count as a supplied total.
func jsonNumber(raw json.RawMessage) (float64, bool) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return 0, false
	}
	if c := trimmed[0]; c != '-' && (c < '0' || c > '9') {
		return 0, false
	}
	var value float64
	if err := json.Unmarshal(trimmed, &value); err != nil {
		return 0, false
	}
	return value, true
}

// integral reports whether value survives conversion to int unchanged in sign
// and magnitude.
func integral(value float64) bool {
	return !math.IsNaN(value) && !math.IsInf(value, 0) && math.Abs(value) <= maxIntegral
}

func questionNumber(n *flexNumber) int {
	value := n.value(defaultQuestionNumber)
	if !integral(value) {
		return defaultQuestionNumber
	}
	return int(value)
}

// flexNumber accepts JSON numbers and numeric strings.
type flexNumber float64

func (n *flexNumber) UnmarshalJSON(data []byte) error {
	text := strings.TrimSpace(string(data))
	if unquoted, err := strconv.Unquote(text); err == nil {
		text = strings.TrimSpace(unquoted)
	}
	value, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return fmt.Errorf("expected number, got %s", string(data))
	}
	*n = flexNumber(value)
	return nil
}

func (n *flexNumber) value(fallback float64) float64 {
	if n == nil {
		return fallback
	}
	return float64(*n)
}

// flexBool accepts JSON booleans and the strings "true"/"false".
type flexBool bool

func (b *flexBool) UnmarshalJSON(data []byte) error {
	text := strings.TrimSpace(string(data))
	if unquoted, err := strconv.Unquote(text); err == nil {
		text = strings.TrimSpace(unquoted)
	}
	value, err := strconv.ParseBool(text)
	if err != nil {
		return fmt.Errorf("expected boolean, got %s", string(data))
	}
	*b = flexBool(value)
	return nil
}

func (b *flexBool) value() bool {
	if b == nil {
		return false
	}
	return bool(*b)
}

func stringOr(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}

func listOr(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
