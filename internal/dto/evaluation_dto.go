package dto

import "time"

// StatusCompleted marks a generated or evaluated resource as finished.
const StatusCompleted = "completed"

// EvaluationRequest represents the payload for grading a complete assessment.
type EvaluationRequest struct {
	AssessmentData string `json:"assessment_data" validate:"required,notblank"`
	Subject        string `json:"subject,omitempty" validate:"omitempty,max=200"`
	GradeLevel     string `json:"grade_level,omitempty" validate:"omitempty,max=100"`
	TotalMarks     *int   `json:"total_marks,omitempty" validate:"omitempty,min=1,max=1000"`
}

// QuestionEvaluation is the grading outcome for a single question.
type QuestionEvaluation struct {
	QuestionNumber int     `json:"question_number"`
	Question       string  `json:"question"`
	StudentAnswer  string  `json:"student_answer"`
	MarksObtained  float64 `json:"marks_obtained"`
	MaxMarks       float64 `json:"max_marks"`
	Feedback       string  `json:"feedback"`
	IsCorrect      bool    `json:"is_correct"`
}

// EvaluationResult is the reconciled evaluation returned to API consumers.
type EvaluationResult struct {
	ID                  string               `json:"id"`
	AssessmentData      string               `json:"assessment_data"`
	TotalMarksObtained  float64              `json:"total_marks_obtained"`
	TotalMarks          int                  `json:"total_marks"`
	Percentage          float64              `json:"percentage"`
	Grade               string               `json:"grade"`
	OverallFeedback     string               `json:"overall_feedback"`
	QuestionEvaluations []QuestionEvaluation `json:"question_evaluations"`
	Strengths           []string             `json:"strengths"`
	AreasForImprovement []string             `json:"areas_for_improvement"`
	Suggestions         []string             `json:"suggestions"`
	EvaluationCriteria  string               `json:"evaluation_criteria"`
	CreatedAt           time.Time            `json:"created_at"`
	Status              string               `json:"status"`
}

// EvaluationHealthResponse is returned by the evaluation health probe.
type EvaluationHealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}
