package dto

import "time"

// AssessmentRequest represents the payload for generating an assessment.
type AssessmentRequest struct {
	QuestionTypes []string `json:"question_types" validate:"required,min=1,dive,required,notblank"`
	TextContent   string   `json:"text_content" validate:"required,notblank"`
}

// AssessmentResponse describes a generated assessment.
type AssessmentResponse struct {
	ID                  string    `json:"id"`
	QuestionTypes       []string  `json:"question_types"`
	TextContent         string    `json:"text_content"`
	GeneratedAssessment string    `json:"generated_assessment"`
	CreatedAt           time.Time `json:"created_at"`
	Status              string    `json:"status"`
}

// AssessmentListResponse lists generated assessments.
type AssessmentListResponse struct {
	Assessments []AssessmentResponse `json:"assessments"`
	TotalCount  int                  `json:"total_count"`
}
