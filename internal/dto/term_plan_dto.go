package dto

import "time"

// TermPlanRequest represents the payload for generating a term plan.
type TermPlanRequest struct {
	Curriculum      string  `json:"curriculum" validate:"required,notblank"`
	Subject         string  `json:"subject" validate:"required,notblank"`
	Grade           string  `json:"grade" validate:"required,notblank"`
	AdditionalNotes *string `json:"additional_notes" validate:"omitempty,max=1000"`
}

// TermPlanResponse describes a generated term plan.
type TermPlanResponse struct {
	ID              string    `json:"id"`
	Curriculum      string    `json:"curriculum"`
	Subject         string    `json:"subject"`
	Grade           string    `json:"grade"`
	AdditionalNotes *string   `json:"additional_notes"`
	GeneratedPlan   string    `json:"generated_plan"`
	CreatedAt       time.Time `json:"created_at"`
	Status          string    `json:"status"`
}

// TermPlanListResponse lists generated term plans.
type TermPlanListResponse struct {
	Plans      []TermPlanResponse `json:"plans"`
	TotalCount int                `json:"total_count"`
}
