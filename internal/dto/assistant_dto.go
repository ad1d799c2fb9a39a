package dto

import "time"

// AssistantRequest represents a question addressed to the student or teacher assistant.
type AssistantRequest struct {
	Curriculum  string `json:"curriculum" validate:"required,notblank"`
	Subject     string `json:"subject" validate:"required,notblank"`
	Grade       string `json:"grade" validate:"required,notblank"`
	Question    string `json:"question" validate:"required,notblank,max=4000"`
	InputMethod string `json:"input_method" validate:"omitempty,oneof=text voice"`
}

// ApplyDefaults fills optional fields the caller left empty.
func (r *AssistantRequest) ApplyDefaults() {
	if r.InputMethod == "" {
		r.InputMethod = "text"
	}
}

// AssistantResponse carries the assistant's answer.
type AssistantResponse struct {
	ID          string    `json:"id"`
	Curriculum  string    `json:"curriculum"`
	Subject     string    `json:"subject"`
	Grade       string    `json:"grade"`
	Question    string    `json:"question"`
	InputMethod string    `json:"input_method"`
	Answer      string    `json:"answer"`
	CreatedAt   time.Time `json:"created_at"`
	Status      string    `json:"status"`
}

// AssistantListResponse lists stored assistant queries.
type AssistantListResponse struct {
	Queries    []AssistantResponse `json:"queries"`
	TotalCount int                 `json:"total_count"`
}
