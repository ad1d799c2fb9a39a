package dto

import "time"

// HomeworkRequest represents the payload for generating homework.
type HomeworkRequest struct {
	Curriculum             string  `json:"curriculum" validate:"required,notblank"`
	Subject                string  `json:"subject" validate:"required,notblank"`
	Grade                  string  `json:"grade" validate:"required,notblank"`
	Topic                  string  `json:"topic" validate:"required,notblank"`
	DifficultyLevel        string  `json:"difficulty_level" validate:"max=50"`
	AdditionalRequirements *string `json:"additional_requirements" validate:"omitempty,max=1000"`
}

// ApplyDefaults fills optional fields the caller left empty.
func (r *HomeworkRequest) ApplyDefaults() {
	if r.DifficultyLevel == "" {
		r.DifficultyLevel = "Medium"
	}
}

// HomeworkResponse describes a generated homework assignment.
type HomeworkResponse struct {
	ID                     string    `json:"id"`
	Curriculum             string    `json:"curriculum"`
	Subject                string    `json:"subject"`
	Grade                  string    `json:"grade"`
	Topic                  string    `json:"topic"`
	DifficultyLevel        string    `json:"difficulty_level"`
	AdditionalRequirements *string   `json:"additional_requirements"`
	GeneratedHomework      string    `json:"generated_homework"`
	CreatedAt              time.Time `json:"created_at"`
	Status                 string    `json:"status"`
}

// HomeworkListResponse lists generated homework assignments.
type HomeworkListResponse struct {
	HomeworkAssignments []HomeworkResponse `json:"homework_assignments"`
	TotalCount          int                `json:"total_count"`
}
