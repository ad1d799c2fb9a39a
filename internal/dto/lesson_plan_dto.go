package dto

import "time"

// SyllabusSourceLabel names the syllabus origin echoed in lesson plan responses.
const SyllabusSourceLabel = "Curriculum-based syllabus"

// LessonPlanRequest represents the payload for generating a lesson plan.
type LessonPlanRequest struct {
	SyllabusContent string `json:"syllabus_content" validate:"required,min=10"`
	NumberOfClasses int    `json:"number_of_classes" validate:"min=1,max=20"`
	ClassDuration   string `json:"class_duration" validate:"max=100"`
	TeachingStyle   string `json:"teaching_style" validate:"max=100"`
	HomeworkLevel   string `json:"homework_level" validate:"max=100"`
}

// ApplyDefaults fills optional fields the caller left empty.
func (r *LessonPlanRequest) ApplyDefaults() {
	if r.NumberOfClasses == 0 {
		r.NumberOfClasses = 1
	}
	if r.ClassDuration == "" {
		r.ClassDuration = "45 minutes"
	}
	if r.TeachingStyle == "" {
		r.TeachingStyle = "Interactive"
	}
	if r.HomeworkLevel == "" {
		r.HomeworkLevel = "Moderate"
	}
}

// LessonPlanResponse describes a generated lesson plan.
type LessonPlanResponse struct {
	ID               string    `json:"id"`
	SyllabusFilename string    `json:"syllabus_filename"`
	NumberOfClasses  int       `json:"number_of_classes"`
	ClassDuration    string    `json:"class_duration"`
	TeachingStyle    string    `json:"teaching_style"`
	HomeworkLevel    string    `json:"homework_level"`
	GeneratedPlan    string    `json:"generated_plan"`
	CreatedAt        time.Time `json:"created_at"`
	Status           string    `json:"status"`
}

// LessonPlanListResponse lists generated lesson plans.
type LessonPlanListResponse struct {
	Plans      []LessonPlanResponse `json:"plans"`
	TotalCount int                  `json:"total_count"`
}
