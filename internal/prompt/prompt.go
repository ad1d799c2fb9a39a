// Package prompt turns validated requests into natural-language instructions
// for the generation service. Every builder is a pure function.
package prompt

import (
	"fmt"
	"strings"

	"github.com/ead-tools/teachers-tool-api/internal/dto"
	"github.com/ead-tools/teachers-tool-api/pkg/ai"
)

// LessonPlan builds the lesson plan generation prompt.
func LessonPlan(req dto.LessonPlanRequest) ai.GenerationInput {
	builder := strings.Builder{}
	builder.WriteString("Generate a comprehensive and detailed lesson plan based on the following requirements:\n\n")
	fmt.Fprintf(&builder, "Syllabus Content: %s\n", req.SyllabusContent)
	fmt.Fprintf(&builder, "Number of Classes: %d\n", req.NumberOfClasses)
	fmt.Fprintf(&builder, "Class Duration: %s\n", req.ClassDuration)
	fmt.Fprintf(&builder, "Teaching Style: %s\n", req.TeachingStyle)
	fmt.Fprintf(&builder, "Homework Level: %s\n\n", req.HomeworkLevel)

	builder.WriteString("Please create a detailed, structured lesson plan that includes:\n\n")
	builder.WriteString("1. LEARNING OBJECTIVES\n   - Clear, measurable learning outcomes\n   - Specific skills and knowledge students will acquire\n   - Alignment with educational standards\n\n")
	builder.WriteString("2. LESSON STRUCTURE AND ACTIVITIES\n   - Detailed breakdown for each class session\n   - Engaging activities and exercises\n   - Time allocation for each activity\n   - Student engagement strategies\n\n")
	fmt.Fprintf(&builder, "3. TEACHING STRATEGIES\n   - Methods aligned with %s teaching style\n   - Differentiation strategies for diverse learners\n   - Classroom management techniques\n   - Use of technology and resources\n\n", req.TeachingStyle)
	builder.WriteString("4. ASSESSMENT METHODS\n   - Formative assessment strategies\n   - Summative assessment options\n   - Student progress monitoring\n   - Feedback mechanisms\n\n")
	fmt.Fprintf(&builder, "5. HOMEWORK ASSIGNMENTS\n   - Level-appropriate assignments for %s level\n   - Clear instructions and expectations\n   - Connection to classroom learning\n   - Estimated completion time\n\n", req.HomeworkLevel)
	fmt.Fprintf(&builder, "6. TIMELINE AND PACING\n   - Detailed schedule for %d classes\n   - Each class duration: %s\n   - Pacing recommendations\n   - Flexibility considerations\n\n", req.NumberOfClasses, req.ClassDuration)
	builder.WriteString("7. RESOURCES AND MATERIALS\n   - Required materials and equipment\n   - Digital resources and tools\n   - Supplementary reading materials\n   - Safety considerations if applicable\n\n")
	builder.WriteString("8. EVALUATION AND REFLECTION\n   - Success criteria for the lesson\n   - Reflection questions for teachers\n   - Student self-assessment opportunities\n   - Areas for improvement and adaptation\n\n")
	builder.WriteString("Make the plan practical and implementable in real classrooms, engaging and student-centered, ")
	builder.WriteString("detailed enough for teachers to follow without additional planning, and flexible enough to adapt to different student needs.\n")
	builder.WriteString("Format the response in a clear, structured manner that teachers can easily read and implement.")

	return ai.GenerationInput{System: LessonPlanPersona, Prompt: builder.String()}
}

// TermPlan builds the term plan generation prompt.
func TermPlan(req dto.TermPlanRequest) ai.GenerationInput {
	notes := optional(req.AdditionalNotes, "None provided")

	builder := strings.Builder{}
	builder.WriteString("Generate a comprehensive term plan based on the following requirements:\n\n")
	fmt.Fprintf(&builder, "Curriculum: %s\n", req.Curriculum)
	fmt.Fprintf(&builder, "Subject: %s\n", req.Subject)
	fmt.Fprintf(&builder, "Grade: %s\n", req.Grade)
	fmt.Fprintf(&builder, "Additional Notes: %s\n\n", notes)
	builder.WriteString("Please create a detailed term plan that includes:\n")
	builder.WriteString("1. Term overview and learning objectives\n")
	builder.WriteString("2. Weekly breakdown of topics and concepts\n")
	builder.WriteString("3. Assessment schedule and methods\n")
	builder.WriteString("4. Teaching strategies and resources\n")
	builder.WriteString("5. Student progress tracking methods\n")
	fmt.Fprintf(&builder, "6. Integration with %s standards\n", req.Curriculum)
	builder.WriteString("7. Differentiation strategies for various learning levels\n\n")
	fmt.Fprintf(&builder, "Make the plan comprehensive, well-structured, and aligned with educational best practices for %s %s.", req.Grade, req.Subject)

	return ai.GenerationInput{System: TermPlanPersona, Prompt: builder.String()}
}

// Assessment builds the assessment generation prompt.
func Assessment(req dto.AssessmentRequest) ai.GenerationInput {
	types := strings.Join(req.QuestionTypes, ", ")

	builder := strings.Builder{}
	builder.WriteString("Generate a comprehensive educational assessment based on the following requirements:\n\n")
	fmt.Fprintf(&builder, "Question Types: %s\n", types)
	fmt.Fprintf(&builder, "Text Content: %s\n\n", req.TextContent)
	builder.WriteString("Please create a high-quality assessment that includes:\n")
	builder.WriteString("1. Clear instructions for students\n")
	fmt.Fprintf(&builder, "2. Well-structured questions based on the selected types: %s\n", types)
	builder.WriteString("3. Appropriate difficulty level for the content\n")
	builder.WriteString("4. Answer key or rubric for grading\n")
	builder.WriteString("5. Learning objectives being assessed\n")
	builder.WriteString("6. Time allocation recommendations\n\n")
	builder.WriteString("For Multiple Choice Questions:\n- Include 4-5 options per question\n- Ensure only one correct answer\n- Make distractors plausible but clearly incorrect\n\n")
	builder.WriteString("For Short Answer Questions:\n- Provide clear expectations for response length\n- Include sample answers or key points to look for\n\n")
	builder.WriteString("Make the assessment engaging, fair, and aligned with educational best practices.")

	return ai.GenerationInput{System: AssessmentPersona, Prompt: builder.String()}
}

// Evaluation builds the grading prompt. The reply is expected to carry a JSON
// object that the evaluation reconciler can extract.
func Evaluation(req dto.EvaluationRequest) ai.GenerationInput {
	builder := strings.Builder{}
	builder.WriteString("Please evaluate the following complete assessment and provide comprehensive feedback.\n\n")
	builder.WriteString("ASSESSMENT DATA:\n================\n\n")
	builder.WriteString(req.AssessmentData)
	builder.WriteString("\n\n")

	if req.Subject != "" || req.GradeLevel != "" || req.TotalMarks != nil {
		builder.WriteString("CONTEXT:\n========\n")
		if req.Subject != "" {
			fmt.Fprintf(&builder, "Subject: %s\n", req.Subject)
		}
		if req.GradeLevel != "" {
			fmt.Fprintf(&builder, "Grade Level: %s\n", req.GradeLevel)
		}
		if req.TotalMarks != nil {
			fmt.Fprintf(&builder, "Total Marks: %d\n", *req.TotalMarks)
		}
		builder.WriteString("\n")
	}

	builder.WriteString("EVALUATION REQUIREMENTS:\n========================\n\n")
	builder.WriteString("Provide your evaluation strictly in the following JSON format:\n\n")
	builder.WriteString(evaluationSchema)
	builder.WriteString("\n\nGUIDELINES:\n===========\n")
	builder.WriteString("1. Parse the assessment text to identify questions and corresponding student answers.\n")
	builder.WriteString("2. Evaluate each question separately using appropriate criteria for the subject and level.\n")
	builder.WriteString("3. Assign a reasonable max_marks for each question; ensure marks_obtained <= max_marks.\n")
	if req.TotalMarks != nil {
		fmt.Fprintf(&builder, "4. The assessment is worth %d marks in total; distribute max_marks so they sum to that value. total_marks_obtained = sum of marks_obtained.\n", *req.TotalMarks)
	} else {
		builder.WriteString("4. Compute overall totals: total_marks = sum of question max_marks; total_marks_obtained = sum of marks_obtained.\n")
	}
	builder.WriteString("5. Calculate percentage and assign a fair letter grade (A+ to F) based on a standard scale.\n")
	builder.WriteString("6. Provide constructive, specific feedback for each question and overall performance, with strengths, areas for improvement, and actionable suggestions.\n")
	builder.WriteString("7. Respond with valid JSON only, with no extra commentary.")

	return ai.GenerationInput{System: EvaluationPersona, Prompt: builder.String()}
}

const evaluationSchema = `{
    "total_marks_obtained": <float>,
    "percentage": <float>,
    "grade": "<letter_grade>",
    "overall_feedback": "<comprehensive_overall_feedback>",
    "question_evaluations": [
        {
            "question_number": 1,
            "question": "<question_text>",
            "student_answer": "<student_answer>",
            "marks_obtained": <float>,
            "max_marks": <float>,
            "feedback": "<specific_feedback>",
            "is_correct": <boolean>
        }
    ],
    "strengths": ["<strength1>", "<strength2>", "<strength3>"],
    "areas_for_improvement": ["<area1>", "<area2>", "<area3>"],
    "suggestions": ["<suggestion1>", "<suggestion2>", "<suggestion3>"],
    "evaluation_criteria": "<explanation_of_criteria_used>",
    "total_marks": <float>
}`

// Homework builds the homework generation prompt.
func Homework(req dto.HomeworkRequest) ai.GenerationInput {
	requirements := optional(req.AdditionalRequirements, "None specified")

	builder := strings.Builder{}
	builder.WriteString("Generate comprehensive homework assignments based on the following requirements:\n\n")
	fmt.Fprintf(&builder, "Curriculum: %s\n", req.Curriculum)
	fmt.Fprintf(&builder, "Subject: %s\n", req.Subject)
	fmt.Fprintf(&builder, "Grade: %s\n", req.Grade)
	fmt.Fprintf(&builder, "Topic: %s\n", req.Topic)
	fmt.Fprintf(&builder, "Difficulty Level: %s\n", req.DifficultyLevel)
	fmt.Fprintf(&builder, "Additional Requirements: %s\n\n", requirements)
	builder.WriteString("Please create engaging homework that includes:\n")
	builder.WriteString("1. Clear instructions and learning objectives\n")
	fmt.Fprintf(&builder, "2. Varied question types appropriate for %s level\n", req.DifficultyLevel)
	builder.WriteString("3. Practical applications and real-world connections\n")
	fmt.Fprintf(&builder, "4. Appropriate time allocation for %s students\n", req.Grade)
	builder.WriteString("5. Answer key or solution guide for teachers\n")
	builder.WriteString("6. Extension activities for advanced students\n")
	fmt.Fprintf(&builder, "7. Integration with %s standards\n\n", req.Curriculum)
	builder.WriteString("Make the homework:\n")
	fmt.Fprintf(&builder, "- Age-appropriate and engaging for %s students\n", req.Grade)
	fmt.Fprintf(&builder, "- Challenging but achievable for %s level\n", req.DifficultyLevel)
	fmt.Fprintf(&builder, "- Relevant to the %s in %s\n", req.Topic, req.Subject)
	builder.WriteString("- Practical and meaningful for student learning\n\n")
	builder.WriteString("Include a variety of question formats and ensure clear, student-friendly language.")

	return ai.GenerationInput{System: HomeworkPersona, Prompt: builder.String()}
}

// StudentAssistant builds the tutoring prompt for a student's question.
func StudentAssistant(req dto.AssistantRequest) ai.GenerationInput {
	builder := strings.Builder{}
	builder.WriteString("You are helping a student with the following context:\n\n")
	writeAssistantContext(&builder, req, "Student's Question")
	builder.WriteString("Please provide a helpful, age-appropriate response that:\n")
	builder.WriteString("1. Addresses the student's question clearly and patiently\n")
	fmt.Fprintf(&builder, "2. Uses language and examples appropriate for %s level\n", req.Grade)
	builder.WriteString("3. Encourages critical thinking and problem-solving\n")
	builder.WriteString("4. Provides step-by-step explanations when helpful\n")
	builder.WriteString("5. Suggests additional resources or practice opportunities\n")
	builder.WriteString("6. Maintains an encouraging and supportive tone\n\n")
	builder.WriteString("Remember you are speaking to a student, so be patient, clear, and motivating.")

	return ai.GenerationInput{System: StudentAssistantPersona, Prompt: builder.String()}
}

// TeacherAssistant builds the advisory prompt for a teacher's question.
func TeacherAssistant(req dto.AssistantRequest) ai.GenerationInput {
	builder := strings.Builder{}
	builder.WriteString("You are helping a teacher with the following context:\n\n")
	writeAssistantContext(&builder, req, "Teacher's Question")
	builder.WriteString("Please provide professional, practical advice that:\n")
	builder.WriteString("1. Addresses the teacher's specific question or concern\n")
	builder.WriteString("2. Offers evidence-based teaching strategies and best practices\n")
	builder.WriteString("3. Suggests practical classroom activities and resources\n")
	fmt.Fprintf(&builder, "4. Considers the %s level and %s context\n", req.Grade, req.Subject)
	fmt.Fprintf(&builder, "5. Aligns with %s standards and requirements\n", req.Curriculum)
	builder.WriteString("6. Provides actionable recommendations and next steps\n")
	builder.WriteString("7. References relevant educational research when appropriate\n\n")
	builder.WriteString("Remember you are speaking to a professional educator, so be thorough, practical, and supportive.")

	return ai.GenerationInput{System: TeacherAssistantPersona, Prompt: builder.String()}
}

func writeAssistantContext(builder *strings.Builder, req dto.AssistantRequest, questionLabel string) {
	fmt.Fprintf(builder, "Curriculum: %s\n", req.Curriculum)
	fmt.Fprintf(builder, "Subject: %s\n", req.Subject)
	fmt.Fprintf(builder, "Grade: %s\n", req.Grade)
	fmt.Fprintf(builder, "%s: %s\n", questionLabel, req.Question)
	fmt.Fprintf(builder, "Input Method: %s\n\n", req.InputMethod)
}

func optional(value *string, fallback string) string {
	if value == nil || strings.TrimSpace(*value) == "" {
		return fallback
	}
	return *value
}
