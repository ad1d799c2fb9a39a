package ai

import "context"

// GenerationInput is a single prompt sent to a hosted text-generation model.
type GenerationInput struct {
	// System carries the agent persona. Optional.
	System string
	Prompt string
}

// Generator turns a prompt into generated text.
type Generator interface {
	Generate(ctx context.Context, input GenerationInput) (string, error)
}

// Provider names accepted by NewGenerator.
const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)
