package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// Config selects and configures a Generator implementation.
type Config struct {
	Provider      string
	Model         string
	MaxTokens     int
	Temperature   float32
	GoogleAPIKey  string
	OpenAIAPIKey  string
	OpenAIBaseURL string
	Logger        zerolog.Logger
}

// NewGenerator builds the Generator for the configured provider.
func NewGenerator(ctx context.Context, cfg Config) (Generator, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case "", ProviderGemini:
		generator, err := NewGeminiGenerator(ctx, GeminiConfig{
			APIKey:      cfg.GoogleAPIKey,
			Model:       cfg.Model,
			MaxTokens:   int32(cfg.MaxTokens),
			Temperature: cfg.Temperature,
			Logger:      cfg.Logger,
		})
		if err != nil {
			return nil, err
		}
		return generator, nil
	case ProviderOpenAI:
		generator, err := NewOpenAIGenerator(OpenAIConfig{
			APIKey:      cfg.OpenAIAPIKey,
			BaseURL:     cfg.OpenAIBaseURL,
			Model:       cfg.Model,
			MaxTokens:   cfg.MaxTokens,
			Temperature: cfg.Temperature,
			Logger:      cfg.Logger,
		})
		if err != nil {
			return nil, err
		}
		return generator, nil
	default:
		return nil, &ConfigurationError{Setting: "AI_PROVIDER", Reason: fmt.Sprintf("%q is not supported", cfg.Provider)}
	}
}

// UnavailableGenerator fails every call with the configuration error that
// prevented a real generator from being built.
type UnavailableGenerator struct {
	Cause error
}

// Generate always returns the stored cause.
func (u UnavailableGenerator) Generate(context.Context, GenerationInput) (string, error) {
	if u.Cause == nil {
		return "", &ConfigurationError{Setting: "generator", Reason: "is not configured"}
	}
	return "", u.Cause
}
