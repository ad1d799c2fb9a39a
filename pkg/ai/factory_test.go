package ai

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestNewGeneratorRequiresGoogleKey(t *testing.T) {
	_, err := NewGenerator(context.Background(), Config{Provider: "gemini", Logger: zerolog.Nop()})
	require.Error(t, err)
	require.True(t, IsConfigurationError(err))
	require.Contains(t, err.Error(), "GOOGLE_API_KEY")
}

func TestNewGeneratorRequiresOpenAIKey(t *testing.T) {
	_, err := NewGenerator(context.Background(), Config{Provider: "OpenAI", Logger: zerolog.Nop()})
	require.Error(t, err)
	require.True(t, IsConfigurationError(err))
	require.Contains(t, err.Error(), "OPENAI_API_KEY")
}

func TestNewGeneratorRejectsUnknownProvider(t *testing.T) {
	_, err := NewGenerator(context.Background(), Config{Provider: "llama", Logger: zerolog.Nop()})
	require.Error(t, err)
	require.True(t, IsConfigurationError(err))
	require.False(t, IsMissingCredential(err))
}

func TestMissingKeyIsMissingCredential(t *testing.T) {
	_, err := NewGenerator(context.Background(), Config{Provider: ProviderOpenAI, Logger: zerolog.Nop()})
	require.True(t, IsMissingCredential(err))
}

func TestUnavailableGeneratorReturnsCause(t *testing.T) {
	cause := &ConfigurationError{Setting: "GOOGLE_API_KEY", Reason: "is required"}
	_, err := UnavailableGenerator{Cause: cause}.Generate(context.Background(), GenerationInput{Prompt: "hi"})
	require.ErrorIs(t, err, cause)

	_, err = UnavailableGenerator{}.Generate(context.Background(), GenerationInput{Prompt: "hi"})
	require.True(t, IsConfigurationError(err))
}

func TestGenerationErrorUnwraps(t *testing.T) {
	cause := errors.New("quota exceeded")
	err := error(&GenerationError{Provider: ProviderGemini, Err: cause})
	require.ErrorIs(t, err, cause)
	require.True(t, IsGenerationError(err))
	require.False(t, IsConfigurationError(err))
	require.Equal(t, "gemini generation failed: quota exceeded", err.Error())
}
