package main

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ead-tools/teachers-tool-api/internal/config"
	"github.com/ead-tools/teachers-tool-api/pkg/ai"
)

func TestBuildGeneratorFallsBackWithoutKey(t *testing.T) {
	generator, err := buildGenerator(config.Config{AIProvider: ai.ProviderGemini}, zerolog.Nop())
	require.NoError(t, err)

	_, genErr := generator.Generate(context.Background(), ai.GenerationInput{Prompt: "hello"})
	assert.True(t, ai.IsConfigurationError(genErr))
}

func TestBuildGeneratorReturnsErrorWhenKeyRequired(t *testing.T) {
	generator, err := buildGenerator(config.Config{AIProvider: ai.ProviderOpenAI, AIRequireKey: true}, zerolog.Nop())
	require.Error(t, err)
	assert.Nil(t, generator)
	assert.True(t, ai.IsConfigurationError(err))
}

func TestBuildGeneratorReturnsErrorForUnknownProvider(t *testing.T) {
	generator, err := buildGenerator(config.Config{AIProvider: "carrier-pigeon", OpenAIAPIKey: "sk-test"}, zerolog.Nop())
	require.Error(t, err)
	assert.Nil(t, generator)
}

type recordingCloser struct {
	closed bool
	err    error
}

func (r *recordingCloser) Close() error {
	r.closed = true
	return r.err
}

func TestCloseQuietlyClosesAndSwallowsErrors(t *testing.T) {
	ok := &recordingCloser{}
	closeQuietly(ok, "generator", zerolog.Nop())
	assert.True(t, ok.closed)

	failing := &recordingCloser{err: errors.New("already closed")}
	assert.NotPanics(t, func() { closeQuietly(failing, "rate limit store", zerolog.Nop()) })
	assert.True(t, failing.closed)
}
