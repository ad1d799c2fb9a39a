package service

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/ead-tools/teachers-tool-api/internal/dto"
	"github.com/ead-tools/teachers-tool-api/pkg/ai"
)

type stubGenerator struct {
	mu          sync.Mutex
	reply       string
	err         error
	calls       int
	lastInput   ai.GenerationInput
	hadDeadline bool
	block       bool
}

func (g *stubGenerator) Generate(ctx context.Context, input ai.GenerationInput) (string, error) {
	g.mu.Lock()
	g.calls++
	g.lastInput = input
	_, g.hadDeadline = ctx.Deadline()
	block := g.block
	g.mu.Unlock()

	if block {
		<-ctx.Done()
		return "", ctx.Err()
	}
	return g.reply, g.err
}

var testNow = time.Date(2026, 5, 4, 10, 0, 0, 0, time.UTC)

func testConfig() GenerationConfig {
	return GenerationConfig{
		Timeout: time.Second,
		Now:     func() time.Time { return testNow },
		NewID:   func() string { return "id-1" },
	}
}

func testLogger() zerolog.Logger {
	return zerolog.New(io.Discard)
}

func testValidator() *validator.Validate {
	return dto.NewValidator()
}
