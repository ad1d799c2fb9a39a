package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/ead-tools/teachers-tool-api/pkg/ai"
)

// DefaultGenerationTimeout bounds a generation call when no timeout is configured.
const DefaultGenerationTimeout = 60 * time.Second

// ErrGeneratorMissing indicates a service was built without a generator.
var ErrGeneratorMissing = errors.New("generator not configured")

// GenerationConfig holds the knobs shared by every generating service.
type GenerationConfig struct {
	Timeout time.Duration
	// Now and NewID are overridable for tests.
	Now   func() time.Time
	NewID func() string
}

type generationRunner struct {
	generator ai.Generator
	timeout   time.Duration
	now       func() time.Time
	newID     func() string
	tracer    trace.Tracer
	logger    zerolog.Logger
}

func newGenerationRunner(generator ai.Generator, cfg GenerationConfig, logger zerolog.Logger) generationRunner {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultGenerationTimeout
	}
	if cfg.Now == nil {
		cfg.Now = func() time.Time { return time.Now().UTC() }
	}
	if cfg.NewID == nil {
		cfg.NewID = uuid.NewString
	}

	return generationRunner{
		generator: generator,
		timeout:   cfg.Timeout,
		now:       cfg.Now,
		newID:     cfg.NewID,
		tracer:    otel.Tracer("github.com/ead-tools/teachers-tool-api/internal/service"),
		logger:    logger,
	}
}

// run invokes the generator once under the configured timeout. Failures are
// returned unchanged so callers can embed the cause in their message.
func (r generationRunner) run(parent context.Context, operation string, input ai.GenerationInput) (string, error) {
	if r.generator == nil {
		return "", ErrGeneratorMissing
	}

	ctx, cancel := context.WithTimeout(parent, r.timeout)
	defer cancel()

	ctx, span := r.tracer.Start(ctx, "service."+operation, trace.WithAttributes(
		attribute.Int("prompt.length", len(input.Prompt)),
	))
	defer span.End()

	started := time.Now()
	text, err := r.generator.Generate(ctx, input)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		r.logger.Error().Err(err).Str("operation", operation).Dur("elapsed", time.Since(started)).Msg("generation failed")
		return "", err
	}

	r.logger.Debug().Str("operation", operation).Int("reply_length", len(text)).Dur("elapsed", time.Since(started)).Msg("generation completed")
	return text, nil
}
