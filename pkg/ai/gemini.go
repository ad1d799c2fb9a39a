package ai

import (
	"context"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/api/option"
)

// GeminiConfig defines configuration options for the Gemini generator.
type GeminiConfig struct {
	APIKey      string
	Model       string
	MaxTokens   int32
	Temperature float32
	Logger      zerolog.Logger
}

// GeminiGenerator implements Generator against the Google Gemini API.
// The underlying client is created once and shared by every call.
type GeminiGenerator struct {
	client *genai.Client
	cfg    GeminiConfig
	tracer trace.Tracer
	logger zerolog.Logger
}

// NewGeminiGenerator dials the Gemini API with the configured key.
func NewGeminiGenerator(ctx context.Context, cfg GeminiConfig) (*GeminiGenerator, error) {
	cfg.APIKey = strings.TrimSpace(cfg.APIKey)
	if cfg.APIKey == "" {
		return nil, &ConfigurationError{Setting: "GOOGLE_API_KEY", Reason: "is required"}
	}

	if cfg.Model == "" {
		cfg.Model = "gemini-2.5-flash"
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, &GenerationError{Provider: ProviderGemini, Err: err}
	}

	return &GeminiGenerator{
		client: client,
		cfg:    cfg,
		tracer: otel.Tracer("github.com/ead-tools/teachers-tool-api/pkg/ai/gemini"),
		logger: cfg.Logger.With().Str("component", "gemini_generator").Logger(),
	}, nil
}

// Generate sends the prompt to Gemini and returns the first text part of the reply.
func (g *GeminiGenerator) Generate(parent context.Context, input GenerationInput) (string, error) {
	ctx, span := g.tracer.Start(parent, "gemini.generate", trace.WithAttributes(
		attribute.String("model", g.cfg.Model),
		attribute.Int("prompt_length", len(input.Prompt)),
	))
	defer span.End()

	// GenerativeModel carries mutable settings, so each call gets its own.
	model := g.client.GenerativeModel(g.cfg.Model)
	model.SetTemperature(g.cfg.Temperature)
	if g.cfg.MaxTokens > 0 {
		model.SetMaxOutputTokens(g.cfg.MaxTokens)
	}
	if input.System != "" {
		model.SystemInstruction = &genai.Content{
			Parts: []genai.Part{genai.Text(input.System)},
		}
	}

	start := time.Now()
	resp, err := model.GenerateContent(ctx, genai.Text(input.Prompt))
	generationDuration.WithLabelValues(ProviderGemini, g.cfg.Model).Observe(time.Since(start).Seconds())
	if err != nil {
		return "", g.fail(span, err)
	}

	text := strings.TrimSpace(collectText(resp))
	if text == "" {
		return "", g.fail(span, ErrEmptyResponse)
	}

	return text, nil
}

// Close releases the underlying client connection.
func (g *GeminiGenerator) Close() error {
	return g.client.Close()
}

func (g *GeminiGenerator) fail(span trace.Span, err error) error {
	generationFailures.WithLabelValues(ProviderGemini, g.cfg.Model).Inc()
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	g.logger.Warn().Err(err).Str("model", g.cfg.Model).Msg("gemini generation failed")
	return &GenerationError{Provider: ProviderGemini, Err: err}
}

func collectText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	builder := strings.Builder{}
	for _, candidate := range resp.Candidates {
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				builder.WriteString(string(text))
			}
		}
		if builder.Len() > 0 {
			break
		}
	}
	return builder.String()
}
