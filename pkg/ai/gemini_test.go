package ai

import (
	"context"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestCollectText(t *testing.T) {
	cases := []struct {
		name string
		resp *genai.GenerateContentResponse
		want string
	}{
		{name: "nil response", resp: nil, want: ""},
		{name: "no candidates", resp: &genai.GenerateContentResponse{}, want: ""},
		{
			name: "candidate without content",
			resp: &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{}}},
			want: "",
		},
		{
			name: "non-text parts are skipped",
			resp: &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{
				Content: &genai.Content{Parts: []genai.Part{
					genai.Blob{MIMEType: "image/png", Data: []byte{0x89}},
					genai.Text("Lesson "),
					genai.FunctionCall{Name: "lookup"},
					genai.Text("plan"),
				}},
			}}},
			want: "Lesson plan",
		},
		{
			name: "first candidate with text wins",
			resp: &genai.GenerateContentResponse{Candidates: []*genai.Candidate{
				{Content: &genai.Content{Parts: []genai.Part{genai.Blob{MIMEType: "image/png"}}}},
				{Content: &genai.Content{Parts: []genai.Part{genai.Text("second")}}},
				{Content: &genai.Content{Parts: []genai.Part{genai.Text("third")}}},
			}},
			want: "second",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, collectText(tc.resp))
		})
	}
}

func TestNewGeminiGeneratorRequiresKey(t *testing.T) {
	generator, err := NewGeminiGenerator(context.Background(), GeminiConfig{APIKey: "   ", Logger: zerolog.Nop()})
	require.Nil(t, generator)
	require.True(t, IsMissingCredential(err))
}

func TestNewGeminiGeneratorDefaultsModel(t *testing.T) {
	generator, err := NewGeminiGenerator(context.Background(), GeminiConfig{APIKey: "test-key", Logger: zerolog.Nop()})
	require.NoError(t, err)
	t.Cleanup(func() { _ = generator.Close() })
	require.Equal(t, "gemini-2.5-flash", generator.cfg.Model)
}
