package concierge

import (
	"context"
	"fmt"
	"strings"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const (
	geminiModelName = "models/gemini-1.5-flash"
	// Low temperature favors conservative, schema-following completions.
	geminiTemperature = 0.2
)

// GeminiClient invokes the hosted Gemini model once per request. Transport
// and auth failures propagate to the caller; there is no retry or fallback.
type GeminiClient struct {
	client *genai.Client
}

func NewGeminiClient(apiKey string) (*GeminiClient, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiClient{client: client}, nil
}

func (g *GeminiClient) Generate(ctx context.Context, conv Conversation) (string, error) {
	model := g.client.GenerativeModel(geminiModelName)
	model.SetTemperature(geminiTemperature)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(conv.System)},
	}

	resp, err := model.GenerateContent(ctx, genai.Text(conv.Human))
	if err != nil {
		return "", fmt.Errorf("gemini generate error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini returned no candidates")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	return sb.String(), nil
}
