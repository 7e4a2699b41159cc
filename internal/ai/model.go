// Package ai drafts post titles and summaries with a text generation model.
package ai

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// Model generates a completion for a single prompt.
type Model interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// GeminiModel calls the Gemini API.
type GeminiModel struct {
	client *genai.Client
	model  string
}

func NewGeminiModel(ctx context.Context, apiKey, model string) (*GeminiModel, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}
	return &GeminiModel{client: client, model: model}, nil
}

func (m *GeminiModel) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := m.client.Models.GenerateContent(ctx, m.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("gemini %s: %w", m.model, err)
	}
	return resp.Text(), nil
}
