package generator

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// DefaultGeminiModel is used when no model is configured
const DefaultGeminiModel = "gemini-1.5-flash"

// Gemini generates answers with Google's Gemini models
type Gemini struct {
	client      *genai.Client
	model       string
	temperature float32
}

// NewGeminiClient opens a Gemini client for an API key
func NewGeminiClient(ctx context.Context, apiKey string) (*genai.Client, error) {
	if IsPlaceholder(apiKey) {
		return nil, ErrNoCredentials
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return client, nil
}

// NewGemini wraps an open client
func NewGemini(client *genai.Client, model string) *Gemini {
	if model == "" {
		model = DefaultGeminiModel
	}
	return &Gemini{client: client, model: model, temperature: DefaultTemperature}
}

// Name identifies the provider in logs and metrics
func (g *Gemini) Name() string {
	return "gemini"
}

// Complete generates content from the user prompt under a system instruction
func (g *Gemini) Complete(ctx context.Context, systemPrompt, userPrompt string, maxTokens int) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, DefaultTimeout)
	defer cancel()

	model := g.client.GenerativeModel(g.model)
	model.SetTemperature(g.temperature)
	if maxTokens > 0 {
		model.SetMaxOutputTokens(int32(maxTokens))
	}
	model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(systemPrompt)}}

	resp, err := model.GenerateContent(ctx, genai.Text(userPrompt))
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %w", err)
	}

	var b strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				b.WriteString(string(text))
			}
		}
	}
	if strings.TrimSpace(b.String()) == "" {
		return "", ErrEmptyCompletion
	}
	return b.String(), nil
}

// Close releases the underlying client
func (g *Gemini) Close() error {
	return g.client.Close()
}
