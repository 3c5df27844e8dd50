package judge

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/inancsarica/cv-name-email-verification/internal/domain"
	"github.com/inancsarica/cv-name-email-verification/internal/prompt"
)

// GeminiProvider obtains judgments from the Gemini API with a JSON response
// MIME type.
type GeminiProvider struct {
	client       *genai.Client
	model        string
	systemPrompt string
	logger       *zap.Logger
}

func NewGeminiProvider(ctx context.Context, apiKey, model, systemPrompt string, logger *zap.Logger) (*GeminiProvider, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &GeminiProvider{
		client:       client,
		model:        model,
		systemPrompt: systemPrompt,
		logger:       logger,
	}, nil
}

func (p *GeminiProvider) Name() string {
	return "gemini"
}

func (p *GeminiProvider) Decide(ctx context.Context, fullName, email string, features domain.FuzzyFeatures) (domain.Judgment, error) {
	userMessage, err := prompt.BuildUserMessage(fullName, email, features)
	if err != nil {
		return domain.Judgment{}, err
	}

	temperature := float32(0)
	config := &genai.GenerateContentConfig{
		Temperature:      &temperature,
		ResponseMIMEType: "application/json",
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: p.systemPrompt}},
		},
	}

	resp, err := p.client.Models.GenerateContent(ctx, p.model, []*genai.Content{
		{Parts: []*genai.Part{{Text: userMessage}}},
	}, config)
	if err != nil {
		p.logger.Error("Gemini judgment request failed", zap.Error(err))
		return domain.Judgment{}, fmt.Errorf("gemini judgment: %w", err)
	}

	text := extractGeminiText(resp)
	if text == "" {
		return domain.Judgment{}, fmt.Errorf("gemini judgment: empty response")
	}

	p.logger.Debug("Gemini judgment received",
		zap.String("model", p.model),
		zap.Int("length", len(text)),
	)

	return parseJudgment(text, features)
}

func extractGeminiText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	candidate := resp.Candidates[0]
	if candidate.Content == nil {
		return ""
	}

	var texts []string
	for _, part := range candidate.Content.Parts {
		if part.Text != "" {
			texts = append(texts, part.Text)
		}
	}
	return strings.Join(texts, "")
}
