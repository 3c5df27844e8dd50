package judge

import (
	"context"
	"fmt"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/azure"
	"github.com/openai/openai-go/v3/shared"
	"go.uber.org/zap"

	"github.com/inancsarica/cv-name-email-verification/internal/domain"
	"github.com/inancsarica/cv-name-email-verification/internal/prompt"
)

// AzureOpenAIProvider obtains judgments from an Azure OpenAI chat deployment
// with temperature 0 and JSON-only output.
type AzureOpenAIProvider struct {
	client       *openai.Client
	deployment   string
	systemPrompt string
	logger       *zap.Logger
}

func NewAzureOpenAIProvider(endpoint, apiKey, apiVersion, deployment, systemPrompt string, logger *zap.Logger) *AzureOpenAIProvider {
	client := openai.NewClient(
		azure.WithEndpoint(endpoint, apiVersion),
		azure.WithAPIKey(apiKey),
	)
	return &AzureOpenAIProvider{
		client:       &client,
		deployment:   deployment,
		systemPrompt: systemPrompt,
		logger:       logger,
	}
}

func (p *AzureOpenAIProvider) Name() string {
	return "azure-openai"
}

func (p *AzureOpenAIProvider) Decide(ctx context.Context, fullName, email string, features domain.FuzzyFeatures) (domain.Judgment, error) {
	userMessage, err := prompt.BuildUserMessage(fullName, email, features)
	if err != nil {
		return domain.Judgment{}, err
	}

	resp, err := p.client.Chat.Completions.New(ctx, chatParams(p.deployment, p.systemPrompt, userMessage))
	if err != nil {
		p.logger.Error("Azure OpenAI judgment request failed", zap.Error(err))
		return domain.Judgment{}, fmt.Errorf("azure openai judgment: %w", err)
	}
	if len(resp.Choices) == 0 {
		return domain.Judgment{}, fmt.Errorf("azure openai judgment: no choices in response")
	}

	p.logger.Debug("Azure OpenAI judgment received",
		zap.String("deployment", p.deployment),
		zap.Int64("prompt_tokens", resp.Usage.PromptTokens),
		zap.Int64("completion_tokens", resp.Usage.CompletionTokens),
	)

	return parseJudgment(resp.Choices[0].Message.Content, features)
}

// chatParams pins the request shape: deterministic sampling and JSON mode,
// so the deployment cannot hand back prose around the judgment object.
func chatParams(deployment, systemPrompt, userMessage string) openai.ChatCompletionNewParams {
	return openai.ChatCompletionNewParams{
		Model: openai.ChatModel(deployment),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(userMessage),
		},
		Temperature: openai.Float(0),
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &shared.ResponseFormatJSONObjectParam{},
		},
	}
}
