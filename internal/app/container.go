package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/inancsarica/cv-name-email-verification/internal/config"
	"github.com/inancsarica/cv-name-email-verification/internal/fuzzy"
	"github.com/inancsarica/cv-name-email-verification/internal/judge"
	"github.com/inancsarica/cv-name-email-verification/internal/policy"
	"github.com/inancsarica/cv-name-email-verification/internal/prompt"
	"github.com/inancsarica/cv-name-email-verification/internal/server"
	"github.com/inancsarica/cv-name-email-verification/internal/verify"
)

// Container bundles the assembled verification pipeline for transport wiring.
type Container struct {
	Config   *config.Config
	Logger   *zap.Logger
	Provider judge.Provider
	Verifier *verify.Service
}

// Build assembles the dependency graph: prompt, judgment provider, extractor,
// policy, and the verification service. Provider selection happens here, once,
// by configuration presence.
func Build(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger must not be nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	systemPrompt := prompt.Load(cfg.Prompt.Path, logger)

	provider := selectProvider(ctx, cfg, systemPrompt, logger)
	logger.Info("Judgment provider selected", zap.String("provider", provider.Name()))

	verifier := verify.NewService(
		fuzzy.NewExtractor(),
		provider,
		policy.New(),
		cfg.Judgment.RequestTimeout,
		logger,
	)

	return &Container{
		Config:   cfg,
		Logger:   logger,
		Provider: provider,
		Verifier: verifier,
	}, nil
}

func selectProvider(ctx context.Context, cfg *config.Config, systemPrompt string, logger *zap.Logger) judge.Provider {
	if cfg.AzureOpenAI.Configured() {
		return judge.NewAzureOpenAIProvider(
			cfg.AzureOpenAI.Endpoint,
			cfg.AzureOpenAI.APIKey,
			cfg.AzureOpenAI.APIVersion,
			cfg.AzureOpenAI.Deployment,
			systemPrompt,
			logger,
		)
	}

	if cfg.Gemini.APIKey != "" {
		provider, err := judge.NewGeminiProvider(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model, systemPrompt, logger)
		if err != nil {
			logger.Warn("Failed to initialize Gemini provider, degrading to fallback", zap.Error(err))
			return judge.NewFallbackProvider()
		}
		return provider
	}

	logger.Warn("No judgment collaborator configured, using fallback provider")
	return judge.NewFallbackProvider()
}

// NewServer constructs the HTTP transport bound to the assembled pipeline.
func (c *Container) NewServer() *server.Server {
	return server.New(c.Config.Server.Addr(), c.Verifier, c.Logger)
}
