package judge

import (
	"context"

	"github.com/inancsarica/cv-name-email-verification/internal/domain"
)

const reasonNotConfigured = "Judgment collaborator not configured"

// FallbackProvider is the deterministic provider used when no collaborator
// credentials are present. It always fails with zero confidence so the
// policy gate can never be satisfied without a real judgment.
type FallbackProvider struct{}

func NewFallbackProvider() *FallbackProvider {
	return &FallbackProvider{}
}

func (f *FallbackProvider) Name() string {
	return "fallback"
}

func (f *FallbackProvider) Decide(_ context.Context, _, _ string, features domain.FuzzyFeatures) (domain.Judgment, error) {
	return domain.Judgment{
		Decision:   domain.DecisionFail,
		Confidence: 0,
		Reason:     reasonNotConfigured,
		Signals: domain.Signals{
			FuzzyCombinedScore: features.FuzzyCombinedScore,
			GenericEmail:       features.GenericEmail,
			LLMRawConfidence:   0,
		},
	}, nil
}
