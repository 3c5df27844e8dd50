// Package verify composes normalization, feature extraction, the judgment
// provider, and the decision policy into one stateless request cycle.
package verify

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/inancsarica/cv-name-email-verification/internal/domain"
	"github.com/inancsarica/cv-name-email-verification/internal/fuzzy"
	"github.com/inancsarica/cv-name-email-verification/internal/judge"
	"github.com/inancsarica/cv-name-email-verification/internal/policy"
)

const reasonMissingEmail = "Missing email input"

type Service struct {
	extractor *fuzzy.Extractor
	provider  judge.Provider
	policy    *policy.Policy
	timeout   time.Duration
	logger    *zap.Logger
}

// NewService wires the pipeline. timeout bounds the judgment call per
// request; zero disables the bound.
func NewService(extractor *fuzzy.Extractor, provider judge.Provider, gate *policy.Policy, timeout time.Duration, logger *zap.Logger) *Service {
	return &Service{
		extractor: extractor,
		provider:  provider,
		policy:    gate,
		timeout:   timeout,
		logger:    logger,
	}
}

// Verify runs the pipeline for one request. A blank email short-circuits to
// a terminal fail outcome with no debug bundle regardless of the debug flag.
// A provider failure (including timeout) propagates as an error; it is never
// converted into a fail decision. The input email is echoed back only when
// the final decision is pass.
func (s *Service) Verify(ctx context.Context, fullName, email string, debug bool) (*domain.VerificationResult, error) {
	if strings.TrimSpace(email) == "" {
		return &domain.VerificationResult{
			Email:      nil,
			Decision:   domain.DecisionFail,
			Confidence: 0,
			Reason:     reasonMissingEmail,
		}, nil
	}

	features := s.extractor.Extract(fullName, email)

	judgeCtx := ctx
	if s.timeout > 0 {
		var cancel context.CancelFunc
		judgeCtx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	judgment, err := s.provider.Decide(judgeCtx, fullName, email, features)
	if err != nil {
		return nil, fmt.Errorf("judgment provider %s: %w", s.provider.Name(), err)
	}

	decision := s.policy.Apply(judgment, features)

	s.logger.Info("Verification completed",
		zap.String("decision", string(decision.Decision)),
		zap.Int("confidence", decision.Confidence),
		zap.Float64("fuzzy_combined_score", features.FuzzyCombinedScore),
		zap.Bool("generic_email", features.GenericEmail),
		zap.String("provider", s.provider.Name()),
	)

	result := &domain.VerificationResult{
		Decision:   decision.Decision,
		Confidence: decision.Confidence,
		Reason:     decision.Reason,
	}
	if decision.Decision == domain.DecisionPass {
		passed := email
		result.Email = &passed
	}
	if debug {
		result.Debug = &domain.DebugBundle{
			FuzzyFeatures:  features,
			LLMDecision:    judgment,
			PolicyDecision: decision,
		}
	}

	return result, nil
}
