// Package judge obtains a semantic judgment about a name/email pairing from
// an external collaborator. Providers implement a common capability
// interface; the container selects one at startup based on configuration
// presence.
package judge

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/inancsarica/cv-name-email-verification/internal/domain"
)

// ErrMalformedJudgment indicates the collaborator returned something other
// than a JSON object at the top level. This is a contract violation and is
// propagated rather than defaulted.
var ErrMalformedJudgment = errors.New("judgment response is not a JSON object")

const reasonUnavailable = "Model decision unavailable"

// Provider produces a judgment for one verification request.
type Provider interface {
	Name() string
	Decide(ctx context.Context, fullName, email string, features domain.FuzzyFeatures) (domain.Judgment, error)
}

// parseJudgment parses the collaborator's raw text output. A top-level
// non-object is a hard error; individually missing fields within a valid
// object are defaulted from the extracted features.
func parseJudgment(raw string, features domain.FuzzyFeatures) (domain.Judgment, error) {
	var fields map[string]any
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &fields); err != nil {
		return domain.Judgment{}, fmt.Errorf("%w: %v", ErrMalformedJudgment, err)
	}
	return normalizeJudgment(fields, features), nil
}

// normalizeJudgment reconstructs the full judgment shape, never leaving a
// field absent. Any decision other than exactly "pass" normalizes to fail.
// When the collaborator omits signals.llm_raw_confidence, it falls back to
// the top-level confidence.
func normalizeJudgment(fields map[string]any, features domain.FuzzyFeatures) domain.Judgment {
	decision := domain.DecisionFail
	if s, ok := fields["decision"].(string); ok && s == string(domain.DecisionPass) {
		decision = domain.DecisionPass
	}

	confidence := 0.0
	if v, ok := asNumber(fields["confidence"]); ok {
		confidence = v
	}

	reason := reasonUnavailable
	if s, ok := fields["reason"].(string); ok && s != "" {
		reason = s
	}

	signals, _ := fields["signals"].(map[string]any)

	return domain.Judgment{
		Decision:   decision,
		Confidence: int(confidence),
		Reason:     reason,
		Signals: domain.Signals{
			FuzzyCombinedScore: numberOr(signals, "fuzzy_combined_score", features.FuzzyCombinedScore),
			GenericEmail:       boolOr(signals, "generic_email", features.GenericEmail),
			LLMRawConfidence:   numberOr(signals, "llm_raw_confidence", confidence),
		},
	}
}

func asNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

func numberOr(fields map[string]any, key string, fallback float64) float64 {
	if v, ok := asNumber(fields[key]); ok {
		return v
	}
	return fallback
}

func boolOr(fields map[string]any, key string, fallback bool) bool {
	if v, ok := fields[key].(bool); ok {
		return v
	}
	return fallback
}
