// Package policy implements the conservative gate applied on top of the
// judgment collaborator. It can only downgrade a decision toward fail and
// depress confidence, never the reverse.
package policy

import (
	"math"
	"strings"

	"github.com/inancsarica/cv-name-email-verification/internal/constants"
	"github.com/inancsarica/cv-name-email-verification/internal/domain"
	"github.com/inancsarica/cv-name-email-verification/internal/util"
)

const (
	ReasonGenericEmailVeto  = "Policy: generic email veto"
	ReasonFuzzyScoreVeto    = "Policy: fuzzy score below threshold"
	ReasonLLMConfidenceVeto = "Policy: LLM confidence below gate"

	reasonDefault = "Policy applied"
)

type Policy struct{}

func New() *Policy {
	return &Policy{}
}

// Apply reconciles a normalized judgment with the extracted features.
// Vetoes are cumulative: every matching veto appends its reason. Any veto
// forces the decision to fail and caps confidence at the forced-fail ceiling.
// The judgment's signal bundle is read as-is: defaulting of omitted
// collaborator fields (including the top-level-confidence fallback) happens
// when the judgment is normalized, so an explicitly reported zero is a zero
// here and vetoes accordingly.
func (p *Policy) Apply(judgment domain.Judgment, features domain.FuzzyFeatures) domain.PolicyDecision {
	signals := judgment.Signals

	decision := judgment.Decision
	reasons := make([]string, 0, 4)
	if judgment.Reason != "" {
		reasons = append(reasons, judgment.Reason)
	}

	forcedFail := false
	if signals.GenericEmail {
		forcedFail = true
		reasons = append(reasons, ReasonGenericEmailVeto)
	}
	if signals.FuzzyCombinedScore < constants.PolicyGates.FuzzyCombinedMin {
		forcedFail = true
		reasons = append(reasons, ReasonFuzzyScoreVeto)
	}
	if signals.LLMRawConfidence < constants.PolicyGates.LLMConfidenceGate {
		forcedFail = true
		reasons = append(reasons, ReasonLLMConfidenceVeto)
	}

	confidence := util.MinFloat(signals.LLMRawConfidence, staircaseCap(signals.LLMRawConfidence))
	if forcedFail {
		decision = domain.DecisionFail
		confidence = util.MinFloat(confidence, constants.PolicyGates.ForcedFailCap)
	}

	reason := reasonDefault
	if len(reasons) > 0 {
		reason = strings.Join(reasons, "; ")
	}

	return domain.PolicyDecision{
		Decision:   decision,
		Confidence: int(math.Round(confidence)),
		Reason:     reason,
		Signals: domain.Signals{
			FuzzyCombinedScore: util.Round2(signals.FuzzyCombinedScore),
			GenericEmail:       signals.GenericEmail,
			LLMRawConfidence:   util.Round2(signals.LLMRawConfidence),
		},
	}
}

// staircaseCap is a non-decreasing step function of raw LLM confidence.
func staircaseCap(raw float64) float64 {
	tiers := constants.ConfidenceStaircase
	switch {
	case raw < tiers.ModerateMin:
		return raw
	case raw < tiers.HighMin:
		return tiers.ModerateCap
	case raw < tiers.TopMin:
		return tiers.HighCap
	default:
		return tiers.TopCap
	}
}
