package judge

import (
	"context"
	"errors"
	"testing"

	"github.com/inancsarica/cv-name-email-verification/internal/domain"
)

func sampleFeatures() domain.FuzzyFeatures {
	return domain.FuzzyFeatures{
		TokenScoreTop2Avg:  88,
		StringScore:        80,
		FuzzyCombinedScore: 84.8,
		GenericEmail:       false,
		LocalTokens:        []string{"jdoe"},
		NameTokens:         []string{"john", "doe"},
	}
}

func TestParseJudgmentCompleteResponse(t *testing.T) {
	raw := `{
		"decision": "pass",
		"confidence": 91,
		"reason": "local part encodes first initial and surname",
		"signals": {
			"fuzzy_combined_score": 85.5,
			"generic_email": false,
			"llm_raw_confidence": 91
		}
	}`

	got, err := parseJudgment(raw, sampleFeatures())
	if err != nil {
		t.Fatalf("parseJudgment: %v", err)
	}
	if got.Decision != domain.DecisionPass {
		t.Errorf("Decision = %v, want pass", got.Decision)
	}
	if got.Confidence != 91 {
		t.Errorf("Confidence = %v, want 91", got.Confidence)
	}
	if got.Signals.FuzzyCombinedScore != 85.5 {
		t.Errorf("FuzzyCombinedScore = %v, want 85.5", got.Signals.FuzzyCombinedScore)
	}
}

func TestParseJudgmentNonObjectIsHardError(t *testing.T) {
	for _, raw := range []string{`[1, 2]`, `"pass"`, `42`, `not json`, ``} {
		_, err := parseJudgment(raw, sampleFeatures())
		if !errors.Is(err, ErrMalformedJudgment) {
			t.Errorf("parseJudgment(%q) error = %v, want ErrMalformedJudgment", raw, err)
		}
	}
}

func TestParseJudgmentDefaultsMissingFields(t *testing.T) {
	got, err := parseJudgment(`{}`, sampleFeatures())
	if err != nil {
		t.Fatalf("parseJudgment: %v", err)
	}

	if got.Decision != domain.DecisionFail {
		t.Errorf("Decision = %v, want fail", got.Decision)
	}
	if got.Confidence != 0 {
		t.Errorf("Confidence = %v, want 0", got.Confidence)
	}
	if got.Reason != reasonUnavailable {
		t.Errorf("Reason = %q, want %q", got.Reason, reasonUnavailable)
	}
	if got.Signals.FuzzyCombinedScore != 84.8 {
		t.Errorf("FuzzyCombinedScore = %v, want features fallback 84.8", got.Signals.FuzzyCombinedScore)
	}
	if got.Signals.GenericEmail {
		t.Error("GenericEmail = true, want features fallback false")
	}
}

func TestParseJudgmentUnknownDecisionNormalizesToFail(t *testing.T) {
	got, err := parseJudgment(`{"decision": "maybe", "confidence": 99}`, sampleFeatures())
	if err != nil {
		t.Fatalf("parseJudgment: %v", err)
	}
	if got.Decision != domain.DecisionFail {
		t.Errorf("Decision = %v, want fail", got.Decision)
	}
}

func TestParseJudgmentConfidenceFallsBackIntoRawConfidenceSignal(t *testing.T) {
	// Known trust boundary: a collaborator reporting a high top-level
	// confidence without signals.llm_raw_confidence still feeds that value
	// into the confidence gate.
	got, err := parseJudgment(`{"decision": "pass", "confidence": 95}`, sampleFeatures())
	if err != nil {
		t.Fatalf("parseJudgment: %v", err)
	}
	if got.Signals.LLMRawConfidence != 95 {
		t.Errorf("LLMRawConfidence = %v, want 95 (defaulted from top-level confidence)", got.Signals.LLMRawConfidence)
	}
}

func TestParseJudgmentKeepsExplicitZeroSignals(t *testing.T) {
	// Reported zeros are values, not omissions. They must survive
	// normalization untouched so the downstream gate can veto on them.
	raw := `{
		"decision": "pass",
		"confidence": 90,
		"signals": {
			"fuzzy_combined_score": 0,
			"generic_email": false,
			"llm_raw_confidence": 0
		}
	}`

	got, err := parseJudgment(raw, sampleFeatures())
	if err != nil {
		t.Fatalf("parseJudgment: %v", err)
	}
	if got.Signals.FuzzyCombinedScore != 0 {
		t.Errorf("FuzzyCombinedScore = %v, want reported 0", got.Signals.FuzzyCombinedScore)
	}
	if got.Signals.LLMRawConfidence != 0 {
		t.Errorf("LLMRawConfidence = %v, want reported 0", got.Signals.LLMRawConfidence)
	}
}

func TestParseJudgmentPartialSignals(t *testing.T) {
	raw := `{"decision": "pass", "confidence": 90, "signals": {"generic_email": true}}`

	got, err := parseJudgment(raw, sampleFeatures())
	if err != nil {
		t.Fatalf("parseJudgment: %v", err)
	}
	if !got.Signals.GenericEmail {
		t.Error("GenericEmail = false, want collaborator-reported true")
	}
	if got.Signals.FuzzyCombinedScore != 84.8 {
		t.Errorf("FuzzyCombinedScore = %v, want features fallback 84.8", got.Signals.FuzzyCombinedScore)
	}
	if got.Signals.LLMRawConfidence != 90 {
		t.Errorf("LLMRawConfidence = %v, want 90", got.Signals.LLMRawConfidence)
	}
}

func TestFallbackProvider(t *testing.T) {
	features := sampleFeatures()

	got, err := NewFallbackProvider().Decide(context.Background(), "John Doe", "jdoe@company.com", features)
	if err != nil {
		t.Fatalf("Decide: %v", err)
	}

	if got.Decision != domain.DecisionFail {
		t.Errorf("Decision = %v, want fail", got.Decision)
	}
	if got.Confidence != 0 {
		t.Errorf("Confidence = %v, want 0", got.Confidence)
	}
	if got.Signals.FuzzyCombinedScore != features.FuzzyCombinedScore {
		t.Errorf("FuzzyCombinedScore = %v, want %v", got.Signals.FuzzyCombinedScore, features.FuzzyCombinedScore)
	}
	if got.Signals.LLMRawConfidence != 0 {
		t.Errorf("LLMRawConfidence = %v, want 0", got.Signals.LLMRawConfidence)
	}
}
