package domain

// Decision is the binary verification outcome.
type Decision string

const (
	DecisionPass Decision = "pass"
	DecisionFail Decision = "fail"
)

// FuzzyFeatures bundles the deterministic similarity signals computed between
// a full name and an email local-part. Token lists are carried for audit only.
type FuzzyFeatures struct {
	TokenScoreTop2Avg  float64  `json:"token_score_top2_avg"`
	StringScore        float64  `json:"string_score"`
	FuzzyCombinedScore float64  `json:"fuzzy_combined_score"`
	GenericEmail       bool     `json:"generic_email"`
	LocalTokens        []string `json:"local_tokens"`
	NameTokens         []string `json:"name_tokens"`
}

// Signals is the fully-populated signal bundle a judgment carries. Missing
// collaborator fields are defaulted at normalization time, never left absent.
type Signals struct {
	FuzzyCombinedScore float64 `json:"fuzzy_combined_score"`
	GenericEmail       bool    `json:"generic_email"`
	LLMRawConfidence   float64 `json:"llm_raw_confidence"`
}

// Judgment is the normalized output of the judgment collaborator.
type Judgment struct {
	Decision   Decision `json:"decision"`
	Confidence int      `json:"confidence"`
	Reason     string   `json:"reason"`
	Signals    Signals  `json:"signals"`
}

// PolicyDecision is the judgment after the policy gate: confidence capped,
// decision possibly forced to fail.
type PolicyDecision struct {
	Decision   Decision `json:"decision"`
	Confidence int      `json:"confidence"`
	Reason     string   `json:"reason"`
	Signals    Signals  `json:"signals"`
}

// DebugBundle carries the intermediate pipeline outputs verbatim.
type DebugBundle struct {
	FuzzyFeatures  FuzzyFeatures  `json:"fuzzy_features"`
	LLMDecision    Judgment       `json:"llm_decision"`
	PolicyDecision PolicyDecision `json:"policy_decision"`
}

// VerificationResult is the externally visible outcome. Email is non-nil
// only when the decision is pass.
type VerificationResult struct {
	Email      *string      `json:"email"`
	Decision   Decision     `json:"decision"`
	Confidence int          `json:"confidence"`
	Reason     string       `json:"reason"`
	Debug      *DebugBundle `json:"debug,omitempty"`
}
