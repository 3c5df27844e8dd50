package constants

import "time"

var PolicyGates = struct {
	FuzzyCombinedMin  float64
	LLMConfidenceGate float64
	ForcedFailCap     float64
}{
	FuzzyCombinedMin:  70,
	LLMConfidenceGate: 85,
	ForcedFailCap:     30,
}

// ConfidenceStaircase caps raw LLM confidence tier by tier. Below ModerateMin
// the raw value passes through unchanged.
var ConfidenceStaircase = struct {
	ModerateMin float64
	ModerateCap float64
	HighMin     float64
	HighCap     float64
	TopMin      float64
	TopCap      float64
}{
	ModerateMin: 70,
	ModerateCap: 65,
	HighMin:     80,
	HighCap:     80,
	TopMin:      85,
	TopCap:      95,
}

var FuzzyWeights = struct {
	TokenScore  float64
	StringScore float64
}{
	TokenScore:  0.6,
	StringScore: 0.4,
}

var ServerTimeouts = struct {
	Read     time.Duration
	Write    time.Duration
	Idle     time.Duration
	Shutdown time.Duration
}{
	Read:     10 * time.Second,
	Write:    60 * time.Second,
	Idle:     120 * time.Second,
	Shutdown: 10 * time.Second,
}

var JudgmentDefaults = struct {
	RequestTimeout time.Duration
}{
	RequestTimeout: 30 * time.Second,
}
