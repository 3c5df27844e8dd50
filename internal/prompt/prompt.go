// Package prompt owns the judgment collaborator's system instruction and the
// JSON payload sent alongside it. The instruction is loaded once at startup
// and treated as opaque text.
package prompt

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/inancsarica/cv-name-email-verification/internal/domain"
)

// DefaultSystemPrompt is used when no prompt file is configured or readable.
const DefaultSystemPrompt = `You verify whether an email address plausibly belongs to the person named in a CV.

You receive a JSON object with "full_name", "email", and "fuzzy_features"
(deterministic similarity signals between the name and the email local-part).
Judge whether the local-part is a plausible mailbox for that exact person.
Be conservative: shared or generic mailboxes, initials-only matches of common
names, and weak token overlap must not pass.

Respond with a single JSON object and nothing else:
{
  "decision": "pass" or "fail",
  "confidence": integer 0-100,
  "reason": short explanation,
  "signals": {
    "fuzzy_combined_score": number,
    "generic_email": boolean,
    "llm_raw_confidence": number
  }
}`

// Load reads the system prompt from path, falling back to the built-in
// default when the file is missing or empty.
func Load(path string, logger *zap.Logger) string {
	if path == "" {
		return DefaultSystemPrompt
	}

	data, err := os.ReadFile(path)
	if err != nil {
		logger.Warn("Prompt file unreadable, using built-in prompt",
			zap.String("path", path),
			zap.Error(err),
		)
		return DefaultSystemPrompt
	}

	text := strings.TrimSpace(string(data))
	if text == "" {
		logger.Warn("Prompt file empty, using built-in prompt", zap.String("path", path))
		return DefaultSystemPrompt
	}

	return text
}

type userPayload struct {
	FullName      string               `json:"full_name"`
	Email         string               `json:"email"`
	FuzzyFeatures domain.FuzzyFeatures `json:"fuzzy_features"`
}

// BuildUserMessage serializes the collaborator input contract.
func BuildUserMessage(fullName, email string, features domain.FuzzyFeatures) (string, error) {
	data, err := json.Marshal(userPayload{
		FullName:      fullName,
		Email:         email,
		FuzzyFeatures: features,
	})
	if err != nil {
		return "", fmt.Errorf("marshal judgment payload: %w", err)
	}
	return string(data), nil
}
