package prompt

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"github.com/inancsarica/cv-name-email-verification/internal/domain"
)

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prompt.md")
	if err := os.WriteFile(path, []byte("custom instruction\n"), 0644); err != nil {
		t.Fatal(err)
	}

	got := Load(path, zap.NewNop())
	if got != "custom instruction" {
		t.Errorf("Load = %q, want trimmed file content", got)
	}
}

func TestLoadFallsBackToDefault(t *testing.T) {
	cases := []struct {
		name string
		path string
	}{
		{"empty path", ""},
		{"missing file", filepath.Join(t.TempDir(), "nope.md")},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Load(tc.path, zap.NewNop()); got != DefaultSystemPrompt {
				t.Errorf("Load(%q) did not fall back to default", tc.path)
			}
		})
	}
}

func TestLoadEmptyFileFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.md")
	if err := os.WriteFile(path, []byte("  \n"), 0644); err != nil {
		t.Fatal(err)
	}

	if got := Load(path, zap.NewNop()); got != DefaultSystemPrompt {
		t.Error("Load did not fall back for an empty prompt file")
	}
}

func TestBuildUserMessage(t *testing.T) {
	features := domain.FuzzyFeatures{
		TokenScoreTop2Avg:  88,
		StringScore:        80,
		FuzzyCombinedScore: 84.8,
		GenericEmail:       false,
		LocalTokens:        []string{"jdoe"},
		NameTokens:         []string{"john", "doe"},
	}

	msg, err := BuildUserMessage("John Doe", "jdoe@company.com", features)
	if err != nil {
		t.Fatalf("BuildUserMessage: %v", err)
	}

	var payload map[string]any
	if err := json.Unmarshal([]byte(msg), &payload); err != nil {
		t.Fatalf("payload is not valid JSON: %v", err)
	}
	if payload["full_name"] != "John Doe" {
		t.Errorf("full_name = %v", payload["full_name"])
	}
	if payload["email"] != "jdoe@company.com" {
		t.Errorf("email = %v", payload["email"])
	}

	ff, ok := payload["fuzzy_features"].(map[string]any)
	if !ok {
		t.Fatal("fuzzy_features missing from payload")
	}
	for _, key := range []string{"token_score_top2_avg", "string_score", "fuzzy_combined_score", "generic_email", "local_tokens", "name_tokens"} {
		if _, present := ff[key]; !present {
			t.Errorf("fuzzy_features missing %q", key)
		}
	}
}
