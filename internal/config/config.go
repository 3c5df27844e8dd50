package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/inancsarica/cv-name-email-verification/internal/constants"
)

type Config struct {
	Server      ServerConfig
	AzureOpenAI AzureOpenAIConfig
	Gemini      GeminiConfig
	Judgment    JudgmentConfig
	Prompt      PromptConfig
	Logging     LoggingConfig
}

type ServerConfig struct {
	Host string
	Port int
}

func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type AzureOpenAIConfig struct {
	Endpoint   string
	APIKey     string
	APIVersion string
	Deployment string
}

// Configured reports whether the Azure collaborator has everything it needs.
// Partial credentials count as unconfigured so startup never fails on them.
func (a AzureOpenAIConfig) Configured() bool {
	return a.Endpoint != "" && a.APIKey != "" && a.Deployment != ""
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type JudgmentConfig struct {
	RequestTimeout time.Duration
}

type PromptConfig struct {
	Path string
}

type LoggingConfig struct {
	Level string
	File  string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: getEnvInt("SERVER_PORT", 8080),
		},
		AzureOpenAI: AzureOpenAIConfig{
			Endpoint:   getEnv("AZURE_OPENAI_ENDPOINT", ""),
			APIKey:     getEnv("AZURE_OPENAI_API_KEY", ""),
			APIVersion: getEnv("AZURE_OPENAI_API_VERSION", "2024-02-15-preview"),
			Deployment: getEnv("AZURE_OPENAI_DEPLOYMENT", ""),
		},
		Gemini: GeminiConfig{
			APIKey: getEnv("GEMINI_API_KEY", ""),
			Model:  getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		},
		Judgment: JudgmentConfig{
			RequestTimeout: time.Duration(getEnvInt("JUDGMENT_TIMEOUT_SECONDS",
				int(constants.JudgmentDefaults.RequestTimeout/time.Second))) * time.Second,
		},
		Prompt: PromptConfig{
			Path: getEnv("PROMPT_PATH", "prompts/cv_email_verifier_prompt.md"),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
			File:  getEnv("LOG_FILE", ""),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks only what must hold for the process to serve. Collaborator
// credentials are deliberately optional: their absence selects the fallback
// judgment provider instead of failing startup.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be a valid TCP port, got %d", c.Server.Port)
	}
	if c.Judgment.RequestTimeout < 0 {
		return fmt.Errorf("JUDGMENT_TIMEOUT_SECONDS must not be negative")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
