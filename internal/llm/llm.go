// File path: internal/llm/llm.go
package llm

import (
	"os"
	"strings"
	"time"

	"github.com/wellnessgarden/guide/internal/common"
	"github.com/wellnessgarden/guide/internal/llm/providers"
)

type Provider = providers.Provider

type TransportError = providers.TransportError

var (
	ErrMissingCredential = providers.ErrMissingCredential
	ErrInvalidCredential = providers.ErrInvalidCredential
)

// DefaultGeminiAPIKey can be injected at build time:
//
//	go build -ldflags "-X github.com/wellnessgarden/guide/internal/llm.DefaultGeminiAPIKey=..."
//
// Environment variables take precedence over it at runtime.
var DefaultGeminiAPIKey string

var geminiKeyEnvVars = []string{"GUIDE_GEMINI_API_KEY", "GEMINI_API_KEY"}

// NewProvider selects a generation backend from the environment. The
// GUIDE_PROVIDER variable chooses between "gemini" (default), "openai" and
// "local".
func NewProvider() Provider {
	logger := common.Logger()
	switch name := strings.ToLower(strings.TrimSpace(os.Getenv("GUIDE_PROVIDER"))); name {
	case "openai":
		logger.Info("llm: OpenAI provider selected")
		return providers.NewOpenAIProvider(strings.TrimSpace(os.Getenv("OPENAI_API_KEY")))
	case "local":
		logger.Info("llm: local provider selected")
		return providers.NewLocalProvider()
	case "", "gemini":
	default:
		logger.Warn("llm: unknown GUIDE_PROVIDER, using gemini", "value", name)
	}
	cfg := providers.DefaultGeminiConfig(resolveGeminiKey())
	if model := strings.TrimSpace(os.Getenv("GUIDE_GEMINI_MODEL")); model != "" {
		logger.Info("llm: configuring Gemini provider with custom model", "model", model)
		cfg.Model = model
	}
	if timeoutStr := strings.TrimSpace(os.Getenv("GUIDE_LLM_TIMEOUT")); timeoutStr != "" {
		timeout, err := time.ParseDuration(timeoutStr)
		if err != nil {
			logger.Warn("llm: invalid GUIDE_LLM_TIMEOUT, using default", "value", timeoutStr, "error", err)
		} else {
			logger.Info("llm: configuring Gemini provider with custom timeout", "timeout", timeout)
			cfg.Timeout = timeout
		}
	}
	if cfg.APIKey == "" {
		logger.Warn("llm: no Gemini API key configured; generation will fail closed")
	}
	logger.Info("llm: Gemini provider selected", "model", cfg.Model)
	return providers.NewGeminiProvider(cfg)
}

// resolveGeminiKey walks the credential chain: a build-time default first,
// then the environment. Placeholder values that web tooling sometimes writes
// into .env files are treated as absent.
func resolveGeminiKey() string {
	if key := sanitizeKey(DefaultGeminiAPIKey); key != "" {
		return key
	}
	for _, env := range geminiKeyEnvVars {
		if key := sanitizeKey(os.Getenv(env)); key != "" {
			return key
		}
	}
	return ""
}

func sanitizeKey(raw string) string {
	key := strings.TrimSpace(raw)
	switch strings.ToLower(key) {
	case "", "undefined", "null":
		return ""
	}
	return key
}
