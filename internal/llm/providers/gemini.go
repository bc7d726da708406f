// File path: internal/llm/providers/gemini.go
package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/wellnessgarden/guide/internal/common"
)

const (
	defaultGeminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	defaultGeminiModel   = "gemini-pro"
	defaultGeminiTimeout = 30 * time.Second

	// emptyReplyPlaceholder stands in when the service answers without a
	// usable text part; an empty reply must never reach the user.
	emptyReplyPlaceholder = "My child, words fail me at this moment, but my presence is with you."
)

// GeminiConfig holds configuration for the Gemini client.
type GeminiConfig struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// DefaultGeminiConfig returns the fixed production configuration. The
// upstream API enforces no timeout of its own, so the client carries a
// bounded one.
func DefaultGeminiConfig(apiKey string) GeminiConfig {
	return GeminiConfig{
		APIKey:  apiKey,
		BaseURL: defaultGeminiBaseURL,
		Model:   defaultGeminiModel,
		Timeout: defaultGeminiTimeout,
	}
}

// GeminiProvider calls the Gemini generateContent REST endpoint with a
// fixed generation configuration: bounded output, deterministic-leaning
// sampling, and all harm-category filters relaxed because the domain
// requires discussing sensitive emotional topics.
type GeminiProvider struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

func NewGeminiProvider(cfg GeminiConfig) *GeminiProvider {
	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = defaultGeminiModel
	}
	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		baseURL = defaultGeminiBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultGeminiTimeout
	}
	return &GeminiProvider{
		apiKey:  cfg.APIKey,
		baseURL: baseURL,
		model:   model,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (p *GeminiProvider) Name() string { return "gemini" }

// HasCredential reports whether an API key is configured, without
// performing any network work.
func (p *GeminiProvider) HasCredential() bool {
	return strings.TrimSpace(p.apiKey) != ""
}

type geminiPart struct {
	Text string `json:"text,omitempty"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiGenerationConfig struct {
	Temperature     float64 `json:"temperature"`
	TopK            int     `json:"topK"`
	TopP            float64 `json:"topP"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type geminiSafetySetting struct {
	Category  string `json:"category"`
	Threshold string `json:"threshold"`
}

type geminiRequest struct {
	Contents         []geminiContent        `json:"contents"`
	GenerationConfig geminiGenerationConfig `json:"generationConfig"`
	SafetySettings   []geminiSafetySetting  `json:"safetySettings"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

func permissiveSafetySettings() []geminiSafetySetting {
	categories := []string{
		"HARM_CATEGORY_HARASSMENT",
		"HARM_CATEGORY_HATE_SPEECH",
		"HARM_CATEGORY_SEXUALLY_EXPLICIT",
		"HARM_CATEGORY_DANGEROUS_CONTENT",
	}
	settings := make([]geminiSafetySetting, 0, len(categories))
	for _, category := range categories {
		settings = append(settings, geminiSafetySetting{Category: category, Threshold: "BLOCK_NONE"})
	}
	return settings
}

// Generate performs a single generateContent call. Failure mapping, in
// priority order: missing credential, transport failure carrying the
// upstream message, rejected credential detected from that message. A
// success with no text part yields a fixed placeholder reply.
func (p *GeminiProvider) Generate(ctx context.Context, prompt string) (string, error) {
	logger := common.Logger()
	if strings.TrimSpace(p.apiKey) == "" {
		return "", ErrMissingCredential
	}

	reqBody := geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
		GenerationConfig: geminiGenerationConfig{
			Temperature:     0.7,
			TopK:            1,
			TopP:            1,
			MaxOutputTokens: 250,
		},
		SafetySettings: permissiveSafetySettings(),
	}
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", &TransportError{Message: fmt.Sprintf("marshal request: %v", err)}
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent?key=%s", p.baseURL, p.model, url.QueryEscape(p.apiKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", &TransportError{Message: fmt.Sprintf("build request: %v", err)}
	}
	req.Header.Set("Content-Type", "application/json")

	logger.Debug("llm: gemini request", "model", p.model, "prompt_length", len(prompt))
	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", &TransportError{Message: err.Error()}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &TransportError{Status: resp.StatusCode, Message: fmt.Sprintf("read response: %v", err)}
	}

	if resp.StatusCode != http.StatusOK {
		message := upstreamMessage(body, resp.Status)
		if credentialRejected(message) {
			return "", fmt.Errorf("gemini: %s: %w", message, ErrInvalidCredential)
		}
		return "", &TransportError{Status: resp.StatusCode, Message: message}
	}

	var decoded geminiResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return "", &TransportError{Status: resp.StatusCode, Message: fmt.Sprintf("parse response: %v", err)}
	}
	if decoded.Error != nil {
		message := decoded.Error.Message
		if credentialRejected(message) {
			return "", fmt.Errorf("gemini: %s: %w", message, ErrInvalidCredential)
		}
		return "", &TransportError{Message: message}
	}

	if len(decoded.Candidates) == 0 || len(decoded.Candidates[0].Content.Parts) == 0 ||
		decoded.Candidates[0].Content.Parts[0].Text == "" {
		logger.Warn("llm: gemini returned no text part")
		return emptyReplyPlaceholder, nil
	}
	return decoded.Candidates[0].Content.Parts[0].Text, nil
}

// upstreamMessage extracts the error message from a failure body, falling
// back to the raw status text.
func upstreamMessage(body []byte, status string) string {
	var decoded struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &decoded); err == nil && decoded.Error.Message != "" {
		return decoded.Error.Message
	}
	if trimmed := strings.TrimSpace(string(body)); trimmed != "" {
		return trimmed
	}
	return status
}
