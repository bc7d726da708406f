// File path: internal/llm/providers/openai.go
package providers

import (
	"context"
	"os"
	"strings"

	openai "github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"

	"github.com/wellnessgarden/guide/internal/common"
)

// OpenAIProvider is the alternate generation backend, selected with
// GUIDE_PROVIDER=openai. It honors the same single-call contract and
// failure taxonomy as the Gemini provider.
type OpenAIProvider struct {
	client openai.Client
	model  string
	hasKey bool
}

func NewOpenAIProvider(apiKey string) *OpenAIProvider {
	model := strings.TrimSpace(os.Getenv("OPENAI_CHAT_MODEL"))
	if model == "" {
		model = "gpt-4o-mini"
	}
	logger := common.Logger()
	logger.Info("llm: OpenAI provider configured", "chat_model", model)
	return &OpenAIProvider{
		client: openai.NewClient(option.WithAPIKey(apiKey)),
		model:  model,
		hasKey: strings.TrimSpace(apiKey) != "",
	}
}

func (p *OpenAIProvider) Name() string { return "openai" }

// HasCredential reports whether an API key is configured, without
// performing any network work.
func (p *OpenAIProvider) HasCredential() bool { return p.hasKey }

func (p *OpenAIProvider) Generate(ctx context.Context, prompt string) (string, error) {
	if !p.hasKey {
		return "", ErrMissingCredential
	}
	logger := common.Logger()
	logger.Debug("llm: openai request", "model", p.model, "prompt_length", len(prompt))
	resp, err := p.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(p.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		Temperature:         openai.Float(0.7),
		MaxCompletionTokens: openai.Int(250),
	})
	if err != nil {
		message := err.Error()
		if credentialRejected(message) {
			return "", ErrInvalidCredential
		}
		return "", &TransportError{Message: message}
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		logger.Warn("llm: openai returned no completion text")
		return emptyReplyPlaceholder, nil
	}
	return resp.Choices[0].Message.Content, nil
}
