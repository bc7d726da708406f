// File path: internal/llm/providers/local.go
package providers

import (
	"context"
	"errors"
	"strings"

	"github.com/wellnessgarden/guide/internal/common"
)

// LocalProvider is an offline stand-in used when no remote backend is
// configured. It never fails and always returns the same reply, which keeps
// the rest of the pipeline exercisable without credentials.
type LocalProvider struct{}

func NewLocalProvider() *LocalProvider {
	return &LocalProvider{}
}

func (l *LocalProvider) Generate(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", errors.New("empty prompt")
	}
	preview := prompt
	if len(preview) > 120 {
		preview = preview[:120]
	}
	common.Logger().Debug("llm: local provider invoked", "prompt_preview", preview)
	return "Response from the local model.", nil
}

func (l *LocalProvider) Name() string {
	return "local"
}

// HasCredential always reports true; the local provider needs none.
func (l *LocalProvider) HasCredential() bool { return true }
