// File path: internal/llm/providers/provider.go
package providers

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Provider generates a free-text reply for a fully rendered prompt. A
// single invocation performs at most one upstream call; retries and
// streaming are out of scope.
type Provider interface {
	Generate(ctx context.Context, prompt string) (string, error)
	Name() string
}

// ErrMissingCredential reports that no API credential could be resolved.
// It is checked before any network work is attempted.
var ErrMissingCredential = errors.New("generation credential missing")

// ErrInvalidCredential reports that the upstream service rejected the
// configured credential.
var ErrInvalidCredential = errors.New("generation credential rejected")

// TransportError carries the upstream failure message for a non-success
// response, a network error, or a malformed body. Callers recover from it
// by synthesizing a fallback reply; it never reaches end users raw.
type TransportError struct {
	Status  int
	Message string
}

func (e *TransportError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("generation request failed with status %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("generation request failed: %s", e.Message)
}

var invalidCredentialPhrases = []string{
	"API key not valid",
	"API_KEY_INVALID",
	"Incorrect API key",
}

// credentialRejected reports whether an upstream failure message matches a
// known invalid-credential phrase.
func credentialRejected(message string) bool {
	for _, phrase := range invalidCredentialPhrases {
		if strings.Contains(message, phrase) {
			return true
		}
	}
	return false
}
