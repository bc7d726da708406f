// File path: internal/respond/responder.go
package respond

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/wellnessgarden/guide/internal/common"
	"github.com/wellnessgarden/guide/internal/common/telemetry"
	ctxbuilder "github.com/wellnessgarden/guide/internal/context"
	"github.com/wellnessgarden/guide/internal/llm"
	"github.com/wellnessgarden/guide/internal/prompt"
)

const (
	missingKeyReply = "My child, the path to wisdom is clouded. The sacred key (GEMINI_API_KEY) is missing from your environment."
	invalidKeyReply = "My child, the key to this realm of knowledge appears to be invalid. Please check your sacred key (GEMINI_API_KEY) and try again."
)

// Request is one guidance query. Prompt carries the user's words (the
// message, journal entry, or check-in note depending on Purpose); Mood is
// optional and only meaningful for journal and mood purposes.
type Request struct {
	Prompt  string
	Purpose prompt.Purpose
	Mood    prompt.Mood
}

// Result is the composed reply. Suggestion, when set, names a toolkit
// exercise id the app may surface alongside the text. Fallback reports
// that the text was synthesized locally rather than generated upstream.
type Result struct {
	Text       string `json:"text"`
	Suggestion string `json:"suggestion,omitempty"`
	Fallback   bool   `json:"fallback,omitempty"`
}

var errEmptyPrompt = errors.New("empty prompt")

// credentialed is implemented by providers that can report whether a
// credential is configured without performing a call. A provider lacking
// it is assumed ready; its Generate still returns ErrMissingCredential.
type credentialed interface {
	HasCredential() bool
}

// Responder orchestrates one query end to end: retrieval, prompt
// rendering, generation, and recovery when generation fails.
type Responder struct {
	builder  *ctxbuilder.Builder
	provider llm.Provider
}

func NewResponder(builder *ctxbuilder.Builder, provider llm.Provider) *Responder {
	return &Responder{builder: builder, provider: provider}
}

// Provider names the active generation backend.
func (r *Responder) Provider() string {
	return r.provider.Name()
}

// Respond handles a single request. It degrades rather than fails: any
// generation error short of an invalid request produces a usable reply,
// either a fixed credential notice or a locally synthesized fallback.
func (r *Responder) Respond(ctx context.Context, req Request) (Result, error) {
	if strings.TrimSpace(req.Prompt) == "" {
		return Result{}, errEmptyPrompt
	}

	logger := common.Logger()
	queryID := uuid.NewString()
	logger.Info("respond: query received", "query_id", queryID, "purpose", req.Purpose, "provider", r.provider.Name())
	ctx, finish := telemetry.StartSpan(ctx, "respond")
	defer finish("query_id", queryID)

	// A missing credential is terminal; skip retrieval entirely rather
	// than paying for a context that cannot be used.
	if c, ok := r.provider.(credentialed); ok && !c.HasCredential() {
		logger.Warn("respond: credential missing", "query_id", queryID)
		telemetry.RecordGeneration("credential_missing", 0)
		return Result{Text: missingKeyReply, Fallback: true}, nil
	}

	var bundle ctxbuilder.Bundle
	var rendered string
	switch req.Purpose {
	case prompt.PurposeJournal:
		rendered = prompt.Journal(req.Prompt, req.Mood)
	case prompt.PurposeMood:
		rendered = prompt.MoodCheckIn(req.Prompt, req.Mood)
	default:
		bundle = r.builder.BuildContext(ctx, req.Prompt)
		rendered = prompt.Chat(req.Prompt, bundle.Combined)
	}

	start := time.Now()
	reply, err := r.provider.Generate(ctx, rendered)
	if err != nil {
		return r.recover(queryID, req, bundle, err, time.Since(start)), nil
	}
	telemetry.RecordGeneration("ok", time.Since(start))

	result := Result{Text: reply}
	if req.Purpose == prompt.PurposeChat || req.Purpose == "" {
		result.Text, result.Suggestion = ExtractSuggestion(reply)
	}
	logger.Info("respond: query answered", "query_id", queryID, "reply_length", len(result.Text), "suggestion", result.Suggestion)
	return result, nil
}

// recover maps a generation failure to a reply. Credential problems get a
// fixed notice pointing at the configuration; everything else is treated
// as a transient outage and answered from local material.
func (r *Responder) recover(queryID string, req Request, bundle ctxbuilder.Bundle, err error, elapsed time.Duration) Result {
	logger := common.Logger()
	switch {
	case errors.Is(err, llm.ErrMissingCredential):
		logger.Warn("respond: credential missing", "query_id", queryID)
		telemetry.RecordGeneration("credential_missing", elapsed)
		return Result{Text: missingKeyReply, Fallback: true}
	case errors.Is(err, llm.ErrInvalidCredential):
		logger.Warn("respond: credential rejected", "query_id", queryID)
		telemetry.RecordGeneration("credential_invalid", elapsed)
		return Result{Text: invalidKeyReply, Fallback: true}
	default:
		logger.Warn("respond: generation failed, using fallback", "query_id", queryID, "error", err)
		telemetry.RecordGeneration("fallback", elapsed)
		result := Fallback(req, bundle)
		result.Fallback = true
		return result
	}
}
