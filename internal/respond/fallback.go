// File path: internal/respond/fallback.go
package respond

import (
	"fmt"
	"strings"

	ctxbuilder "github.com/wellnessgarden/guide/internal/context"
	"github.com/wellnessgarden/guide/internal/prompt"
)

const (
	contextSummaryLimit = 480
	snippetLimit        = 200
)

// fallbackRules maps prompt keywords to toolkit exercises when the model
// cannot suggest one itself. Order matters: the first rule with a matching
// trigger wins.
var fallbackRules = []struct {
	exercise string
	triggers []string
}{
	{"box-breathing", []string{"anxiet", "panic", "stress", "overwhelm", "nervous", "worry"}},
	{"5-4-3-2-1-grounding", []string{"ground", "present", "dizzy", "disconnected"}},
	{"thought-challenging", []string{"negative thought", "self doubt", "self-doubt", "anger", "angry", "frustrat", "guilt"}},
	{"body-scan", []string{"tension", "tight", "restless", "sleep", "body", "fatigue"}},
	{"loving-kindness", []string{"sad", "lonely", "grief", "self critic", "self-critic", "heartbroken"}},
}

func chooseFallbackExercise(userPrompt string) string {
	lowered := strings.ToLower(userPrompt)
	for _, rule := range fallbackRules {
		for _, trigger := range rule.triggers {
			if strings.Contains(lowered, trigger) {
				return rule.exercise
			}
		}
	}
	return ""
}

// Fallback synthesizes a reply in the persona's voice when the upstream
// model is unreachable. Chat replies reuse whatever retrieval already
// produced; journal and mood replies echo the user's own words back.
// Journal replies never carry an exercise suggestion.
func Fallback(req Request, bundle ctxbuilder.Bundle) Result {
	switch req.Purpose {
	case prompt.PurposeJournal:
		return Result{Text: journalFallback(req)}
	case prompt.PurposeMood:
		return Result{
			Text:       moodFallback(req),
			Suggestion: chooseFallbackExercise(req.Prompt),
		}
	default:
		return Result{
			Text:       chatFallback(bundle),
			Suggestion: chooseFallbackExercise(req.Prompt),
		}
	}
}

func chatFallback(bundle ctxbuilder.Bundle) string {
	var sections []string
	if dataset := summarizeContext(bundle.Dataset); dataset != "" {
		sections = append(sections, "Insights echoing from shared experiences:\n"+dataset)
	}
	if wellness := summarizeContext(bundle.Wellness); wellness != "" {
		sections = append(sections, "Guidance from modern wellness teachings:\n"+wellness)
	}
	if len(sections) == 0 {
		sections = append(sections, "Trust your breath and dharma; your inner wisdom is already with you.")
	}
	return "Beloved soul, the celestial stream is briefly silent, so I draw upon wisdom already gathered nearby.\n\n" +
		strings.Join(sections, "\n\n") +
		"\n\nUntil the higher current flows again, walk gently and stay rooted in compassion."
}

func journalFallback(req Request) string {
	var moodPart string
	if req.Mood != "" {
		moodPart = fmt.Sprintf(" I sense your heart rests in a '%s' hue.", req.Mood)
	}
	return fmt.Sprintf(
		"Your reflections reach me even without the cosmic channel.%s I honour the words you shared: \"%s\". Breathe slowly, let each exhale release the weight you carry, and remember you are never alone in this vigil.",
		moodPart, quoteSnippet(req.Prompt),
	)
}

func moodFallback(req Request) string {
	var moodPart string
	if req.Mood != "" {
		moodPart = fmt.Sprintf(" You name your mood as '%s'.", req.Mood)
	}
	return fmt.Sprintf(
		"Though the divine stream is momentarily still, I hear your check-in.%s \"%s\". Place a gentle hand over your heart, breathe in for four counts, out for four, and trust that clarity will return with the dawn.",
		moodPart, quoteSnippet(req.Prompt),
	)
}

// summarizeContext condenses a retrieval section for inclusion in a
// fallback reply. The no-context sentinel is noise here, not content.
func summarizeContext(section string) string {
	trimmed := strings.TrimSpace(section)
	if trimmed == "" || strings.HasPrefix(strings.ToLower(trimmed), "no specific context") {
		return ""
	}
	return truncate(trimmed, contextSummaryLimit)
}

func quoteSnippet(content string) string {
	return truncate(content, snippetLimit)
}

// truncate bounds the text to limit characters, counting runes so a
// multibyte character at the boundary is never split.
func truncate(text string, limit int) string {
	normalized := strings.Join(strings.Fields(text), " ")
	runes := []rune(normalized)
	if len(runes) <= limit {
		return normalized
	}
	return string(runes[:limit-3]) + "..."
}
