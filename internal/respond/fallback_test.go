// File path: internal/respond/fallback_test.go
package respond

import (
	"strings"
	"testing"
	"unicode/utf8"

	ctxbuilder "github.com/wellnessgarden/guide/internal/context"
	"github.com/wellnessgarden/guide/internal/prompt"
)

func TestChooseFallbackExercise(t *testing.T) {
	cases := []struct {
		prompt string
		want   string
	}{
		{"I feel so anxious and panicky", "box-breathing"},
		{"I cannot stay present, everything feels disconnected", "5-4-3-2-1-grounding"},
		{"drowning in negative thoughts again", "thought-challenging"},
		{"my shoulders carry so much tension", "body-scan"},
		{"feeling lonely and heartbroken tonight", "loving-kindness"},
		{"what a lovely afternoon", ""},
	}
	for _, tc := range cases {
		if got := chooseFallbackExercise(tc.prompt); got != tc.want {
			t.Errorf("chooseFallbackExercise(%q) = %q, want %q", tc.prompt, got, tc.want)
		}
	}
}

func TestChooseFallbackExerciseOrder(t *testing.T) {
	// "anxiet" and "sad" both match; the earlier rule must win.
	if got := chooseFallbackExercise("sad and full of anxiety"); got != "box-breathing" {
		t.Fatalf("expected earlier rule to win, got %q", got)
	}
}

func TestChatFallbackWithContext(t *testing.T) {
	bundle := ctxbuilder.Bundle{
		Dataset:  "Source: Community Voices\nTitle: (coping story)\nBreathing helped me through panic.",
		Wellness: "## Anxiety\nSlow exhales calm the nervous system.",
	}
	result := Fallback(Request{Prompt: "panic again", Purpose: prompt.PurposeChat}, bundle)
	if !strings.Contains(result.Text, "Insights echoing from shared experiences:") {
		t.Errorf("missing dataset section: %q", result.Text)
	}
	if !strings.Contains(result.Text, "Guidance from modern wellness teachings:") {
		t.Errorf("missing wellness section: %q", result.Text)
	}
	if result.Suggestion != "box-breathing" {
		t.Errorf("suggestion = %q, want box-breathing", result.Suggestion)
	}
}

func TestChatFallbackWithoutContext(t *testing.T) {
	bundle := ctxbuilder.Bundle{Combined: ctxbuilder.NoContextSentinel}
	result := Fallback(Request{Prompt: "hello", Purpose: prompt.PurposeChat}, bundle)
	if !strings.Contains(result.Text, "Trust your breath and dharma") {
		t.Errorf("expected generic guidance line, got %q", result.Text)
	}
}

func TestChatFallbackSkipsSentinelSection(t *testing.T) {
	bundle := ctxbuilder.Bundle{Dataset: ctxbuilder.NoContextSentinel}
	result := Fallback(Request{Purpose: prompt.PurposeChat}, bundle)
	if strings.Contains(result.Text, "Insights echoing") {
		t.Fatalf("sentinel must not surface as a section: %q", result.Text)
	}
}

func TestMoodFallback(t *testing.T) {
	long := strings.Repeat("I feel so anxious and panicky today. ", 20)
	result := Fallback(Request{Prompt: long, Purpose: prompt.PurposeMood, Mood: prompt.MoodAnxious}, ctxbuilder.Bundle{})
	if !strings.Contains(result.Text, "You name your mood as 'anxious'.") {
		t.Errorf("missing mood clause: %q", result.Text)
	}
	if !strings.Contains(result.Text, "...") {
		t.Errorf("expected truncated snippet: %q", result.Text)
	}
	if result.Suggestion != "box-breathing" {
		t.Errorf("suggestion = %q, want box-breathing", result.Suggestion)
	}
}

func TestJournalFallbackWithoutMood(t *testing.T) {
	result := Fallback(Request{Prompt: "Today was quiet.", Purpose: prompt.PurposeJournal}, ctxbuilder.Bundle{})
	if strings.Contains(result.Text, "hue") {
		t.Errorf("mood clause must be absent: %q", result.Text)
	}
	if !strings.Contains(result.Text, "\"Today was quiet.\"") {
		t.Errorf("expected quoted entry: %q", result.Text)
	}
	if result.Suggestion != "" {
		t.Errorf("journal fallback must carry no suggestion, got %q", result.Suggestion)
	}
}

func TestJournalFallbackIgnoresRuleTable(t *testing.T) {
	// The prompt matches the first rule, but only chat and mood replies
	// surface exercises.
	result := Fallback(Request{Prompt: "I feel so anxious and panicky", Purpose: prompt.PurposeJournal, Mood: prompt.MoodAnxious}, ctxbuilder.Bundle{})
	if result.Suggestion != "" {
		t.Fatalf("journal fallback must carry no suggestion, got %q", result.Suggestion)
	}
	if result.Text == "" {
		t.Fatal("expected non-empty journal fallback text")
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("  spaced   out  ", 100); got != "spaced out" {
		t.Errorf("normalization failed: %q", got)
	}
	long := strings.Repeat("a", 250)
	got := truncate(long, snippetLimit)
	if len(got) != snippetLimit {
		t.Errorf("truncated length = %d, want %d", len(got), snippetLimit)
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("expected ellipsis suffix: %q", got)
	}
}

func TestTruncateMultibyteBoundary(t *testing.T) {
	long := strings.Repeat("é", 250)
	got := truncate(long, snippetLimit)
	if !utf8.ValidString(got) {
		t.Fatalf("truncation split a rune: %q", got)
	}
	if n := utf8.RuneCountInString(got); n != snippetLimit {
		t.Errorf("truncated rune count = %d, want %d", n, snippetLimit)
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("expected ellipsis suffix: %q", got)
	}
}
