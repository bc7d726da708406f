// File path: internal/prompt/purpose.go
package prompt

import (
	"fmt"
	"strings"
)

// Purpose is the interaction mode controlling which template and
// post-processing apply. The set is closed.
type Purpose string

const (
	PurposeChat    Purpose = "chat"
	PurposeJournal Purpose = "journal"
	PurposeMood    Purpose = "mood"
)

// ParsePurpose validates a caller-supplied purpose string.
func ParsePurpose(value string) (Purpose, error) {
	switch Purpose(strings.ToLower(strings.TrimSpace(value))) {
	case PurposeChat:
		return PurposeChat, nil
	case PurposeJournal:
		return PurposeJournal, nil
	case PurposeMood:
		return PurposeMood, nil
	default:
		return "", fmt.Errorf("unknown purpose %q", value)
	}
}

// Mood is one of the eight mood tags a user can check in with.
type Mood string

const (
	MoodHappy      Mood = "happy"
	MoodSad        Mood = "sad"
	MoodAnxious    Mood = "anxious"
	MoodAngry      Mood = "angry"
	MoodCalm       Mood = "calm"
	MoodExcited    Mood = "excited"
	MoodFrustrated Mood = "frustrated"
	MoodGrateful   Mood = "grateful"
)

var moods = map[Mood]struct{}{
	MoodHappy: {}, MoodSad: {}, MoodAnxious: {}, MoodAngry: {},
	MoodCalm: {}, MoodExcited: {}, MoodFrustrated: {}, MoodGrateful: {},
}

// ParseMood validates an optional mood tag. An empty value is allowed and
// returns the zero Mood.
func ParseMood(value string) (Mood, error) {
	trimmed := strings.ToLower(strings.TrimSpace(value))
	if trimmed == "" {
		return "", nil
	}
	mood := Mood(trimmed)
	if _, ok := moods[mood]; !ok {
		return "", fmt.Errorf("unknown mood %q", value)
	}
	return mood, nil
}
