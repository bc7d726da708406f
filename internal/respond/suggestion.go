// File path: internal/respond/suggestion.go
package respond

import (
	"regexp"
	"strings"
)

// The model is instructed to append a machine-readable marker of the form
// [TOOLKIT_SUGGESTION:<exercise-id>] when it wants the app to surface a
// toolkit exercise. The marker is an internal wire detail and is stripped
// before the reply is shown.
var suggestionMarker = regexp.MustCompile(`\[TOOLKIT_SUGGESTION:(.*?)\]`)

// ExtractSuggestion splits a raw model reply into the user-facing text and
// the suggested exercise id, if any.
func ExtractSuggestion(text string) (clean string, suggestion string) {
	match := suggestionMarker.FindStringSubmatch(text)
	if match == nil {
		return text, ""
	}
	clean = strings.TrimSpace(strings.Replace(text, match[0], "", 1))
	return clean, strings.TrimSpace(match[1])
}
