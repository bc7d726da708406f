// File path: internal/safety/filter.go
package safety

import "strings"

// crisisPhrases blocks user-shared stories that reference self-harm or
// suicide before they reach the community feed. Matching is a plain
// case-insensitive substring check, so false positives are accepted in
// exchange for never missing an exact phrase.
var crisisPhrases = []string{
	"suicide",
	"kill myself",
	"end it all",
	"self-harm",
	"cutting",
	"overdose",
	"pills",
	"hurt myself",
	"die",
	"death",
}

// IsSafe reports whether the text is free of crisis phrases. Callers
// screening multi-part submissions check each part independently.
func IsSafe(text string) bool {
	lowered := strings.ToLower(text)
	for _, phrase := range crisisPhrases {
		if strings.Contains(lowered, phrase) {
			return false
		}
	}
	return true
}
