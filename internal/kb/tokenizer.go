// File path: internal/kb/tokenizer.go
package kb

import "strings"

// MinKeywordLength is the shortest token retained by Tokenize. Shorter
// tokens carry too little signal for overlap scoring.
const MinKeywordLength = 4

var stopWords = map[string]struct{}{
	"about": {}, "after": {}, "again": {}, "being": {}, "because": {},
	"before": {}, "between": {}, "could": {}, "doing": {}, "from": {},
	"have": {}, "into": {}, "over": {}, "than": {}, "that": {},
	"their": {}, "there": {}, "these": {}, "they": {}, "this": {},
	"those": {}, "through": {}, "under": {}, "until": {}, "very": {},
	"were": {}, "what": {}, "when": {}, "where": {}, "which": {},
	"while": {}, "with": {}, "would": {},
}

// Tokenize lowercases the text, strips everything outside [a-z0-9] to
// spaces, splits on whitespace and returns the set of tokens that are at
// least MinKeywordLength long and not stop words. The result is purely a
// membership structure for overlap scoring; order and multiplicity are
// discarded.
func Tokenize(text string) map[string]struct{} {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		default:
			return ' '
		}
	}, text)

	tokens := make(map[string]struct{})
	for _, token := range strings.Fields(cleaned) {
		if len(token) < MinKeywordLength {
			continue
		}
		if _, stop := stopWords[token]; stop {
			continue
		}
		tokens[token] = struct{}{}
	}
	return tokens
}

func sanitize(value string) string {
	return strings.Join(strings.Fields(value), " ")
}
