// File path: internal/kb/types.go
package kb

import "context"

// Entry represents one normalized, retrievable passage of knowledge with an
// origin label and a derived keyword set. Body is never empty and Keywords is
// computed once from Title and Body at construction.
type Entry struct {
	Source   string              `json:"source"`
	Title    string              `json:"title"`
	Body     string              `json:"body"`
	Keywords map[string]struct{} `json:"-"`
}

// Source describes one structured dataset that can be normalized into
// entries. Each implementation is the only code aware of its column schema.
type Source interface {
	Name() string
	Load(ctx context.Context) ([]Entry, error)
}

// NewEntry normalizes the title and body and derives the keyword set. It
// reports false when the normalized body is empty; such records are skipped
// by the source adapters rather than treated as errors.
func NewEntry(source, title, body string) (Entry, bool) {
	text := sanitize(body)
	if text == "" {
		return Entry{}, false
	}
	heading := sanitize(title)
	return Entry{
		Source:   source,
		Title:    heading,
		Body:     text,
		Keywords: Tokenize(heading + " " + text),
	}, true
}
