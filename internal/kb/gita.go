// File path: internal/kb/gita.go
package kb

import (
	"context"
	"strings"
)

const gitaSourceName = "Bhagavad Gita"

// gitaRecord is one verse row of the Bhagavad Gita dataset.
type gitaRecord struct {
	Chapter    string
	Verse      string
	Shloka     string
	EngMeaning string
}

// GitaSource normalizes the Bhagavad Gita verse dataset. The English
// meaning is the body; the transliterated shloka is appended as an
// annotated line when present.
type GitaSource struct {
	open OpenFunc
}

func NewGitaSource(open OpenFunc) *GitaSource {
	return &GitaSource{open: open}
}

func (s *GitaSource) Name() string { return gitaSourceName }

func (s *GitaSource) Load(ctx context.Context) ([]Entry, error) {
	rows, err := loadRows(s.open)
	if err != nil {
		return nil, err
	}
	var entries []Entry
	for _, row := range rows {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		rec := gitaRecord{
			Chapter:    row["Chapter"],
			Verse:      row["Verse"],
			Shloka:     row["Shloka"],
			EngMeaning: row["EngMeaning"],
		}
		if entry, ok := rec.normalize(); ok {
			entries = append(entries, entry)
		}
	}
	return entries, nil
}

func (r gitaRecord) normalize() (Entry, bool) {
	meaning := sanitize(r.EngMeaning)
	if meaning == "" {
		return Entry{}, false
	}

	var titleParts []string
	if chapter := sanitize(r.Chapter); chapter != "" {
		titleParts = append(titleParts, "Chapter "+chapter)
	}
	if verse := sanitize(r.Verse); verse != "" {
		titleParts = append(titleParts, "Verse "+verse)
	}
	title := "Bhagavad Gita Teaching"
	if len(titleParts) > 0 {
		title = strings.Join(titleParts, ", ")
	}

	body := meaning
	if shloka := sanitize(r.Shloka); shloka != "" {
		body += "\nOriginal verse: " + shloka
	}
	return NewEntry(gitaSourceName, title, body)
}
