// File path: internal/retriever/retriever.go
package retriever

import (
	"sort"

	"github.com/wellnessgarden/guide/internal/kb"
)

// DefaultMaxResults bounds how many passages are surfaced per query.
const DefaultMaxResults = 3

// Match pairs an entry with its relevance against a query keyword set.
type Match struct {
	Entry kb.Entry `json:"entry"`
	Score int      `json:"score"`
	// Density is the score normalized by the entry's keyword vocabulary
	// size. It breaks score ties in favor of tightly matched entries over
	// large, diffuse ones.
	Density float64 `json:"density"`
}

// Rank scores entries by keyword-set intersection with the prompt keywords
// and returns the top maxResults matches. Entries with no overlap are
// excluded. An empty keyword set yields no matches, never an error.
func Rank(keywords map[string]struct{}, entries []kb.Entry, maxResults int) []Match {
	if len(keywords) == 0 {
		return nil
	}
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}

	matches := make([]Match, 0, len(entries))
	for _, entry := range entries {
		score := 0
		for keyword := range keywords {
			if _, ok := entry.Keywords[keyword]; ok {
				score++
			}
		}
		if score == 0 {
			continue
		}
		size := len(entry.Keywords)
		if size == 0 {
			size = 1
		}
		matches = append(matches, Match{
			Entry:   entry,
			Score:   score,
			Density: float64(score) / float64(size),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		return matches[i].Density > matches[j].Density
	})

	if len(matches) > maxResults {
		matches = matches[:maxResults]
	}
	return matches
}
