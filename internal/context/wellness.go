// File path: internal/context/wellness.go
package context

import (
	_ "embed"
	"strings"
)

//go:embed wellness-info.md
var wellnessData string

// wellnessMatchThreshold is the minimum overlap score a section needs
// before it is considered a match; a single shared word is too weak. The
// value is an arbitrary tunable, not a calibrated constant.
const wellnessMatchThreshold = 1

// WellnessDoc is the static secondary knowledge document, split into
// titled sections on the "##" marker. Matching is deliberately looser
// than the dataset path: raw lowercase whitespace tokens longer than three
// characters, duplicates retained, no stop-word filtering.
type WellnessDoc struct {
	sections []string
}

// DefaultWellnessDoc returns the document bundled into the binary.
func DefaultWellnessDoc() *WellnessDoc {
	return NewWellnessDoc(wellnessData)
}

func NewWellnessDoc(data string) *WellnessDoc {
	parts := strings.Split(data, "##")
	if len(parts) > 0 {
		parts = parts[1:]
	}
	return &WellnessDoc{sections: parts}
}

// BestSection returns the single highest-scoring section with its heading
// marker restored, or "" when no section clears the threshold.
func (d *WellnessDoc) BestSection(prompt string) string {
	keywords := strings.Fields(strings.ToLower(prompt))

	var best string
	maxScore := 0
	for _, section := range d.sections {
		sectionLower := strings.ToLower(section)
		score := 0
		for _, keyword := range keywords {
			if len(keyword) > 3 && strings.Contains(sectionLower, keyword) {
				score++
			}
		}
		if score > maxScore {
			maxScore = score
			best = section
		}
	}

	if maxScore <= wellnessMatchThreshold {
		return ""
	}
	trimmed := strings.TrimSpace(best)
	if trimmed == "" {
		return ""
	}
	return "## " + trimmed
}
