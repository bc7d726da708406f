// File path: internal/kb/faq.go
package kb

import (
	"context"
	"fmt"
)

const faqSourceName = "Mental Health FAQ"

// faqRecord is one question/answer row of the FAQ dataset.
type faqRecord struct {
	Question string
	Answer   string
}

// FAQSource normalizes the mental-health FAQ dataset. The question becomes
// the title, falling back to an ordinal label when blank.
type FAQSource struct {
	open OpenFunc
}

func NewFAQSource(open OpenFunc) *FAQSource {
	return &FAQSource{open: open}
}

func (s *FAQSource) Name() string { return faqSourceName }

func (s *FAQSource) Load(ctx context.Context) ([]Entry, error) {
	rows, err := loadRows(s.open)
	if err != nil {
		return nil, err
	}
	var entries []Entry
	for i, row := range rows {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		rec := faqRecord{Question: row["Questions"], Answer: row["Answers"]}
		if entry, ok := rec.normalize(i); ok {
			entries = append(entries, entry)
		}
	}
	return entries, nil
}

func (r faqRecord) normalize(index int) (Entry, bool) {
	title := sanitize(r.Question)
	if title == "" {
		title = fmt.Sprintf("FAQ entry %d", index+1)
	}
	return NewEntry(faqSourceName, title, r.Answer)
}
