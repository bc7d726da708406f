// File path: internal/kb/community.go
package kb

import "context"

const communitySourceName = "Community Voices"

// MaxCommunityEntries caps how many community posts are accepted. The raw
// dataset is large; the cap bounds memory and index size while keeping the
// first rows in source order.
const MaxCommunityEntries = 400

// communityRecord is one post row of the community dataset. Label "1"
// marks a support request; anything else is a coping story.
type communityRecord struct {
	Text  string
	Label string
}

// CommunitySource normalizes anonymized community posts.
type CommunitySource struct {
	open OpenFunc
	cap  int
}

func NewCommunitySource(open OpenFunc) *CommunitySource {
	return &CommunitySource{open: open, cap: MaxCommunityEntries}
}

func (s *CommunitySource) Name() string { return communitySourceName }

func (s *CommunitySource) Load(ctx context.Context) ([]Entry, error) {
	rows, err := loadRows(s.open)
	if err != nil {
		return nil, err
	}
	var entries []Entry
	for _, row := range rows {
		if len(entries) >= s.cap {
			break
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		rec := communityRecord{Text: row["text"], Label: row["label"]}
		if entry, ok := rec.normalize(); ok {
			entries = append(entries, entry)
		}
	}
	return entries, nil
}

func (r communityRecord) normalize() (Entry, bool) {
	title := "Community reflection"
	switch sanitize(r.Label) {
	case "":
	case "1":
		title = "Community reflection (support request)"
	default:
		title = "Community reflection (coping story)"
	}
	return NewEntry(communitySourceName, title, r.Text)
}
