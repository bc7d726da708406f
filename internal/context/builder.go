// File path: internal/context/builder.go
package context

import (
	"context"
	"strings"
	"time"

	"github.com/wellnessgarden/guide/internal/common"
	"github.com/wellnessgarden/guide/internal/common/telemetry"
	"github.com/wellnessgarden/guide/internal/kb"
	"github.com/wellnessgarden/guide/internal/retriever"
)

// Builder merges ranked dataset passages with the static wellness document
// lookup into one bounded context bundle. Bundles are built fresh per
// query and never cached; they depend on the full prompt text.
type Builder struct {
	library    *kb.Library
	wellness   *WellnessDoc
	maxResults int
}

func NewBuilder(library *kb.Library, wellness *WellnessDoc) *Builder {
	if wellness == nil {
		wellness = DefaultWellnessDoc()
	}
	return &Builder{
		library:    library,
		wellness:   wellness,
		maxResults: retriever.DefaultMaxResults,
	}
}

// BuildContext runs the dataset and wellness lookups concurrently and
// joins the non-empty parts. A knowledge-library load failure degrades to
// an empty dataset part; it is logged, never surfaced.
func (b *Builder) BuildContext(ctx context.Context, prompt string) Bundle {
	start := time.Now()
	defer func() { telemetry.RecordRetrieval(time.Since(start)) }()

	datasetCh := make(chan string, 1)
	go func() {
		datasetCh <- b.datasetContext(ctx, prompt)
	}()
	wellnessPart := b.wellness.BestSection(prompt)
	datasetPart := <-datasetCh

	var sections []string
	if datasetPart != "" {
		sections = append(sections, datasetPart)
	}
	if wellnessPart != "" {
		sections = append(sections, wellnessPart)
	}
	if len(sections) == 0 {
		return Bundle{Combined: NoContextSentinel}
	}
	return Bundle{
		Combined: strings.Join(sections, "\n\n"),
		Dataset:  datasetPart,
		Wellness: wellnessPart,
	}
}

func (b *Builder) datasetContext(ctx context.Context, prompt string) string {
	keywords := kb.Tokenize(prompt)
	if len(keywords) == 0 {
		return ""
	}
	entries, err := b.library.Entries(ctx)
	if err != nil {
		common.Logger().Warn("context: dataset retrieval skipped", "error", err)
		return ""
	}
	matches := retriever.Rank(keywords, entries, b.maxResults)
	if len(matches) == 0 {
		return ""
	}

	formatted := make([]string, 0, len(matches))
	for _, match := range matches {
		var sb strings.Builder
		sb.WriteString("Source: ")
		sb.WriteString(match.Entry.Source)
		sb.WriteString("\n")
		if match.Entry.Title != "" {
			sb.WriteString("Title: ")
			sb.WriteString(match.Entry.Title)
			sb.WriteString("\n")
		}
		sb.WriteString(match.Entry.Body)
		formatted = append(formatted, sb.String())
	}
	return strings.Join(formatted, "\n\n")
}
