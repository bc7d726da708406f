// File path: internal/context/builder_test.go
package context

import (
	stdcontext "context"
	"strings"
	"testing"

	"github.com/wellnessgarden/guide/internal/kb"
)

type staticSource struct {
	name    string
	entries []kb.Entry
}

func (s staticSource) Name() string { return s.name }

func (s staticSource) Load(ctx stdcontext.Context) ([]kb.Entry, error) {
	return s.entries, nil
}

func fixtureLibrary(t *testing.T, bodies ...string) *kb.Library {
	t.Helper()
	entries := make([]kb.Entry, 0, len(bodies))
	for _, body := range bodies {
		entry, ok := kb.NewEntry("Fixture", "Fixture entry", body)
		if !ok {
			t.Fatalf("fixture body %q empty", body)
		}
		entries = append(entries, entry)
	}
	return kb.NewLibrary(staticSource{name: "fixture", entries: entries})
}

func TestBuildContextDatasetOnly(t *testing.T) {
	library := fixtureLibrary(t, "anxious breathing")
	builder := NewBuilder(library, NewWellnessDoc("## Unrelated\nNothing matches here."))

	bundle := builder.BuildContext(stdcontext.Background(), "I feel anxious today")
	if bundle.Dataset == "" {
		t.Fatal("expected dataset context")
	}
	if bundle.Wellness != "" {
		t.Fatalf("expected no wellness section, got %q", bundle.Wellness)
	}
	if !strings.Contains(bundle.Combined, "anxious breathing") {
		t.Fatalf("combined context missing dataset entry: %q", bundle.Combined)
	}
	if !strings.Contains(bundle.Combined, "Source: Fixture") {
		t.Fatalf("combined context missing source label: %q", bundle.Combined)
	}
}

func TestBuildContextSentinelWhenNothingMatches(t *testing.T) {
	library := fixtureLibrary(t, "gardening in spring sunshine")
	builder := NewBuilder(library, NewWellnessDoc("## Sleep\nKeep a steady bedtime."))

	bundle := builder.BuildContext(stdcontext.Background(), "zzz")
	if bundle.Combined != NoContextSentinel {
		t.Fatalf("expected sentinel, got %q", bundle.Combined)
	}
	if !bundle.Empty() {
		t.Fatal("expected empty bundle")
	}
}

func TestBuildContextJoinsBothParts(t *testing.T) {
	library := fixtureLibrary(t, "anxious breathing exercises help")
	doc := NewWellnessDoc("## Anxiety Relief\nWhen anxious, slow breathing calms the anxious body.")
	builder := NewBuilder(library, doc)

	bundle := builder.BuildContext(stdcontext.Background(), "anxious breathing")
	if bundle.Dataset == "" || bundle.Wellness == "" {
		t.Fatalf("expected both parts, got %+v", bundle)
	}
	if bundle.Combined != bundle.Dataset+"\n\n"+bundle.Wellness {
		t.Fatalf("combined must join parts with a blank line: %q", bundle.Combined)
	}
}

func TestWellnessBestSectionThreshold(t *testing.T) {
	doc := NewWellnessDoc("## Sleep\nFixed bedtime helps sleep.\n\n## Anxiety\nAn anxious mind settles with breathing practice.")

	// A single overlapping word does not clear the threshold.
	if got := doc.BestSection("bedtime soon"); got != "" {
		t.Fatalf("expected no match below threshold, got %q", got)
	}
	// Two keyword hits (duplicates count) select the section.
	got := doc.BestSection("anxious anxious evening")
	if !strings.HasPrefix(got, "## Anxiety") {
		t.Fatalf("expected anxiety section, got %q", got)
	}
}

func TestWellnessShortTokensIgnored(t *testing.T) {
	doc := NewWellnessDoc("## One\nthe the the and and")
	if got := doc.BestSection("the and the and"); got != "" {
		t.Fatalf("tokens of length <= 3 must not score, got %q", got)
	}
}
