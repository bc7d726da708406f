// File path: internal/kb/sources_test.go
package kb

import (
	"context"
	"io"
	"strings"
	"testing"
)

func stringOpener(data string) OpenFunc {
	return func() (io.ReadCloser, error) {
		return io.NopCloser(strings.NewReader(data)), nil
	}
}

func TestGitaSourceNormalizesVerses(t *testing.T) {
	csv := "Chapter,Verse,Shloka,EngMeaning\n" +
		"2,47,karmany evadhikaras te,You have a right to perform your duty only.\n" +
		"2,48,,\n" +
		",,,Equanimity is called yoga.\n"
	src := NewGitaSource(stringOpener(csv))
	entries, err := src.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	first := entries[0]
	if first.Source != "Bhagavad Gita" {
		t.Fatalf("unexpected source %q", first.Source)
	}
	if first.Title != "Chapter 2, Verse 47" {
		t.Fatalf("unexpected title %q", first.Title)
	}
	if !strings.Contains(first.Body, "Original verse: karmany evadhikaras te") {
		t.Fatalf("shloka annotation missing from body %q", first.Body)
	}
	if entries[1].Title != "Bhagavad Gita Teaching" {
		t.Fatalf("expected synthetic title, got %q", entries[1].Title)
	}
}

func TestFAQSourceOrdinalTitles(t *testing.T) {
	csv := "Questions,Answers\n" +
		"What is anxiety?,A feeling of unease or worry.\n" +
		",Support groups can help with recovery.\n" +
		"Empty answer question,\n"
	src := NewFAQSource(stringOpener(csv))
	entries, err := src.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Title != "What is anxiety?" {
		t.Fatalf("unexpected title %q", entries[0].Title)
	}
	if entries[1].Title != "FAQ entry 2" {
		t.Fatalf("expected ordinal fallback title, got %q", entries[1].Title)
	}
}

func TestCommunitySourceCapKeepsSourceOrder(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("text,label\n")
	sb.WriteString("first post about panic,1\n")
	sb.WriteString("second post about recovery,0\n")
	sb.WriteString("third post,1\n")
	sb.WriteString("fourth post,0\n")
	sb.WriteString("fifth post,1\n")
	src := NewCommunitySource(stringOpener(sb.String()))
	src.cap = 2
	entries, err := src.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected cap of 2 entries, got %d", len(entries))
	}
	if entries[0].Body != "first post about panic" || entries[1].Body != "second post about recovery" {
		t.Fatalf("cap did not keep first rows in order: %+v", entries)
	}
	if entries[0].Title != "Community reflection (support request)" {
		t.Fatalf("unexpected title %q", entries[0].Title)
	}
	if entries[1].Title != "Community reflection (coping story)" {
		t.Fatalf("unexpected title %q", entries[1].Title)
	}
}

func TestStudentSourceBuildsAnnotatedBody(t *testing.T) {
	csv := "Choose your gender,What is your course?,Your current year of Study,Do you have Depression?,Do you have Anxiety?,Do you have Panic attack?,Did you seek any specialist for a treatment?\n" +
		"Female,Engineering,year 1,Yes,No,Yes,No\n" +
		",,,,,,\n"
	src := NewStudentSource(stringOpener(csv))
	entries, err := src.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected empty survey row to be skipped, got %d entries", len(entries))
	}
	entry := entries[0]
	if entry.Title != "Female student • Engineering • Year year 1" {
		t.Fatalf("unexpected title %q", entry.Title)
	}
	for _, want := range []string{"Depression: Yes", "Anxiety: No", "Panic attacks: Yes", "Professional support: No"} {
		if !strings.Contains(entry.Body, want) {
			t.Fatalf("body %q missing %q", entry.Body, want)
		}
	}
}

func TestReadCSVRowsStripsHeaderBOM(t *testing.T) {
	csv := "\ufeffQuestions,Answers\n" +
		"What is anxiety?,A feeling of unease or worry.\n"
	rows, err := readCSVRows(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("readCSVRows() error: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0]["Questions"] != "What is anxiety?" {
		t.Fatalf("BOM-prefixed header column not usable: %v", rows[0])
	}
}

func TestNewEntryDropsEmptyBody(t *testing.T) {
	if _, ok := NewEntry("src", "title", "   \n\t "); ok {
		t.Fatal("expected whitespace-only body to be dropped")
	}
}

func TestNewEntryKeywordsFromTitleAndBody(t *testing.T) {
	entry, ok := NewEntry("src", "Breathing practice", "Calms anxious minds")
	if !ok {
		t.Fatal("expected entry")
	}
	for _, token := range []string{"breathing", "practice", "calms", "anxious", "minds"} {
		if _, found := entry.Keywords[token]; !found {
			t.Fatalf("keyword %q missing from %v", token, entry.Keywords)
		}
	}
}
