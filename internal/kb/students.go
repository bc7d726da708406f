// File path: internal/kb/students.go
package kb

import (
	"context"
	"strings"
)

const studentSourceName = "Student Mental Health Survey"

// MaxStudentEntries caps how many survey responses are accepted, first
// rows in source order.
const MaxStudentEntries = 200

// studentRecord is one response row of the student well-being survey.
type studentRecord struct {
	Gender     string
	Course     string
	Year       string
	Depression string
	Anxiety    string
	Panic      string
	Treatment  string
}

// StudentSource normalizes the student survey. The title is synthesized
// from demographic fields and the body from labeled answer sub-fields.
type StudentSource struct {
	open OpenFunc
	cap  int
}

func NewStudentSource(open OpenFunc) *StudentSource {
	return &StudentSource{open: open, cap: MaxStudentEntries}
}

func (s *StudentSource) Name() string { return studentSourceName }

func (s *StudentSource) Load(ctx context.Context) ([]Entry, error) {
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
		rec := studentRecord{
			Gender:     row["Choose your gender"],
			Course:     row["What is your course?"],
			Year:       row["Your current year of Study"],
			Depression: row["Do you have Depression?"],
			Anxiety:    row["Do you have Anxiety?"],
			Panic:      row["Do you have Panic attack?"],
			Treatment:  row["Did you seek any specialist for a treatment?"],
		}
		if entry, ok := rec.normalize(); ok {
			entries = append(entries, entry)
		}
	}
	return entries, nil
}

func (r studentRecord) normalize() (Entry, bool) {
	var titleParts []string
	if gender := sanitize(r.Gender); gender != "" {
		titleParts = append(titleParts, gender+" student")
	}
	if course := sanitize(r.Course); course != "" {
		titleParts = append(titleParts, course)
	}
	if year := sanitize(r.Year); year != "" {
		titleParts = append(titleParts, "Year "+year)
	}
	title := "Student well-being insight"
	if len(titleParts) > 0 {
		title = strings.Join(titleParts, " • ")
	}

	var lines []string
	for _, field := range []struct {
		label string
		value string
	}{
		{"Depression", r.Depression},
		{"Anxiety", r.Anxiety},
		{"Panic attacks", r.Panic},
		{"Professional support", r.Treatment},
	} {
		if value := sanitize(field.value); value != "" {
			lines = append(lines, field.label+": "+value)
		}
	}
	return NewEntry(studentSourceName, title, strings.Join(lines, "\n"))
}
