// File path: internal/respond/suggestion_test.go
package respond

import "testing"

func TestExtractSuggestion(t *testing.T) {
	cases := []struct {
		name           string
		input          string
		wantText       string
		wantSuggestion string
	}{
		{
			name:           "trailing marker",
			input:          "Be well. [TOOLKIT_SUGGESTION:box-breathing]",
			wantText:       "Be well.",
			wantSuggestion: "box-breathing",
		},
		{
			name:           "no marker",
			input:          "Be well.",
			wantText:       "Be well.",
			wantSuggestion: "",
		},
		{
			name:           "marker mid-text",
			input:          "Breathe deeply. [TOOLKIT_SUGGESTION:body-scan] Rest now.",
			wantText:       "Breathe deeply.  Rest now.",
			wantSuggestion: "body-scan",
		},
		{
			name:           "empty marker value",
			input:          "Go gently. [TOOLKIT_SUGGESTION:]",
			wantText:       "Go gently.",
			wantSuggestion: "",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			text, suggestion := ExtractSuggestion(tc.input)
			if text != tc.wantText {
				t.Errorf("text = %q, want %q", text, tc.wantText)
			}
			if suggestion != tc.wantSuggestion {
				t.Errorf("suggestion = %q, want %q", suggestion, tc.wantSuggestion)
			}
		})
	}
}
