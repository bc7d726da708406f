// File path: internal/safety/filter_test.go
package safety

import "testing"

func TestIsSafe(t *testing.T) {
	cases := []struct {
		text string
		want bool
	}{
		{"I had a great day gardening", true},
		{"I want to end it all", false},
		{"END IT ALL", false},
		{"thinking about suicide", false},
		{"I took some pills this morning", false},
		{"cutting vegetables for dinner", false},
		{"", true},
		{"learning to breathe through anxiety", true},
	}
	for _, tc := range cases {
		if got := IsSafe(tc.text); got != tc.want {
			t.Errorf("IsSafe(%q) = %v, want %v", tc.text, got, tc.want)
		}
	}
}

