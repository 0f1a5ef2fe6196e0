package textutil

import "testing"

func TestDisplayWidthGraphemeClusters(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"ascii", "abc", 3},
		{"wide cjk", "你好", 4},
		{"warning emoji with VS16", "\u26a0\ufe0f", 2},
		{"thumbs up with skin tone", "\U0001f44d\U0001f3fb", 2},
		{"flag regional indicators", "\U0001f1f5\U0001f1f1", 2},
		{"mixed ascii + emoji", "a\u26a0\ufe0fb", 4},
		{"combining mark attaches to base", "e\u0301", 1},
		{"lone combining mark", "\u0336", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DisplayWidth(tt.text); got != tt.want {
				t.Fatalf("DisplayWidth(%q)=%d want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestTruncateToWidth(t *testing.T) {
	tests := []struct {
		text  string
		width int
		want  string
	}{
		{"short", 10, "short"},
		{"exactly", 7, "exactly"},
		{"truncated text", 6, "trunc…"},
		{"你好世界", 5, "你好…"},
		{"abc", 1, "…"},
		{"abc", 0, ""},
	}
	for _, tt := range tests {
		if got := TruncateToWidth(tt.text, tt.width); got != tt.want {
			t.Fatalf("TruncateToWidth(%q, %d)=%q want %q", tt.text, tt.width, got, tt.want)
		}
	}
}
