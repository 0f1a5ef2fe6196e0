package textutil

import (
	"testing"
	"unicode/utf8"
)

func TestTrimLeadingSpaceKeepsTrailing(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"  hello ", "hello "},
		{"\t\n x", "x"},
		{"x  ", "x  "},
		{"   ", ""},
		{"", ""},
		{" nbsp", "nbsp"},
	}
	for _, tt := range tests {
		if got := TrimLeadingSpace(tt.in); got != tt.want {
			t.Fatalf("TrimLeadingSpace(%q)=%q want %q", tt.in, got, tt.want)
		}
	}
}

func TestStrikethroughInterleavesMarks(t *testing.T) {
	for _, text := range []string{"abc", "a b", "żółw", "x"} {
		got := Strikethrough(text)
		runes := []rune(got)
		src := []rune(text)
		if len(runes) != 2*len(src) {
			t.Fatalf("Strikethrough(%q): expected %d runes, got %d", text, 2*len(src), len(runes))
		}
		for i, r := range src {
			if runes[2*i] != StrikeMark {
				t.Fatalf("Strikethrough(%q): expected mark at %d, got %q", text, 2*i, runes[2*i])
			}
			if runes[2*i+1] != r {
				t.Fatalf("Strikethrough(%q): expected %q at %d, got %q", text, r, 2*i+1, runes[2*i+1])
			}
		}
	}
	if got := Strikethrough(""); got != "" {
		t.Fatalf("expected empty output, got %q", got)
	}
}

func TestStrikethroughDisplayWidthMatchesSource(t *testing.T) {
	// The leading mark has no base to attach to and is zero width.
	text := "strike"
	got := Strikethrough(text)
	if !utf8.ValidString(got) {
		t.Fatalf("expected valid utf-8")
	}
	if w := DisplayWidth(got); w != DisplayWidth(text) {
		t.Fatalf("expected width %d, got %d", DisplayWidth(text), w)
	}
}

func TestExpandTabsUsesColumns(t *testing.T) {
	if got := ExpandTabs("a\tb", 4); got != "a   b" {
		t.Fatalf("expected %q, got %q", "a   b", got)
	}
	if got := ExpandTabs("你\tb", 4); got != "你  b" {
		t.Fatalf("expected %q, got %q", "你  b", got)
	}
	if got := ExpandTabs("x\n\ty", 4); got != "x\n    y" {
		t.Fatalf("expected newline to reset the column, got %q", got)
	}
}
