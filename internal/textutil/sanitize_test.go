package textutil

import (
	"strings"
	"testing"
)

func TestSanitizeTerminalTextLeavesSafeInput(t *testing.T) {
	input := "plain *markdown* text"
	if got := SanitizeTerminalText(input); got != input {
		t.Fatalf("expected %q to remain untouched, got %q", input, got)
	}
}

func TestSanitizeTerminalTextReplacesControlSequences(t *testing.T) {
	input := "bad\x1b[31m\nline\u009b"
	got := SanitizeTerminalText(input)
	if got != "bad?[31m line?" {
		t.Fatalf("expected sanitized string \"bad?[31m line?\", got %q", got)
	}
	if containsControl(got) {
		t.Fatalf("sanitized text should not contain control characters: %q", got)
	}
}

func TestSanitizeTerminalTextLabelsBidiAndDropsInvisibles(t *testing.T) {
	input := "a\u202eb\u200bc\u00add"
	got := SanitizeTerminalText(input)
	if got != "a⟪RLO⟫bcd" {
		t.Fatalf("expected %q, got %q", "a⟪RLO⟫bcd", got)
	}
}

func TestSanitizeTerminalTextKeepsClusters(t *testing.T) {
	for _, input := range []string{
		Strikethrough("ab"),
		"\U0001f468\u200d\U0001f469\u200d\U0001f467",
	} {
		if got := SanitizeTerminalText(input); got != input {
			t.Fatalf("expected %q to survive, got %q", input, got)
		}
	}
}

func TestHasFormattingRunes(t *testing.T) {
	if HasFormattingRunes("https://example.com/path") {
		t.Fatalf("expected plain text to have no formatting runes")
	}
	for _, r := range []rune{0x2067, 0x200b, 0x200d, 0xfeff} {
		if !HasFormattingRunes("hi" + string(r)) {
			t.Fatalf("expected %U to be detected", r)
		}
	}
}

func containsControl(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool {
		return r < 0x20 || r == 0x7f
	}) >= 0
}

func TestHasControlRunes(t *testing.T) {
	for _, text := range []string{"a\x1bb", "bell\x07", "del\x7f", "csi\u009b"} {
		if !HasControlRunes(text) {
			t.Fatalf("expected control runes in %q", text)
		}
	}
	if HasControlRunes("plain é text") {
		t.Fatalf("expected no control runes in plain text")
	}
}
