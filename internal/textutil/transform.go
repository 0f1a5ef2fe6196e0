package textutil

import (
	"strings"
	"unicode"
)

// StrikeMark is U+0336 COMBINING LONG STROKE OVERLAY.
const StrikeMark = '\u0336'

// TrimLeadingSpace strips leading whitespace only.
func TrimLeadingSpace(text string) string {
	return strings.TrimLeftFunc(text, unicode.IsSpace)
}

// Strikethrough interleaves StrikeMark before every rune of text, so the
// result holds twice as many runes.
func Strikethrough(text string) string {
	if text == "" {
		return text
	}
	var b strings.Builder
	b.Grow(len(text) * 3)
	for _, r := range text {
		b.WriteRune(StrikeMark)
		b.WriteRune(r)
	}
	return b.String()
}
