package textutil

import "strings"

// bidiControlLabels are direction overrides that can reorder what a reader
// sees; painted text shows them as labels.
var bidiControlLabels = map[rune]string{
	0x061C: "⟪ALM⟫",
	0x200E: "⟪LRM⟫",
	0x200F: "⟪RLM⟫",
	0x202A: "⟪LRE⟫",
	0x202B: "⟪RLE⟫",
	0x202C: "⟪PDF⟫",
	0x202D: "⟪LRO⟫",
	0x202E: "⟪RLO⟫",
	0x2066: "⟪LRI⟫",
	0x2067: "⟪RLI⟫",
	0x2068: "⟪FSI⟫",
	0x2069: "⟪PDI⟫",
}

// invisibleRunes have no glyph and are dropped from painted text.
var invisibleRunes = map[rune]struct{}{
	0x00AD: {}, // soft hyphen
	0x180E: {},
	0x200B: {},
	0x2028: {},
	0x2029: {},
	0x2060: {},
	0x206A: {},
	0x206B: {},
	0x206C: {},
	0x206D: {},
	0x206E: {},
	0x206F: {},
	0xFEFF: {},
}

// SanitizeTerminalText replaces control characters so document text cannot
// inject terminal escape sequences when painted. Bidi controls become visible
// labels and invisible formatters are dropped. Joiners and combining marks
// pass through since they shape grapheme clusters.
func SanitizeTerminalText(text string) string {
	for _, r := range text {
		if requiresSanitization(r) {
			return sanitize(text)
		}
	}
	return text
}

func requiresSanitization(r rune) bool {
	if _, ok := bidiControlLabels[r]; ok {
		return true
	}
	if _, ok := invisibleRunes[r]; ok {
		return true
	}
	return isControlRune(r)
}

func isControlRune(r rune) bool {
	return r < 0x20 || r == 0x7f || (r >= 0x80 && r < 0xa0)
}

// HasControlRunes reports whether text contains C0 or C1 control characters
// or DEL, any of which can start a terminal escape sequence.
func HasControlRunes(text string) bool {
	return strings.IndexFunc(text, isControlRune) >= 0
}

func sanitize(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if label, ok := bidiControlLabels[r]; ok {
			b.WriteString(label)
			continue
		}
		if _, ok := invisibleRunes[r]; ok {
			continue
		}
		switch {
		case r == '\t', r == '\n', r == '\r':
			b.WriteByte(' ')
		case isControlRune(r):
			b.WriteByte('?')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// HasFormattingRunes reports whether text contains bidi, zero-width or joiner
// runes. Link destinations carrying any of them are refused.
func HasFormattingRunes(text string) bool {
	for _, r := range text {
		if isFormattingRune(r) {
			return true
		}
	}
	return false
}

func isFormattingRune(r rune) bool {
	if r == 0x200C || r == 0x200D {
		return true
	}
	if _, ok := bidiControlLabels[r]; ok {
		return true
	}
	_, ok := invisibleRunes[r]
	return ok
}
