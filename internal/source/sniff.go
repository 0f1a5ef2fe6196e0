package source

import (
	"bytes"
	"unicode/utf8"
)

const (
	sniffSampleSize        = 4096
	nonPrintablePercentMax = 30
)

// LooksLikeText sniffs the head of content and reports whether it is worth
// parsing as Markdown. BOM-marked input is always text; NUL bytes outside
// UTF-16 mean binary.
func LooksLikeText(content []byte) bool {
	sample := content
	if len(sample) > sniffSampleSize {
		sample = sample[:sniffSampleSize]
	}
	if len(sample) == 0 || hasBOM(sample) {
		return true
	}
	if bytes.IndexByte(sample, 0x00) != -1 {
		return false
	}
	if utf8.Valid(sample) {
		return true
	}

	nonPrintable := 0
	for _, b := range sample {
		if !isTextByte(b) {
			nonPrintable++
		}
	}
	return nonPrintable*100/len(sample) < nonPrintablePercentMax
}

func hasBOM(sample []byte) bool {
	return bytes.HasPrefix(sample, utf8BOM) ||
		bytes.HasPrefix(sample, []byte{0xFF, 0xFE}) ||
		bytes.HasPrefix(sample, []byte{0xFE, 0xFF})
}

func isTextByte(b byte) bool {
	switch {
	case b == '\t' || b == '\n' || b == '\r' || b == 0x1B:
		return true
	case b >= 0x20 && b <= 0x7E:
		return true
	default:
		return b >= 0x80
	}
}
