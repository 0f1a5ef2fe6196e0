package source

import (
	"bytes"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Decode turns raw file bytes into NFC-normalized UTF-8. A UTF-8 BOM is
// dropped and UTF-16 input with a byte order mark is transcoded.
func Decode(content []byte) []byte {
	switch {
	case bytes.HasPrefix(content, utf8BOM):
		content = content[len(utf8BOM):]
	case bytes.HasPrefix(content, []byte{0xFF, 0xFE}), bytes.HasPrefix(content, []byte{0xFE, 0xFF}):
		decoder := unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM).NewDecoder()
		if decoded, _, err := transform.Bytes(decoder, content); err == nil {
			content = decoded
		}
	}
	content = bytes.ReplaceAll(content, []byte("\r\n"), []byte("\n"))
	return norm.NFC.Bytes(content)
}
