package textutil

import (
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// DisplayWidth reports the printable width of text, measuring grapheme
// clusters so emoji sequences and combining marks count once.
func DisplayWidth(text string) int {
	width := 0
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		width += ClusterWidth(g.Str())
	}
	return width
}

// ClusterWidth reports the column width of a single grapheme cluster.
// Clusters made only of combining marks are zero width.
func ClusterWidth(cluster string) int {
	if cluster == "" {
		return 0
	}
	if utf8.RuneCountInString(cluster) == 1 {
		r, _ := utf8.DecodeRuneInString(cluster)
		if w := runewidth.RuneWidth(r); w > 0 {
			return w
		}
		return 0
	}
	w := uniseg.StringWidth(cluster)
	if w < 0 {
		return 0
	}
	return w
}

const ellipsis = "…"

// TruncateToWidth cuts text at a cluster boundary so it fits maxWidth
// columns, marking the cut with an ellipsis.
func TruncateToWidth(text string, maxWidth int) string {
	if maxWidth <= 0 || text == "" {
		return ""
	}
	if DisplayWidth(text) <= maxWidth {
		return text
	}
	if maxWidth == 1 {
		return ellipsis
	}

	available := maxWidth - 1
	var b strings.Builder
	width := 0
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		w := ClusterWidth(g.Str())
		if width+w > available {
			break
		}
		b.WriteString(g.Str())
		width += w
	}
	b.WriteString(ellipsis)
	return b.String()
}
