package compiler

import (
	"github.com/kk-code-lab/mdview/internal/doctree"
	"github.com/kk-code-lab/mdview/internal/textutil"
)

// trimCursor is shared by the whole inline walk of one block. The first leaf
// that emits text takes the trim and disarms the cursor.
type trimCursor struct {
	armed bool
}

func newTrimCursor() *trimCursor {
	return &trimCursor{armed: true}
}

func (t *trimCursor) take(text string) string {
	if t == nil || !t.armed {
		return text
	}
	t.armed = false
	return textutil.TrimLeadingSpace(text)
}

// strikeInlines rewrites every run under nodes with the strikethrough glyph
// overlay. It runs after the subtree is built; link targets are untouched.
func strikeInlines(nodes []doctree.Inline) {
	for _, n := range nodes {
		switch v := n.(type) {
		case *doctree.Run:
			v.Text = textutil.Strikethrough(v.Text)
		case *doctree.Span:
			strikeInlines(v.Inlines)
		case *doctree.Link:
			strikeInlines(v.Inlines)
		}
	}
}
