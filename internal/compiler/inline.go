package compiler

import (
	"fmt"

	"github.com/kk-code-lab/mdview/internal/doctree"
	"github.com/kk-code-lab/mdview/internal/mdast"
)

const superscriptScale = 0.8

func (c *Compiler) appendInlines(dst []doctree.Inline, inlines []mdast.Inline, trim *trimCursor) []doctree.Inline {
	for _, in := range inlines {
		if in == nil {
			continue
		}
		dst = append(dst, c.compileInline(in, trim))
	}
	return dst
}

func (c *Compiler) compileInline(in mdast.Inline, trim *trimCursor) doctree.Inline {
	switch v := in.(type) {
	case mdast.TextRun:
		return &doctree.Run{Text: trim.take(v.Text)}
	case mdast.Bold:
		return &doctree.Span{
			FontWeight: doctree.WeightBold,
			Inlines:    c.appendInlines(nil, v.Inlines, trim),
		}
	case mdast.Italic:
		return &doctree.Span{
			Italic:  true,
			Inlines: c.appendInlines(nil, v.Inlines, trim),
		}
	case mdast.Superscript:
		return &doctree.Span{
			SizeScale: superscriptScale,
			Inlines:   c.appendInlines(nil, v.Inlines, trim),
		}
	case mdast.Strikethrough:
		span := &doctree.Span{Inlines: c.appendInlines(nil, v.Inlines, trim)}
		strikeInlines(span.Inlines)
		return span
	case mdast.CodeSpan:
		return &doctree.Run{Text: v.Text, FontFamily: doctree.FamilyMonospace}
	case mdast.MarkdownLink:
		link := &doctree.Link{Target: v.URL, Tooltip: v.Tooltip}
		c.links.bind(link, v.URL)
		link.Inlines = c.appendInlines(nil, v.Inlines, trim)
		return link
	case mdast.RawHyperlink:
		link := &doctree.Link{
			Target:  v.URL,
			Inlines: []doctree.Inline{&doctree.Run{Text: trim.take(v.URL)}},
		}
		return c.links.bind(link, v.URL)
	case mdast.RawMention:
		link := &doctree.Link{
			Target:  v.Text,
			Inlines: []doctree.Inline{&doctree.Run{Text: trim.take(v.Text)}},
		}
		return c.links.bind(link, v.Text)
	default:
		panic(fmt.Sprintf("compiler: unknown inline %T", in))
	}
}
