package source

import (
	"bytes"
	"strings"
	"unicode"

	"github.com/yuin/goldmark/ast"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"

	"github.com/kk-code-lab/mdview/internal/mdast"
)

// converter maps a goldmark tree over src onto mdast values.
type converter struct {
	src    []byte
	parser *Parser
}

func (c *converter) blocks(parent ast.Node) []mdast.Block {
	var out []mdast.Block
	for n := parent.FirstChild(); n != nil; n = n.NextSibling() {
		if b := c.block(n); b != nil {
			out = append(out, b)
		}
	}
	return out
}

func (c *converter) block(n ast.Node) mdast.Block {
	switch v := n.(type) {
	case *ast.Paragraph, *ast.TextBlock:
		return mdast.Paragraph{Inlines: c.inlines(n)}
	case *ast.Heading:
		return mdast.Heading{Level: v.Level, Inlines: c.inlines(v)}
	case *ast.Blockquote:
		return mdast.Quote{Blocks: c.blocks(v)}
	case *ast.FencedCodeBlock, *ast.CodeBlock, *ast.HTMLBlock:
		return mdast.Code{Text: c.lines(n)}
	case *ast.List:
		list := mdast.List{Style: mdast.Bulleted}
		if v.IsOrdered() {
			list.Style = mdast.Numbered
		}
		for item := v.FirstChild(); item != nil; item = item.NextSibling() {
			list.Items = append(list.Items, mdast.ListItem{Blocks: c.blocks(item)})
		}
		return list
	case *ast.ThematicBreak:
		return mdast.HorizontalRule{}
	case *extast.Table:
		return c.table(v)
	default:
		return nil
	}
}

func (c *converter) lines(n ast.Node) string {
	var b strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		b.Write(seg.Value(c.src))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (c *converter) table(t *extast.Table) mdast.Table {
	out := mdast.Table{Columns: make([]mdast.ColumnDef, len(t.Alignments))}
	for i, a := range t.Alignments {
		out.Columns[i] = mdast.ColumnDef{Alignment: columnAlignment(a)}
	}
	for row := t.FirstChild(); row != nil; row = row.NextSibling() {
		var r mdast.TableRow
		for cell := row.FirstChild(); cell != nil; cell = cell.NextSibling() {
			r.Cells = append(r.Cells, mdast.TableCell{Inlines: c.inlines(cell)})
		}
		out.Rows = append(out.Rows, r)
	}
	return out
}

func columnAlignment(a extast.Alignment) mdast.ColumnAlignment {
	switch a {
	case extast.AlignCenter:
		return mdast.AlignCenter
	case extast.AlignRight:
		return mdast.AlignRight
	default:
		return mdast.AlignLeft
	}
}

func (c *converter) inlines(parent ast.Node) []mdast.Inline {
	var out []mdast.Inline
	for n := parent.FirstChild(); n != nil; n = n.NextSibling() {
		out = c.appendInline(out, n)
	}
	return out
}

func (c *converter) appendInline(dst []mdast.Inline, n ast.Node) []mdast.Inline {
	switch v := n.(type) {
	case *ast.Text:
		dst = appendText(dst, c.textValue(v))
		if v.HardLineBreak() {
			dst = appendText(dst, "\n")
		} else if v.SoftLineBreak() {
			dst = appendText(dst, " ")
		}
		return dst
	case *ast.String:
		return appendText(dst, string(v.Value))
	case *ast.Emphasis:
		if v.Level >= 2 {
			return append(dst, mdast.Bold{Inlines: c.inlines(v)})
		}
		return append(dst, mdast.Italic{Inlines: c.inlines(v)})
	case *extast.Strikethrough:
		return append(dst, mdast.Strikethrough{Inlines: c.inlines(v)})
	case *Superscript:
		return append(dst, mdast.Superscript{Inlines: c.inlines(v)})
	case *ast.CodeSpan:
		return append(dst, mdast.CodeSpan{Text: c.codeSpanText(v)})
	case *LabeledLink:
		return append(dst, mdast.MarkdownLink{
			URL:     string(v.Destination),
			Tooltip: string(v.Title),
			Inlines: c.label(v.Label),
		})
	case *ast.Link:
		return c.appendLink(dst, string(v.Destination), string(v.Title), v)
	case *ast.Image:
		return c.appendLink(dst, string(v.Destination), string(v.Title), v)
	case *ast.AutoLink:
		url := string(v.URL(c.src))
		if c.parser.schemes.Allowed(url) {
			return append(dst, mdast.RawHyperlink{URL: url})
		}
		c.parser.log.LinkRejected(url)
		return appendText(dst, string(v.Label(c.src)))
	case *Mention:
		return append(dst, mdast.RawMention{Text: string(v.Name)})
	case *ast.RawHTML:
		return appendText(dst, string(v.Segments.Value(c.src)))
	default:
		for child := n.FirstChild(); child != nil; child = child.NextSibling() {
			dst = c.appendInline(dst, child)
		}
		return dst
	}
}

// appendLink keeps links with an allowed destination and flattens the rest
// into their label.
func (c *converter) appendLink(dst []mdast.Inline, dest, title string, n ast.Node) []mdast.Inline {
	children := c.inlines(n)
	if c.parser.schemes.Allowed(dest) {
		return append(dst, mdast.MarkdownLink{URL: dest, Tooltip: title, Inlines: children})
	}
	c.parser.log.LinkRejected(dest)
	for _, in := range children {
		dst = appendInline(dst, in)
	}
	return dst
}

func (c *converter) textValue(t *ast.Text) string {
	value := t.Value(c.src)
	if !t.IsRaw() {
		value = util.UnescapePunctuations(value)
		value = util.ResolveNumericReferences(value)
		value = util.ResolveEntityNames(value)
	}
	return string(value)
}

func (c *converter) codeSpanText(n *ast.CodeSpan) string {
	var b strings.Builder
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		switch v := child.(type) {
		case *ast.Text:
			b.Write(v.Segment.Value(c.src))
		case *ast.String:
			b.Write(v.Value)
		}
	}
	return b.String()
}

// label parses a link label with the restricted label grammar. Surrounding
// whitespace is kept as literal text.
func (c *converter) label(raw []byte) []mdast.Inline {
	body := bytes.TrimLeftFunc(raw, unicode.IsSpace)
	lead := raw[:len(raw)-len(body)]
	body = bytes.TrimRightFunc(body, unicode.IsSpace)
	trail := raw[len(lead)+len(body):]
	if len(body) == 0 {
		return appendText(nil, string(raw))
	}

	root := c.parser.label.Parse(text.NewReader(body))
	sub := &converter{src: body, parser: c.parser}
	out := appendText(nil, string(lead))
	for para := root.FirstChild(); para != nil; para = para.NextSibling() {
		for _, in := range sub.inlines(para) {
			out = appendInline(out, in)
		}
	}
	return appendText(out, string(trail))
}

func appendInline(dst []mdast.Inline, in mdast.Inline) []mdast.Inline {
	if run, ok := in.(mdast.TextRun); ok {
		return appendText(dst, run.Text)
	}
	return append(dst, in)
}

// appendText merges s into a trailing text run.
func appendText(dst []mdast.Inline, s string) []mdast.Inline {
	if s == "" {
		return dst
	}
	if n := len(dst); n > 0 {
		if last, ok := dst[n-1].(mdast.TextRun); ok {
			dst[n-1] = mdast.TextRun{Text: last.Text + s}
			return dst
		}
	}
	return append(dst, mdast.TextRun{Text: s})
}
