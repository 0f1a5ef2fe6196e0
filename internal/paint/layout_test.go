package paint

import (
	"strings"
	"testing"

	"github.com/kk-code-lab/mdview/internal/compiler"
	"github.com/kk-code-lab/mdview/internal/doctree"
	"github.com/kk-code-lab/mdview/internal/mdast"
)

func compile(blocks ...mdast.Block) *doctree.Document {
	return compiler.New(nil).Compile(mdast.Document{Blocks: blocks})
}

func para(text string) mdast.Paragraph {
	return mdast.Paragraph{Inlines: []mdast.Inline{mdast.TextRun{Text: text}}}
}

func lines(c *Canvas) []string {
	return strings.Split(c.String(), "\n")
}

func TestParagraphsAreSeparatedByOneBlankLine(t *testing.T) {
	c := Layout(compile(para("first"), para("second")), 40, DefaultOptions())
	got := lines(c)
	want := []string{"first", "", "second"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestTextWrapsAtWordBoundaries(t *testing.T) {
	c := Layout(compile(para("the quick brown fox jumps")), 10, DefaultOptions())
	want := []string{"the quick", "brown fox", "jumps"}
	if got := lines(c); strings.Join(got, "|") != strings.Join(want, "|") {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestLongWordBreaksOnClusters(t *testing.T) {
	c := Layout(compile(para("abcdefgh")), 3, DefaultOptions())
	want := []string{"abc", "def", "gh"}
	if got := lines(c); strings.Join(got, "|") != strings.Join(want, "|") {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestWideClustersTakeTwoCells(t *testing.T) {
	c := Layout(compile(para("你好")), 10, DefaultOptions())
	if got := c.At(0, 0); got.Text != "你" || got.Width != 2 {
		t.Fatalf("expected wide first cell, got %+v", got)
	}
	if !c.At(1, 0).Cont {
		t.Fatalf("expected continuation cell at x=1")
	}
	if c.At(2, 0).Text != "好" {
		t.Fatalf("expected second cluster at x=2, got %+v", c.At(2, 0))
	}
}

func TestHardBreakAndControlText(t *testing.T) {
	c := Layout(compile(para("one\ntwo\x1b[0m")), 20, DefaultOptions())
	want := []string{"one", "two?[0m"}
	if got := lines(c); strings.Join(got, "|") != strings.Join(want, "|") {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestStrikethroughMarksStayInCells(t *testing.T) {
	doc := compile(mdast.Paragraph{Inlines: []mdast.Inline{
		mdast.Strikethrough{Inlines: []mdast.Inline{mdast.TextRun{Text: "ab"}}},
	}})
	c := Layout(doc, 10, DefaultOptions())
	if got := c.At(0, 0).Text; got != "a\u0336" {
		t.Fatalf("expected mark attached to a, got %q", got)
	}
	if got := c.At(1, 0).Text; got != "b" {
		t.Fatalf("expected b, got %q", got)
	}
}

func TestBulletedListPlacesMarkers(t *testing.T) {
	doc := compile(mdast.List{Items: []mdast.ListItem{
		{Blocks: []mdast.Block{para("alpha")}},
		{Blocks: []mdast.Block{para("beta")}},
	}})
	want := []string{"    • alpha", "    • beta"}
	if got := lines(Layout(doc, 30, DefaultOptions())); strings.Join(got, "|") != strings.Join(want, "|") {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestNumberedListWrapsInsideContentColumn(t *testing.T) {
	doc := compile(mdast.List{Style: mdast.Numbered, Items: []mdast.ListItem{
		{Blocks: []mdast.Block{para("aaa bbb")}},
	}})
	want := []string{"   1.  aaa", "       bbb"}
	if got := lines(Layout(doc, 10, DefaultOptions())); strings.Join(got, "|") != strings.Join(want, "|") {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func tableCell(s string) mdast.TableCell {
	return mdast.TableCell{Inlines: []mdast.Inline{mdast.TextRun{Text: s}}}
}

func TestTableBordersAndJunctions(t *testing.T) {
	doc := compile(mdast.Table{
		Columns: []mdast.ColumnDef{{}, {Alignment: mdast.AlignRight}},
		Rows: []mdast.TableRow{
			{Cells: []mdast.TableCell{tableCell("a"), tableCell("bb")}},
			{Cells: []mdast.TableCell{tableCell("1"), tableCell("2")}},
		},
	})
	c := Layout(doc, 40, DefaultOptions())
	want := []string{
		"┌────┬─────┐",
		"│  a │  bb │",
		"├────┼─────┤",
		"│  1 │   2 │",
		"└────┴─────┘",
	}
	if got := lines(c); strings.Join(got, "\n") != strings.Join(want, "\n") {
		t.Fatalf("expected\n%s\ngot\n%s", strings.Join(want, "\n"), strings.Join(got, "\n"))
	}
	if !c.At(3, 1).Style.Bold {
		t.Fatalf("expected header cell to be bold")
	}
	if c.At(0, 0).Style.Brush != doctree.BrushTableBorder {
		t.Fatalf("expected border brush on corner")
	}
}

func TestTableColumnsClampToWidth(t *testing.T) {
	doc := compile(mdast.Table{
		Columns: []mdast.ColumnDef{{}, {}},
		Rows: []mdast.TableRow{
			{Cells: []mdast.TableCell{tableCell("short"), tableCell("a much longer header cell")}},
		},
	})
	c := Layout(doc, 24, DefaultOptions())
	for y := 0; y < c.Height(); y++ {
		if w := len([]rune(c.Line(y))); w > 24 {
			t.Fatalf("line %d exceeds width: %q", y, c.Line(y))
		}
	}
	if c.Height() <= 3 {
		t.Fatalf("expected the long cell to wrap, got height %d", c.Height())
	}
}

func TestQuoteDrawsLeftBorder(t *testing.T) {
	doc := compile(mdast.Quote{Blocks: []mdast.Block{para("quoted"), para("more")}})
	c := Layout(doc, 30, DefaultOptions())
	want := []string{"  │  quoted", "  │", "  │  more"}
	if got := lines(c); strings.Join(got, "|") != strings.Join(want, "|") {
		t.Fatalf("expected %q, got %q", want, got)
	}
	if c.At(2, 0).Style.Brush != doctree.BrushAccent {
		t.Fatalf("expected accent brush on quote border")
	}
}

func TestRuleSpansWidth(t *testing.T) {
	c := Layout(compile(mdast.HorizontalRule{}), 5, DefaultOptions())
	if got := c.Line(0); got != "─────" {
		t.Fatalf("expected full-width rule, got %q", got)
	}
}

func TestCodeBlockIsIndentedAndTabsExpand(t *testing.T) {
	doc := compile(para("x"), mdast.Code{Text: "a\tb"})
	want := []string{"x", "", "  a   b"}
	if got := lines(Layout(doc, 30, DefaultOptions())); strings.Join(got, "|") != strings.Join(want, "|") {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestLinkAtResolvesLinkCells(t *testing.T) {
	doc := compile(mdast.Paragraph{Inlines: []mdast.Inline{
		mdast.TextRun{Text: "see "},
		mdast.MarkdownLink{URL: "https://go.dev", Inlines: []mdast.Inline{mdast.TextRun{Text: "宇宙"}}},
	}})
	c := Layout(doc, 30, DefaultOptions())
	if c.LinkAt(0, 0) != nil {
		t.Fatalf("expected plain text before link")
	}
	for x := 4; x < 8; x++ {
		link := c.LinkAt(x, 0)
		if link == nil || link.Target != "https://go.dev" {
			t.Fatalf("expected link at x=%d, got %+v", x, link)
		}
		if !c.At(x, 0).Style.Link {
			t.Fatalf("expected link style at x=%d", x)
		}
	}
	if c.LinkAt(8, 0) != nil || c.LinkAt(0, 5) != nil {
		t.Fatalf("expected no link outside the label")
	}
}

func TestHeadingStyleFromSize(t *testing.T) {
	doc := compile(mdast.Heading{Level: 1, Inlines: []mdast.Inline{mdast.TextRun{Text: "Title"}}})
	cell := Layout(doc, 20, DefaultOptions()).At(0, 0)
	if cell.Style.Heading != 1 || !cell.Style.Bold {
		t.Fatalf("expected bold level-1 heading style, got %+v", cell.Style)
	}
}
