package source

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/kk-code-lab/mdview/internal/mdast"
)

func parseInlines(t *testing.T, p *Parser, src string) []mdast.Inline {
	t.Helper()
	doc := p.Parse([]byte(src))
	if len(doc.Blocks) != 1 {
		t.Fatalf("expected 1 block for %q, got %d", src, len(doc.Blocks))
	}
	para, ok := doc.Blocks[0].(mdast.Paragraph)
	if !ok {
		t.Fatalf("expected paragraph for %q, got %T", src, doc.Blocks[0])
	}
	return para.Inlines
}

func link(url, tooltip string, inlines ...mdast.Inline) mdast.MarkdownLink {
	return mdast.MarkdownLink{URL: url, Tooltip: tooltip, Inlines: inlines}
}

func textRun(s string) mdast.TextRun {
	return mdast.TextRun{Text: s}
}

func TestLabeledLinks(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []mdast.Inline
	}{
		{"simple", "[reddit](http://reddit.com)",
			[]mdast.Inline{link("http://reddit.com", "", textRun("reddit"))}},
		{"spaced relative", "[reddit] ( /blog )",
			[]mdast.Inline{link("/blog", "", textRun("reddit"))}},
		{"space before paren", "[reddit] (http://reddit.com)",
			[]mdast.Inline{link("http://reddit.com", "", textRun("reddit"))}},
		{"whitespace in url", "[text](  http://reddit.com  )",
			[]mdast.Inline{link("http://reddit.com", "", textRun("text"))}},
		{"nested brackets", "[one [two] three](http://reddit.com)",
			[]mdast.Inline{link("http://reddit.com", "", textRun("one [two] three"))}},
		{"label keeps whitespace", "start[ middle ](http://reddit.com)end",
			[]mdast.Inline{textRun("start"), link("http://reddit.com", "", textRun(" middle ")), textRun("end")}},
		{"bold label", "[red**dit**](http://reddit.com)",
			[]mdast.Inline{link("http://reddit.com", "", textRun("red"), mdast.Bold{Inlines: []mdast.Inline{textRun("dit")}})}},
		{"label is not linkified", "[/r/test](http://reddit.com)",
			[]mdast.Inline{link("http://reddit.com", "", textRun("/r/test"))}},
		{"tooltip", `[Wikipedia](http://en.wikipedia.org "tooltip text")`,
			[]mdast.Inline{link("http://en.wikipedia.org", "tooltip text", textRun("Wikipedia"))}},
		{"escaped parens", `[test](http://en.wikipedia.org/wiki/Pica_\(disorder\))`,
			[]mdast.Inline{link("http://en.wikipedia.org/wiki/Pica_(disorder)", "", textRun("test"))}},
		{"invalid url", "[text](ha)",
			[]mdast.Inline{textRun("[text](ha)")}},
		{"unknown scheme", "[text](hahaha://test)",
			[]mdast.Inline{textRun("[text](hahaha://test)")}},
		{"protocol relative", "[text](//evil.example)",
			[]mdast.Inline{textRun("[text](//evil.example)")}},
	}
	p := NewParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseInlines(t, p, tt.src)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("inlines mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAllDefaultSchemesLink(t *testing.T) {
	p := NewParser()
	for _, scheme := range DefaultSchemes {
		url := scheme + "://reddit.com"
		got := parseInlines(t, p, "[text]("+url+")")
		want := []mdast.Inline{link(url, "", textRun("text"))}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("%s mismatch (-want +got):\n%s", scheme, diff)
		}
	}
}

func TestCustomSchemeSet(t *testing.T) {
	p := NewParser(WithSchemes(NewSchemeSet([]string{"gopher"}, false)))
	got := parseInlines(t, p, "[a](gopher://x) [b](/blog)")
	want := []mdast.Inline{link("gopher://x", "", textRun("a")), textRun(" [b](/blog)")}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("inlines mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"gopher"}, p.Schemes().Names()); diff != "" {
		t.Fatalf("schemes mismatch (-want +got):\n%s", diff)
	}
	if names := NewParser().Schemes().Names(); len(names) != len(DefaultSchemes) {
		t.Fatalf("expected default schemes, got %v", names)
	}
}

func TestInlineConstructs(t *testing.T) {
	p := NewParser()
	got := parseInlines(t, p, "*it* **bold** ~~gone~~ `code` ^up ^(two words) /r/golang and https://go.dev")
	want := []mdast.Inline{
		mdast.Italic{Inlines: []mdast.Inline{textRun("it")}},
		textRun(" "),
		mdast.Bold{Inlines: []mdast.Inline{textRun("bold")}},
		textRun(" "),
		mdast.Strikethrough{Inlines: []mdast.Inline{textRun("gone")}},
		textRun(" "),
		mdast.CodeSpan{Text: "code"},
		textRun(" "),
		mdast.Superscript{Inlines: []mdast.Inline{textRun("up")}},
		textRun(" "),
		mdast.Superscript{Inlines: []mdast.Inline{textRun("two words")}},
		textRun(" "),
		mdast.RawMention{Text: "/r/golang"},
		textRun(" and "),
		mdast.RawHyperlink{URL: "https://go.dev"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("inlines mismatch (-want +got):\n%s", diff)
	}
}

func TestMentionNeedsWordBoundary(t *testing.T) {
	got := parseInlines(t, NewParser(), "and/r/golang")
	want := []mdast.Inline{textRun("and/r/golang")}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("inlines mismatch (-want +got):\n%s", diff)
	}
}

func TestStandardLinkIsAllowListed(t *testing.T) {
	p := NewParser()
	got := parseInlines(t, p, "![alt](javascript:alert)")
	if diff := cmp.Diff([]mdast.Inline{textRun("alt")}, got); diff != "" {
		t.Fatalf("inlines mismatch (-want +got):\n%s", diff)
	}
}

func TestSoftBreakBecomesSpace(t *testing.T) {
	got := parseInlines(t, NewParser(), "one\ntwo")
	if diff := cmp.Diff([]mdast.Inline{textRun("one two")}, got); diff != "" {
		t.Fatalf("inlines mismatch (-want +got):\n%s", diff)
	}
}

func TestBlockMapping(t *testing.T) {
	src := "# Title\n\n" +
		"> quoted\n\n" +
		"```\ncode line\n```\n\n" +
		"1. first\n2. second\n\n" +
		"- bullet\n\n" +
		"---\n\n" +
		"| a | b |\n|:-:|--:|\n| 1 |\n"
	doc := NewParser().Parse([]byte(src))
	want := []mdast.Block{
		mdast.Heading{Level: 1, Inlines: []mdast.Inline{textRun("Title")}},
		mdast.Quote{Blocks: []mdast.Block{mdast.Paragraph{Inlines: []mdast.Inline{textRun("quoted")}}}},
		mdast.Code{Text: "code line"},
		mdast.List{Style: mdast.Numbered, Items: []mdast.ListItem{
			{Blocks: []mdast.Block{mdast.Paragraph{Inlines: []mdast.Inline{textRun("first")}}}},
			{Blocks: []mdast.Block{mdast.Paragraph{Inlines: []mdast.Inline{textRun("second")}}}},
		}},
		mdast.List{Style: mdast.Bulleted, Items: []mdast.ListItem{
			{Blocks: []mdast.Block{mdast.Paragraph{Inlines: []mdast.Inline{textRun("bullet")}}}},
		}},
		mdast.HorizontalRule{},
		mdast.Table{
			Columns: []mdast.ColumnDef{{Alignment: mdast.AlignCenter}, {Alignment: mdast.AlignRight}},
			Rows: []mdast.TableRow{
				{Cells: []mdast.TableCell{{Inlines: []mdast.Inline{textRun("a")}}, {Inlines: []mdast.Inline{textRun("b")}}}},
				{Cells: []mdast.TableCell{{Inlines: []mdast.Inline{textRun("1")}}, {}}},
			},
		},
	}
	if diff := cmp.Diff(want, doc.Blocks); diff != "" {
		t.Fatalf("blocks mismatch (-want +got):\n%s", diff)
	}
}
