// Package source adapts goldmark to produce the mdast tree consumed by the
// compiler.
package source

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"

	"github.com/kk-code-lab/mdview/internal/logger"
	"github.com/kk-code-lab/mdview/internal/mdast"
)

// Parser turns Markdown source into an mdast.Document.
type Parser struct {
	md      goldmark.Markdown
	label   parser.Parser
	schemes *SchemeSet
	log     *logger.Logger
}

// Option configures a Parser.
type Option func(*Parser)

// WithSchemes replaces the default link allow-list.
func WithSchemes(s *SchemeSet) Option {
	return func(p *Parser) {
		if s != nil {
			p.schemes = s
		}
	}
}

func WithLogger(l *logger.Logger) Option {
	return func(p *Parser) {
		if l != nil {
			p.log = l
		}
	}
}

func NewParser(opts ...Option) *Parser {
	p := &Parser{
		schemes: DefaultSchemeSet(),
		log:     logger.Discard(),
	}
	for _, opt := range opts {
		opt(p)
	}

	superscript := &superscriptParser{}
	p.md = goldmark.New(
		goldmark.WithExtensions(
			extension.Table,
			extension.Strikethrough,
			extension.Linkify,
		),
		goldmark.WithParserOptions(
			parser.WithInlineParsers(
				util.Prioritized(&labeledLinkParser{schemes: p.schemes, log: p.log}, labeledLinkPriority),
				util.Prioritized(&mentionParser{}, mentionPriority),
				util.Prioritized(superscript, superscriptPriority),
			),
		),
	)

	// Link labels only support emphasis, code, strikethrough and superscript.
	p.label = parser.NewParser(
		parser.WithBlockParsers(
			util.Prioritized(parser.NewParagraphParser(), 1000),
		),
		parser.WithInlineParsers(
			util.Prioritized(parser.NewCodeSpanParser(), 100),
			util.Prioritized(extension.NewStrikethroughParser(), 500),
			util.Prioritized(parser.NewEmphasisParser(), 500),
			util.Prioritized(superscript, superscriptPriority),
		),
	)
	return p
}

// Schemes returns the allow-list in use.
func (p *Parser) Schemes() *SchemeSet {
	return p.schemes
}

// Parse converts src, which should already be passed through Decode.
func (p *Parser) Parse(src []byte) mdast.Document {
	root := p.md.Parser().Parse(text.NewReader(src))
	c := &converter{src: src, parser: p}
	return mdast.Document{Blocks: c.blocks(root)}
}
