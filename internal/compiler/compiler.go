// Package compiler turns a parsed Markdown tree into a document tree.
//
// Compilation is a single synchronous pass. The input is never mutated and
// the output is freshly allocated on every call; the only side effect is
// registering each produced link with the injected LinkRegistrar.
package compiler

import (
	"github.com/kk-code-lab/mdview/internal/doctree"
	"github.com/kk-code-lab/mdview/internal/logger"
	"github.com/kk-code-lab/mdview/internal/mdast"
)

// LinkRegistrar receives every link node the compiler produces, once each.
type LinkRegistrar interface {
	RegisterLink(link *doctree.Link, target string)
}

// Compiler holds the collaborators of a compile pass. It keeps no state
// between calls and may be reused.
type Compiler struct {
	links binder
	log   *logger.Logger
}

// Option configures a Compiler.
type Option func(*Compiler)

// WithLogger routes diagnostics (ragged tables) to l.
func WithLogger(l *logger.Logger) Option {
	return func(c *Compiler) {
		if l != nil {
			c.log = l
		}
	}
}

// New creates a Compiler. links may be nil when link targets are not needed.
func New(links LinkRegistrar, opts ...Option) *Compiler {
	c := &Compiler{
		links: binder{registrar: links},
		log:   logger.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compile walks the top-level blocks of doc into a new document tree.
func (c *Compiler) Compile(doc mdast.Document) *doctree.Document {
	out := &doctree.Document{}
	for _, b := range doc.Blocks {
		out.Blocks = c.appendBlock(out.Blocks, b)
	}
	return out
}

// compileBlocks compiles a nested block sequence, e.g. a quote body or a
// list item.
func (c *Compiler) compileBlocks(blocks []mdast.Block) []doctree.Container {
	out := make([]doctree.Container, 0, len(blocks))
	for _, b := range blocks {
		out = c.appendBlock(out, b)
	}
	return out
}
