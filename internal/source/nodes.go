package source

import (
	"github.com/yuin/goldmark/ast"
)

// KindSuperscript is the node kind of ^word and ^(some words).
var KindSuperscript = ast.NewNodeKind("Superscript")

type Superscript struct {
	ast.BaseInline
}

func (n *Superscript) Kind() ast.NodeKind {
	return KindSuperscript
}

func (n *Superscript) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, nil, nil)
}

// KindMention is the node kind of /r/name and /u/name references.
var KindMention = ast.NewNodeKind("Mention")

type Mention struct {
	ast.BaseInline
	Name []byte
}

func (n *Mention) Kind() ast.NodeKind {
	return KindMention
}

func (n *Mention) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, map[string]string{"Name": string(n.Name)}, nil)
}

// KindLabeledLink is the node kind of a [label](destination "title") link
// accepted by the scheme allow-list. The label is kept as raw source and
// parsed separately with a restricted inline grammar.
var KindLabeledLink = ast.NewNodeKind("LabeledLink")

type LabeledLink struct {
	ast.BaseInline
	Destination []byte
	Title       []byte
	Label       []byte
}

func (n *LabeledLink) Kind() ast.NodeKind {
	return KindLabeledLink
}

func (n *LabeledLink) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, map[string]string{
		"Destination": string(n.Destination),
		"Title":       string(n.Title),
		"Label":       string(n.Label),
	}, nil)
}
