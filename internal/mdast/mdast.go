// Package mdast holds the parsed Markdown tree consumed by the compiler.
//
// Blocks and inlines are closed sets: the marker methods are unexported, so
// only the types declared here satisfy Block and Inline.
package mdast

// Document is the root of a parsed Markdown source.
type Document struct {
	Blocks []Block
}

// Block is a top-level structural unit of a document.
type Block interface {
	blockKind() BlockKind
}

type BlockKind int

const (
	KindParagraph BlockKind = iota
	KindHeading
	KindQuote
	KindCode
	KindList
	KindHorizontalRule
	KindTable
)

// KindOf reports the kind of b.
func KindOf(b Block) BlockKind { return b.blockKind() }

type Paragraph struct {
	Inlines []Inline
}

func (Paragraph) blockKind() BlockKind { return KindParagraph }

type Heading struct {
	Level   int
	Inlines []Inline
}

func (Heading) blockKind() BlockKind { return KindHeading }

type Quote struct {
	Blocks []Block
}

func (Quote) blockKind() BlockKind { return KindQuote }

type Code struct {
	Text string
}

func (Code) blockKind() BlockKind { return KindCode }

type ListStyle int

const (
	Bulleted ListStyle = iota
	Numbered
)

type List struct {
	Style ListStyle
	Items []ListItem
}

type ListItem struct {
	Blocks []Block
}

func (List) blockKind() BlockKind { return KindList }

type HorizontalRule struct{}

func (HorizontalRule) blockKind() BlockKind { return KindHorizontalRule }

type ColumnAlignment int

const (
	AlignLeft ColumnAlignment = iota
	AlignCenter
	AlignRight
)

type ColumnDef struct {
	Alignment ColumnAlignment
}

type TableRow struct {
	Cells []TableCell
}

type TableCell struct {
	Inlines []Inline
}

// Table rows may carry fewer cells than Columns declares.
type Table struct {
	Columns []ColumnDef
	Rows    []TableRow
}

func (Table) blockKind() BlockKind { return KindTable }
