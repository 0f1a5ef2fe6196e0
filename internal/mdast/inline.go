package mdast

// Inline is a unit of styled or linked text nested within a block.
type Inline interface {
	inlineKind() InlineKind
}

type InlineKind int

const (
	KindTextRun InlineKind = iota
	KindBold
	KindItalic
	KindStrikethrough
	KindSuperscript
	KindCodeSpan
	KindMarkdownLink
	KindRawHyperlink
	KindRawMention
)

// InlineKindOf reports the kind of in.
func InlineKindOf(in Inline) InlineKind { return in.inlineKind() }

type TextRun struct {
	Text string
}

func (TextRun) inlineKind() InlineKind { return KindTextRun }

type Bold struct {
	Inlines []Inline
}

func (Bold) inlineKind() InlineKind { return KindBold }

type Italic struct {
	Inlines []Inline
}

func (Italic) inlineKind() InlineKind { return KindItalic }

type Strikethrough struct {
	Inlines []Inline
}

func (Strikethrough) inlineKind() InlineKind { return KindStrikethrough }

type Superscript struct {
	Inlines []Inline
}

func (Superscript) inlineKind() InlineKind { return KindSuperscript }

// CodeSpan is inline code; its text is used verbatim.
type CodeSpan struct {
	Text string
}

func (CodeSpan) inlineKind() InlineKind { return KindCodeSpan }

// MarkdownLink is a [label](url "tooltip") link.
type MarkdownLink struct {
	URL     string
	Tooltip string
	Inlines []Inline
}

func (MarkdownLink) inlineKind() InlineKind { return KindMarkdownLink }

// RawHyperlink is a bare URL found in text; the URL doubles as its label.
type RawHyperlink struct {
	URL string
}

func (RawHyperlink) inlineKind() InlineKind { return KindRawHyperlink }

// RawMention is a /r/name or /u/name reference; the text doubles as its target.
type RawMention struct {
	Text string
}

func (RawMention) inlineKind() InlineKind { return KindRawMention }
