package doctree

// Inline is a text-level node inside a Text container.
type Inline interface {
	inlineKind() InlineKind
}

type InlineKind int

const (
	InlineRun InlineKind = iota
	InlineSpan
	InlineLink
)

// InlineKindOf reports the kind of in.
func InlineKindOf(in Inline) InlineKind { return in.inlineKind() }

// Run is a leaf of final text.
type Run struct {
	Text       string
	FontFamily FontFamily
	FontWeight FontWeight
}

func (*Run) inlineKind() InlineKind { return InlineRun }

// Span applies a style to its children. A zero SizeScale leaves the size unchanged.
type Span struct {
	FontWeight FontWeight
	Italic     bool
	SizeScale  float64
	Inlines    []Inline
}

func (*Span) inlineKind() InlineKind { return InlineSpan }

// Link is a hyperlink; the target is also registered with the link registrar.
type Link struct {
	Target  string
	Tooltip string
	Inlines []Inline
}

func (*Link) inlineKind() InlineKind { return InlineLink }

// PlainText concatenates the run text under inlines.
func PlainText(inlines []Inline) string {
	var out []byte
	var walk func([]Inline)
	walk = func(nodes []Inline) {
		for _, n := range nodes {
			switch v := n.(type) {
			case *Run:
				out = append(out, v.Text...)
			case *Span:
				walk(v.Inlines)
			case *Link:
				walk(v.Inlines)
			}
		}
	}
	walk(inlines)
	return string(out)
}
