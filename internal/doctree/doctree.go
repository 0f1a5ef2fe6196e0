// Package doctree is the presentation-agnostic document tree produced by the
// compiler: block containers, styled inline runs and structural decorations.
//
// Geometry is expressed in device-independent pixels; painters decide how
// those map onto their surface.
package doctree

// Document is the root of a compiled tree.
type Document struct {
	Blocks []Container
}

// Container is a block-level node.
type Container interface {
	containerKind() ContainerKind
}

type ContainerKind int

const (
	ContainerText ContainerKind = iota
	ContainerGrid
	ContainerBox
	ContainerRule
)

// KindOf reports the kind of c.
func KindOf(c Container) ContainerKind { return c.containerKind() }

type FontWeight int

const (
	WeightNormal FontWeight = iota
	WeightBold
)

type FontFamily string

const (
	FamilyDefault   FontFamily = ""
	FamilyMonospace FontFamily = "monospace"
)

// Brush names a colour role; painters resolve it against their theme.
type Brush int

const (
	BrushDefault Brush = iota
	BrushRule
	BrushAccent
	BrushTableBorder
)

type HorizontalAlignment int

const (
	AlignStretch HorizontalAlignment = iota
	AlignLeft
	AlignCenter
	AlignRight
)

// Thickness is a four-sided measurement used for margins, padding and borders.
type Thickness struct {
	Left, Top, Right, Bottom float64
}

// Uniform returns a Thickness with v on every side.
func Uniform(v float64) Thickness {
	return Thickness{Left: v, Top: v, Right: v, Bottom: v}
}

// Text is a paragraph-like container of inline nodes. A zero FontSize
// inherits the surface default.
type Text struct {
	Inlines    []Inline
	Margin     Thickness
	FontWeight FontWeight
	FontSize   float64
	FontFamily FontFamily
	Alignment  HorizontalAlignment
}

func (*Text) containerKind() ContainerKind { return ContainerText }

// Rule is a thin full-width decoration line.
type Rule struct {
	Height float64
	Margin Thickness
	Brush  Brush
}

func (*Rule) containerKind() ContainerKind { return ContainerRule }

// Box wraps a nested block sequence with a border, margin and padding.
type Box struct {
	Blocks          []Container
	Margin          Thickness
	Padding         Thickness
	BorderThickness Thickness
	BorderBrush     Brush
}

func (*Box) containerKind() ContainerKind { return ContainerBox }
