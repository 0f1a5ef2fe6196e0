package doctree

type GridUnit int

const (
	UnitAuto GridUnit = iota
	UnitPixel
	UnitStar
)

// GridLength sizes a grid track. Value is ignored for UnitAuto.
type GridLength struct {
	Unit  GridUnit
	Value float64
}

func Auto() GridLength { return GridLength{Unit: UnitAuto} }
func Pixels(v float64) GridLength { return GridLength{Unit: UnitPixel, Value: v} }
func Star(weight float64) GridLength { return GridLength{Unit: UnitStar, Value: weight} }

// Grid arranges cells into rows and columns. Borders are overlay segments
// positioned by track index, so adjacent cells share a single line.
type Grid struct {
	Columns []GridLength
	Rows    []GridLength
	Cells   []*GridCell
	Borders []BorderSegment
	Margin  Thickness
}

func (*Grid) containerKind() ContainerKind { return ContainerGrid }

// GridCell places a nested block sequence at a grid position.
type GridCell struct {
	Row, Column         int
	RowSpan, ColumnSpan int
	Margin              Thickness
	Alignment           HorizontalAlignment
	Blocks              []Container
}

type Orientation int

const (
	// Horizontal segments lie on the top edge of Row.
	Horizontal Orientation = iota
	// Vertical segments lie on the left edge of Column.
	Vertical
)

// BorderSegment is a zero-content line placed on a track edge.
type BorderSegment struct {
	Orientation         Orientation
	Row, Column         int
	RowSpan, ColumnSpan int
	Thickness           float64
	Brush               Brush
}
