package paint

import "github.com/kk-code-lab/mdview/internal/doctree"

// naturalWidth is the width a block sequence takes when nothing wraps.
func (l *layouter) naturalWidth(blocks []doctree.Container) int {
	widest := 0
	for _, b := range blocks {
		m := marginOf(b)
		widest = max(widest, l.naturalBlock(b)+l.opts.cols(m.Left)+l.opts.cols(m.Right))
	}
	return widest
}

func (l *layouter) naturalBlock(c doctree.Container) int {
	switch v := c.(type) {
	case *doctree.Text:
		return lineWidth(l.wrapText(v, unbounded))
	case *doctree.Box:
		return l.naturalWidth(v.Blocks) +
			thick(v.BorderThickness.Left) + thick(v.BorderThickness.Right) +
			l.opts.cols(v.Padding.Left) + l.opts.cols(v.Padding.Right)
	case *doctree.Grid:
		return l.naturalGrid(v)
	default:
		return 0
	}
}

func (l *layouter) naturalCell(cell *doctree.GridCell) int {
	return l.naturalWidth(cell.Blocks) + l.opts.cols(cell.Margin.Left) + l.opts.cols(cell.Margin.Right)
}

func (l *layouter) naturalGrid(grid *doctree.Grid) int {
	vEdge, _ := edges(grid)
	widths := make([]int, len(grid.Columns))
	for i, col := range grid.Columns {
		if col.Unit == doctree.UnitPixel {
			widths[i] = l.opts.cols(col.Value)
		}
	}
	for _, cell := range grid.Cells {
		if inGrid(grid, cell) && cell.ColumnSpan <= 1 && grid.Columns[cell.Column].Unit != doctree.UnitPixel {
			widths[cell.Column] = max(widths[cell.Column], l.naturalCell(cell))
		}
	}
	return sum(widths) + countTrue(vEdge)
}
