package paint

import (
	"github.com/kk-code-lab/mdview/internal/doctree"
)

const minColumnWidth = 3

// gridGeometry holds the resolved cell coordinates of a grid. vx and hy
// give the position of the border line on the left/top edge of each track,
// or -1 when no segment touches that edge.
type gridGeometry struct {
	colW, rowH []int
	colX, rowY []int
	vx, hy     []int
	width      int
	height     int
}

func (g *gridGeometry) spanWidth(col, span int) int {
	end := min(col+max(span, 1), len(g.colW))
	w := 0
	for c := col; c < end; c++ {
		w += g.colW[c]
		if c > col && g.vx[c] >= 0 {
			w++
		}
	}
	return w
}

func (g *gridGeometry) spanHeight(row, span int) int {
	end := min(row+max(span, 1), len(g.rowH))
	h := 0
	for r := row; r < end; r++ {
		h += g.rowH[r]
		if r > row && g.hy[r] >= 0 {
			h++
		}
	}
	return h
}

func (g *gridGeometry) rowTop(r int) int {
	if g.hy[r] >= 0 {
		return g.hy[r]
	}
	return g.rowY[r]
}

func (g *gridGeometry) rowBottom(r int) int {
	if g.hy[r+1] >= 0 {
		return g.hy[r+1]
	}
	return g.rowY[r] + g.rowH[r] - 1
}

func (g *gridGeometry) colLeft(c int) int {
	if g.vx[c] >= 0 {
		return g.vx[c]
	}
	return g.colX[c]
}

func (g *gridGeometry) colRight(c int) int {
	if g.vx[c+1] >= 0 {
		return g.vx[c+1]
	}
	return g.colX[c] + g.colW[c] - 1
}

// edges reports which track edges carry a border segment.
func edges(grid *doctree.Grid) (vertical, horizontal []bool) {
	vertical = make([]bool, len(grid.Columns)+1)
	horizontal = make([]bool, len(grid.Rows)+1)
	for _, b := range grid.Borders {
		switch b.Orientation {
		case doctree.Vertical:
			if b.Column >= 0 && b.Column <= len(grid.Columns) {
				vertical[b.Column] = true
			}
		case doctree.Horizontal:
			if b.Row >= 0 && b.Row <= len(grid.Rows) {
				horizontal[b.Row] = true
			}
		}
	}
	return vertical, horizontal
}

func countTrue(flags []bool) int {
	n := 0
	for _, f := range flags {
		if f {
			n++
		}
	}
	return n
}

func inGrid(grid *doctree.Grid, cell *doctree.GridCell) bool {
	return cell != nil &&
		cell.Row >= 0 && cell.Row < len(grid.Rows) &&
		cell.Column >= 0 && cell.Column < len(grid.Columns)
}

type cellContent struct {
	cell   *doctree.GridCell
	canvas *Canvas
	dx     int
	top    int
	height int
}

func (l *layouter) grid(grid *doctree.Grid, width int) *Canvas {
	if len(grid.Columns) == 0 || len(grid.Rows) == 0 {
		return newCanvas(width)
	}
	vEdge, hEdge := edges(grid)
	geo := &gridGeometry{
		colW: l.columnWidths(grid, width-countTrue(vEdge)),
		vx:   make([]int, len(grid.Columns)+1),
		hy:   make([]int, len(grid.Rows)+1),
		colX: make([]int, len(grid.Columns)),
		rowY: make([]int, len(grid.Rows)),
		rowH: make([]int, len(grid.Rows)),
	}

	x := 0
	for c := range geo.vx {
		geo.vx[c] = -1
		if vEdge[c] {
			geo.vx[c] = x
			x++
		}
		if c < len(grid.Columns) {
			geo.colX[c] = x
			x += geo.colW[c]
		}
	}
	geo.width = x
	contents := l.layoutCells(grid, geo)
	for i, row := range grid.Rows {
		if row.Unit == doctree.UnitPixel {
			geo.rowH[i] = l.opts.rows(row.Value)
		}
	}
	for _, cc := range contents {
		if cc.cell.RowSpan <= 1 && grid.Rows[cc.cell.Row].Unit != doctree.UnitPixel {
			geo.rowH[cc.cell.Row] = max(geo.rowH[cc.cell.Row], cc.height)
		}
	}

	y := 0
	for r := range geo.hy {
		geo.hy[r] = -1
		if hEdge[r] {
			geo.hy[r] = y
			y++
		}
		if r < len(grid.Rows) {
			geo.rowY[r] = y
			y += geo.rowH[r]
		}
	}
	geo.height = y

	out := newCanvas(width)
	out.ensureHeight(geo.height)
	for _, cc := range contents {
		clip := geo.spanHeight(cc.cell.Row, cc.cell.RowSpan) - cc.top
		out.blit(clipRows(cc.canvas, clip), geo.colX[cc.cell.Column]+cc.dx, geo.rowY[cc.cell.Row]+cc.top)
	}
	l.drawBorders(out, grid, geo)
	return out
}

// layoutCells lays out every cell at its column span width.
func (l *layouter) layoutCells(grid *doctree.Grid, geo *gridGeometry) []cellContent {
	var contents []cellContent
	for _, cell := range grid.Cells {
		if !inGrid(grid, cell) {
			continue
		}
		left, right := l.opts.cols(cell.Margin.Left), l.opts.cols(cell.Margin.Right)
		top, bottom := l.opts.rows(cell.Margin.Top), l.opts.rows(cell.Margin.Bottom)
		span := geo.spanWidth(cell.Column, cell.ColumnSpan)
		inner := max(span-left-right, 1)
		canvas := l.blocks(cell.Blocks, inner)

		dx := left
		if used := canvas.usedWidth(); used < inner {
			switch cell.Alignment {
			case doctree.AlignRight:
				dx += inner - used
			case doctree.AlignCenter:
				dx += (inner - used) / 2
			}
		}
		height := 0
		if canvas.Height() > 0 {
			height = top + canvas.Height() + bottom
		}
		contents = append(contents, cellContent{cell: cell, canvas: canvas, dx: dx, top: top, height: height})
	}
	return contents
}

func clipRows(c *Canvas, h int) *Canvas {
	if h >= c.Height() {
		return c
	}
	if h < 0 {
		h = 0
	}
	return &Canvas{width: c.width, rows: c.rows[:h]}
}

func (l *layouter) drawBorders(out *Canvas, grid *doctree.Grid, geo *gridGeometry) {
	mask := newLineMask()
	lastRow, lastCol := len(grid.Rows)-1, len(grid.Columns)-1
	for _, b := range grid.Borders {
		switch b.Orientation {
		case doctree.Vertical:
			if b.Column < 0 || b.Column > lastCol+1 || b.Row < 0 || b.Row > lastRow {
				continue
			}
			r1 := min(b.Row+max(b.RowSpan, 1)-1, lastRow)
			mask.vertical(geo.vx[b.Column], geo.rowTop(b.Row), geo.rowBottom(r1), b.Brush)
		case doctree.Horizontal:
			if b.Row < 0 || b.Row > lastRow+1 || b.Column < 0 || b.Column > lastCol {
				continue
			}
			c1 := min(b.Column+max(b.ColumnSpan, 1)-1, lastCol)
			mask.horizontal(geo.hy[b.Row], geo.colLeft(b.Column), geo.colRight(c1), b.Brush)
		}
	}
	mask.draw(out)
}

// columnWidths resolves track widths. Auto tracks take their natural width,
// pixel tracks their converted width and star tracks share what is left.
// When the fixed tracks overflow, the widest is shrunk first.
func (l *layouter) columnWidths(grid *doctree.Grid, avail int) []int {
	n := len(grid.Columns)
	natural := make([]int, n)
	for _, cell := range grid.Cells {
		if inGrid(grid, cell) && cell.ColumnSpan <= 1 {
			natural[cell.Column] = max(natural[cell.Column], l.naturalCell(cell))
		}
	}

	widths := make([]int, n)
	var stars []int
	starTotal := 0.0
	for i, col := range grid.Columns {
		switch col.Unit {
		case doctree.UnitPixel:
			widths[i] = l.opts.cols(col.Value)
		case doctree.UnitStar:
			stars = append(stars, i)
			starTotal += starWeight(col)
		default:
			widths[i] = natural[i]
		}
	}

	clampColumnWidths(widths, avail-len(stars)*minColumnWidth)
	remaining := avail - sum(widths)
	if len(stars) == 0 || remaining <= 0 {
		for _, i := range stars {
			widths[i] = max(remaining, 1)
		}
		return widths
	}
	given := 0
	for k, i := range stars {
		if k == len(stars)-1 {
			widths[i] = remaining - given
			break
		}
		widths[i] = int(float64(remaining) * starWeight(grid.Columns[i]) / starTotal)
		given += widths[i]
	}
	return widths
}

func starWeight(col doctree.GridLength) float64 {
	if col.Value <= 0 {
		return 1
	}
	return col.Value
}

func clampColumnWidths(widths []int, maxWidth int) []int {
	if maxWidth <= 0 || len(widths) == 0 {
		return widths
	}
	total := sum(widths)
	for total > maxWidth {
		idx := widestColumn(widths, minColumnWidth)
		if idx == -1 {
			break
		}
		widths[idx]--
		total--
	}
	return widths
}

func widestColumn(widths []int, minWidth int) int {
	maxIdx := -1
	maxVal := minWidth
	for i, w := range widths {
		if w > maxVal {
			maxVal = w
			maxIdx = i
		}
	}
	return maxIdx
}

func sum(values []int) int {
	total := 0
	for _, v := range values {
		total += v
	}
	return total
}
