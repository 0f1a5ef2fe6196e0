package compiler

import (
	"github.com/kk-code-lab/mdview/internal/doctree"
	"github.com/kk-code-lab/mdview/internal/mdast"
)

const (
	tableBorderThickness = 1
	tableSpacing         = 5
)

var tableCellMargin = doctree.Thickness{Left: 9, Top: 9, Right: 8, Bottom: 8}

func cellAlignment(a mdast.ColumnAlignment) doctree.HorizontalAlignment {
	switch a {
	case mdast.AlignCenter:
		return doctree.AlignCenter
	case mdast.AlignRight:
		return doctree.AlignRight
	default:
		return doctree.AlignLeft
	}
}

// buildTable synthesizes the table grid. One extra column and row host the
// right and bottom borders; every other border sits on the top or left edge
// of its track.
func (c *Compiler) buildTable(table mdast.Table) *doctree.Grid {
	columns := len(table.Columns) + 1
	rows := len(table.Rows) + 1
	grid := &doctree.Grid{
		Columns: autoTracks(columns),
		Rows:    autoTracks(rows),
		Margin:  doctree.Thickness{Top: tableSpacing, Bottom: tableSpacing},
	}

	for r, row := range table.Rows {
		grid.Borders = append(grid.Borders, horizontalBorder(r, columns))

		n := min(len(table.Columns), len(row.Cells))
		if n < len(table.Columns) {
			c.log.RaggedRow(r, len(row.Cells), len(table.Columns))
		}
		weight := doctree.WeightNormal
		if r == 0 {
			weight = doctree.WeightBold
		}
		for col := 0; col < n; col++ {
			grid.Borders = append(grid.Borders, verticalBorder(col, rows))
			grid.Cells = append(grid.Cells, &doctree.GridCell{
				Row:        r,
				Column:     col,
				RowSpan:    1,
				ColumnSpan: 1,
				Margin:     tableCellMargin,
				Alignment:  cellAlignment(table.Columns[col].Alignment),
				Blocks: []doctree.Container{&doctree.Text{
					Inlines:    c.appendInlines(nil, row.Cells[col].Inlines, newTrimCursor()),
					FontWeight: weight,
				}},
			})
		}
	}

	grid.Borders = append(grid.Borders,
		verticalBorder(len(table.Columns), rows),
		horizontalBorder(len(table.Rows), columns),
	)
	return grid
}

func autoTracks(n int) []doctree.GridLength {
	tracks := make([]doctree.GridLength, n)
	for i := range tracks {
		tracks[i] = doctree.Auto()
	}
	return tracks
}

func horizontalBorder(row, columns int) doctree.BorderSegment {
	return doctree.BorderSegment{
		Orientation: doctree.Horizontal,
		Row:         row,
		RowSpan:     1,
		ColumnSpan:  columns,
		Thickness:   tableBorderThickness,
		Brush:       doctree.BrushTableBorder,
	}
}

func verticalBorder(column, rows int) doctree.BorderSegment {
	return doctree.BorderSegment{
		Orientation: doctree.Vertical,
		Column:      column,
		RowSpan:     rows,
		ColumnSpan:  1,
		Thickness:   tableBorderThickness,
		Brush:       doctree.BrushTableBorder,
	}
}
