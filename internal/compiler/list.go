package compiler

import (
	"strconv"

	"github.com/kk-code-lab/mdview/internal/doctree"
	"github.com/kk-code-lab/mdview/internal/mdast"
)

const (
	bulletMarker      = "•"
	markerColumnWidth = 40
	listSpacing       = 5
)

func listMarker(style mdast.ListStyle, index int) string {
	if style == mdast.Numbered {
		return strconv.Itoa(index+1) + "."
	}
	return bulletMarker
}

// buildList lays items out as a two-column grid: markers on the left, the
// compiled item blocks on the right.
func (c *Compiler) buildList(list mdast.List) *doctree.Grid {
	grid := &doctree.Grid{
		Columns: []doctree.GridLength{doctree.Pixels(markerColumnWidth), doctree.Star(1)},
		Rows:    make([]doctree.GridLength, 0, len(list.Items)),
		Cells:   make([]*doctree.GridCell, 0, 2*len(list.Items)),
		Margin:  doctree.Thickness{Bottom: listSpacing},
	}
	for i, item := range list.Items {
		grid.Rows = append(grid.Rows, doctree.Auto())
		marker := &doctree.GridCell{
			Row:        i,
			Column:     0,
			RowSpan:    1,
			ColumnSpan: 1,
			Margin:     doctree.Thickness{Top: listSpacing, Right: 12},
			Alignment:  doctree.AlignRight,
			Blocks: []doctree.Container{&doctree.Text{
				Inlines: []doctree.Inline{&doctree.Run{Text: listMarker(list.Style, i)}},
			}},
		}
		content := &doctree.GridCell{
			Row:        i,
			Column:     1,
			RowSpan:    1,
			ColumnSpan: 1,
			Margin:     doctree.Thickness{Top: listSpacing},
			Blocks:     c.compileBlocks(item.Blocks),
		}
		grid.Cells = append(grid.Cells, marker, content)
	}
	return grid
}
