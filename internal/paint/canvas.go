package paint

import (
	"strings"

	"github.com/kk-code-lab/mdview/internal/doctree"
	"github.com/kk-code-lab/mdview/internal/textutil"
)

// Style is the terminal rendering hint attached to a cell. Painters map it
// onto their own colours.
type Style struct {
	Bold    bool
	Italic  bool
	Mono    bool
	Small   bool
	Link    bool
	Heading int
	Brush   doctree.Brush
}

// Cell is one terminal column. A wide cluster occupies its first cell; the
// following Cont cells are placeholders.
type Cell struct {
	Text  string
	Width int
	Cont  bool
	Style Style
	Link  *doctree.Link
}

func (c Cell) blank() bool {
	return c.Text == "" && !c.Cont
}

// Canvas is a grid of cells produced by Layout. Rows may be shorter than
// Width; missing cells are blank.
type Canvas struct {
	width int
	rows  [][]Cell
}

func newCanvas(width int) *Canvas {
	return &Canvas{width: width}
}

func (c *Canvas) Width() int { return c.width }

func (c *Canvas) Height() int { return len(c.rows) }

// Row returns the cells of row y, or nil when out of range.
func (c *Canvas) Row(y int) []Cell {
	if y < 0 || y >= len(c.rows) {
		return nil
	}
	return c.rows[y]
}

// At returns the cell at (x, y); cells outside the painted area are blank.
func (c *Canvas) At(x, y int) Cell {
	row := c.Row(y)
	if x < 0 || x >= len(row) {
		return Cell{}
	}
	return row[x]
}

// LinkAt reports the link painted at (x, y), following continuation cells
// back to their cluster.
func (c *Canvas) LinkAt(x, y int) *doctree.Link {
	row := c.Row(y)
	for x >= 0 && x < len(row) {
		if !row[x].Cont {
			return row[x].Link
		}
		x--
	}
	return nil
}

// Line returns row y as plain text without trailing blanks.
func (c *Canvas) Line(y int) string {
	var b strings.Builder
	for _, cell := range c.Row(y) {
		switch {
		case cell.Cont:
		case cell.Text == "":
			b.WriteByte(' ')
		default:
			b.WriteString(cell.Text)
		}
	}
	return strings.TrimRight(b.String(), " ")
}

func (c *Canvas) String() string {
	lines := make([]string, c.Height())
	for y := range lines {
		lines[y] = c.Line(y)
	}
	return strings.Join(lines, "\n")
}

func (c *Canvas) ensureHeight(h int) {
	for len(c.rows) < h {
		c.rows = append(c.rows, nil)
	}
}

func (c *Canvas) set(x, y int, cell Cell) {
	if x < 0 || y < 0 {
		return
	}
	c.ensureHeight(y + 1)
	row := c.rows[y]
	for len(row) <= x {
		row = append(row, Cell{})
	}
	row[x] = cell
	c.rows[y] = row
}

// putCluster writes a cluster and its continuation cells.
func (c *Canvas) putCluster(x, y int, cluster string, style Style, link *doctree.Link) int {
	w := textutil.ClusterWidth(cluster)
	c.set(x, y, Cell{Text: cluster, Width: w, Style: style, Link: link})
	for i := 1; i < w; i++ {
		c.set(x+i, y, Cell{Cont: true, Style: style, Link: link})
	}
	return w
}

// blit copies the painted cells of src with its origin at (x0, y0).
func (c *Canvas) blit(src *Canvas, x0, y0 int) {
	if src == nil {
		return
	}
	c.ensureHeight(y0 + src.Height())
	for y, row := range src.rows {
		for x, cell := range row {
			if !cell.blank() {
				c.set(x0+x, y0+y, cell)
			}
		}
	}
}

// usedWidth is the rightmost painted column plus one.
func (c *Canvas) usedWidth() int {
	used := 0
	for _, row := range c.rows {
		for x := len(row) - 1; x >= 0; x-- {
			if !row[x].blank() {
				used = max(used, x+1)
				break
			}
		}
	}
	return used
}
