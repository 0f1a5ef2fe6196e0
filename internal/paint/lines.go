package paint

import "github.com/kk-code-lab/mdview/internal/doctree"

type junction uint8

const (
	jUp junction = 1 << iota
	jDown
	jLeft
	jRight
)

var junctionGlyphs = map[junction]string{
	jUp:                         "│",
	jDown:                       "│",
	jUp | jDown:                 "│",
	jLeft:                       "─",
	jRight:                      "─",
	jLeft | jRight:              "─",
	jDown | jRight:              "┌",
	jDown | jLeft:               "┐",
	jUp | jRight:                "└",
	jUp | jLeft:                 "┘",
	jUp | jDown | jRight:        "├",
	jUp | jDown | jLeft:         "┤",
	jLeft | jRight | jDown:      "┬",
	jLeft | jRight | jUp:        "┴",
	jUp | jDown | jLeft | jRight: "┼",
}

type point struct{ x, y int }

// lineMask collects border strokes so crossings can be resolved into
// junction glyphs from their neighbours.
type lineMask struct {
	bits  map[point]junction
	brush map[point]doctree.Brush
}

func newLineMask() *lineMask {
	return &lineMask{bits: make(map[point]junction), brush: make(map[point]doctree.Brush)}
}

func (m *lineMask) add(x, y int, j junction, brush doctree.Brush) {
	if x < 0 || y < 0 {
		return
	}
	p := point{x, y}
	m.bits[p] |= j
	m.brush[p] = brush
}

func (m *lineMask) vertical(x, y0, y1 int, brush doctree.Brush) {
	if y1 < y0 {
		return
	}
	if y0 == y1 {
		m.add(x, y0, jUp|jDown, brush)
		return
	}
	for y := y0; y <= y1; y++ {
		var j junction
		if y > y0 {
			j |= jUp
		}
		if y < y1 {
			j |= jDown
		}
		m.add(x, y, j, brush)
	}
}

func (m *lineMask) horizontal(y, x0, x1 int, brush doctree.Brush) {
	if x1 < x0 {
		return
	}
	if x0 == x1 {
		m.add(x0, y, jLeft|jRight, brush)
		return
	}
	for x := x0; x <= x1; x++ {
		var j junction
		if x > x0 {
			j |= jLeft
		}
		if x < x1 {
			j |= jRight
		}
		m.add(x, y, j, brush)
	}
}

func (m *lineMask) draw(c *Canvas) {
	for p, j := range m.bits {
		glyph, ok := junctionGlyphs[j]
		if !ok {
			continue
		}
		c.set(p.x, p.y, Cell{Text: glyph, Width: 1, Style: Style{Brush: m.brush[p]}})
	}
}
