// Package paint lays a document tree onto a grid of terminal cells.
//
// Pixel measurements of the tree are converted to cells with Options; text
// is word-wrapped on grapheme boundaries and borders become box-drawing
// characters.
package paint

import (
	"fmt"

	"github.com/kk-code-lab/mdview/internal/doctree"
	"github.com/kk-code-lab/mdview/internal/textutil"
)

// Options controls the pixel to cell conversion.
type Options struct {
	CellWidthPx  float64
	LineHeightPx float64
	TabWidth     int
}

func DefaultOptions() Options {
	return Options{CellWidthPx: 6, LineHeightPx: 18, TabWidth: textutil.DefaultTabWidth}
}

func (o Options) cols(px float64) int {
	if px <= 0 {
		return 0
	}
	return int((px + o.CellWidthPx/2) / o.CellWidthPx)
}

func (o Options) rows(px float64) int {
	if px <= 0 {
		return 0
	}
	return int((px + o.LineHeightPx/3) / o.LineHeightPx)
}

// thick reports whether a border side is drawn; any positive thickness
// takes one cell.
func thick(v float64) int {
	if v > 0 {
		return 1
	}
	return 0
}

type layouter struct {
	opts Options
}

// Layout paints doc at the given width.
func Layout(doc *doctree.Document, width int, opts Options) *Canvas {
	defaults := DefaultOptions()
	if opts.CellWidthPx <= 0 {
		opts.CellWidthPx = defaults.CellWidthPx
	}
	if opts.LineHeightPx <= 0 {
		opts.LineHeightPx = defaults.LineHeightPx
	}
	if opts.TabWidth <= 0 {
		opts.TabWidth = defaults.TabWidth
	}
	width = max(width, 1)
	l := &layouter{opts: opts}
	if doc == nil {
		return newCanvas(width)
	}
	return l.blocks(doc.Blocks, width)
}

// placed is a laid out container with its margins resolved to cells.
type placed struct {
	canvas      *Canvas
	x           int
	top, bottom int
}

// blocks stacks containers vertically. Adjacent vertical margins collapse
// and the outer margins of the sequence are dropped.
func (l *layouter) blocks(blocks []doctree.Container, width int) *Canvas {
	out := newCanvas(width)
	y, prevBottom := 0, 0
	for i, b := range blocks {
		p := l.place(b, width)
		if i > 0 {
			y += max(prevBottom, p.top)
		}
		out.blit(p.canvas, p.x, y)
		y += p.canvas.Height()
		out.ensureHeight(y)
		prevBottom = p.bottom
	}
	return out
}

func marginOf(c doctree.Container) doctree.Thickness {
	switch v := c.(type) {
	case *doctree.Text:
		return v.Margin
	case *doctree.Grid:
		return v.Margin
	case *doctree.Box:
		return v.Margin
	case *doctree.Rule:
		return v.Margin
	}
	return doctree.Thickness{}
}

func (l *layouter) place(c doctree.Container, width int) placed {
	m := marginOf(c)
	left, right := l.opts.cols(m.Left), l.opts.cols(m.Right)
	inner := max(width-left-right, 1)
	if left+inner > width {
		left = max(width-inner, 0)
	}

	var canvas *Canvas
	switch v := c.(type) {
	case *doctree.Text:
		canvas = l.text(v, inner)
	case *doctree.Grid:
		canvas = l.grid(v, inner)
	case *doctree.Box:
		canvas = l.box(v, inner)
	case *doctree.Rule:
		canvas = l.rule(v, inner)
	default:
		panic(fmt.Sprintf("paint: unknown container %T", c))
	}
	return placed{canvas: canvas, x: left, top: l.opts.rows(m.Top), bottom: l.opts.rows(m.Bottom)}
}

func (l *layouter) rule(r *doctree.Rule, width int) *Canvas {
	out := newCanvas(width)
	style := Style{Brush: r.Brush}
	for y := 0; y < max(l.opts.rows(r.Height), 1); y++ {
		for x := 0; x < width; x++ {
			out.set(x, y, Cell{Text: "─", Width: 1, Style: style})
		}
	}
	return out
}

func (l *layouter) box(b *doctree.Box, width int) *Canvas {
	bl, bt := thick(b.BorderThickness.Left), thick(b.BorderThickness.Top)
	br, bb := thick(b.BorderThickness.Right), thick(b.BorderThickness.Bottom)
	pl, pr := l.opts.cols(b.Padding.Left), l.opts.cols(b.Padding.Right)
	pt, pb := l.opts.rows(b.Padding.Top), l.opts.rows(b.Padding.Bottom)

	innerWidth := max(width-bl-br-pl-pr, 1)
	inner := l.blocks(b.Blocks, innerWidth)
	height := bt + pt + max(inner.Height(), 1) + pb + bb
	outerWidth := bl + pl + innerWidth + pr + br

	out := newCanvas(width)
	out.ensureHeight(height)
	out.blit(inner, bl+pl, bt+pt)

	mask := newLineMask()
	if bl == 1 {
		mask.vertical(0, 0, height-1, b.BorderBrush)
	}
	if br == 1 {
		mask.vertical(outerWidth-1, 0, height-1, b.BorderBrush)
	}
	if bt == 1 {
		mask.horizontal(0, 0, outerWidth-1, b.BorderBrush)
	}
	if bb == 1 {
		mask.horizontal(height-1, 0, outerWidth-1, b.BorderBrush)
	}
	mask.draw(out)
	return out
}
