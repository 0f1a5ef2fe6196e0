package paint

import (
	"math"
	"strings"

	"github.com/rivo/uniseg"

	"github.com/kk-code-lab/mdview/internal/doctree"
	"github.com/kk-code-lab/mdview/internal/textutil"
)

const unbounded = math.MaxInt32

// piece is a run of text sharing one style and link.
type piece struct {
	text  string
	style Style
	link  *doctree.Link
}

func flattenInlines(dst []piece, inlines []doctree.Inline, style Style, link *doctree.Link) []piece {
	for _, in := range inlines {
		switch v := in.(type) {
		case *doctree.Run:
			s := style
			if v.FontWeight == doctree.WeightBold {
				s.Bold = true
			}
			if v.FontFamily == doctree.FamilyMonospace {
				s.Mono = true
			}
			dst = append(dst, piece{text: v.Text, style: s, link: link})
		case *doctree.Span:
			s := style
			if v.FontWeight == doctree.WeightBold {
				s.Bold = true
			}
			if v.Italic {
				s.Italic = true
			}
			if v.SizeScale > 0 && v.SizeScale < 1 {
				s.Small = true
			}
			dst = flattenInlines(dst, v.Inlines, s, link)
		case *doctree.Link:
			s := style
			s.Link = true
			dst = flattenInlines(dst, v.Inlines, s, v)
		}
	}
	return dst
}

// cleanText sanitizes text while keeping the tabs and newlines the wrapper
// interprets itself.
func cleanText(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		parts := strings.Split(strings.TrimSuffix(line, "\r"), "\t")
		for j, part := range parts {
			parts[j] = textutil.SanitizeTerminalText(part)
		}
		lines[i] = strings.Join(parts, "\t")
	}
	return strings.Join(lines, "\n")
}

// wrapper fills lines greedily, breaking at uniseg line break opportunities.
type wrapper struct {
	width    int
	tabWidth int
	lines    [][]Cell
	cur      []Cell
	col      int
}

func newWrapper(width, tabWidth int) *wrapper {
	if width < 1 {
		width = 1
	}
	if tabWidth < 1 {
		tabWidth = textutil.DefaultTabWidth
	}
	return &wrapper{width: width, tabWidth: tabWidth}
}

func (w *wrapper) newline() {
	for n := len(w.cur); n > 0 && w.cur[n-1].Text == " "; n-- {
		w.cur = w.cur[:n-1]
	}
	w.lines = append(w.lines, w.cur)
	w.cur = nil
	w.col = 0
}

func (w *wrapper) write(p piece) {
	rest := cleanText(p.text)
	state := -1
	for rest != "" {
		var segment string
		segment, rest, _, state = uniseg.FirstLineSegmentInString(rest, state)
		hard := strings.HasSuffix(segment, "\n")
		w.word(strings.TrimSuffix(segment, "\n"), p)
		if hard {
			w.newline()
		}
	}
}

func (w *wrapper) word(word string, p piece) {
	if word == "" {
		return
	}
	visible := strings.TrimRight(word, " ")
	if w.col > 0 && w.col+w.measure(visible) > w.width {
		w.newline()
	}
	g := uniseg.NewGraphemes(word)
	for g.Next() {
		cluster := g.Str()
		if cluster == "\t" {
			spaces := w.tabWidth - w.col%w.tabWidth
			for i := 0; i < spaces && w.col < w.width; i++ {
				w.put(" ", 1, p)
			}
			continue
		}
		cw := textutil.ClusterWidth(cluster)
		if cw == 0 {
			w.attach(cluster)
			continue
		}
		if w.col+cw > w.width {
			if cluster == " " {
				continue
			}
			if w.col > 0 {
				w.newline()
			}
			if cw > w.width {
				continue
			}
		}
		w.put(cluster, cw, p)
	}
}

// measure reports the width of s placed at the current column.
func (w *wrapper) measure(s string) int {
	if !strings.Contains(s, "\t") {
		return textutil.DisplayWidth(s)
	}
	return textutil.DisplayWidth(textutil.ExpandTabs(strings.Repeat(" ", w.col)+s, w.tabWidth)) - w.col
}

func (w *wrapper) put(cluster string, cw int, p piece) {
	w.cur = append(w.cur, Cell{Text: cluster, Width: cw, Style: p.style, Link: p.link})
	for i := 1; i < cw; i++ {
		w.cur = append(w.cur, Cell{Cont: true, Style: p.style, Link: p.link})
	}
	w.col += cw
}

// attach joins a zero-width cluster to the previous cluster on the line.
// Orphans at the start of a line are dropped.
func (w *wrapper) attach(cluster string) {
	for i := len(w.cur) - 1; i >= 0; i-- {
		if !w.cur[i].Cont {
			w.cur[i].Text += cluster
			return
		}
	}
}

func (w *wrapper) finish() [][]Cell {
	if w.cur != nil || len(w.lines) == 0 {
		w.newline()
	}
	return w.lines
}

func textBaseStyle(t *doctree.Text) Style {
	style := Style{
		Bold: t.FontWeight == doctree.WeightBold,
		Mono: t.FontFamily == doctree.FamilyMonospace,
	}
	switch {
	case t.FontSize >= 20:
		style.Heading = 1
	case t.FontSize >= 17:
		style.Heading = 2
	}
	return style
}

func (l *layouter) wrapText(t *doctree.Text, width int) [][]Cell {
	w := newWrapper(width, l.opts.TabWidth)
	for _, p := range flattenInlines(nil, t.Inlines, textBaseStyle(t), nil) {
		w.write(p)
	}
	return w.finish()
}

func (l *layouter) text(t *doctree.Text, width int) *Canvas {
	out := newCanvas(width)
	lines := l.wrapText(t, width)
	out.ensureHeight(len(lines))
	for y, line := range lines {
		x := 0
		switch t.Alignment {
		case doctree.AlignCenter:
			x = max(0, (width-len(line))/2)
		case doctree.AlignRight:
			x = max(0, width-len(line))
		}
		for i, cell := range line {
			out.set(x+i, y, cell)
		}
	}
	return out
}

func lineWidth(lines [][]Cell) int {
	widest := 0
	for _, line := range lines {
		widest = max(widest, len(line))
	}
	return widest
}
