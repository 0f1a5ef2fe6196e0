// Package ansi prints a painted document to a plain or colour terminal
// stream, for pipes and non-interactive use.
package ansi

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/kk-code-lab/mdview/internal/doctree"
	"github.com/kk-code-lab/mdview/internal/paint"
	"github.com/kk-code-lab/mdview/internal/textutil"
)

// Theme holds the printer colours as ANSI-256 codes.
type Theme struct {
	Heading1    lipgloss.Color
	Heading2    lipgloss.Color
	Link        lipgloss.Color
	Code        lipgloss.Color
	Small       lipgloss.Color
	Rule        lipgloss.Color
	Accent      lipgloss.Color
	TableBorder lipgloss.Color
}

func DefaultTheme() Theme {
	return Theme{
		Heading1:    "33",
		Heading2:    "39",
		Link:        "51",
		Code:        "44",
		Small:       "250",
		Rule:        "250",
		Accent:      "33",
		TableBorder: "103",
	}
}

// Printer writes canvases line by line.
type Printer struct {
	out      io.Writer
	renderer *lipgloss.Renderer
	theme    Theme
	styles   map[paint.Style]lipgloss.Style
}

type Option func(*Printer)

// WithColor forces colour output on or off instead of detecting it from
// the writer.
func WithColor(enabled bool) Option {
	return func(p *Printer) {
		if enabled {
			p.renderer.SetColorProfile(termenv.ANSI256)
		} else {
			p.renderer.SetColorProfile(termenv.Ascii)
		}
	}
}

func WithTheme(t Theme) Option { return func(p *Printer) { p.theme = t } }

func New(w io.Writer, opts ...Option) *Printer {
	p := &Printer{
		out:      w,
		renderer: lipgloss.NewRenderer(w),
		theme:    DefaultTheme(),
		styles:   make(map[paint.Style]lipgloss.Style),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Printer) colored() bool {
	return p.renderer.ColorProfile() != termenv.Ascii
}

func (p *Printer) style(s paint.Style) lipgloss.Style {
	if st, ok := p.styles[s]; ok {
		return st
	}
	st := p.renderer.NewStyle().Bold(s.Bold).Italic(s.Italic)
	switch {
	case s.Link:
		st = st.Foreground(p.theme.Link).Underline(true)
	case s.Heading == 1:
		st = st.Foreground(p.theme.Heading1).Underline(true)
	case s.Heading == 2:
		st = st.Foreground(p.theme.Heading2)
	case s.Mono:
		st = st.Foreground(p.theme.Code)
	case s.Small:
		st = st.Foreground(p.theme.Small).Faint(true)
	}
	switch s.Brush {
	case doctree.BrushRule:
		st = st.Foreground(p.theme.Rule)
	case doctree.BrushAccent:
		st = st.Foreground(p.theme.Accent)
	case doctree.BrushTableBorder:
		st = st.Foreground(p.theme.TableBorder)
	}
	p.styles[s] = st
	return st
}

// Print writes every row of c followed by a newline. Trailing blank cells
// are dropped. With colour enabled, link cells become OSC 8 hyperlinks.
func (p *Printer) Print(c *paint.Canvas) error {
	w := bufio.NewWriter(p.out)
	for y := 0; y < c.Height(); y++ {
		if _, err := io.WriteString(w, p.line(c.Row(y))); err != nil {
			return fmt.Errorf("write line %d: %w", y, err)
		}
		if err := w.WriteByte('\n'); err != nil {
			return fmt.Errorf("write line %d: %w", y, err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}
	return nil
}

type segment struct {
	style paint.Style
	link  *doctree.Link
	text  strings.Builder
}

func (p *Printer) line(row []paint.Cell) string {
	end := len(row)
	for end > 0 && (row[end-1].Text == "" || row[end-1].Text == " ") && !row[end-1].Cont {
		end--
	}

	var segments []*segment
	for _, cell := range row[:end] {
		if cell.Cont {
			continue
		}
		text := cell.Text
		if text == "" {
			text = " "
		}
		if n := len(segments); n > 0 && segments[n-1].style == cell.Style && segments[n-1].link == cell.Link {
			segments[n-1].text.WriteString(text)
			continue
		}
		seg := &segment{style: cell.Style, link: cell.Link}
		seg.text.WriteString(text)
		segments = append(segments, seg)
	}

	var b strings.Builder
	for _, seg := range segments {
		text := seg.text.String()
		if !p.colored() {
			b.WriteString(text)
			continue
		}
		rendered := p.style(seg.style).Render(text)
		if seg.link != nil && hyperlinkable(seg.link.Target) {
			rendered = termenv.Hyperlink(seg.link.Target, rendered)
		}
		b.WriteString(rendered)
	}
	return b.String()
}

// hyperlinkable reports whether target can be written inside an OSC 8
// sequence as is. Anything else is printed as plain styled text.
func hyperlinkable(target string) bool {
	return target != "" && !textutil.HasControlRunes(target) && !textutil.HasFormattingRunes(target)
}
