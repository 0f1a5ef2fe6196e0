package doctree

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/kk-code-lab/mdview/internal/textutil"
)

var (
	dumpKind   = color.New(color.FgCyan, color.Bold).SprintFunc()
	dumpAttr   = color.New(color.FgHiBlack).SprintFunc()
	dumpText   = color.New(color.FgGreen).SprintFunc()
	dumpTarget = color.New(color.FgBlue, color.Underline).SprintFunc()
)

// Dump writes an indented outline of doc to w. Colouring follows
// color.NoColor.
func Dump(w io.Writer, doc *Document) error {
	d := &dumper{w: w}
	if doc == nil {
		return d.line(0, dumpKind("Document"), "<nil>")
	}
	if err := d.line(0, dumpKind("Document"), dumpAttr(fmt.Sprintf("blocks=%d", len(doc.Blocks)))); err != nil {
		return err
	}
	for _, block := range doc.Blocks {
		d.container(1, block)
	}
	return d.err
}

type dumper struct {
	w   io.Writer
	err error
}

func (d *dumper) line(depth int, parts ...string) error {
	if d.err != nil {
		return d.err
	}
	_, d.err = fmt.Fprintf(d.w, "%s%s\n", strings.Repeat("  ", depth), strings.Join(parts, " "))
	return d.err
}

func (d *dumper) container(depth int, c Container) {
	switch v := c.(type) {
	case *Text:
		attrs := []string{fmt.Sprintf("margin=%s", formatThickness(v.Margin))}
		if v.FontWeight == WeightBold {
			attrs = append(attrs, "bold")
		}
		if v.FontSize != 0 {
			attrs = append(attrs, fmt.Sprintf("size=%g", v.FontSize))
		}
		if v.FontFamily != FamilyDefault {
			attrs = append(attrs, "family="+string(v.FontFamily))
		}
		if v.Alignment != AlignStretch {
			attrs = append(attrs, "align="+alignmentName(v.Alignment))
		}
		d.line(depth, dumpKind("Text"), dumpAttr(strings.Join(attrs, " ")))
		d.inlines(depth+1, v.Inlines)
	case *Rule:
		d.line(depth, dumpKind("Rule"), dumpAttr(fmt.Sprintf("height=%g margin=%s", v.Height, formatThickness(v.Margin))))
	case *Box:
		d.line(depth, dumpKind("Box"), dumpAttr(fmt.Sprintf("margin=%s padding=%s border=%s",
			formatThickness(v.Margin), formatThickness(v.Padding), formatThickness(v.BorderThickness))))
		for _, child := range v.Blocks {
			d.container(depth+1, child)
		}
	case *Grid:
		d.line(depth, dumpKind("Grid"), dumpAttr(fmt.Sprintf("columns=%s rows=%d borders=%d",
			formatTracks(v.Columns), len(v.Rows), len(v.Borders))))
		for _, cell := range v.Cells {
			d.line(depth+1, dumpKind("Cell"), dumpAttr(fmt.Sprintf("row=%d col=%d", cell.Row, cell.Column)))
			for _, child := range cell.Blocks {
				d.container(depth+2, child)
			}
		}
	}
}

func (d *dumper) inlines(depth int, inlines []Inline) {
	for _, in := range inlines {
		switch v := in.(type) {
		case *Run:
			attrs := ""
			if v.FontFamily == FamilyMonospace {
				attrs = dumpAttr(" mono")
			}
			d.line(depth, dumpKind("Run")+attrs, dumpText(fmt.Sprintf("%q", v.Text)))
		case *Span:
			var attrs []string
			if v.FontWeight == WeightBold {
				attrs = append(attrs, "bold")
			}
			if v.Italic {
				attrs = append(attrs, "italic")
			}
			if v.SizeScale != 0 {
				attrs = append(attrs, fmt.Sprintf("scale=%g", v.SizeScale))
			}
			d.line(depth, dumpKind("Span"), dumpAttr(strings.Join(attrs, " ")))
			d.inlines(depth+1, v.Inlines)
		case *Link:
			d.line(depth, dumpKind("Link"), dumpTarget(textutil.SanitizeTerminalText(v.Target)))
			d.inlines(depth+1, v.Inlines)
		}
	}
}

func formatThickness(t Thickness) string {
	return fmt.Sprintf("(%g,%g,%g,%g)", t.Left, t.Top, t.Right, t.Bottom)
}

func formatTracks(tracks []GridLength) string {
	parts := make([]string, len(tracks))
	for i, t := range tracks {
		switch t.Unit {
		case UnitPixel:
			parts[i] = fmt.Sprintf("%gpx", t.Value)
		case UnitStar:
			parts[i] = fmt.Sprintf("%g*", t.Value)
		default:
			parts[i] = "auto"
		}
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func alignmentName(a HorizontalAlignment) string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "stretch"
	}
}
