package compiler

import (
	"fmt"

	"github.com/kk-code-lab/mdview/internal/doctree"
	"github.com/kk-code-lab/mdview/internal/mdast"
)

const (
	paragraphSpacing = 12
	headingLarge     = 20
	headingMedium    = 17
	codeMargin       = 12
	quoteIndent      = 12
	quoteBorder      = 2
	ruleHeight       = 1
	ruleSpacing      = 7
)

type headingStyle struct {
	size   float64
	weight doctree.FontWeight
}

var headingStyles = map[int]headingStyle{
	1: {size: headingLarge, weight: doctree.WeightBold},
	2: {size: headingLarge, weight: doctree.WeightNormal},
	3: {size: headingMedium, weight: doctree.WeightBold},
	4: {size: headingMedium, weight: doctree.WeightNormal},
}

func headingStyleFor(level int) headingStyle {
	if style, ok := headingStyles[level]; ok {
		return style
	}
	return headingStyle{weight: doctree.WeightBold}
}

func (c *Compiler) appendBlock(dst []doctree.Container, b mdast.Block) []doctree.Container {
	switch v := b.(type) {
	case nil:
		return dst
	case mdast.Paragraph:
		return append(dst, &doctree.Text{
			Inlines: c.appendInlines(nil, v.Inlines, newTrimCursor()),
			Margin:  doctree.Thickness{Top: paragraphSpacing},
		})
	case mdast.Heading:
		style := headingStyleFor(v.Level)
		return append(dst, &doctree.Text{
			Inlines:    c.appendInlines(nil, v.Inlines, newTrimCursor()),
			Margin:     doctree.Thickness{Top: 18, Bottom: 12},
			FontWeight: style.weight,
			FontSize:   style.size,
		})
	case mdast.HorizontalRule:
		return append(dst, &doctree.Rule{
			Height: ruleHeight,
			Margin: doctree.Thickness{Top: ruleSpacing, Bottom: ruleSpacing},
			Brush:  doctree.BrushRule,
		})
	case mdast.Code:
		return append(dst, &doctree.Text{
			Inlines:    []doctree.Inline{&doctree.Run{Text: v.Text, FontFamily: doctree.FamilyMonospace}},
			Margin:     doctree.Uniform(codeMargin),
			FontFamily: doctree.FamilyMonospace,
		})
	case mdast.Quote:
		return append(dst, &doctree.Box{
			Blocks:          c.compileBlocks(v.Blocks),
			Margin:          doctree.Thickness{Left: quoteIndent, Top: 5, Bottom: 5},
			Padding:         doctree.Thickness{Left: quoteIndent},
			BorderThickness: doctree.Thickness{Left: quoteBorder},
			BorderBrush:     doctree.BrushAccent,
		})
	case mdast.List:
		return append(dst, c.buildList(v))
	case mdast.Table:
		return append(dst, c.buildTable(v))
	default:
		panic(fmt.Sprintf("compiler: unknown block %T", b))
	}
}
