package view

import (
	"github.com/gdamore/tcell/v2"

	"github.com/kk-code-lab/mdview/internal/doctree"
	"github.com/kk-code-lab/mdview/internal/paint"
)

// ColorTheme defines viewer colors.
type ColorTheme struct {
	Background    tcell.Color
	Foreground    tcell.Color
	Heading1Fg    tcell.Color
	Heading2Fg    tcell.Color
	LinkFg        tcell.Color
	CodeFg        tcell.Color
	SmallFg       tcell.Color
	RuleFg        tcell.Color
	AccentFg      tcell.Color
	TableBorderFg tcell.Color
	StatusBg      tcell.Color
	StatusFg      tcell.Color
}

// DefaultTheme returns the default color scheme.
func DefaultTheme() ColorTheme {
	return ColorTheme{
		Background:    tcell.ColorDefault,
		Foreground:    tcell.ColorDefault,
		Heading1Fg:    tcell.Color33,
		Heading2Fg:    tcell.Color39,
		LinkFg:        tcell.Color51,
		CodeFg:        tcell.Color44, // brighter cyan text for code
		SmallFg:       tcell.Color250,
		RuleFg:        tcell.ColorLightGray,
		AccentFg:      tcell.Color33,
		TableBorderFg: tcell.ColorLightSlateGray,
		StatusBg:      tcell.Color234,
		StatusFg:      tcell.Color252,
	}
}

func (t ColorTheme) brushColor(b doctree.Brush) tcell.Color {
	switch b {
	case doctree.BrushRule:
		return t.RuleFg
	case doctree.BrushAccent:
		return t.AccentFg
	case doctree.BrushTableBorder:
		return t.TableBorderFg
	default:
		return t.Foreground
	}
}

// Style maps a painted cell style onto tcell attributes.
func (t ColorTheme) Style(s paint.Style) tcell.Style {
	fg := t.brushColor(s.Brush)
	switch {
	case s.Link:
		fg = t.LinkFg
	case s.Heading == 1:
		fg = t.Heading1Fg
	case s.Heading == 2:
		fg = t.Heading2Fg
	case s.Mono:
		fg = t.CodeFg
	case s.Small:
		fg = t.SmallFg
	}
	return tcell.StyleDefault.
		Background(t.Background).
		Foreground(fg).
		Bold(s.Bold).
		Italic(s.Italic).
		Underline(s.Link || s.Heading == 1).
		Dim(s.Small)
}

func (t ColorTheme) statusStyle() tcell.Style {
	return tcell.StyleDefault.Background(t.StatusBg).Foreground(t.StatusFg)
}
