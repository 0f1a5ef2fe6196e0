package source

import (
	"bytes"
	"regexp"
	"unicode"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"

	"github.com/kk-code-lab/mdview/internal/logger"
)

const (
	// Ahead of goldmark's link parser (200).
	labeledLinkPriority = 150
	mentionPriority     = 450
	superscriptPriority = 600
)

type labeledLinkParser struct {
	schemes *SchemeSet
	log     *logger.Logger
}

func (p *labeledLinkParser) Trigger() []byte {
	return []byte{'['}
}

// Parse accepts [label] ( destination "title" ) on a single line. Whitespace
// is allowed between ']' and '(' and around the destination. A destination
// that fails the allow-list turns the whole span into literal text.
func (p *labeledLinkParser) Parse(parent ast.Node, block text.Reader, pc parser.Context) ast.Node {
	line, segment := block.PeekLine()
	if len(line) < 2 || line[0] != '[' {
		return nil
	}
	closeLabel := findMatchingBracket(line)
	if closeLabel < 0 {
		return nil
	}
	open := closeLabel + 1
	for open < len(line) && (line[open] == ' ' || line[open] == '\t') {
		open++
	}
	if open >= len(line) || line[open] != '(' {
		return nil
	}
	closeDest := findClosingParen(line, open+1)
	if closeDest < 0 {
		return nil
	}

	dest, title := splitDestination(line[open+1 : closeDest])
	end := closeDest + 1
	if !p.schemes.Allowed(string(dest)) {
		p.log.LinkRejected(string(dest))
		block.Advance(end)
		return ast.NewTextSegment(text.NewSegment(segment.Start, segment.Start+end))
	}

	block.Advance(end)
	return &LabeledLink{
		Destination: dest,
		Title:       title,
		Label:       bytes.Clone(line[1:closeLabel]),
	}
}

// findMatchingBracket returns the index of the ']' closing line[0], honouring
// nesting and backslash escapes.
func findMatchingBracket(line []byte) int {
	depth := 0
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case '\\':
			i++
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return i
			}
		case '\n':
			return -1
		}
	}
	return -1
}

func findClosingParen(line []byte, start int) int {
	for i := start; i < len(line); i++ {
		switch line[i] {
		case '\\':
			i++
		case ')':
			return i
		case '\n':
			return -1
		}
	}
	return -1
}

// splitDestination separates a trailing "title" from the destination and
// unescapes \( and \).
func splitDestination(inner []byte) (dest, title []byte) {
	inner = bytes.TrimSpace(inner)
	if n := len(inner); n >= 2 && inner[n-1] == '"' {
		if q := bytes.LastIndexByte(inner[:n-1], '"'); q > 0 && util.IsSpace(inner[q-1]) {
			title = bytes.Clone(inner[q+1 : n-1])
			inner = bytes.TrimSpace(inner[:q])
		}
	}
	dest = bytes.ReplaceAll(inner, []byte(`\(`), []byte("("))
	dest = bytes.ReplaceAll(dest, []byte(`\)`), []byte(")"))
	return dest, title
}

var mentionPattern = regexp.MustCompile(`^/[ru]/[A-Za-z0-9_-]+`)

type mentionParser struct{}

func (p *mentionParser) Trigger() []byte {
	return []byte{'/'}
}

func (p *mentionParser) Parse(parent ast.Node, block text.Reader, pc parser.Context) ast.Node {
	before := block.PrecendingCharacter()
	if unicode.IsLetter(before) || unicode.IsDigit(before) || before == '/' || before == '_' {
		return nil
	}
	line, _ := block.PeekLine()
	m := mentionPattern.Find(line)
	if m == nil {
		return nil
	}
	block.Advance(len(m))
	return &Mention{Name: bytes.Clone(m)}
}

type superscriptParser struct{}

func (p *superscriptParser) Trigger() []byte {
	return []byte{'^'}
}

// Parse accepts ^word (up to the next whitespace) and ^(some words).
func (p *superscriptParser) Parse(parent ast.Node, block text.Reader, pc parser.Context) ast.Node {
	line, segment := block.PeekLine()
	if len(line) < 2 || line[0] != '^' {
		return nil
	}
	start, stop, advance := 1, 1, 0
	if line[1] == '(' {
		closing := findClosingParen(line, 2)
		if closing < 0 {
			return nil
		}
		start, stop, advance = 2, closing, closing+1
	} else {
		for stop < len(line) && !util.IsSpace(line[stop]) && line[stop] != '^' {
			stop++
		}
		advance = stop
	}
	if stop <= start {
		return nil
	}
	block.Advance(advance)
	node := &Superscript{}
	node.AppendChild(node, ast.NewTextSegment(text.NewSegment(segment.Start+start, segment.Start+stop)))
	return node
}
