package match

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// DefaultTabStop is the tab width used to compute display columns.
const DefaultTabStop = 4

// Line is one row of visible text as supplied by the host.
type Line struct {
	Number int    // line number in the document (0 based)
	Offset int    // byte offset of the first byte of Text in the document
	Text   string // line contents, without the line terminator
}

// SplitLines splits a block of visible text into Lines. firstLine and
// firstOffset locate the block within the document.
func SplitLines(text string, firstLine, firstOffset int) []Line {
	var lines []Line
	offset := firstOffset
	for i, s := range strings.Split(text, "\n") {
		lines = append(lines, Line{
			Number: firstLine + i,
			Offset: offset,
			Text:   strings.TrimSuffix(s, "\r"),
		})
		offset += len(s) + 1
	}
	return lines
}

// Position locates a byte within a line.
type Position struct {
	Line int
	Byte int
}

// Compare orders positions top to bottom, then left to right.
func (p Position) Compare(x Position) int {
	switch {
	case p.Line < x.Line:
		return -1
	case p.Line > x.Line:
		return 1
	case p.Byte < x.Byte:
		return -1
	case p.Byte > x.Byte:
		return 1
	}
	return 0
}

// Match is one occurrence of a search key in the visible text.
type Match struct {
	Line   int // line number
	Byte   int // byte offset within the line
	Offset int // byte offset within the document
	Column int // display column of the first character
	Len    int // length in characters
	Size   int // length in bytes
}

// Position returns where the match starts.
func (m Match) Position() Position {
	return Position{Line: m.Line, Byte: m.Byte}
}

// End returns the document offset just past the match.
func (m Match) End() int {
	return m.Offset + m.Size
}

// DisplayColumn returns the screen column at which the byte at
// byteOffset of s is drawn, expanding tabs to tabStop and counting wide
// characters as two cells.
func DisplayColumn(s string, byteOffset, tabStop int) int {
	if tabStop < 1 {
		tabStop = DefaultTabStop
	}
	if byteOffset > len(s) {
		byteOffset = len(s)
	}

	col := 0
	for _, c := range s[:byteOffset] {
		if c == '\t' {
			col += tabStop - col%tabStop
			continue
		}
		col += runewidth.RuneWidth(c)
	}
	return col
}
