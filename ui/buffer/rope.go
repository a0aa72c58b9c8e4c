package buffer

import (
	"io"
	"strings"
	"unicode/utf8"

	"github.com/zyedidia/rope"
)

// RopeBuffer is a Buffer backed by a rope, so edits in the middle of a long
// document do not copy the whole document.
type RopeBuffer rope.Node

func NewRopeBuffer(contents []byte) *RopeBuffer {
	return (*RopeBuffer)(rope.New(contents))
}

func (b *RopeBuffer) node() *rope.Node {
	return (*rope.Node)(b)
}

// lineBounds returns the byte offset of the first byte of line, and of the
// byte after its last byte, delimiter included. Panics if the buffer does
// not have that many lines.
func (b *RopeBuffer) lineBounds(line int) (start, end int) {
	n := b.node()
	length := n.Len()
	start, end = 0, length

	found := 0
	n.IndexAllFunc(0, length, []byte{'\n'}, func(idx int) bool {
		if found == line {
			end = idx + 1 // Keep the delimiter
			return true
		}
		found++
		start = idx + 1
		return false
	})

	if found < line {
		panic("lineBounds: not enough lines in buffer to reach line")
	}
	return start, end
}

// Line returns the bytes of line, including the ending line-delimiter.
func (b *RopeBuffer) Line(line int) []byte {
	start, end := b.lineBounds(line)
	if start == end {
		return []byte{}
	}
	return b.node().Slice(start, end)
}

// LineText returns line without its "\n" or "\r\n" delimiter.
func (b *RopeBuffer) LineText(line int) string {
	text := string(b.Line(line))
	text = strings.TrimSuffix(text, "\n")
	return strings.TrimSuffix(text, "\r")
}

// Slice returns the bytes from startLine, startCol, to endLine, endCol,
// inclusive bounds.
func (b *RopeBuffer) Slice(startLine, startCol, endLine, endCol int) []byte {
	start := b.LineColToPos(startLine, startCol)
	end := b.runeEndPos(endLine, endCol)
	if end <= start {
		return []byte{}
	}
	return b.node().Slice(start, end)
}

func (b *RopeBuffer) Bytes() []byte {
	return b.node().Value()
}

func (b *RopeBuffer) Insert(line, col int, value []byte) {
	b.node().Insert(b.LineColToPos(line, col), value)
}

// Remove deletes the runes between startLine, startCol, and endLine, endCol,
// inclusive bounds. A col one past the end of a line removes its delimiter.
func (b *RopeBuffer) Remove(startLine, startCol, endLine, endCol int) {
	start := b.LineColToPos(startLine, startCol)
	end := b.runeEndPos(endLine, endCol)
	if end > start {
		b.node().Remove(start, end)
	}
}

// runeEndPos returns the byte offset after the rune at line, col.
func (b *RopeBuffer) runeEndPos(line, col int) int {
	pos := b.LineColToPos(line, col)
	if length := b.Len(); pos >= length {
		return length
	}
	data := b.node().Slice(pos, Min(pos+utf8.UTFMax, b.Len()))
	if len(data) > 1 && data[0] == '\r' && data[1] == '\n' {
		return pos + 2
	}
	_, size := utf8.DecodeRune(data)
	return pos + size
}

// Count returns the number of occurrences of sequence between start and end,
// exclusive end.
func (b *RopeBuffer) Count(startLine, startCol, endLine, endCol int, sequence []byte) int {
	startPos := b.LineColToPos(startLine, startCol)
	endPos := b.LineColToPos(endLine, endCol)
	return b.node().Count(startPos, endPos, sequence)
}

func (b *RopeBuffer) Len() int {
	return b.node().Len()
}

// Lines counts the '\n' delimiters in the buffer, plus one for the last line.
func (b *RopeBuffer) Lines() int {
	n := b.node()
	return n.Count(0, n.Len(), []byte{'\n'}) + 1
}

func (b *RopeBuffer) RunesInLine(line int) int {
	return utf8.RuneCountInString(b.LineText(line))
}

// ClampLineCol clamps line to the lines of the buffer, then col to between
// zero and the number of runes in that line.
func (b *RopeBuffer) ClampLineCol(line, col int) (int, int) {
	line = Clamp(line, 0, b.Lines()-1)
	col = Clamp(col, 0, b.RunesInLine(line))
	return line, col
}

// LineColToPos returns the byte offset of the rune at line, col. If col is
// greater than the length of the line, the offset of the line delimiter is
// returned, instead.
func (b *RopeBuffer) LineColToPos(line, col int) int {
	start, _ := b.lineBounds(line)
	text := b.LineText(line)

	pos := start
	for i := range text { // i is a byte index of each rune
		if col == 0 {
			return start + i
		}
		col--
	}
	pos += len(text)
	return pos
}

func (b *RopeBuffer) WriteTo(w io.Writer) (int64, error) {
	return b.node().WriteTo(w)
}
