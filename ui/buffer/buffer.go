package buffer

import (
	"io"
)

// A Buffer is the text of one open document, addressed by line and column. All
// lines and columns start at zero, columns count runes, and all "end" ranges
// are inclusive.
//
// Lines out of range are panics. If you are unsure your position may be out of
// bounds, use ClampLineCol() or compare with Lines() or RunesInLine().
type Buffer interface {
	// Line returns the bytes of the given line, including the ending line-
	// delimiter. Data returned may or may not be a copy: do not write to it.
	Line(line int) []byte

	// LineText returns the given line as a string without its delimiter. This
	// is the text the highlighter classifies.
	LineText(line int) string

	// Slice returns the bytes from startLine, startCol, to endLine, endCol,
	// inclusive bounds.
	Slice(startLine, startCol, endLine, endCol int) []byte

	// Bytes returns all of the bytes in the buffer, very likely a copy.
	Bytes() []byte

	// Insert copies value into the position at line, col.
	Insert(line, col int, value []byte)

	// Remove deletes any characters between startLine, startCol, and endLine,
	// endCol, inclusive bounds.
	Remove(startLine, startCol, endLine, endCol int)

	// Count returns the number of occurrences of sequence between start and
	// end, exclusive end.
	Count(startLine, startCol, endLine, endCol int, sequence []byte) int

	// Len returns the number of bytes in the buffer.
	Len() int

	// Lines returns the number of lines in the buffer. There is always at
	// least one line, even in an empty buffer.
	Lines() int

	// RunesInLine returns the number of runes in the given line, excluding the
	// line delimiter.
	RunesInLine(line int) int

	// ClampLineCol clamps line to the lines of the buffer, then col to
	// between zero and the end of that line.
	ClampLineCol(line, col int) (int, int)

	// LineColToPos returns the byte offset of line, col. A col past the end of
	// the line yields the offset of the line delimiter.
	LineColToPos(line, col int) int

	WriteTo(w io.Writer) (int64, error)
}
