package buffer

import (
	"github.com/gdamore/tcell/v2"
)

// A Match is a classified Span together with the style it is painted with.
type Match struct {
	Span
	Style tcell.Style
}

// lineInfo is everything the Highlighter remembers about one line.
type lineInfo struct {
	matches         []Match
	startsInComment bool // Input state the line was classified with
	endsInComment   bool // Output state, the input of the next line
	valid           bool
}

// A Highlighter can answer how to color any part of a provided Buffer. It
// classifies one line at a time, feeding the block comment state each line
// ends in to the line after it, and keeps the result per line until the line
// is invalidated by an edit.
type Highlighter struct {
	Buffer      Buffer
	Classifier  Classifier
	Colorscheme *Colorscheme

	lines []lineInfo
}

func NewHighlighter(buffer Buffer, classifier Classifier, colorscheme *Colorscheme) *Highlighter {
	return &Highlighter{
		Buffer:      buffer,
		Classifier:  classifier,
		Colorscheme: colorscheme,
		lines:       make([]lineInfo, buffer.Lines()),
	}
}

// resize grows or shrinks the per-line state to the number of lines in the
// Buffer. Lines past the old end start out invalidated.
func (h *Highlighter) resize() {
	lines := h.Buffer.Lines()
	if len(h.lines) < lines {
		h.lines = append(h.lines, make([]lineInfo, lines-len(h.lines))...) // Extend
	} else if len(h.lines) > lines {
		h.lines = h.lines[:lines]
	}
}

// stateBefore returns whether line starts inside a block comment.
func (h *Highlighter) stateBefore(line int) bool {
	if line <= 0 {
		return false
	}
	return h.lines[line-1].endsInComment
}

// HighlightLine classifies line again using the state the line before it
// ended in. When the state this line ends in differs from the one the next
// line was classified with, the next line is classified again, and so on
// until a line ends in an unchanged state or the document ends. Lines before
// line must be valid. Returns the number of lines classified.
func (h *Highlighter) HighlightLine(line int) int {
	h.resize()
	if line < 0 || line >= len(h.lines) {
		return 0
	}

	var count int
	for ; line < len(h.lines); line++ {
		in := h.stateBefore(line)
		spans, out := h.Classifier.ClassifyLine(h.Buffer.LineText(line), in)

		h.lines[line] = lineInfo{
			matches:         h.paint(spans),
			startsInComment: in,
			endsInComment:   out,
			valid:           true,
		}
		count++

		// An invalid next line is classified when it is next asked for, from
		// this line's state.
		if next := line + 1; next >= len(h.lines) || !h.lines[next].valid || h.lines[next].startsInComment == out {
			break
		}
	}

	return count
}

// UpdateLines forces the highlighting for lines between startLine and
// endLine, inclusively, to be updated. Any invalidated line before startLine
// is updated first, since its state flows into startLine. It is more efficient
// to mark lines as invalidated when changes occur and call
// UpdateInvalidatedLines(...).
func (h *Highlighter) UpdateLines(startLine, endLine int) {
	h.UpdateInvalidatedLines(startLine - 1)
	for i := Max(startLine, 0); i <= endLine && i < len(h.lines); i++ {
		h.HighlightLine(i)
	}
}

// UpdateInvalidatedLines updates every invalidated line from the start of the
// document up to endLine, inclusively.
func (h *Highlighter) UpdateInvalidatedLines(endLine int) {
	h.resize()
	for i := 0; i <= endLine && i < len(h.lines); i++ {
		if !h.lines[i].valid {
			h.HighlightLine(i)
		}
	}
}

func (h *Highlighter) HasInvalidatedLines(startLine, endLine int) bool {
	h.resize()
	for i := Max(startLine, 0); i <= endLine && i < len(h.lines); i++ {
		if !h.lines[i].valid {
			return true
		}
	}
	return false
}

// InvalidateLines marks the lines between startLine and endLine, inclusively,
// to be classified again. The state each line was classified with is kept, so
// that once a line is updated the cascade can stop at the first line whose
// input did not change.
func (h *Highlighter) InvalidateLines(startLine, endLine int) {
	h.resize()
	for i := Max(startLine, 0); i <= endLine && i < len(h.lines); i++ {
		h.lines[i].valid = false
	}
}

// GetLineMatches returns the painted spans of line, updating any invalidated
// lines up to it first. The returned Matches are ordered by column and cover
// the whole line.
func (h *Highlighter) GetLineMatches(line int) []Match {
	h.UpdateInvalidatedLines(line)
	if line < 0 || line >= len(h.lines) {
		return nil
	}
	return h.lines[line].matches
}

// LineEndsInComment reports whether line ends inside an unterminated block
// comment.
func (h *Highlighter) LineEndsInComment(line int) bool {
	h.UpdateInvalidatedLines(line)
	if line < 0 || line >= len(h.lines) {
		return false
	}
	return h.lines[line].endsInComment
}

// Recolor applies the current Colorscheme to every line already classified,
// without classifying any line again.
func (h *Highlighter) Recolor() {
	for i := range h.lines {
		for j := range h.lines[i].matches {
			m := &h.lines[i].matches[j]
			m.Style = h.Colorscheme.GetStyle(m.Category)
		}
	}
}

func (h *Highlighter) paint(spans []Span) []Match {
	matches := make([]Match, len(spans))
	for i, s := range spans {
		matches[i] = Match{s, h.Colorscheme.GetStyle(s.Category)}
	}
	return matches
}

func (h *Highlighter) GetStyle(match Match) tcell.Style {
	return h.Colorscheme.GetStyle(match.Category)
}
