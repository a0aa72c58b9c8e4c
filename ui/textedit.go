package ui

import (
	"bytes"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/fivemoreminix/vexed/ui/buffer"
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// TextEdit is a field for line-based editing. It highlights its contents with
// the rules of its Language, and contains the various information about
// content being edited.
type TextEdit struct {
	Buffer      buffer.Buffer
	Highlighter *buffer.Highlighter
	Language    *buffer.Language
	LineNumbers bool   // Whether to render line numbers (and therefore the column)
	Dirty       bool   // Whether the buffer has been edited
	UseHardTabs bool   // When true, tabs are '\t'
	TabSize     int    // How many spaces to indent by
	IsCRLF      bool   // Whether the file's line endings are CRLF (\r\n) or LF (\n)
	FilePath    string // Will be empty if the file has not been saved yet

	screen           *tcell.Screen // We keep our own reference to the screen for cursor purposes.
	cursor           buffer.Cursor
	scrollx, scrolly int // X and Y offset of view, known as scroll

	selectAnchor buffer.Cursor // Where the selection started; selectMode determines if it is used
	selectMode   bool          // Whether the user is actively selecting text

	baseComponent
}

// NewTextEdit will initialize the buffer using the given 'contents'. If the 'filePath' or 'FilePath' is empty,
// it can be assumed that the TextEdit has no file association, or it is unsaved.
func NewTextEdit(screen *tcell.Screen, filePath string, contents []byte, lang *buffer.Language, theme *Theme) *TextEdit {
	te := &TextEdit{
		Language:    lang,
		LineNumbers: true,
		UseHardTabs: true,
		TabSize:     4,
		FilePath:    filePath,

		screen:        screen,
		baseComponent: baseComponent{theme: theme},
	}
	te.SetContents(contents)
	return te
}

// SetContents applies the bytes to the internal buffer of the TextEdit component.
// The contents are determined to be either CRLF or LF based on the first line-ending.
func (t *TextEdit) SetContents(contents []byte) {
	t.IsCRLF = false
	if i := bytes.IndexByte(contents, '\n'); i > 0 && contents[i-1] == '\r' {
		t.IsCRLF = true
	}

	t.Buffer = buffer.NewRopeBuffer(contents)
	t.cursor = buffer.NewCursor(&t.Buffer)
	t.selectMode = false
	t.scrollx, t.scrolly = 0, 0

	colorscheme := buffer.DefaultColorscheme()
	if t.Highlighter != nil {
		colorscheme = t.Highlighter.Colorscheme // Keep a scheme set before
	}
	t.Highlighter = buffer.NewHighlighter(t.Buffer, buffer.NewRuleSet(t.Language), colorscheme)
}

// SetColorscheme replaces the colors of every category. An incomplete scheme
// is refused and the colors in use are kept.
func (t *TextEdit) SetColorscheme(colors map[string]buffer.RGB) error {
	return t.Highlighter.SetColorscheme(colors)
}

// GetLineDelimiter returns "\r\n" for a CRLF buffer, or "\n" for an LF buffer.
func (t *TextEdit) GetLineDelimiter() string {
	if t.IsCRLF {
		return "\r\n"
	}
	return "\n"
}

// Save writes the buffer to FilePath and clears Dirty.
func (t *TextEdit) Save() error {
	if t.FilePath == "" {
		return fmt.Errorf("no file path to save to")
	}

	f, err := os.Create(t.FilePath)
	if err != nil {
		return err
	}
	if _, err := t.Buffer.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	t.Dirty = false
	return nil
}

// invalidateFrom marks the lines changed by an edit starting on `line`. When the
// edit added or removed lines, every line after it has moved, so the rest of
// the document is classified again.
func (t *TextEdit) invalidateFrom(line int, linesChanged bool) {
	if linesChanged {
		t.Highlighter.InvalidateLines(line, math.MaxInt32)
	} else {
		t.Highlighter.InvalidateLines(line, line)
	}
}

// selectionBounds returns the first selected position and the position after
// the last, in document order.
func (t *TextEdit) selectionBounds() (start, end buffer.Cursor) {
	aLine, aCol := t.selectAnchor.GetLineCol()
	cLine, cCol := t.cursor.GetLineCol()
	if aLine < cLine || (aLine == cLine && aCol <= cCol) {
		return t.selectAnchor, t.cursor
	}
	return t.cursor, t.selectAnchor
}

// HasSelection returns whether at least one rune is selected.
func (t *TextEdit) HasSelection() bool {
	return t.selectMode && !t.selectAnchor.Eq(t.cursor)
}

// GetSelectedBytes returns a byte slice of the region of the buffer that is currently selected.
// If the returned slice is empty, then nothing was selected. The slice returned may or may not
// be a copy of the buffer, so do not write to it.
func (t *TextEdit) GetSelectedBytes() []byte {
	if !t.HasSelection() {
		return []byte{}
	}
	start, end := t.selectionBounds()
	startLine, startCol := start.GetLineCol()
	endLine, endCol := end.Left().GetLineCol() // Slice is inclusive
	return t.Buffer.Slice(startLine, startCol, endLine, endCol)
}

// deleteSelection removes the selected runes and puts the cursor where they
// started.
func (t *TextEdit) deleteSelection() {
	start, end := t.selectionBounds()
	startLine, startCol := start.GetLineCol()
	lastLine, lastCol := end.Left().GetLineCol()
	endLine, _ := end.GetLineCol()

	t.Buffer.Remove(startLine, startCol, lastLine, lastCol)
	t.selectMode = false
	t.cursor = t.cursor.SetLineCol(startLine, startCol)

	t.invalidateFrom(startLine, startLine != endLine)
}

// Delete with `forwards` false will backspace, destroying the character before the cursor,
// while Delete with `forwards` true will delete the character after (or on) the cursor.
// With a selection, only the selection is deleted.
func (t *TextEdit) Delete(forwards bool) {
	if t.HasSelection() {
		t.Dirty = true
		t.deleteSelection()
		t.ScrollToCursor()
		t.updateCursorVisibility()
		return
	}
	t.selectMode = false

	line, col := t.cursor.GetLineCol()
	if forwards {
		atLineEnd := col >= t.Buffer.RunesInLine(line)
		if atLineEnd && line >= t.Buffer.Lines()-1 {
			return // Nothing after the cursor
		}
		t.Buffer.Remove(line, col, line, col) // At the end of a line this joins the next line
		t.invalidateFrom(line, atLineEnd)
	} else {
		if line == 0 && col == 0 {
			return // Nothing before the cursor
		}
		t.cursor = t.cursor.Left() // Back up to that character
		line, col = t.cursor.GetLineCol()
		joined := col >= t.Buffer.RunesInLine(line)
		t.Buffer.Remove(line, col, line, col)
		t.invalidateFrom(line, joined)
	}

	t.Dirty = true
	t.ScrollToCursor()
	t.updateCursorVisibility()
}

// Insert writes `contents` at the cursor position and moves the cursor after it. Line
// delimiters are written as the delimiter of the TextEdit, and tabs as spaces unless
// UseHardTabs is set. Overwrites any active selection.
func (t *TextEdit) Insert(contents string) {
	if t.HasSelection() {
		t.deleteSelection()
	}
	t.selectMode = false

	var sb strings.Builder
	var lines int // Line delimiters written
	runes := []rune(contents)
	for i := 0; i < len(runes); i++ {
		switch ch := runes[i]; ch {
		case '\r':
			if i+1 < len(runes) && runes[i+1] == '\n' {
				i++ // Consume '\n' after
			}
			fallthrough
		case '\n':
			sb.WriteString(t.GetLineDelimiter())
			lines++
		case '\t':
			if !t.UseHardTabs {
				sb.WriteString(strings.Repeat(" ", t.TabSize))
				break
			}
			sb.WriteRune(ch)
		default:
			sb.WriteRune(ch)
		}
	}

	str := sb.String()
	if str == "" {
		return
	}

	line, col := t.cursor.GetLineCol()
	t.Buffer.Insert(line, col, []byte(str))
	t.invalidateFrom(line, lines > 0)

	if lines > 0 {
		col = utf8.RuneCountInString(str[strings.LastIndexByte(str, '\n')+1:])
	} else {
		col += utf8.RuneCountInString(str)
	}
	t.cursor = t.cursor.SetLineCol(line+lines, col)

	t.Dirty = true
	t.ScrollToCursor()
	t.updateCursorVisibility()
}

// visualCol returns the screen column offset of the rune at col in line, with
// hard tabs expanded and wide runes counted.
func (t *TextEdit) visualCol(line, col int) int {
	var vcol, i int
	for _, r := range t.Buffer.LineText(line) {
		if i >= col {
			break
		}
		vcol += t.runeWidth(r)
		i++
	}
	return vcol
}

func (t *TextEdit) runeWidth(r rune) int {
	if r == '\t' {
		return t.TabSize
	}
	return runewidth.RuneWidth(r)
}

// updateCursorVisibility sets the position of the terminal's cursor with the
// cursor of the TextEdit. Sends a signal to show the cursor if the TextEdit
// is focused.
func (t *TextEdit) updateCursorVisibility() {
	if t.focused && t.screen != nil {
		columnWidth := t.getColumnWidth()
		line, col := t.cursor.GetLineCol()
		(*t.screen).ShowCursor(t.x+columnWidth+t.visualCol(line, col)-t.scrollx, t.y+line-t.scrolly)
	}
}

// ScrollToCursor scrolls the view if the cursor is out of view.
func (t *TextEdit) ScrollToCursor() {
	line, col := t.cursor.GetLineCol()

	// Scroll the screen when going to lines out of view
	if line >= t.scrolly+t.height { // If the new line is below view...
		t.scrolly = line - t.height + 1 // Scroll just enough to view that line
	} else if line < t.scrolly { // If the new line is above view
		t.scrolly = line
	}

	textWidth := t.width - t.getColumnWidth()
	vcol := t.visualCol(line, col)

	// Scroll the screen horizontally when going to columns out of view
	if vcol >= t.scrollx+textWidth { // If the new column is right of view
		t.scrollx = vcol - textWidth + 1 // Scroll just enough to view that column
	} else if vcol < t.scrollx { // If the new column is left of view
		t.scrollx = vcol // Scroll left enough to view that column
	}
}

func (t *TextEdit) GetCursor() buffer.Cursor {
	return t.cursor
}

func (t *TextEdit) SetCursor(newCursor buffer.Cursor) {
	t.cursor = newCursor
	t.updateCursorVisibility()
}

// moveCursor applies a cursor movement. With `selecting`, the selection grows or
// shrinks from where it was started; otherwise any selection is dropped.
func (t *TextEdit) moveCursor(to buffer.Cursor, selecting bool) {
	if selecting && !t.selectMode {
		t.selectAnchor = t.cursor
		t.selectMode = true
	} else if !selecting {
		t.selectMode = false
	}
	t.cursor = to
	t.ScrollToCursor()
	t.updateCursorVisibility()
}

// GotoLine moves the cursor to the start of line, counted from one.
func (t *TextEdit) GotoLine(line int) {
	t.moveCursor(t.cursor.SetLineCol(line-1, 0), false)
}

// getColumnWidth returns the width of the line numbers column if it is present.
func (t *TextEdit) getColumnWidth() int {
	var columnWidth int
	if t.LineNumbers {
		// Set columnWidth to max count of line number digits
		columnWidth = Max(3, 1+len(strconv.Itoa(t.Buffer.Lines()))) // Column has minimum width of 2
	}
	return columnWidth
}

// isSelected returns whether the rune at line, col is part of the selection.
func (t *TextEdit) isSelected(line, col int) bool {
	if !t.HasSelection() {
		return false
	}
	start, end := t.selectionBounds()
	startLine, startCol := start.GetLineCol()
	endLine, endCol := end.GetLineCol()
	if line < startLine || line > endLine {
		return false
	}
	if line == startLine && col < startCol {
		return false
	}
	return line != endLine || col < endCol
}

// Draw renders the TextEdit component.
func (t *TextEdit) Draw(s tcell.Screen) {
	columnWidth := t.getColumnWidth()
	bufferLines := t.Buffer.Lines()

	baseStyle := t.theme.GetOrDefault("TextEdit")
	columnStyle := t.theme.GetOrDefault("TextEditColumn")
	selectedStyle := baseStyle.Reverse(true)

	_, bg, _ := baseStyle.Decompose()

	DrawRect(s, t.x, t.y, t.width, t.height, ' ', baseStyle)

	for lineY := t.y; lineY < t.y+t.height; lineY++ { // For each line we can draw...
		line := lineY + t.scrolly - t.y // The line number being drawn (starts at zero)
		if line >= bufferLines {
			break
		}

		if t.LineNumbers {
			lineNumStr := strconv.Itoa(line + 1)
			columnStr := fmt.Sprintf("%s%s│", strings.Repeat(" ", Max(columnWidth-len(lineNumStr)-1, 0)), lineNumStr) // Right align line number
			DrawStr(s, t.x, lineY, columnStr, columnStyle)
		}

		matches := t.Highlighter.GetLineMatches(line)
		var matchIdx int

		var vcol int // Column in the line, with tabs expanded
		col := 0     // Rune index into the line
		for _, r := range t.Buffer.LineText(line) {
			width := t.runeWidth(r)

			for matchIdx < len(matches)-1 && col >= matches[matchIdx].End() {
				matchIdx++
			}

			style := baseStyle
			if t.isSelected(line, col) {
				style = selectedStyle
			} else if matchIdx < len(matches) {
				fg, _, attr := matches[matchIdx].Style.Decompose()
				style = tcell.StyleDefault.Foreground(fg).Background(bg).Attributes(attr)
			}

			screenX := t.x + columnWidth + vcol - t.scrollx
			if vcol >= t.scrollx && screenX+width <= t.x+t.width {
				if r == '\t' {
					DrawRect(s, screenX, lineY, width, 1, ' ', style)
				} else {
					s.SetContent(screenX, lineY, r, nil, style)
				}
			}

			vcol += width
			col++
			if vcol-t.scrollx >= t.width-columnWidth {
				break // Past the right edge
			}
		}
	}

	t.updateCursorVisibility()
}

// SetFocused sets whether the TextEdit is focused. When focused, the cursor is set visible
// and its position is updated on every event.
func (t *TextEdit) SetFocused(v bool) {
	t.focused = v
	if v {
		t.updateCursorVisibility()
	} else if t.screen != nil {
		(*t.screen).HideCursor()
	}
}

// HandleEvent allows the TextEdit to handle `event` if it chooses, returns
// whether the TextEdit handled the event.
func (t *TextEdit) HandleEvent(event tcell.Event) bool {
	switch ev := event.(type) {
	case *tcell.EventKey:
		selecting := ev.Modifiers()&tcell.ModShift != 0

		switch ev.Key() {
		// Cursor movement
		case tcell.KeyUp:
			t.moveCursor(t.cursor.Up(), selecting)
		case tcell.KeyDown:
			t.moveCursor(t.cursor.Down(), selecting)
		case tcell.KeyLeft:
			t.moveCursor(t.cursor.Left(), selecting)
		case tcell.KeyRight:
			t.moveCursor(t.cursor.Right(), selecting)
		case tcell.KeyHome:
			t.moveCursor(t.cursor.Home(), selecting)
		case tcell.KeyEnd:
			t.moveCursor(t.cursor.End(), selecting)
		case tcell.KeyPgUp:
			line, col := t.cursor.GetLineCol()
			t.moveCursor(t.cursor.SetLineCol(line-t.height, col), selecting) // Go a page up
		case tcell.KeyPgDn:
			line, col := t.cursor.GetLineCol()
			t.moveCursor(t.cursor.SetLineCol(line+t.height, col), selecting) // Go a page down

		// Deleting
		case tcell.KeyBackspace, tcell.KeyBackspace2:
			t.Delete(false)
		case tcell.KeyDelete:
			t.Delete(true)

		// Other control
		case tcell.KeyTab:
			t.Insert("\t") // (can translate to spaces)
		case tcell.KeyEnter:
			t.Insert("\n")

		// Inserting
		case tcell.KeyRune:
			t.Insert(string(ev.Rune())) // Insert rune
		default:
			return false
		}
		return true
	}
	return false
}
