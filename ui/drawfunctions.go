package ui

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// DrawRect renders a filled box at `x` and `y`, of size `width` and `height`.
// Will not call `Show()`.
func DrawRect(s tcell.Screen, x, y, width, height int, char rune, style tcell.Style) {
	for col := x; col < x+width; col++ {
		for row := y; row < y+height; row++ {
			s.SetContent(col, row, char, nil, style)
		}
	}
}

// DrawStr renders each rune of str from `x` and `y`, advancing by the cell
// width of every rune. A '\n' continues on the next row, back at `x`. Returns
// the number of columns used by the widest row.
func DrawStr(s tcell.Screen, x, y int, str string, style tcell.Style) int {
	var col, widest int
	for _, r := range str {
		if r == '\n' {
			y++
			col = 0
			continue
		}
		s.SetContent(x+col, y, r, nil, style)
		col += runewidth.RuneWidth(r)
		widest = Max(widest, col)
	}
	return widest
}

// DrawStrClipped is DrawStr on a single row that stops before `width` columns.
func DrawStrClipped(s tcell.Screen, x, y, width int, str string, style tcell.Style) {
	DrawStr(s, x, y, runewidth.Truncate(str, width, "…"), style)
}

// DrawRectOutline draws only the outline of a rectangle, using `ul`, `ur`, `bl`, and `br`
// for the corner runes, and `hor` and `vert` for the horizontal and vertical runes, respectively.
func DrawRectOutline(s tcell.Screen, x, y, _width, _height int, ul, ur, bl, br, hor, vert rune, style tcell.Style) {
	width := x + _width - 1   // Length across
	height := y + _height - 1 // Length top-to-bottom

	// Horizontals and verticals
	for col := x + 1; col < width; col++ {
		s.SetContent(col, y, hor, nil, style)      // Top line
		s.SetContent(col, height, hor, nil, style) // Bottom line
	}
	for row := y + 1; row < height; row++ {
		s.SetContent(x, row, vert, nil, style)     // Left line
		s.SetContent(width, row, vert, nil, style) // Right line
	}
	// Corners
	s.SetContent(x, y, ul, nil, style)
	s.SetContent(width, y, ur, nil, style)
	s.SetContent(x, height, bl, nil, style)
	s.SetContent(width, height, br, nil, style)
}

// DrawRectOutlineDefault calls DrawRectOutline with the default edge runes.
func DrawRectOutlineDefault(s tcell.Screen, x, y, width, height int, style tcell.Style) {
	DrawRectOutline(s, x, y, width, height, '┌', '┐', '└', '┘', '─', '│', style)
}

// DrawWindow draws a filled and outlined box with `title` centered in a header
// row along its top edge.
func DrawWindow(s tcell.Screen, x, y, width, height int, title string, theme *Theme) {
	style := theme.GetOrDefault("Window")
	headerStyle := theme.GetOrDefault("WindowHeader")

	DrawRect(s, x, y, width, height, ' ', style)
	DrawRectOutlineDefault(s, x, y+1, width, height-1, style)

	DrawRect(s, x, y, width, 1, ' ', headerStyle)
	title = runewidth.Truncate(title, width-2, "…")
	pad := Max(0, (width-runewidth.StringWidth(title))/2)
	DrawStr(s, x+pad, y, title, headerStyle)
}

// padRight fills str with spaces up to `width` columns.
func padRight(str string, width int) string {
	if w := runewidth.StringWidth(str); w < width {
		return str + strings.Repeat(" ", width-w)
	}
	return str
}
