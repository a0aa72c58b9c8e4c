package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// An InputField is a single-line input box. The cursor position and scroll
// offset count runes.
type InputField struct {
	screen    *tcell.Screen
	text      []rune
	cursorPos int
	scrollPos int

	baseComponent
}

func NewInputField(screen *tcell.Screen, text string, theme *Theme) *InputField {
	f := &InputField{
		screen:        screen,
		text:          []rune(text),
		baseComponent: baseComponent{theme: theme},
	}
	f.cursorPos = len(f.text) // Start typing after any text given
	return f
}

func (f *InputField) GetText() string {
	return string(f.text)
}

// SetText replaces the contents and moves the cursor past the last rune.
func (f *InputField) SetText(text string) {
	f.text = []rune(text)
	f.SetCursorPos(len(f.text))
}

func (f *InputField) GetCursorPos() int {
	return f.cursorPos
}

// SetCursorPos sets the cursor position offset. Offset is clamped to possible values.
// The InputField is scrolled to show the new cursor position.
func (f *InputField) SetCursorPos(offset int) {
	offset = Clamp(offset, 0, len(f.text))

	visible := Max(f.width-2, 1)
	if offset >= f.scrollPos+visible { // If cursor position is out of view to the right...
		f.scrollPos = offset - visible + 1 // Scroll just enough to view that column
	} else if offset < f.scrollPos { // If cursor position is out of view to the left...
		f.scrollPos = offset
	}

	f.cursorPos = offset
	f.updateCursorVisibility()
}

func (f *InputField) updateCursorVisibility() {
	if f.focused && f.screen != nil {
		col := runewidth.StringWidth(string(f.text[f.scrollPos:f.cursorPos]))
		(*f.screen).ShowCursor(f.x+1+col, f.y)
	}
}

// Insert writes str at the cursor.
func (f *InputField) Insert(str string) {
	runes := []rune(str)
	text := make([]rune, 0, len(f.text)+len(runes))
	text = append(text, f.text[:f.cursorPos]...)
	text = append(text, runes...)
	f.text = append(text, f.text[f.cursorPos:]...)
	f.SetCursorPos(f.cursorPos + len(runes))
}

// Delete with `forward` false will backspace, destroying the rune before the cursor,
// while Delete with `forward` true will delete the rune after the cursor.
func (f *InputField) Delete(forward bool) {
	if forward {
		if f.cursorPos < len(f.text) {
			f.text = append(f.text[:f.cursorPos], f.text[f.cursorPos+1:]...)
		}
	} else if f.cursorPos > 0 {
		f.text = append(f.text[:f.cursorPos-1], f.text[f.cursorPos:]...)
		f.SetCursorPos(f.cursorPos - 1)
	}
}

func (f *InputField) Draw(s tcell.Screen) {
	style := f.theme.GetOrDefault("InputField")

	DrawRect(s, f.x, f.y, f.width, Max(f.height, 1), ' ', style) // Draw background
	s.SetContent(f.x, f.y, '[', nil, style)
	s.SetContent(f.x+f.width-1, f.y, ']', nil, style)

	if len(f.text) > 0 {
		DrawStrClipped(s, f.x+1, f.y, f.width-2, string(f.text[f.scrollPos:]), style)
	}

	f.updateCursorVisibility()
}

func (f *InputField) SetFocused(v bool) {
	f.focused = v
	if v {
		f.updateCursorVisibility()
	} else if f.screen != nil {
		(*f.screen).HideCursor()
	}
}

func (f *InputField) GetMinSize() (int, int) {
	return 3, 1
}

func (f *InputField) HandleEvent(event tcell.Event) bool {
	switch ev := event.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyLeft:
			f.SetCursorPos(f.cursorPos - 1)
		case tcell.KeyRight:
			f.SetCursorPos(f.cursorPos + 1)
		case tcell.KeyHome:
			f.SetCursorPos(0)
		case tcell.KeyEnd:
			f.SetCursorPos(len(f.text))
		case tcell.KeyBackspace, tcell.KeyBackspace2:
			f.Delete(false)
		case tcell.KeyDelete:
			f.Delete(true)
		case tcell.KeyRune:
			f.Insert(string(ev.Rune()))
		default:
			return false
		}
		return true
	}
	return false
}
