package ui

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

type MessageDialogKind uint8

const (
	MessageKindNormal MessageDialogKind = iota
	MessageKindWarning
	MessageKindError
)

// Index of messageDialogKindTitles is any MessageDialogKind.
var messageDialogKindTitles = [3]string{
	"Message",
	"Warning!",
	"Error!",
}

// A MessageDialog shows a message with a row of option buttons. Callback is
// called with the text of the chosen option, or an empty string when the
// dialog is dismissed with Escape.
type MessageDialog struct {
	Title    string
	Kind     MessageDialogKind
	Callback func(string)

	message        string
	messageWrapped string

	buttons     []*Button
	selectedIdx int

	baseComponent
}

func NewMessageDialog(title string, message string, kind MessageDialogKind, options []string, theme *Theme, callback func(string)) *MessageDialog {
	if title == "" {
		title = messageDialogKindTitles[kind] // Use default title
	}

	if len(options) == 0 {
		options = []string{"OK"}
	}

	dialog := &MessageDialog{
		Title:         title,
		Kind:          kind,
		Callback:      callback,
		baseComponent: baseComponent{theme: theme},
	}

	dialog.buttons = make([]*Button, len(options))
	for i := range options {
		option := options[i]
		dialog.buttons[i] = NewButton(option, theme, func() {
			if dialog.Callback != nil {
				dialog.Callback(option)
			}
		})
	}

	// Set the dialog's size to its minimum size
	dialog.SetSize(0, 0)
	dialog.SetMessage(message)

	return dialog
}

func (d *MessageDialog) SetMessage(message string) {
	d.message = message
	d.messageWrapped = runewidth.Wrap(message, d.width-2)
	// Update height:
	_, minHeight := d.GetMinSize()
	d.height = Max(d.height, minHeight)
}

func (d *MessageDialog) GetMessage() string {
	return d.message
}

// SelectOption focuses the button at idx, clamped to the available options.
func (d *MessageDialog) SelectOption(idx int) {
	d.buttons[d.selectedIdx].SetFocused(false)
	d.selectedIdx = Clamp(idx, 0, len(d.buttons)-1)
	d.buttons[d.selectedIdx].SetFocused(d.focused)
}

func (d *MessageDialog) Draw(s tcell.Screen) {
	DrawWindow(s, d.x, d.y, d.width, d.height, d.Title, d.theme)

	// DrawStr will handle '\n' characters for us.
	DrawStr(s, d.x+1, d.y+2, d.messageWrapped, d.theme.GetOrDefault("Window"))

	col := d.width // Start from the right side
	for i := len(d.buttons) - 1; i >= 0; i-- {
		width, _ := d.buttons[i].GetSize()
		col -= width + 1 // Move left enough for each button (1 for padding)
		d.buttons[i].SetPos(d.x+col, d.y+d.height-2)
		d.buttons[i].Draw(s)
	}
}

func (d *MessageDialog) SetFocused(v bool) {
	d.focused = v
	d.buttons[d.selectedIdx].SetFocused(v)
}

func (d *MessageDialog) SetTheme(theme *Theme) {
	d.theme = theme
	for i := range d.buttons {
		d.buttons[i].SetTheme(theme)
	}
}

func (d *MessageDialog) GetMinSize() (int, int) {
	lines := strings.Count(d.messageWrapped, "\n") + 1

	buttonsWidth := 1
	for i := range d.buttons {
		width, _ := d.buttons[i].GetSize()
		buttonsWidth += width + 1
	}

	return Max(Max(runewidth.StringWidth(d.Title)+2, 30), buttonsWidth), 2 + lines + 3
}

func (d *MessageDialog) SetSize(width, height int) {
	minWidth, minHeight := d.GetMinSize()
	d.width, d.height = Max(width, minWidth), Max(height, minHeight)
}

func (d *MessageDialog) HandleEvent(event tcell.Event) bool {
	if ev, ok := event.(*tcell.EventKey); ok {
		switch ev.Key() {
		case tcell.KeyTab, tcell.KeyRight:
			d.SelectOption((d.selectedIdx + 1) % len(d.buttons))
			return true
		case tcell.KeyBacktab, tcell.KeyLeft:
			d.SelectOption((d.selectedIdx + len(d.buttons) - 1) % len(d.buttons))
			return true
		case tcell.KeyEscape:
			if d.Callback != nil {
				d.Callback("")
			}
			return true
		}
	}
	return d.buttons[d.selectedIdx].HandleEvent(event)
}
