package ui

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// An InputDialog is a window with an input and buttons for entering a single
// line, like the name of a new file. Enter in the input field confirms, as does
// the Confirm button; Escape cancels.
type InputDialog struct {
	Title           string
	ConfirmCallback func(string) // Called with the trimmed text of the input
	CancelCallback  func()       // Called when the dialog has been canceled by the user

	tabOrder    []Component
	tabOrderIdx int

	inputField    *InputField
	confirmButton *Button
	cancelButton  *Button

	baseComponent
}

func NewInputDialog(screen *tcell.Screen, title, text string, theme *Theme, confirmCallback func(string), cancelCallback func()) *InputDialog {
	dialog := &InputDialog{
		Title:           title,
		ConfirmCallback: confirmCallback,
		CancelCallback:  cancelCallback,
		baseComponent:   baseComponent{theme: theme},
	}

	dialog.inputField = NewInputField(screen, text, theme)
	dialog.confirmButton = NewButton("Confirm", theme, dialog.onConfirm)
	dialog.cancelButton = NewButton("Cancel", theme, dialog.onCancel)
	dialog.tabOrder = []Component{dialog.inputField, dialog.cancelButton, dialog.confirmButton}

	dialog.SetSize(dialog.GetMinSize())
	return dialog
}

// onConfirm is a callback called by the confirm button.
func (d *InputDialog) onConfirm() {
	if d.ConfirmCallback != nil {
		d.ConfirmCallback(strings.TrimSpace(d.inputField.GetText()))
	}
}

func (d *InputDialog) onCancel() {
	if d.CancelCallback != nil {
		d.CancelCallback()
	}
}

// GetText returns the text of the input field as it is.
func (d *InputDialog) GetText() string {
	return d.inputField.GetText()
}

func (d *InputDialog) Draw(s tcell.Screen) {
	DrawWindow(s, d.x, d.y, d.width, d.height, d.Title, d.theme)

	// Update positions of child components (dependent on size information that may not be available at SetPos() )
	btnWidth, _ := d.confirmButton.GetSize()
	d.confirmButton.SetPos(d.x+d.width-btnWidth-1, d.y+4) // Place "Confirm" button on right, bottom

	d.inputField.Draw(s)
	d.confirmButton.Draw(s)
	d.cancelButton.Draw(s)
	d.inputField.updateCursorVisibility() // The buttons do not move the cursor
}

func (d *InputDialog) SetFocused(v bool) {
	d.focused = v
	d.tabOrder[d.tabOrderIdx].SetFocused(v)
}

func (d *InputDialog) SetTheme(theme *Theme) {
	d.theme = theme
	for _, c := range d.tabOrder {
		c.SetTheme(theme)
	}
}

func (d *InputDialog) SetPos(x, y int) {
	d.x, d.y = x, y
	d.inputField.SetPos(d.x+1, d.y+2)   // Center input field
	d.cancelButton.SetPos(d.x+1, d.y+4) // Place "Cancel" button on left, bottom
}

func (d *InputDialog) GetMinSize() (int, int) {
	return Max(runewidth.StringWidth(d.Title)+2, 40), 6
}

func (d *InputDialog) SetSize(width, height int) {
	minX, minY := d.GetMinSize()
	d.width, d.height = Max(width, minX), Max(height, minY)

	d.inputField.SetSize(d.width-2, 1)
}

func (d *InputDialog) HandleEvent(event tcell.Event) bool {
	switch ev := event.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyTab:
			d.tabOrder[d.tabOrderIdx].SetFocused(false)

			d.tabOrderIdx++
			if d.tabOrderIdx >= len(d.tabOrder) {
				d.tabOrderIdx = 0
			}

			d.tabOrder[d.tabOrderIdx].SetFocused(true)
			return true
		case tcell.KeyEscape:
			d.onCancel()
			return true
		case tcell.KeyEnter:
			if d.tabOrderIdx == 0 { // Enter in the input field
				d.onConfirm()
				return true
			}
		}
	}
	return d.tabOrder[d.tabOrderIdx].HandleEvent(event)
}
