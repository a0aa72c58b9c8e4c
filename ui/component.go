package ui

import (
	"github.com/gdamore/tcell/v2"
)

// A Component is anything drawn in a rectangle of the screen that can take
// focus: the menu bar, the file explorer, editor tabs, and the dialogs. After
// constructing one, call SetPos() and SetSize() before drawing it.
type Component interface {
	// Draw renders the Component within its bounding rectangle.
	Draw(tcell.Screen)
	// SetFocused changes how the Component draws and whether it expects events.
	SetFocused(bool)
	// Applies the theme to the component and all of its children.
	SetTheme(*Theme)

	GetPos() (x, y int)
	SetPos(x, y int)

	// Returns the smallest size the Component can be.
	GetMinSize() (w, h int)
	GetSize() (w, h int)
	SetSize(w, h int)

	// HandleEvent returns true if the event was handled. Containers forward
	// events only to their focused child.
	HandleEvent(tcell.Event) bool
}

// baseComponent holds the position, size, focus, and theme shared by every
// Component. Embedders override what they need.
type baseComponent struct {
	focused       bool
	x, y          int
	width, height int
	theme         *Theme
}

// focusStyle returns the theme style key+"Focused" while focused, otherwise
// the style of key.
func (c *baseComponent) focusStyle(key string) tcell.Style {
	if c.focused {
		return c.theme.GetOrDefault(key + "Focused")
	}
	return c.theme.GetOrDefault(key)
}

func (c *baseComponent) SetFocused(v bool) {
	c.focused = v
}

func (c *baseComponent) SetTheme(theme *Theme) {
	c.theme = theme
}

func (c *baseComponent) GetPos() (int, int) {
	return c.x, c.y
}

func (c *baseComponent) SetPos(x, y int) {
	c.x, c.y = x, y
}

func (c *baseComponent) GetMinSize() (int, int) {
	return 0, 0
}

func (c *baseComponent) GetSize() (int, int) {
	return c.width, c.height
}

func (c *baseComponent) SetSize(width, height int) {
	c.width, c.height = width, height
}
