package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// A Tab is a child of a TabContainer; has a name and child Component.
type Tab struct {
	Name  string
	Child Component
}

// A TabContainer organizes children by showing only one of them at a time.
type TabContainer struct {
	children []Tab
	selected int

	baseComponent
}

func NewTabContainer(theme *Theme) *TabContainer {
	return &TabContainer{
		children:      make([]Tab, 0, 4),
		baseComponent: baseComponent{theme: theme},
	}
}

// AddTab appends a tab and returns its index. The new tab is not focused.
func (c *TabContainer) AddTab(name string, child Component) int {
	c.children = append(c.children, Tab{Name: name, Child: child})
	// Update new child's size and position
	child.SetPos(c.x+1, c.y+1)
	child.SetSize(c.width-2, c.height-2)
	child.SetTheme(c.theme)
	return len(c.children) - 1
}

// RemoveTab deletes the tab at `idx`. Returns true if the tab was found,
// false otherwise.
func (c *TabContainer) RemoveTab(idx int) bool {
	if idx < 0 || idx >= len(c.children) {
		return false
	}

	if c.selected == idx {
		c.children[idx].Child.SetFocused(false)
	}

	copy(c.children[idx:], c.children[idx+1:])  // Shift all items after idx to the left
	c.children = c.children[:len(c.children)-1] // Shrink slice by one

	if c.selected > idx || c.selected >= len(c.children) {
		c.selected = Max(c.selected-1, 0) // Keep the cursor within the bounds of available tabs
	}
	if c.focused && len(c.children) > 0 {
		c.children[c.selected].Child.SetFocused(true)
	}

	return true
}

// FocusTab sets the visible tab to the one at `idx`. FocusTab clamps `idx`
// between 0 and tab_count - 1. If no tabs are present, the function does nothing.
func (c *TabContainer) FocusTab(idx int) {
	if len(c.children) < 1 {
		return
	}

	idx = Clamp(idx, 0, len(c.children)-1)

	c.children[c.selected].Child.SetFocused(false) // Unfocus old tab
	c.selected = idx
	c.children[idx].Child.SetFocused(c.focused) // Focus new tab
}

// FindTab returns the index of the first tab for which `match` returns true,
// or -1.
func (c *TabContainer) FindTab(match func(*Tab) bool) int {
	for i := range c.children {
		if match(&c.children[i]) {
			return i
		}
	}
	return -1
}

func (c *TabContainer) GetSelectedTabIdx() int {
	return c.selected
}

func (c *TabContainer) GetTabCount() int {
	return len(c.children)
}

func (c *TabContainer) GetTab(idx int) *Tab {
	return &c.children[idx]
}

// GetSelectedTab returns the visible tab, or nil if there are no tabs.
func (c *TabContainer) GetSelectedTab() *Tab {
	if c.selected < len(c.children) {
		return &c.children[c.selected]
	}
	return nil
}

// Draw draws the border of the TabContainer and the tab names along its top,
// then it draws the visible child component.
func (c *TabContainer) Draw(s tcell.Screen) {
	styFocused := c.focusStyle("TabContainer")

	// Draw outline
	DrawRectOutlineDefault(s, c.x, c.y, c.width, c.height, styFocused)

	// Draw tabs
	col := c.x + 1 // Starting column
	for i, tab := range c.children {
		sty := styFocused
		if c.selected == i {
			fg, bg, attr := styFocused.Decompose()
			sty = tcell.Style{}.Foreground(bg).Background(fg).Attributes(attr)
		}

		name := tab.Name
		if te, ok := tab.Child.(*TextEdit); ok && te.Dirty {
			name = "*" + name
		}

		str := fmt.Sprintf(" %s ", name)
		if col+runewidth.StringWidth(str) >= c.x+c.width-1 {
			break // No room for more tabs
		}

		col += DrawStr(s, col, c.y, str, sty) + 1 // Add one for spacing between tabs
	}

	// Draw selected child in center
	if c.selected < len(c.children) {
		c.children[c.selected].Child.Draw(s)
	}
}

// SetFocused calls SetFocused on the visible child Component.
func (c *TabContainer) SetFocused(v bool) {
	c.focused = v
	if len(c.children) > 0 {
		c.children[c.selected].Child.SetFocused(v)
	}
}

// SetTheme sets the theme.
func (c *TabContainer) SetTheme(theme *Theme) {
	c.theme = theme
	for _, tab := range c.children {
		tab.Child.SetTheme(theme) // Update the theme for all children
	}
}

// SetPos sets the position of the container and updates the child Components.
func (c *TabContainer) SetPos(x, y int) {
	c.x, c.y = x, y
	for _, tab := range c.children {
		tab.Child.SetPos(x+1, y+1)
	}
}

// SetSize sets the size of the container and updates the size of the child Components.
func (c *TabContainer) SetSize(width, height int) {
	c.width, c.height = width, height
	for _, tab := range c.children {
		tab.Child.SetSize(width-2, height-2)
	}
}

// HandleEvent forwards the event to the child Component and returns whether it was handled.
func (c *TabContainer) HandleEvent(event tcell.Event) bool {
	if len(c.children) == 0 {
		return false
	}

	switch ev := event.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlE {
			c.FocusTab((c.selected + 1) % len(c.children))
			return true
		} else if ev.Key() == tcell.KeyCtrlW {
			c.FocusTab((c.selected + len(c.children) - 1) % len(c.children))
			return true
		}
	}

	return c.children[c.selected].Child.HandleEvent(event)
}
