package ui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	runewidth "github.com/mattn/go-runewidth"
)

// Item is an interface implemented by ItemEntry and ItemSeparator to be listed in Menus.
type Item interface {
	GetName() string
	// A Shortcut is a string of the modifiers+key name of the action that must be pressed
	// to trigger the shortcut. For example: "Ctrl+S". See the KeyEvent.Name() function of
	// tcell for information. An empty string implies no shortcut.
	GetShortcut() string
}

// An ItemSeparator is like a blank Item that cannot actually be selected. It is useful
// for separating items in a Menu.
type ItemSeparator struct{}

func (i *ItemSeparator) GetName() string     { return "" }
func (i *ItemSeparator) GetShortcut() string { return "" }

// ItemEntry is a listing in a Menu with a name and callback.
type ItemEntry struct {
	Name     string
	Shortcut string
	Callback func()
}

func (i *ItemEntry) GetName() string     { return i.Name }
func (i *ItemEntry) GetShortcut() string { return i.Shortcut }

// A MenuBar is a horizontal list of menus.
type MenuBar struct {
	ItemSelectedCallback func() // Called before an entry picked from an open menu runs

	menus        []*Menu
	selected     int  // Index of selection in MenuBar
	menusVisible bool // Whether to draw the selected menu

	baseComponent
}

func NewMenuBar(theme *Theme) *MenuBar {
	return &MenuBar{
		menus:         make([]*Menu, 0, 4),
		baseComponent: baseComponent{theme: theme, height: 1},
	}
}

func (b *MenuBar) AddMenu(menu *Menu) {
	menu.itemSelectedCallback = func() {
		b.menusVisible = false
		if b.ItemSelectedCallback != nil {
			b.ItemSelectedCallback()
		}
	}
	menu.SetTheme(b.theme)
	b.menus = append(b.menus, menu)
}

// GetMenuXPos returns the X position of the name of Menu at `idx` visually.
func (b *MenuBar) GetMenuXPos(idx int) int {
	x := b.x + 1
	for i := 0; i < idx; i++ {
		x += runewidth.StringWidth(b.menus[i].Name) + 2 // two for padding
	}
	return x
}

func (b *MenuBar) ActivateMenuUnderCursor() {
	b.menusVisible = true // Show menus
	menu := b.menus[b.selected]
	menu.SetPos(b.GetMenuXPos(b.selected), b.y+1)
	menu.selected = menu.firstSelectable()
}

func (b *MenuBar) moveCursor(delta int) {
	b.selected = (b.selected + delta + len(b.menus)) % len(b.menus)
	if b.menusVisible {
		b.ActivateMenuUnderCursor() // Show the new menu in place of the old one
	}
}

// HandleShortcut runs the entry whose shortcut is the name of the key event,
// from any menu, whether or not the MenuBar is focused. Returns true if an
// entry was found.
func (b *MenuBar) HandleShortcut(ev *tcell.EventKey) bool {
	if ev.Modifiers() == 0 && ev.Key() == tcell.KeyRune {
		return false // Plain typing is never a shortcut
	}
	// Control keys are named "Ctrl-S" when the Ctrl modifier is not set
	name := strings.Replace(ev.Name(), "Ctrl-", "Ctrl+", 1)
	for _, menu := range b.menus {
		for _, item := range menu.Items {
			if entry, ok := item.(*ItemEntry); ok && entry.Shortcut != "" && entry.Shortcut == name {
				b.menusVisible = false
				if entry.Callback != nil {
					entry.Callback()
				}
				return true
			}
		}
	}
	return false
}

// Draw renders the MenuBar and its sub-menus.
func (b *MenuBar) Draw(s tcell.Screen) {
	normalStyle := b.theme.GetOrDefault("MenuBar")

	// Draw menus based on whether b.focused and which is selected
	DrawRect(s, b.x, b.y, b.width, 1, ' ', normalStyle)
	for i, menu := range b.menus {
		sty := normalStyle
		if b.focused && b.selected == i {
			sty = b.theme.GetOrDefault("MenuBarSelected") // Use special style for selected item
		}
		DrawStr(s, b.GetMenuXPos(i), b.y, fmt.Sprintf(" %s ", menu.Name), sty)
	}

	if b.menusVisible {
		b.menus[b.selected].Draw(s) // Draw menu when it is expanded / visible
	}
}

// SetFocused highlights the MenuBar. Unfocusing hides any open menu.
func (b *MenuBar) SetFocused(v bool) {
	b.focused = v
	if !v {
		b.selected = 0 // Reset cursor position every time component is unfocused
		b.menusVisible = false
	}
}

func (b *MenuBar) SetTheme(theme *Theme) {
	b.theme = theme
	for _, menu := range b.menus {
		menu.SetTheme(theme)
	}
}

func (b *MenuBar) GetMinSize() (int, int) {
	return 0, 1
}

// HandleEvent moves between menus and propagates events to the open menu.
// Returns true if the event was handled.
func (b *MenuBar) HandleEvent(event tcell.Event) bool {
	ev, ok := event.(*tcell.EventKey)
	if !ok || len(b.menus) == 0 {
		return false
	}

	switch ev.Key() {
	case tcell.KeyLeft:
		b.moveCursor(-1)
	case tcell.KeyRight:
		b.moveCursor(1)
	case tcell.KeyEnter, tcell.KeyDown:
		if !b.menusVisible { // If menus are not visible...
			b.ActivateMenuUnderCursor()
			return true
		}
		return b.menus[b.selected].HandleEvent(event)
	default:
		if b.menusVisible {
			return b.menus[b.selected].HandleEvent(event)
		}
		return false // Nobody to propagate our event to
	}
	return true
}

// A Menu contains one or more ItemEntry or ItemSeparators.
type Menu struct {
	Name  string
	Items []Item

	selected             int    // Index of selected Item
	itemSelectedCallback func() // Used internally to hide menus on selection

	baseComponent
}

// NewMenu creates a new Menu with no items.
func NewMenu(name string, theme *Theme) *Menu {
	return &Menu{
		Name:          name,
		Items:         make([]Item, 0, 6),
		baseComponent: baseComponent{theme: theme},
	}
}

func (m *Menu) AddItems(items ...Item) {
	m.Items = append(m.Items, items...)
}

func (m *Menu) firstSelectable() int {
	for i, item := range m.Items {
		if _, ok := item.(*ItemSeparator); !ok {
			return i
		}
	}
	return 0
}

func (m *Menu) ActivateItemUnderCursor() {
	if m.selected >= len(m.Items) {
		return
	}
	if entry, ok := m.Items[m.selected].(*ItemEntry); ok {
		if m.itemSelectedCallback != nil {
			m.itemSelectedCallback()
		}
		if entry.Callback != nil {
			entry.Callback()
		}
	}
}

// moveCursor moves the selection by delta, wrapping around and skipping
// separators.
func (m *Menu) moveCursor(delta int) {
	for range m.Items {
		m.selected = (m.selected + delta + len(m.Items)) % len(m.Items)
		if _, ok := m.Items[m.selected].(*ItemSeparator); !ok {
			return
		}
	}
}

// Draw renders the Menu at its position.
func (m *Menu) Draw(s tcell.Screen) {
	defaultStyle := m.theme.GetOrDefault("Menu")

	m.GetSize()                                                          // Call this to update internal width and height
	DrawRect(s, m.x, m.y, m.width, m.height, ' ', defaultStyle)          // Fill background
	DrawRectOutlineDefault(s, m.x, m.y, m.width, m.height, defaultStyle) // Draw outline

	for i, item := range m.Items {
		if _, ok := item.(*ItemSeparator); ok {
			str := fmt.Sprintf("%s%s%s", "├", strings.Repeat("─", m.width-2), "┤")
			DrawStr(s, m.x, m.y+1+i, str, defaultStyle)
			continue
		}

		sty := defaultStyle
		if m.selected == i {
			sty = m.theme.GetOrDefault("MenuSelected")
		}

		DrawStr(s, m.x+1, m.y+1+i, padRight(item.GetName(), m.width-2), sty)
		if shortcut := item.GetShortcut(); len(shortcut) > 0 { // If the item has a shortcut...
			str := " " + shortcut + " "
			DrawStr(s, m.x+m.width-1-runewidth.StringWidth(str), m.y+1+i, str, sty)
		}
	}
}

// GetSize returns the size of the Menu, which fits its items.
func (m *Menu) GetSize() (int, int) {
	maxNameLen := 0
	widestShortcut := 0 // Will contribute to the width
	for i := range m.Items {
		maxNameLen = Max(maxNameLen, runewidth.StringWidth(m.Items[i].GetName()))
		widestShortcut = Max(widestShortcut, runewidth.StringWidth(m.Items[i].GetShortcut()))
	}

	shortcutsWidth := 0
	if widestShortcut > 0 {
		shortcutsWidth = 1 + widestShortcut + 1 // " Ctrl+X "  (with one cell padding surrounding)
	}

	m.width = 1 + maxNameLen + shortcutsWidth + 1 // Add two for padding
	m.height = 1 + len(m.Items) + 1               // And another two for the same reason ...
	return m.width, m.height
}

func (m *Menu) GetMinSize() (int, int) {
	return m.GetSize()
}

// SetSize does nothing: a Menu is always the size of its items.
func (m *Menu) SetSize(width, height int) {}

// HandleEvent will handle events for a Menu. Returns true if the event was handled.
func (m *Menu) HandleEvent(event tcell.Event) bool {
	ev, ok := event.(*tcell.EventKey)
	if !ok {
		return false
	}

	switch ev.Key() {
	case tcell.KeyEnter:
		m.ActivateItemUnderCursor()
	case tcell.KeyUp, tcell.KeyBacktab:
		m.moveCursor(-1)
	case tcell.KeyDown, tcell.KeyTab:
		m.moveCursor(1)
	default:
		return false
	}
	return true
}
