package ui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestMenuBarShortcut(t *testing.T) {
	var saved int
	menu := NewMenu("File", nil)
	menu.AddItems(
		&ItemEntry{Name: "New"},
		&ItemSeparator{},
		&ItemEntry{Name: "Save", Shortcut: "Ctrl+S", Callback: func() { saved++ }},
	)
	bar := NewMenuBar(nil)
	bar.AddMenu(menu)

	if !bar.HandleShortcut(tcell.NewEventKey(tcell.KeyCtrlS, 0, tcell.ModCtrl)) {
		t.Errorf("Expected Ctrl+S to be handled")
	}
	if !bar.HandleShortcut(tcell.NewEventKey(tcell.KeyCtrlS, 0, tcell.ModNone)) {
		t.Errorf("Expected Ctrl+S without the modifier set to be handled")
	}
	if bar.HandleShortcut(runeKey('s')) {
		t.Errorf("Expected typing not to be a shortcut")
	}
	if saved != 2 {
		t.Errorf("Expected Save to run twice, got %v", saved)
	}
}

func TestMenuSkipsSeparators(t *testing.T) {
	var picked string
	menu := NewMenu("File", nil)
	menu.AddItems(
		&ItemEntry{Name: "New", Callback: func() { picked = "New" }},
		&ItemSeparator{},
		&ItemEntry{Name: "Exit", Callback: func() { picked = "Exit" }},
	)

	var selected bool
	bar := NewMenuBar(nil)
	bar.ItemSelectedCallback = func() { selected = true }
	bar.AddMenu(menu)
	bar.SetFocused(true)

	bar.HandleEvent(key(tcell.KeyEnter)) // Open "File"
	bar.HandleEvent(key(tcell.KeyDown))
	bar.HandleEvent(key(tcell.KeyEnter))

	if picked != "Exit" {
		t.Errorf("Expected Exit to be picked, got %q", picked)
	}
	if !selected {
		t.Errorf("Expected ItemSelectedCallback to be called")
	}
	if bar.menusVisible {
		t.Errorf("Expected the menu to close after picking")
	}
}

func TestTabContainerRemoveTab(t *testing.T) {
	c := NewTabContainer(nil)
	c.SetSize(40, 10)
	for _, name := range []string{"a", "b", "c"} {
		c.AddTab(name, NewButton(name, nil, nil))
	}
	c.FocusTab(2)

	c.RemoveTab(2)
	if got := c.GetSelectedTab().Name; got != "b" {
		t.Errorf("Expected b to be selected, got %v", got)
	}

	c.RemoveTab(0)
	if got := c.GetSelectedTab().Name; got != "b" {
		t.Errorf("Expected b to stay selected, got %v", got)
	}
	if idx := c.FindTab(func(tab *Tab) bool { return tab.Name == "a" }); idx != -1 {
		t.Errorf("Expected a to be gone, got index %v", idx)
	}
}

func TestMessageDialogOptions(t *testing.T) {
	var chosen []string
	d := NewMessageDialog("", "Delete a.vfl?", MessageKindWarning, []string{"Yes", "No"}, nil, func(option string) {
		chosen = append(chosen, option)
	})
	d.SetFocused(true)

	d.HandleEvent(key(tcell.KeyTab))
	d.HandleEvent(key(tcell.KeyEnter))
	d.HandleEvent(key(tcell.KeyEscape))

	if len(chosen) != 2 || chosen[0] != "No" || chosen[1] != "" {
		t.Errorf("Expected [No \"\"], got %q", chosen)
	}
	if d.Title != "Warning!" {
		t.Errorf("Expected the default warning title, got %q", d.Title)
	}
}

func TestInputDialogConfirm(t *testing.T) {
	s := newTestScreen(t, 60, 10)

	var confirmed string
	d := NewInputDialog(&s, "New File", "", nil, func(name string) { confirmed = name }, nil)
	d.SetFocused(true)

	for _, r := range " wrangle" {
		d.HandleEvent(runeKey(r))
	}
	d.HandleEvent(key(tcell.KeyBackspace2))
	d.HandleEvent(runeKey('e'))
	d.HandleEvent(key(tcell.KeyEnter))

	if confirmed != "wrangle" {
		t.Errorf("Expected \"wrangle\", got %q", confirmed)
	}
}
