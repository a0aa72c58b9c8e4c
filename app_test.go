package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/fivemoreminix/vexed/prefs"
	"github.com/fivemoreminix/vexed/ui"
	"github.com/fivemoreminix/vexed/ui/buffer"
	"github.com/gdamore/tcell/v2"
)

func newTestApp(t *testing.T, p *prefs.Preferences) *App {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		t.Fatalf("Expected simulation screen to init, got %v", err)
	}
	sim.SetSize(100, 30)
	t.Cleanup(sim.Fini)

	if p == nil {
		p = prefs.Default()
	}
	if p.LibraryPath == "" {
		p.LibraryPath = t.TempDir()
	}
	return NewApp(sim, p, filepath.Join(t.TempDir(), "preferences.json"), &buffer.VEX)
}

func press(a *App, k tcell.Key, mod tcell.ModMask) bool {
	return a.HandleEvent(tcell.NewEventKey(k, 0, mod))
}

func typeString(a *App, str string) {
	for _, r := range str {
		a.HandleEvent(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone))
	}
}

func TestAppNewFileFromExplorer(t *testing.T) {
	a := newTestApp(t, nil)

	typeString(a, "n") // The explorer has focus
	if _, ok := a.dialog.(*ui.InputDialog); !ok {
		t.Fatalf("Expected a name prompt, got %T", a.dialog)
	}
	typeString(a, "wrangle")
	press(a, tcell.KeyEnter, tcell.ModNone)

	if a.dialog != nil {
		t.Errorf("Expected the prompt to close")
	}
	if _, err := os.Stat(filepath.Join(a.prefs.LibraryPath, "wrangle.vfl")); err != nil {
		t.Errorf("Expected wrangle.vfl to be created, got %v", err)
	}
}

func TestAppEditAndSave(t *testing.T) {
	a := newTestApp(t, nil)
	path := filepath.Join(a.prefs.LibraryPath, "a.vfl")
	if err := os.WriteFile(path, []byte("float f;"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := a.OpenFile(path); err != nil {
		t.Fatalf("Expected file to open, got %v", err)
	}
	typeString(a, "/* ")
	a.Draw()

	te := a.currentEditor()
	if te == nil || !te.Dirty {
		t.Fatalf("Expected a dirty editor, got %v", te)
	}
	if !te.Highlighter.LineEndsInComment(0) {
		t.Errorf("Expected the line to end in a comment")
	}

	press(a, tcell.KeyCtrlS, tcell.ModCtrl)
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "/* float f;" {
		t.Errorf("Expected \"/* float f;\", got %q", data)
	}
	if te.Dirty {
		t.Errorf("Expected the editor to be clean after saving")
	}

	// Opening it again focuses the same tab
	if err := a.OpenFile(path); err != nil || a.tabs.GetTabCount() != 1 {
		t.Errorf("Expected one tab, got %v (%v)", a.tabs.GetTabCount(), err)
	}
}

func TestAppDeleteClosesTab(t *testing.T) {
	a := newTestApp(t, nil)
	path := filepath.Join(a.prefs.LibraryPath, "a.vfl")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	a.explorer.Refresh()
	if err := a.OpenFile(path); err != nil {
		t.Fatal(err)
	}

	press(a, tcell.KeyF6, tcell.ModNone) // Back to the explorer
	a.explorer.SelectPath(path)
	press(a, tcell.KeyDelete, tcell.ModNone)
	if _, ok := a.dialog.(*ui.MessageDialog); !ok {
		t.Fatalf("Expected a confirmation, got %T", a.dialog)
	}
	press(a, tcell.KeyEnter, tcell.ModNone) // "Yes"

	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected a.vfl to be deleted, got %v", err)
	}
	if a.tabs.GetTabCount() != 0 {
		t.Errorf("Expected the tab of a.vfl to close, got %v tabs", a.tabs.GetTabCount())
	}
}

func TestAppRenameUpdatesTab(t *testing.T) {
	a := newTestApp(t, nil)
	path := filepath.Join(a.prefs.LibraryPath, "a.vfl")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	a.explorer.Refresh()
	if err := a.OpenFile(path); err != nil {
		t.Fatal(err)
	}

	a.explorer.SelectPath(path)
	a.explorer.RenameSelected("b")

	tab := a.tabs.GetSelectedTab()
	if tab.Name != "b.vfl" || tab.Child.(*ui.TextEdit).FilePath != filepath.Join(a.prefs.LibraryPath, "b.vfl") {
		t.Errorf("Expected the tab to follow the rename, got %v", tab.Name)
	}
}

func TestAppRefusesIncompleteColorscheme(t *testing.T) {
	p := prefs.Default()
	p.ColorScheme = map[string]buffer.RGB{"plain": {1, 2, 3}}
	a := newTestApp(t, p)

	if a.colors != nil {
		t.Errorf("Expected the scheme to be refused, got %v", a.colors)
	}
	if _, ok := a.dialog.(*ui.MessageDialog); !ok {
		t.Errorf("Expected the error to be shown, got %T", a.dialog)
	}
}

func TestAppReloadPreferencesRecolors(t *testing.T) {
	a := newTestApp(t, nil)
	path := filepath.Join(a.prefs.LibraryPath, "a.vfl")
	if err := os.WriteFile(path, []byte("int i;"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := a.OpenFile(path); err != nil {
		t.Fatal(err)
	}
	te := a.currentEditor()

	prefsJSON := `{"color_scheme": {
		"plain": [0, 0, 0], "numbers": [0, 0, 0], "functions": [0, 0, 0], "keywords": [0, 0, 0],
		"types": [255, 0, 0], "references": [0, 0, 0], "strings": [0, 0, 0], "comments": [0, 0, 0]}}`
	if err := os.WriteFile(a.prefsPath, []byte(prefsJSON), 0o644); err != nil {
		t.Fatal(err)
	}
	press(a, tcell.KeyCtrlR, tcell.ModCtrl)

	matches := te.Highlighter.GetLineMatches(0)
	fg, _, _ := matches[0].Style.Decompose()
	if want := tcell.NewRGBColor(255, 0, 0); fg != want {
		t.Errorf("Expected int in the reloaded type color, got %v", fg)
	}
}

func TestAppQuit(t *testing.T) {
	a := newTestApp(t, nil)
	if !press(a, tcell.KeyCtrlQ, tcell.ModCtrl) {
		t.Errorf("Expected Ctrl+Q to quit")
	}
}

func TestAppQuitAsksWithUnsavedChanges(t *testing.T) {
	a := newTestApp(t, nil)
	path := filepath.Join(a.prefs.LibraryPath, "a.vfl")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if err := a.OpenFile(path); err != nil {
		t.Fatal(err)
	}
	typeString(a, "x")

	if press(a, tcell.KeyCtrlQ, tcell.ModCtrl) {
		t.Fatalf("Expected a question before quitting")
	}
	press(a, tcell.KeyTab, tcell.ModNone) // "No"
	if press(a, tcell.KeyEnter, tcell.ModNone) {
		t.Errorf("Expected to keep running after answering no")
	}
}

func TestClipboardInternal(t *testing.T) {
	if _, err := ClipInitialize(ClipInternal); err != nil {
		t.Fatal(err)
	}
	a := newTestApp(t, nil)
	path := filepath.Join(a.prefs.LibraryPath, "a.vfl")
	if err := os.WriteFile(path, []byte("@P"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := a.OpenFile(path); err != nil {
		t.Fatal(err)
	}

	press(a, tcell.KeyEnd, tcell.ModShift)
	a.Copy()
	press(a, tcell.KeyEnd, tcell.ModNone)
	a.Paste()

	if got := string(a.currentEditor().Buffer.Bytes()); got != "@P@P" {
		t.Errorf("Expected \"@P@P\", got %q", got)
	}
}
