package ui

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/fivemoreminix/vexed/library"
	"github.com/gdamore/tcell/v2"
)

// newTestLibrary makes a library with a folder and a file in it, a file at
// the root, and a file that is not VEX.
func newTestLibrary(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	if err := os.Mkdir(filepath.Join(root, "sub"), 0o755); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"a.vfl", "notes.txt", filepath.Join("sub", "c.vfl")} {
		if err := os.WriteFile(filepath.Join(root, name), nil, 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

func rowNames(e *FileExplorer) []string {
	var names []string
	for _, row := range e.rows {
		names = append(names, row.entry.Name)
	}
	return names
}

func TestFileExplorerRows(t *testing.T) {
	e := NewFileExplorer(newTestLibrary(t), nil)

	if got := rowNames(e); len(got) != 2 || got[0] != "sub" || got[1] != "a.vfl" {
		t.Fatalf("Expected [sub a.vfl], got %v", got)
	}

	e.HandleEvent(key(tcell.KeyEnter)) // Expand "sub"
	if got := rowNames(e); len(got) != 3 || got[1] != "c.vfl" {
		t.Errorf("Expected [sub c.vfl a.vfl], got %v", got)
	}

	e.HandleEvent(key(tcell.KeyLeft)) // Collapse "sub"
	if got := rowNames(e); len(got) != 2 {
		t.Errorf("Expected sub to collapse, got %v", got)
	}
}

func TestFileExplorerOpen(t *testing.T) {
	root := newTestLibrary(t)
	e := NewFileExplorer(root, nil)

	var opened string
	e.OpenCallback = func(path string) { opened = path }

	e.HandleEvent(key(tcell.KeyDown))
	e.HandleEvent(key(tcell.KeyEnter))

	if want := filepath.Join(root, "a.vfl"); opened != want {
		t.Errorf("Expected %v to be opened, got %q", want, opened)
	}
}

func TestFileExplorerNewFileInSelectedFolder(t *testing.T) {
	root := newTestLibrary(t)
	e := NewFileExplorer(root, nil)
	e.PromptName = func(title, text string, done func(string)) {
		if title != "New File" {
			t.Errorf("Expected the New File prompt, got %q", title)
		}
		done("wrangle")
	}

	e.HandleEvent(runeKey('n')) // "sub" is selected

	want := filepath.Join(root, "sub", "wrangle.vfl")
	if _, err := os.Stat(want); err != nil {
		t.Fatalf("Expected %v to be created, got %v", want, err)
	}
	if entry := e.GetSelected(); entry == nil || entry.Path != want {
		t.Errorf("Expected the new file to be selected, got %v", entry)
	}
}

func TestFileExplorerNewFileInvalidName(t *testing.T) {
	root := newTestLibrary(t)
	e := NewFileExplorer(root, nil)

	var reported error
	e.ErrorCallback = func(err error) { reported = err }
	e.NewFile("a/b")

	if !errors.Is(reported, library.ErrInvalidName) {
		t.Errorf("Expected ErrInvalidName, got %v", reported)
	}
}

func TestFileExplorerNewFolder(t *testing.T) {
	root := newTestLibrary(t)
	e := NewFileExplorer(root, nil)
	e.SelectPath(filepath.Join(root, "a.vfl"))

	e.NewFolder("more")

	if info, err := os.Stat(filepath.Join(root, "more")); err != nil || !info.IsDir() {
		t.Errorf("Expected folder \"more\" at the root, got %v", err)
	}
}

func TestFileExplorerRename(t *testing.T) {
	root := newTestLibrary(t)
	e := NewFileExplorer(root, nil)
	e.SelectPath(filepath.Join(root, "a.vfl"))

	var from, to string
	e.RenamedCallback = func(oldPath, newPath string) { from, to = oldPath, newPath }
	e.RenameSelected("b")

	if from != filepath.Join(root, "a.vfl") || to != filepath.Join(root, "b.vfl") {
		t.Errorf("Expected a.vfl renamed to b.vfl, got %q to %q", from, to)
	}
	if entry := e.GetSelected(); entry == nil || entry.Name != "b.vfl" {
		t.Errorf("Expected b.vfl to be selected, got %v", entry)
	}
}

func TestFileExplorerRenameCollision(t *testing.T) {
	root := newTestLibrary(t)
	if err := os.WriteFile(filepath.Join(root, "b.vfl"), nil, 0o644); err != nil {
		t.Fatal(err)
	}
	e := NewFileExplorer(root, nil)
	e.SelectPath(filepath.Join(root, "a.vfl"))

	var reported error
	e.ErrorCallback = func(err error) { reported = err }
	e.RenamedCallback = func(string, string) { t.Errorf("Expected no rename") }
	e.RenameSelected("b")

	if reported == nil {
		t.Errorf("Expected the refused rename to be reported")
	}
	if _, err := os.Stat(filepath.Join(root, "a.vfl")); err != nil {
		t.Errorf("Expected a.vfl to be left alone, got %v", err)
	}
}

func TestFileExplorerDeleteAsksFirst(t *testing.T) {
	root := newTestLibrary(t)
	e := NewFileExplorer(root, nil)
	path := filepath.Join(root, "a.vfl")
	e.SelectPath(path)

	var deleted string
	e.DeletedCallback = func(p string) { deleted = p }

	answer := false
	e.PromptConfirm = func(message string, done func(bool)) { done(answer) }

	e.HandleEvent(key(tcell.KeyDelete))
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("Expected a.vfl to stay when not confirmed, got %v", err)
	}

	answer = true
	e.HandleEvent(key(tcell.KeyDelete))
	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected a.vfl to be deleted, got %v", err)
	}
	if deleted != path {
		t.Errorf("Expected DeletedCallback with %v, got %q", path, deleted)
	}
}

func TestFileExplorerDeleteWithoutWarning(t *testing.T) {
	root := newTestLibrary(t)
	e := NewFileExplorer(root, nil)
	e.WarnBeforeDelete = false
	e.PromptConfirm = func(string, func(bool)) { t.Errorf("Expected no confirmation") }

	e.DeleteSelected() // "sub" and its file

	if _, err := os.Stat(filepath.Join(root, "sub")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected sub to be deleted, got %v", err)
	}
	if got := rowNames(e); len(got) != 1 || got[0] != "a.vfl" {
		t.Errorf("Expected [a.vfl], got %v", got)
	}
}

func TestFileExplorerDraw(t *testing.T) {
	s := newTestScreen(t, 30, 6)
	e := NewFileExplorer(newTestLibrary(t), nil)
	e.SetPos(0, 0)
	e.SetSize(30, 6)
	e.Draw(s)

	// "+ sub" on the first row inside the outline, selected
	if r, _, _, _ := s.GetContent(3, 1); r != 's' {
		t.Errorf("Expected 's' of sub, got %q", r)
	}
	if r, _, _, _ := s.GetContent(3, 2); r != 'a' {
		t.Errorf("Expected 'a' of a.vfl, got %q", r)
	}
}
