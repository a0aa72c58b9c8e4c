package ui

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/fivemoreminix/vexed/ui/buffer"
	"github.com/gdamore/tcell/v2"
)

func newTestScreen(t *testing.T, width, height int) tcell.Screen {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		t.Fatalf("Expected simulation screen to init, got %v", err)
	}
	sim.SetSize(width, height)
	t.Cleanup(sim.Fini)
	return sim
}

func newTestTextEdit(t *testing.T, contents string) (*TextEdit, tcell.Screen) {
	t.Helper()
	s := newTestScreen(t, 40, 10)
	te := NewTextEdit(&s, "", []byte(contents), &buffer.VEX, nil)
	te.SetPos(0, 0)
	te.SetSize(40, 10)
	te.SetFocused(true)
	return te, s
}

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestTextEditInsertOpensComment(t *testing.T) {
	te, _ := newTestTextEdit(t, "a\nb\nc")
	te.Highlighter.UpdateInvalidatedLines(2)

	te.Insert("/*")

	for line := 0; line < 3; line++ {
		if !te.Highlighter.LineEndsInComment(line) {
			t.Errorf("Expected line %v to end in a comment", line)
		}
	}
	if matches := te.Highlighter.GetLineMatches(1); len(matches) != 1 || matches[0].Category != buffer.BlockComment {
		t.Errorf("Expected line 1 to be one block comment, got %v", matches)
	}
	if line, col := te.GetCursor().GetLineCol(); line != 0 || col != 2 {
		t.Errorf("Expected cursor at 0, 2, got %v, %v", line, col)
	}
}

func TestTextEditDeleteClosesComment(t *testing.T) {
	te, _ := newTestTextEdit(t, "/* a\nb\nc */ 1")
	if !te.Highlighter.LineEndsInComment(1) {
		t.Fatalf("Expected line 1 to end in a comment")
	}

	te.Delete(true) // "/* a" becomes "* a"

	for line := 0; line < 3; line++ {
		if te.Highlighter.LineEndsInComment(line) {
			t.Errorf("Expected line %v to end outside of a comment", line)
		}
	}
	if !te.Dirty {
		t.Errorf("Expected the TextEdit to be dirty")
	}
}

func TestTextEditInsertNewline(t *testing.T) {
	te, _ := newTestTextEdit(t, "ab")
	te.SetCursor(te.GetCursor().SetLineCol(0, 1))

	te.HandleEvent(key(tcell.KeyEnter))

	if got := te.Buffer.LineText(0); got != "a" {
		t.Errorf("Expected first line \"a\", got %q", got)
	}
	if got := te.Buffer.LineText(1); got != "b" {
		t.Errorf("Expected second line \"b\", got %q", got)
	}
	if line, col := te.GetCursor().GetLineCol(); line != 1 || col != 0 {
		t.Errorf("Expected cursor at 1, 0, got %v, %v", line, col)
	}
}

func TestTextEditKeepsCRLF(t *testing.T) {
	te, _ := newTestTextEdit(t, "a\r\nb")
	if !te.IsCRLF {
		t.Fatalf("Expected CRLF to be detected")
	}

	te.Insert("x\ny")

	if got := string(te.Buffer.Bytes()); got != "x\r\nya\r\nb" {
		t.Errorf("Expected \"x\\r\\nya\\r\\nb\", got %q", got)
	}
	if line, col := te.GetCursor().GetLineCol(); line != 1 || col != 1 {
		t.Errorf("Expected cursor at 1, 1, got %v, %v", line, col)
	}
}

func TestTextEditBackspaceJoinsLines(t *testing.T) {
	te, _ := newTestTextEdit(t, "a\nb")
	te.SetCursor(te.GetCursor().SetLineCol(1, 0))

	te.HandleEvent(key(tcell.KeyBackspace2))

	if got := string(te.Buffer.Bytes()); got != "ab" {
		t.Errorf("Expected \"ab\", got %q", got)
	}
	if line, col := te.GetCursor().GetLineCol(); line != 0 || col != 1 {
		t.Errorf("Expected cursor at 0, 1, got %v, %v", line, col)
	}
}

func TestTextEditSoftTabs(t *testing.T) {
	te, _ := newTestTextEdit(t, "")
	te.UseHardTabs = false
	te.TabSize = 2

	te.HandleEvent(key(tcell.KeyTab))

	if got := string(te.Buffer.Bytes()); got != "  " {
		t.Errorf("Expected two spaces, got %q", got)
	}
}

func TestTextEditSelection(t *testing.T) {
	te, _ := newTestTextEdit(t, "hello world")

	for i := 0; i < 5; i++ {
		te.HandleEvent(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModShift))
	}
	if got := string(te.GetSelectedBytes()); got != "hello" {
		t.Errorf("Expected \"hello\" selected, got %q", got)
	}

	te.Insert("bye")
	if got := string(te.Buffer.Bytes()); got != "bye world" {
		t.Errorf("Expected \"bye world\", got %q", got)
	}
	if te.HasSelection() {
		t.Errorf("Expected no selection after inserting")
	}
}

func TestTextEditSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.vfl")
	if err := os.WriteFile(path, []byte("int x;"), 0o644); err != nil {
		t.Fatal(err)
	}

	te, _ := newTestTextEdit(t, "int x;")
	te.FilePath = path
	te.HandleEvent(runeKey('/'))
	te.HandleEvent(runeKey('/'))

	if err := te.Save(); err != nil {
		t.Fatalf("Expected save to succeed, got %v", err)
	}
	if te.Dirty {
		t.Errorf("Expected the TextEdit to be clean after saving")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "//int x;" {
		t.Errorf("Expected \"//int x;\", got %q", data)
	}
}

func foregroundAt(s tcell.Screen, x, y int) tcell.Color {
	_, _, style, _ := s.GetContent(x, y)
	fg, _, _ := style.Decompose()
	return fg
}

func TestTextEditDrawsCategories(t *testing.T) {
	te, s := newTestTextEdit(t, "int x = 5;")
	te.Draw(s)

	column := te.getColumnWidth()
	if want := buffer.DefaultColors["types"].Color(); foregroundAt(s, column, 0) != want {
		t.Errorf("Expected \"int\" to be drawn as a type, got %v", foregroundAt(s, column, 0))
	}
	if want := buffer.DefaultColors["numbers"].Color(); foregroundAt(s, column+8, 0) != want {
		t.Errorf("Expected \"5\" to be drawn as a number, got %v", foregroundAt(s, column+8, 0))
	}
}

func TestTextEditSetColorscheme(t *testing.T) {
	te, s := newTestTextEdit(t, "int x;")

	colors := make(map[string]buffer.RGB)
	for name, c := range buffer.DefaultColors {
		colors[name] = c
	}
	colors["types"] = buffer.RGB{255, 0, 0}

	if err := te.SetColorscheme(colors); err != nil {
		t.Fatalf("Expected complete scheme to be applied, got %v", err)
	}
	te.Draw(s)
	if want := tcell.NewRGBColor(255, 0, 0); foregroundAt(s, te.getColumnWidth(), 0) != want {
		t.Errorf("Expected the new type color, got %v", foregroundAt(s, te.getColumnWidth(), 0))
	}

	delete(colors, "strings")
	colors["types"] = buffer.RGB{0, 255, 0}
	if err := te.SetColorscheme(colors); !errors.Is(err, buffer.ErrIncompleteColorscheme) {
		t.Fatalf("Expected ErrIncompleteColorscheme, got %v", err)
	}
	te.Draw(s)
	if want := tcell.NewRGBColor(255, 0, 0); foregroundAt(s, te.getColumnWidth(), 0) != want {
		t.Errorf("Expected the previous type color to stay, got %v", foregroundAt(s, te.getColumnWidth(), 0))
	}
}
