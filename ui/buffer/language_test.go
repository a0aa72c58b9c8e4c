package buffer

import (
	"errors"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestSchemeKeys(t *testing.T) {
	keys := SchemeKeys()
	expected := "plain numbers functions keywords types references strings comments"
	if got := strings.Join(keys, " "); got != expected {
		t.Errorf("Expected scheme keys %q, got %q", expected, got)
	}

	if LineComment.SchemeKey() != BlockComment.SchemeKey() {
		t.Errorf("Expected both comment categories to share a color")
	}
	if BlockComment.String() != "block-comment" {
		t.Errorf("Expected block-comment, got %v", BlockComment)
	}
}

func TestNewColorschemeMissingKeys(t *testing.T) {
	_, err := NewColorscheme(map[string]RGB{"plain": {0, 0, 0}})
	if !errors.Is(err, ErrIncompleteColorscheme) {
		t.Fatalf("Expected ErrIncompleteColorscheme, got %v", err)
	}
	if !strings.Contains(err.Error(), "strings") {
		t.Errorf("Expected error to name the missing keys, got %v", err)
	}
}

func TestRGBColorClamps(t *testing.T) {
	got := RGB{-10, 127.6, 300}.Color()
	if want := tcell.NewRGBColor(0, 128, 255); got != want {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestColorschemeFallsBackToPlain(t *testing.T) {
	plain := tcell.StyleDefault.Foreground(tcell.ColorRed)
	scheme := Colorscheme{Plain: plain}

	if style := scheme.GetStyle(String); style != plain {
		t.Errorf("Expected fallback to plain style")
	}

	var none *Colorscheme
	if style := none.GetStyle(String); style != tcell.StyleDefault {
		t.Errorf("Expected default style from a nil scheme")
	}
}
