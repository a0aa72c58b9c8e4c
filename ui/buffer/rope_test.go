package buffer

import "testing"

func TestRopeLineText(t *testing.T) {
	var buf Buffer = NewRopeBuffer([]byte("line0\nline1\n\nline3\n"))
	//line0
	//line1
	//
	//line3
	//

	if lines := buf.Lines(); lines != 5 {
		t.Errorf("Expected 5 lines, got %v", lines)
	}

	expected := []string{"line0", "line1", "", "line3", ""}
	for i, want := range expected {
		if got := buf.LineText(i); got != want {
			t.Errorf("Expected line %v == %#v, got %#v", i, want, got)
		}
	}

	if line := string(buf.Line(1)); line != "line1\n" {
		t.Errorf("Expected line 1 to keep its delimiter, got %#v", line)
	}
}

func TestRopeCRLF(t *testing.T) {
	var buf Buffer = NewRopeBuffer([]byte("a\r\nb"))

	if buf.Lines() != 2 {
		t.Errorf("Expected 2 lines, got %v", buf.Lines())
	}
	if text := buf.LineText(0); text != "a" {
		t.Errorf("Expected CRLF to be trimmed, got %#v", text)
	}
	if n := buf.RunesInLine(0); n != 1 {
		t.Errorf("Expected 1 rune in line 0, got %v", n)
	}
}

func TestRopeInserting(t *testing.T) {
	var buf Buffer = NewRopeBuffer([]byte("some"))
	buf.Insert(0, 4, []byte(" text\n")) // Insert " text" after "some"
	buf.Insert(0, 0, []byte("with\n\t"))
	//with
	//	some text
	//

	buf.Remove(0, 4, 1, 5) // Delete from line 0, col 4, to line 1, col 5 "\n\tsome "

	if str := string(buf.Bytes()); str != "withtext\n" {
		t.Errorf("string does not match \"withtext\", got %#v", str)
	}
}

func TestRopeBounds(t *testing.T) {
	var buf Buffer = NewRopeBuffer([]byte("this\nis (は)\n\tsome\ntext\n"))
	//this
	//is (は)
	//	some
	//text
	//

	if buf.Lines() != 5 {
		t.Errorf("Expected buf.Lines() == 5")
	}

	if len := buf.RunesInLine(1); len != 6 { // "is" in English and in japanese
		t.Errorf("Expected 6 runes in line 2, found %v", len)
	}

	if len := buf.RunesInLine(4); len != 0 {
		t.Errorf("Expected 0 runes in line 5, found %v", len)
	}

	line, col := buf.ClampLineCol(15, 5) // Should become last line, first column
	if line != 4 || col != 0 {
		t.Errorf("Expected to clamp line col to 4,0 got %v,%v", line, col)
	}

	line, col = buf.ClampLineCol(2, 9) // Third line, pointing at the newline char
	if line != 2 || col != 5 {
		t.Errorf("Expected to clamp line, col to 2,5 got %v,%v", line, col)
	}

	if pos := buf.LineColToPos(1, 5); pos != 5+len("is (は") {
		t.Errorf("Expected byte offset of ')' to account for the wide rune, got %v", pos)
	}
}

func TestRopeCount(t *testing.T) {
	var buf Buffer = NewRopeBuffer([]byte("\t\tlot of\n\ttabs"))

	tabsAtOf := buf.Count(0, 0, 0, 7, []byte{'\t'})
	if tabsAtOf != 2 {
		t.Errorf("Expected 2 tabs before 'of', got %#v", tabsAtOf)
	}

	tabs := buf.Count(0, 0, 0, 0, []byte{'\t'})
	if tabs != 0 {
		t.Errorf("Expected no tabs at column zero, got %v", tabs)
	}
}

func TestRopeSlice(t *testing.T) {
	var buf Buffer = NewRopeBuffer([]byte("abc\ndef\n"))

	wholeSlice := buf.Slice(0, 0, 1, 3) // Column past the end includes the newline char
	if string(wholeSlice) != "abc\ndef\n" {
		t.Errorf("Whole slice was not equal, got \"%s\"", wholeSlice)
	}

	secondLine := buf.Slice(1, 0, 1, 3)
	if string(secondLine) != "def\n" {
		t.Errorf("Second line and slice were not equal, got \"%s\"", secondLine)
	}
}
