package source

import (
	"reflect"
	"testing"
)

func TestPositionAdvance(t *testing.T) {
	pos := Start()
	pos.Advance("ab\ncd")
	if pos.Line != 2 || pos.Column != 3 || pos.Index != 5 {
		t.Errorf("Advance() = %+v, want line 2 column 3 index 5", pos)
	}
}

func TestPositionAdvanceMultiByte(t *testing.T) {
	pos := Start()
	pos.Advance("é")
	if pos.Column != 2 {
		t.Errorf("expected one column per rune, got %d", pos.Column)
	}
	if pos.Index != 2 {
		t.Errorf("expected index to count bytes, got %d", pos.Index)
	}
}

func TestPositionAdvanceInvalidByte(t *testing.T) {
	pos := Start()
	pos.Advance("a\xffb")
	if pos.Index != 3 || pos.Column != 4 {
		t.Errorf("Advance() = %+v, want index 3 column 4", pos)
	}
}

func TestLocationFile(t *testing.T) {
	start := Position{Line: 1, Column: 1, Index: 9}
	end := Position{Line: 1, Column: 5, Index: 13}
	file := "main.mc"
	loc := NewLocation(&file, &start, &end)
	if loc.File() != "main.mc" {
		t.Errorf("File() = %q", loc.File())
	}
	if loc.String() != "location(1:1 - 1:5)" {
		t.Errorf("String() = %q", loc.String())
	}
	if NewLocation(nil, &start, &end).File() != "" {
		t.Error("File() should be empty without a file name")
	}
	var missing *Location
	if missing.File() != "" || missing.String() != "location(unknown)" {
		t.Error("nil location should report nothing")
	}
}

func TestSplitLines(t *testing.T) {
	got := SplitLines("a\r\nb\n\nc\n")
	want := []string{"a", "b", "", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SplitLines() = %q, want %q", got, want)
	}
	if len(SplitLines("")) != 0 {
		t.Error("expected no lines for empty content")
	}
}
