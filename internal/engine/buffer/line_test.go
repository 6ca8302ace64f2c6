package buffer

import (
	"testing"

	"github.com/dshills/kiln/internal/engine/syntax"
)

func TestLineRenderTabs(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"a\tb", "a       b"},
		{"\tx", "        x"},
		{"1234567\tx", "1234567 x"},
		{"12345678\tx", "12345678        x"},
		{"no tabs", "no tabs"},
		{"", ""},
	}

	for _, tt := range tests {
		l := NewLine(tt.in)
		if got := l.Render(); got != tt.want {
			t.Errorf("Render(%q) = %q, want %q", tt.in, got, tt.want)
		}
		if len(l.Tags()) != l.RenderLen() {
			t.Errorf("%q: len(tags) = %d, render len = %d", tt.in, len(l.Tags()), l.RenderLen())
		}
	}
}

func TestLineColumnConversions(t *testing.T) {
	l := NewLine("a\tbc\td")
	// render: "a       bc      d"
	wantRX := []int{0, 1, 8, 9, 10, 16, 17}
	for cx, want := range wantRX {
		if got := l.ColumnToRender(cx); got != want {
			t.Errorf("ColumnToRender(%d) = %d, want %d", cx, got, want)
		}
	}

	for cx := 0; cx <= l.Len(); cx++ {
		if got := l.RenderToColumn(l.ColumnToRender(cx)); got != cx {
			t.Errorf("RenderToColumn(ColumnToRender(%d)) = %d", cx, got)
		}
	}

	// Render columns inside the tab expansion land on the tab itself.
	for rx := 1; rx < 8; rx++ {
		if got := l.RenderToColumn(rx); got != 1 {
			t.Errorf("RenderToColumn(%d) = %d, want 1", rx, got)
		}
	}

	if got := l.RenderToColumn(100); got != l.Len() {
		t.Errorf("RenderToColumn past end = %d, want %d", got, l.Len())
	}
	if got := l.ColumnToRender(100); got != l.RenderLen() {
		t.Errorf("ColumnToRender past end = %d, want %d", got, l.RenderLen())
	}
}

func TestLineInsertDelete(t *testing.T) {
	l := NewLine("hllo")
	l.InsertChar(1, 'e')
	if l.String() != "hello" {
		t.Fatalf("after insert: %q", l.String())
	}

	l.InsertChar(99, '!')
	if l.String() != "hello!" {
		t.Errorf("out-of-range insert should append, got %q", l.String())
	}

	if l.DeleteChar(10) {
		t.Error("DeleteChar out of range should return false")
	}
	if l.DeleteChar(-1) {
		t.Error("DeleteChar(-1) should return false")
	}
	if !l.DeleteChar(5) {
		t.Error("DeleteChar(5) should succeed")
	}
	if l.String() != "hello" {
		t.Errorf("after delete: %q", l.String())
	}
}

func TestLineSplitAppend(t *testing.T) {
	l := NewLine("hello world")
	tail := l.Split(5)
	if l.String() != "hello" || tail.String() != " world" {
		t.Fatalf("Split = %q + %q", l.String(), tail.String())
	}

	l.Append(tail.Runes())
	if l.String() != "hello world" {
		t.Errorf("Append = %q", l.String())
	}

	// Split must not share storage with the tail.
	tail.InsertChar(0, 'X')
	if l.String() != "hello world" {
		t.Errorf("tail edit leaked into head: %q", l.String())
	}
}

func TestLineHighlightMatch(t *testing.T) {
	p := syntax.At(syntax.Lookup("x.c"))
	l := NewLine("int foo")
	l.highlight(p, false)
	before := append([]syntax.Tag(nil), l.Tags()...)

	l.HighlightMatch(4, 3)
	if !l.HasMatch() {
		t.Fatal("overlay should be active")
	}
	for i := 4; i < 7; i++ {
		if l.Tags()[i] != syntax.TagMatch {
			t.Errorf("tag[%d] = %v, want match", i, l.Tags()[i])
		}
	}
	if l.Tags()[0] != syntax.TagKeywordType {
		t.Errorf("tag[0] = %v, want type", l.Tags()[0])
	}

	// A second overlay replaces the first instead of stacking.
	l.HighlightMatch(0, 3)
	if l.Tags()[4] != syntax.TagNormal {
		t.Errorf("previous overlay not cleared: tag[4] = %v", l.Tags()[4])
	}

	l.ResetMatch()
	if l.HasMatch() {
		t.Error("overlay should be cleared")
	}
	for i, tg := range l.Tags() {
		if tg != before[i] {
			t.Errorf("tag[%d] = %v, want %v", i, tg, before[i])
		}
	}

	// Resetting without an overlay is a no-op.
	l.ResetMatch()
}

func TestLineHighlightMatchClamped(t *testing.T) {
	l := NewLine("abc")
	l.HighlightMatch(1, 10)
	if len(l.Tags()) != 3 {
		t.Fatalf("len(tags) = %d", len(l.Tags()))
	}
	if l.Tags()[2] != syntax.TagMatch {
		t.Error("overlay should cover to the end of the line")
	}
}
