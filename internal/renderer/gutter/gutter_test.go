package gutter

import "testing"

func TestNewGutter(t *testing.T) {
	tests := []struct {
		mode Mode
		want int
	}{
		{ModeOff, 0},
		{ModeAbsolute, 4},
		{ModeRelative, 4},
	}

	for _, tt := range tests {
		g := New(tt.mode)
		if got := g.Width(); got != tt.want {
			t.Errorf("New(%s).Width() = %d, want %d", tt.mode, got, tt.want)
		}
	}
}

func TestGutterSetLineCount(t *testing.T) {
	g := New(ModeAbsolute)

	tests := []struct {
		count int
		want  int
	}{
		{0, 4},
		{10, 4},
		{999, 4},
		{1000, 5},
		{100000, 7},
	}

	for _, tt := range tests {
		g.SetLineCount(tt.count)
		if got := g.Width(); got != tt.want {
			t.Errorf("width for %d lines = %d, want %d", tt.count, got, tt.want)
		}
	}
}

func TestGutterSetMode(t *testing.T) {
	g := New(ModeOff)
	g.SetLineCount(12345)

	if g.Width() != 0 {
		t.Errorf("off gutter width = %d, want 0", g.Width())
	}

	g.SetMode(ModeRelative)
	if g.Width() != 6 {
		t.Errorf("relative gutter width = %d, want 6", g.Width())
	}
	if g.Mode() != ModeRelative {
		t.Errorf("Mode() = %s", g.Mode())
	}

	g.SetMode(ModeOff)
	if g.RenderLine(0, RowText) != nil {
		t.Error("off gutter should render nothing")
	}
}

func TestGutterNumber(t *testing.T) {
	g := New(ModeRelative)
	g.SetLineCount(20)
	g.SetCurrentLine(5)

	tests := []struct {
		line int
		want int
	}{
		{5, 6}, // cursor row shows its absolute number
		{6, 1},
		{10, 5},
		{4, 1},
		{0, 5},
	}

	for _, tt := range tests {
		if got := g.Number(tt.line); got != tt.want {
			t.Errorf("relative Number(%d) = %d, want %d", tt.line, got, tt.want)
		}
	}

	g.SetMode(ModeAbsolute)
	if got := g.Number(10); got != 11 {
		t.Errorf("absolute Number(10) = %d, want 11", got)
	}
}

func cellsString(cells []Cell) string {
	runes := make([]rune, len(cells))
	for i, c := range cells {
		runes[i] = c.Rune
	}
	return string(runes)
}

func TestGutterRenderLine(t *testing.T) {
	g := New(ModeAbsolute)
	g.SetLineCount(50)
	g.SetCurrentLine(2)

	tests := []struct {
		name string
		line int
		kind RowKind
		want string
	}{
		{"first row", 0, RowText, "  1 "},
		{"two digits", 41, RowText, " 42 "},
		{"continuation", 3, RowContinuation, "    "},
		{"past end", 60, RowPastEnd, "    "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cellsString(g.RenderLine(tt.line, tt.kind))
			if got != tt.want {
				t.Errorf("RenderLine = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGutterRenderLineStyle(t *testing.T) {
	g := New(ModeRelative)
	g.SetLineCount(10)
	g.SetCurrentLine(3)

	cur := g.RenderLine(3, RowText)
	if cellsString(cur) != "  4 " {
		t.Errorf("cursor row = %q, want %q", cellsString(cur), "  4 ")
	}
	if cur[2].Style != StyleCurrentLine {
		t.Errorf("cursor row style = %d, want StyleCurrentLine", cur[2].Style)
	}
	if cur[3].Style != StyleNormal {
		t.Error("separator should use StyleNormal")
	}

	other := g.RenderLine(5, RowText)
	if cellsString(other) != "  2 " {
		t.Errorf("row 5 = %q, want %q", cellsString(other), "  2 ")
	}
	if other[2].Style != StyleDim {
		t.Errorf("other row style = %d, want StyleDim", other[2].Style)
	}
}

func TestModeString(t *testing.T) {
	if ModeOff.String() != "off" || ModeAbsolute.String() != "absolute" || ModeRelative.String() != "relative" {
		t.Error("unexpected mode names")
	}
}
