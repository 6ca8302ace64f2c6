package app

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/dshills/kiln/internal/config"
	"github.com/dshills/kiln/internal/engine/buffer"
	"github.com/dshills/kiln/internal/engine/syntax"
	"github.com/dshills/kiln/internal/renderer/backend"
	"github.com/dshills/kiln/internal/vfs"
)

type testEditor struct {
	*Editor
	be *backend.NullBackend
	fs *vfs.MemFS
}

func newTestEditor(t *testing.T, doc *buffer.Document, opts config.Options) testEditor {
	t.Helper()
	be := backend.NewNullBackend(40, 12)
	fs := vfs.NewMemFS()
	e := New(Config{
		Backend:  be,
		FS:       fs,
		Document: doc,
		Options:  opts,
		Version:  "test",
	})
	return testEditor{Editor: e, be: be, fs: fs}
}

func keys(ks ...backend.Key) []backend.Event {
	evs := make([]backend.Event, len(ks))
	for i, k := range ks {
		evs[i] = backend.KeyEvent(k)
	}
	return evs
}

func runes(s string) []backend.Event {
	var evs []backend.Event
	for _, r := range s {
		evs = append(evs, backend.RuneEvent(r))
	}
	return evs
}

func (te testEditor) send(t *testing.T, evs ...backend.Event) {
	t.Helper()
	for _, ev := range evs {
		if err := te.HandleEvent(ev); err != nil {
			t.Fatalf("HandleEvent(%+v) = %v", ev, err)
		}
	}
}

func TestEditorScenario(t *testing.T) {
	te := newTestEditor(t, buffer.NewDocumentFromString("foo\nbar\n"), config.Defaults())

	te.send(t, keys(backend.KeyRight, backend.KeyRight, backend.KeyRight, backend.KeyDown, backend.KeyHome)...)
	if got := te.Cursor(); got != (buffer.Position{Row: 1, Col: 0}) {
		t.Fatalf("cursor = %+v, want (1, 0)", got)
	}

	te.send(t, backend.RuneEvent('X'))
	if got := te.Document().Lines(); !reflect.DeepEqual(got, []string{"foo", "Xbar"}) {
		t.Errorf("lines = %q", got)
	}
	if te.Document().Dirty() != 1 {
		t.Errorf("dirty = %d, want 1", te.Document().Dirty())
	}
}

func TestQuitConfirmation(t *testing.T) {
	doc := buffer.NewDocumentFromString("text\n")
	doc.InsertChar(buffer.Position{}, 'x')
	te := newTestEditor(t, doc, config.Defaults())

	quit := backend.KeyEvent(backend.KeyCtrlQ)
	for i, remaining := range []int{2, 1} {
		if err := te.HandleEvent(quit); err != nil {
			t.Fatalf("press %d: unexpected %v", i+1, err)
		}
		want := fmt.Sprintf("Press Ctrl-Q %d more times", remaining)
		if !strings.Contains(te.StatusMessage(), want) {
			t.Errorf("press %d: status = %q, want %q", i+1, te.StatusMessage(), want)
		}
	}
	if err := te.HandleEvent(quit); !errors.Is(err, ErrQuit) {
		t.Errorf("third press = %v, want ErrQuit", err)
	}
}

func TestQuitConfirmationReset(t *testing.T) {
	doc := buffer.NewDocumentFromString("text\n")
	doc.InsertChar(buffer.Position{}, 'x')
	te := newTestEditor(t, doc, config.Defaults())

	quit := backend.KeyEvent(backend.KeyCtrlQ)
	te.send(t, quit, quit, backend.RuneEvent('y'), quit, quit)

	if err := te.HandleEvent(quit); !errors.Is(err, ErrQuit) {
		t.Errorf("third press after reset = %v, want ErrQuit", err)
	}
}

func TestQuitClean(t *testing.T) {
	te := newTestEditor(t, buffer.NewDocumentFromString("text\n"), config.Defaults())
	if err := te.HandleEvent(backend.KeyEvent(backend.KeyCtrlQ)); !errors.Is(err, ErrQuit) {
		t.Errorf("quit on clean document = %v, want ErrQuit", err)
	}
}

func TestRun(t *testing.T) {
	te := newTestEditor(t, buffer.NewDocumentFromString("abc\n"), config.Defaults())
	te.be.Queue(backend.RuneEvent('z'), backend.KeyEvent(backend.KeyCtrlQ), backend.KeyEvent(backend.KeyCtrlQ))
	te.be.Queue(backend.KeyEvent(backend.KeyCtrlQ))

	if err := te.Run(); !errors.Is(err, ErrQuit) {
		t.Fatalf("Run = %v, want ErrQuit", err)
	}
	if got := te.Document().Lines()[0]; got != "zabc" {
		t.Errorf("line = %q, want %q", got, "zabc")
	}
	if te.be.ShownFrames() < 4 {
		t.Errorf("expected a render per event, got %d frames", te.be.ShownFrames())
	}
}

func TestRunInputFailure(t *testing.T) {
	te := newTestEditor(t, nil, config.Defaults())
	te.be.CloseEvents()

	err := te.Run()
	if !errors.Is(err, ErrInputClosed) {
		t.Errorf("Run = %v, want ErrInputClosed", err)
	}
	if !errors.Is(err, backend.ErrClosed) {
		t.Errorf("Run = %v, want the backend error preserved", err)
	}
}

func TestEditing(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		events []backend.Event
		want   []string
		cursor buffer.Position
	}{
		{
			name:   "delete right",
			text:   "ab\n",
			events: keys(backend.KeyDelete),
			want:   []string{"b"},
			cursor: buffer.Position{Row: 0, Col: 0},
		},
		{
			name:   "backspace joins lines",
			text:   "ab\ncd\n",
			events: keys(backend.KeyDown, backend.KeyBackspace),
			want:   []string{"abcd"},
			cursor: buffer.Position{Row: 0, Col: 2},
		},
		{
			name:   "ctrl-h deletes",
			text:   "ab\n",
			events: keys(backend.KeyEnd, backend.KeyCtrlH),
			want:   []string{"a"},
			cursor: buffer.Position{Row: 0, Col: 1},
		},
		{
			name:   "enter splits",
			text:   "abcd\n",
			events: keys(backend.KeyRight, backend.KeyRight, backend.KeyEnter),
			want:   []string{"ab", "cd"},
			cursor: buffer.Position{Row: 1, Col: 0},
		},
		{
			name:   "tab inserts",
			text:   "x\n",
			events: keys(backend.KeyTab),
			want:   []string{"\tx"},
			cursor: buffer.Position{Row: 0, Col: 1},
		},
		{
			name:   "insert on empty document",
			text:   "",
			events: runes("hi"),
			want:   []string{"hi"},
			cursor: buffer.Position{Row: 0, Col: 2},
		},
		{
			name: "modified runes ignored",
			text: "x\n",
			events: []backend.Event{
				{Type: backend.EventKey, Key: backend.KeyRune, Rune: 'a', Mod: backend.ModAlt},
				{Type: backend.EventKey, Key: backend.KeyRune, Rune: 'B', Mod: backend.ModShift},
			},
			want:   []string{"Bx"},
			cursor: buffer.Position{Row: 0, Col: 1},
		},
		{
			name:   "escape and ctrl-l ignored",
			text:   "x\n",
			events: keys(backend.KeyEscape, backend.KeyCtrlL),
			want:   []string{"x"},
			cursor: buffer.Position{Row: 0, Col: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			te := newTestEditor(t, buffer.NewDocumentFromString(tt.text), config.Defaults())
			te.send(t, tt.events...)

			if got := te.Document().Lines(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("lines = %q, want %q", got, tt.want)
			}
			if got := te.Cursor(); got != tt.cursor {
				t.Errorf("cursor = %+v, want %+v", got, tt.cursor)
			}
		})
	}
}

func TestAutoIndent(t *testing.T) {
	tests := []struct {
		name       string
		autoIndent bool
		moves      []backend.Key
		want       []string
		cursor     buffer.Position
	}{
		{"off", false, []backend.Key{backend.KeyEnd}, []string{"    foo", ""}, buffer.Position{Row: 1, Col: 0}},
		{"end of line", true, []backend.Key{backend.KeyEnd}, []string{"    foo", "    "}, buffer.Position{Row: 1, Col: 4}},
		{"inside indent", true, []backend.Key{backend.KeyRight, backend.KeyRight}, []string{"  ", "    foo"}, buffer.Position{Row: 1, Col: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := config.Defaults()
			opts.AutoIndent = tt.autoIndent
			te := newTestEditor(t, buffer.NewDocumentFromString("    foo\n"), opts)

			te.send(t, keys(append(tt.moves, backend.KeyEnter)...)...)

			if got := te.Document().Lines(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("lines = %q, want %q", got, tt.want)
			}
			if got := te.Cursor(); got != tt.cursor {
				t.Errorf("cursor = %+v, want %+v", got, tt.cursor)
			}
		})
	}
}

func TestRehighlightAfterEdit(t *testing.T) {
	doc := buffer.NewDocumentFromString("x\ny\nz\n")
	doc.SetFilename("main.c")
	te := newTestEditor(t, doc, config.Defaults())

	te.send(t, runes("/*")...)

	for row := 0; row < 3; row++ {
		if !doc.Line(row).OpenComment() {
			t.Errorf("row %d should be inside the comment", row)
		}
	}
	if got := doc.Line(2).Tags()[0]; got != syntax.TagMultilineComment {
		t.Errorf("row 2 tag = %s, want mlcomment", got)
	}
}

func TestPageUpDown(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 50; i++ {
		fmt.Fprintf(&sb, "line %d\n", i)
	}
	te := newTestEditor(t, buffer.NewDocumentFromString(sb.String()), config.Defaults())
	te.Refresh()

	// 12 rows minus status and message bars.
	te.send(t, backend.KeyEvent(backend.KeyPageDown))
	if got := te.Cursor().Row; got != 19 {
		t.Errorf("after PageDown row = %d, want 19", got)
	}

	te.Refresh()
	if got := te.Renderer().Viewport().RowOff(); got != 10 {
		t.Fatalf("RowOff = %d, want 10", got)
	}

	te.send(t, backend.KeyEvent(backend.KeyPageUp))
	if got := te.Cursor().Row; got != 0 {
		t.Errorf("after PageUp row = %d, want 0", got)
	}
}

func TestPageDownSoftWrap(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("top\n")
	sb.WriteString(strings.Repeat("w", 100) + "\n")
	for i := 0; i < 30; i++ {
		fmt.Fprintf(&sb, "line %d\n", i)
	}
	opts := config.Defaults()
	opts.SoftWrap = true
	te := newTestEditor(t, buffer.NewDocumentFromString(sb.String()), opts)
	te.Refresh()

	// The 100 rune line takes 3 of the 10 text rows, so row 7 is the
	// last one on screen.
	if got := te.Renderer().Viewport().Bottom(te.Document()); got != 7 {
		t.Fatalf("Bottom = %d, want 7", got)
	}

	te.send(t, backend.KeyEvent(backend.KeyPageDown))
	if got := te.Cursor().Row; got != 17 {
		t.Errorf("after PageDown row = %d, want 17", got)
	}
}

func TestMouseWheel(t *testing.T) {
	te := newTestEditor(t, buffer.NewDocumentFromString("a\nb\nc\n"), config.Defaults())

	wheel := func(b backend.MouseButton) backend.Event {
		return backend.Event{Type: backend.EventMouse, MouseButton: b}
	}
	te.send(t, wheel(backend.MouseWheelDown), wheel(backend.MouseWheelDown), wheel(backend.MouseWheelUp))

	if got := te.Cursor().Row; got != 1 {
		t.Errorf("row = %d, want 1", got)
	}
}

func TestResize(t *testing.T) {
	te := newTestEditor(t, nil, config.Defaults())
	te.send(t, backend.Event{Type: backend.EventResize, Width: 30, Height: 8})

	if w, h := te.Renderer().Size(); w != 30 || h != 8 {
		t.Errorf("renderer size = (%d, %d), want (30, 8)", w, h)
	}
	if te.Document().IsDirty() {
		t.Error("resize should not touch the document")
	}
}

func TestConfigReload(t *testing.T) {
	te := newTestEditor(t, nil, config.Defaults())

	opts := config.Defaults()
	opts.LineNumbers = config.LineNumbersRelative
	opts.SoftWrap = true
	te.send(t, backend.Event{Type: backend.EventInterrupt, Data: ConfigReload{Options: opts}})

	if !te.Options().SoftWrap {
		t.Error("soft wrap should be enabled")
	}
	if te.Renderer().GutterWidth() != 4 {
		t.Errorf("gutter width = %d, want 4", te.Renderer().GutterWidth())
	}
	if !te.Renderer().Viewport().Wrap() {
		t.Error("viewport should wrap")
	}
	if te.StatusMessage() != "Config reloaded" {
		t.Errorf("status = %q", te.StatusMessage())
	}

	te.send(t, backend.Event{Type: backend.EventInterrupt, Data: ConfigReload{Options: config.Defaults(), Err: errors.New("bad value")}})
	if !strings.HasPrefix(te.StatusMessage(), "Config reloaded with errors: bad value") {
		t.Errorf("status = %q", te.StatusMessage())
	}

	// Unknown interrupt payloads are ignored.
	te.send(t, backend.Event{Type: backend.EventInterrupt, Data: 42})
}

func TestGutterMode(t *testing.T) {
	if GutterMode(config.LineNumbersAbsolute).String() != "absolute" ||
		GutterMode(config.LineNumbersRelative).String() != "relative" ||
		GutterMode(config.LineNumbersOff).String() != "off" ||
		GutterMode("bogus").String() != "off" {
		t.Error("unexpected gutter mode mapping")
	}
}
