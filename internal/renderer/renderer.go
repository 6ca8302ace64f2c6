package renderer

import (
	"time"

	"github.com/dshills/kiln/internal/engine/buffer"
	"github.com/dshills/kiln/internal/engine/syntax"
	"github.com/dshills/kiln/internal/renderer/backend"
	"github.com/dshills/kiln/internal/renderer/core"
	"github.com/dshills/kiln/internal/renderer/gutter"
	"github.com/dshills/kiln/internal/renderer/viewport"
)

// MessageTimeout is how long a status message stays on the message bar.
const MessageTimeout = 5 * time.Second

// barRows is the number of screen rows below the text area.
const barRows = 2

// Options configures the renderer.
type Options struct {
	LineNumbers gutter.Mode
	SoftWrap    bool

	// Version is shown in the welcome banner.
	Version string
}

// Frame is the editor state drawn by one render pass.
type Frame struct {
	Doc     *buffer.Document
	Cursor  buffer.Position
	Profile *syntax.Profile

	Message     string
	MessageTime time.Time
}

// Renderer paints frames onto a backend.
type Renderer struct {
	backend backend.Backend
	opts    Options

	width  int
	height int

	viewport *viewport.Viewport
	gutter   *gutter.Gutter

	now func() time.Time
}

// Option customizes a Renderer.
type Option func(*Renderer)

// WithClock sets the time source used for message expiry.
func WithClock(now func() time.Time) Option {
	return func(r *Renderer) {
		r.now = now
	}
}

// New creates a renderer for the given backend, sized to the backend's
// current dimensions.
func New(be backend.Backend, opts Options, options ...Option) *Renderer {
	width, height := be.Size()

	r := &Renderer{
		backend: be,
		opts:    opts,
		width:   width,
		height:  height,
		gutter:  gutter.New(opts.LineNumbers),
		now:     time.Now,
	}
	for _, opt := range options {
		opt(r)
	}

	r.viewport = viewport.New(r.textWidth(), r.textHeight())
	r.viewport.SetWrap(opts.SoftWrap)
	return r
}

// Viewport returns the viewport for scroll manipulation by the controller.
func (r *Renderer) Viewport() *viewport.Viewport {
	return r.viewport
}

// Options returns the current options.
func (r *Renderer) Options() Options {
	return r.opts
}

// SetOptions updates the gutter mode and soft-wrap setting.
func (r *Renderer) SetOptions(opts Options) {
	r.opts = opts
	r.gutter.SetMode(opts.LineNumbers)
	r.viewport.SetWrap(opts.SoftWrap)
	r.viewport.Resize(r.textWidth(), r.textHeight())
}

// Size returns the current screen dimensions.
func (r *Renderer) Size() (width, height int) {
	return r.width, r.height
}

// Resize handles terminal resize events.
func (r *Renderer) Resize(width, height int) {
	r.width = width
	r.height = height
	r.viewport.Resize(r.textWidth(), r.textHeight())
}

// GutterWidth returns the gutter width used by the last render pass.
func (r *Renderer) GutterWidth() int {
	return r.gutter.Width()
}

// TextHeight returns the number of screen rows available for text.
func (r *Renderer) TextHeight() int {
	return r.textHeight()
}

func (r *Renderer) textHeight() int {
	h := r.height - barRows
	if h < 1 {
		h = 1
	}
	return h
}

func (r *Renderer) textWidth() int {
	w := r.width - r.gutter.Width()
	if w < 1 {
		w = 1
	}
	return w
}

// Prepare sizes the text area for f and scrolls the viewport so the
// cursor is visible. Render calls it; the controller calls it directly
// when it needs fresh offsets before drawing.
func (r *Renderer) Prepare(f Frame) {
	r.gutter.SetLineCount(f.Doc.LineCount())
	r.gutter.SetCurrentLine(f.Cursor.Row)
	r.viewport.Resize(r.textWidth(), r.textHeight())
	r.viewport.Scroll(f.Doc, f.Cursor)
}

// Render performs a full render pass.
func (r *Renderer) Render(f Frame) {
	r.Prepare(f)

	r.backend.HideCursor()
	r.backend.Clear()

	segs := r.viewport.Layout(f.Doc)
	for y, seg := range segs {
		r.drawRow(f.Doc, y, seg)
	}

	r.drawStatusBar(f)
	r.drawMessageBar(f)
	r.placeCursor(f)

	r.backend.Show()
}

// drawRow draws the gutter and text for one screen row.
func (r *Renderer) drawRow(doc *buffer.Document, y int, seg viewport.Segment) {
	gw := r.gutter.Width()

	kind := gutter.RowText
	switch {
	case seg.Row >= doc.LineCount():
		kind = gutter.RowPastEnd
	case seg.Wrapped:
		kind = gutter.RowContinuation
	}
	for x, c := range r.gutter.RenderLine(seg.Row, kind) {
		r.backend.SetCell(x, y, core.NewStyledCell(c.Rune, gutterStyle(c.Style)))
	}

	if kind == gutter.RowPastEnd {
		r.drawEmptyRow(doc, y)
		return
	}

	line := doc.Line(seg.Row)
	runes := line.RenderRunes()
	tags := line.Tags()

	x := gw
	for i := seg.Start; i < len(runes) && i < seg.Start+r.textWidth(); i++ {
		ch := runes[i]
		style := TagStyle(tags[i])
		if isControl(ch) {
			ch = controlGlyph(ch)
			style = controlStyle
		}
		x = r.putRune(x, y, ch, style)
		if x >= r.width {
			break
		}
	}
}

// drawEmptyRow draws a row below the last line: a tilde, plus the welcome
// banner a third of the way down when the document is empty.
func (r *Renderer) drawEmptyRow(doc *buffer.Document, y int) {
	gw := r.gutter.Width()
	tw := r.textWidth()

	if doc.LineCount() == 0 && y == r.textHeight()/3 {
		welcome := core.Truncate("Kiln editor -- version "+r.opts.Version, tw)
		padding := (tw - core.StringWidth(welcome)) / 2
		x := gw
		if padding > 0 {
			x = r.putRune(x, y, '~', core.DefaultStyle())
			x = gw + padding
		}
		r.putString(x, y, welcome, core.DefaultStyle())
		return
	}

	r.putRune(gw, y, '~', core.DefaultStyle())
}

// placeCursor positions the terminal cursor over the document cursor, or
// hides it when the cursor lies outside the text area.
func (r *Renderer) placeCursor(f Frame) {
	y, x := r.viewport.ScreenPosition(f.Cursor.Row, r.viewport.RX())
	if y < 0 || y >= r.textHeight() || x < 0 || x >= r.textWidth() {
		r.backend.HideCursor()
		return
	}
	r.backend.ShowCursor(r.gutter.Width()+x, y)
}

// putRune draws ch at (x, y) and returns the next free column.
func (r *Renderer) putRune(x, y int, ch rune, style core.Style) int {
	cell := core.NewStyledCell(ch, style)
	if cell.Width <= 0 {
		cell.Width = 1
	}
	if x+cell.Width > r.width {
		return r.width
	}
	r.backend.SetCell(x, y, cell)
	for i := 1; i < cell.Width; i++ {
		r.backend.SetCell(x+i, y, core.ContinuationCell())
	}
	return x + cell.Width
}

// putString draws s starting at (x, y) and returns the next free column.
func (r *Renderer) putString(x, y int, s string, style core.Style) int {
	for _, ch := range s {
		if x >= r.width {
			break
		}
		x = r.putRune(x, y, ch, style)
	}
	return x
}
