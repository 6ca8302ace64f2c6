// Package viewport tracks which part of a document is visible.
//
// A Viewport holds the row and column offsets of the text area, the
// cursor's render column for the current frame and, when soft wrap is
// enabled, the per-pass gap cache that maps buffer rows to screen rows.
package viewport

// Text is the view of a document needed for scrolling and layout.
type Text interface {
	LineCount() int
	RenderLen(row int) int
	ColumnToRender(row, col int) int
}

// Viewport represents the visible portion of the document.
type Viewport struct {
	// First visible buffer row and render column.
	rowOff int
	colOff int

	// Cursor render column, recomputed by Scroll.
	rx int

	// Size of the text area in screen cells.
	width  int
	height int

	wrap bool

	// gaps[i] is the number of extra screen rows consumed by wrapped
	// rows above visible buffer row rowOff+i. Rebuilt by Layout.
	gaps []int
}

// New creates a viewport with the given size.
// Width and height are clamped to a minimum of 1.
func New(width, height int) *Viewport {
	v := &Viewport{}
	v.Resize(width, height)
	return v
}

// Width returns the text area width.
func (v *Viewport) Width() int {
	return v.width
}

// Height returns the text area height.
func (v *Viewport) Height() int {
	return v.height
}

// RowOff returns the first visible buffer row.
func (v *Viewport) RowOff() int {
	return v.rowOff
}

// SetRowOff sets the first visible buffer row. The next Scroll brings
// the cursor back into view.
func (v *Viewport) SetRowOff(row int) {
	if row < 0 {
		row = 0
	}
	v.rowOff = row
}

// ColOff returns the first visible render column.
func (v *Viewport) ColOff() int {
	return v.colOff
}

// RX returns the cursor render column computed by the last Scroll.
func (v *Viewport) RX() int {
	return v.rx
}

// Wrap reports whether soft wrap is enabled.
func (v *Viewport) Wrap() bool {
	return v.wrap
}

// SetWrap enables or disables soft wrap.
func (v *Viewport) SetWrap(enabled bool) {
	v.wrap = enabled
	if enabled {
		v.colOff = 0
	}
}

// Resize updates the text area size.
// Width and height are clamped to a minimum of 1.
func (v *Viewport) Resize(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	v.width = width
	v.height = height
}

// Bottom returns the last buffer row with a screen row inside the
// viewport, clamped to the line count. Under soft wrap the rows above it
// may take several screen rows each.
func (v *Viewport) Bottom(text Text) int {
	bottom := v.rowOff + v.height - 1
	if v.wrap {
		bottom = v.rowOff
		for used := v.rowsFor(text, bottom); used < v.height; used += v.rowsFor(text, bottom) {
			bottom++
		}
	}
	if n := text.LineCount(); bottom > n {
		bottom = n
	}
	return bottom
}
