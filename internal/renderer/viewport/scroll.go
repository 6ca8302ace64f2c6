package viewport

import "github.com/dshills/kiln/internal/engine/buffer"

// ScrollState is a saved pair of offsets.
type ScrollState struct {
	RowOff int
	ColOff int
}

// GetScrollState returns the current offsets.
func (v *Viewport) GetScrollState() ScrollState {
	return ScrollState{RowOff: v.rowOff, ColOff: v.colOff}
}

// SetScrollState restores offsets saved by GetScrollState.
func (v *Viewport) SetScrollState(state ScrollState) {
	v.rowOff = state.RowOff
	v.colOff = state.ColOff
	if v.wrap {
		v.colOff = 0
	}
}

// Scroll recomputes the cursor render column and adjusts the offsets so
// that pos is visible.
func (v *Viewport) Scroll(text Text, pos buffer.Position) {
	v.rx = 0
	if pos.Row < text.LineCount() {
		v.rx = text.ColumnToRender(pos.Row, pos.Col)
	}

	if pos.Row < v.rowOff {
		v.rowOff = pos.Row
	}

	if v.wrap {
		v.colOff = 0
		v.scrollWrapped(text, pos.Row)
		return
	}

	if pos.Row >= v.rowOff+v.height {
		v.rowOff = pos.Row - v.height + 1
	}
	if v.rx < v.colOff {
		v.colOff = v.rx
	}
	if v.rx >= v.colOff+v.width {
		v.colOff = v.rx - v.width + 1
	}
}

// scrollWrapped moves rowOff down until the cursor's wrapped screen row
// fits in the text area.
func (v *Viewport) scrollWrapped(text Text, row int) {
	// Every row takes at least one screen row.
	if row-v.rowOff >= v.height {
		v.rowOff = row - v.height + 1
	}

	y := v.rx / v.width
	for r := v.rowOff; r < row; r++ {
		y += v.rowsFor(text, r)
	}
	for y >= v.height && v.rowOff < row {
		y -= v.rowsFor(text, v.rowOff)
		v.rowOff++
	}
}

// rowsFor returns the number of screen rows buffer row occupies.
func (v *Viewport) rowsFor(text Text, row int) int {
	if !v.wrap || row >= text.LineCount() {
		return 1
	}
	return text.RenderLen(row)/v.width + 1
}
