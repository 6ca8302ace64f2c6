package viewport

// Segment is one screen row of the text area.
type Segment struct {
	// Row is the buffer row shown. It may be past the last line.
	Row int

	// Start is the first render column shown.
	Start int

	// Wrapped marks a continuation of the previous screen row's line.
	Wrapped bool
}

// Layout returns the segments for every screen row of the text area and
// rebuilds the gap cache used by ScreenPosition. It must run once per
// render pass, after Scroll.
func (v *Viewport) Layout(text Text) []Segment {
	segs := make([]Segment, 0, v.height)
	v.gaps = v.gaps[:0]

	extra := 0
	for row := v.rowOff; len(segs) < v.height; row++ {
		v.gaps = append(v.gaps, extra)

		n := v.rowsFor(text, row)
		for k := 0; k < n && len(segs) < v.height; k++ {
			start := v.colOff
			if v.wrap {
				start = k * v.width
			}
			segs = append(segs, Segment{Row: row, Start: start, Wrapped: k > 0})
		}
		extra += n - 1
	}
	return segs
}

// ScreenPosition maps a buffer row and render column to a text area
// position. Under soft wrap it uses the gap cache built by the last
// Layout.
func (v *Viewport) ScreenPosition(row, rx int) (y, x int) {
	i := row - v.rowOff
	if !v.wrap {
		return i, rx - v.colOff
	}
	if i >= 0 && i < len(v.gaps) {
		i += v.gaps[i]
	}
	return i + rx/v.width, rx % v.width
}
