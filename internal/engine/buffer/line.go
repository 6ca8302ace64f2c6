package buffer

import "github.com/dshills/kiln/internal/engine/syntax"

// TabStop is the tab width used by the render transform.
const TabStop = 8

// Line is one row of a document in raw and rendered form.
type Line struct {
	chars  []rune
	render []rune

	// hl holds one tag per render rune.
	hl []syntax.Tag

	// savedHL is the snapshot taken by HighlightMatch, nil when no
	// search overlay is active.
	savedHL []syntax.Tag

	// openComment is true when a multiline comment is still open at the
	// end of this line.
	openComment bool
}

// NewLine creates a line from s.
func NewLine(s string) *Line {
	l := &Line{}
	l.SetContent([]rune(s))
	return l
}

// SetContent replaces the raw runes and rebuilds the render.
// Highlight tags are reset to normal; callers re-run highlighting.
func (l *Line) SetContent(chars []rune) {
	l.chars = chars
	l.update()
}

// update rebuilds render from chars. Tabs advance to the next multiple of
// TabStop, every other rune is copied through.
func (l *Line) update() {
	tabs := 0
	for _, r := range l.chars {
		if r == '\t' {
			tabs++
		}
	}

	render := make([]rune, 0, len(l.chars)+tabs*(TabStop-1))
	for _, r := range l.chars {
		if r == '\t' {
			render = append(render, ' ')
			for len(render)%TabStop != 0 {
				render = append(render, ' ')
			}
			continue
		}
		render = append(render, r)
	}

	l.render = render
	l.hl = make([]syntax.Tag, len(render))
	l.savedHL = nil
}

// String returns the raw content.
func (l *Line) String() string {
	return string(l.chars)
}

// Runes returns the raw runes. The slice must not be modified.
func (l *Line) Runes() []rune {
	return l.chars
}

// Render returns the rendered content.
func (l *Line) Render() string {
	return string(l.render)
}

// RenderRunes returns the rendered runes. The slice must not be modified.
func (l *Line) RenderRunes() []rune {
	return l.render
}

// Len returns the number of raw runes.
func (l *Line) Len() int {
	return len(l.chars)
}

// RenderLen returns the number of rendered runes.
func (l *Line) RenderLen() int {
	return len(l.render)
}

// Tags returns the highlight tags, one per render rune.
// The slice must not be modified.
func (l *Line) Tags() []syntax.Tag {
	return l.hl
}

// OpenComment reports whether a multiline comment is open at the end of
// the line.
func (l *Line) OpenComment() bool {
	return l.openComment
}

// InsertChar inserts r before raw column at. Out-of-range positions
// append at the end of the line.
func (l *Line) InsertChar(at int, r rune) {
	if at < 0 || at > len(l.chars) {
		at = len(l.chars)
	}
	chars := make([]rune, 0, len(l.chars)+1)
	chars = append(chars, l.chars[:at]...)
	chars = append(chars, r)
	chars = append(chars, l.chars[at:]...)
	l.SetContent(chars)
}

// DeleteChar removes the rune at raw column at. It returns false and leaves
// the line untouched when at is out of range.
func (l *Line) DeleteChar(at int) bool {
	if at < 0 || at >= len(l.chars) {
		return false
	}
	chars := make([]rune, 0, len(l.chars)-1)
	chars = append(chars, l.chars[:at]...)
	chars = append(chars, l.chars[at+1:]...)
	l.SetContent(chars)
	return true
}

// Split truncates the line at raw column at and returns the removed tail
// as a new line.
func (l *Line) Split(at int) *Line {
	if at < 0 {
		at = 0
	}
	if at > len(l.chars) {
		at = len(l.chars)
	}
	tail := make([]rune, len(l.chars)-at)
	copy(tail, l.chars[at:])
	head := make([]rune, at)
	copy(head, l.chars[:at])
	l.SetContent(head)

	nl := &Line{}
	nl.SetContent(tail)
	return nl
}

// Append adds text to the end of the line.
func (l *Line) Append(text []rune) {
	chars := make([]rune, 0, len(l.chars)+len(text))
	chars = append(chars, l.chars...)
	chars = append(chars, text...)
	l.SetContent(chars)
}

// ColumnToRender maps a raw column to its render column.
func (l *Line) ColumnToRender(cx int) int {
	if cx > len(l.chars) {
		cx = len(l.chars)
	}
	rx := 0
	for i := 0; i < cx; i++ {
		if l.chars[i] == '\t' {
			rx += (TabStop - 1) - (rx % TabStop)
		}
		rx++
	}
	return rx
}

// RenderToColumn maps a render column back to the raw column whose cell
// contains it. Render columns past the end map to the line length.
func (l *Line) RenderToColumn(rx int) int {
	cur := 0
	for cx, r := range l.chars {
		if r == '\t' {
			cur += (TabStop - 1) - (cur % TabStop)
		}
		cur++
		if cur > rx {
			return cx
		}
	}
	return len(l.chars)
}

// highlight re-runs the highlighter with the carried-in comment state and
// reports whether the carried-out state changed.
func (l *Line) highlight(p *syntax.Profile, inComment bool) bool {
	tags, open := syntax.Highlight(l.render, p, inComment)
	l.hl = tags
	l.savedHL = nil
	changed := open != l.openComment
	l.openComment = open
	return changed
}

// HighlightMatch overlays the match tag on render columns
// [start, start+n) after snapshotting the current tags. An active overlay
// is reset first so at most one exists per line.
func (l *Line) HighlightMatch(start, n int) {
	l.ResetMatch()
	l.savedHL = make([]syntax.Tag, len(l.hl))
	copy(l.savedHL, l.hl)

	if start < 0 {
		start = 0
	}
	end := start + n
	if end > len(l.hl) {
		end = len(l.hl)
	}
	for i := start; i < end; i++ {
		l.hl[i] = syntax.TagMatch
	}
}

// ResetMatch restores the tags saved by HighlightMatch.
func (l *Line) ResetMatch() {
	if l.savedHL == nil {
		return
	}
	copy(l.hl, l.savedHL)
	l.savedHL = nil
}

// HasMatch reports whether a search overlay is active.
func (l *Line) HasMatch() bool {
	return l.savedHL != nil
}
