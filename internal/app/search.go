package app

import (
	"strings"
	"unicode/utf8"

	"github.com/dshills/kiln/internal/renderer/backend"
)

// searchState is the incremental search state kept between prompt
// keystrokes.
type searchState struct {
	// lastMatch is the row of the current match, -1 for none.
	lastMatch int
	forward   bool

	// overlay is the row carrying the match highlight, -1 for none.
	overlay int
}

func newSearchState() searchState {
	return searchState{lastMatch: -1, forward: true, overlay: -1}
}

// Find runs an incremental search. Arrow keys move to the next or previous
// match; Escape restores the cursor and scroll position.
func (e *Editor) Find() error {
	saved := e.cursor
	vp := e.renderer.Viewport()
	scroll := vp.GetScrollState()

	e.search = newSearchState()
	query, err := e.Prompt("Search: %s (Use ESC/Arrows/Enter)", e.findCallback)
	if err != nil {
		return err
	}

	if query == "" {
		e.cursor = saved
		vp.SetScrollState(scroll)
	}
	return nil
}

// findCallback is the per-keystroke search step.
func (e *Editor) findCallback(query string, ev backend.Event) {
	e.clearMatch()

	switch ev.Key {
	case backend.KeyEnter, backend.KeyEscape:
		e.search.lastMatch = -1
		e.search.forward = true
		return
	case backend.KeyRight, backend.KeyDown:
		e.search.forward = true
	case backend.KeyLeft, backend.KeyUp:
		e.search.forward = false
	default:
		e.search.lastMatch = -1
		e.search.forward = true
	}

	if e.search.lastMatch == -1 {
		e.search.forward = true
	}
	if query == "" {
		return
	}
	e.findNext(query)
}

// findNext searches from the last match in the current direction,
// wrapping around the document once. On a match it moves the cursor,
// forces the viewport to rescroll onto the match and highlights it.
func (e *Editor) findNext(query string) bool {
	n := e.doc.LineCount()
	current := e.search.lastMatch

	for i := 0; i < n; i++ {
		if e.search.forward {
			current++
		} else {
			current--
		}
		switch current {
		case -1:
			current = n - 1
		case n:
			current = 0
		}

		line := e.doc.Line(current)
		render := line.Render()
		idx := strings.Index(render, query)
		if idx < 0 {
			continue
		}

		rx := utf8.RuneCountInString(render[:idx])
		e.search.lastMatch = current
		e.cursor.Row = current
		e.cursor.Col = line.RenderToColumn(rx)
		e.renderer.Viewport().SetRowOff(n)

		line.HighlightMatch(rx, utf8.RuneCountInString(query))
		e.search.overlay = current
		return true
	}
	return false
}

// clearMatch removes the search highlight, if any.
func (e *Editor) clearMatch() {
	if e.search.overlay >= 0 {
		if line := e.doc.Line(e.search.overlay); line != nil {
			line.ResetMatch()
		}
	}
	e.search.overlay = -1
}
