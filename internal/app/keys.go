package app

import (
	"errors"
	"unicode"

	"github.com/dshills/kiln/internal/engine/cursor"
	"github.com/dshills/kiln/internal/renderer/backend"
)

// processKey dispatches a key event in the normal state.
func (e *Editor) processKey(ev backend.Event) error {
	if ev.Key == backend.KeyCtrlQ {
		return e.quit()
	}
	e.quitTimes = QuitPresses

	switch ev.Key {
	case backend.KeyEnter:
		e.insertNewline()

	case backend.KeyCtrlS:
		return e.Save()

	case backend.KeyCtrlF:
		return e.Find()

	case backend.KeyHome:
		e.cursor = cursor.Home(e.cursor)

	case backend.KeyEnd:
		e.cursor = cursor.End(e.doc, e.cursor)

	case backend.KeyBackspace, backend.KeyCtrlH:
		e.deleteChar()

	case backend.KeyDelete:
		e.move(cursor.Right)
		e.deleteChar()

	case backend.KeyPageUp, backend.KeyPageDown:
		e.page(ev.Key)

	case backend.KeyUp:
		e.move(cursor.Up)
	case backend.KeyDown:
		e.move(cursor.Down)
	case backend.KeyLeft:
		e.move(cursor.Left)
	case backend.KeyRight:
		e.move(cursor.Right)

	case backend.KeyTab:
		e.insertChar('\t')

	case backend.KeyRune:
		if isInsertable(ev) {
			e.insertChar(ev.Rune)
		}

	// Ctrl-L and Escape are accepted and ignored.
	case backend.KeyCtrlL, backend.KeyEscape:
	}
	return nil
}

// processMouse maps the wheel onto single-line cursor moves.
func (e *Editor) processMouse(ev backend.Event) {
	switch ev.MouseButton {
	case backend.MouseWheelUp:
		e.move(cursor.Up)
	case backend.MouseWheelDown:
		e.move(cursor.Down)
	}
}

// isInsertable reports whether ev is a printable rune typed with no
// modifier other than Shift.
func isInsertable(ev backend.Event) bool {
	if ev.Key != backend.KeyRune || unicode.IsControl(ev.Rune) {
		return false
	}
	return ev.Mod&^backend.ModShift == 0
}

// quit handles the quit key. A modified document needs QuitPresses
// consecutive presses.
func (e *Editor) quit() error {
	if e.doc.IsDirty() && e.quitTimes > 1 {
		e.quitTimes--
		e.SetStatusMessage("WARNING!!! File has unsaved changes. Press Ctrl-Q %d more times to quit.", e.quitTimes)
		return nil
	}
	e.log.Info("quit (dirty=%d)", e.doc.Dirty())
	return ErrQuit
}

func (e *Editor) move(dir cursor.Direction) {
	e.cursor = cursor.Move(e.doc, e.cursor, dir)
}

// page moves the cursor to the top or bottom of the viewport, then one
// viewport height further line by line.
func (e *Editor) page(key backend.Key) {
	vp := e.renderer.Viewport()

	dir := cursor.Up
	if key == backend.KeyPageUp {
		e.cursor.Row = vp.RowOff()
	} else {
		dir = cursor.Down
		e.cursor.Row = vp.Bottom(e.doc)
	}
	e.cursor = cursor.Clamp(e.doc, e.cursor)
	e.cursor = cursor.MoveN(e.doc, e.cursor, dir, vp.Height())
}

func (e *Editor) insertChar(r rune) {
	row := e.cursor.Row
	e.cursor = e.doc.InsertChar(e.cursor, r)
	e.doc.Rehighlight(e.Profile(), row)
}

func (e *Editor) deleteChar() {
	before := e.cursor
	e.cursor = e.doc.DeleteCharBefore(e.cursor)
	if e.cursor != before {
		e.doc.Rehighlight(e.Profile(), e.cursor.Row)
	}
}

// insertNewline splits the line at the cursor. With auto-indent the new
// line starts with the split line's leading whitespace.
func (e *Editor) insertNewline() {
	var indent []rune
	if e.opts.AutoIndent && e.cursor.Row < e.doc.LineCount() {
		indent = leadingWhitespace(e.doc.Line(e.cursor.Row).Runes(), e.cursor.Col)
	}

	row := e.cursor.Row
	e.cursor = e.doc.SplitLine(e.cursor)
	for _, r := range indent {
		e.cursor = e.doc.InsertChar(e.cursor, r)
	}
	e.doc.Rehighlight(e.Profile(), row)
}

// leadingWhitespace returns the blanks at the start of line, limited to
// the first limit runes.
func leadingWhitespace(line []rune, limit int) []rune {
	n := 0
	for n < len(line) && n < limit && (line[n] == ' ' || line[n] == '\t') {
		n++
	}
	return line[:n:n]
}

// Save writes the document, prompting for a filename when it has none.
// Write failures become a status message and leave the document dirty.
func (e *Editor) Save() error {
	if e.doc.Filename() == "" {
		name, err := e.Prompt("Save as: %s (ESC to cancel)", nil)
		if err != nil {
			return err
		}
		if name == "" {
			e.SetStatusMessage("Save aborted")
			return nil
		}
		e.doc.SetFilename(name)
		e.selectSyntax(false)
	}

	n, err := e.doc.Save(e.fs)
	if err != nil {
		e.log.Warn("%v", NewOperationError("save", e.doc.Filename(), err))

		cause := errors.Unwrap(err)
		if cause == nil {
			cause = err
		}
		e.SetStatusMessage("Can't save! I/O error: %v", cause)
		return nil
	}

	e.log.Info("saved %s (%d bytes)", e.doc.Filename(), n)
	e.SetStatusMessage("%d bytes written to disk", n)
	return nil
}
