// Package cursor implements cursor movement over a document.
//
// A cursor is a buffer-space position: Row is a line index and Col is a
// rune index into that line's raw content. Row ranges over
// [0, LineCount]; the row past the last line is the insertion row, where
// typing appends a new line.
//
// Movement never wraps around the document. Left at column 0 moves to the
// end of the previous line, Right at the end of a line moves to column 0
// of the next one, and after every move the column is clamped to the
// destination line's length.
//
// Basic usage:
//
//	pos := cursor.Move(doc, pos, cursor.Down)
//	pos = cursor.Home(pos)
package cursor
