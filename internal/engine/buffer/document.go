package buffer

import (
	"strings"

	"github.com/google/uuid"

	"github.com/dshills/kiln/internal/engine/syntax"
)

// Document is an ordered collection of lines plus modification tracking.
type Document struct {
	id       uuid.UUID
	lines    []*Line
	filename string

	// dirty counts mutations since the last successful save.
	dirty int
}

// NewDocument creates an empty, unnamed document.
func NewDocument() *Document {
	return &Document{id: uuid.New()}
}

// NewDocumentFromString creates a document from text using the load rules:
// lines are split on LF, a single trailing CR per line is dropped, and the
// empty line produced by a terminal newline is discarded. The result is
// clean (dirty == 0).
func NewDocumentFromString(text string) *Document {
	d := NewDocument()
	if text == "" {
		return d
	}
	parts := strings.Split(text, "\n")
	if parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	d.lines = make([]*Line, len(parts))
	for i, p := range parts {
		d.lines[i] = NewLine(strings.TrimSuffix(p, "\r"))
	}
	return d
}

// ID returns the document's unique identifier.
func (d *Document) ID() string {
	return d.id.String()
}

// Filename returns the file name, empty for an unnamed document.
func (d *Document) Filename() string {
	return d.filename
}

// SetFilename sets the file name used by Save.
func (d *Document) SetFilename(name string) {
	d.filename = name
}

// Dirty returns the number of mutations since the last save.
func (d *Document) Dirty() int {
	return d.dirty
}

// IsDirty reports whether the document has unsaved changes.
func (d *Document) IsDirty() bool {
	return d.dirty > 0
}

// LineCount returns the number of lines.
func (d *Document) LineCount() int {
	return len(d.lines)
}

// Line returns the line at row, or nil if row is out of range.
func (d *Document) Line(row int) *Line {
	if row < 0 || row >= len(d.lines) {
		return nil
	}
	return d.lines[row]
}

// LineLen returns the raw length of the line at row, 0 when out of range.
func (d *Document) LineLen(row int) int {
	if l := d.Line(row); l != nil {
		return l.Len()
	}
	return 0
}

// RenderLen returns the render length of the line at row, 0 when out of
// range.
func (d *Document) RenderLen(row int) int {
	if l := d.Line(row); l != nil {
		return l.RenderLen()
	}
	return 0
}

// ColumnToRender maps a raw column of row to its render column.
func (d *Document) ColumnToRender(row, col int) int {
	if l := d.Line(row); l != nil {
		return l.ColumnToRender(col)
	}
	return 0
}

// InsertLine inserts a new line with text before row at. at may equal
// LineCount to append. Out-of-range requests are ignored.
func (d *Document) InsertLine(at int, text string) {
	if at < 0 || at > len(d.lines) {
		return
	}
	d.insertLine(at, NewLine(text))
}

func (d *Document) insertLine(at int, l *Line) {
	d.lines = append(d.lines, nil)
	copy(d.lines[at+1:], d.lines[at:])
	d.lines[at] = l
	d.dirty++
}

// DeleteLine removes the line at row and returns its text. ok is false and
// nothing changes when row is out of range.
func (d *Document) DeleteLine(at int) (text string, ok bool) {
	if at < 0 || at >= len(d.lines) {
		return "", false
	}
	text = d.lines[at].String()
	copy(d.lines[at:], d.lines[at+1:])
	d.lines[len(d.lines)-1] = nil
	d.lines = d.lines[:len(d.lines)-1]
	d.dirty++
	return text, true
}

// InsertChar inserts r at pos and returns the cursor position after it.
// When pos is on the row past the last line a new empty line is appended
// first.
func (d *Document) InsertChar(pos Position, r rune) Position {
	if pos.Row < 0 || pos.Row > len(d.lines) {
		return pos
	}
	if pos.Row == len(d.lines) {
		d.InsertLine(len(d.lines), "")
	}
	d.lines[pos.Row].InsertChar(pos.Col, r)
	d.dirty++
	pos.Col++
	return pos
}

// DeleteCharBefore deletes the rune left of pos and returns the new cursor
// position. At column 0 the line is joined onto the previous one. At the
// document start, or on the row past the last line at column 0, nothing
// happens.
func (d *Document) DeleteCharBefore(pos Position) Position {
	if pos.Row < 0 || pos.Row >= len(d.lines) {
		return pos
	}
	if pos.Row == 0 && pos.Col == 0 {
		return pos
	}

	line := d.lines[pos.Row]
	if pos.Col > 0 {
		if line.DeleteChar(pos.Col - 1) {
			d.dirty++
			pos.Col--
		}
		return pos
	}

	prev := d.lines[pos.Row-1]
	newCol := prev.Len()
	prev.Append(line.Runes())
	d.dirty++
	d.DeleteLine(pos.Row)
	return Position{Row: pos.Row - 1, Col: newCol}
}

// SplitLine breaks the line at pos and returns the start of the new line.
// At column 0 an empty line is inserted above instead.
func (d *Document) SplitLine(pos Position) Position {
	if pos.Row < 0 || pos.Row > len(d.lines) {
		return pos
	}
	if pos.Col == 0 || pos.Row == len(d.lines) {
		d.InsertLine(pos.Row, "")
	} else {
		tail := d.lines[pos.Row].Split(pos.Col)
		d.insertLine(pos.Row+1, tail)
	}
	return Position{Row: pos.Row + 1, Col: 0}
}

// Text returns the serialized document: every line followed by LF.
func (d *Document) Text() string {
	var sb strings.Builder
	for _, l := range d.lines {
		sb.WriteString(string(l.chars))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Bytes returns the serialized document.
func (d *Document) Bytes() []byte {
	return []byte(d.Text())
}

// Lines returns the raw content of all lines.
func (d *Document) Lines() []string {
	out := make([]string, len(d.lines))
	for i, l := range d.lines {
		out[i] = l.String()
	}
	return out
}

// Rehighlight re-runs the highlighter starting at row from. The first row
// and its successor are always rescanned, since structural edits change
// the successor's predecessor. After that the pass stops at the first row
// whose carried-out comment state did not change. It returns the number of
// rows rescanned.
func (d *Document) Rehighlight(p *syntax.Profile, from int) int {
	if from < 0 {
		from = 0
	}
	n := 0
	for row := from; row < len(d.lines); row++ {
		changed := d.lines[row].highlight(p, d.carriedIn(row))
		n++
		if !changed && row > from {
			break
		}
	}
	return n
}

// HighlightAll rescans every line.
func (d *Document) HighlightAll(p *syntax.Profile) {
	for row := range d.lines {
		d.lines[row].highlight(p, d.carriedIn(row))
	}
}

func (d *Document) carriedIn(row int) bool {
	if row == 0 {
		return false
	}
	return d.lines[row-1].openComment
}
