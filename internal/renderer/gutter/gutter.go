// Package gutter renders the line-number column to the left of the text
// area.
//
// The gutter has three modes. ModeOff takes no columns. ModeAbsolute shows
// 1-based line numbers. ModeRelative shows the distance from the cursor
// row, except on the cursor row itself, which shows its absolute number.
// In both numbered modes the width is the digit count of the line count
// (at least MinDigits) plus one separator column.
package gutter

import "strconv"

// MinDigits is the narrowest number column the gutter uses.
const MinDigits = 3

// Mode selects how line numbers are displayed.
type Mode uint8

const (
	// ModeOff hides the gutter.
	ModeOff Mode = iota

	// ModeAbsolute shows 1-based line numbers.
	ModeAbsolute

	// ModeRelative shows line numbers relative to the cursor row.
	ModeRelative
)

// String returns the configuration name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeAbsolute:
		return "absolute"
	case ModeRelative:
		return "relative"
	default:
		return "off"
	}
}

// RowKind describes what a screen row of the text area shows.
type RowKind uint8

const (
	// RowText is the first screen row of a buffer row.
	RowText RowKind = iota

	// RowContinuation is a soft-wrapped continuation of a buffer row.
	RowContinuation

	// RowPastEnd is a screen row below the last buffer row.
	RowPastEnd
)

// CellStyle describes how to style a gutter cell.
type CellStyle uint8

const (
	StyleNormal CellStyle = iota
	StyleCurrentLine
	StyleDim
)

// Cell represents a single gutter cell.
type Cell struct {
	Rune  rune
	Style CellStyle
}

// Gutter manages the gutter area rendering.
type Gutter struct {
	mode        Mode
	width       int
	lineCount   int
	currentLine int
}

// New creates a gutter in the given mode.
func New(mode Mode) *Gutter {
	return &Gutter{
		mode:  mode,
		width: calculateWidth(mode, 0),
	}
}

// Mode returns the current mode.
func (g *Gutter) Mode() Mode {
	return g.mode
}

// SetMode changes the display mode and recomputes the width.
func (g *Gutter) SetMode(mode Mode) {
	g.mode = mode
	g.width = calculateWidth(mode, g.lineCount)
}

// Width returns the total gutter width including the separator.
func (g *Gutter) Width() int {
	return g.width
}

// SetLineCount updates the total line count (affects width calculation).
func (g *Gutter) SetLineCount(count int) {
	if count < 0 {
		count = 0
	}
	g.lineCount = count
	g.width = calculateWidth(g.mode, count)
}

// SetCurrentLine updates the cursor row used by relative numbering and
// current-line styling.
func (g *Gutter) SetCurrentLine(line int) {
	g.currentLine = line
}

// Number returns the number shown for buffer row line.
func (g *Gutter) Number(line int) int {
	if g.mode == ModeRelative && line != g.currentLine {
		if line > g.currentLine {
			return line - g.currentLine
		}
		return g.currentLine - line
	}
	return line + 1
}

// RenderLine returns the cells for one screen row. Only RowText rows carry
// a number; the others are blank. Returns nil when the gutter is off.
func (g *Gutter) RenderLine(line int, kind RowKind) []Cell {
	if g.width == 0 {
		return nil
	}

	cells := make([]Cell, g.width)
	for i := range cells {
		cells[i] = Cell{Rune: ' ', Style: StyleNormal}
	}
	if kind != RowText {
		return cells
	}

	style := StyleDim
	if line == g.currentLine {
		style = StyleCurrentLine
	}

	digits := strconv.Itoa(g.Number(line))
	numWidth := g.width - 1

	// Right-align; numbers wider than the column keep their low digits.
	if len(digits) > numWidth {
		digits = digits[len(digits)-numWidth:]
	}
	start := numWidth - len(digits)
	for i := 0; i < start; i++ {
		cells[i].Style = style
	}
	for i, r := range digits {
		cells[start+i] = Cell{Rune: r, Style: style}
	}

	return cells
}

// calculateWidth calculates the total gutter width.
func calculateWidth(mode Mode, lineCount int) int {
	if mode == ModeOff {
		return 0
	}
	digits := countDigits(lineCount)
	if digits < MinDigits {
		digits = MinDigits
	}
	return digits + 1
}

// countDigits returns the number of digits needed to display a number.
func countDigits(n int) int {
	if n <= 0 {
		return 1
	}
	digits := 0
	for n > 0 {
		digits++
		n /= 10
	}
	return digits
}
