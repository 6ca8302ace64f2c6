package cursor

import (
	"github.com/dshills/kiln/internal/engine/buffer"
)

// Position is an alias for buffer.Position for convenience.
type Position = buffer.Position

// Lines is the view of a document needed for movement.
type Lines interface {
	LineCount() int
	LineLen(row int) int
}

// Direction is a single-step cursor movement.
type Direction uint8

const (
	Left Direction = iota
	Right
	Up
	Down
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "unknown"
	}
}

// Move returns pos moved one step in dir.
func Move(lines Lines, pos Position, dir Direction) Position {
	pos = Clamp(lines, pos)
	count := lines.LineCount()

	switch dir {
	case Left:
		if pos.Col > 0 {
			pos.Col--
		} else if pos.Row > 0 {
			pos.Row--
			pos.Col = lines.LineLen(pos.Row)
		}
	case Right:
		if pos.Row < count {
			if pos.Col < lines.LineLen(pos.Row) {
				pos.Col++
			} else {
				pos.Row++
				pos.Col = 0
			}
		}
	case Up:
		if pos.Row > 0 {
			pos.Row--
		}
	case Down:
		if pos.Row < count {
			pos.Row++
		}
	}

	return clampCol(lines, pos)
}

// MoveN applies Move n times.
func MoveN(lines Lines, pos Position, dir Direction, n int) Position {
	for i := 0; i < n; i++ {
		pos = Move(lines, pos, dir)
	}
	return pos
}

// Home returns pos moved to column 0.
func Home(pos Position) Position {
	pos.Col = 0
	return pos
}

// End returns pos moved past the last rune of its line.
func End(lines Lines, pos Position) Position {
	pos = Clamp(lines, pos)
	pos.Col = lines.LineLen(pos.Row)
	return pos
}

// Clamp returns pos limited to the document: the row to [0, LineCount]
// and the column to [0, LineLen(row)].
func Clamp(lines Lines, pos Position) Position {
	if pos.Row < 0 {
		pos.Row = 0
	}
	if count := lines.LineCount(); pos.Row > count {
		pos.Row = count
	}
	return clampCol(lines, pos)
}

func clampCol(lines Lines, pos Position) Position {
	if pos.Col < 0 {
		pos.Col = 0
	}
	if n := lines.LineLen(pos.Row); pos.Col > n {
		pos.Col = n
	}
	return pos
}
