package buffer

import "fmt"

// Position is a cursor coordinate in buffer space.
// Row indexes lines; Col indexes runes of the raw line (not the render).
// Both are 0-indexed.
type Position struct {
	Row int
	Col int
}

// String returns a human-readable representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("(%d:%d)", p.Row, p.Col)
}
