package minefield

import "fmt"

type Kind uint8

const (
	Empty Kind = iota
	Mine
)

func (k Kind) String() string {
	if k == Mine {
		return "mine"
	}
	return "empty"
}

type Status uint8

const (
	Hidden Status = iota
	Marked
	Revealed
)

func (s Status) String() string {
	switch s {
	case Hidden:
		return "hidden"
	case Marked:
		return "marked"
	case Revealed:
		return "revealed"
	default:
		return fmt.Sprintf("status(%d)", uint8(s))
	}
}

// Cell is a single square of the board. Count is the number of mined
// neighbours and only meaningful for Empty cells once the first move has been
// taken.
type Cell struct {
	Kind   Kind
	Status Status
	Count  uint8
}

// Glyph returns the character the player sees for the cell.
//
//	.  hidden
//	*  marked
//	/  revealed, no mined neighbours
//	n  revealed, n mined neighbours
//	X  revealed mine
func (c Cell) Glyph() byte {
	switch c.Status {
	case Hidden:
		return '.'
	case Marked:
		return '*'
	}
	if c.Kind == Mine {
		return 'X'
	}
	if c.Count == 0 {
		return '/'
	}
	return '0' + c.Count
}

type Point struct {
	Row, Col int
}

func (p Point) String() string {
	return fmt.Sprintf("%d:%d", p.Row, p.Col)
}
