package minefield

import (
	"fmt"
	"hash/maphash"
	"iter"
	"math/rand/v2"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

const DefaultSide = 9

// Rand is the source of randomness used for mine placement and first-move
// relocation. *rand.Rand satisfies it.
type Rand interface {
	IntN(n int) int
}

// NewRand returns a PCG-backed source seeded from the runtime hash seed.
func NewRand() Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

// Board is a square minefield. It is not safe for concurrent use.
type Board struct {
	side  int
	cells []Cell
	rnd   Rand

	total      int /* mines on the board */
	remaining  int /* mines not yet marked */
	unrevealed int /* cells whose status is not Revealed */

	firstMoveTaken bool
	outcome        Outcome
}

func newBoard(side int, r Rand) *Board {
	if r == nil {
		r = NewRand()
	}
	return &Board{
		side:       side,
		cells:      make([]Cell, side*side),
		rnd:        r,
		unrevealed: side * side,
	}
}

// NewRandom creates a side x side board with mines placed uniformly at random.
func NewRandom(side, mines int, r Rand) (*Board, error) {
	if side < 1 || mines < 0 || mines > side*side {
		return nil, fmt.Errorf(
			"%w: %d mines on a %dx%d board", ErrInvalidConfig, mines, side, side,
		)
	}
	b := newBoard(side, r)
	b.placeMines(mines)
	Log.WithFields(logrus.Fields{
		"side":  side,
		"mines": mines,
	}).Debug("generated board")
	return b, nil
}

func (b *Board) Side() int  { return b.side }
func (b *Board) Mines() int { return b.total }

// Remaining is the number of mines that are not marked.
func (b *Board) Remaining() int { return b.remaining }

// Unrevealed is the number of cells, mines included, that are not revealed.
func (b *Board) Unrevealed() int { return b.unrevealed }

func (b *Board) FirstMoveTaken() bool { return b.firstMoveTaken }

// Finished reports whether Apply has returned Win or Loss.
func (b *Board) Finished() bool { return b.outcome.Terminal() }

// Outcome is the terminal outcome of the game, or InProgress.
func (b *Board) Outcome() Outcome { return b.outcome }

func (b *Board) InBounds(p Point) bool {
	return 0 <= p.Row && p.Row < b.side && 0 <= p.Col && p.Col < b.side
}

func (b *Board) At(p Point) (Cell, error) {
	if !b.InBounds(p) {
		return Cell{}, b.outOfBounds(p)
	}
	return b.cells[b.index(p)], nil
}

func (b *Board) index(p Point) int {
	return p.Row*b.side + p.Col
}

func (b *Board) point(i int) Point {
	return Point{Row: i / b.side, Col: i % b.side}
}

func (b *Board) outOfBounds(p Point) error {
	return fmt.Errorf("%w: %s on a %dx%d board", ErrOutOfBounds, p, b.side, b.side)
}

// neighbors yields the indices of the up to 8 cells around i.
func (b *Board) neighbors(i int) iter.Seq[int] {
	return func(yield func(int) bool) {
		row, col := i/b.side, i%b.side
		for dr := -1; dr <= 1; dr++ {
			for dc := -1; dc <= 1; dc++ {
				if dr == 0 && dc == 0 {
					continue
				}
				r, c := row+dr, col+dc
				if r < 0 || r >= b.side || c < 0 || c >= b.side {
					continue
				}
				if !yield(r*b.side + c) {
					return
				}
			}
		}
	}
}

func (b *Board) countNeighbors() {
	for i := range b.cells {
		if b.cells[i].Kind != Empty {
			continue
		}
		var n uint8
		for j := range b.neighbors(i) {
			if b.cells[j].Kind == Mine {
				n++
			}
		}
		b.cells[i].Count = n
	}
}

// Apply performs a single player action. The first call of a game moves a
// mine out from under the target and computes neighbour counts before the
// action is evaluated. Once Win or Loss has been returned the board no longer
// changes and Apply fails with [ErrGameOver].
func (b *Board) Apply(p Point, a Action) (Outcome, error) {
	if !b.InBounds(p) {
		return InProgress, b.outOfBounds(p)
	}
	if a != Reveal && a != ToggleMark {
		return InProgress, fmt.Errorf("%w: %s", ErrUnknownAction, a)
	}
	if b.Finished() {
		return b.outcome, ErrGameOver
	}

	i := b.index(p)
	if !b.firstMoveTaken {
		if b.cells[i].Kind == Mine {
			b.relocate(i)
		}
		b.countNeighbors()
		b.firstMoveTaken = true
	}

	var o Outcome
	switch a {
	case Reveal:
		o = b.reveal(i)
	case ToggleMark:
		o = b.toggleMark(i)
	}
	if o.Terminal() {
		b.outcome = o
	}

	Log.WithFields(logrus.Fields{
		"point":      p,
		"action":     a,
		"outcome":    o,
		"remaining":  b.remaining,
		"unrevealed": b.unrevealed,
	}).Debug("applied action")

	return o, nil
}

func (b *Board) reveal(i int) Outcome {
	c := &b.cells[i]
	switch c.Status {
	case Marked:
		return InProgress
	case Revealed:
		if c.Kind == Empty && c.Count > 0 {
			return NumberTouched
		}
		return InProgress
	}

	if c.Kind == Mine {
		c.Status = Revealed
		b.unrevealed--
		return Loss
	}

	b.floodFill(i)

	/* every cell still covered is a mine */
	if b.unrevealed == b.total {
		return Win
	}
	return InProgress
}

func (b *Board) toggleMark(i int) Outcome {
	c := &b.cells[i]
	switch c.Status {
	case Hidden:
		c.Status = Marked
		if c.Kind == Mine {
			b.remaining--
		}
	case Marked:
		c.Status = Hidden
		if c.Kind == Mine {
			b.remaining++
		}
	}
	if b.remaining == 0 {
		return Win
	}
	return InProgress
}
