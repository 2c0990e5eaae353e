package minefield

import "github.com/sirupsen/logrus"

// placeMines picks count distinct cells uniformly at random: each draw takes
// a random entry from the undecided candidates and swaps the last undecided
// one into its slot.
func (b *Board) placeMines(count int) {
	candidates := make([]int, len(b.cells))
	for i := range candidates {
		candidates[i] = i
	}

	k := len(candidates)
	for range count {
		j := b.rnd.IntN(k)
		b.cells[candidates[j]].Kind = Mine
		k--
		candidates[j] = candidates[k]
	}

	b.total = count
	b.remaining = count
}

// relocate moves the mine at i onto a uniformly chosen empty cell. With no
// empty cell left the board is unchanged.
func (b *Board) relocate(i int) {
	empty := len(b.cells) - b.total
	if empty == 0 {
		Log.WithField("point", b.point(i)).Warn("no empty cell to relocate the first mine to")
		return
	}

	n := b.rnd.IntN(empty)
	for j := range b.cells {
		if b.cells[j].Kind != Empty {
			continue
		}
		if n == 0 {
			b.cells[j].Kind = Mine
			b.cells[i].Kind = Empty
			Log.WithFields(logrus.Fields{
				"from": b.point(i),
				"to":   b.point(j),
			}).Debug("relocated first-move mine")
			return
		}
		n--
	}
}
