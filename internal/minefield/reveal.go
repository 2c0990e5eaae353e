package minefield

// floodFill reveals the empty cell at i and, breadth first, every cell
// reachable from it through cells with no mined neighbours. Numbered cells
// are revealed but not expanded; marks in the way are overwritten. It returns
// the number of cells revealed.
func (b *Board) floodFill(i int) int {
	b.cells[i].Status = Revealed
	b.unrevealed--
	revealed := 1

	queue := []int{i}
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]

		if b.cells[next].Count != 0 {
			continue
		}
		for j := range b.neighbors(next) {
			c := &b.cells[j]
			if c.Status == Revealed || c.Kind == Mine {
				continue
			}
			c.Status = Revealed
			b.unrevealed--
			revealed++
			queue = append(queue, j)
		}
	}

	Log.WithField("revealed", revealed).Debug("flood fill")
	return revealed
}
